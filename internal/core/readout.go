package core

// Readout is a labelled value shown next to a running simulation.
type Readout struct {
	Label string
	Value string
}

// ReadoutProvider exposes the current readouts of a simulation.
type ReadoutProvider interface {
	Readouts() []Readout
}
