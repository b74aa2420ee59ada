package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation's cell buffer.
type Size struct {
	W int
	H int
}

// Sim is a replayable puzzle simulation. Step advances exactly one atomic unit
// (one CPU cycle, one rope unit step, one grid row) and is a no-op once Done
// reports true.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Done() bool
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values index a palette.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
