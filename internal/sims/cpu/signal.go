package cpu

const (
	firstProbe    = 20
	probeInterval = 40
)

// IsProbeCycle reports whether the signal strength is sampled during cycle.
func IsProbeCycle(cycle int) bool {
	return cycle >= firstProbe && (cycle-firstProbe)%probeInterval == 0
}

// SignalStrength sums cycle*X over the probe cycles of program.
func SignalStrength(program []Instruction) int {
	sum := 0
	for obs := range Trace(program) {
		if IsProbeCycle(obs.Cycle) {
			sum += obs.Cycle * obs.X
		}
	}
	return sum
}
