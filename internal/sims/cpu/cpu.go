// Package cpu simulates the handheld device's single-register CPU one clock
// cycle at a time and derives the signal strength and CRT image from it.
package cpu

import (
	"fmt"
	"iter"
)

// Op identifies an instruction kind.
type Op uint8

const (
	OpNoop Op = iota
	OpAddx
)

// Instruction is one decoded program line.
type Instruction struct {
	Op    Op
	Delta int
}

// Noop returns an instruction that spends one cycle and changes nothing.
func Noop() Instruction { return Instruction{Op: OpNoop} }

// Addx returns an instruction that adds delta to X once its two cycles elapse.
func Addx(delta int) Instruction { return Instruction{Op: OpAddx, Delta: delta} }

// Cycles returns the number of clock cycles the instruction occupies.
func (i Instruction) Cycles() int {
	if i.Op == OpAddx {
		return 2
	}
	return 1
}

func (i Instruction) String() string {
	if i.Op == OpAddx {
		return fmt.Sprintf("addx %d", i.Delta)
	}
	return "noop"
}

// CPU is the register file.
type CPU struct {
	X        int
	Executed int
}

// NewCPU returns a CPU in its power-on state.
func NewCPU() CPU { return CPU{X: 1} }

func (c *CPU) apply(ins Instruction) {
	c.Executed++
	if ins.Op == OpAddx {
		c.X += ins.Delta
	}
}

// slot holds the instruction in flight. A zero remaining count means idle.
type slot struct {
	ins       Instruction
	remaining int
}

func (s slot) idle() bool { return s.remaining == 0 }

// start begins ins and reports whether it already completed this cycle.
func start(ins Instruction) (slot, bool) {
	if n := ins.Cycles(); n > 1 {
		return slot{ins: ins, remaining: n - 1}, false
	}
	return slot{}, true
}

// tick spends one cycle on the in-flight instruction and reports whether it
// completed.
func (s slot) tick() (slot, bool) {
	if s.remaining == 1 {
		return slot{}, true
	}
	return slot{ins: s.ins, remaining: s.remaining - 1}, false
}

// Observation is the value of X during one cycle. Cycles are numbered from 1.
type Observation struct {
	Cycle int
	X     int
}

// Stepper runs a program one cycle per call to Next. It cannot be rewound;
// build a new one to replay the program.
type Stepper struct {
	cpu     CPU
	program []Instruction
	next    int
	flight  slot
	cycle   int
}

// NewStepper prepares a run of program on a fresh CPU. The program slice is
// read, never modified.
func NewStepper(program []Instruction) *Stepper {
	return &Stepper{cpu: NewCPU(), program: program}
}

// Next advances one cycle and returns the value X held during it. It returns
// false once the program has drained and nothing is in flight.
func (s *Stepper) Next() (Observation, bool) {
	ins := s.flight.ins
	var done bool
	if s.flight.idle() {
		if s.next == len(s.program) {
			return Observation{}, false
		}
		ins = s.program[s.next]
		s.next++
		s.flight, done = start(ins)
	} else {
		s.flight, done = s.flight.tick()
	}

	s.cycle++
	obs := Observation{Cycle: s.cycle, X: s.cpu.X}
	if done {
		s.cpu.apply(ins)
	}
	return obs, true
}

// X returns the register value after the cycles run so far.
func (s *Stepper) X() int { return s.cpu.X }

// Executed returns the number of instructions that have completed.
func (s *Stepper) Executed() int { return s.cpu.Executed }

// Cycle returns the number of cycles run so far.
func (s *Stepper) Cycle() int { return s.cycle }

// Trace returns the per-cycle observations of program as a lazy sequence. Each
// iteration replays the program from the power-on state.
func Trace(program []Instruction) iter.Seq[Observation] {
	return func(yield func(Observation) bool) {
		s := NewStepper(program)
		for {
			obs, ok := s.Next()
			if !ok || !yield(obs) {
				return
			}
		}
	}
}

// Timeline returns X during every cycle of program followed by the value X
// settles on once the program has finished.
func Timeline(program []Instruction) []int {
	s := NewStepper(program)
	out := make([]int, 0, TotalCycles(program)+1)
	for {
		obs, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, obs.X)
	}
	return append(out, s.X())
}

// TotalCycles returns the number of cycles program takes to run.
func TotalCycles(program []Instruction) int {
	n := 0
	for _, ins := range program {
		n += ins.Cycles()
	}
	return n
}
