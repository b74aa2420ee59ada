package cpu

import (
	"image/color"
	"strconv"

	"aoc2022/internal/core"
	"aoc2022/internal/inputs"
)

const (
	pixelBlank = iota
	pixelDark
	pixelLit
)

var screenPalette = []color.RGBA{
	pixelBlank: {R: 12, G: 12, B: 16, A: 255},
	pixelDark:  {R: 28, G: 44, B: 28, A: 255},
	pixelLit:   {R: 120, G: 255, B: 120, A: 255},
}

// Screen replays a program on the CRT, drawing one pixel per Step.
type Screen struct {
	program []Instruction
	stepper *Stepper
	cells   []uint8
	last    Observation
	signal  int
	done    bool
}

// NewScreen creates a CRT replay of program.
func NewScreen(program []Instruction) *Screen {
	s := &Screen{program: program, cells: make([]uint8, ScreenWidth*ScreenHeight)}
	s.Reset()
	return s
}

// Name returns the simulation identifier.
func (s *Screen) Name() string { return "crt" }

// Size returns the screen dimensions.
func (s *Screen) Size() core.Size { return core.Size{W: ScreenWidth, H: ScreenHeight} }

// Cells exposes the pixel buffer.
func (s *Screen) Cells() []uint8 { return s.cells }

// Palette maps pixel states to colors.
func (s *Screen) Palette() []color.RGBA { return screenPalette }

// Done reports whether the program or the screen has run out.
func (s *Screen) Done() bool { return s.done }

// Reset blanks the screen and restarts the program.
func (s *Screen) Reset() {
	clear(s.cells)
	s.stepper = NewStepper(s.program)
	s.last = Observation{X: 1}
	s.signal = 0
	s.done = false
}

// Step runs one CPU cycle and draws its pixel.
func (s *Screen) Step() {
	if s.done {
		return
	}
	obs, ok := s.stepper.Next()
	if !ok || obs.Cycle > len(s.cells) {
		s.done = true
		return
	}
	s.last = obs
	if IsProbeCycle(obs.Cycle) {
		s.signal += obs.Cycle * obs.X
	}
	px := uint8(pixelDark)
	if Lit(obs.Cycle, obs.X) {
		px = pixelLit
	}
	s.cells[obs.Cycle-1] = px
}

// Readouts reports the current cycle, register and running signal strength.
func (s *Screen) Readouts() []core.Readout {
	return []core.Readout{
		{Label: "cycle", Value: strconv.Itoa(s.last.Cycle)},
		{Label: "x", Value: strconv.Itoa(s.last.X)},
		{Label: "executed", Value: strconv.Itoa(s.stepper.Executed())},
		{Label: "signal", Value: strconv.Itoa(s.signal)},
	}
}

func init() {
	core.Register("crt", func(map[string]string) (core.Sim, error) {
		program, err := ParseProgram(inputs.Day10)
		if err != nil {
			return nil, err
		}
		return NewScreen(program), nil
	})
}
