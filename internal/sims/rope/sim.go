package rope

import (
	"fmt"
	"image/color"
	"strconv"

	"aoc2022/internal/core"
	"aoc2022/internal/inputs"
)

// Config holds parameters for the rope replay.
type Config struct {
	Knots int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Knots: 10}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["knots"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Knots = parsed
		}
	}
	return c
}

const (
	cellEmpty = iota
	cellTrail
	cellKnot
	cellTail
	cellHead
)

var ropePalette = []color.RGBA{
	cellEmpty: {R: 10, G: 10, B: 14, A: 255},
	cellTrail: {R: 70, G: 70, B: 140, A: 255},
	cellKnot:  {R: 200, G: 200, B: 200, A: 255},
	cellTail:  {R: 255, G: 200, B: 60, A: 255},
	cellHead:  {R: 255, G: 70, B: 70, A: 255},
}

// Sim replays a move list one unit step at a time inside the bounding box of
// the whole replay.
type Sim struct {
	steps []Dir
	knots int

	rope  *Rope
	next  int
	trail Trail
	drawn []core.Pt

	min   core.Pt
	w, h  int
	cells []uint8
}

// NewSim prepares a replay of moves with a rope of the given length.
func NewSim(moves []Move, knots int) *Sim {
	s := &Sim{steps: Expand(moves), knots: knots}
	lo, hi := bounds(s.steps, knots)
	s.min = lo
	s.w = hi.X - lo.X + 1
	s.h = hi.Y - lo.Y + 1
	s.cells = make([]uint8, s.w*s.h)
	s.Reset()
	return s
}

// bounds returns the corners of the box every knot stays inside.
func bounds(steps []Dir, knots int) (lo, hi core.Pt) {
	r := New(knots)
	for _, d := range steps {
		r.Step(d)
		for _, k := range r.Knots() {
			lo.X, lo.Y = min(lo.X, k.X), min(lo.Y, k.Y)
			hi.X, hi.Y = max(hi.X, k.X), max(hi.Y, k.Y)
		}
	}
	return lo, hi
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "rope" }

// Size returns the bounding box dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Cells exposes the render buffer.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette maps cell kinds to colors.
func (s *Sim) Palette() []color.RGBA { return ropePalette }

// Done reports whether every unit step has been replayed.
func (s *Sim) Done() bool { return s.next == len(s.steps) }

// Trail returns the tail positions visited so far.
func (s *Sim) Trail() Trail { return s.trail }

// Reset puts every knot back on the origin.
func (s *Sim) Reset() {
	clear(s.cells)
	s.rope = New(s.knots)
	s.next = 0
	s.trail = Trail{s.rope.Tail(): {}}
	s.drawn = s.drawn[:0]
	s.paint()
}

// Step replays one unit step of the head.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	s.rope.Step(s.steps[s.next])
	s.next++
	s.trail.Add(s.rope.Tail())
	s.paint()
}

func (s *Sim) index(p core.Pt) int {
	// Up is drawn towards the top of the screen.
	return (s.h-1-(p.Y-s.min.Y))*s.w + (p.X - s.min.X)
}

func (s *Sim) paint() {
	for _, p := range s.drawn {
		s.cells[s.index(p)] = cellEmpty
		if s.trail.Has(p) {
			s.cells[s.index(p)] = cellTrail
		}
	}

	knots := s.rope.Knots()
	for i := len(knots) - 1; i >= 0; i-- {
		kind := uint8(cellKnot)
		switch i {
		case 0:
			kind = cellHead
		case len(knots) - 1:
			kind = cellTail
		}
		s.cells[s.index(knots[i])] = kind
	}
	s.drawn = append(s.drawn[:0], knots...)
}

// Readouts reports replay progress and the tail's visited count.
func (s *Sim) Readouts() []core.Readout {
	head, tail := s.rope.Head(), s.rope.Tail()
	return []core.Readout{
		{Label: "knots", Value: strconv.Itoa(s.knots)},
		{Label: "step", Value: fmt.Sprintf("%d/%d", s.next, len(s.steps))},
		{Label: "head", Value: fmt.Sprintf("%d,%d", head.X, head.Y)},
		{Label: "tail", Value: fmt.Sprintf("%d,%d", tail.X, tail.Y)},
		{Label: "visited", Value: strconv.Itoa(len(s.trail))},
	}
}

func init() {
	core.Register("rope", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		moves, err := ParseMoves(inputs.Day9)
		if err != nil {
			return nil, err
		}
		return NewSim(moves, c.Knots), nil
	})
}
