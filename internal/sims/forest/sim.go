package forest

import (
	"fmt"
	"image/color"
	"strconv"

	"aoc2022/internal/core"
	"aoc2022/internal/inputs"
)

// Cell values: heights 0-9 for rows not yet swept, then one band per outcome.
const (
	bandHidden  = 10
	bandVisible = 20
	cellBest    = 30
)

var forestPalette = buildForestPalette()

func buildForestPalette() []color.RGBA {
	p := make([]color.RGBA, cellBest+1)
	for h := range 10 {
		v := uint8(20 + h*12)
		p[h] = color.RGBA{R: v / 3, G: v / 2, B: v / 3, A: 255}
		p[bandHidden+h] = color.RGBA{R: v / 2, G: v / 2, B: v / 2, A: 255}
		p[bandVisible+h] = color.RGBA{R: 40, G: 110 + uint8(h*14), B: 40, A: 255}
	}
	p[cellBest] = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	return p
}

// Sim reveals the visibility map of a grid one row per Step and highlights the
// tree with the best scenic score once every row is shown.
type Sim struct {
	grid    *core.Grid[uint8]
	visible *core.Grid[bool]
	scores  *core.Grid[int]

	cells   []uint8
	row     int
	seen    int
	best    int
	bestIdx int
}

// NewSim prepares a replay over g.
func NewSim(g *core.Grid[uint8]) *Sim {
	s := &Sim{
		grid:    g,
		visible: Visible(g),
		scores:  ScenicScores(g),
		cells:   make([]uint8, len(g.Cells())),
	}
	s.Reset()
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "forest" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Side(), H: s.grid.Side()} }

// Cells exposes the render buffer.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette maps cell values to colors.
func (s *Sim) Palette() []color.RGBA { return forestPalette }

// Done reports whether every row has been revealed.
func (s *Sim) Done() bool { return s.row == s.grid.Side() }

// Reset hides the visibility overlay again.
func (s *Sim) Reset() {
	copy(s.cells, s.grid.Cells())
	s.row = 0
	s.seen = 0
	s.best = 0
	s.bestIdx = -1
}

// Step reveals the next row.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	n := s.grid.Side()
	for x := range n {
		i := s.grid.Index(x, s.row)
		band := uint8(bandHidden)
		if s.visible.Cells()[i] {
			band = bandVisible
			s.seen++
		}
		s.cells[i] = band + s.grid.Cells()[i]
		if score := s.scores.Cells()[i]; s.bestIdx < 0 || score > s.best {
			s.best, s.bestIdx = score, i
		}
	}
	s.row++
	if s.Done() {
		s.cells[s.bestIdx] = cellBest
	}
}

// Readouts reports sweep progress, visible trees and the best scenic score so
// far.
func (s *Sim) Readouts() []core.Readout {
	return []core.Readout{
		{Label: "row", Value: fmt.Sprintf("%d/%d", s.row, s.grid.Side())},
		{Label: "visible", Value: strconv.Itoa(s.seen)},
		{Label: "best score", Value: strconv.Itoa(s.best)},
	}
}

func init() {
	core.Register("forest", func(map[string]string) (core.Sim, error) {
		g, err := ParseGrid(inputs.Day8)
		if err != nil {
			return nil, err
		}
		return NewSim(g), nil
	})
}
