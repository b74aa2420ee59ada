// Package forest answers line-of-sight questions over a square grid of tree
// heights: which trees can be seen from outside the grid, and how far each tree
// can see.
package forest

import "aoc2022/internal/core"

// Side names the grid edge a sweep looks toward.
type Side uint8

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// Sides lists every edge.
var Sides = [...]Side{Left, Right, Top, Bottom}

func (s Side) String() string {
	return [...]string{"left", "right", "top", "bottom"}[s]
}

// cell maps the k-th cell (counted from the edge s) of a row or column to grid
// coordinates. line selects the row for Left/Right and the column for
// Top/Bottom.
func (s Side) cell(line, k, n int) (x, y int) {
	switch s {
	case Left:
		return k, line
	case Right:
		return n - 1 - k, line
	case Top:
		return line, k
	default:
		return line, n - 1 - k
	}
}

// VisibleFrom marks the trees that can be seen from outside the grid looking
// in from side: every tree between it and that edge is strictly shorter.
func VisibleFrom(g *core.Grid[uint8], side Side) *core.Grid[bool] {
	n := g.Side()
	out := core.NewGrid[bool](n)
	for line := range n {
		tallest := -1
		for k := range n {
			x, y := side.cell(line, k, n)
			if h := int(g.At(x, y)); h > tallest {
				out.Set(x, y, true)
				tallest = h
			}
		}
	}
	return out
}

// Visible marks the trees that can be seen from at least one edge.
func Visible(g *core.Grid[uint8]) *core.Grid[bool] {
	var sweeps []*core.Grid[bool]
	for _, side := range Sides {
		sweeps = append(sweeps, VisibleFrom(g, side))
	}
	return core.Or(sweeps...)
}

// CountVisible returns the number of trees visible from outside the grid.
func CountVisible(g *core.Grid[uint8]) int {
	return core.Count(Visible(g))
}

// ViewDistance counts, for every tree, the trees it sees looking toward side.
// The view stops at the edge or at the first tree at least as tall, which is
// itself counted. Trees on that edge see nothing.
//
// Each row or column is swept outward from the edge. A shorter neighbour has
// already resolved its own view, so the walk jumps over the whole run that
// neighbour sees instead of visiting those trees again.
func ViewDistance(g *core.Grid[uint8], side Side) *core.Grid[int] {
	n := g.Side()
	out := core.NewGrid[int](n)
	for line := range n {
		for k := 1; k < n; k++ {
			x, y := side.cell(line, k, n)
			h := g.At(x, y)
			j := k - 1
			for j > 0 {
				jx, jy := side.cell(line, j, n)
				if g.At(jx, jy) >= h {
					break
				}
				j -= out.At(jx, jy)
			}
			out.Set(x, y, k-j)
		}
	}
	return out
}

// ScenicScores multiplies the four view distances of every tree.
func ScenicScores(g *core.Grid[uint8]) *core.Grid[int] {
	n := g.Side()
	out := core.NewGrid[int](n)
	scores := out.Cells()
	for i := range scores {
		scores[i] = 1
	}
	for _, side := range Sides {
		for i, d := range ViewDistance(g, side).Cells() {
			scores[i] *= d
		}
	}
	return out
}

// MaxScenicScore returns the highest scenic score in the grid.
func MaxScenicScore(g *core.Grid[uint8]) int {
	best := 0
	for _, s := range ScenicScores(g).Cells() {
		best = max(best, s)
	}
	return best
}
