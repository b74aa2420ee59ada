package forest

import (
	"math/rand/v2"
	"testing"

	"aoc2022/internal/core"
	"aoc2022/internal/inputs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example(t *testing.T) *core.Grid[uint8] {
	t.Helper()
	g, err := ParseGrid(inputs.Day8)
	require.NoError(t, err)
	require.Equal(t, 5, g.Side())
	return g
}

func randomGrid(r *rand.Rand, n int) *core.Grid[uint8] {
	g := core.NewGrid[uint8](n)
	for i := range g.Cells() {
		g.Cells()[i] = uint8(r.IntN(10))
	}
	return g
}

func TestCountVisible(t *testing.T) {
	assert.Equal(t, 21, CountVisible(example(t)))
}

func TestMaxScenicScore(t *testing.T) {
	g := example(t)
	assert.Equal(t, 8, MaxScenicScore(g))
	// The best spot is the 5 in the middle of the fourth row.
	assert.Equal(t, 8, ScenicScores(g).At(2, 3))
	assert.Equal(t, 4, ScenicScores(g).At(2, 1))
}

func TestVisibleFromEachSide(t *testing.T) {
	g := example(t)
	vis := Visible(g)
	n := g.Side()
	for i := range n {
		assert.True(t, vis.At(i, 0), "top edge %d", i)
		assert.True(t, vis.At(i, n-1), "bottom edge %d", i)
		assert.True(t, vis.At(0, i), "left edge %d", i)
		assert.True(t, vis.At(n-1, i), "right edge %d", i)
	}

	l := VisibleFrom(g, Left)
	r := VisibleFrom(g, Right)
	tp := VisibleFrom(g, Top)
	b := VisibleFrom(g, Bottom)

	// The top-left 5 is visible from the left and top only.
	assert.True(t, l.At(1, 1))
	assert.True(t, tp.At(1, 1))
	assert.False(t, r.At(1, 1))
	assert.False(t, b.At(1, 1))
	// The top-middle 5 is visible from the top and right only.
	assert.True(t, r.At(2, 1))
	assert.True(t, tp.At(2, 1))
	assert.False(t, l.At(2, 1))
	assert.False(t, b.At(2, 1))
	// The left-middle 5 is visible from the right only.
	assert.True(t, r.At(1, 2))
	assert.False(t, l.At(1, 2))
	assert.False(t, tp.At(1, 2))
	assert.False(t, b.At(1, 2))
	// The top-right 1 and the centre 3 are hidden from every side.
	for _, p := range []core.Pt{{X: 3, Y: 1}, {X: 2, Y: 2}} {
		assert.False(t, vis.At(p.X, p.Y), "%v", p)
	}
}

func TestVisibilityMirrorSymmetry(t *testing.T) {
	r := rand.New(rand.NewPCG(8, 8))
	grids := []*core.Grid[uint8]{example(t)}
	for range 20 {
		grids = append(grids, randomGrid(r, 1+r.IntN(9)))
	}
	for _, g := range grids {
		assert.Equal(t, VisibleFrom(g, Right).Cells(), VisibleFrom(g.MirrorX(), Left).MirrorX().Cells())
		assert.Equal(t, VisibleFrom(g, Bottom).Cells(), VisibleFrom(g.MirrorY(), Top).MirrorY().Cells())
		assert.Equal(t, ViewDistance(g, Right).Cells(), ViewDistance(g.MirrorX(), Left).MirrorX().Cells())
		assert.Equal(t, ViewDistance(g, Bottom).Cells(), ViewDistance(g.MirrorY(), Top).MirrorY().Cells())
	}
}

// walk counts the trees seen from (x, y) one cell at a time.
func walk(g *core.Grid[uint8], x, y, dx, dy int) int {
	n := g.Side()
	seen := 0
	for cx, cy := x+dx, y+dy; cx >= 0 && cy >= 0 && cx < n && cy < n; cx, cy = cx+dx, cy+dy {
		seen++
		if g.At(cx, cy) >= g.At(x, y) {
			break
		}
	}
	return seen
}

func TestViewDistanceMatchesWalk(t *testing.T) {
	steps := map[Side]core.Pt{
		Left:   {X: -1, Y: 0},
		Right:  {X: 1, Y: 0},
		Top:    {X: 0, Y: -1},
		Bottom: {X: 0, Y: 1},
	}
	r := rand.New(rand.NewPCG(1, 2))
	grids := []*core.Grid[uint8]{example(t)}
	for range 50 {
		grids = append(grids, randomGrid(r, 1+r.IntN(12)))
	}
	// A staircase down to the viewer needs more than one hop.
	grids = append(grids, core.GridFrom([][]uint8{
		{5, 4, 3, 6},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	for _, g := range grids {
		for side, d := range steps {
			got := ViewDistance(g, side)
			for y := range g.Side() {
				for x := range g.Side() {
					require.Equal(t, walk(g, x, y, d.X, d.Y), got.At(x, y), "side %v cell (%d,%d)", side, x, y)
				}
			}
		}
	}
}

func TestEdgeScoresAreZero(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 10 {
		g := randomGrid(r, 2+r.IntN(8))
		n := g.Side()
		scores := ScenicScores(g)
		for i := range n {
			assert.Zero(t, ViewDistance(g, Left).At(0, i))
			assert.Zero(t, ViewDistance(g, Right).At(n-1, i))
			assert.Zero(t, ViewDistance(g, Top).At(i, 0))
			assert.Zero(t, ViewDistance(g, Bottom).At(i, n-1))
			assert.Zero(t, scores.At(0, i))
			assert.Zero(t, scores.At(i, n-1))
		}
	}
}

func TestSingleTree(t *testing.T) {
	g := core.GridFrom([][]uint8{{7}})
	assert.Equal(t, 1, CountVisible(g))
	assert.Equal(t, 0, MaxScenicScore(g))
}
