package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRowMajor(t *testing.T) {
	g := GridFrom([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.Equal(t, 3, g.Side())
	assert.Equal(t, uint8(6), g.At(2, 1))
	assert.Equal(t, 5, g.Index(2, 1))
	g.Set(0, 2, 0)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 0, 8, 9}, g.Cells())
}

func TestGridMirror(t *testing.T) {
	g := GridFrom([][]int{
		{1, 2},
		{3, 4},
	})
	assert.Equal(t, []int{2, 1, 4, 3}, g.MirrorX().Cells())
	assert.Equal(t, []int{3, 4, 1, 2}, g.MirrorY().Cells())
	assert.Equal(t, g.Cells(), g.MirrorX().MirrorX().Cells())
}

func TestOrAndCount(t *testing.T) {
	a := GridFrom([][]bool{{true, false}, {false, false}})
	b := GridFrom([][]bool{{false, false}, {false, true}})
	c := NewGrid[bool](2)

	or := Or(a, b, c)
	assert.Equal(t, []bool{true, false, false, true}, or.Cells())
	assert.Equal(t, 2, Count(or))
	// Inputs are left untouched.
	assert.Equal(t, 1, Count(a))
}

func TestMap(t *testing.T) {
	g := GridFrom([][]uint8{{0, 9}, {3, 4}})
	tall := Map(g, func(h uint8) bool { return h > 3 })
	assert.Equal(t, []bool{false, true, false, true}, tall.Cells())
}

func TestGridMisuse(t *testing.T) {
	assert.Panics(t, func() { NewGrid[uint8](0) })
	assert.Panics(t, func() { GridFrom([][]uint8{{1, 2}, {3}}) })
	assert.Panics(t, func() { Or(NewGrid[bool](2), NewGrid[bool](3)) })
}
