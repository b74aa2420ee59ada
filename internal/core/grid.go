package core

// Grid stores a square 2D grid of cell values in row-major order. (0, 0) is the
// top-left cell; x grows to the right and y grows downwards.
type Grid[T any] struct {
	n    int
	data []T
}

// NewGrid allocates a zeroed grid with the given side length. It panics when
// side is not positive.
func NewGrid[T any](side int) *Grid[T] {
	if side <= 0 {
		panic("core: grid side must be positive")
	}
	return &Grid[T]{n: side, data: make([]T, side*side)}
}

// GridFrom wraps rows in a grid. Every row must have len(rows) entries.
func GridFrom[T any](rows [][]T) *Grid[T] {
	g := NewGrid[T](len(rows))
	for y, row := range rows {
		if len(row) != g.n {
			panic("core: grid rows must be square")
		}
		copy(g.data[y*g.n:], row)
	}
	return g
}

// Side returns the side length.
func (g *Grid[T]) Side() int { return g.n }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.n + x }

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.n+x] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.n+x] = v }

// MirrorX returns a copy flipped left to right.
func (g *Grid[T]) MirrorX() *Grid[T] {
	out := NewGrid[T](g.n)
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			out.Set(g.n-1-x, y, g.At(x, y))
		}
	}
	return out
}

// MirrorY returns a copy flipped top to bottom.
func (g *Grid[T]) MirrorY() *Grid[T] {
	out := NewGrid[T](g.n)
	for y := 0; y < g.n; y++ {
		copy(out.data[(g.n-1-y)*g.n:(g.n-y)*g.n], g.data[y*g.n:(y+1)*g.n])
	}
	return out
}

// Map builds a new grid by applying f to every cell of g.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := NewGrid[U](g.n)
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}

// Or combines boolean grids cell by cell. All grids must share a side length.
func Or(grids ...*Grid[bool]) *Grid[bool] {
	if len(grids) == 0 {
		panic("core: Or needs at least one grid")
	}
	out := NewGrid[bool](grids[0].n)
	for _, g := range grids {
		if g.n != out.n {
			panic("core: Or on grids of different sizes")
		}
		for i, v := range g.data {
			out.data[i] = out.data[i] || v
		}
	}
	return out
}

// Count returns the number of set cells.
func Count(g *Grid[bool]) int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}
