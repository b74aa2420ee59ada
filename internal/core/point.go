package core

import "golang.org/x/exp/constraints"

// Pt2 is a point on an unbounded integer plane.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type used by the simulations.
type Pt = Pt2[int]

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Add returns p+q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{X: p.X - q.X, Y: p.Y - q.Y} }

// Chebyshev returns the larger of the per-axis distances between p and q.
func (p Pt2[T]) Chebyshev(q Pt2[T]) T {
	return max(Abs(p.X-q.X), Abs(p.Y-q.Y))
}

// Toward returns p moved by at most one unit on each axis in the direction of q.
func (p Pt2[T]) Toward(q Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + Sign(q.X-p.X), Y: p.Y + Sign(q.Y-p.Y)}
}
