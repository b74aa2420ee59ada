// Package rope simulates a chain of knots dragged across an unbounded grid by
// its head, one unit step at a time.
package rope

import "aoc2022/internal/core"

// Dir is a unit direction for the head.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
)

var dirDelta = [...]core.Pt{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta returns the offset of one step in direction d.
func (d Dir) Delta() core.Pt { return dirDelta[d] }

func (d Dir) String() string { return "UDLR"[d : d+1] }

// Move drags the head Steps units in direction Dir.
type Move struct {
	Dir   Dir
	Steps int
}

// Expand flattens moves into the unit steps they are made of, in order.
func Expand(moves []Move) []Dir {
	n := 0
	for _, m := range moves {
		n += m.Steps
	}
	steps := make([]Dir, 0, n)
	for _, m := range moves {
		for range m.Steps {
			steps = append(steps, m.Dir)
		}
	}
	return steps
}

// Follow returns where follower ends up after leader has moved. A follower
// touching its leader (overlapping or any of the eight neighbours) stays put;
// otherwise it moves one unit toward the leader on every axis with a gap.
// The rule is only valid while the two are at most two units apart.
func Follow(leader, follower core.Pt) core.Pt {
	if leader.Chebyshev(follower) <= 1 {
		return follower
	}
	return follower.Toward(leader)
}

// Rope is a chain of knots. Knot 0 is the head and the last knot the tail. All
// knots start at the origin.
type Rope struct {
	knots []core.Pt
}

// New returns a rope of n knots. It panics when n < 2.
func New(n int) *Rope {
	if n < 2 {
		panic("rope: a rope needs at least two knots")
	}
	return &Rope{knots: make([]core.Pt, n)}
}

// Step moves the head one unit in direction d and lets every knot follow its
// predecessor, head to tail.
func (r *Rope) Step(d Dir) {
	r.knots[0] = r.knots[0].Add(d.Delta())
	for i := 1; i < len(r.knots); i++ {
		r.knots[i] = Follow(r.knots[i-1], r.knots[i])
	}
}

// Head returns the position of the first knot.
func (r *Rope) Head() core.Pt { return r.knots[0] }

// Tail returns the position of the last knot.
func (r *Rope) Tail() core.Pt { return r.knots[len(r.knots)-1] }

// Knots returns the knot positions, head first. The slice is owned by the rope.
func (r *Rope) Knots() []core.Pt { return r.knots }

// Len returns the number of knots.
func (r *Rope) Len() int { return len(r.knots) }

// Trail is the set of positions a knot has occupied.
type Trail map[core.Pt]struct{}

// Add records p.
func (t Trail) Add(p core.Pt) { t[p] = struct{}{} }

// Has reports whether p has been visited.
func (t Trail) Has(p core.Pt) bool {
	_, ok := t[p]
	return ok
}

// Simulate drags a rope of the given length through moves and returns every
// position its tail visited, the starting position included.
func Simulate(moves []Move, knots int) Trail {
	r := New(knots)
	trail := Trail{r.Tail(): {}}
	for _, d := range Expand(moves) {
		r.Step(d)
		trail.Add(r.Tail())
	}
	return trail
}

// TailVisits returns the number of distinct positions the tail visits.
func TailVisits(moves []Move, knots int) int {
	return len(Simulate(moves, knots))
}
