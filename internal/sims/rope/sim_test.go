package rope

import (
	"testing"

	"aoc2022/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, 2, FromMap(map[string]string{"knots": "2"}).Knots)
	assert.Equal(t, 10, FromMap(map[string]string{"knots": "1"}).Knots)
	assert.Equal(t, 10, FromMap(map[string]string{"knots": "many"}).Knots)
}

func TestSimReplay(t *testing.T) {
	moves := parse(t, []byte(shortPath))
	s := NewSim(moves, 2)

	size := s.Size()
	require.Equal(t, core.Size{W: 6, H: 5}, size)

	for !s.Done() {
		s.Step()
	}
	assert.Len(t, s.Trail(), 13)

	var heads, tails, trail int
	for _, c := range s.Cells() {
		switch c {
		case cellHead:
			heads++
		case cellTail:
			tails++
		case cellTrail:
			trail++
		}
	}
	assert.Equal(t, 1, heads)
	assert.Equal(t, 1, tails)
	// Head (2,2) and tail (1,2) both sit on visited cells.
	assert.Equal(t, 11, trail)
	assert.Contains(t, s.Readouts(), core.Readout{Label: "visited", Value: "13"})
}

func TestSimReset(t *testing.T) {
	s := NewSim(parse(t, []byte(shortPath)), 3)
	for range 10 {
		s.Step()
	}
	s.Reset()
	assert.False(t, s.Done())
	assert.Len(t, s.Trail(), 1)
	assert.Contains(t, s.Readouts(), core.Readout{Label: "step", Value: "0/24"})
}

func TestSimRegistered(t *testing.T) {
	factory, ok := core.Sims()["rope"]
	require.True(t, ok)
	sim, err := factory(map[string]string{"knots": "2"})
	require.NoError(t, err)
	assert.Equal(t, "rope", sim.Name())
	assert.Contains(t, sim.(core.ReadoutProvider).Readouts(), core.Readout{Label: "knots", Value: "2"})
}
