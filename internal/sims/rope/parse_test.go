package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves([]byte("U 1\r\nD 22\n\nL 3\nR 4"))
	require.NoError(t, err)
	assert.Equal(t, []Move{
		{Dir: Up, Steps: 1},
		{Dir: Down, Steps: 22},
		{Dir: Left, Steps: 3},
		{Dir: Right, Steps: 4},
	}, moves)
	assert.Equal(t, "D", moves[1].Dir.String())
}

func TestParseMovesErrors(t *testing.T) {
	cases := map[string]string{
		"unknown direction": "X 3\n",
		"no count":          "U\n",
		"zero steps":        "U 0\n",
		"negative steps":    "L -2\n",
		"word direction":    "UP 2\n",
		"junk count":        "R two\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMoves([]byte(input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
