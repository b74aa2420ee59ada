package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	program, err := ParseProgram([]byte("noop\r\naddx 3\n\naddx -5"))
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Noop(), Addx(3), Addx(-5)}, program)
	assert.Equal(t, "addx -5", program[2].String())
	assert.Equal(t, "noop", program[0].String())
}

func TestParseProgramErrors(t *testing.T) {
	cases := map[string]string{
		"unknown op":   "noop\njmp 3\n",
		"missing arg":  "addx\n",
		"bad argument": "addx three\n",
		"extra space":  "addx  3\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProgram([]byte(input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseProgramReportsLine(t *testing.T) {
	_, err := ParseProgram([]byte("noop\nnoop\nbogus\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
