package rope

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports an input line that is not a valid move.
var ErrMalformed = errors.New("malformed move")

// ParseMoves decodes one "<U|D|L|R> <steps>" move per line. Blank lines are
// skipped.
func ParseMoves(input []byte) ([]Move, error) {
	var moves []Move
	sc := bufio.NewScanner(bytes.NewReader(input))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m, err := parseMove(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		moves = append(moves, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

func parseMove(text string) (Move, error) {
	dir, count, ok := strings.Cut(text, " ")
	if !ok || len(dir) != 1 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	d := strings.IndexByte("UDLR", dir[0])
	if d < 0 {
		return Move{}, fmt.Errorf("%w: unknown direction %q", ErrMalformed, dir)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return Move{}, fmt.Errorf("%w: bad step count %q", ErrMalformed, count)
	}
	return Move{Dir: Dir(d), Steps: n}, nil
}
