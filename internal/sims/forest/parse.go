package forest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"aoc2022/internal/core"
)

// ErrMalformed reports input that is not a square grid of digits.
var ErrMalformed = errors.New("malformed tree grid")

// ParseGrid reads one row of single-digit heights per line.
func ParseGrid(input []byte) (*core.Grid[uint8], error) {
	var rows [][]uint8
	sc := bufio.NewScanner(bytes.NewReader(input))
	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		row := make([]uint8, len(text))
		for i, c := range text {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("line %d: %w: byte %q at column %d", line, ErrMalformed, c, i+1)
			}
			row[i] = c - '0'
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: row has %d trees, want %d", line, ErrMalformed, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("%w: %d rows of %d trees is not square", ErrMalformed, len(rows), len(rows[0]))
	}
	return core.GridFrom(rows), nil
}
