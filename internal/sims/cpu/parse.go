package cpu

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports an input line that is not a valid instruction.
var ErrMalformed = errors.New("malformed instruction")

// ParseProgram decodes one instruction per line. Blank lines are skipped.
func ParseProgram(input []byte) ([]Instruction, error) {
	var program []Instruction
	sc := bufio.NewScanner(bytes.NewReader(input))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		ins, err := parseInstruction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		program = append(program, ins)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

func parseInstruction(text string) (Instruction, error) {
	if text == "noop" {
		return Noop(), nil
	}
	arg, ok := strings.CutPrefix(text, "addx ")
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
	}
	return Addx(delta), nil
}
