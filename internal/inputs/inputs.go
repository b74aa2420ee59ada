// Package inputs holds the puzzle inputs compiled into the daily programs.
package inputs

import _ "embed"

var (
	//go:embed day8.txt
	Day8 []byte

	//go:embed day9.txt
	Day9 []byte

	//go:embed day10.txt
	Day10 []byte
)
