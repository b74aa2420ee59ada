// Command day9 counts the positions visited by the tail of a 2-knot and a
// 10-knot rope.
package main

import (
	"fmt"
	"log"

	"aoc2022/internal/inputs"
	"aoc2022/internal/sims/rope"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("day9: ")

	moves, err := rope.ParseMoves(inputs.Day9)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}
	fmt.Printf("q1: %d\n", rope.TailVisits(moves, 2))
	fmt.Printf("q2: %d\n", rope.TailVisits(moves, 10))
}
