// Command day8 counts the trees visible from outside the grid and finds the
// best scenic score.
package main

import (
	"fmt"
	"log"

	"aoc2022/internal/inputs"
	"aoc2022/internal/sims/forest"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("day8: ")

	trees, err := forest.ParseGrid(inputs.Day8)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}
	fmt.Printf("q1: %d\n", forest.CountVisible(trees))
	fmt.Printf("q2: %d\n", forest.MaxScenicScore(trees))
}
