// Command day10 runs the handheld's program, reporting the signal strength and
// the image drawn on its CRT.
package main

import (
	"fmt"
	"log"

	"aoc2022/internal/inputs"
	"aoc2022/internal/sims/cpu"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("day10: ")

	program, err := cpu.ParseProgram(inputs.Day10)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}
	fmt.Printf("q1: %d\n", cpu.SignalStrength(program))
	fmt.Println("q2:")
	for _, row := range cpu.Render(program) {
		fmt.Println(row)
	}
}
