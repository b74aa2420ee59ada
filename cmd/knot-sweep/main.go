// Command knot-sweep replays the day 9 moves with every rope length in a range
// and reports how many positions the tail visits for each.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"aoc2022/internal/inputs"
	"aoc2022/internal/sims/rope"
)

type sweepResult struct {
	knots   int
	visited int
	head    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("knot-sweep: ")

	minKnots := flag.Int("min", 2, "shortest rope to simulate")
	maxKnots := flag.Int("max", 20, "longest rope to simulate")
	flag.Parse()

	if *minKnots < 2 || *maxKnots < *minKnots {
		log.Fatalf("need 2 <= min <= max, got min=%d max=%d", *minKnots, *maxKnots)
	}

	moves, err := rope.ParseMoves(inputs.Day9)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	start := time.Now()
	results := sweep(moves, *minKnots, *maxKnots)
	for _, res := range results {
		fmt.Printf("knots=%2d visited=%5d (%.1f%% of head's %d)\n",
			res.knots, res.visited, 100*float64(res.visited)/float64(res.head), res.head)
	}
	fmt.Printf("\n%d lengths in %s; %s\n", len(results), time.Since(start).Round(time.Millisecond), monotonicity(results))
}

func sweep(moves []rope.Move, lo, hi int) []sweepResult {
	// The head's own trail is the 1-knot baseline every tail is compared with.
	head := make(rope.Trail)
	r := rope.New(2)
	head.Add(r.Head())
	for _, d := range rope.Expand(moves) {
		r.Step(d)
		head.Add(r.Head())
	}

	out := make([]sweepResult, 0, hi-lo+1)
	for knots := lo; knots <= hi; knots++ {
		out = append(out, sweepResult{knots: knots, visited: rope.TailVisits(moves, knots), head: len(head)})
	}
	return out
}

// monotonicity describes whether adding knots ever increased the tail's count.
func monotonicity(results []sweepResult) string {
	for i := 1; i < len(results); i++ {
		if results[i].visited > results[i-1].visited {
			return fmt.Sprintf("not monotonic: %d knots visit more than %d", results[i].knots, results[i-1].knots)
		}
	}
	return "counts never increase with length"
}
