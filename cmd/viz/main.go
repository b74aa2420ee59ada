//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"aoc2022/internal/app"
	"aoc2022/internal/core"
	_ "aoc2022/internal/sims/cpu"
	_ "aoc2022/internal/sims/forest"
	_ "aoc2022/internal/sims/rope"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("viz: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim, err := factory(cfg.Set)
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.SPS)

	ebiten.SetWindowTitle("aoc2022 — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
