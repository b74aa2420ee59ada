//go:build ebiten

package app

import (
	"aoc2022/internal/core"
	"aoc2022/internal/render"
	"aoc2022/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game replaying sim at sps steps per second.
func New(sim core.Sim, scale, sps int) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		clock:   core.NewFixedStep(sps),
		scale:   scale,
	}
	g.hud.Update(false)
	return g
}

// Reset restarts the simulation from its initial state.
func (g *Game) Reset() {
	g.sim.Reset()
	g.clock.Restart()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by the steps owed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	steps := 0
	if !g.paused {
		steps = g.clock.Due()
	}
	if g.tickOnce {
		steps++
		g.tickOnce = false
	}
	for i := 0; i < steps && !g.sim.Done(); i++ {
		g.sim.Step()
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.PaletteFor(g.sim), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), max(s.H*g.scale, g.hud.MinHeight())
}
