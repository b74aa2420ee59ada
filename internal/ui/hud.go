//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"aoc2022/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	margin     = 8
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 255, G: 220, B: 120, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	hintColor  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

var keyHints = []string{
	"space  pause",
	"n      step",
	"r      restart",
	"q/esc  quit",
}

// HUD renders the readout panel to the right of the simulation view.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	lines  []string
	paused bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// MinHeight returns the height needed to show every line.
func (h *HUD) MinHeight() int {
	return margin*2 + lineHeight*(len(h.lines)+len(keyHints)+3)
}

// Update refreshes the cached readouts from the simulation.
func (h *HUD) Update(paused bool) {
	h.paused = paused
	h.lines = h.lines[:0]
	if provider, ok := h.sim.(core.ReadoutProvider); ok {
		for _, r := range provider.Readouts() {
			h.lines = append(h.lines, fmt.Sprintf("%-10s %s", r.Label, r.Value))
		}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	y := margin + lineHeight
	text.Draw(h.panel, h.title(), basicfont.Face7x13, margin, y, titleColor)
	y += lineHeight * 2
	for _, line := range h.lines {
		text.Draw(h.panel, line, basicfont.Face7x13, margin, y, textColor)
		y += lineHeight
	}
	y += lineHeight
	for _, hint := range keyHints {
		text.Draw(h.panel, hint, basicfont.Face7x13, margin, y, hintColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) title() string {
	switch {
	case h.sim.Done():
		return h.sim.Name() + " (done)"
	case h.paused:
		return h.sim.Name() + " (paused)"
	}
	return h.sim.Name()
}
