//go:build !ebiten

package ui

import "aoc2022/internal/core"

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Width is always zero in headless builds.
func (h *HUD) Width() int { return 0 }

// MinHeight is always zero in headless builds.
func (h *HUD) MinHeight() int { return 0 }

// Update is a no-op in headless builds.
func (h *HUD) Update(bool) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int) {}
