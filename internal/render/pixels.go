package render

import (
	"image/color"

	"aoc2022/internal/core"
)

var monochrome = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// PaletteFor returns the palette sim draws with. Sims without one are drawn in
// black and white.
func PaletteFor(sim core.Sim) []color.RGBA {
	if p, ok := sim.(core.PaletteProvider); ok && len(p.Palette()) > 0 {
		return p.Palette()
	}
	return monochrome
}

// fillRGBA converts cell values into RGBA pixels in buf. Values past the end of
// the palette use its last color; an empty palette clears buf to transparent
// black.
func fillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
