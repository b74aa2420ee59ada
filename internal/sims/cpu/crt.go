package cpu

import "strings"

const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

// Lit reports whether the pixel drawn during cycle is lit when the sprite is
// centred on column x. The sprite is three pixels wide.
func Lit(cycle, x int) bool {
	col := (cycle - 1) % ScreenWidth
	return col >= x-1 && col <= x+1
}

// Render draws the CRT image produced by program, one row per string. Cycles
// past the last pixel are ignored; pixels never reached stay dark.
func Render(program []Instruction) []string {
	var rows [ScreenHeight][ScreenWidth]byte
	for y := range rows {
		for x := range rows[y] {
			rows[y][x] = '.'
		}
	}
	for obs := range Trace(program) {
		i := obs.Cycle - 1
		if i >= ScreenWidth*ScreenHeight {
			break
		}
		if Lit(obs.Cycle, obs.X) {
			rows[i/ScreenWidth][i%ScreenWidth] = '#'
		}
	}
	out := make([]string, ScreenHeight)
	for y := range rows {
		out[y] = string(rows[y][:])
	}
	return out
}

// RenderString joins the rendered rows with newlines.
func RenderString(program []Instruction) string {
	return strings.Join(Render(program), "\n")
}
