package render

import (
	"math"

	"github.com/lixenwraith/ripple/influence"
)

// Shape spacing in container pixels
const (
	shapeSpacingX = 120.0
	shapeSpacingY = 100.0
)

var rotationGlyphs = [...]rune{'|', '/', '-', '\\'}

// Layout places a grid of reacting shapes across the container
// Rotation speed alternates direction and varies per column
func Layout(w, h float64) []influence.Element {
	var out []influence.Element
	row := 0
	for y := shapeSpacingY / 2; y < h; y += shapeSpacingY {
		col := 0
		for x := shapeSpacingX / 2; x < w; x += shapeSpacingX {
			speed := 0.5 + float64((col+row)%3)*0.5
			if (col+row)%2 == 1 {
				speed = -speed
			}
			out = append(out, influence.Element{X: x, Y: y, RotationSpeed: speed, BaseScale: 1})
			col++
		}
		row++
	}
	return out
}

// RotationGlyph picks the line glyph closest to an angle in degrees
func RotationGlyph(deg float64) rune {
	step := int(math.Round(deg / 45))
	idx := ((step % len(rotationGlyphs)) + len(rotationGlyphs)) % len(rotationGlyphs)
	return rotationGlyphs[idx]
}
