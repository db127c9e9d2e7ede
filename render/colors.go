package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbHUDText    = tcell.NewRGBColor(180, 180, 180)

	RgbShapeIdle   = tcell.NewRGBColor(100, 150, 255)
	RgbShapeActive = tcell.NewRGBColor(255, 80, 80)

	RgbCursorIdle   = tcell.NewRGBColor(255, 165, 0)
	RgbCursorActive = tcell.NewRGBColor(255, 255, 255)

	RgbTargetFresh = tcell.NewRGBColor(255, 255, 0)
	RgbTargetStale = tcell.NewRGBColor(200, 50, 50)

	RgbModeIdleBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeActiveBg = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbHealthOK       = tcell.NewRGBColor(0, 200, 0)
	RgbHealthWarning  = tcell.NewRGBColor(255, 255, 0)
	RgbHealthCritical = tcell.NewRGBColor(255, 0, 0)
)

// lerp blends from a to b by t in [0, 1]
func lerp(a, b tcell.Color, t float64) tcell.Color {
	t = max(0, min(1, t))
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 { return x + int32(float64(y-x)*t) }
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
