package spawn

import (
	"math"

	"github.com/lixenwraith/ripple/influence"
)

// Area is the rectangle candidates are drawn from, origin at the padded corner
type Area struct {
	Width, Height float64
}

// SafeArea returns the container minus one element and twice the padding, clamped at zero
func SafeArea(containerW, containerH, elementSize, padding float64) Area {
	return Area{
		Width:  math.Max(0, containerW-elementSize-2*padding),
		Height: math.Max(0, containerH-elementSize-2*padding),
	}
}

// Diagonal returns the longest distance two points in the area can be apart
func (a Area) Diagonal() float64 {
	return math.Hypot(a.Width, a.Height)
}

// Contains reports whether p lies within the area bounds
func (a Area) Contains(p influence.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= a.Width && p.Y <= a.Height
}

// Feasible reports whether a target can ever be placed given minDistance
func (a Area) Feasible(minDistance float64) bool {
	return minDistance < a.Diagonal()
}

// CanPlace reports whether candidate keeps at least minDistance to every target
func CanPlace(candidate influence.Point, targets []Target, minDistance float64) bool {
	for _, t := range targets {
		if influence.Distance(candidate, t.Point()) < minDistance {
			return false
		}
	}
	return true
}
