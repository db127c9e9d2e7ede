// Package influence maps pointer proximity to element displacement, rotation and scale.
// All functions are pure.
package influence

import "math"

// Point is a location in container coordinates
type Point struct {
	X, Y float64
}

// Element is a shape reacting to the pointer
type Element struct {
	X, Y          float64
	RotationSpeed float64
	// BaseScale of zero is treated as 1
	BaseScale float64
}

// Result is the transform applied to an element
type Result struct {
	DX, DY   float64
	Rotation float64 // degrees
	Scale    float64
	Factor   float64
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Factor returns the proximity weight in [0, 1], 1 at the element and 0 at or beyond maxDistance
func Factor(pointer, element Point, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return math.Max(0, maxDistance-Distance(pointer, element)) / maxDistance
}

// Compute returns the influence of pointer on el under profile p
func Compute(pointer Point, el Element, p Profile) Result {
	f := Factor(pointer, Point{X: el.X, Y: el.Y}, p.MaxDistance)

	base := el.BaseScale
	if base == 0 {
		base = 1
	}

	return Result{
		DX:       (pointer.X - el.X) * f * p.Intensity,
		DY:       (pointer.Y - el.Y) * f * p.Intensity,
		Rotation: el.RotationSpeed * f * p.RotationRange,
		Scale:    base + f*p.ScaleGain,
		Factor:   f,
	}
}
