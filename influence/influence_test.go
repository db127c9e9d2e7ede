package influence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		name    string
		pointer Point
		maxD    float64
		want    float64
	}{
		{"on element", Point{0, 0}, 200, 1},
		{"half way", Point{60, 80}, 200, 0.5},
		{"at boundary", Point{200, 0}, 200, 0},
		{"beyond boundary", Point{300, 400}, 200, 0},
		{"zero max distance", Point{0, 0}, 0, 0},
		{"negative max distance", Point{0, 0}, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Factor(tt.pointer, Point{}, tt.maxD), 1e-9)
		})
	}
}

func TestComputeIdle(t *testing.T) {
	// Pointer 100 px right of the element: factor 0.5 under the idle profile
	r := Compute(Point{X: 100, Y: 0}, Element{RotationSpeed: 1}, IdleProfile)

	assert.InDelta(t, 0.5, r.Factor, 1e-9)
	assert.InDelta(t, 5.0, r.DX, 1e-9)
	assert.InDelta(t, 0.0, r.DY, 1e-9)
	assert.InDelta(t, 45.0, r.Rotation, 1e-9)
	assert.InDelta(t, 1.1, r.Scale, 1e-9)
}

func TestComputeActive(t *testing.T) {
	r := Compute(Point{X: 50, Y: 50}, Element{X: 50, Y: 100, RotationSpeed: -0.5, BaseScale: 2}, ProfileFor(true))

	assert.InDelta(t, 0.8, r.Factor, 1e-9)
	assert.InDelta(t, 0.0, r.DX, 1e-9)
	assert.InDelta(t, -8.0, r.DY, 1e-9)
	assert.InDelta(t, -72.0, r.Rotation, 1e-9)
	assert.InDelta(t, 2.32, r.Scale, 1e-9)
}

func TestComputeOutOfRange(t *testing.T) {
	r := Compute(Point{X: 1000, Y: 1000}, Element{RotationSpeed: 3}, IdleProfile)
	assert.Equal(t, Result{Scale: 1}, r)
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, IdleProfile, ProfileFor(false))
	assert.Equal(t, ActiveProfile, ProfileFor(true))
	assert.Greater(t, ActiveProfile.MaxDistance, IdleProfile.MaxDistance)
}
