package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name    string
		frame   MetricsFrame
		want    Level
		reasons int
	}{
		{"healthy", MetricsFrame{FPS: 60, MemoryMB: 20, RenderTimeMs: 10, NodeCount: 100}, LevelOK, 0},
		{"low fps warning", MetricsFrame{FPS: 45}, LevelWarning, 1},
		{"very low fps critical", MetricsFrame{FPS: 29}, LevelCritical, 1},
		{"fps boundary", MetricsFrame{FPS: 50}, LevelOK, 0},
		{"memory warning", MetricsFrame{FPS: 60, MemoryMB: 51}, LevelWarning, 1},
		{"memory critical", MetricsFrame{FPS: 60, MemoryMB: 101}, LevelCritical, 1},
		{"slow render", MetricsFrame{FPS: 60, RenderTimeMs: 16.5}, LevelWarning, 1},
		{"too many nodes", MetricsFrame{FPS: 60, NodeCount: 1001}, LevelWarning, 1},
		{"worst wins", MetricsFrame{FPS: 40, MemoryMB: 150, NodeCount: 2000}, LevelCritical, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Assess(tt.frame)
			assert.Equal(t, tt.want, h.Level)
			assert.Len(t, h.Reasons, tt.reasons)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "critical", LevelCritical.String())
	assert.Equal(t, "unknown", Level(9).String())
}
