package perf

import (
	"fmt"

	"github.com/lixenwraith/ripple/parameter"
)

// Level grades a metrics window
type Level uint8

const (
	LevelOK Level = iota
	LevelWarning
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelOK:
		return "ok"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Health is the classification of one window with the reasons that raised it
type Health struct {
	Level   Level
	Reasons []string
}

// Assess classifies a metrics window against the fps, memory, render and node thresholds
func Assess(f MetricsFrame) Health {
	var h Health
	raise := func(l Level, format string, args ...any) {
		h.Level = max(h.Level, l)
		h.Reasons = append(h.Reasons, fmt.Sprintf(format, args...))
	}

	switch {
	case f.FPS < parameter.FPSCritical:
		raise(LevelCritical, "fps %.0f", f.FPS)
	case f.FPS < parameter.FPSWarning:
		raise(LevelWarning, "fps %.0f", f.FPS)
	}

	switch {
	case f.MemoryMB > parameter.MemoryCriticalMB:
		raise(LevelCritical, "memory %.0fMB", f.MemoryMB)
	case f.MemoryMB > parameter.MemoryWarningMB:
		raise(LevelWarning, "memory %.0fMB", f.MemoryMB)
	}

	if f.RenderTimeMs > parameter.RenderWarningMs {
		raise(LevelWarning, "render %.2fms", f.RenderTimeMs)
	}
	if f.NodeCount > parameter.NodeWarning {
		raise(LevelWarning, "nodes %d", f.NodeCount)
	}
	return h
}
