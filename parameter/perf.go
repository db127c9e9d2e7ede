package parameter

import "time"

// Performance Sampling
const (
	// PerfWindow is the rolling window over which fps is computed
	PerfWindow = 1000 * time.Millisecond
)

// Health thresholds, matched against each published window
const (
	FPSCritical = 30.0
	FPSWarning  = 50.0

	MemoryCriticalMB = 100.0
	MemoryWarningMB  = 50.0

	RenderWarningMs = 16.0

	NodeWarning = 1000
)
