package parameter

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the display frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the host event channel
	EventQueueSize = 256
)

// Pointer Sampling
const (
	// PointerThrottle is the minimum interval between committed pointer samples
	PointerThrottle = 16 * time.Millisecond
)

// Logging
const (
	// LogDir is the directory receiving the debug log
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "ripple.log"

	// MaxLogSize triggers rotation of an existing log file at startup (10 MB)
	MaxLogSize = 10 * 1024 * 1024
)
