package parameter

import "time"

// Active Mode
const (
	// ModeTTL is how long an activation lasts before timing out
	ModeTTL = 30 * time.Second

	// ModeTriggerThreshold is the number of clicks that implicitly activates the mode
	ModeTriggerThreshold = 10
)
