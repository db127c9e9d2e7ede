package parameter

import "time"

// Target Spawning
const (
	// SpawnInterval is the period between spawn attempts
	SpawnInterval = 1 * time.Second

	// TargetTTL is the lifetime of an unconsumed target
	TargetTTL = 2 * time.Second

	// SpawnMinDistance is the minimum distance between two live targets
	SpawnMinDistance = 50.0

	// SpawnMaxAttempts caps rejection sampling per tick
	SpawnMaxAttempts = 50

	// TargetSize is the edge length of a target
	TargetSize = 50.0

	// SpawnPadding is the margin kept clear around the container edges
	SpawnPadding = 25.0

	// TargetPoints is awarded for each consumed target
	TargetPoints = 10
)
