package parameter

// Proximity Influence - Idle profile
const (
	IdleMaxDistance   = 200.0
	IdleIntensity     = 0.1
	IdleRotationRange = 90.0
	IdleScaleGain     = 0.2
)

// Proximity Influence - Active profile
const (
	ActiveMaxDistance   = 250.0
	ActiveIntensity     = 0.2
	ActiveRotationRange = 180.0
	ActiveScaleGain     = 0.4
)
