package influence

import "github.com/lixenwraith/ripple/parameter"

// Profile is the tuning set for one mode
type Profile struct {
	MaxDistance   float64
	Intensity     float64
	RotationRange float64
	ScaleGain     float64
}

var (
	IdleProfile = Profile{
		MaxDistance:   parameter.IdleMaxDistance,
		Intensity:     parameter.IdleIntensity,
		RotationRange: parameter.IdleRotationRange,
		ScaleGain:     parameter.IdleScaleGain,
	}

	ActiveProfile = Profile{
		MaxDistance:   parameter.ActiveMaxDistance,
		Intensity:     parameter.ActiveIntensity,
		RotationRange: parameter.ActiveRotationRange,
		ScaleGain:     parameter.ActiveScaleGain,
	}
)

// ProfileFor selects the profile matching the current mode
func ProfileFor(active bool) Profile {
	if active {
		return ActiveProfile
	}
	return IdleProfile
}
