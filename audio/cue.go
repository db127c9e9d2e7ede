// Package audio plays short synthesized cues for mode and target transitions.
package audio

// Cue names a one-shot sound
type Cue uint8

const (
	CueActivate Cue = iota
	CueDeactivate
	CueConsume
	CueExpire
	cueCount
)

var cueNames = [cueCount]string{
	CueActivate:   "activate",
	CueDeactivate: "deactivate",
	CueConsume:    "consume",
	CueExpire:     "expire",
}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Cues lists every playable cue
func Cues() []Cue {
	return []Cue{CueActivate, CueDeactivate, CueConsume, CueExpire}
}
