package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue (0..1)
	AudioMasterVolume = 0.5
)

// Cue Timing
const (
	CueNoteDuration  = 80 * time.Millisecond
	CueCoinDuration  = 60 * time.Millisecond
	CueChimeDuration = 120 * time.Millisecond
	CueBuzzDuration  = 100 * time.Millisecond
	CueAttack        = 5 * time.Millisecond
	CueRelease       = 40 * time.Millisecond
)

// Cue Volumes
const (
	CueModeVolume    = 0.8
	CueConsumeVolume = 0.6
	CueExpireVolume  = 0.3
)
