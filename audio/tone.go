package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ripple/parameter"
)

// square is a band-unlimited square oscillator
type square struct {
	step  float64
	phase float64
}

func (s *square) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 1.0
		if s.phase >= 0.5 {
			v = -1.0
		}
		samples[i][0], samples[i][1] = v, v
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// envelope ramps the first attack samples up and the last release samples down
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note returns a shaped tone of exactly d
func note(rate beep.SampleRate, freq float64, d time.Duration, sq bool) beep.Streamer {
	n := rate.N(d)

	var src beep.Streamer
	if sq {
		src = &square{step: freq / float64(rate)}
	} else {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return beep.Silence(n)
		}
		src = tone
	}

	return &envelope{
		streamer: beep.Take(n, src),
		total:    n,
		attack:   rate.N(parameter.CueAttack),
		release:  rate.N(parameter.CueRelease),
	}
}

// volume scales s linearly; zero or less silences it
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Streamer builds the finite stream for cue c at rate, scaled by master
func Streamer(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	switch c {
	case CueActivate:
		return volume(beep.Seq(
			note(rate, 440, parameter.CueNoteDuration, false),
			note(rate, 659.25, parameter.CueNoteDuration, false),
		), master*parameter.CueModeVolume)
	case CueDeactivate:
		return volume(beep.Seq(
			note(rate, 659.25, parameter.CueNoteDuration, false),
			note(rate, 329.63, parameter.CueNoteDuration, false),
		), master*parameter.CueModeVolume)
	case CueConsume:
		return volume(beep.Seq(
			note(rate, 987.77, parameter.CueCoinDuration, false),
			note(rate, 1318.51, parameter.CueChimeDuration, false),
		), master*parameter.CueConsumeVolume)
	case CueExpire:
		return volume(note(rate, 120, parameter.CueBuzzDuration, true), master*parameter.CueExpireVolume)
	default:
		return nil
	}
}

// Length returns the sample count of cue c at rate
func Length(c Cue, rate beep.SampleRate) int {
	switch c {
	case CueActivate, CueDeactivate:
		return 2 * rate.N(parameter.CueNoteDuration)
	case CueConsume:
		return rate.N(parameter.CueCoinDuration) + rate.N(parameter.CueChimeDuration)
	case CueExpire:
		return rate.N(parameter.CueBuzzDuration)
	default:
		return 0
	}
}
