package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// drain reads s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestCueStreamsAreFinite(t *testing.T) {
	for _, c := range Cues() {
		t.Run(c.String(), func(t *testing.T) {
			s := Streamer(c, testRate, 1)
			require.NotNil(t, s)

			n, peak := drain(t, s)
			assert.Equal(t, Length(c, testRate), n)
			assert.Greater(t, peak, 0.0, "cue must be audible")
			assert.LessOrEqual(t, peak, 1.0, "cue must not clip")
			assert.NoError(t, s.Err())
		})
	}
}

func TestSilentMaster(t *testing.T) {
	_, peak := drain(t, Streamer(CueConsume, testRate, 0))
	assert.Equal(t, 0.0, peak)
}

func TestUnknownCue(t *testing.T) {
	assert.Nil(t, Streamer(Cue(42), testRate, 1))
	assert.Equal(t, "unknown", Cue(42).String())
	assert.Equal(t, 0, Length(Cue(42), testRate))
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	p.Play(CueActivate)
	assert.Equal(t, 0, p.Played(), "play before init is a no-op")

	p.SetMuted(true)
	assert.True(t, p.Muted())
	p.Close()
	p.Close()
}
