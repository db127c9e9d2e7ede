package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ripple/parameter"
)

// Player mixes cues into the speaker
// Play before Init, after Close or while muted is a no-op
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		master: parameter.AudioMasterVolume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles output without closing the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the mute flag
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues cue c on the mixer
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Streamer(c, p.rate, p.master)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Played returns how many cues reached the mixer
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close drains the mixer and releases the speaker; safe to call repeatedly
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
