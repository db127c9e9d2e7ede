package engine

import (
	"fmt"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/mode"
	"github.com/lixenwraith/ripple/perf"
	"github.com/lixenwraith/ripple/pointer"
	"github.com/lixenwraith/ripple/spawn"
)

// CuePlayer receives transition cues; satisfied by audio.Player
type CuePlayer interface {
	Play(c audio.Cue)
}

// Config aggregates every component's settings
type Config struct {
	Pointer pointer.Config
	Mode    mode.Config
	Spawn   spawn.Config
	Perf    perf.Config

	// EnablePerf starts frame sampling at construction
	EnablePerf bool

	// Provider drives the scheduler; nil uses monotonic time
	Provider clock.TimeProvider

	// Cues is optional
	Cues CuePlayer
}

// DefaultConfig returns stock tuning with gopsutil-backed perf sampling
func DefaultConfig() Config {
	return Config{
		Pointer:    pointer.DefaultConfig(),
		Mode:       mode.DefaultConfig(),
		Spawn:      spawn.DefaultConfig(),
		Perf:       perf.DefaultConfig(),
		EnablePerf: true,
	}
}

// Validate checks component settings that do not depend on the container
func (c Config) Validate() error {
	if c.Pointer.Throttle < 0 {
		return fmt.Errorf("pointer throttle %v: %w", c.Pointer.Throttle, pointer.ErrInvalidConfig)
	}
	if err := c.Mode.Validate(); err != nil {
		return fmt.Errorf("mode config: %w", err)
	}
	if err := c.Spawn.Validate(); err != nil {
		return fmt.Errorf("spawn config: %w", err)
	}
	return nil
}
