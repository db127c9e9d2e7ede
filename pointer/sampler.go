// Package pointer turns the raw pointer-move stream into a rate-bounded sequence of
// committed samples.
//
// Throttle is trailing-edge with a frame-aligned flush: the first event after a quiet
// period commits immediately, events inside the throttle window only update a pending
// position, and the next display frame past the window commits it. At most one frame
// request is outstanding, so a burst never stacks callbacks.
package pointer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/event"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/status"
)

// ErrInvalidConfig is returned for a negative throttle
var ErrInvalidConfig = fmt.Errorf("invalid pointer config")

// Position is a committed pointer location
type Position struct {
	X, Y float64
}

// Sample is a committed position with its (non-decreasing) timestamp
type Sample struct {
	X, Y      float64
	Timestamp time.Time
}

// Config tunes the sampler
type Config struct {
	// Throttle is the minimum spacing between commits; zero commits every event
	Throttle time.Duration
}

// DefaultConfig returns the stock throttle
func DefaultConfig() Config {
	return Config{Throttle: parameter.PointerThrottle}
}

// Sampler is the rate-bounded pointer stream
type Sampler struct {
	cfg    Config
	broker *event.Broker
	sched  *clock.Scheduler

	latest    Sample
	hasSample bool

	pending    Position
	hasPending bool
	frameID    clock.FrameID
	frameArmed bool

	sinks []func(Sample)
	done  bool

	statCommits  *atomic.Int64
	statDeferred *atomic.Int64
	statFlushes  *atomic.Int64
}

// New creates a sampler and subscribes it passively to pointer moves
func New(broker *event.Broker, sched *clock.Scheduler, reg *status.Registry, cfg Config) (*Sampler, error) {
	if cfg.Throttle < 0 {
		return nil, fmt.Errorf("throttle %v: %w", cfg.Throttle, ErrInvalidConfig)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Sampler{
		cfg:          cfg,
		broker:       broker,
		sched:        sched,
		statCommits:  reg.Ints.Get("pointer.commits"),
		statDeferred: reg.Ints.Get("pointer.deferred"),
		statFlushes:  reg.Ints.Get("pointer.flushes"),
	}
	broker.Subscribe(event.EventPointerMove, s, event.Options{Passive: true})
	return s, nil
}

// Current returns the last committed position, origin before the first commit
func (s *Sampler) Current() Position {
	return Position{X: s.latest.X, Y: s.latest.Y}
}

// Latest returns the last committed sample
func (s *Sampler) Latest() (Sample, bool) {
	return s.latest, s.hasSample
}

// OnSample registers a sink receiving every committed sample in order
func (s *Sampler) OnSample(fn func(Sample)) {
	if fn == nil || s.done {
		return
	}
	s.sinks = append(s.sinks, fn)
}

// HandleEvent implements event.Handler
func (s *Sampler) HandleEvent(ev *event.Event) {
	if s.done || ev.Type != event.EventPointerMove {
		return
	}

	now := ev.Timestamp
	if now.IsZero() {
		now = s.sched.Now()
	}

	if s.elapsed(now) {
		s.cancelFlush()
		s.commit(ev.X, ev.Y, now)
		return
	}

	s.pending = Position{X: ev.X, Y: ev.Y}
	s.hasPending = true
	s.statDeferred.Add(1)

	if !s.frameArmed {
		s.frameID = s.sched.RequestFrame(s.flush)
		s.frameArmed = true
	}
}

// flush runs on a display frame and commits the pending position once the window has passed
func (s *Sampler) flush(now time.Time) {
	s.frameArmed = false
	if s.done || !s.hasPending {
		return
	}

	if !s.elapsed(now) {
		s.frameID = s.sched.RequestFrame(s.flush)
		s.frameArmed = true
		return
	}

	s.hasPending = false
	s.statFlushes.Add(1)
	s.commit(s.pending.X, s.pending.Y, now)
}

func (s *Sampler) elapsed(now time.Time) bool {
	if !s.hasSample {
		return true
	}
	return max(now.Sub(s.latest.Timestamp), 0) >= s.cfg.Throttle
}

func (s *Sampler) cancelFlush() {
	s.hasPending = false
	if s.frameArmed {
		s.sched.CancelFrame(s.frameID)
		s.frameArmed = false
	}
}

func (s *Sampler) commit(x, y float64, now time.Time) {
	if s.hasSample && now.Before(s.latest.Timestamp) {
		now = s.latest.Timestamp
	}

	s.latest = Sample{X: x, Y: y, Timestamp: now}
	s.hasSample = true
	s.statCommits.Add(1)

	for _, fn := range s.sinks {
		fn(s.latest)
	}
}

// Teardown unsubscribes and cancels the pending flush; safe to call repeatedly
func (s *Sampler) Teardown() {
	if s.done {
		return
	}
	s.done = true
	s.cancelFlush()
	s.broker.Unsubscribe(event.EventPointerMove, s)
	s.sinks = nil
}
