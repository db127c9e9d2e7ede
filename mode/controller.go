// Package mode owns the Idle/Active state machine.
//
// Activation happens by explicit Toggle or implicitly once the trigger counter reaches
// its threshold. Every activation arms exactly one expiry timer; every exit cancels it.
package mode

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/status"
)

// ErrInvalidConfig is returned when TTL or threshold are out of range
var ErrInvalidConfig = errors.New("invalid mode config")

// Config tunes activation
type Config struct {
	TTL       time.Duration
	Threshold int64
}

// DefaultConfig returns the stock 30s activation and 10-trigger threshold
func DefaultConfig() Config {
	return Config{
		TTL:       parameter.ModeTTL,
		Threshold: parameter.ModeTriggerThreshold,
	}
}

// Validate checks TTL and threshold bounds
func (c Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("ttl %v must be positive: %w", c.TTL, ErrInvalidConfig)
	}
	if c.Threshold < 1 {
		return fmt.Errorf("threshold %d must be at least 1: %w", c.Threshold, ErrInvalidConfig)
	}
	return nil
}

// Controller is the single writer of Mode
type Controller struct {
	cfg   Config
	sched *clock.Scheduler

	state       State
	activatedAt time.Time

	triggers atomic.Int64

	timerID    clock.TimerID
	timerArmed bool
	generation uint64

	observers []func(Transition)
	done      bool

	statActive      *atomic.Bool
	statActivations *atomic.Int64
	statTriggers    *atomic.Int64
}

// NewController validates cfg and returns an idle controller
func NewController(sched *clock.Scheduler, reg *status.Registry, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &Controller{
		cfg:             cfg,
		sched:           sched,
		state:           StateIdle,
		statActive:      reg.Bools.Get("mode.active"),
		statActivations: reg.Ints.Get("mode.activations"),
		statTriggers:    reg.Ints.Get("mode.triggers"),
	}, nil
}

// IsActive reports whether the controller is in Active
func (c *Controller) IsActive() bool {
	return c.state == StateActive
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Snapshot returns the current Mode view
func (c *Controller) Snapshot() Mode {
	m := Mode{TTL: c.cfg.TTL}
	if c.state == StateActive {
		m.Active = true
		m.ActivatedAt = c.activatedAt
	}
	return m
}

// TriggerCount returns the triggers accumulated toward the threshold
func (c *Controller) TriggerCount() int64 {
	return c.triggers.Load()
}

// ArmedTimers returns 1 while an expiry timer is pending, else 0
func (c *Controller) ArmedTimers() int {
	if c.timerArmed {
		return 1
	}
	return 0
}

// OnChange registers an observer called after every transition
func (c *Controller) OnChange(fn func(Transition)) {
	if fn == nil || c.done {
		return
	}
	c.observers = append(c.observers, fn)
}

// Toggle flips Idle and Active
func (c *Controller) Toggle() {
	if c.done {
		return
	}
	if c.state == StateActive {
		c.deactivate(CauseToggle)
		return
	}
	c.activate(CauseToggle)
}

// RecordTrigger counts one trigger while Idle and activates on reaching the threshold
// Triggers while Active are ignored
func (c *Controller) RecordTrigger() {
	if c.done || c.state == StateActive {
		return
	}
	c.statTriggers.Add(1)

	if n := c.triggers.Add(1); n >= c.cfg.Threshold {
		c.activate(CauseThreshold)
	}
}

func (c *Controller) activate(cause Cause) {
	c.cancelTimer()
	c.triggers.Store(0)

	from := c.state
	now := c.sched.Now()
	c.state = StateActive
	c.activatedAt = now

	c.generation++
	gen := c.generation
	c.timerID = c.sched.AfterFunc(c.cfg.TTL, func() { c.expire(gen) })
	c.timerArmed = true

	c.statActive.Store(true)
	c.statActivations.Add(1)
	c.notify(Transition{From: from, To: StateActive, Cause: cause, At: now})
}

func (c *Controller) deactivate(cause Cause) {
	c.cancelTimer()
	c.state = StateIdle
	c.activatedAt = time.Time{}
	c.statActive.Store(false)
	c.notify(Transition{From: StateActive, To: StateIdle, Cause: cause, At: c.sched.Now()})
}

func (c *Controller) expire(gen uint64) {
	if c.done || gen != c.generation || c.state != StateActive {
		log.Printf("mode: stale expiry timer ignored (gen %d, current %d)", gen, c.generation)
		return
	}
	c.timerArmed = false
	c.deactivate(CauseTimeout)
}

func (c *Controller) cancelTimer() {
	if c.timerArmed {
		c.sched.CancelTimer(c.timerID)
		c.timerArmed = false
	}
}

func (c *Controller) notify(t Transition) {
	for _, fn := range c.observers {
		fn(t)
	}
}

// Teardown cancels the expiry timer and drops observers; safe to call repeatedly
func (c *Controller) Teardown() {
	if c.done {
		return
	}
	c.done = true
	c.cancelTimer()
	c.observers = nil
}
