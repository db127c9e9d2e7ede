// Package engine is the composition root of the interaction core.
//
// Every component shares one Scheduler and one Broker. The host feeds events through
// Dispatch and drives time through Step; renderers read snapshots through the read API.
package engine

import (
	"fmt"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/event"
	"github.com/lixenwraith/ripple/influence"
	"github.com/lixenwraith/ripple/mode"
	"github.com/lixenwraith/ripple/perf"
	"github.com/lixenwraith/ripple/pointer"
	"github.com/lixenwraith/ripple/spawn"
	"github.com/lixenwraith/ripple/status"
)

// Host supplies the container size in pointer coordinates
type Host interface {
	ContainerSize() (w, h float64)
}

// clickCounter feeds clicks into the implicit activation threshold
type clickCounter struct {
	ctrl *mode.Controller
}

func (c *clickCounter) HandleEvent(*event.Event) {
	c.ctrl.RecordTrigger()
}

// Engine owns the scheduler, broker and every interaction component
type Engine struct {
	cfg Config

	sched  *clock.Scheduler
	broker *event.Broker
	reg    *status.Registry

	pointer *pointer.Sampler
	mode    *mode.Controller
	clicks  *clickCounter
	spawner *spawn.Scheduler
	perf    *perf.Sampler

	done bool
}

// New validates cfg and builds every component against the host's container
func New(cfg Config, host Host) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		sched:  clock.NewScheduler(cfg.Provider),
		broker: event.NewBroker(),
		reg:    status.NewRegistry(),
	}

	var err error
	if e.pointer, err = pointer.New(e.broker, e.sched, e.reg, cfg.Pointer); err != nil {
		return nil, fmt.Errorf("pointer: %w", err)
	}

	if e.mode, err = mode.NewController(e.sched, e.reg, cfg.Mode); err != nil {
		e.pointer.Teardown()
		return nil, fmt.Errorf("mode: %w", err)
	}

	w, h := host.ContainerSize()
	if e.spawner, err = spawn.New(e.broker, e.sched, e.mode, e.reg, cfg.Spawn, w, h); err != nil {
		e.mode.Teardown()
		e.pointer.Teardown()
		return nil, fmt.Errorf("spawn: %w", err)
	}

	e.clicks = &clickCounter{ctrl: e.mode}
	e.broker.Subscribe(event.EventClick, e.clicks, event.Options{Passive: true})

	perfCfg := cfg.Perf
	if perfCfg.Nodes == nil {
		perfCfg.Nodes = func() int { return len(e.spawner.LiveTargets()) }
	}
	e.perf = perf.New(e.sched, e.reg, perfCfg)

	e.mode.OnChange(e.onModeChange)
	e.spawner.OnChange(e.onTargetChange)

	if cfg.EnablePerf {
		e.perf.Start()
	}
	return e, nil
}

func (e *Engine) onModeChange(t mode.Transition) {
	active := t.To == mode.StateActive
	e.spawner.OnModeChange(active)

	if active {
		e.cue(audio.CueActivate)
	} else {
		e.cue(audio.CueDeactivate)
	}
}

func (e *Engine) onTargetChange(c spawn.Change) {
	switch c.Kind {
	case spawn.ChangeConsumed:
		e.cue(audio.CueConsume)
	case spawn.ChangeExpired:
		e.cue(audio.CueExpire)
	}
}

func (e *Engine) cue(c audio.Cue) {
	if e.cfg.Cues != nil {
		e.cfg.Cues.Play(c)
	}
}

// Pointer returns the last committed pointer position
func (e *Engine) Pointer() pointer.Position {
	return e.pointer.Current()
}

// Mode returns the current mode snapshot
func (e *Engine) Mode() mode.Mode {
	return e.mode.Snapshot()
}

// Targets returns the live targets in spawn order
func (e *Engine) Targets() []spawn.Target {
	return e.spawner.LiveTargets()
}

// TargetCenter returns a target's centre in container coordinates
func (e *Engine) TargetCenter(t spawn.Target) influence.Point {
	return e.spawner.Center(t)
}

// Metrics returns the latest performance window
func (e *Engine) Metrics() perf.MetricsFrame {
	return e.perf.Latest()
}

// Health classifies the latest performance window
func (e *Engine) Health() perf.Health {
	return perf.Assess(e.perf.Latest())
}

// Influence applies the current mode's profile to el at the committed pointer
func (e *Engine) Influence(el influence.Element) influence.Result {
	p := e.pointer.Current()
	return influence.Compute(influence.Point{X: p.X, Y: p.Y}, el, influence.ProfileFor(e.mode.IsActive()))
}

// Score returns the points awarded since the last activation
func (e *Engine) Score() int64 {
	return e.spawner.Score()
}

// Status returns the shared metric registry
func (e *Engine) Status() *status.Registry {
	return e.reg
}

// Scheduler exposes the shared scheduler for hosts and tests
func (e *Engine) Scheduler() *clock.Scheduler {
	return e.sched
}

// Broker exposes the shared broker for additional subscribers
func (e *Engine) Broker() *event.Broker {
	return e.broker
}

// Dispatch delivers a host event to subscribers
func (e *Engine) Dispatch(ev *event.Event) {
	if e.done {
		return
	}
	e.broker.Dispatch(ev)
}

// Step runs due timers then one display frame
func (e *Engine) Step() {
	if e.done {
		return
	}
	e.sched.RunDue()
	e.sched.RunFrame()
}

// Toggle flips the mode explicitly
func (e *Engine) Toggle() {
	e.mode.Toggle()
}

// Teardown releases every component in reverse construction order; safe to call repeatedly
func (e *Engine) Teardown() {
	if e.done {
		return
	}
	e.done = true

	e.perf.Teardown()
	e.broker.Unsubscribe(event.EventClick, e.clicks)
	e.spawner.Teardown()
	e.mode.Teardown()
	e.pointer.Teardown()
}
