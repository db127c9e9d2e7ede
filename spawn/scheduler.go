// Package spawn runs the interval target spawner.
//
// Each tick draws up to MaxAttempts uniform candidates inside the safe area and
// commits the first that keeps MinDistance to every live target. Targets expire on
// their own timers and can be consumed early by a click.
package spawn

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/event"
	"github.com/lixenwraith/ripple/influence"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/status"
)

var (
	// ErrInvalidConfig is returned for out-of-range timing or attempt settings
	ErrInvalidConfig = errors.New("invalid spawn config")

	// ErrImpossibleSpawn is returned when MinDistance cannot fit in the safe area
	ErrImpossibleSpawn = errors.New("impossible spawn area")
)

// Gate opens and closes spawning; satisfied by mode.Controller
type Gate interface {
	IsActive() bool
}

// Config tunes the spawner
type Config struct {
	Interval    time.Duration
	TTL         time.Duration
	MinDistance float64
	MaxAttempts int
	ElementSize float64
	Padding     float64
	Points      int64

	// Rand overrides the candidate source; nil seeds a fresh PCG
	Rand *rand.Rand
}

// DefaultConfig returns the stock spawn tuning
func DefaultConfig() Config {
	return Config{
		Interval:    parameter.SpawnInterval,
		TTL:         parameter.TargetTTL,
		MinDistance: parameter.SpawnMinDistance,
		MaxAttempts: parameter.SpawnMaxAttempts,
		ElementSize: parameter.TargetSize,
		Padding:     parameter.SpawnPadding,
		Points:      parameter.TargetPoints,
	}
}

// Validate checks the container-independent settings
func (c Config) Validate() error {
	switch {
	case c.Interval <= 0:
		return fmt.Errorf("interval %v must be positive: %w", c.Interval, ErrInvalidConfig)
	case c.TTL <= 0:
		return fmt.Errorf("ttl %v must be positive: %w", c.TTL, ErrInvalidConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("max attempts %d must be at least 1: %w", c.MaxAttempts, ErrInvalidConfig)
	case c.MinDistance < 0:
		return fmt.Errorf("min distance %v must not be negative: %w", c.MinDistance, ErrInvalidConfig)
	case c.ElementSize < 0 || c.Padding < 0:
		return fmt.Errorf("element size %v / padding %v must not be negative: %w", c.ElementSize, c.Padding, ErrInvalidConfig)
	}
	return nil
}

type liveTarget struct {
	Target
	timer clock.TimerID
}

// Scheduler spawns, expires and consumes targets
type Scheduler struct {
	cfg    Config
	broker *event.Broker
	sched  *clock.Scheduler
	gate   Gate
	rng    *rand.Rand

	area     Area
	feasible bool

	live   []liveTarget
	nextID TargetID
	score  int64

	tickID    clock.TimerID
	tickArmed bool

	observers []func(Change)
	done      bool

	statLive     *atomic.Int64
	statSpawned  *atomic.Int64
	statSkipped  *atomic.Int64
	statConsumed *atomic.Int64
	statExpired  *atomic.Int64
	statScore    *atomic.Int64
}

// New validates cfg against the container, subscribes to clicks and resizes, and arms the first tick
func New(broker *event.Broker, sched *clock.Scheduler, gate Gate, reg *status.Registry, cfg Config, containerW, containerH float64) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	area := SafeArea(containerW, containerH, cfg.ElementSize, cfg.Padding)
	if !area.Feasible(cfg.MinDistance) {
		return nil, fmt.Errorf("min distance %v in %.0fx%.0f safe area: %w",
			cfg.MinDistance, area.Width, area.Height, ErrImpossibleSpawn)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Scheduler{
		cfg:          cfg,
		broker:       broker,
		sched:        sched,
		gate:         gate,
		rng:          rng,
		area:         area,
		feasible:     true,
		statLive:     reg.Ints.Get("spawn.live"),
		statSpawned:  reg.Ints.Get("spawn.spawned"),
		statSkipped:  reg.Ints.Get("spawn.skipped"),
		statConsumed: reg.Ints.Get("spawn.consumed"),
		statExpired:  reg.Ints.Get("spawn.expired"),
		statScore:    reg.Ints.Get("spawn.score"),
	}

	broker.Subscribe(event.EventClick, s, event.Options{Passive: true})
	broker.Subscribe(event.EventResize, s, event.Options{Passive: true})
	s.armTick()
	return s, nil
}

// Area returns the current safe area
func (s *Scheduler) Area() Area {
	return s.area
}

// Config returns the active configuration
func (s *Scheduler) Config() Config {
	return s.cfg
}

// LiveTargets returns a copy of the live targets in spawn order
func (s *Scheduler) LiveTargets() []Target {
	out := make([]Target, len(s.live))
	for i, lt := range s.live {
		out[i] = lt.Target
	}
	return out
}

// Score returns points awarded since the last activation
func (s *Scheduler) Score() int64 {
	return s.score
}

// Center returns the container position of a target's centre
func (s *Scheduler) Center(t Target) influence.Point {
	half := s.cfg.ElementSize / 2
	return influence.Point{
		X: s.cfg.Padding + t.X + half,
		Y: s.cfg.Padding + t.Y + half,
	}
}

// OnChange registers an observer for target lifecycle changes
func (s *Scheduler) OnChange(fn func(Change)) {
	if fn == nil || s.done {
		return
	}
	s.observers = append(s.observers, fn)
}

// SetContainer recomputes the safe area and drops targets left outside it
// An infeasible area is applied anyway; ticks soft-skip until a usable size arrives
func (s *Scheduler) SetContainer(w, h float64) error {
	if s.done {
		return nil
	}

	s.area = SafeArea(w, h, s.cfg.ElementSize, s.cfg.Padding)
	s.feasible = s.area.Feasible(s.cfg.MinDistance)

	var dropped []liveTarget
	kept := s.live[:0:0]
	for _, lt := range s.live {
		if s.area.Contains(lt.Point()) {
			kept = append(kept, lt)
		} else {
			dropped = append(dropped, lt)
		}
	}
	s.live = kept
	s.statLive.Store(int64(len(s.live)))

	for _, lt := range dropped {
		s.sched.CancelTimer(lt.timer)
		s.notify(Change{Kind: ChangeCleared, Target: lt.Target})
	}

	if !s.feasible {
		return fmt.Errorf("min distance %v in %.0fx%.0f safe area: %w",
			s.cfg.MinDistance, s.area.Width, s.area.Height, ErrImpossibleSpawn)
	}
	return nil
}

// HandleEvent implements event.Handler for clicks and resizes
func (s *Scheduler) HandleEvent(ev *event.Event) {
	if s.done {
		return
	}

	switch ev.Type {
	case event.EventClick:
		if id, ok := s.HitTest(influence.Point{X: ev.X, Y: ev.Y}); ok {
			s.Consume(id)
		}
	case event.EventResize:
		if err := s.SetContainer(float64(ev.Width), float64(ev.Height)); err != nil {
			log.Printf("spawn: resize to %dx%d: %v, skipping ticks", ev.Width, ev.Height, err)
		}
	}
}

// HitTest returns the most recently spawned target whose centre is within ElementSize/2 of p
func (s *Scheduler) HitTest(p influence.Point) (TargetID, bool) {
	radius := s.cfg.ElementSize / 2
	for i := len(s.live) - 1; i >= 0; i-- {
		if influence.Distance(p, s.Center(s.live[i].Target)) <= radius {
			return s.live[i].ID, true
		}
	}
	return 0, false
}

// Consume removes a live target early and awards its points
func (s *Scheduler) Consume(id TargetID) bool {
	if s.done {
		return false
	}
	t, ok := s.remove(id)
	if !ok {
		return false
	}

	s.score += s.cfg.Points
	s.statScore.Store(s.score)
	s.statConsumed.Add(1)
	s.notify(Change{Kind: ChangeConsumed, Target: t})
	return true
}

// OnModeChange resets the score on activation and clears every target on deactivation
func (s *Scheduler) OnModeChange(active bool) {
	if s.done {
		return
	}
	if active {
		s.score = 0
		s.statScore.Store(0)
		return
	}
	s.clear()
}

func (s *Scheduler) armTick() {
	s.tickID = s.sched.AfterFunc(s.cfg.Interval, s.tick)
	s.tickArmed = true
}

func (s *Scheduler) tick() {
	s.tickArmed = false
	if s.done {
		return
	}
	s.armTick()

	if s.gate != nil && !s.gate.IsActive() {
		return
	}
	if !s.feasible {
		s.statSkipped.Add(1)
		return
	}

	if _, ok := s.trySpawn(); !ok {
		s.statSkipped.Add(1)
	}
}

// trySpawn rejection-samples one target and returns the attempts used
func (s *Scheduler) trySpawn() (int, bool) {
	existing := s.LiveTargets()

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		candidate := influence.Point{
			X: s.rng.Float64() * s.area.Width,
			Y: s.rng.Float64() * s.area.Height,
		}
		if !CanPlace(candidate, existing, s.cfg.MinDistance) {
			continue
		}

		s.nextID++
		t := Target{
			ID:        s.nextID,
			X:         candidate.X,
			Y:         candidate.Y,
			SpawnedAt: s.sched.Now(),
			TTL:       s.cfg.TTL,
		}
		id := t.ID
		timer := s.sched.AfterFunc(s.cfg.TTL, func() { s.expire(id) })
		s.live = append(s.live, liveTarget{Target: t, timer: timer})

		s.statLive.Store(int64(len(s.live)))
		s.statSpawned.Add(1)
		s.notify(Change{Kind: ChangeSpawned, Target: t})
		return attempt, true
	}
	return s.cfg.MaxAttempts, false
}

func (s *Scheduler) expire(id TargetID) {
	if s.done {
		return
	}
	idx := s.index(id)
	if idx < 0 {
		return
	}
	t := s.live[idx].Target
	s.live = slices.Delete(s.live, idx, idx+1)
	s.statLive.Store(int64(len(s.live)))
	s.statExpired.Add(1)
	s.notify(Change{Kind: ChangeExpired, Target: t})
}

func (s *Scheduler) remove(id TargetID) (Target, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Target{}, false
	}
	lt := s.live[idx]
	s.sched.CancelTimer(lt.timer)
	s.live = slices.Delete(s.live, idx, idx+1)
	s.statLive.Store(int64(len(s.live)))
	return lt.Target, true
}

func (s *Scheduler) index(id TargetID) int {
	return slices.IndexFunc(s.live, func(lt liveTarget) bool { return lt.ID == id })
}

func (s *Scheduler) clear() {
	cleared := s.live
	s.live = nil
	s.statLive.Store(0)
	for _, lt := range cleared {
		s.sched.CancelTimer(lt.timer)
		s.notify(Change{Kind: ChangeCleared, Target: lt.Target})
	}
}

func (s *Scheduler) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}

// Teardown cancels the tick and every expiry timer and unsubscribes; safe to call repeatedly
func (s *Scheduler) Teardown() {
	if s.done {
		return
	}
	s.observers = nil
	s.clear()
	s.done = true
	if s.tickArmed {
		s.sched.CancelTimer(s.tickID)
		s.tickArmed = false
	}
	s.broker.Unsubscribe(event.EventClick, s)
	s.broker.Unsubscribe(event.EventResize, s)
}
