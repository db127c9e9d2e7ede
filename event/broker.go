// Package event is the thin subscription layer between host input events and the
// components that consume them.
//
// Architecture:
//   - Single-threaded dispatch, handlers invoked in registration order
//   - Registration is idempotent per (type, handler) pair
//   - Subscription lists are copy-on-write: changes made while dispatching take
//     effect on the next dispatch
package event

import (
	"slices"
	"sync"
)

// Handler receives dispatched events
// Implementations must be comparable (pointer receivers); identity is the handler value
type Handler interface {
	HandleEvent(ev *Event)
}

// Options configures a subscription
type Options struct {
	// Passive handlers can never stop propagation
	Passive bool
}

type subscription struct {
	handler Handler
	opts    Options
}

// Broker routes host events to subscribed handlers
type Broker struct {
	mu   sync.RWMutex
	subs map[EventType][]subscription
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[EventType][]subscription),
	}
}

// Subscribe registers h for t; subscribing an already registered pair is a no-op
func (b *Broker) Subscribe(t EventType, h Handler, opts Options) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subs[t]
	for _, s := range current {
		if s.handler == h {
			return
		}
	}

	next := make([]subscription, len(current), len(current)+1)
	copy(next, current)
	b.subs[t] = append(next, subscription{handler: h, opts: opts})
}

// Unsubscribe removes h from t; removing an absent pair is a no-op
func (b *Broker) Unsubscribe(t EventType, h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subs[t]
	idx := slices.IndexFunc(current, func(s subscription) bool { return s.handler == h })
	if idx < 0 {
		return
	}

	if len(current) == 1 {
		delete(b.subs, t)
		return
	}
	b.subs[t] = slices.Delete(slices.Clone(current), idx, idx+1)
}

// Dispatch delivers ev synchronously to the handlers registered for its type
func (b *Broker) Dispatch(ev *Event) {
	if ev == nil {
		return
	}

	b.mu.RLock()
	subs := b.subs[ev.Type]
	b.mu.RUnlock()

	for _, s := range subs {
		if ev.stopped {
			return
		}
		if s.opts.Passive {
			wasStopped := ev.stopped
			s.handler.HandleEvent(ev)
			ev.stopped = wasStopped
			continue
		}
		s.handler.HandleEvent(ev)
	}
}

// Subscribed reports whether h is registered for t
func (b *Broker) Subscribed(t EventType, h Handler) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.ContainsFunc(b.subs[t], func(s subscription) bool { return s.handler == h })
}

// Count returns the number of handlers registered for t
func (b *Broker) Count(t EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[t])
}

// Total returns the number of registrations across all event types
func (b *Broker) Total() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, s := range b.subs {
		total += len(s)
	}
	return total
}
