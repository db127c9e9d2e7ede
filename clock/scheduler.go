// Package clock owns time for the interaction core: a time provider and the
// single-threaded queue of one-shot timers and display-frame callbacks that every
// component schedules on.
//
// Nothing in this package starts goroutines. The host drives the queue by calling
// RunDue whenever timers may be due and RunFrame once per display frame, from the
// same goroutine that dispatches input events. Callbacks therefore never race with
// each other or with event handlers.
package clock

import (
	"container/heap"
	"sync"
	"time"
)

// TimerID identifies a pending one-shot timer
type TimerID uint64

// FrameID identifies a pending display-frame request
type FrameID uint64

type timerEntry struct {
	id    TimerID
	due   time.Time
	seq   uint64 // tie-break for equal due times, FIFO
	fn    func()
	index int
}

// timerHeap orders timers by due time, then arming order
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Scheduler queues timers and frame callbacks against a TimeProvider
// Callbacks run outside the scheduler lock and may schedule or cancel freely
type Scheduler struct {
	mu       sync.Mutex
	provider TimeProvider

	timers timerHeap
	byID   map[TimerID]*timerEntry

	frameOrder []FrameID
	frames     map[FrameID]func(now time.Time)

	nextID uint64
	seq    uint64

	framesRun uint64
}

// NewScheduler creates a scheduler reading time from provider
func NewScheduler(provider TimeProvider) *Scheduler {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Scheduler{
		provider: provider,
		byID:     make(map[TimerID]*timerEntry),
		frames:   make(map[FrameID]func(now time.Time)),
	}
}

// Now returns the provider's current time
func (s *Scheduler) Now() time.Time {
	return s.provider.Now()
}

// Provider returns the underlying time provider
func (s *Scheduler) Provider() TimeProvider {
	return s.provider
}

// AfterFunc arms a one-shot timer firing fn once d has elapsed
// Non-positive durations fire on the next RunDue
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.seq++
	e := &timerEntry{
		id:  TimerID(s.nextID),
		due: s.provider.Now().Add(d),
		seq: s.seq,
		fn:  fn,
	}
	heap.Push(&s.timers, e)
	s.byID[e.id] = e
	return e.id
}

// CancelTimer disarms a pending timer, returns false if it already fired or was cancelled
func (s *Scheduler) CancelTimer(id TimerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&s.timers, e.index)
	delete(s.byID, id)
	return true
}

// RequestFrame queues fn for the next display frame
func (s *Scheduler) RequestFrame(fn func(now time.Time)) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := FrameID(s.nextID)
	s.frames[id] = fn
	s.frameOrder = append(s.frameOrder, id)
	return id
}

// CancelFrame drops a pending frame request, returns false if it already ran or was cancelled
func (s *Scheduler) CancelFrame(id FrameID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.frames[id]; !ok {
		return false
	}
	delete(s.frames, id)
	return true
}

// RunDue fires every timer due at the provider's current time and returns the count fired
// Timers armed by a callback that are already due fire within the same call
func (s *Scheduler) RunDue() int {
	fired := 0
	for {
		s.mu.Lock()
		now := s.provider.Now()
		if len(s.timers) == 0 || s.timers[0].due.After(now) {
			s.mu.Unlock()
			return fired
		}
		e := heap.Pop(&s.timers).(*timerEntry)
		delete(s.byID, e.id)
		s.mu.Unlock()

		e.fn()
		fired++
	}
}

// RunFrame runs the frame callbacks queued before this call and returns the count run
// Requests made during the frame are deferred to the next frame
func (s *Scheduler) RunFrame() int {
	s.mu.Lock()
	order := s.frameOrder
	s.frameOrder = nil
	s.framesRun++
	s.mu.Unlock()

	now := s.provider.Now()
	ran := 0
	for _, id := range order {
		s.mu.Lock()
		fn, ok := s.frames[id]
		if ok {
			delete(s.frames, id)
		}
		s.mu.Unlock()

		if ok {
			fn(now)
			ran++
		}
	}
	return ran
}

// NextDue reports the earliest pending timer deadline
func (s *Scheduler) NextDue() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.timers) == 0 {
		return time.Time{}, false
	}
	return s.timers[0].due, true
}

// PendingTimers returns the number of armed timers
func (s *Scheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// PendingFrames returns the number of queued frame requests
func (s *Scheduler) PendingFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// FramesRun returns the number of RunFrame calls so far
func (s *Scheduler) FramesRun() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.framesRun
}

// Advance steps a MockTimeProvider forward by d, firing each timer at its own due time
// No-op for real time providers
func (s *Scheduler) Advance(d time.Duration) {
	mock, ok := s.provider.(*MockTimeProvider)
	if !ok {
		return
	}

	target := mock.Now().Add(d)
	for {
		due, pending := s.NextDue()
		if !pending || due.After(target) {
			break
		}
		if due.After(mock.Now()) {
			mock.SetTime(due)
		}
		s.RunDue()
	}
	mock.SetTime(target)
}
