package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/core"
	"github.com/lixenwraith/ripple/parameter"
)

// Host owns the tcell screen and forwards its events over a channel
// The poll goroutine never touches the interaction core
type Host struct {
	screen tcell.Screen
	tr     *Translator

	mu      sync.Mutex
	running bool
	closed  bool

	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHost initializes screen with mouse motion reporting
func NewHost(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return &Host{
		screen:  screen,
		tr:      NewTranslator(),
		eventCh: make(chan tcell.Event, parameter.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Screen returns the wrapped screen
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Translator returns the host's event translator
func (h *Host) Translator() *Translator {
	return h.tr
}

// ContainerSize returns the screen size in container pixels
func (h *Host) ContainerSize() (float64, float64) {
	w, ht := h.tr.SizeToPixels(h.screen.Size())
	return float64(w), float64(ht)
}

// Events returns the forwarded input channel
func (h *Host) Events() <-chan tcell.Event {
	return h.eventCh
}

// Start launches the poll goroutine
func (h *Host) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running || h.closed {
		return
	}
	h.running = true
	core.Go(h.poll)
}

func (h *Host) poll() {
	defer close(h.doneCh)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case h.eventCh <- ev:
		case <-h.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal; safe to call repeatedly
func (h *Host) Stop() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	wasRunning := h.running
	h.running = false
	h.mu.Unlock()

	close(h.stopCh)
	if wasRunning {
		// Unblock PollEvent
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-h.doneCh
	}
	h.screen.Fini()
}
