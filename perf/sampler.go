// Package perf measures frame rate, render latency and memory over rolling windows
// driven by the display frame queue.
package perf

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/status"
)

// MetricsFrame is one published window
type MetricsFrame struct {
	FPS          float64
	MemoryMB     float64
	RenderTimeMs float64
	NodeCount    int
	WindowStart  time.Time

	// Host load, zero when no HostReader is configured
	HostCPU    float64
	HostMemPct float64
}

// Config wires the sampler's data sources
type Config struct {
	Window time.Duration
	Memory MemoryReader
	Host   HostReader
	Nodes  NodeCounter
}

// DefaultConfig reads process RSS and host load through gopsutil
func DefaultConfig() Config {
	return Config{
		Window: parameter.PerfWindow,
		Memory: NewProcessMemory(),
		Host:   SystemLoad{},
	}
}

// Sampler publishes at most one MetricsFrame per window
type Sampler struct {
	cfg   Config
	sched *clock.Scheduler

	started     bool
	windowStart time.Time
	lastFrame   time.Time
	frames      int

	latest    MetricsFrame
	observers []func(MetricsFrame)

	frameID    clock.FrameID
	frameArmed bool
	done       bool

	statFPS     *status.AtomicFloat
	statMemory  *status.AtomicFloat
	statRender  *status.AtomicFloat
	statNodes   *atomic.Int64
	statWindows *atomic.Int64
	statHostCPU *status.AtomicFloat
	statHostMem *status.AtomicFloat
}

// New creates an idle sampler; call Start to follow display frames
func New(sched *clock.Scheduler, reg *status.Registry, cfg Config) *Sampler {
	if cfg.Window <= 0 {
		cfg.Window = parameter.PerfWindow
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &Sampler{
		cfg:         cfg,
		sched:       sched,
		statFPS:     reg.Floats.Get("perf.fps"),
		statMemory:  reg.Floats.Get("perf.memory_mb"),
		statRender:  reg.Floats.Get("perf.render_ms"),
		statNodes:   reg.Ints.Get("perf.nodes"),
		statWindows: reg.Ints.Get("perf.windows"),
		statHostCPU: reg.Floats.Get("perf.host_cpu_pct"),
		statHostMem: reg.Floats.Get("perf.host_mem_pct"),
	}
}

// Start anchors the window at the current time and follows display frames
func (s *Sampler) Start() {
	if s.done || s.frameArmed {
		return
	}
	s.anchor(s.sched.Now())
	s.request()
}

// Frame records one display frame at now and publishes when the window has elapsed
func (s *Sampler) Frame(now time.Time) {
	if s.done {
		return
	}
	if !s.started {
		s.anchor(now)
		return
	}

	s.frames++
	elapsed := now.Sub(s.windowStart)
	renderMs := round2(float64(now.Sub(s.lastFrame)) / float64(time.Millisecond))
	s.lastFrame = now

	if elapsed < s.cfg.Window {
		return
	}

	f := MetricsFrame{
		FPS:          round2(float64(s.frames) * float64(time.Second) / float64(elapsed)),
		RenderTimeMs: renderMs,
		WindowStart:  s.windowStart,
	}
	if s.cfg.Memory != nil {
		if mb, ok := s.cfg.Memory.MemoryMB(); ok {
			f.MemoryMB = mb
		}
	}
	if s.cfg.Nodes != nil {
		f.NodeCount = s.cfg.Nodes()
	}
	if s.cfg.Host != nil {
		if c, m, ok := s.cfg.Host.Host(); ok {
			f.HostCPU, f.HostMemPct = c, m
		}
	}

	s.frames = 0
	s.windowStart = now
	s.publish(f)
}

// Latest returns the most recent window, zero before the first
func (s *Sampler) Latest() MetricsFrame {
	return s.latest
}

// OnFrame registers an observer for every published window
func (s *Sampler) OnFrame(fn func(MetricsFrame)) {
	if fn == nil || s.done {
		return
	}
	s.observers = append(s.observers, fn)
}

func (s *Sampler) anchor(now time.Time) {
	s.started = true
	s.windowStart = now
	s.lastFrame = now
	s.frames = 0
}

func (s *Sampler) request() {
	s.frameID = s.sched.RequestFrame(s.onFrame)
	s.frameArmed = true
}

func (s *Sampler) onFrame(now time.Time) {
	s.frameArmed = false
	if s.done {
		return
	}
	s.Frame(now)
	s.request()
}

func (s *Sampler) publish(f MetricsFrame) {
	s.latest = f
	s.statFPS.Set(f.FPS)
	s.statMemory.Set(f.MemoryMB)
	s.statRender.Set(f.RenderTimeMs)
	s.statNodes.Store(int64(f.NodeCount))
	s.statWindows.Add(1)
	s.statHostCPU.Set(f.HostCPU)
	s.statHostMem.Set(f.HostMemPct)

	for _, fn := range s.observers {
		fn(f)
	}
}

// Teardown cancels the pending frame; safe to call repeatedly
func (s *Sampler) Teardown() {
	if s.done {
		return
	}
	s.done = true
	if s.frameArmed {
		s.sched.CancelFrame(s.frameID)
		s.frameArmed = false
	}
	s.observers = nil
}
