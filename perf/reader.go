package perf

import (
	"math"
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// MemoryReader reports the process memory footprint in MB
// ok is false when the platform cannot report it
type MemoryReader interface {
	MemoryMB() (mb float64, ok bool)
}

// HostReader reports machine-wide load
type HostReader interface {
	Host() (cpuPercent, memPercent float64, ok bool)
}

// NodeCounter reports how many rendered elements are live
type NodeCounter func() int

// ProcessMemory reads the resident set size of the current process
type ProcessMemory struct {
	proc *process.Process
}

// NewProcessMemory binds to the running process; a failed lookup yields a reader that always reports unavailable
func NewProcessMemory() *ProcessMemory {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return &ProcessMemory{}
	}
	return &ProcessMemory{proc: p}
}

// MemoryMB returns RSS rounded to whole MB
func (m *ProcessMemory) MemoryMB() (float64, bool) {
	if m == nil || m.proc == nil {
		return 0, false
	}
	info, err := m.proc.MemoryInfo()
	if err != nil || info == nil {
		return 0, false
	}
	return math.Round(float64(info.RSS) / (1024 * 1024)), true
}

// SystemLoad samples host cpu and memory utilisation
type SystemLoad struct{}

// Host returns instantaneous cpu percent (since the previous call) and used memory percent
func (SystemLoad) Host() (float64, float64, bool) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, false
	}

	// Percent(0, ...) compares against the previous call instead of blocking
	c, err := cpu.Percent(0, false)
	if err != nil || len(c) == 0 {
		return 0, round1(v.UsedPercent), true
	}
	return round1(c[0]), round1(v.UsedPercent), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
