package mode

import (
	"time"
)

// State is the controller's current mode
type State uint8

const (
	StateIdle State = iota
	StateActive
)

var stateNames = [...]string{
	StateIdle:   "Idle",
	StateActive: "Active",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Cause records what drove a transition
type Cause uint8

const (
	CauseToggle Cause = iota
	CauseThreshold
	CauseTimeout
)

func (c Cause) String() string {
	switch c {
	case CauseToggle:
		return "toggle"
	case CauseThreshold:
		return "threshold"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Transition is delivered to observers after every state change
type Transition struct {
	From  State
	To    State
	Cause Cause
	At    time.Time
}

// Activated reports whether the transition entered Active
func (t Transition) Activated() bool {
	return t.To == StateActive && t.From != StateActive
}

// Mode is a point-in-time view of the controller
type Mode struct {
	Active      bool
	ActivatedAt time.Time
	TTL         time.Duration
}

// ExpiresAt returns the scheduled deactivation time, zero while idle
func (m Mode) ExpiresAt() time.Time {
	if !m.Active {
		return time.Time{}
	}
	return m.ActivatedAt.Add(m.TTL)
}

// Remaining returns the time left in the activation at now, zero while idle
func (m Mode) Remaining(now time.Time) time.Duration {
	if !m.Active {
		return 0
	}
	return max(m.ExpiresAt().Sub(now), 0)
}
