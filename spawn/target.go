package spawn

import (
	"time"

	"github.com/lixenwraith/ripple/influence"
)

// TargetID identifies a spawned target for its lifetime
type TargetID uint64

// Target is a short-lived collectible positioned inside the safe area
// X and Y are offsets from the padded origin, bounded by the safe area
type Target struct {
	ID        TargetID
	X, Y      float64
	SpawnedAt time.Time
	TTL       time.Duration
}

// ExpiresAt returns the scheduled expiry time
func (t Target) ExpiresAt() time.Time {
	return t.SpawnedAt.Add(t.TTL)
}

// Point returns the target's safe-area position
func (t Target) Point() influence.Point {
	return influence.Point{X: t.X, Y: t.Y}
}

// ChangeKind classifies target lifecycle notifications
type ChangeKind uint8

const (
	ChangeSpawned ChangeKind = iota
	ChangeConsumed
	ChangeExpired
	ChangeCleared
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpawned:
		return "spawned"
	case ChangeConsumed:
		return "consumed"
	case ChangeExpired:
		return "expired"
	case ChangeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change is delivered to observers for every target lifecycle step
type Change struct {
	Kind   ChangeKind
	Target Target
}
