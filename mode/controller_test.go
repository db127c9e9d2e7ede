package mode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ripple/clock"
	"github.com/lixenwraith/ripple/status"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newController(t *testing.T, cfg Config) (*Controller, *clock.Scheduler, *clock.MockTimeProvider) {
	t.Helper()
	mock := clock.NewMockTimeProvider(epoch)
	sched := clock.NewScheduler(mock)
	c, err := NewController(sched, status.NewRegistry(), cfg)
	require.NoError(t, err)
	return c, sched, mock
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", DefaultConfig(), true},
		{"zero ttl", Config{TTL: 0, Threshold: 10}, false},
		{"negative ttl", Config{TTL: -time.Second, Threshold: 10}, false},
		{"zero threshold", Config{TTL: time.Second, Threshold: 0}, false},
		{"threshold one", Config{TTL: time.Second, Threshold: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Active", StateActive.String())
	assert.Equal(t, "timeout", CauseTimeout.String())
}

func TestToggleAlternatesWithSingleTimer(t *testing.T) {
	c, sched, _ := newController(t, DefaultConfig())
	assert.Equal(t, StateIdle, c.State())

	for i := 1; i <= 7; i++ {
		c.Toggle()
		assert.Equal(t, i%2 == 1, c.IsActive(), "toggle %d", i)
		assert.LessOrEqual(t, c.ArmedTimers(), 1)
		assert.LessOrEqual(t, sched.PendingTimers(), 1)
		if c.IsActive() {
			assert.Equal(t, 1, sched.PendingTimers(), "active mode must have its expiry armed")
		} else {
			assert.Equal(t, 0, sched.PendingTimers(), "exit must cancel the expiry timer")
		}
	}
}

func TestExpiresAfterTTL(t *testing.T) {
	c, sched, mock := newController(t, DefaultConfig())

	var got []Transition
	c.OnChange(func(tr Transition) { got = append(got, tr) })

	c.Toggle()
	snap := c.Snapshot()
	assert.True(t, snap.Active)
	assert.True(t, snap.ActivatedAt.Equal(epoch))
	assert.True(t, snap.ExpiresAt().Equal(epoch.Add(30*time.Second)))

	sched.Advance(30*time.Second - time.Millisecond)
	assert.True(t, c.IsActive(), "must stay active before t0+ttl")
	assert.Equal(t, time.Millisecond, c.Snapshot().Remaining(mock.Now()))

	sched.Advance(time.Millisecond)
	assert.False(t, c.IsActive(), "must be inactive at t0+ttl")
	assert.Equal(t, 0, sched.PendingTimers())

	require.Len(t, got, 2)
	assert.Equal(t, Transition{From: StateIdle, To: StateActive, Cause: CauseToggle, At: epoch}, got[0])
	assert.Equal(t, CauseTimeout, got[1].Cause)
	assert.True(t, got[1].At.Equal(epoch.Add(30*time.Second)))
	assert.True(t, got[0].Activated())
	assert.False(t, got[1].Activated())
}

func TestThresholdActivatesOnExactTrigger(t *testing.T) {
	c, sched, _ := newController(t, DefaultConfig())

	var causes []Cause
	c.OnChange(func(tr Transition) { causes = append(causes, tr.Cause) })

	for i := 1; i < 10; i++ {
		c.RecordTrigger()
		assert.False(t, c.IsActive(), "trigger %d must not activate", i)
	}
	assert.EqualValues(t, 9, c.TriggerCount())

	c.RecordTrigger()
	assert.True(t, c.IsActive())
	assert.EqualValues(t, 0, c.TriggerCount(), "counter resets on activation")
	assert.Equal(t, []Cause{CauseThreshold}, causes)
	assert.Equal(t, 1, sched.PendingTimers())
}

func TestTriggersWhileActiveIgnored(t *testing.T) {
	c, sched, _ := newController(t, DefaultConfig())
	c.Toggle()

	for i := 0; i < 25; i++ {
		c.RecordTrigger()
	}
	assert.EqualValues(t, 0, c.TriggerCount())

	c.Toggle()
	assert.False(t, c.IsActive())
	c.RecordTrigger()
	assert.EqualValues(t, 1, c.TriggerCount(), "triggers while active must not accumulate")
	assert.Equal(t, 0, sched.PendingTimers())
}

func TestReactivationRestartsExpiry(t *testing.T) {
	c, sched, _ := newController(t, Config{TTL: 10 * time.Second, Threshold: 10})

	c.Toggle()
	sched.Advance(6 * time.Second)
	c.Toggle()
	c.Toggle()

	// The first activation's deadline passes without effect
	sched.Advance(6 * time.Second)
	assert.True(t, c.IsActive(), "old deadline must not end the fresh activation")

	sched.Advance(4 * time.Second)
	assert.False(t, c.IsActive())
}

func TestStaleTimerIgnored(t *testing.T) {
	c, sched, _ := newController(t, Config{TTL: time.Second, Threshold: 10})
	c.Toggle()

	stale := c.generation
	c.Toggle()
	c.Toggle()

	c.expire(stale)
	assert.True(t, c.IsActive())
	assert.Equal(t, 1, c.ArmedTimers())
	assert.Equal(t, 1, sched.PendingTimers())
}

func TestTeardown(t *testing.T) {
	c, sched, _ := newController(t, DefaultConfig())
	calls := 0
	c.OnChange(func(Transition) { calls++ })

	c.Toggle()
	c.Teardown()
	c.Teardown()
	assert.Equal(t, 0, sched.PendingTimers())

	c.Toggle()
	for i := 0; i < 20; i++ {
		c.RecordTrigger()
	}
	assert.Equal(t, 1, calls, "no transitions after teardown")
}
