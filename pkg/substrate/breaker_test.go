package substrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBreaker creates a breaker with an injectable clock so cooldown
// transitions can be tested without sleeping.
func newTestBreaker(cfg BreakerConfig) (*Breaker, *time.Time) {
	b := NewBreaker(cfg)
	current := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }
	return b, &current
}

func TestBreaker_Transitions(t *testing.T) {
	cfg := BreakerConfig{FailureThreshold: 3, Cooldown: 60 * time.Second, ProbeBudget: 2}

	t.Run("closed allows requests", func(t *testing.T) {
		b, _ := newTestBreaker(cfg)
		require.NoError(t, b.Allow())
		assert.Equal(t, "closed", b.State())
	})

	t.Run("opens after consecutive failures reach threshold", func(t *testing.T) {
		b, _ := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			require.NoError(t, b.Allow())
			b.RecordFailure()
		}
		assert.Equal(t, "open", b.State())
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
	})

	t.Run("success resets the failure count", func(t *testing.T) {
		b, _ := newTestBreaker(cfg)
		b.RecordFailure()
		b.RecordFailure()
		b.RecordSuccess()
		b.RecordFailure()
		b.RecordFailure()
		assert.Equal(t, "closed", b.State())
		require.NoError(t, b.Allow())
	})

	t.Run("open rejects until cooldown elapses", func(t *testing.T) {
		b, clock := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			b.RecordFailure()
		}
		*clock = clock.Add(59 * time.Second)
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
	})

	t.Run("admits a probe after cooldown", func(t *testing.T) {
		b, clock := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			b.RecordFailure()
		}
		*clock = clock.Add(61 * time.Second)
		require.NoError(t, b.Allow())
		assert.Equal(t, "half_open", b.State())
	})

	t.Run("probe success closes the circuit", func(t *testing.T) {
		b, clock := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			b.RecordFailure()
		}
		*clock = clock.Add(61 * time.Second)
		require.NoError(t, b.Allow())
		b.RecordSuccess()
		assert.Equal(t, "closed", b.State())
		require.NoError(t, b.Allow())
	})

	t.Run("probe failure reopens and restarts the cooldown", func(t *testing.T) {
		b, clock := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			b.RecordFailure()
		}
		*clock = clock.Add(61 * time.Second)
		require.NoError(t, b.Allow())
		b.RecordFailure()
		assert.Equal(t, "open", b.State())

		// Cooldown restarts from the probe failure, not the original trip.
		*clock = clock.Add(59 * time.Second)
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
		*clock = clock.Add(2 * time.Second)
		require.NoError(t, b.Allow())
	})

	t.Run("probe budget bounds half-open admissions", func(t *testing.T) {
		b, clock := newTestBreaker(cfg)
		for i := 0; i < 3; i++ {
			b.RecordFailure()
		}
		*clock = clock.Add(61 * time.Second)
		require.NoError(t, b.Allow())
		require.NoError(t, b.Allow())
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
	})
}

func TestBreaker_Defaults(t *testing.T) {
	b := NewBreaker(BreakerConfig{})
	assert.Equal(t, 5, b.cfg.FailureThreshold)
	assert.Equal(t, 60*time.Second, b.cfg.Cooldown)
	assert.Equal(t, 3, b.cfg.ProbeBudget)
}

func TestAPIError_Retryable(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"timeout is retryable", 408, true},
		{"rate limit is retryable", 429, true},
		{"server error is retryable", 500, true},
		{"bad gateway is retryable", 502, true},
		{"bad request is not retryable", 400, false},
		{"unauthorized is not retryable", 401, false},
		{"not found is not retryable", 404, false},
		{"conflict is not retryable", 409, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.status, Message: "boom"}
			assert.Equal(t, tt.retryable, err.Retryable())
		})
	}
}
