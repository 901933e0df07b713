package substrate

import (
	"sync"
	"time"
)

type breakerState string

const (
	stateClosed   breakerState = "closed"
	stateOpen     breakerState = "open"
	stateHalfOpen breakerState = "half_open"
)

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the
	// circuit.
	FailureThreshold int
	// Cooldown is how long the circuit stays open, measured from the last
	// recorded failure.
	Cooldown time.Duration
	// ProbeBudget is the number of trial requests admitted while half-open.
	ProbeBudget int
}

// DefaultBreakerConfig returns the standard breaker tuning.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Cooldown:         60 * time.Second,
		ProbeBudget:      3,
	}
}

// Breaker is a process-wide circuit breaker shared by all substrate
// requesters. State mutation happens under a single lock.
//
// closed: requests pass; consecutive failures count up, any success resets.
// open: requests fail fast with ErrCircuitOpen until the cooldown since the
// last failure elapses, then the next request is admitted as a probe.
// half-open: up to ProbeBudget probes are admitted; any failure reopens the
// circuit (and restarts the cooldown), a success closes it.
type Breaker struct {
	mu sync.Mutex

	cfg BreakerConfig

	state               breakerState
	consecutiveFailures int
	lastFailureAt       time.Time
	probesInFlight      int

	now func() time.Time
}

// NewBreaker creates a closed breaker with the given tuning. Zero or
// negative config values fall back to defaults.
func NewBreaker(cfg BreakerConfig) *Breaker {
	def := DefaultBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.ProbeBudget <= 0 {
		cfg.ProbeBudget = def.ProbeBudget
	}
	return &Breaker{
		cfg:   cfg,
		state: stateClosed,
		now:   time.Now,
	}
}

// Allow admits or rejects one operation. A nil return means the caller must
// report the outcome via RecordSuccess or RecordFailure.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return nil
	case stateOpen:
		if b.now().Sub(b.lastFailureAt) < b.cfg.Cooldown {
			return ErrCircuitOpen
		}
		// Cooldown elapsed: admit this request as the first probe.
		b.state = stateHalfOpen
		b.probesInFlight = 1
		return nil
	default: // half-open
		if b.probesInFlight >= b.cfg.ProbeBudget {
			return ErrCircuitOpen
		}
		b.probesInFlight++
		return nil
	}
}

// RecordSuccess reports a successful operation.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.consecutiveFailures = 0
	if b.state == stateHalfOpen {
		b.state = stateClosed
		b.probesInFlight = 0
	}
}

// RecordFailure reports a failed operation.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureAt = b.now()

	switch b.state {
	case stateClosed:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.cfg.FailureThreshold {
			b.state = stateOpen
		}
	case stateHalfOpen:
		// A failed probe reopens the circuit and restarts the cooldown.
		b.state = stateOpen
		b.probesInFlight = 0
		b.consecutiveFailures = b.cfg.FailureThreshold
	}
}

// State returns the current state name for health reporting.
func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.state)
}
