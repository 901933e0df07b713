package substrate

import (
	"context"
	"math/rand/v2"
	"time"
)

// RetryConfig tunes the per-operation retry loop.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig returns the standard retry tuning: three attempts with
// exponential backoff from 1s capped at 10s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// doWithRetry runs fn up to cfg.MaxAttempts times, sleeping an exponentially
// growing, jittered delay between attempts. Only errors matching the
// retryable predicate are retried; anything else surfaces immediately.
func doWithRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == cfg.MaxAttempts {
			return err
		}

		delay := backoffDelay(cfg, attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// backoffDelay computes base * 2^(attempt-1) capped at max, plus up to 25%
// jitter to avoid thundering herds.
func backoffDelay(cfg RetryConfig, attempt int) time.Duration {
	delay := cfg.BaseDelay << (attempt - 1)
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	if delay < 4 {
		return delay
	}
	jitter := time.Duration(rand.Int64N(int64(delay) / 4))
	return delay + jitter
}
