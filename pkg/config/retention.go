package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventRetention is the maximum age of work event rows before
	// deletion. Events only serve live streaming and reconnect catch-up,
	// so old rows are pure dead weight.
	EventRetention time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration

	// HubIdleWindow is how long an in-memory progress buffer may sit
	// without a new event before the sweep drops it. Terminated streams
	// purge their buffer eagerly; this catches abandoned ones.
	HubIdleWindow time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventRetention:  720 * time.Hour,
		CleanupInterval: 12 * time.Hour,
		HubIdleWindow:   time.Hour,
	}
}

// LoadRetentionConfig returns the retention defaults overridden by
// environment variables where set.
func LoadRetentionConfig() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.EventRetention = envDuration("EVENT_RETENTION", cfg.EventRetention)
	cfg.CleanupInterval = envDuration("CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.HubIdleWindow = envDuration("HUB_IDLE_WINDOW", cfg.HubIdleWindow)
	return cfg
}
