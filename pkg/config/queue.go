package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tickets are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tickets.
	WorkerCount int

	// MaxConcurrentTickets is the global limit of concurrently running
	// tickets across ALL replicas/pods. Enforced by database COUNT(*).
	MaxConcurrentTickets int

	// PollInterval is the base interval for checking queued tickets.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// TicketTimeout is the maximum time a single ticket can execute.
	TicketTimeout time.Duration

	// HeartbeatInterval is how often a running worker refreshes its
	// claim's last_heartbeat_at.
	HeartbeatInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for active tickets
	// to complete during shutdown. Should match TicketTimeout.
	GracefulShutdownTimeout time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned tickets.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a ticket can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTickets:    5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TicketTimeout:           15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// LoadQueueConfig returns the queue defaults overridden by environment
// variables where set.
func LoadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = envInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentTickets = envInt("QUEUE_MAX_CONCURRENT_TICKETS", cfg.MaxConcurrentTickets)
	cfg.PollInterval = envDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.PollIntervalJitter = envDuration("QUEUE_POLL_JITTER", cfg.PollIntervalJitter)
	cfg.TicketTimeout = envDuration("TICKET_TIMEOUT", cfg.TicketTimeout)
	cfg.HeartbeatInterval = envDuration("QUEUE_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.GracefulShutdownTimeout = cfg.TicketTimeout
	cfg.OrphanDetectionInterval = envDuration("ORPHAN_DETECTION_INTERVAL", cfg.OrphanDetectionInterval)
	cfg.OrphanThreshold = envDuration("ORPHAN_THRESHOLD", cfg.OrphanThreshold)
	return cfg
}
