package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	deps     Deps
	config   *config.QueueConfig
	executor TicketExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Ticket cancel registry: ticket_id → cancel function
	activeTickets map[string]context.CancelFunc
	mu            sync.RWMutex
	started       bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, deps Deps, cfg *config.QueueConfig, executor TicketExecutor) *WorkerPool {
	return &WorkerPool{
		podID:         podID,
		deps:          deps,
		config:        cfg,
		executor:      executor,
		workers:       make([]*Worker, 0, cfg.WorkerCount),
		stopCh:        make(chan struct{}),
		activeTickets: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.deps, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tickets before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveTicketIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tickets to complete",
			"count", len(active),
			"ticket_ids", active)
	}

	// Signal all workers to stop (they finish current tickets)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterTicket stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterTicket(ticketID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTickets[ticketID] = cancel
}

// UnregisterTicket removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTicket(ticketID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTickets, ticketID)
}

// CancelTicket triggers context cancellation for a ticket on this pod.
// Returns true if the ticket was found and cancelled on this pod.
func (p *WorkerPool) CancelTicket(ticketID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTickets[ticketID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.deps.Tickets.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	runningTickets, errR := p.deps.Client.WorkTicket.Query().
		Where(
			workticket.StatusEQ(workticket.StatusRunning),
			workticket.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running tickets for health check",
			"pod_id", p.podID,
			"error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && runningTickets <= p.config.MaxConcurrentTickets && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errR != nil {
			dbError = fmt.Sprintf("running tickets query failed: %v", errR)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		RunningTickets:   runningTickets,
		MaxConcurrent:    p.config.MaxConcurrentTickets,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveTicketIDs returns IDs of currently processing tickets (for logging).
func (p *WorkerPool) getActiveTicketIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tickets := make([]string, 0, len(p.activeTickets))
	for id := range p.activeTickets {
		tickets = append(tickets, id)
	}
	return tickets
}
