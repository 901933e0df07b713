package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tickets.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running tickets with stale heartbeats and
// re-fails them so their sessions free up and callers see a terminal state.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.deps.Client.WorkTicket.Query().
		Where(
			workticket.StatusEQ(workticket.StatusRunning),
			workticket.LastHeartbeatAtNotNil(),
			workticket.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tickets: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tickets", "count", len(orphans))

	recovered := 0
	for _, ticket := range orphans {
		lastHeartbeat := "unknown"
		if ticket.LastHeartbeatAt != nil {
			lastHeartbeat = ticket.LastHeartbeatAt.Format(time.RFC3339)
		}
		podID := "unknown"
		if ticket.PodID != nil {
			podID = *ticket.PodID
		}
		msg := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

		if err := failOrphanedTicket(ctx, p.deps, ticket, msg); err != nil {
			slog.Error("Failed to recover orphaned ticket",
				"ticket_id", ticket.ID,
				"error", err)
			continue
		}
		recovered++
	}

	if recovered > 0 && p.deps.Warnings != nil {
		p.deps.Warnings.AddWarning(
			services.WarningCategoryQueueOrphans,
			fmt.Sprintf("%d orphaned tickets re-failed; a worker pod likely died mid-run", recovered),
			"Inspect pod restarts and re-queue the affected work if needed.",
			p.podID,
		)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// failOrphanedTicket drives one orphan to failed: terminal transition,
// session release, request close-out, terminal event. A ticket that
// reached a terminal state concurrently is skipped without error.
func failOrphanedTicket(ctx context.Context, deps Deps, ticket *ent.WorkTicket, msg string) error {
	log := slog.With("ticket_id", ticket.ID, "old_pod_id", ticket.PodID)

	err := deps.Tickets.Fail(ctx, ticket.ID, models.TicketOutcome{
		ErrorKind:    ErrorKindOrphaned,
		ErrorMessage: msg,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			log.Info("Ticket reached a terminal state before orphan recovery")
			return nil
		}
		return fmt.Errorf("failed to mark ticket failed: %w", err)
	}

	// Free the session claim left by the dead pod. Release is a no-op if
	// the claim moved on to another ticket.
	if err := deps.Sessions.Release(ctx, ticket.AgentSessionID, ticket.ID); err != nil {
		log.Warn("Failed to release session claim of orphaned ticket",
			"session_id", ticket.AgentSessionID, "error", err)
	}

	if err := deps.Requests.MarkFailed(ctx, ticket.WorkRequestID, msg); err != nil {
		log.Warn("Failed to close out work request of orphaned ticket",
			"work_request_id", ticket.WorkRequestID, "error", err)
	}

	emitTerminalEvent(ctx, deps, ticket.ID, &ExecutionResult{
		Status:    workticket.StatusFailed,
		ErrorKind: ErrorKindOrphaned,
		Error:     errors.New(msg),
	})

	log.Warn("Orphaned ticket re-failed", "reason", msg)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of tickets owned by
// this pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, deps Deps, podID string) error {
	orphans, err := deps.Client.WorkTicket.Query().
		Where(
			workticket.StatusEQ(workticket.StatusRunning),
			workticket.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	msg := fmt.Sprintf("orphaned: pod %s restarted while ticket was running", podID)
	for _, ticket := range orphans {
		if err := failOrphanedTicket(ctx, deps, ticket, msg); err != nil {
			slog.Error("Failed to mark startup orphan",
				"ticket_id", ticket.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "ticket_id", ticket.ID)
	}

	return nil
}
