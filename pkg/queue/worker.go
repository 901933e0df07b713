package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/predicate"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/slack"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tickets.
type Worker struct {
	id       string
	podID    string
	deps     Deps
	config   *config.QueueConfig
	executor TicketExecutor
	pool     TicketCancelRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentTicketID  string
	ticketsProcessed int
	lastActivity     time.Time
}

// TicketCancelRegistry is the subset of WorkerPool used by Worker to make
// in-flight tickets cancellable from the API.
type TicketCancelRegistry interface {
	RegisterTicket(ticketID string, cancel context.CancelFunc)
	UnregisterTicket(ticketID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, deps Deps, cfg *config.QueueConfig, executor TicketExecutor, pool TicketCancelRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		deps:         deps,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentTicketID:  w.currentTicketID,
		TicketsProcessed: w.ticketsProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTicketsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing ticket", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a ticket, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	runningCount, err := w.deps.Tickets.CountRunning(ctx)
	if err != nil {
		return fmt.Errorf("checking running tickets: %w", err)
	}
	if runningCount >= w.config.MaxConcurrentTickets {
		return ErrAtCapacity
	}

	// 2. Claim next ticket
	ticket, err := w.claimNextTicket(ctx)
	if err != nil {
		return err
	}

	log := slog.With("ticket_id", ticket.ID, "worker_id", w.id)
	log.Info("Ticket claimed", "agent_kind", ticket.AgentKind, "priority", ticket.Priority)

	w.setStatus(WorkerStatusWorking, ticket.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result, err := runTicket(ctx, w.deps, w.config, w.executor, w.pool, ticket)
	if err != nil {
		if errors.Is(err, errSessionHeld) {
			// Ticket went back to pending; let it be retried once the
			// session frees up.
			log.Info("Session busy, ticket requeued")
			return ErrNoTicketsAvailable
		}
		return err
	}

	w.mu.Lock()
	w.ticketsProcessed++
	w.mu.Unlock()

	log.Info("Ticket processing complete", "status", result.Status)
	return nil
}

// claimNextTicket atomically claims the next pending ticket using
// FOR UPDATE SKIP LOCKED. Highest priority first, oldest first within a
// priority.
func (w *Worker) claimNextTicket(ctx context.Context) (*ent.WorkTicket, error) {
	tx, err := w.deps.Client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	staleBefore := time.Now().Add(-w.config.TicketTimeout)
	ticket, err := tx.WorkTicket.Query().
		Where(
			workticket.StatusEQ(workticket.StatusPending),
			sessionNotHeld(staleBefore),
		).
		Order(ent.Desc(workticket.FieldPriority), ent.Asc(workticket.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTicketsAvailable
		}
		return nil, fmt.Errorf("failed to query pending tickets: %w", err)
	}

	// Claim: set running, pod_id, claimed_at, started_at, heartbeat.
	now := time.Now()
	ticket, err = ticket.Update().
		SetStatus(workticket.StatusRunning).
		SetPodID(w.podID).
		SetClaimedAt(now).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim ticket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return ticket, nil
}

// sessionNotHeld skips pending tickets whose agent session is claimed by
// a live ticket. Claims older than staleBefore count as free so a crashed
// holder cannot starve the session. This filter is advisory; the registry
// Acquire in runTicket is the authoritative gate.
func sessionNotHeld(staleBefore time.Time) predicate.WorkTicket {
	return func(s *sql.Selector) {
		sess := sql.Table(agentsession.Table)
		s.Where(sql.Not(sql.Exists(
			sql.Select(sess.C(agentsession.FieldID)).
				From(sess).
				Where(sql.And(
					sql.ColumnsEQ(sess.C(agentsession.FieldID), s.C(workticket.FieldAgentSessionID)),
					sql.NotNull(sess.C(agentsession.FieldLastClaimedBy)),
					sql.GT(sess.C(agentsession.FieldLastClaimedAt), staleBefore),
				)),
		)))
	}
}

// runTicket drives a claimed (already running) ticket to its terminal
// state: session gate, work request transition, heartbeats, execution,
// terminal transition, terminal event. Shared by pool workers and the
// inline runner; pool may be nil when API cancellation is not available.
func runTicket(ctx context.Context, deps Deps, cfg *config.QueueConfig, executor TicketExecutor, pool TicketCancelRegistry, ticket *ent.WorkTicket) (*ExecutionResult, error) {
	// 1. Serialize on the agent session. The claim-time filter is racy;
	//    this conditional update is what actually guarantees one live
	//    ticket per session.
	if err := deps.Sessions.Acquire(ctx, ticket.AgentSessionID, ticket.ID, cfg.TicketTimeout); err != nil {
		if revertErr := revertClaim(deps.Client, ticket.ID); revertErr != nil {
			slog.Error("Failed to requeue ticket after session conflict",
				"ticket_id", ticket.ID, "error", revertErr)
		}
		if errors.Is(err, services.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", errSessionHeld, err)
		}
		return nil, fmt.Errorf("acquiring session %s: %w", ticket.AgentSessionID, err)
	}
	defer releaseSession(deps, ticket)

	// 2. Move the work request to running (best-effort; the ticket is the
	//    source of truth).
	if err := deps.Requests.MarkRunning(ctx, ticket.WorkRequestID); err != nil {
		slog.Warn("Failed to mark work request running",
			"work_request_id", ticket.WorkRequestID, "error", err)
	}

	deps.Broadcaster.Emit(ctx, ticket.ID, progress.Event{
		Type:     progress.EventProgress,
		Status:   string(workticket.StatusRunning),
		StepName: "claimed",
		Payload:  map[string]any{"agent_kind": string(ticket.AgentKind)},
	})

	// 3. Create ticket context with timeout
	ticketCtx, cancelTicket := context.WithTimeout(ctx, cfg.TicketTimeout)
	defer cancelTicket()

	// 4. Register cancel function for API-triggered cancellation
	if pool != nil {
		pool.RegisterTicket(ticket.ID, cancelTicket)
		defer pool.UnregisterTicket(ticket.ID)
	}

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ticketCtx)
	defer cancelHeartbeat()
	go runHeartbeat(heartbeatCtx, deps.Client, ticket.ID, cfg.HeartbeatInterval)

	// 6. Execute ticket
	result := executor.Execute(ticketCtx, ticket)
	if result == nil {
		result = nilResult(ticketCtx, cfg)
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Record terminal state (uses background context; ticketCtx may be
	//    cancelled or expired by now)
	if err := finalizeTicket(deps, ticket, result); err != nil {
		return nil, err
	}
	return result, nil
}

// nilResult synthesizes a terminal verdict when the executor returned nil.
func nilResult(ctx context.Context, cfg *config.QueueConfig) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status:    workticket.StatusFailed,
			ErrorKind: ErrorKindTimeout,
			Error:     fmt.Errorf("ticket timed out after %v", cfg.TicketTimeout),
		}
	case errors.Is(ctx.Err(), context.Canceled):
		return &ExecutionResult{
			Status:    workticket.StatusFailed,
			ErrorKind: ErrorKindCancelled,
			Error:     context.Canceled,
		}
	default:
		return &ExecutionResult{
			Status:    workticket.StatusFailed,
			ErrorKind: ErrorKindInternal,
			Error:     fmt.Errorf("executor returned nil result"),
		}
	}
}

// revertClaim returns a just-claimed ticket to pending so another worker
// can pick it up once its session frees.
func revertClaim(client *ent.Client, ticketID string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := client.WorkTicket.Update().
		Where(
			workticket.IDEQ(ticketID),
			workticket.StatusEQ(workticket.StatusRunning),
		).
		SetStatus(workticket.StatusPending).
		ClearPodID().
		ClearClaimedAt().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("ticket %s is no longer running", ticketID)
	}
	return nil
}

// releaseSession frees the ticket's session claim. Background context:
// release must happen even when the run was cancelled.
func releaseSession(deps Deps, ticket *ent.WorkTicket) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := deps.Sessions.Release(ctx, ticket.AgentSessionID, ticket.ID); err != nil {
		slog.Warn("Failed to release session claim",
			"session_id", ticket.AgentSessionID, "ticket_id", ticket.ID, "error", err)
	}
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan
// detection.
func runHeartbeat(ctx context.Context, client *ent.Client, ticketID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.WorkTicket.UpdateOneID(ticketID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "ticket_id", ticketID, "error", err)
			}
		}
	}
}

// finalizeTicket records the terminal transition, closes out the work
// request, and emits the terminal progress event.
func finalizeTicket(deps Deps, ticket *ent.WorkTicket, result *ExecutionResult) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	outcome := models.TicketOutcome{
		OutputCount:      result.OutputCount,
		CheckpointReason: result.CheckpointReason,
		ErrorKind:        result.ErrorKind,
	}
	if result.Error != nil {
		outcome.ErrorMessage = result.Error.Error()
	}
	if result.Iterations > 0 {
		outcome.Extra = map[string]any{"iterations": result.Iterations}
	}

	var transitionErr error
	switch result.Status {
	case workticket.StatusCompleted:
		transitionErr = deps.Tickets.Complete(ctx, ticket.ID, outcome)
	case workticket.StatusPendingReview:
		transitionErr = deps.Tickets.MarkPendingReview(ctx, ticket.ID, outcome)
	default:
		result.Status = workticket.StatusFailed
		transitionErr = deps.Tickets.Fail(ctx, ticket.ID, outcome)
	}
	if transitionErr != nil {
		return fmt.Errorf("recording terminal status %s: %w", result.Status, transitionErr)
	}

	// The request mirrors the ticket. pending_review still completes the
	// request: execution finished, review gates the outputs.
	var closeErr error
	if result.Status == workticket.StatusFailed {
		msg := result.ErrorKind
		if result.Error != nil {
			msg = result.Error.Error()
		}
		closeErr = deps.Requests.MarkFailed(ctx, ticket.WorkRequestID, msg)
	} else {
		closeErr = deps.Requests.MarkCompleted(ctx, ticket.WorkRequestID, result.ResponseText)
	}
	if closeErr != nil {
		slog.Error("Failed to close out work request",
			"work_request_id", ticket.WorkRequestID, "error", closeErr)
	}

	emitTerminalEvent(ctx, deps, ticket.ID, result)
	notifyReviewers(ctx, deps, ticket, result)
	return nil
}

// notifyReviewers posts the reviewer notification for tickets that need
// human attention: checkpointed runs and failures. Nil-safe and fail-open.
func notifyReviewers(ctx context.Context, deps Deps, ticket *ent.WorkTicket, result *ExecutionResult) {
	switch result.Status {
	case workticket.StatusPendingReview:
		deps.Notifier.NotifyReviewRequested(ctx, slack.ReviewRequestedInput{
			TicketID:         ticket.ID,
			BasketID:         ticket.BasketID,
			AgentKind:        string(ticket.AgentKind),
			OutputCount:      result.OutputCount,
			CheckpointReason: result.CheckpointReason,
		})
	case workticket.StatusFailed:
		in := slack.TicketFailedInput{
			TicketID:  ticket.ID,
			BasketID:  ticket.BasketID,
			AgentKind: string(ticket.AgentKind),
			ErrorKind: result.ErrorKind,
		}
		if result.Error != nil {
			in.ErrorMessage = result.Error.Error()
		}
		deps.Notifier.NotifyTicketFailed(ctx, in)
	}
}

// emitTerminalEvent publishes exactly one terminal frame for the ticket.
// The frame's status is the request-level verdict (completed or failed);
// a checkpoint surfaces as ticket_status and checkpoint_reason in the
// payload so review UIs can distinguish it.
func emitTerminalEvent(ctx context.Context, deps Deps, ticketID string, result *ExecutionResult) {
	payload := map[string]any{"output_count": result.OutputCount}

	eventType := progress.EventCompleted
	status := string(workticket.StatusCompleted)

	switch result.Status {
	case workticket.StatusFailed:
		status = string(workticket.StatusFailed)
		if result.ErrorKind == ErrorKindTimeout {
			eventType = progress.EventTimeout
		} else {
			eventType = progress.EventFailed
		}
		payload["error_kind"] = result.ErrorKind
		if result.Error != nil {
			payload["error"] = result.Error.Error()
		}
	case workticket.StatusPendingReview:
		payload["ticket_status"] = string(workticket.StatusPendingReview)
		if result.CheckpointReason != "" {
			payload["checkpoint_reason"] = result.CheckpointReason
		}
	}

	deps.Broadcaster.Emit(ctx, ticketID, progress.Event{
		Type:    eventType,
		Status:  status,
		Payload: payload,
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, ticketID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTicketID = ticketID
	w.lastActivity = time.Now()
}
