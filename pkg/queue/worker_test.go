package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/progress"
)

func TestWorker_ClaimNextTicket(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	t.Run("returns ErrNoTicketsAvailable on an empty queue", func(t *testing.T) {
		w := NewWorker("w-0", "pod-1", f.deps, f.cfg, &scriptedExecutor{}, nil)
		_, err := w.claimNextTicket(ctx)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable)
	})

	t.Run("claims by priority, then age, and stamps the claim", func(t *testing.T) {
		low := f.pendingTicket(t, 0)
		highOld := f.pendingTicket(t, 5)
		highNew := f.pendingTicket(t, 5)

		// Separate created_at so age ordering is deterministic. created_at
		// is immutable in ent, so backdate it with raw SQL.
		_, err := f.client.DB().ExecContext(ctx,
			"UPDATE work_tickets SET created_at = $1 WHERE work_ticket_id = $2",
			highOld.CreatedAt.Add(time.Second), highNew.ID)
		require.NoError(t, err)

		w := NewWorker("w-1", "pod-1", f.deps, f.cfg, &scriptedExecutor{}, nil)

		claimed, err := w.claimNextTicket(ctx)
		require.NoError(t, err)
		assert.Equal(t, highOld.ID, claimed.ID)
		assert.Equal(t, workticket.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.ClaimedAt)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)

		second, err := w.claimNextTicket(ctx)
		require.NoError(t, err)
		assert.Equal(t, highNew.ID, second.ID)

		third, err := w.claimNextTicket(ctx)
		require.NoError(t, err)
		assert.Equal(t, low.ID, third.ID)
	})

	t.Run("skips tickets whose session is held by a live ticket", func(t *testing.T) {
		f := newQueueFixture(t)
		ticket := f.pendingTicket(t, 0)

		require.NoError(t, f.registry.Acquire(ctx, ticket.AgentSessionID, "other-ticket", f.cfg.TicketTimeout))

		w := NewWorker("w-2", "pod-1", f.deps, f.cfg, &scriptedExecutor{}, nil)
		_, err := w.claimNextTicket(ctx)
		assert.ErrorIs(t, err, ErrNoTicketsAvailable)

		require.NoError(t, f.registry.Release(ctx, ticket.AgentSessionID, "other-ticket"))

		claimed, err := w.claimNextTicket(ctx)
		require.NoError(t, err)
		assert.Equal(t, ticket.ID, claimed.ID)
	})

	t.Run("stale session claims do not block claiming", func(t *testing.T) {
		f := newQueueFixture(t)
		ticket := f.pendingTicket(t, 0)

		require.NoError(t, f.registry.Acquire(ctx, ticket.AgentSessionID, "dead-ticket", f.cfg.TicketTimeout))
		_, err := f.client.AgentSession.UpdateOneID(ticket.AgentSessionID).
			SetLastClaimedAt(time.Now().Add(-2 * f.cfg.TicketTimeout)).
			Save(ctx)
		require.NoError(t, err)

		w := NewWorker("w-3", "pod-1", f.deps, f.cfg, &scriptedExecutor{}, nil)
		claimed, err := w.claimNextTicket(ctx)
		require.NoError(t, err)
		assert.Equal(t, ticket.ID, claimed.ID)
	})
}

// claimFor claims the given pending ticket through the worker claim path.
func claimFor(t *testing.T, f *queueFixture, podID string) *ent.WorkTicket {
	t.Helper()
	w := NewWorker(podID+"-worker", podID, f.deps, f.cfg, &scriptedExecutor{}, nil)
	claimed, err := w.claimNextTicket(context.Background())
	require.NoError(t, err)
	return claimed
}

func TestRunTicket_Completed(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")

	exec := &scriptedExecutor{}
	result, err := runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusCompleted, result.Status)
	assert.Equal(t, []string{ticket.ID}, exec.executed())

	// Ticket is terminal with its outcome metadata.
	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusCompleted, stored.Status)
	assert.NotNil(t, stored.EndedAt)
	assert.EqualValues(t, 1, stored.TicketMetadata["output_count"])

	// The work request closed out with the response text.
	request, err := f.recorder.Get(ctx, ticket.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusCompleted, request.Status)
	require.NotNil(t, request.ResultSummary)
	assert.Equal(t, "done", *request.ResultSummary)

	// The session claim was released.
	session, err := f.client.AgentSession.Get(ctx, ticket.AgentSessionID)
	require.NoError(t, err)
	assert.Nil(t, session.LastClaimedBy)

	// Progress: a running frame first, exactly one terminal frame last.
	events := f.ticketEvents(ticket.ID)
	require.NotEmpty(t, events)
	assert.Equal(t, progress.EventProgress, events[0].Type)
	assert.Equal(t, "claimed", events[0].StepName)
	last := events[len(events)-1]
	assert.Equal(t, progress.EventCompleted, last.Type)
	assert.Equal(t, string(workticket.StatusCompleted), last.Status)
	assert.Equal(t, 1, last.Payload["output_count"])
}

func TestRunTicket_Checkpoint(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")

	exec := &scriptedExecutor{result: func(*ent.WorkTicket) *ExecutionResult {
		return &ExecutionResult{
			Status:           workticket.StatusPendingReview,
			ResponseText:     "needs a human look",
			CheckpointReason: "low_confidence_output",
			OutputCount:      2,
		}
	}}

	result, err := runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusPendingReview, result.Status)

	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusPendingReview, stored.Status)
	assert.Equal(t, "low_confidence_output", stored.TicketMetadata["checkpoint_reason"])

	// Execution finished; review gates the outputs, not the request.
	request, err := f.recorder.Get(ctx, ticket.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusCompleted, request.Status)

	events := f.ticketEvents(ticket.ID)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, progress.EventCompleted, last.Type)
	assert.Equal(t, string(workticket.StatusCompleted), last.Status)
	assert.Equal(t, string(workticket.StatusPendingReview), last.Payload["ticket_status"])
	assert.Equal(t, "low_confidence_output", last.Payload["checkpoint_reason"])
}

func TestRunTicket_Failed(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")

	exec := &scriptedExecutor{result: func(*ent.WorkTicket) *ExecutionResult {
		return &ExecutionResult{
			Status:    workticket.StatusFailed,
			ErrorKind: ErrorKindLLMError,
			Error:     errors.New("llm provider 500: upstream blew up"),
		}
	}}

	result, err := runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusFailed, result.Status)

	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusFailed, stored.Status)
	assert.Equal(t, ErrorKindLLMError, stored.TicketMetadata["error_kind"])

	request, err := f.recorder.Get(ctx, ticket.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusFailed, request.Status)
	require.NotNil(t, request.ErrorMessage)
	assert.Contains(t, *request.ErrorMessage, "upstream blew up")

	events := f.ticketEvents(ticket.ID)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, progress.EventFailed, last.Type)
	assert.Equal(t, string(workticket.StatusFailed), last.Status)
	assert.Equal(t, ErrorKindLLMError, last.Payload["error_kind"])
}

func TestRunTicket_TimeoutSynthesis(t *testing.T) {
	f := newQueueFixture(t)
	f.cfg.TicketTimeout = 150 * time.Millisecond
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")

	// Executor blocks past the ticket timeout and returns nil; the worker
	// synthesizes the timeout verdict.
	exec := &scriptedExecutor{block: make(chan struct{})}

	result, err := runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusFailed, result.Status)
	assert.Equal(t, ErrorKindTimeout, result.ErrorKind)

	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusFailed, stored.Status)
	assert.Equal(t, ErrorKindTimeout, stored.TicketMetadata["error_kind"])

	events := f.ticketEvents(ticket.ID)
	require.NotEmpty(t, events)
	assert.Equal(t, progress.EventTimeout, events[len(events)-1].Type)
}

func TestRunTicket_SessionConflictRequeues(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")

	// Another live ticket grabs the session between claim and execution.
	require.NoError(t, f.registry.Acquire(ctx, ticket.AgentSessionID, "rival-ticket", f.cfg.TicketTimeout))

	exec := &scriptedExecutor{}
	_, err := runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	assert.ErrorIs(t, err, errSessionHeld)
	assert.Empty(t, exec.executed())

	// The claim was reverted so another worker can retry later.
	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusPending, stored.Status)
	assert.Nil(t, stored.PodID)
	assert.Nil(t, stored.ClaimedAt)
	assert.Nil(t, stored.StartedAt)
	assert.Nil(t, stored.LastHeartbeatAt)
}

func TestRunTicket_Heartbeats(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	claimed := claimFor(t, f, "pod-1")
	initialBeat := *claimed.LastHeartbeatAt

	exec := &scriptedExecutor{block: make(chan struct{})}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = runTicket(ctx, f.deps, f.cfg, exec, nil, claimed)
	}()

	require.Eventually(t, func() bool {
		stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
		if err != nil || stored.LastHeartbeatAt == nil {
			return false
		}
		return stored.LastHeartbeatAt.After(initialBeat)
	}, 5*time.Second, 20*time.Millisecond, "heartbeat never advanced")

	close(exec.block)
	<-done

	f.waitTicketStatus(t, ticket.ID, workticket.StatusCompleted)
}

func TestWorker_ProcessesQueue(t *testing.T) {
	f := newQueueFixture(t)

	ticket := f.pendingTicket(t, 0)

	exec := &scriptedExecutor{}
	w := NewWorker("w-1", "pod-1", f.deps, f.cfg, exec, nil)
	w.Start(context.Background())
	defer w.Stop()

	f.waitTicketStatus(t, ticket.ID, workticket.StatusCompleted)

	require.Eventually(t, func() bool {
		return w.Health().TicketsProcessed == 1
	}, 5*time.Second, 20*time.Millisecond)

	health := w.Health()
	assert.Equal(t, "w-1", health.ID)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentTicketID)
}

func TestWorker_AtCapacity(t *testing.T) {
	f := newQueueFixture(t)
	f.cfg.MaxConcurrentTickets = 0

	f.pendingTicket(t, 0)

	w := NewWorker("w-1", "pod-1", f.deps, f.cfg, &scriptedExecutor{}, nil)
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}
