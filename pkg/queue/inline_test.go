package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/services"
)

func TestInlineRunner_Run(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)

	runner := NewInlineRunner("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	result, err := runner.Run(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusCompleted, result.Status)
	assert.Equal(t, "done", result.ResponseText)

	stored, err := f.client.WorkTicket.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusCompleted, stored.Status)
	require.NotNil(t, stored.PodID)
	assert.Equal(t, "pod-1", *stored.PodID)

	request, err := f.recorder.Get(ctx, ticket.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusCompleted, request.Status)
}

func TestInlineRunner_RunRejectsNonPending(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	_, err := f.client.WorkTicket.UpdateOneID(ticket.ID).
		SetStatus(workticket.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	runner := NewInlineRunner("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	_, err = runner.Run(ctx, ticket.ID)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "completed")
}

func TestInlineRunner_RunUnknownTicket(t *testing.T) {
	f := newQueueFixture(t)

	runner := NewInlineRunner("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	_, err := runner.Run(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestInlineRunner_RunSessionBusy(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	require.NoError(t, f.registry.Acquire(ctx, ticket.AgentSessionID, "rival-ticket", f.cfg.TicketTimeout))

	runner := NewInlineRunner("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	_, err := runner.Run(ctx, ticket.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	// The claim was reverted; a queue worker can retry once the session frees.
	assert.Equal(t, workticket.StatusPending, f.ticketStatus(t, ticket.ID))
}
