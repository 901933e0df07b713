package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/models"
	testdb "github.com/cobbleworks/foundry/test/database"
)

// newTicketFixture records a work request and returns a pending ticket for
// it, covering the FK from tickets to requests.
func newTicketFixture(t *testing.T, client *ent.Client, tickets *TicketService) *ent.WorkTicket {
	t.Helper()
	ctx := context.Background()

	request := recordRequest(t, NewWorkRequestRecorder(client))
	ticket, err := tickets.CreatePending(ctx, models.CreateTicketRequest{
		WorkRequestID:  request.ID,
		AgentSessionID: uuid.New().String(),
		BasketID:       request.BasketID,
		WorkspaceID:    request.WorkspaceID,
		AgentKind:      string(request.AgentKind),
	})
	require.NoError(t, err)
	return ticket
}

func TestTicketService_CreatePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	tickets := NewTicketService(client.Client)
	ctx := context.Background()

	t.Run("creates pending ticket", func(t *testing.T) {
		request := recordRequest(t, NewWorkRequestRecorder(client.Client))

		ticket, err := tickets.CreatePending(ctx, models.CreateTicketRequest{
			WorkRequestID:  request.ID,
			AgentSessionID: "session-1",
			BasketID:       request.BasketID,
			WorkspaceID:    request.WorkspaceID,
			AgentKind:      "research",
			Priority:       2,
		})
		require.NoError(t, err)

		assert.Equal(t, workticket.StatusPending, ticket.Status)
		assert.Equal(t, request.ID, ticket.WorkRequestID)
		assert.Equal(t, "session-1", ticket.AgentSessionID)
		assert.Equal(t, 2, ticket.Priority)
		assert.Nil(t, ticket.StartedAt)
		assert.Nil(t, ticket.EndedAt)
	})

	t.Run("one ticket per work request", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)

		_, err := tickets.CreatePending(ctx, models.CreateTicketRequest{
			WorkRequestID:  ticket.WorkRequestID,
			AgentSessionID: "session-2",
			BasketID:       ticket.BasketID,
			WorkspaceID:    ticket.WorkspaceID,
			AgentKind:      "research",
		})
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := tickets.CreatePending(ctx, models.CreateTicketRequest{
			AgentSessionID: "s", BasketID: "b", WorkspaceID: "w", AgentKind: "research",
		})
		assert.True(t, IsValidationError(err))

		_, err = tickets.CreatePending(ctx, models.CreateTicketRequest{
			WorkRequestID: "r", AgentSessionID: "s", BasketID: "b", WorkspaceID: "w", AgentKind: "janitor",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	tickets := NewTicketService(client.Client)
	ctx := context.Background()

	t.Run("complete records outcome metadata", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)

		err := tickets.Complete(ctx, ticket.ID, models.TicketOutcome{
			OutputCount: 3,
			Extra:       map[string]any{"iterations": 4},
		})
		require.NoError(t, err)

		stored, err := tickets.Get(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, workticket.StatusCompleted, stored.Status)
		require.NotNil(t, stored.EndedAt)
		assert.EqualValues(t, 3, stored.TicketMetadata["output_count"])
		assert.EqualValues(t, 4, stored.TicketMetadata["iterations"])
	})

	t.Run("pending review records checkpoint reason", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)

		err := tickets.MarkPendingReview(ctx, ticket.ID, models.TicketOutcome{
			OutputCount:      1,
			CheckpointReason: "low_confidence_findings",
		})
		require.NoError(t, err)

		stored, err := tickets.Get(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, workticket.StatusPendingReview, stored.Status)
		assert.Equal(t, "low_confidence_findings", stored.TicketMetadata["checkpoint_reason"])
	})

	t.Run("fail records error kind and message", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)

		err := tickets.Fail(ctx, ticket.ID, models.TicketOutcome{
			ErrorKind:    "timeout",
			ErrorMessage: "ticket exceeded 15m budget",
		})
		require.NoError(t, err)

		stored, err := tickets.Get(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, workticket.StatusFailed, stored.Status)
		assert.Equal(t, "timeout", stored.TicketMetadata["error_kind"])
		assert.Equal(t, "ticket exceeded 15m budget", stored.TicketMetadata["error_message"])
	})

	t.Run("same terminal status twice is a no-op", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)
		require.NoError(t, tickets.Complete(ctx, ticket.ID, models.TicketOutcome{OutputCount: 2}))
		require.NoError(t, tickets.Complete(ctx, ticket.ID, models.TicketOutcome{OutputCount: 9}))

		stored, err := tickets.Get(ctx, ticket.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stored.TicketMetadata["output_count"])
	})

	t.Run("terminal ticket rejects a different terminal status", func(t *testing.T) {
		ticket := newTicketFixture(t, client.Client, tickets)
		require.NoError(t, tickets.Complete(ctx, ticket.ID, models.TicketOutcome{}))

		err := tickets.Fail(ctx, ticket.ID, models.TicketOutcome{ErrorKind: "late"})
		assert.True(t, errors.Is(err, ErrConflict))

		err = tickets.MarkPendingReview(ctx, ticket.ID, models.TicketOutcome{})
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("unknown ticket returns not found", func(t *testing.T) {
		err := tickets.Complete(ctx, uuid.New().String(), models.TicketOutcome{})
		assert.True(t, errors.Is(err, ErrNotFound))

		_, err = tickets.Get(ctx, uuid.New().String())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestTicketService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	tickets := NewTicketService(client.Client)
	ctx := context.Background()

	first := newTicketFixture(t, client.Client, tickets)
	newTicketFixture(t, client.Client, tickets)
	running := newTicketFixture(t, client.Client, tickets)

	// Move one ticket to running and one to completed directly; the claim
	// path that normally does this lives in the queue package.
	err := client.WorkTicket.UpdateOneID(running.ID).
		SetStatus(workticket.StatusRunning).
		Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, tickets.Complete(ctx, first.ID, models.TicketOutcome{}))

	depth, err := tickets.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	count, err := tickets.CountRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
