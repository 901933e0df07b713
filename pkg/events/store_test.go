package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestStore_GetAndReplay(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB(), "work_events_store_test", "pod-a")
	store := NewStore(client.Client)
	ctx := context.Background()

	t.Run("replays a ticket's events in insertion order", func(t *testing.T) {
		ticketID := uuid.New().String()
		otherTicket := uuid.New().String()

		_, err := pub.Publish(ctx, progress.Event{Type: progress.EventProgress, TicketID: ticketID, StepName: "plan"})
		require.NoError(t, err)
		_, err = pub.Publish(ctx, progress.Event{Type: progress.EventToolStart, TicketID: ticketID, StepName: "search"})
		require.NoError(t, err)
		_, err = pub.Publish(ctx, progress.Event{Type: progress.EventProgress, TicketID: otherTicket})
		require.NoError(t, err)
		_, err = pub.Publish(ctx, progress.Event{Type: progress.EventCompleted, TicketID: ticketID, Status: "completed"})
		require.NoError(t, err)

		events, err := store.ReplayTicket(ctx, ticketID)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{progress.EventProgress, progress.EventToolStart, progress.EventCompleted},
			[]string{events[0].Type, events[1].Type, events[2].Type})
		assert.Equal(t, "plan", events[0].StepName)
		assert.Equal(t, "completed", events[2].Status)
		for _, ev := range events {
			assert.Equal(t, ticketID, ev.TicketID)
			assert.False(t, ev.Timestamp.IsZero())
		}
	})

	t.Run("replay of an unknown ticket is empty", func(t *testing.T) {
		events, err := store.ReplayTicket(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("get resolves a single event with its payload", func(t *testing.T) {
		id, err := pub.Publish(ctx, progress.Event{
			Type:     progress.EventToolResult,
			TicketID: uuid.New().String(),
			Payload:  map[string]any{"rows": 12},
		})
		require.NoError(t, err)

		ev, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, progress.EventToolResult, ev.Type)
		assert.EqualValues(t, 12, ev.Payload["rows"])
	})

	t.Run("get of unknown event returns not found", func(t *testing.T) {
		_, err := store.Get(ctx, 999999999)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestStore_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	ticketID := uuid.New().String()
	old := time.Now().Add(-40 * 24 * time.Hour)
	_, err := client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(progress.EventProgress).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(progress.EventCompleted).
		Save(ctx)
	require.NoError(t, err)

	deleted, err := store.DeleteOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := store.ReplayTicket(ctx, ticketID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, progress.EventCompleted, remaining[0].Type)
}
