package events

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workevent"
	"github.com/cobbleworks/foundry/pkg/progress"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestBroadcaster_Emit(t *testing.T) {
	client := testdb.NewTestClient(t)
	hub := progress.NewHub()
	pub := NewPublisher(client.DB(), "work_events_bcast_test", "pod-a")
	ctx := context.Background()

	countRows := func(t *testing.T, ticketID string) int {
		n, err := client.WorkEvent.Query().Where(workevent.TicketIDEQ(ticketID)).Count(ctx)
		require.NoError(t, err)
		return n
	}

	t.Run("reaches the local hub and the durable trail", func(t *testing.T) {
		b := NewBroadcaster(hub, pub, nil)
		ticketID := uuid.New().String()

		b.Emit(ctx, ticketID, progress.Event{Type: progress.EventProgress, StepName: "plan"})

		events, _ := hub.Since(ticketID, progress.CursorStart)
		require.Len(t, events, 1)
		assert.Equal(t, ticketID, events[0].TicketID)
		assert.Equal(t, "plan", events[0].StepName)
		assert.Equal(t, 1, countRows(t, ticketID))
	})

	t.Run("hub-only when no publisher is configured", func(t *testing.T) {
		b := NewBroadcaster(hub, nil, nil)
		ticketID := uuid.New().String()

		b.Emit(ctx, ticketID, progress.Event{Type: progress.EventProgress})

		events, _ := hub.Since(ticketID, progress.CursorStart)
		assert.Len(t, events, 1)
		assert.Equal(t, 0, countRows(t, ticketID))
	})

	t.Run("persistence failure does not lose the local event", func(t *testing.T) {
		b := NewBroadcaster(hub, pub, nil)
		ticketID := uuid.New().String()

		// Empty event type is rejected by the publisher but still
		// reaches live stream consumers.
		b.Emit(ctx, ticketID, progress.Event{StepName: "plan"})

		events, _ := hub.Since(ticketID, progress.CursorStart)
		assert.Len(t, events, 1)
		assert.Equal(t, 0, countRows(t, ticketID))
	})
}
