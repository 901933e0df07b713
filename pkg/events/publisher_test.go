package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/progress"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestPublisher_Publish(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB(), "work_events_pub_test", "pod-a")
	ctx := context.Background()

	t.Run("persists the event and returns its row ID", func(t *testing.T) {
		ticketID := uuid.New().String()
		id, err := pub.Publish(ctx, progress.Event{
			Type:     progress.EventProgress,
			TicketID: ticketID,
			StepName: "collect_sources",
			Status:   "running",
			Payload:  map[string]any{"iteration": 2},
		})
		require.NoError(t, err)
		assert.Positive(t, id)

		row, err := client.WorkEvent.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ticketID, row.TicketID)
		assert.Equal(t, progress.EventProgress, row.EventType)
		assert.Equal(t, "collect_sources", row.StepName)
		assert.Equal(t, "running", row.Status)
		assert.EqualValues(t, 2, row.Payload["iteration"])
		assert.False(t, row.CreatedAt.IsZero())
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		id, err := pub.Publish(ctx, progress.Event{
			Type:     progress.EventCompleted,
			TicketID: uuid.New().String(),
		})
		require.NoError(t, err)

		row, err := client.WorkEvent.Get(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, row.StepName)
		assert.Empty(t, row.Status)
		assert.Empty(t, row.Payload)
	})

	t.Run("row IDs increase with publish order", func(t *testing.T) {
		ticketID := uuid.New().String()
		first, err := pub.Publish(ctx, progress.Event{Type: progress.EventProgress, TicketID: ticketID})
		require.NoError(t, err)
		second, err := pub.Publish(ctx, progress.Event{Type: progress.EventCompleted, TicketID: ticketID})
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("rejects event without ticket id", func(t *testing.T) {
		_, err := pub.Publish(ctx, progress.Event{Type: progress.EventProgress})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ticket id")
	})

	t.Run("rejects event without type", func(t *testing.T) {
		_, err := pub.Publish(ctx, progress.Event{TicketID: uuid.New().String()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event type")
	})
}

func TestPublisher_NotifyPayload(t *testing.T) {
	pub := NewPublisher(nil, "", "pod-a")
	assert.Equal(t, DefaultChannel, pub.channel)

	t.Run("small event ships inline", func(t *testing.T) {
		buf, err := pub.buildNotifyPayload(progress.Event{
			Type:     progress.EventToolResult,
			TicketID: "ticket-1",
			StepName: "search",
			Payload:  map[string]any{"matches": 3},
		}, 42)
		require.NoError(t, err)

		var env Envelope
		require.NoError(t, json.Unmarshal(buf, &env))
		assert.Equal(t, progress.EventToolResult, env.Type)
		assert.Equal(t, "ticket-1", env.TicketID)
		assert.Equal(t, "search", env.StepName)
		assert.EqualValues(t, 3, env.Payload["matches"])
		assert.EqualValues(t, 42, env.DBEventID)
		assert.Equal(t, "pod-a", env.Origin)
		assert.False(t, env.Truncated)
	})

	t.Run("oversized payload is stripped and marked truncated", func(t *testing.T) {
		buf, err := pub.buildNotifyPayload(progress.Event{
			Type:     progress.EventToolResult,
			TicketID: "ticket-2",
			Payload:  map[string]any{"blob": strings.Repeat("x", maxNotifyPayload+100)},
		}, 43)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(buf), maxNotifyPayload)

		var env Envelope
		require.NoError(t, json.Unmarshal(buf, &env))
		assert.True(t, env.Truncated)
		assert.Nil(t, env.Payload)
		assert.Equal(t, "ticket-2", env.TicketID)
		assert.EqualValues(t, 43, env.DBEventID)
		assert.Equal(t, "pod-a", env.Origin)
	})
}
