package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/progress"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestService_PrunesOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := events.NewStore(client.Client)
	hub := progress.NewHub()
	ctx := context.Background()

	ticketID := uuid.New().String()
	_, err := client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(progress.EventProgress).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(progress.EventCompleted).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		EventRetention:  time.Hour,
		CleanupInterval: time.Hour,
		HubIdleWindow:   time.Hour,
	}, store, hub)

	svc.runAll(ctx)

	remaining, err := store.ReplayTicket(ctx, ticketID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, progress.EventCompleted, remaining[0].Type)
}

func TestService_PurgesIdleBuffers(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := events.NewStore(client.Client)
	hub := progress.NewHub()

	hub.Emit("ticket-1", progress.Event{Type: progress.EventProgress})
	hub.Emit("ticket-2", progress.Event{Type: progress.EventProgress})
	require.Equal(t, 2, hub.ActiveBuffers())

	svc := NewService(&config.RetentionConfig{
		EventRetention:  time.Hour,
		CleanupInterval: time.Hour,
		HubIdleWindow:   time.Millisecond,
	}, store, hub)

	time.Sleep(10 * time.Millisecond)
	svc.runAll(context.Background())

	assert.Equal(t, 0, hub.ActiveBuffers())
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := events.NewStore(client.Client)
	hub := progress.NewHub()
	ctx := context.Background()

	ticketID := uuid.New().String()
	_, err := client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(progress.EventProgress).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		EventRetention:  time.Hour,
		CleanupInterval: time.Hour,
		HubIdleWindow:   time.Hour,
	}, store, hub)

	// The initial sweep runs on start; double Start is a no-op.
	svc.Start(ctx)
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		remaining, err := store.ReplayTicket(ctx, ticketID)
		return err == nil && len(remaining) == 0
	}, 5*time.Second, 20*time.Millisecond)
}
