package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
)

func TestDetectAndRecoverOrphans(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	// A ticket whose pod died: running, heartbeat well past the threshold,
	// session still claimed by it.
	stale := f.claimedTicket(t, "dead-pod", time.Now().Add(-2*f.cfg.OrphanThreshold))
	require.NoError(t, f.registry.Acquire(ctx, stale.AgentSessionID, stale.ID, f.cfg.TicketTimeout))

	// A healthy running ticket on another pod.
	fresh := f.claimedTicket(t, "live-pod", time.Now())

	pool := NewWorkerPool("sweeper-pod", f.deps, f.cfg, &scriptedExecutor{})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	// The stale ticket was driven to failed with the orphan verdict.
	stored, err := f.client.WorkTicket.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusFailed, stored.Status)
	assert.Equal(t, ErrorKindOrphaned, stored.TicketMetadata["error_kind"])
	assert.Contains(t, stored.TicketMetadata["error_message"], "no heartbeat from pod dead-pod")

	// Its session claim was released and its request closed out.
	session, err := f.client.AgentSession.Get(ctx, stale.AgentSessionID)
	require.NoError(t, err)
	assert.Nil(t, session.LastClaimedBy)

	request, err := f.recorder.Get(ctx, stale.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusFailed, request.Status)

	// Streaming clients got a terminal frame.
	events := f.ticketEvents(stale.ID)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, progress.EventFailed, last.Type)
	assert.Equal(t, ErrorKindOrphaned, last.Payload["error_kind"])

	// The healthy ticket was left alone.
	assert.Equal(t, workticket.StatusRunning, f.ticketStatus(t, fresh.ID))

	// The sweep surfaced an operator warning and updated pool state.
	warnings := f.deps.Warnings.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, services.WarningCategoryQueueOrphans, warnings[0].Category)
	assert.Equal(t, "sweeper-pod", warnings[0].Source)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())

	// A second sweep finds nothing and raises nothing new.
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))
	assert.Len(t, f.deps.Warnings.GetWarnings(), 1)
	assert.Equal(t, 1, pool.Health().OrphansRecovered)
}

func TestCleanupStartupOrphans(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	// Heartbeat age is irrelevant here; startup cleanup is pod-scoped.
	mineA := f.claimedTicket(t, "pod-restart", time.Now())
	mineB := f.claimedTicket(t, "pod-restart", time.Now())
	other := f.claimedTicket(t, "other-pod", time.Now())

	require.NoError(t, CleanupStartupOrphans(ctx, f.deps, "pod-restart"))

	for _, id := range []string{mineA.ID, mineB.ID} {
		stored, err := f.client.WorkTicket.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, workticket.StatusFailed, stored.Status)
		assert.Equal(t, ErrorKindOrphaned, stored.TicketMetadata["error_kind"])
		assert.Contains(t, stored.TicketMetadata["error_message"], "restarted")
	}

	assert.Equal(t, workticket.StatusRunning, f.ticketStatus(t, other.ID))
}

func TestCleanupStartupOrphans_NothingToDo(t *testing.T) {
	f := newQueueFixture(t)
	assert.NoError(t, CleanupStartupOrphans(context.Background(), f.deps, "fresh-pod"))
}
