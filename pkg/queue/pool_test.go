package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workticket"
)

func TestWorkerPool_ProcessesTickets(t *testing.T) {
	f := newQueueFixture(t)
	f.cfg.WorkerCount = 2

	t1 := f.pendingTicket(t, 0)
	t2 := f.pendingTicket(t, 3)
	t3 := f.pendingTicket(t, 1)

	pool := NewWorkerPool("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	f.waitTicketStatus(t, t1.ID, workticket.StatusCompleted)
	f.waitTicketStatus(t, t2.ID, workticket.StatusCompleted)
	f.waitTicketStatus(t, t3.ID, workticket.StatusCompleted)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
	assert.Equal(t, 0, health.QueueDepth)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	f := newQueueFixture(t)
	f.cfg.WorkerCount = 1

	pool := NewWorkerPool("pod-1", f.deps, f.cfg, &scriptedExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Equal(t, 1, pool.Health().TotalWorkers)
}

func TestWorkerPool_CancelTicket(t *testing.T) {
	f := newQueueFixture(t)

	ticket := f.pendingTicket(t, 0)

	// Executor blocks until its context is cut, then lets the worker
	// synthesize the verdict.
	exec := &scriptedExecutor{block: make(chan struct{})}

	pool := NewWorkerPool("pod-1", f.deps, f.cfg, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.False(t, pool.CancelTicket("no-such-ticket"))

	// The cancel function registers once a worker picks the ticket up.
	require.Eventually(t, func() bool {
		return pool.CancelTicket(ticket.ID)
	}, 10*time.Second, 25*time.Millisecond, "ticket never became cancellable")

	f.waitTicketStatus(t, ticket.ID, workticket.StatusFailed)

	stored, err := f.client.WorkTicket.Get(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ErrorKindCancelled, stored.TicketMetadata["error_kind"])
}

func TestWorkerPool_HealthWithoutWorkers(t *testing.T) {
	f := newQueueFixture(t)

	pool := NewWorkerPool("pod-1", f.deps, f.cfg, &scriptedExecutor{})

	health := pool.Health()
	assert.False(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 0, health.TotalWorkers)
}

func TestWorkerPool_StopDrainsInFlightTicket(t *testing.T) {
	f := newQueueFixture(t)

	ticket := f.pendingTicket(t, 0)

	exec := &scriptedExecutor{block: make(chan struct{})}
	pool := NewWorkerPool("pod-1", f.deps, f.cfg, exec)
	require.NoError(t, pool.Start(context.Background()))

	require.Eventually(t, func() bool {
		return f.ticketStatus(t, ticket.ID) == workticket.StatusRunning
	}, 10*time.Second, 25*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		pool.Stop()
	}()

	// Stop waits for the in-flight ticket; unblock it and the pool drains.
	select {
	case <-stopped:
		t.Fatal("pool stopped while a ticket was still executing")
	case <-time.After(100 * time.Millisecond):
	}

	close(exec.block)
	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		t.Fatal("pool did not stop after the ticket finished")
	}

	assert.Equal(t, workticket.StatusCompleted, f.ticketStatus(t, ticket.ID))
}
