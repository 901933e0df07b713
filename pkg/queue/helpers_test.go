package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
	testdb "github.com/cobbleworks/foundry/test/database"
)

// testQueueConfig tightens queue timings for tests.
func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentTickets = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.TicketTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 25 * time.Millisecond
	cfg.GracefulShutdownTimeout = 5 * time.Second
	cfg.OrphanDetectionInterval = 50 * time.Millisecond
	cfg.OrphanThreshold = time.Minute
	return cfg
}

// queueFixture bundles the queue collaborators over one test database.
// The broadcaster runs hub-only so tests assert on the local buffer.
type queueFixture struct {
	client   *database.Client
	hub      *progress.Hub
	deps     Deps
	cfg      *config.QueueConfig
	registry *services.SessionRegistry
	recorder *services.WorkRequestRecorder
	tickets  *services.TicketService
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	hub := progress.NewHub()
	tickets := services.NewTicketService(client.Client)
	recorder := services.NewWorkRequestRecorder(client.Client)
	registry := services.NewSessionRegistry(client.Client)

	return &queueFixture{
		client:   client,
		hub:      hub,
		registry: registry,
		recorder: recorder,
		tickets:  tickets,
		cfg:      testQueueConfig(),
		deps: Deps{
			Client:      client.Client,
			Tickets:     tickets,
			Requests:    recorder,
			Sessions:    registry,
			Broadcaster: events.NewBroadcaster(hub, nil, nil),
			Warnings:    services.NewSystemWarningsService(),
		},
	}
}

// pendingTicket creates a session, a work request, and a pending ticket
// bound to them, in a fresh basket.
func (f *queueFixture) pendingTicket(t *testing.T, priority int) *ent.WorkTicket {
	t.Helper()
	ctx := context.Background()

	basketID := uuid.New().String()
	workspaceID := uuid.New().String()

	session, err := f.registry.GetOrCreate(ctx, basketID, workspaceID, agent.KindResearch, "user-1")
	require.NoError(t, err)

	request, err := f.recorder.Record(ctx, models.RecordWorkRequest{
		UserID:      uuid.New().String(),
		WorkspaceID: workspaceID,
		BasketID:    basketID,
		AgentKind:   "research",
		WorkMode:    "deep_dive",
		Payload:     map[string]any{"task": "Map the competitive landscape"},
		Priority:    priority,
	})
	require.NoError(t, err)

	ticket, err := f.tickets.CreatePending(ctx, models.CreateTicketRequest{
		WorkRequestID:  request.ID,
		AgentSessionID: session.ID,
		BasketID:       basketID,
		WorkspaceID:    workspaceID,
		AgentKind:      "research",
		Priority:       priority,
	})
	require.NoError(t, err)
	return ticket
}

// claimedTicket creates a pending ticket and transitions it to running as
// if podID had claimed it, without going through a worker.
func (f *queueFixture) claimedTicket(t *testing.T, podID string, heartbeat time.Time) *ent.WorkTicket {
	t.Helper()
	ctx := context.Background()

	ticket := f.pendingTicket(t, 0)
	updated, err := f.client.WorkTicket.UpdateOneID(ticket.ID).
		SetStatus(workticket.StatusRunning).
		SetPodID(podID).
		SetClaimedAt(heartbeat).
		SetStartedAt(heartbeat).
		SetLastHeartbeatAt(heartbeat).
		Save(ctx)
	require.NoError(t, err)
	return updated
}

// ticketStatus re-reads a ticket's status.
func (f *queueFixture) ticketStatus(t *testing.T, ticketID string) workticket.Status {
	t.Helper()
	ticket, err := f.client.WorkTicket.Get(context.Background(), ticketID)
	require.NoError(t, err)
	return ticket.Status
}

// waitTicketStatus blocks until the ticket reaches the wanted status.
func (f *queueFixture) waitTicketStatus(t *testing.T, ticketID string, want workticket.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.ticketStatus(t, ticketID) == want
	}, 10*time.Second, 25*time.Millisecond, "ticket %s never reached %s", ticketID, want)
}

// ticketEvents drains the hub buffer for a ticket.
func (f *queueFixture) ticketEvents(ticketID string) []progress.Event {
	evs, _ := f.hub.Since(ticketID, progress.CursorStart)
	return evs
}

// scriptedExecutor is a TicketExecutor test double. Each Execute records
// the ticket and returns result(ticket); a nil result func completes with
// one output. When block is non-nil, Execute waits for the channel to
// close or the context to end, and onBlocked decides the verdict.
type scriptedExecutor struct {
	mu     sync.Mutex
	ran    []string
	result func(ticket *ent.WorkTicket) *ExecutionResult

	block     chan struct{}
	onBlocked func(ctx context.Context) *ExecutionResult
}

func (s *scriptedExecutor) Execute(ctx context.Context, ticket *ent.WorkTicket) *ExecutionResult {
	s.mu.Lock()
	s.ran = append(s.ran, ticket.ID)
	s.mu.Unlock()

	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			if s.onBlocked != nil {
				return s.onBlocked(ctx)
			}
			return nil
		}
	}
	if s.result != nil {
		return s.result(ticket)
	}
	return &ExecutionResult{
		Status:       workticket.StatusCompleted,
		ResponseText: "done",
		OutputCount:  1,
	}
}

func (s *scriptedExecutor) executed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ran))
	copy(out, s.ran)
	return out
}
