// Package queue claims pending work tickets and drives them through the
// agent runtime: worker pool, per-ticket heartbeats, orphan recovery,
// and the inline execution path used by synchronous endpoints.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/slack"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTicketsAvailable indicates no claimable pending tickets.
	ErrNoTicketsAvailable = errors.New("no tickets available")

	// ErrAtCapacity indicates the global running-ticket ceiling is reached.
	ErrAtCapacity = errors.New("at capacity")

	// errSessionHeld indicates the claimed ticket's session is executing
	// under another live ticket; the ticket was reverted to pending.
	errSessionHeld = errors.New("session held by another ticket")
)

// Error kinds recorded on failed tickets and surfaced in terminal events.
const (
	ErrorKindCancelled            = "cancelled"
	ErrorKindTimeout              = "timeout"
	ErrorKindSubstrateUnavailable = "substrate_unavailable"
	ErrorKindLLMError             = "llm_error"
	ErrorKindInternal             = "internal"
	ErrorKindOrphaned             = "orphaned"
)

// TicketExecutor runs one claimed ticket end to end: session restore,
// runtime invocation, output emission, conversation persistence. It
// writes progressively through the tool layer; the worker only handles
// claiming, heartbeats, and the terminal transition.
type TicketExecutor interface {
	Execute(ctx context.Context, ticket *ent.WorkTicket) *ExecutionResult
}

// ExecutionResult is the executor's terminal verdict. Outputs were
// already persisted substrate-side during the run.
type ExecutionResult struct {
	Status           workticket.Status // completed, pending_review, failed
	ResponseText     string
	CheckpointReason string
	OutputCount      int
	Iterations       int
	ErrorKind        string // one of the ErrorKind constants
	Error            error
}

// Deps bundles the collaborators shared by workers, the inline runner,
// and the orphan sweeper.
type Deps struct {
	Client      *ent.Client
	Tickets     *services.TicketService
	Requests    *services.WorkRequestRecorder
	Sessions    *services.SessionRegistry
	Broadcaster *events.Broadcaster
	Warnings    *services.SystemWarningsService

	// Notifier posts reviewer notifications; nil disables them.
	Notifier *slack.Service
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningTickets   int            `json:"running_tickets"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentTicketID  string    `json:"current_ticket_id,omitempty"`
	TicketsProcessed int       `json:"tickets_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
