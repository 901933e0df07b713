package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/services"
)

// InlineRunner executes one specific ticket synchronously on the calling
// goroutine. The synchronous endpoints (direct agent runs, thinking
// partner turns) use it to return the result in the HTTP response while
// still going through the exact claim/heartbeat/terminal lifecycle the
// pool workers use.
type InlineRunner struct {
	podID    string
	deps     Deps
	config   *config.QueueConfig
	executor TicketExecutor
}

// NewInlineRunner creates an inline runner.
func NewInlineRunner(podID string, deps Deps, cfg *config.QueueConfig, executor TicketExecutor) *InlineRunner {
	return &InlineRunner{
		podID:    podID,
		deps:     deps,
		config:   cfg,
		executor: executor,
	}
}

// Run claims the given pending ticket and drives it to a terminal state.
// Claiming a ticket that is not pending is a conflict: it is already
// running elsewhere or already terminal. Cancellation rides the caller's
// context (client disconnect cancels the run).
func (r *InlineRunner) Run(ctx context.Context, ticketID string) (*ExecutionResult, error) {
	ticket, err := r.claimTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	result, err := runTicket(ctx, r.deps, r.config, r.executor, nil, ticket)
	if err != nil {
		if errors.Is(err, errSessionHeld) {
			return nil, fmt.Errorf("%w: agent session is busy with another ticket", services.ErrConflict)
		}
		return nil, err
	}
	return result, nil
}

// claimTicket transitions one specific pending ticket to running. The
// conditional update is the claim; a zero row count means somebody else
// got there first or the ticket is already terminal.
func (r *InlineRunner) claimTicket(ctx context.Context, ticketID string) (*ent.WorkTicket, error) {
	now := time.Now()
	count, err := r.deps.Client.WorkTicket.Update().
		Where(
			workticket.IDEQ(ticketID),
			workticket.StatusEQ(workticket.StatusPending),
		).
		SetStatus(workticket.StatusRunning).
		SetPodID(r.podID).
		SetClaimedAt(now).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim ticket: %w", err)
	}
	if count == 0 {
		ticket, err := r.deps.Tickets.Get(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: ticket %s is %s, not claimable",
			services.ErrConflict, ticketID, ticket.Status)
	}

	return r.deps.Tickets.Get(ctx, ticketID)
}
