package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/google/uuid"
)

// TicketService owns WorkTicket rows outside the claim path: creation at
// admission and terminal transitions from the executor. Claiming and
// heartbeats live in pkg/queue.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService.
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// CreatePending inserts a pending ticket for a work request. A request has
// at most one ticket; a second create is ErrAlreadyExists.
func (s *TicketService) CreatePending(ctx context.Context, req models.CreateTicketRequest) (*ent.WorkTicket, error) {
	if req.WorkRequestID == "" {
		return nil, NewValidationError("work_request_id", "required")
	}
	if req.AgentSessionID == "" {
		return nil, NewValidationError("agent_session_id", "required")
	}
	if req.BasketID == "" {
		return nil, NewValidationError("basket_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if !agent.ValidKind(req.AgentKind) {
		return nil, NewValidationError("agent_kind", fmt.Sprintf("unknown agent kind %q", req.AgentKind))
	}

	ticket, err := s.client.WorkTicket.Create().
		SetID(uuid.New().String()).
		SetWorkRequestID(req.WorkRequestID).
		SetAgentSessionID(req.AgentSessionID).
		SetBasketID(req.BasketID).
		SetWorkspaceID(req.WorkspaceID).
		SetAgentKind(workticket.AgentKind(req.AgentKind)).
		SetPriority(req.Priority).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: work request %s already has a ticket", ErrAlreadyExists, req.WorkRequestID)
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

// Get returns a ticket by ID.
func (s *TicketService) Get(ctx context.Context, ticketID string) (*ent.WorkTicket, error) {
	ticket, err := s.client.WorkTicket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: ticket %s", ErrNotFound, ticketID)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

// Complete moves a running ticket to completed.
func (s *TicketService) Complete(ctx context.Context, ticketID string, outcome models.TicketOutcome) error {
	return s.terminal(ticketID, workticket.StatusCompleted, outcome)
}

// MarkPendingReview ends a run at a checkpoint: outputs need human review.
func (s *TicketService) MarkPendingReview(ctx context.Context, ticketID string, outcome models.TicketOutcome) error {
	return s.terminal(ticketID, workticket.StatusPendingReview, outcome)
}

// Fail moves a ticket to failed with the error recorded in metadata.
func (s *TicketService) Fail(ctx context.Context, ticketID string, outcome models.TicketOutcome) error {
	return s.terminal(ticketID, workticket.StatusFailed, outcome)
}

// IsTerminalTicketStatus reports whether a status admits no further
// transition.
func IsTerminalTicketStatus(s workticket.Status) bool {
	return s == workticket.StatusCompleted ||
		s == workticket.StatusPendingReview ||
		s == workticket.StatusFailed
}

// terminal applies a terminal transition. Same-status re-transitions are
// no-ops; any other write to a terminal ticket is a conflict.
func (s *TicketService) terminal(ticketID string, target workticket.Status, outcome models.TicketOutcome) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ticket, err := s.client.WorkTicket.Get(writeCtx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: ticket %s", ErrNotFound, ticketID)
		}
		return fmt.Errorf("failed to load ticket: %w", err)
	}

	if ticket.Status == target {
		return nil
	}
	if IsTerminalTicketStatus(ticket.Status) {
		return fmt.Errorf("%w: ticket %s is %s, cannot mark %s",
			ErrConflict, ticketID, ticket.Status, target)
	}

	count, err := s.client.WorkTicket.Update().
		Where(
			workticket.IDEQ(ticketID),
			workticket.StatusEQ(ticket.Status),
		).
		SetStatus(target).
		SetEndedAt(time.Now()).
		SetTicketMetadata(outcome.Metadata()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark ticket %s: %w", target, err)
	}
	if count == 0 {
		current, err := s.client.WorkTicket.Get(writeCtx, ticketID)
		if err != nil {
			return fmt.Errorf("failed to re-read ticket after race: %w", err)
		}
		if current.Status == target {
			return nil
		}
		return fmt.Errorf("%w: ticket %s moved to %s concurrently",
			ErrConflict, ticketID, current.Status)
	}
	return nil
}

// QueueDepth returns the number of pending tickets, for queue health.
func (s *TicketService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.WorkTicket.Query().
		Where(workticket.StatusEQ(workticket.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending tickets: %w", err)
	}
	return count, nil
}

// CountRunning returns the number of running tickets, for the global
// concurrency ceiling.
func (s *TicketService) CountRunning(ctx context.Context) (int, error) {
	count, err := s.client.WorkTicket.Query().
		Where(workticket.StatusEQ(workticket.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running tickets: %w", err)
	}
	return count, nil
}
