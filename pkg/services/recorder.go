package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/google/uuid"
)

// WorkRequestRecorder owns the WorkRequest lifecycle: it records durable
// intent at admission and closes requests out when their ticket reaches a
// terminal state.
type WorkRequestRecorder struct {
	client *ent.Client
}

// NewWorkRequestRecorder creates a new WorkRequestRecorder.
func NewWorkRequestRecorder(client *ent.Client) *WorkRequestRecorder {
	return &WorkRequestRecorder{client: client}
}

// Record inserts a pending WorkRequest.
func (r *WorkRequestRecorder) Record(ctx context.Context, req models.RecordWorkRequest) (*ent.WorkRequest, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.BasketID == "" {
		return nil, NewValidationError("basket_id", "required")
	}
	if !agent.ValidKind(req.AgentKind) {
		return nil, NewValidationError("agent_kind", fmt.Sprintf("unknown agent kind %q", req.AgentKind))
	}
	if req.WorkMode == "" {
		return nil, NewValidationError("work_mode", "required")
	}

	builder := r.client.WorkRequest.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetWorkspaceID(req.WorkspaceID).
		SetBasketID(req.BasketID).
		SetAgentKind(workrequest.AgentKind(req.AgentKind)).
		SetWorkMode(req.WorkMode).
		SetIsTrial(req.IsTrial).
		SetPriority(req.Priority)

	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}

	request, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record work request: %w", err)
	}
	return request, nil
}

// Get returns a work request by ID.
func (r *WorkRequestRecorder) Get(ctx context.Context, requestID string) (*ent.WorkRequest, error) {
	request, err := r.client.WorkRequest.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: work request %s", ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to get work request: %w", err)
	}
	return request, nil
}

// MarkRunning moves a pending request to running. Re-marking a running
// request is a no-op; terminal requests conflict.
func (r *WorkRequestRecorder) MarkRunning(ctx context.Context, requestID string) error {
	return r.transition(requestID, workrequest.StatusRunning, func(u *ent.WorkRequestUpdate) {})
}

// MarkCompleted closes a request out successfully. Idempotent: re-marking
// a completed request is a no-op.
func (r *WorkRequestRecorder) MarkCompleted(ctx context.Context, requestID, resultSummary string) error {
	return r.transition(requestID, workrequest.StatusCompleted, func(u *ent.WorkRequestUpdate) {
		if resultSummary != "" {
			u.SetResultSummary(resultSummary)
		}
	})
}

// MarkFailed closes a request out as failed. Idempotent: re-marking a
// failed request is a no-op.
func (r *WorkRequestRecorder) MarkFailed(ctx context.Context, requestID, errorMessage string) error {
	return r.transition(requestID, workrequest.StatusFailed, func(u *ent.WorkRequestUpdate) {
		if errorMessage != "" {
			u.SetErrorMessage(errorMessage)
		}
	})
}

func isTerminalRequestStatus(s workrequest.Status) bool {
	return s == workrequest.StatusCompleted || s == workrequest.StatusFailed
}

// transition applies a status change with a conditional update so a lost
// race never silently rewrites a terminal row. Same-status re-transitions
// are no-ops; rewriting one terminal status to another is a conflict.
func (r *WorkRequestRecorder) transition(requestID string, target workrequest.Status, apply func(*ent.WorkRequestUpdate)) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	request, err := r.client.WorkRequest.Get(writeCtx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: work request %s", ErrNotFound, requestID)
		}
		return fmt.Errorf("failed to load work request: %w", err)
	}

	if request.Status == target {
		return nil
	}
	if isTerminalRequestStatus(request.Status) {
		return fmt.Errorf("%w: work request %s is %s, cannot mark %s",
			ErrConflict, requestID, request.Status, target)
	}

	update := r.client.WorkRequest.Update().
		Where(
			workrequest.IDEQ(requestID),
			workrequest.StatusEQ(request.Status),
		).
		SetStatus(target)
	apply(update)

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark work request %s: %w", target, err)
	}
	if count == 0 {
		// Lost a race: someone moved the row first. Re-read to decide
		// between idempotent success and conflict.
		current, err := r.client.WorkRequest.Get(writeCtx, requestID)
		if err != nil {
			return fmt.Errorf("failed to re-read work request after race: %w", err)
		}
		if current.Status == target {
			return nil
		}
		return fmt.Errorf("%w: work request %s moved to %s concurrently",
			ErrConflict, requestID, current.Status)
	}
	return nil
}
