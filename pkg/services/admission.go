package services

import (
	"context"
	"log/slog"

	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/tools"
)

// AdmissionService is the single path by which work enters the system:
// quota gate, durable request, session pin, pending ticket. Both the HTTP
// queue endpoint and the trigger_recipe tool admit through it.
type AdmissionService struct {
	gate     *QuotaGate
	recorder *WorkRequestRecorder
	registry *SessionRegistry
	tickets  *TicketService
}

// NewAdmissionService creates a new AdmissionService.
func NewAdmissionService(gate *QuotaGate, recorder *WorkRequestRecorder, registry *SessionRegistry, tickets *TicketService) *AdmissionService {
	return &AdmissionService{
		gate:     gate,
		recorder: recorder,
		registry: registry,
		tickets:  tickets,
	}
}

// Admit runs the full admission path and returns everything it created.
// After the request row exists, downstream failures fail the request so a
// half-admitted trial never keeps consuming the allowance.
func (s *AdmissionService) Admit(ctx context.Context, req models.QueueWorkRequest) (*models.WorkAdmission, error) {
	if req.BasketID == "" {
		return nil, NewValidationError("basket_id", "required")
	}

	decision, err := s.gate.Check(ctx, req.UserID, req.WorkspaceID, agent.Kind(req.AgentKind))
	if err != nil {
		return nil, err
	}

	request, err := s.recorder.Record(ctx, models.RecordWorkRequest{
		UserID:      req.UserID,
		WorkspaceID: req.WorkspaceID,
		BasketID:    req.BasketID,
		AgentKind:   req.AgentKind,
		WorkMode:    req.WorkMode,
		Payload:     admissionPayload(req),
		IsTrial:     decision.IsTrial,
		Priority:    req.Priority,
	})
	if err != nil {
		return nil, err
	}

	session, err := s.registry.GetOrCreate(ctx, req.BasketID, req.WorkspaceID, agent.Kind(req.AgentKind), req.UserID)
	if err != nil {
		s.abandon(ctx, request.ID, "session registration failed")
		return nil, err
	}

	ticket, err := s.tickets.CreatePending(ctx, models.CreateTicketRequest{
		WorkRequestID:  request.ID,
		AgentSessionID: session.ID,
		BasketID:       req.BasketID,
		WorkspaceID:    req.WorkspaceID,
		AgentKind:      req.AgentKind,
		Priority:       req.Priority,
	})
	if err != nil {
		s.abandon(ctx, request.ID, "ticket creation failed")
		return nil, err
	}

	// The gate reported the allowance before this request consumed a
	// trial; the caller wants what is left after it.
	remaining := decision.RemainingTrials
	if decision.IsTrial {
		remaining--
	}

	slog.Info("Work admitted",
		"work_request_id", request.ID,
		"ticket_id", ticket.ID,
		"basket_id", req.BasketID,
		"agent_kind", req.AgentKind,
		"work_mode", req.WorkMode,
		"is_trial", decision.IsTrial)

	return &models.WorkAdmission{
		Request:         request,
		Ticket:          ticket,
		Session:         session,
		IsTrial:         decision.IsTrial,
		RemainingTrials: remaining,
	}, nil
}

// AdmitWork implements the tool layer's admitter: recipe-triggered child
// work enters through the same gate as user work.
func (s *AdmissionService) AdmitWork(ctx context.Context, in tools.AdmitWorkInput) (string, error) {
	admission, err := s.Admit(ctx, models.QueueWorkRequest{
		UserID:         in.UserID,
		WorkspaceID:    in.WorkspaceID,
		BasketID:       in.BasketID,
		ProjectID:      in.ProjectID,
		AgentKind:      in.AgentKind,
		WorkMode:       in.WorkMode,
		Payload:        in.Payload,
		Priority:       in.Priority,
		ParentTicketID: in.ParentTicketID,
	})
	if err != nil {
		return "", err
	}
	return admission.Ticket.ID, nil
}

// admissionPayload folds tracing fields into the opaque payload so the
// executor and audit trail see them without widening the schema.
func admissionPayload(req models.QueueWorkRequest) map[string]any {
	if req.ProjectID == "" && req.ParentTicketID == "" {
		return req.Payload
	}
	payload := make(map[string]any, len(req.Payload)+2)
	for k, v := range req.Payload {
		payload[k] = v
	}
	if req.ProjectID != "" {
		payload["project_id"] = req.ProjectID
	}
	if req.ParentTicketID != "" {
		payload["parent_ticket_id"] = req.ParentTicketID
	}
	return payload
}

// abandon fails a freshly recorded request whose admission could not
// finish. Best-effort: a failed request stops consuming trial quota.
func (s *AdmissionService) abandon(ctx context.Context, requestID, reason string) {
	if err := s.recorder.MarkFailed(ctx, requestID, reason); err != nil {
		slog.Error("Failed to abandon work request",
			"work_request_id", requestID,
			"reason", reason,
			"error", err)
	}
}
