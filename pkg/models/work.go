// Package models contains request/response models and business domain types.
package models

import (
	"github.com/cobbleworks/foundry/ent"
)

// QueueWorkRequest contains fields for admitting a new unit of work.
type QueueWorkRequest struct {
	UserID         string         `json:"user_id"`
	WorkspaceID    string         `json:"workspace_id"`
	BasketID       string         `json:"basket_id"`
	ProjectID      string         `json:"project_id,omitempty"`
	AgentKind      string         `json:"agent_kind"`
	WorkMode       string         `json:"work_mode"`
	Payload        map[string]any `json:"payload,omitempty"`
	Priority       int            `json:"priority,omitempty"`
	ParentTicketID string         `json:"parent_ticket_id,omitempty"`
}

// WorkAdmission is the result of admitting work: the durable request, the
// pending ticket, the session it is pinned to, and the quota outcome.
type WorkAdmission struct {
	Request         *ent.WorkRequest
	Ticket          *ent.WorkTicket
	Session         *ent.AgentSession
	IsTrial         bool
	RemainingTrials int
}

// QuotaDecision is the quota gate's permit. A denial is returned as an
// error, never as a decision.
type QuotaDecision struct {
	Subscribed      bool
	IsTrial         bool
	RemainingTrials int
}

// RecordWorkRequest contains fields for recording a durable work request.
type RecordWorkRequest struct {
	UserID      string         `json:"user_id"`
	WorkspaceID string         `json:"workspace_id"`
	BasketID    string         `json:"basket_id"`
	AgentKind   string         `json:"agent_kind"`
	WorkMode    string         `json:"work_mode"`
	Payload     map[string]any `json:"payload,omitempty"`
	IsTrial     bool           `json:"is_trial"`
	Priority    int            `json:"priority,omitempty"`
}

// CreateTicketRequest contains fields for creating a pending work ticket.
type CreateTicketRequest struct {
	WorkRequestID  string `json:"work_request_id"`
	AgentSessionID string `json:"agent_session_id"`
	BasketID       string `json:"basket_id"`
	WorkspaceID    string `json:"workspace_id"`
	AgentKind      string `json:"agent_kind"`
	Priority       int    `json:"priority,omitempty"`
}

// TicketOutcome carries the executor's terminal verdict for a ticket.
type TicketOutcome struct {
	OutputCount      int            `json:"output_count"`
	CheckpointReason string         `json:"checkpoint_reason,omitempty"`
	ErrorKind        string         `json:"error_kind,omitempty"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// Metadata flattens the outcome into the ticket_metadata JSON column.
func (o TicketOutcome) Metadata() map[string]any {
	meta := map[string]any{"output_count": o.OutputCount}
	if o.CheckpointReason != "" {
		meta["checkpoint_reason"] = o.CheckpointReason
	}
	if o.ErrorKind != "" {
		meta["error_kind"] = o.ErrorKind
	}
	if o.ErrorMessage != "" {
		meta["error_message"] = o.ErrorMessage
	}
	for k, v := range o.Extra {
		meta[k] = v
	}
	return meta
}
