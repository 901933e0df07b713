package api

import (
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// WorkQueuedResponse is returned by POST /api/work/queue.
type WorkQueuedResponse struct {
	TicketID        string `json:"ticket_id"`
	WorkRequestID   string `json:"work_request_id"`
	StreamURL       string `json:"stream_url"`
	IsTrialRequest  bool   `json:"is_trial_request"`
	RemainingTrials int    `json:"remaining_trials"`
}

// AgentRunResponse is returned by the deprecated POST /api/agents/run.
type AgentRunResponse struct {
	WorkRequestID   string                 `json:"work_request_id"`
	TicketID        string                 `json:"ticket_id"`
	IsTrialRequest  bool                   `json:"is_trial_request"`
	RemainingTrials int                    `json:"remaining_trials"`
	Status          string                 `json:"status"`
	ResponseText    string                 `json:"response_text"`
	WorkOutputs     []substrate.WorkOutput `json:"work_outputs"`
}

// TicketResponse is returned by GET /api/work/tickets/:id.
type TicketResponse struct {
	ID             string         `json:"ticket_id"`
	WorkRequestID  string         `json:"work_request_id"`
	AgentSessionID string         `json:"agent_session_id"`
	BasketID       string         `json:"basket_id"`
	WorkspaceID    string         `json:"workspace_id"`
	AgentKind      string         `json:"agent_kind"`
	Status         string         `json:"status"`
	Priority       int            `json:"priority"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	EndedAt        *time.Time     `json:"ended_at,omitempty"`
	Metadata       map[string]any `json:"ticket_metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func newTicketResponse(t *ent.WorkTicket) *TicketResponse {
	return &TicketResponse{
		ID:             t.ID,
		WorkRequestID:  t.WorkRequestID,
		AgentSessionID: t.AgentSessionID,
		BasketID:       t.BasketID,
		WorkspaceID:    t.WorkspaceID,
		AgentKind:      string(t.AgentKind),
		Status:         string(t.Status),
		Priority:       t.Priority,
		StartedAt:      t.StartedAt,
		EndedAt:        t.EndedAt,
		Metadata:       t.TicketMetadata,
		CreatedAt:      t.CreatedAt,
	}
}

// TPChatResponse is returned by POST /api/tp/chat. ToolActivity carries
// the tool_start/tool_result events the turn produced, in order.
type TPChatResponse struct {
	TicketID      string           `json:"ticket_id"`
	WorkRequestID string           `json:"work_request_id"`
	Reply         string           `json:"reply"`
	Status        string           `json:"status"`
	ToolActivity  []progress.Event `json:"tool_activity,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                    `json:"status"`
	Version  string                    `json:"version"`
	Checks   map[string]HealthCheck    `json:"checks"`
	Warnings []*services.SystemWarning `json:"warnings,omitempty"`
}

// HealthCheck is one named probe inside a health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DBHealthResponse is returned by GET /health/db.
type DBHealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database"`
}

// QueueHealthResponse is returned by GET /health/queue.
type QueueHealthResponse struct {
	Status string            `json:"status"`
	Pool   *queue.PoolHealth `json:"pool,omitempty"`
}
