package api

// ScaffoldProjectRequest is the body of POST /api/projects/scaffold.
// user_id is only honored for service-to-service calls.
type ScaffoldProjectRequest struct {
	UserID           string         `json:"user_id,omitempty"`
	WorkspaceID      string         `json:"workspace_id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Intent           string         `json:"intent"`
	InitialContext   string         `json:"initial_context,omitempty"`
	PromotionMode    string         `json:"promotion_mode,omitempty"`
	AutoPromoteTypes []string       `json:"auto_promote_types,omitempty"`
	GovernancePolicy map[string]any `json:"governance_policy,omitempty"`
}

// SubmitWorkRequest is the body of POST /api/work/queue and of the
// deprecated POST /api/agents/run.
type SubmitWorkRequest struct {
	UserID      string         `json:"user_id,omitempty"`
	WorkspaceID string         `json:"workspace_id"`
	BasketID    string         `json:"basket_id"`
	ProjectID   string         `json:"project_id,omitempty"`
	AgentKind   string         `json:"agent_kind"`
	WorkMode    string         `json:"work_mode"`
	Task        string         `json:"task,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Priority    int            `json:"priority,omitempty"`
}

// TPChatRequest is the body of POST /api/tp/chat.
type TPChatRequest struct {
	UserID      string `json:"user_id,omitempty"`
	WorkspaceID string `json:"workspace_id"`
	BasketID    string `json:"basket_id"`
	ProjectID   string `json:"project_id,omitempty"`
	Message     string `json:"message"`
}

// ReviewActionRequest is the optional body of the supervision actions.
type ReviewActionRequest struct {
	Notes string `json:"notes,omitempty"`
}
