package models

// ScaffoldRequest contains fields for one-shot project onboarding.
type ScaffoldRequest struct {
	UserID           string         `json:"user_id"`
	WorkspaceID      string         `json:"workspace_id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Intent           string         `json:"intent"`
	InitialContext   string         `json:"initial_context,omitempty"`
	PromotionMode    string         `json:"promotion_mode,omitempty"`
	AutoPromoteTypes []string       `json:"auto_promote_types,omitempty"`
	GovernancePolicy map[string]any `json:"governance_policy,omitempty"`
	UserToken        string         `json:"-"`
}

// ScaffoldResult carries every ID created during onboarding. SessionIDs is
// keyed by agent kind.
type ScaffoldResult struct {
	ProjectID     string            `json:"project_id"`
	BasketID      string            `json:"basket_id"`
	IntentBlockID string            `json:"intent_block_id"`
	DumpID        string            `json:"dump_id,omitempty"`
	SessionIDs    map[string]string `json:"session_ids"`
	WorkRequestID string            `json:"work_request_id"`
	IsTrial       bool              `json:"is_trial_request"`
}
