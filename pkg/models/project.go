package models

// CreateProjectRequest contains fields for creating a project row. The
// basket must already exist substrate-side; the scaffolder creates it
// before calling this.
type CreateProjectRequest struct {
	WorkspaceID      string         `json:"workspace_id"`
	BasketID         string         `json:"basket_id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	PromotionMode    string         `json:"promotion_mode,omitempty"`
	AutoPromoteTypes []string       `json:"auto_promote_types,omitempty"`
	GovernancePolicy map[string]any `json:"governance_policy,omitempty"`
	CreatedBy        string         `json:"created_by,omitempty"`
}
