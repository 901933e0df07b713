package substrate

import "time"

// Basket is the substrate-side container backing one project.
type Basket struct {
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspace_id"`
	Name        string         `json:"name"`
	Origin      map[string]any `json:"origin,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CreateBasketInput is the payload for CreateBasket.
type CreateBasketInput struct {
	WorkspaceID string         `json:"workspace_id"`
	Name        string         `json:"name"`
	Origin      map[string]any `json:"origin,omitempty"`
}

// Block is a durable unit of knowledge.
type Block struct {
	ID           string         `json:"id"`
	BasketID     string         `json:"basket_id"`
	SemanticType string         `json:"semantic_type"`
	AnchorRole   string         `json:"anchor_role,omitempty"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Confidence   float64        `json:"confidence"`
	State        string         `json:"state"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CreateBlockInput is the payload for CreateBlock. Used by the project
// scaffolder for the foundational intent anchor; everything else reaches
// blocks through governed proposals.
type CreateBlockInput struct {
	SemanticType string         `json:"semantic_type"`
	AnchorRole   string         `json:"anchor_role,omitempty"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Confidence   float64        `json:"confidence"`
	State        string         `json:"state"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// BlockFilter narrows GetBasketBlocks.
type BlockFilter struct {
	State string
	Limit int
}

// Dump is an idempotent raw input row.
type Dump struct {
	ID        string    `json:"id"`
	BasketID  string    `json:"basket_id"`
	RequestID string    `json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkOutput is an agent-emitted artifact held by the substrate until it is
// supervised and, possibly, promoted.
type WorkOutput struct {
	ID                  string         `json:"id"`
	BasketID            string         `json:"basket_id"`
	WorkTicketID        string         `json:"work_ticket_id"`
	AgentKind           string         `json:"agent_kind"`
	OutputType          string         `json:"output_type"`
	Title               string         `json:"title"`
	Body                any            `json:"body"`
	Confidence          float64        `json:"confidence"`
	SourceContextIDs    []string       `json:"source_context_ids,omitempty"`
	ToolCallID          string         `json:"tool_call_id,omitempty"`
	SupervisionStatus   string         `json:"supervision_status"`
	ReviewerNotes       string         `json:"reviewer_notes,omitempty"`
	PromotionMethod     string         `json:"promotion_method,omitempty"`
	SubstrateProposalID string         `json:"substrate_proposal_id,omitempty"`
	Metadata            map[string]any `json:"metadata,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// CreateWorkOutputInput is the payload for CreateWorkOutput.
type CreateWorkOutputInput struct {
	WorkTicketID     string         `json:"work_ticket_id"`
	AgentKind        string         `json:"agent_kind"`
	OutputType       string         `json:"output_type"`
	Title            string         `json:"title"`
	Body             any            `json:"body"`
	Confidence       float64        `json:"confidence"`
	SourceContextIDs []string       `json:"source_context_ids,omitempty"`
	ToolCallID       string         `json:"tool_call_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// OutputFilter narrows ListWorkOutputs.
type OutputFilter struct {
	TicketID          string
	SupervisionStatus string
	AgentKind         string
	OutputType        string
	Limit             int
	Offset            int
}

// WorkOutputPage is one page of ListWorkOutputs results.
type WorkOutputPage struct {
	Items []WorkOutput `json:"items"`
	Total int          `json:"total"`
}

// UpdateWorkOutputInput changes supervision state on an output.
type UpdateWorkOutputInput struct {
	SupervisionStatus string `json:"supervision_status"`
	ReviewerNotes     string `json:"reviewer_notes,omitempty"`
	Reviewer          string `json:"reviewer,omitempty"`
}

// ProposalOp is a single operation inside a governance proposal.
type ProposalOp struct {
	Type             string         `json:"type"`
	SemanticType     string         `json:"semantic_type,omitempty"`
	Title            string         `json:"title,omitempty"`
	Body             string         `json:"body,omitempty"`
	Confidence       float64        `json:"confidence,omitempty"`
	SourceContextIDs []string       `json:"source_context_ids,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// CreateProposalInput is the payload for CreateProposal.
type CreateProposalInput struct {
	Ops        []ProposalOp   `json:"ops"`
	Origin     string         `json:"origin"`
	Provenance map[string]any `json:"provenance,omitempty"`
}

// Proposal is the substrate's record of a pending governed write.
type Proposal struct {
	ID        string    `json:"id"`
	BasketID  string    `json:"basket_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferenceAsset is an uploaded file available to agents.
type ReferenceAsset struct {
	ID         string         `json:"id"`
	BasketID   string         `json:"basket_id"`
	Title      string         `json:"title"`
	Filename   string         `json:"filename,omitempty"`
	MimeType   string         `json:"mime_type"`
	SignedURL  string         `json:"signed_url"`
	Permanence string         `json:"permanence"`
	AgentKind  string         `json:"agent_kind,omitempty"`
	TicketID   string         `json:"ticket_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// AssetFilter narrows GetReferenceAssets.
type AssetFilter struct {
	AgentKind  string
	TicketID   string
	Permanence string
}

// ContextItem is a typed piece of project context at one governance tier.
type ContextItem struct {
	ID                string         `json:"id"`
	BasketID          string         `json:"basket_id"`
	ItemType          string         `json:"item_type"`
	ItemKey           string         `json:"item_key,omitempty"`
	Tier              string         `json:"tier"`
	Title             string         `json:"title,omitempty"`
	Content           map[string]any `json:"content"`
	CompletenessScore float64        `json:"completeness_score"`
	Status            string         `json:"status"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ContextItemFilter narrows GetContextItems.
type ContextItemFilter struct {
	ItemType string
	ItemKey  string
	Status   string
	Limit    int
}

// UpsertContextItemInput writes a context item keyed by
// (basket, item_type, item_key).
type UpsertContextItemInput struct {
	ItemType          string         `json:"item_type"`
	ItemKey           string         `json:"item_key,omitempty"`
	Tier              string         `json:"tier"`
	Title             string         `json:"title,omitempty"`
	Content           map[string]any `json:"content"`
	CompletenessScore float64        `json:"completeness_score"`
}

// WorkJob is a substrate-side job (document generation and similar).
type WorkJob struct {
	ID      string         `json:"id"`
	Kind    string         `json:"kind"`
	Status  string         `json:"status"`
	Result  map[string]any `json:"result,omitempty"`
	Message string         `json:"message,omitempty"`
}

// WorkJobInput triggers a substrate-side job.
type WorkJobInput struct {
	Kind     string         `json:"kind"`
	BasketID string         `json:"basket_id"`
	Params   map[string]any `json:"params,omitempty"`
}
