// Package tools implements the catalog of tools agents call during a run:
// substrate context reads and writes, work output emission, recipe
// triggering, and document generation. The dispatcher validates arguments
// against compiled JSON schemas before invoking a handler; handler failures
// come back to the LLM as error results and never abort the run.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

// ToolContext carries the identity of the run a tool call belongs to.
// Built once per ticket by the executor; handlers only read it.
type ToolContext struct {
	BasketID    string
	WorkspaceID string
	ProjectID   string
	TicketID    string
	SessionID   string
	UserID      string
	UserToken   string
	AgentKind   string

	// GovernancePolicy is the project's per-action write policy. The key
	// ep_manual_edit set to "proposal" routes foundation-tier context
	// writes through governance proposals.
	GovernancePolicy map[string]any

	// Emitter collects the outputs persisted during this run.
	Emitter *Emitter
}

// foundationWritePolicy resolves how foundation-tier context writes are
// admitted. Empty means direct writes are allowed.
func (tc ToolContext) foundationWritePolicy() string {
	v, _ := tc.GovernancePolicy["ep_manual_edit"].(string)
	return v
}

// Result is what a handler hands back for the LLM to read.
type Result struct {
	Content string
	IsError bool
}

// Handler executes one tool. Arguments arrive schema-validated. A Result
// with IsError set reports a condition the LLM can correct or relay; a Go
// error reports an infrastructure failure, which the dispatcher also folds
// into an error result.
type Handler interface {
	Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error)
}

// SubstrateAPI is the slice of the substrate client the tool handlers use.
// Callers pass a token-scoped *substrate.Client.
type SubstrateAPI interface {
	CreateWorkOutput(ctx context.Context, basketID string, in substrate.CreateWorkOutputInput) (*substrate.WorkOutput, error)
	GetContextItems(ctx context.Context, basketID string, f substrate.ContextItemFilter) ([]substrate.ContextItem, error)
	UpsertContextItem(ctx context.Context, basketID string, in substrate.UpsertContextItemInput) (*substrate.ContextItem, error)
	CreateProposal(ctx context.Context, basketID string, in substrate.CreateProposalInput) (*substrate.Proposal, error)
	InitiateWork(ctx context.Context, in substrate.WorkJobInput) (*substrate.WorkJob, error)
	GetWorkStatus(ctx context.Context, jobID string) (*substrate.WorkJob, error)
}

var _ SubstrateAPI = (*substrate.Client)(nil)

// jsonResult encodes v as the tool result content.
func jsonResult(v any) (*Result, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &Result{Content: string(data)}, nil
}

// errorResult reports an LLM-correctable condition.
func errorResult(format string, args ...any) *Result {
	return &Result{Content: fmt.Sprintf(format, args...), IsError: true}
}
