// Package agent provides the runtime that drives one work ticket through a
// bounded multi-turn tool loop against the LLM provider. Agents emit work
// outputs through tools; the runtime itself never writes to the substrate.
package agent

// Kind identifies an agent specialization.
type Kind string

const (
	KindResearch        Kind = "research"
	KindContent         Kind = "content"
	KindReporting       Kind = "reporting"
	KindThinkingPartner Kind = "thinking_partner"
)

// ValidKind reports whether s names a known agent kind.
func ValidKind(s string) bool {
	switch Kind(s) {
	case KindResearch, KindContent, KindReporting, KindThinkingPartner:
		return true
	}
	return false
}

// RunStatus is the terminal status of a runtime run.
type RunStatus string

const (
	// RunStatusCompleted means the loop finished normally, including the
	// iteration-cap path.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusCheckpoint means the run finished but flagged its own work
	// for human review.
	RunStatusCheckpoint RunStatus = "checkpoint"
	RunStatusFailed     RunStatus = "failed"
	RunStatusCancelled  RunStatus = "cancelled"
)

// RunResult is returned by Runner.Run.
// Outputs were already persisted through the tool layer during the run;
// this carries only the conversation outcome.
type RunResult struct {
	Status           RunStatus
	ResponseText     string
	CheckpointReason string
	ToolCallCount    int
	Iterations       int
	TokensUsed       TokenUsage

	// Messages is the full conversation after the run, for the session
	// registry to persist. Nil when the run failed before the first turn.
	Messages []ConversationMessage

	// ProviderSessionID is the provider-side handle, carried opaquely.
	ProviderSessionID string

	// Error holds the agent-level failure for failed/cancelled runs.
	Error error
}

// TokenUsage aggregates token consumption across the run's LLM calls.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (u *TokenUsage) add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}
