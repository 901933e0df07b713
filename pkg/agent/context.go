package agent

import (
	"context"
	"time"

	"github.com/cobbleworks/foundry/pkg/agent/prompt"
)

// ToolExecutor dispatches tool calls issued by the LLM. Handler failures
// come back as results with IsError set; an error return means the
// dispatcher itself broke.
type ToolExecutor interface {
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)
	ListTools(ctx context.Context) ([]ToolDefinition, error)
}

// ReviewSignals is optionally implemented by tool executors that track
// emitted outputs. The runtime consults it for checkpoint detection.
type ReviewSignals interface {
	// MinConfidence returns the lowest confidence among emitted outputs,
	// and false when nothing was emitted.
	MinConfidence() (float64, bool)
	// ReviewRequested reports whether any emitted output was flagged
	// requires_review.
	ReviewRequested() bool
}

// RunConfig tunes one runtime run.
type RunConfig struct {
	Model            string
	MaxIterations    int
	MaxTokens        int64
	IterationTimeout time.Duration
	// RetryBackoff is the base delay between transient-failure retries
	// within a turn. Defaults to one second.
	RetryBackoff time.Duration
}

// RunContext carries everything one run needs. Built by the ticket
// executor; the runtime only reads it.
type RunContext struct {
	TicketID    string
	BasketID    string
	WorkspaceID string
	UserID      string
	AgentKind   Kind
	WorkMode    string

	// TaskPrompt is the task description from the work request payload.
	TaskPrompt string
	// Parameters are agent-kind-specific knobs (platform, depth, format).
	Parameters map[string]any

	// History is the session's restored conversation; empty on first run.
	History []ConversationMessage
	// ProviderSessionID is the stored provider handle; empty until the
	// provider issues one.
	ProviderSessionID string

	// Context is the dynamic prompt context assembled by the executor.
	Context prompt.ContextBlock

	Config RunConfig
}

// EventType identifies a runtime progress event.
type EventType string

const (
	EventProgress   EventType = "progress"
	EventTextDelta  EventType = "text_delta"
	EventToolStart  EventType = "tool_start"
	EventToolResult EventType = "tool_result"
	EventFinal      EventType = "final"
)

// Event is one entry in the RunStream sequence. Exactly one EventFinal is
// delivered, last.
type Event struct {
	Type      EventType
	Message   string // progress text or text delta
	ToolName  string
	CallID    string
	Content   string // tool result content
	IsError   bool
	Iteration int
	Result    *RunResult // final only
}
