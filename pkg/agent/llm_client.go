package agent

import (
	"context"
	"errors"
	"fmt"
)

// LLMClient is the provider abstraction used by the runtime. One blocking
// call per turn; tool calls come back as structured values, never parsed
// from text.
type LLMClient interface {
	Generate(ctx context.Context, input *GenerateInput) (*LLMResponse, error)
}

// GenerateInput is one LLM turn.
type GenerateInput struct {
	TicketID      string
	SessionHandle string // provider-side handle, opaque; may be empty
	System        string
	Messages      []ConversationMessage
	Tools         []ToolDefinition // nil = no tools
	Model         string
	MaxTokens     int64
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ConversationMessage is one turn in the conversation. Tool results travel
// as RoleTool messages keyed by ToolCallID.
type ConversationMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
	IsError    bool       `json:"is_error,omitempty"`
}

// ToolDefinition describes a tool offered to the LLM.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema string // JSON Schema
}

// ToolCall is the LLM's request to invoke a tool.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON
}

// ToolResult is the outcome of one dispatched tool call.
type ToolResult struct {
	CallID  string
	Name    string
	Content string
	IsError bool
}

// LLMResponse is the parsed provider response for one turn.
type LLMResponse struct {
	Text          string
	ToolCalls     []ToolCall
	StopReason    string
	SessionHandle string // updated handle when the provider rotates it
	Usage         TokenUsage
}

// ProviderError is a failed LLM provider call.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the call may be retried: rate limiting,
// timeouts, or provider-side failures.
func (e *ProviderError) Transient() bool {
	return e.StatusCode == 408 || e.StatusCode == 429 || e.StatusCode >= 500
}

// isTransientLLMError classifies provider failures for the in-turn retry.
// Cancellation is never retried. Per-attempt deadline expiry is; the caller
// checks the outer context before retrying.
func isTransientLLMError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Transient()
	}
	return true
}
