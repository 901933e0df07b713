package agent

import (
	"context"
	"fmt"
	"time"
)

type stubResponse struct {
	resp *LLMResponse
	err  error
}

// stubLLMClient is a scripted test double for LLMClient.
// NOTE: Not safe for concurrent use; the runner calls Generate sequentially.
type stubLLMClient struct {
	responses      []stubResponse
	callCount      int
	capturedInputs []*GenerateInput

	// onGenerate runs before the scripted response is returned, allowing
	// side effects (e.g. cancelling a context) at call time.
	onGenerate func(callIndex int)
}

func (s *stubLLMClient) Generate(_ context.Context, input *GenerateInput) (*LLMResponse, error) {
	idx := s.callCount
	s.callCount++
	s.capturedInputs = append(s.capturedInputs, input)
	if s.onGenerate != nil {
		s.onGenerate(idx)
	}

	if idx >= len(s.responses) {
		return nil, fmt.Errorf("no more scripted responses (call %d)", idx+1)
	}
	r := s.responses[idx]
	if r.err != nil {
		return nil, r.err
	}
	return r.resp, nil
}

// stubToolExecutor is a test double for ToolExecutor with optional review
// signals.
type stubToolExecutor struct {
	tools    []ToolDefinition
	results  map[string]*ToolResult
	executed []ToolCall

	// onExecute runs before each dispatch.
	onExecute func(call ToolCall)

	// Review signal state.
	minConfidence   float64
	emittedAny      bool
	reviewRequested bool
}

func (s *stubToolExecutor) Execute(_ context.Context, call ToolCall) (*ToolResult, error) {
	s.executed = append(s.executed, call)
	if s.onExecute != nil {
		s.onExecute(call)
	}
	if result, ok := s.results[call.Name]; ok {
		return &ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: result.Content,
			IsError: result.IsError,
		}, nil
	}
	return &ToolResult{CallID: call.ID, Name: call.Name, Content: "ok"}, nil
}

func (s *stubToolExecutor) ListTools(_ context.Context) ([]ToolDefinition, error) {
	return s.tools, nil
}

func (s *stubToolExecutor) MinConfidence() (float64, bool) {
	return s.minConfidence, s.emittedAny
}

func (s *stubToolExecutor) ReviewRequested() bool {
	return s.reviewRequested
}

func textResponse(text string) stubResponse {
	return stubResponse{resp: &LLMResponse{
		Text:  text,
		Usage: TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}}
}

func toolCallResponse(text string, calls ...ToolCall) stubResponse {
	return stubResponse{resp: &LLMResponse{
		Text:      text,
		ToolCalls: calls,
		Usage:     TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}}
}

func newTestRunContext() *RunContext {
	return &RunContext{
		TicketID:    "ticket-1",
		BasketID:    "basket-1",
		WorkspaceID: "ws-1",
		UserID:      "user-1",
		AgentKind:   KindResearch,
		WorkMode:    "deep_dive",
		TaskPrompt:  "Research the competitive landscape for workflow tools.",
		Config: RunConfig{
			MaxIterations: 10,
			RetryBackoff:  time.Millisecond,
		},
	}
}
