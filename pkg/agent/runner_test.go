package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	t.Run("completes when the LLM answers without tools", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			textResponse("Here is the competitive landscape summary."),
		}}
		tools := &stubToolExecutor{}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)
		assert.Equal(t, "Here is the competitive landscape summary.", result.ResponseText)
		assert.Equal(t, 1, result.Iterations)
		assert.Equal(t, 0, result.ToolCallCount)
		assert.Equal(t, 150, result.TokensUsed.TotalTokens)

		// Final conversation carries the user turn and the answer.
		require.Len(t, result.Messages, 2)
		assert.Equal(t, RoleUser, result.Messages[0].Role)
		assert.Equal(t, RoleAssistant, result.Messages[1].Role)
	})

	t.Run("dispatches tool calls in issued order", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			toolCallResponse("Let me check the context first.",
				ToolCall{ID: "call-1", Name: "read_context", Arguments: `{"item_type":"problem"}`},
				ToolCall{ID: "call-2", Name: "emit_work_output", Arguments: `{"output_type":"finding","title":"t","body":"b","confidence":0.9}`},
			),
			textResponse("Done. One finding emitted."),
		}}
		tools := &stubToolExecutor{results: map[string]*ToolResult{
			"read_context":     {Content: `{"found":true}`},
			"emit_work_output": {Content: `{"id":"out-1"}`},
		}}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)
		assert.Equal(t, 2, result.Iterations)
		assert.Equal(t, 2, result.ToolCallCount)

		require.Len(t, tools.executed, 2)
		assert.Equal(t, "read_context", tools.executed[0].Name)
		assert.Equal(t, "emit_work_output", tools.executed[1].Name)

		// Second LLM turn sees assistant tool calls plus both results.
		second := llm.capturedInputs[1]
		roles := make([]string, 0, len(second.Messages))
		for _, m := range second.Messages {
			roles = append(roles, m.Role)
		}
		assert.Equal(t, []string{RoleUser, RoleAssistant, RoleTool, RoleTool}, roles)
		assert.Equal(t, "call-1", second.Messages[2].ToolCallID)
		assert.Equal(t, "call-2", second.Messages[3].ToolCallID)

		// Accumulated text spans both turns.
		assert.Contains(t, result.ResponseText, "Let me check the context first.")
		assert.Contains(t, result.ResponseText, "Done. One finding emitted.")
	})

	t.Run("tool dispatch failure becomes an error result, not a run failure", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			toolCallResponse("", ToolCall{ID: "call-1", Name: "broken_tool", Arguments: `{}`}),
			textResponse("Recovered without the tool."),
		}}
		tools := &stubToolExecutor{results: map[string]*ToolResult{
			"broken_tool": {Content: "tool exploded", IsError: true},
		}}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)

		second := llm.capturedInputs[1]
		last := second.Messages[len(second.Messages)-1]
		assert.Equal(t, RoleTool, last.Role)
		assert.True(t, last.IsError)
		assert.Equal(t, "tool exploded", last.Content)
	})

	t.Run("terminates with the fixed message at the iteration cap", func(t *testing.T) {
		responses := make([]stubResponse, 10)
		for i := range responses {
			responses[i] = toolCallResponse("",
				ToolCall{ID: "call", Name: "read_context", Arguments: `{"item_type":"problem"}`})
		}
		llm := &stubLLMClient{responses: responses}
		tools := &stubToolExecutor{}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)
		assert.Equal(t, IterationCapMessage, result.ResponseText)
		assert.Equal(t, 10, result.Iterations)
		assert.Equal(t, 10, llm.callCount)
		assert.Equal(t, 10, result.ToolCallCount)
	})

	t.Run("checkpoint on low-confidence outputs", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("Findings emitted.")}}
		tools := &stubToolExecutor{minConfidence: 0.4, emittedAny: true}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCheckpoint, result.Status)
		assert.Contains(t, result.CheckpointReason, "confidence")
	})

	t.Run("checkpoint on requires_review flag", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("Done.")}}
		tools := &stubToolExecutor{minConfidence: 0.9, emittedAny: true, reviewRequested: true}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCheckpoint, result.Status)
		assert.Contains(t, result.CheckpointReason, "requires_review")
	})

	t.Run("checkpoint on review signal in the final text", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			textResponse("Draft complete but this needs review before publishing."),
		}}
		tools := &stubToolExecutor{}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCheckpoint, result.Status)
	})

	t.Run("high confidence outputs complete without checkpoint", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("Done.")}}
		tools := &stubToolExecutor{minConfidence: 0.9, emittedAny: true}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)
	})

	t.Run("cancellation observed between iterations", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		llm := &stubLLMClient{responses: []stubResponse{
			toolCallResponse("", ToolCall{ID: "call-1", Name: "read_context", Arguments: `{}`}),
			textResponse("never reached"),
		}}
		tools := &stubToolExecutor{onExecute: func(ToolCall) { cancel() }}
		runner := NewRunner(llm, tools, nil)

		result, err := runner.Run(ctx, newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCancelled, result.Status)
		assert.Equal(t, 1, llm.callCount)
		require.Error(t, result.Error)
	})

	t.Run("retries transient provider failures within a turn", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			{err: &ProviderError{StatusCode: 429, Message: "rate limited"}},
			{err: &ProviderError{StatusCode: 503, Message: "overloaded"}},
			textResponse("Third attempt worked."),
		}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusCompleted, result.Status)
		assert.Equal(t, "Third attempt worked.", result.ResponseText)
		assert.Equal(t, 3, llm.callCount)
		assert.Equal(t, 1, result.Iterations)
	})

	t.Run("does not retry permanent provider failures", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			{err: &ProviderError{StatusCode: 401, Message: "bad api key"}},
		}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusFailed, result.Status)
		assert.Equal(t, 1, llm.callCount)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "bad api key")
	})

	t.Run("fails after exhausting transient retries", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			{err: &ProviderError{StatusCode: 500, Message: "boom"}},
			{err: &ProviderError{StatusCode: 500, Message: "boom"}},
			{err: &ProviderError{StatusCode: 500, Message: "boom"}},
		}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		result, err := runner.Run(context.Background(), newTestRunContext())
		require.NoError(t, err)
		assert.Equal(t, RunStatusFailed, result.Status)
		assert.Equal(t, 3, llm.callCount)
	})

	t.Run("restored history precedes the new user turn", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("Continuing.")}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		rc := newTestRunContext()
		rc.History = []ConversationMessage{
			{Role: RoleUser, Content: "earlier question"},
			{Role: RoleAssistant, Content: "earlier answer"},
		}
		rc.ProviderSessionID = "handle-7"

		result, err := runner.Run(context.Background(), rc)
		require.NoError(t, err)

		first := llm.capturedInputs[0]
		require.Len(t, first.Messages, 3)
		assert.Equal(t, "earlier question", first.Messages[0].Content)
		assert.Equal(t, "earlier answer", first.Messages[1].Content)
		assert.Equal(t, RoleUser, first.Messages[2].Role)
		assert.Equal(t, "handle-7", first.SessionHandle)
		assert.Equal(t, "handle-7", result.ProviderSessionID)
	})

	t.Run("thinking partner chat turns skip the task framing", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("Good question.")}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		rc := newTestRunContext()
		rc.AgentKind = KindThinkingPartner
		rc.WorkMode = "chat"
		rc.TaskPrompt = "Should we target enterprise or SMB first?"

		_, err := runner.Run(context.Background(), rc)
		require.NoError(t, err)

		userMsg := llm.capturedInputs[0].Messages[0].Content
		assert.Equal(t, "Should we target enterprise or SMB first?", userMsg)
		assert.NotContains(t, userMsg, "# Task")
	})

	t.Run("task parameters render into the user message", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("ok")}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		rc := newTestRunContext()
		rc.Parameters = map[string]any{"platform": "linkedin", "depth": "deep"}

		_, err := runner.Run(context.Background(), rc)
		require.NoError(t, err)

		userMsg := llm.capturedInputs[0].Messages[0].Content
		assert.Contains(t, userMsg, "# Task")
		assert.Contains(t, userMsg, "depth: deep")
		assert.Contains(t, userMsg, "platform: linkedin")
	})
}

func TestRunner_RunStream(t *testing.T) {
	t.Run("yields tool and text events with exactly one final", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			toolCallResponse("Checking context.",
				ToolCall{ID: "call-1", Name: "read_context", Arguments: `{}`}),
			textResponse("All done."),
		}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		var events []Event
		for ev := range runner.RunStream(context.Background(), newTestRunContext()) {
			events = append(events, ev)
		}

		var finals, progress, toolStarts, toolResults, textDeltas int
		for _, ev := range events {
			switch ev.Type {
			case EventFinal:
				finals++
			case EventProgress:
				progress++
			case EventToolStart:
				toolStarts++
			case EventToolResult:
				toolResults++
			case EventTextDelta:
				textDeltas++
			}
		}
		assert.Equal(t, 1, finals)
		assert.Equal(t, 1, progress, "first tool use emits exactly one progress event")
		assert.Equal(t, 1, toolStarts)
		assert.Equal(t, 1, toolResults)
		assert.Equal(t, 2, textDeltas)

		last := events[len(events)-1]
		assert.Equal(t, EventFinal, last.Type)
		require.NotNil(t, last.Result)
		assert.Equal(t, RunStatusCompleted, last.Result.Status)
	})

	t.Run("tool start precedes its result", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{
			toolCallResponse("", ToolCall{ID: "call-1", Name: "read_context", Arguments: `{}`}),
			textResponse("done"),
		}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		var order []EventType
		for ev := range runner.RunStream(context.Background(), newTestRunContext()) {
			if ev.Type == EventToolStart || ev.Type == EventToolResult {
				order = append(order, ev.Type)
			}
		}
		assert.Equal(t, []EventType{EventToolStart, EventToolResult}, order)
	})
}

func TestRunner_SystemPrompt(t *testing.T) {
	t.Run("system prompt carries identity and workspace context", func(t *testing.T) {
		llm := &stubLLMClient{responses: []stubResponse{textResponse("ok")}}
		runner := NewRunner(llm, &stubToolExecutor{}, nil)

		rc := newTestRunContext()
		rc.Context.AssetTitles = []string{"Q3 brand guidelines"}

		_, err := runner.Run(context.Background(), rc)
		require.NoError(t, err)

		system := llm.capturedInputs[0].System
		assert.True(t, strings.Contains(system, "Research Agent Instructions"))
		assert.True(t, strings.Contains(system, "Q3 brand guidelines"))
	})
}
