package agent

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cobbleworks/foundry/pkg/agent/prompt"
)

const (
	defaultMaxIterations = 10
	defaultMaxTokens     = 8192

	// llmRetryAttempts bounds the in-turn retry of transient provider
	// failures (rate limits, 5xx, per-attempt timeouts).
	llmRetryAttempts = 3

	// reviewConfidenceThreshold routes low-confidence outputs to human
	// review.
	reviewConfidenceThreshold = 0.7
)

// IterationCapMessage is returned verbatim as the response text when the
// tool loop hits its iteration bound. The run still completes; outputs
// emitted before the cap are already persisted.
const IterationCapMessage = "I reached my turn limit before fully completing this task. " +
	"I've saved the work produced so far — please review the outputs and " +
	"re-run with a narrower scope if anything is missing."

// Runner drives the bounded tool loop for one ticket. Create one per run;
// the tool executor is ticket-scoped.
type Runner struct {
	llm     LLMClient
	tools   ToolExecutor
	prompts *prompt.Builder
}

// NewRunner creates a runtime over the given provider client and tool
// executor. Panics on nil dependencies (programming error in the caller).
func NewRunner(llm LLMClient, tools ToolExecutor, prompts *prompt.Builder) *Runner {
	if llm == nil || tools == nil {
		panic("agent.NewRunner: llm and tools must not be nil")
	}
	if prompts == nil {
		prompts = prompt.NewBuilder()
	}
	return &Runner{llm: llm, tools: tools, prompts: prompts}
}

// RunStream executes the loop and yields progress events on the returned
// channel. Exactly one EventFinal is delivered, last, carrying the result;
// the channel closes after it. Cancel ctx to stop consuming early.
func (r *Runner) RunStream(ctx context.Context, rc *RunContext) <-chan Event {
	events := make(chan Event, 16)
	go func() {
		defer close(events)
		emit := func(ev Event) {
			// Prefer delivery while buffer room remains so the final event
			// survives a cancelled run; block only when the buffer is full.
			select {
			case events <- ev:
				return
			default:
			}
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
		result := r.run(ctx, rc, emit)
		emit(Event{Type: EventFinal, Result: result})
	}()
	return events
}

// Run executes the loop to completion and returns the result. Agent-level
// failures (provider errors, cancellation) come back inside the result;
// the error return is reserved for a runtime that produced no result at all.
func (r *Runner) Run(ctx context.Context, rc *RunContext) (*RunResult, error) {
	var final *RunResult
	for ev := range r.RunStream(ctx, rc) {
		if ev.Type == EventFinal {
			final = ev.Result
		}
	}
	if final == nil {
		// Consumer context cancelled before the final event got through.
		if err := ctx.Err(); err != nil {
			return &RunResult{Status: RunStatusCancelled, Error: err}, nil
		}
		return nil, fmt.Errorf("runtime produced no final event")
	}
	return final, nil
}

func (r *Runner) run(ctx context.Context, rc *RunContext, emit func(Event)) *RunResult {
	maxIter := rc.Config.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	system := r.prompts.BuildSystemPrompt(string(rc.AgentKind), rc.Context)
	messages := append(slices.Clone(rc.History), ConversationMessage{
		Role:    RoleUser,
		Content: r.buildUserMessage(rc),
	})

	tools, err := r.tools.ListTools(ctx)
	if err != nil {
		return &RunResult{
			Status: RunStatusFailed,
			Error:  fmt.Errorf("list tools: %w", err),
		}
	}

	var (
		responseText  strings.Builder
		totalUsage    TokenUsage
		toolCallCount int
		sessionHandle = rc.ProviderSessionID
	)

	appendText := func(text string) {
		if text == "" {
			return
		}
		if responseText.Len() > 0 {
			responseText.WriteString("\n\n")
		}
		responseText.WriteString(text)
	}

	finish := func(status RunStatus, text string, iterations int) *RunResult {
		result := &RunResult{
			Status:            status,
			ResponseText:      text,
			ToolCallCount:     toolCallCount,
			Iterations:        iterations,
			TokensUsed:        totalUsage,
			Messages:          messages,
			ProviderSessionID: sessionHandle,
		}
		if status == RunStatusCompleted {
			if reason, checkpoint := r.detectCheckpoint(text); checkpoint {
				result.Status = RunStatusCheckpoint
				result.CheckpointReason = reason
			}
		}
		return result
	}

	for iteration := 1; iteration <= maxIter; iteration++ {
		// Cancellation is cooperative, observed between iterations.
		if err := ctx.Err(); err != nil {
			res := finish(RunStatusCancelled, responseText.String(), iteration-1)
			res.Error = err
			return res
		}

		resp, err := r.generate(ctx, rc, &GenerateInput{
			TicketID:      rc.TicketID,
			SessionHandle: sessionHandle,
			System:        system,
			Messages:      messages,
			Tools:         tools,
			Model:         rc.Config.Model,
			MaxTokens:     rc.Config.MaxTokens,
		})
		if err != nil {
			status := RunStatusFailed
			if ctx.Err() != nil {
				status = RunStatusCancelled
			}
			res := finish(status, responseText.String(), iteration)
			res.Error = fmt.Errorf("llm turn %d: %w", iteration, err)
			return res
		}

		totalUsage.add(resp.Usage)
		if resp.SessionHandle != "" {
			sessionHandle = resp.SessionHandle
		}
		if resp.Text != "" {
			appendText(resp.Text)
			emit(Event{Type: EventTextDelta, Message: resp.Text, Iteration: iteration})
		}

		if len(resp.ToolCalls) == 0 {
			// No tool use left: the final answer.
			if resp.Text != "" {
				messages = append(messages, ConversationMessage{Role: RoleAssistant, Content: resp.Text})
			}
			return finish(RunStatusCompleted, responseText.String(), iteration)
		}

		messages = append(messages, ConversationMessage{
			Role:      RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		})

		if toolCallCount == 0 {
			emit(Event{
				Type:      EventProgress,
				Message:   fmt.Sprintf("%s agent is working with tools", rc.AgentKind),
				Iteration: iteration,
			})
		}

		for _, tc := range resp.ToolCalls {
			emit(Event{Type: EventToolStart, ToolName: tc.Name, CallID: tc.ID, Iteration: iteration})

			result, execErr := r.tools.Execute(ctx, tc)
			if execErr != nil {
				result = &ToolResult{
					CallID:  tc.ID,
					Name:    tc.Name,
					Content: fmt.Sprintf("tool dispatch failed: %v", execErr),
					IsError: true,
				}
			}
			toolCallCount++

			emit(Event{
				Type:      EventToolResult,
				ToolName:  tc.Name,
				CallID:    tc.ID,
				Content:   result.Content,
				IsError:   result.IsError,
				Iteration: iteration,
			})

			messages = append(messages, ConversationMessage{
				Role:       RoleTool,
				Content:    result.Content,
				ToolCallID: tc.ID,
				ToolName:   tc.Name,
				IsError:    result.IsError,
			})
		}
	}

	// Iteration cap: terminate with the fixed message and whatever outputs
	// were emitted. Never an error.
	messages = append(messages, ConversationMessage{
		Role:    RoleAssistant,
		Content: IterationCapMessage,
	})
	return finish(RunStatusCompleted, IterationCapMessage, maxIter)
}

// generate calls the provider with the in-turn transient retry. Each
// attempt gets its own deadline when an iteration timeout is configured;
// the outer context always wins.
func (r *Runner) generate(ctx context.Context, rc *RunContext, input *GenerateInput) (*LLMResponse, error) {
	if input.MaxTokens <= 0 {
		input.MaxTokens = defaultMaxTokens
	}

	backoff := rc.Config.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= llmRetryAttempts; attempt++ {
		callCtx := ctx
		cancel := func() {}
		if rc.Config.IterationTimeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, rc.Config.IterationTimeout)
		}
		resp, err := r.llm.Generate(callCtx, input)
		cancel()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !isTransientLLMError(err) || attempt == llmRetryAttempts {
			return nil, err
		}

		select {
		case <-time.After(backoff << (attempt - 1)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (r *Runner) buildUserMessage(rc *RunContext) string {
	if rc.AgentKind == KindThinkingPartner && rc.WorkMode == "chat" {
		return r.prompts.BuildChatMessage(rc.TaskPrompt)
	}
	return r.prompts.BuildTaskMessage(rc.TaskPrompt, rc.Parameters)
}

// detectCheckpoint inspects emitted outputs and the final text for review
// signals.
func (r *Runner) detectCheckpoint(responseText string) (string, bool) {
	if sig, ok := r.tools.(ReviewSignals); ok {
		if minConf, emitted := sig.MinConfidence(); emitted && minConf < reviewConfidenceThreshold {
			return fmt.Sprintf("output confidence %.2f below %.2f", minConf, reviewConfidenceThreshold), true
		}
		if sig.ReviewRequested() {
			return "output flagged requires_review", true
		}
	}
	if strings.Contains(strings.ToLower(responseText), "needs review") {
		return "agent requested review", true
	}
	return "", false
}
