package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/cobbleworks/foundry/pkg/agent"
)

// LLMScriptEntry defines a single scripted LLM turn.
type LLMScriptEntry struct {
	// Response content (exactly one of Text/ToolCalls/Error drives the turn;
	// Text may accompany ToolCalls).
	Text      string
	ToolCalls []agent.ToolCall
	Error     error

	// Test control
	WaitCh  <-chan struct{} // block Generate() until closed
	OnBlock chan<- struct{} // notified when Generate() enters its blocking path
}

// ScriptedLLMClient implements agent.LLMClient with a sequential script.
// Entries are consumed in call order; running past the script is a test
// bug and fails the run loudly.
type ScriptedLLMClient struct {
	mu             sync.Mutex
	script         []LLMScriptEntry
	index          int
	capturedInputs []*agent.GenerateInput
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends one scripted turn.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, entry)
}

// AddText appends a plain text turn, ending the reasoning loop.
func (c *ScriptedLLMClient) AddText(text string) {
	c.Add(LLMScriptEntry{Text: text})
}

// AddToolCall appends a turn that invokes one tool.
func (c *ScriptedLLMClient) AddToolCall(callID, name, arguments string) {
	c.Add(LLMScriptEntry{ToolCalls: []agent.ToolCall{{ID: callID, Name: name, Arguments: arguments}}})
}

// Generate implements agent.LLMClient.
func (c *ScriptedLLMClient) Generate(ctx context.Context, input *agent.GenerateInput) (*agent.LLMResponse, error) {
	c.mu.Lock()
	c.capturedInputs = append(c.capturedInputs, input)
	idx := c.index
	c.index++
	if idx >= len(c.script) {
		c.mu.Unlock()
		return nil, fmt.Errorf("scripted LLM exhausted: call %d has no entry", idx+1)
	}
	entry := c.script[idx]
	c.mu.Unlock()

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}

	stopReason := "end_turn"
	if len(entry.ToolCalls) > 0 {
		stopReason = "tool_use"
	}
	return &agent.LLMResponse{
		Text:       entry.Text,
		ToolCalls:  entry.ToolCalls,
		StopReason: stopReason,
		Usage:      agent.TokenUsage{InputTokens: 100, OutputTokens: 25, TotalTokens: 125},
	}, nil
}

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.capturedInputs)
}

// CapturedInputs returns a copy of every GenerateInput seen so far.
func (c *ScriptedLLMClient) CapturedInputs() []*agent.GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*agent.GenerateInput(nil), c.capturedInputs...)
}
