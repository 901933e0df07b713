package agent

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMessages(t *testing.T) {
	t.Run("consecutive tool results collapse into one user message", func(t *testing.T) {
		messages := []ConversationMessage{
			{Role: RoleUser, Content: "do the thing"},
			{Role: RoleAssistant, Content: "on it", ToolCalls: []ToolCall{
				{ID: "c1", Name: "read_context", Arguments: `{"item_type":"problem"}`},
				{ID: "c2", Name: "list_recipes", Arguments: `{}`},
			}},
			{Role: RoleTool, ToolCallID: "c1", ToolName: "read_context", Content: `{"found":true}`},
			{Role: RoleTool, ToolCallID: "c2", ToolName: "list_recipes", Content: `[]`, IsError: false},
		}

		result, err := convertMessages(messages)
		require.NoError(t, err)
		require.Len(t, result, 3)

		assert.Equal(t, anthropic.MessageParamRoleUser, result[0].Role)
		assert.Equal(t, anthropic.MessageParamRoleAssistant, result[1].Role)
		assert.Len(t, result[1].Content, 3) // text + two tool_use blocks

		assert.Equal(t, anthropic.MessageParamRoleUser, result[2].Role)
		require.Len(t, result[2].Content, 2)
		assert.NotNil(t, result[2].Content[0].OfToolResult)
		assert.NotNil(t, result[2].Content[1].OfToolResult)
	})

	t.Run("assistant tool call without text has no text block", func(t *testing.T) {
		messages := []ConversationMessage{
			{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "c1", Name: "t", Arguments: `{}`}}},
		}
		result, err := convertMessages(messages)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Len(t, result[0].Content, 1)
		assert.NotNil(t, result[0].Content[0].OfToolUse)
	})

	t.Run("empty tool arguments default to an empty object", func(t *testing.T) {
		messages := []ConversationMessage{
			{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "c1", Name: "t", Arguments: ""}}},
		}
		_, err := convertMessages(messages)
		require.NoError(t, err)
	})

	t.Run("malformed tool arguments return an error", func(t *testing.T) {
		messages := []ConversationMessage{
			{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "c1", Name: "bad", Arguments: `{not json`}}},
		}
		_, err := convertMessages(messages)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad")
	})
}

func TestConvertTools(t *testing.T) {
	t.Run("builds tool params with description", func(t *testing.T) {
		tools := []ToolDefinition{{
			Name:        "emit_work_output",
			Description: "Persist one artifact",
			InputSchema: `{"type":"object","properties":{"title":{"type":"string"}},"required":["title"]}`,
		}}

		result, err := convertTools(tools)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].OfTool)
		assert.Equal(t, "emit_work_output", result[0].OfTool.Name)
		assert.Equal(t, "Persist one artifact", result[0].OfTool.Description.Value)
	})

	t.Run("invalid schema JSON returns an error", func(t *testing.T) {
		_, err := convertTools([]ToolDefinition{{Name: "bad", InputSchema: `{`}})
		require.Error(t, err)
	})
}

func TestParseAnthropicMessage(t *testing.T) {
	t.Run("extracts text, tool calls, and usage", func(t *testing.T) {
		msg := &anthropic.Message{
			Content: []anthropic.ContentBlockUnion{
				{Type: "text", Text: "Checking the workspace."},
				{Type: "tool_use", ID: "c1", Name: "read_context", Input: json.RawMessage(`{"item_type":"problem"}`)},
			},
			StopReason: "tool_use",
			Usage:      anthropic.Usage{InputTokens: 120, OutputTokens: 30},
		}

		resp := parseAnthropicMessage(msg)
		assert.Equal(t, "Checking the workspace.", resp.Text)
		require.Len(t, resp.ToolCalls, 1)
		assert.Equal(t, "c1", resp.ToolCalls[0].ID)
		assert.Equal(t, "read_context", resp.ToolCalls[0].Name)
		assert.JSONEq(t, `{"item_type":"problem"}`, resp.ToolCalls[0].Arguments)
		assert.Equal(t, "tool_use", resp.StopReason)
		assert.Equal(t, 150, resp.Usage.TotalTokens)
	})

	t.Run("joins multiple text blocks", func(t *testing.T) {
		msg := &anthropic.Message{
			Content: []anthropic.ContentBlockUnion{
				{Type: "text", Text: "First."},
				{Type: "text", Text: "Second."},
			},
		}
		resp := parseAnthropicMessage(msg)
		assert.Equal(t, "First.\n\nSecond.", resp.Text)
	})
}

func TestWrapAnthropicError(t *testing.T) {
	t.Run("maps API errors to provider errors", func(t *testing.T) {
		err := wrapAnthropicError(&anthropic.Error{StatusCode: 429})
		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 429, pe.StatusCode)
		assert.True(t, pe.Transient())
	})

	t.Run("permanent statuses are not transient", func(t *testing.T) {
		err := wrapAnthropicError(&anthropic.Error{StatusCode: 400})
		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.False(t, pe.Transient())
	})

	t.Run("non-API errors pass through", func(t *testing.T) {
		cause := assert.AnError
		assert.Equal(t, cause, wrapAnthropicError(cause))
	})
}
