package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/agent"
)

func TestConversationSnapshot_RoundTrip(t *testing.T) {
	snap := &ConversationSnapshot{
		ProviderSessionID: "prov-abc",
		Messages: []agent.ConversationMessage{
			{Role: agent.RoleUser, Content: "research the market"},
			{Role: agent.RoleAssistant, Content: "", ToolCalls: []agent.ToolCall{
				{ID: "tc-1", Name: "read_context", Arguments: `{"item_type":"problem"}`},
			}},
			{Role: agent.RoleTool, ToolCallID: "tc-1", ToolName: "read_context", Content: `{"found":false}`},
			{Role: agent.RoleAssistant, Content: "done"},
		},
		TurnCount: 2,
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	state, err := snap.ToState()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	decoded, err := SnapshotFromState(state)
	require.NoError(t, err)

	assert.Equal(t, "prov-abc", decoded.ProviderSessionID)
	assert.Equal(t, 2, decoded.TurnCount)
	require.Len(t, decoded.Messages, 4)
	assert.Equal(t, agent.RoleTool, decoded.Messages[2].Role)
	assert.Equal(t, "tc-1", decoded.Messages[2].ToolCallID)
	require.Len(t, decoded.Messages[1].ToolCalls, 1)
	assert.Equal(t, "read_context", decoded.Messages[1].ToolCalls[0].Name)
}

func TestSnapshotFromState_Empty(t *testing.T) {
	for _, state := range []map[string]any{nil, {}} {
		snap, err := SnapshotFromState(state)
		require.NoError(t, err)
		assert.Empty(t, snap.ProviderSessionID)
		assert.Empty(t, snap.Messages)
	}
}

func TestTicketOutcome_Metadata(t *testing.T) {
	t.Run("success keeps only output count", func(t *testing.T) {
		meta := TicketOutcome{OutputCount: 3}.Metadata()
		assert.Equal(t, map[string]any{"output_count": 3}, meta)
	})

	t.Run("failure carries kind and message", func(t *testing.T) {
		meta := TicketOutcome{
			OutputCount:  1,
			ErrorKind:    "substrate_unavailable",
			ErrorMessage: "circuit open",
		}.Metadata()
		assert.Equal(t, "substrate_unavailable", meta["error_kind"])
		assert.Equal(t, "circuit open", meta["error_message"])
	})

	t.Run("checkpoint carries reason", func(t *testing.T) {
		meta := TicketOutcome{
			OutputCount:      2,
			CheckpointReason: "low_confidence_output",
		}.Metadata()
		assert.Equal(t, "low_confidence_output", meta["checkpoint_reason"])
		_, hasErr := meta["error_kind"]
		assert.False(t, hasErr)
	})
}
