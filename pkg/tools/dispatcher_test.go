package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/agent"
)

func TestDispatcher_Execute(t *testing.T) {
	t.Run("unknown tool returns error result, not error", func(t *testing.T) {
		d := NewDispatcher(&stubSubstrate{}, nil, nil, nil, newTestContext())

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID: "c1", Name: "launch_rocket", Arguments: "{}",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "unknown tool")
		assert.Contains(t, res.Content, ToolEmitWorkOutput)
	})

	t.Run("schema violation is rejected before the handler runs", func(t *testing.T) {
		api := &stubSubstrate{}
		d := NewDispatcher(api, nil, nil, nil, newTestContext())

		// confidence above 1 violates the schema
		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID:   "c1",
			Name: ToolEmitWorkOutput,
			Arguments: `{"output_type":"finding","title":"t","body":"b","confidence":1.5}`,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "invalid arguments")
		assert.Empty(t, api.createdOutputs)
	})

	t.Run("malformed JSON arguments are rejected", func(t *testing.T) {
		d := NewDispatcher(&stubSubstrate{}, nil, nil, nil, newTestContext())

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID: "c1", Name: ToolReadContext, Arguments: `{not json`,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "not valid JSON")
	})

	t.Run("handler failure becomes an error result", func(t *testing.T) {
		api := &stubSubstrate{outputErr: assert.AnError}
		d := NewDispatcher(api, nil, nil, nil, newTestContext())

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID:   "c1",
			Name: ToolEmitWorkOutput,
			Arguments: `{"output_type":"finding","title":"t","body":"b","confidence":0.9}`,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "emit_work_output failed")
	})

	t.Run("empty arguments validate as an empty object", func(t *testing.T) {
		d := NewDispatcher(&stubSubstrate{}, nil, nil, nil, newTestContext())

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID: "c1", Name: ToolListContext, Arguments: "",
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)
	})

	t.Run("result carries the call id and tool name", func(t *testing.T) {
		d := NewDispatcher(&stubSubstrate{}, nil, nil, nil, newTestContext())

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID: "c42", Name: ToolWebSearch, Arguments: `{"query":"go testing"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "c42", res.CallID)
		assert.Equal(t, ToolWebSearch, res.Name)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Content, "provider")
	})
}

func TestDispatcher_EmitWorkOutput(t *testing.T) {
	t.Run("persists the output and records the emission", func(t *testing.T) {
		api := &stubSubstrate{outputID: "wo-77"}
		tc := newTestContext()
		d := NewDispatcher(api, nil, nil, nil, tc)

		res, err := d.Execute(context.Background(), agent.ToolCall{
			ID:   "c1",
			Name: ToolEmitWorkOutput,
			Arguments: `{
				"output_type": "finding",
				"title": "Churn concentrates in month two",
				"body": "Most cancellations happen between day 30 and day 60.",
				"confidence": 0.84,
				"source_context_ids": ["blk-1"]
			}`,
		})
		require.NoError(t, err)
		require.False(t, res.IsError, res.Content)

		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Content), &payload))
		assert.Equal(t, "wo-77", payload["work_output_id"])
		assert.Equal(t, "pending_review", payload["supervision_status"])

		require.Len(t, api.createdOutputs, 1)
		created := api.createdOutputs[0]
		assert.Equal(t, "wt-1", created.WorkTicketID)
		assert.Equal(t, "research", created.AgentKind)
		assert.Equal(t, []string{"blk-1"}, created.SourceContextIDs)

		outputs := d.Outputs()
		require.Len(t, outputs, 1)
		assert.Equal(t, "wo-77", outputs[0].ID)
		assert.InDelta(t, 0.84, outputs[0].Confidence, 1e-9)
	})

	t.Run("review signals reflect emissions", func(t *testing.T) {
		api := &stubSubstrate{}
		d := NewDispatcher(api, nil, nil, nil, newTestContext())

		_, hasAny := d.MinConfidence()
		assert.False(t, hasAny)
		assert.False(t, d.ReviewRequested())

		_, err := d.Execute(context.Background(), agent.ToolCall{
			ID:   "c1",
			Name: ToolEmitWorkOutput,
			Arguments: `{"output_type":"finding","title":"a","body":"b","confidence":0.9}`,
		})
		require.NoError(t, err)
		_, err = d.Execute(context.Background(), agent.ToolCall{
			ID:   "c2",
			Name: ToolEmitWorkOutput,
			Arguments: `{"output_type":"insight","title":"c","body":"d","confidence":0.55,
				"metadata":{"requires_review":true}}`,
		})
		require.NoError(t, err)

		min, hasAny := d.MinConfidence()
		assert.True(t, hasAny)
		assert.InDelta(t, 0.55, min, 1e-9)
		assert.True(t, d.ReviewRequested())
	})
}

func TestDispatcher_ListTools(t *testing.T) {
	d := NewDispatcher(&stubSubstrate{}, nil, nil, nil, newTestContext())

	defs, err := d.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 8)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description, def.Name)
		assert.NotEmpty(t, def.InputSchema, def.Name)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(def.InputSchema), &doc), def.Name)
		assert.Equal(t, "object", doc["type"], def.Name)
	}
	assert.Equal(t, []string{
		ToolEmitWorkOutput, ToolReadContext, ToolWriteContext, ToolListContext,
		ToolListRecipes, ToolTriggerRecipe, ToolWebSearch, ToolDocumentSkill,
	}, names)
}
