package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildSystemPrompt(t *testing.T) {
	builder := NewBuilder()

	t.Run("includes kind instructions and orchestration principles", func(t *testing.T) {
		prompt := builder.BuildSystemPrompt("research", ContextBlock{})

		assert.Contains(t, prompt, "Research Agent")
		assert.Contains(t, prompt, "emit_work_output")
		assert.Contains(t, prompt, "Scores below 0.7")
	})

	t.Run("each kind gets distinct instructions", func(t *testing.T) {
		kinds := []string{"research", "content", "reporting", "thinking_partner"}
		seen := make(map[string]bool)
		for _, kind := range kinds {
			prompt := builder.BuildSystemPrompt(kind, ContextBlock{})
			require.NotEmpty(t, prompt)
			assert.False(t, seen[prompt], "prompt for %s duplicates another kind", kind)
			seen[prompt] = true
		}
	})

	t.Run("unknown kind falls back to thinking partner", func(t *testing.T) {
		unknown := builder.BuildSystemPrompt("someday_agent", ContextBlock{})
		tp := builder.BuildSystemPrompt("thinking_partner", ContextBlock{})
		assert.Equal(t, tp, unknown)
	})

	t.Run("renders context block sections", func(t *testing.T) {
		block := ContextBlock{
			AssetTitles: []string{"Q3 churn export.csv"},
			ApprovedOutputs: []OutputSummary{
				{Title: "Churn drivers", OutputType: "finding", Confidence: 0.91},
			},
			ContextItems: []ItemSummary{
				{ItemType: "problem", Title: "Retention is slipping", Tier: "foundation"},
			},
		}

		prompt := builder.BuildSystemPrompt("research", block)
		assert.Contains(t, prompt, "## Reference Assets")
		assert.Contains(t, prompt, "Q3 churn export.csv")
		assert.Contains(t, prompt, "## Prior Approved Outputs")
		assert.Contains(t, prompt, "[finding] Churn drivers (confidence 0.91)")
		assert.Contains(t, prompt, "## Workspace Context")
		assert.Contains(t, prompt, "problem (foundation tier): Retention is slipping")
	})

	t.Run("empty context block adds no section headers", func(t *testing.T) {
		prompt := builder.BuildSystemPrompt("content", ContextBlock{})
		assert.NotContains(t, prompt, "## Reference Assets")
		assert.NotContains(t, prompt, "## Prior Approved Outputs")
		assert.NotContains(t, prompt, "## Workspace Context")
	})

	t.Run("caps asset titles", func(t *testing.T) {
		block := ContextBlock{}
		for i := 0; i < 30; i++ {
			block.AssetTitles = append(block.AssetTitles, fmt.Sprintf("asset-%02d", i))
		}

		prompt := builder.BuildSystemPrompt("research", block)
		assert.Contains(t, prompt, "asset-19")
		assert.NotContains(t, prompt, "asset-20")
	})

	t.Run("truncates long titles", func(t *testing.T) {
		long := strings.Repeat("x", 400)
		prompt := builder.BuildSystemPrompt("research", ContextBlock{AssetTitles: []string{long}})
		assert.NotContains(t, prompt, long)
		assert.Contains(t, prompt, strings.Repeat("x", 160)+"...")
	})
}

func TestBuilder_BuildTaskMessage(t *testing.T) {
	builder := NewBuilder()

	t.Run("renders task heading and sorted parameters", func(t *testing.T) {
		msg := builder.BuildTaskMessage("Summarize churn interviews", map[string]any{
			"timeframe": "last 90 days",
			"audience":  "exec team",
		})

		assert.True(t, strings.HasPrefix(msg, "# Task\n\nSummarize churn interviews"))
		assert.Contains(t, msg, "## Parameters")
		audienceIdx := strings.Index(msg, "audience")
		timeframeIdx := strings.Index(msg, "timeframe")
		require.NotEqual(t, -1, audienceIdx)
		require.NotEqual(t, -1, timeframeIdx)
		assert.Less(t, audienceIdx, timeframeIdx)
	})

	t.Run("omits parameters section when empty", func(t *testing.T) {
		msg := builder.BuildTaskMessage("Do the work", nil)
		assert.NotContains(t, msg, "## Parameters")
	})
}

func TestBuilder_BuildChatMessage(t *testing.T) {
	builder := NewBuilder()
	assert.Equal(t, "what should we do next?", builder.BuildChatMessage("  what should we do next?\n"))
}
