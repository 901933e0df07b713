// Package prompt composes system and task prompts for agent runs.
// Stateless; all inputs arrive as parameters.
package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// Caps keep the system prompt bounded regardless of workspace size.
// Context arrives as titles and summaries, never whole documents.
const (
	maxAssetTitles     = 20
	maxApprovedOutputs = 10
	maxContextItems    = 15
	maxSummaryLen      = 160
)

// OutputSummary is a one-line view of a prior approved output.
type OutputSummary struct {
	Title      string
	OutputType string
	Confidence float64
}

// ItemSummary is a one-line view of a context item.
type ItemSummary struct {
	ItemType string
	Title    string
	Tier     string
}

// ContextBlock is the dynamic context assembled per run by the executor.
type ContextBlock struct {
	AssetTitles     []string
	ApprovedOutputs []OutputSummary
	ContextItems    []ItemSummary
}

// Builder composes prompt text for the runtime. Stateless and safe for
// concurrent use.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildSystemPrompt concatenates the agent identity, the shared workspace
// principles, and the dynamic context block.
func (b *Builder) BuildSystemPrompt(kind string, block ContextBlock) string {
	sections := []string{
		instructionsFor(kind),
		orchestrationPrinciples,
	}
	if ctx := formatContextBlock(block); ctx != "" {
		sections = append(sections, ctx)
	}
	return strings.Join(sections, "\n\n")
}

// BuildTaskMessage formats the work request into the initial user message.
// Parameters render as a sorted bullet list for stable prompts.
func (b *Builder) BuildTaskMessage(task string, params map[string]any) string {
	var sb strings.Builder
	sb.WriteString("# Task\n\n")
	sb.WriteString(strings.TrimSpace(task))

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\n\n## Parameters\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", k, params[k]))
		}
	}
	return sb.String()
}

// BuildChatMessage formats a thinking-partner chat turn.
func (b *Builder) BuildChatMessage(message string) string {
	return strings.TrimSpace(message)
}

func formatContextBlock(block ContextBlock) string {
	var sections []string

	if len(block.AssetTitles) > 0 {
		titles := block.AssetTitles
		if len(titles) > maxAssetTitles {
			titles = titles[:maxAssetTitles]
		}
		var sb strings.Builder
		sb.WriteString("## Reference Assets\n")
		for _, t := range titles {
			sb.WriteString("- " + truncate(t) + "\n")
		}
		sections = append(sections, strings.TrimRight(sb.String(), "\n"))
	}

	if len(block.ApprovedOutputs) > 0 {
		outputs := block.ApprovedOutputs
		if len(outputs) > maxApprovedOutputs {
			outputs = outputs[:maxApprovedOutputs]
		}
		var sb strings.Builder
		sb.WriteString("## Prior Approved Outputs\n")
		for _, o := range outputs {
			sb.WriteString(fmt.Sprintf("- [%s] %s (confidence %.2f)\n",
				o.OutputType, truncate(o.Title), o.Confidence))
		}
		sections = append(sections, strings.TrimRight(sb.String(), "\n"))
	}

	if len(block.ContextItems) > 0 {
		items := block.ContextItems
		if len(items) > maxContextItems {
			items = items[:maxContextItems]
		}
		var sb strings.Builder
		sb.WriteString("## Workspace Context\n")
		for _, it := range items {
			title := it.Title
			if title == "" {
				title = it.ItemType
			}
			sb.WriteString(fmt.Sprintf("- %s (%s tier): %s\n", it.ItemType, it.Tier, truncate(title)))
		}
		sections = append(sections, strings.TrimRight(sb.String(), "\n"))
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n")
}

func truncate(s string) string {
	if len(s) <= maxSummaryLen {
		return s
	}
	return s[:maxSummaryLen] + "..."
}
