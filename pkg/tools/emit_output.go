package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

type emitOutputHandler struct {
	api SubstrateAPI
}

type emitOutputArgs struct {
	OutputType       string         `json:"output_type"`
	Title            string         `json:"title"`
	Body             any            `json:"body"`
	Confidence       float64        `json:"confidence"`
	SourceContextIDs []string       `json:"source_context_ids"`
	ToolCallID       string         `json:"tool_call_id"`
	Metadata         map[string]any `json:"metadata"`
}

func (h *emitOutputHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in emitOutputArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	output, err := h.api.CreateWorkOutput(ctx, tc.BasketID, substrate.CreateWorkOutputInput{
		WorkTicketID:     tc.TicketID,
		AgentKind:        tc.AgentKind,
		OutputType:       in.OutputType,
		Title:            in.Title,
		Body:             in.Body,
		Confidence:       in.Confidence,
		SourceContextIDs: in.SourceContextIDs,
		ToolCallID:       in.ToolCallID,
		Metadata:         in.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("persist output: %w", err)
	}

	requiresReview, _ := in.Metadata["requires_review"].(bool)
	tc.Emitter.Record(EmittedOutput{
		ID:             output.ID,
		OutputType:     in.OutputType,
		Title:          in.Title,
		Confidence:     in.Confidence,
		RequiresReview: requiresReview,
	})

	return jsonResult(map[string]any{
		"work_output_id":     output.ID,
		"supervision_status": output.SupervisionStatus,
	})
}
