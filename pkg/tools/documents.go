package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

const (
	defaultDocumentPollInterval = 2 * time.Second
	defaultDocumentPollBudget   = 90 * time.Second
)

// documentSkillHandler drives a substrate-side document generation job to
// completion: initiate, then poll until terminal or the budget runs out.
type documentSkillHandler struct {
	api          SubstrateAPI
	pollInterval time.Duration
	pollBudget   time.Duration
}

type documentSkillArgs struct {
	SkillID string         `json:"skill_id"`
	Spec    map[string]any `json:"spec"`
}

func (h *documentSkillHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in documentSkillArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	job, err := h.api.InitiateWork(ctx, substrate.WorkJobInput{
		Kind:     "document_generation",
		BasketID: tc.BasketID,
		Params: map[string]any{
			"skill_id":       in.SkillID,
			"spec":           in.Spec,
			"work_ticket_id": tc.TicketID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initiate document job: %w", err)
	}

	interval := h.pollInterval
	if interval <= 0 {
		interval = defaultDocumentPollInterval
	}
	budget := h.pollBudget
	if budget <= 0 {
		budget = defaultDocumentPollBudget
	}
	deadline := time.Now().Add(budget)

	for {
		switch job.Status {
		case "completed":
			return jsonResult(map[string]any{
				"status": "completed",
				"file":   job.Result,
			})
		case "failed":
			msg := job.Message
			if msg == "" {
				msg = "no detail from the document service"
			}
			return errorResult("document generation failed: %s", msg), nil
		}

		if time.Now().After(deadline) {
			return errorResult("document generation timed out after %s; job %s is still %s",
				budget, job.ID, job.Status), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}

		job, err = h.api.GetWorkStatus(ctx, job.ID)
		if err != nil {
			return nil, fmt.Errorf("poll document job: %w", err)
		}
	}
}

// webSearchHandler covers the provider-hosted search capability. The
// declaration keeps the tool in the catalog; execution happens on the
// provider's side, so a local dispatch only explains that.
type webSearchHandler struct{}

func (h *webSearchHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	return jsonResult(map[string]any{
		"note": "web_search executes on the model provider's side; results arrive as assistant content",
	})
}
