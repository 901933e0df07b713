package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

const contextStatusActive = "active"

type readContextHandler struct {
	api SubstrateAPI
}

type readContextArgs struct {
	ItemType string   `json:"item_type"`
	ItemKey  string   `json:"item_key"`
	Fields   []string `json:"fields"`
}

func (h *readContextHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in readContextArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	// Newest active item; limit 1 tolerates duplicate rows.
	items, err := h.api.GetContextItems(ctx, tc.BasketID, substrate.ContextItemFilter{
		ItemType: in.ItemType,
		ItemKey:  in.ItemKey,
		Status:   contextStatusActive,
		Limit:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("read context %s: %w", in.ItemType, err)
	}
	if len(items) == 0 {
		return jsonResult(map[string]any{"found": false})
	}

	item := items[0]
	content := item.Content
	if len(in.Fields) > 0 {
		picked := make(map[string]any, len(in.Fields))
		for _, f := range in.Fields {
			if v, ok := content[f]; ok {
				picked[f] = v
			}
		}
		content = picked
	}

	return jsonResult(map[string]any{
		"found":              true,
		"tier":               item.Tier,
		"content":            content,
		"completeness_score": item.CompletenessScore,
		"updated_at":         item.UpdatedAt.Format(time.RFC3339),
	})
}

type writeContextHandler struct {
	api     SubstrateAPI
	schemas *SchemaRegistry
}

type writeContextArgs struct {
	ItemType string         `json:"item_type"`
	ItemKey  string         `json:"item_key"`
	Content  map[string]any `json:"content"`
	Title    string         `json:"title"`
}

func (h *writeContextHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in writeContextArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	if schema, ok := h.schemas.Lookup(in.ItemType); ok && schema.Singleton && in.ItemKey != "" {
		return errorResult("%s is a singleton item type; omit item_key", in.ItemType), nil
	}
	if err := h.schemas.Validate(in.ItemType, in.Content); err != nil {
		return errorResult("content does not match the %s schema: %s", in.ItemType, err), nil
	}

	tier := h.schemas.Tier(in.ItemType)
	completeness := h.schemas.Completeness(in.ItemType, in.Content)

	if tier == TierFoundation && tc.foundationWritePolicy() == "proposal" {
		proposal, err := h.api.CreateProposal(ctx, tc.BasketID, substrate.CreateProposalInput{
			Ops: []substrate.ProposalOp{{
				Type:  "UpsertContextItem",
				Title: in.Title,
				Metadata: map[string]any{
					"item_type":          in.ItemType,
					"item_key":           in.ItemKey,
					"tier":               tier,
					"content":            in.Content,
					"completeness_score": completeness,
				},
			}},
			Origin: "work_tool",
			Provenance: map[string]any{
				"work_ticket_id": tc.TicketID,
				"agent_kind":     tc.AgentKind,
				"user_id":        tc.UserID,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("propose context write %s: %w", in.ItemType, err)
		}
		return jsonResult(map[string]any{
			"action":            "proposed",
			"requires_approval": true,
			"proposal_id":       proposal.ID,
		})
	}

	item, err := h.api.UpsertContextItem(ctx, tc.BasketID, substrate.UpsertContextItemInput{
		ItemType:          in.ItemType,
		ItemKey:           in.ItemKey,
		Tier:              tier,
		Title:             in.Title,
		Content:           in.Content,
		CompletenessScore: completeness,
	})
	if err != nil {
		return nil, fmt.Errorf("write context %s: %w", in.ItemType, err)
	}

	return jsonResult(map[string]any{
		"action":             "written",
		"context_item_id":    item.ID,
		"tier":               tier,
		"completeness_score": completeness,
	})
}

type listContextHandler struct {
	api     SubstrateAPI
	schemas *SchemaRegistry
}

type listContextArgs struct {
	Tier string `json:"tier"`
}

func (h *listContextHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in listContextArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	items, err := h.api.GetContextItems(ctx, tc.BasketID, substrate.ContextItemFilter{
		Status: contextStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("list context: %w", err)
	}

	type itemView struct {
		ItemType          string  `json:"item_type"`
		ItemKey           string  `json:"item_key,omitempty"`
		Title             string  `json:"title,omitempty"`
		CompletenessScore float64 `json:"completeness_score"`
	}

	tiers := make(map[string][]itemView)
	counts := make(map[string]int)
	present := make(map[string]bool)
	total := 0.0
	scored := 0

	for _, item := range items {
		if in.Tier != "" && item.Tier != in.Tier {
			continue
		}
		tiers[item.Tier] = append(tiers[item.Tier], itemView{
			ItemType:          item.ItemType,
			ItemKey:           item.ItemKey,
			Title:             item.Title,
			CompletenessScore: item.CompletenessScore,
		})
		counts[item.Tier]++
		present[item.ItemType] = true
		total += item.CompletenessScore
		scored++
	}

	// Registered types with no active instance are reported as missing so
	// the agent knows what to fill in next.
	var missing []string
	for _, itemType := range h.schemas.Types() {
		if in.Tier != "" && h.schemas.Tier(itemType) != in.Tier {
			continue
		}
		if !present[itemType] {
			missing = append(missing, itemType)
		}
	}

	overall := 0.0
	if scored > 0 {
		overall = total / float64(scored)
	}

	return jsonResult(map[string]any{
		"tiers":                tiers,
		"counts":               counts,
		"missing":              missing,
		"overall_completeness": overall,
	})
}
