package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/pkg/slack"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// Supervision statuses carried by substrate work outputs.
const (
	SupervisionPendingReview     = "pending_review"
	SupervisionApproved          = "approved"
	SupervisionRejected          = "rejected"
	SupervisionRevisionRequested = "revision_requested"
)

// Promotion methods.
const (
	PromotionAuto    = "auto"
	PromotionManual  = "manual"
	PromotionSkipped = "skipped"
)

// semanticTypeForOutput maps promotable output types to the semantic type
// of the block a promotion creates. Types outside this map never promote.
var semanticTypeForOutput = map[string]string{
	"finding":        "fact",
	"recommendation": "action",
	"insight":        "insight",
	"report_section": "knowledge",
}

// PromotableOutputType reports whether outputs of this type may become
// durable blocks.
func PromotableOutputType(outputType string) bool {
	_, ok := semanticTypeForOutput[outputType]
	return ok
}

// SupervisionBridge drives work outputs through human review and into the
// knowledge store. Outputs live substrate-side; every read and write goes
// through the substrate client. The project row supplies promotion policy.
type SupervisionBridge struct {
	substrate *substrate.Client
	projects  *ProjectService
	notifier  *slack.Service
}

// NewSupervisionBridge creates a new SupervisionBridge.
// notifier may be nil (reviewer notifications disabled).
func NewSupervisionBridge(client *substrate.Client, projects *ProjectService, notifier *slack.Service) *SupervisionBridge {
	return &SupervisionBridge{substrate: client, projects: projects, notifier: notifier}
}

// ReviewInput identifies one output under review.
type ReviewInput struct {
	BasketID  string
	OutputID  string
	Reviewer  string
	Notes     string
	UserToken string
}

// ReviewResult is the outcome of an approval, including any synchronous
// auto-promotion attempt.
type ReviewResult struct {
	Output *substrate.WorkOutput `json:"output"`

	// Promoted is true when the call promoted the output.
	Promoted   bool   `json:"promoted"`
	ProposalID string `json:"proposal_id,omitempty"`

	// PromotionError carries a failed auto-promotion. The approval itself
	// stands; promotion can be retried explicitly.
	PromotionError string `json:"promotion_error,omitempty"`
}

func (b *SupervisionBridge) api(userToken string) *substrate.Client {
	if userToken == "" {
		return b.substrate
	}
	return b.substrate.WithToken(userToken)
}

// ListOutputs returns a basket's outputs for the review queue.
func (b *SupervisionBridge) ListOutputs(ctx context.Context, basketID string, f substrate.OutputFilter, userToken string) (*substrate.WorkOutputPage, error) {
	page, err := b.api(userToken).ListWorkOutputs(ctx, basketID, f)
	if err != nil {
		return nil, translateSubstrateError(err)
	}
	return page, nil
}

// Approve moves an output to approved and, when the owning project runs in
// auto promotion mode for this output type, promotes it synchronously.
func (b *SupervisionBridge) Approve(ctx context.Context, in ReviewInput) (*ReviewResult, error) {
	result, err := b.approve(ctx, in)
	if err != nil {
		return nil, err
	}
	b.notifier.NotifyOutputReviewed(ctx, slack.VerdictInput{
		TicketID:   result.Output.WorkTicketID,
		OutputID:   result.Output.ID,
		Verdict:    SupervisionApproved,
		Reviewer:   in.Reviewer,
		Promoted:   result.Promoted,
		ProposalID: result.ProposalID,
	})
	return result, nil
}

func (b *SupervisionBridge) approve(ctx context.Context, in ReviewInput) (*ReviewResult, error) {
	out, err := b.review(ctx, in, SupervisionApproved,
		SupervisionPendingReview, SupervisionRevisionRequested)
	if err != nil {
		return nil, err
	}
	result := &ReviewResult{Output: out}

	if !PromotableOutputType(out.OutputType) {
		return result, nil
	}
	proj, err := b.projects.GetByBasket(ctx, in.BasketID)
	if err != nil {
		// A basket without a project row cannot carry auto-promote policy.
		slog.Warn("Approve without project policy", "basket_id", in.BasketID, "error", err)
		return result, nil
	}
	if proj.PromotionMode != project.PromotionModeAuto || !containsString(proj.AutoPromoteTypes, out.OutputType) {
		return result, nil
	}

	promoted, err := b.promote(ctx, out, PromotionAuto, in.Reviewer, in.UserToken)
	if err != nil {
		// The output stays approved with no method; explicit promote can
		// retry later.
		slog.Error("Auto-promotion failed",
			"output_id", out.ID,
			"basket_id", in.BasketID,
			"error", err)
		result.PromotionError = err.Error()
		return result, nil
	}
	result.Output = promoted
	result.Promoted = true
	result.ProposalID = promoted.SubstrateProposalID
	return result, nil
}

// Reject moves an output to rejected.
func (b *SupervisionBridge) Reject(ctx context.Context, in ReviewInput) (*substrate.WorkOutput, error) {
	out, err := b.review(ctx, in, SupervisionRejected,
		SupervisionPendingReview, SupervisionRevisionRequested)
	if err != nil {
		return nil, err
	}
	b.notifyVerdict(ctx, out, SupervisionRejected, in.Reviewer)
	return out, nil
}

// RequestRevision sends a pending output back to its agent for rework.
func (b *SupervisionBridge) RequestRevision(ctx context.Context, in ReviewInput) (*substrate.WorkOutput, error) {
	out, err := b.review(ctx, in, SupervisionRevisionRequested, SupervisionPendingReview)
	if err != nil {
		return nil, err
	}
	b.notifyVerdict(ctx, out, SupervisionRevisionRequested, in.Reviewer)
	return out, nil
}

// notifyVerdict posts the reviewer notification for a non-approval
// verdict. Nil-safe and fail-open.
func (b *SupervisionBridge) notifyVerdict(ctx context.Context, out *substrate.WorkOutput, verdict, reviewer string) {
	b.notifier.NotifyOutputReviewed(ctx, slack.VerdictInput{
		TicketID: out.WorkTicketID,
		OutputID: out.ID,
		Verdict:  verdict,
		Reviewer: reviewer,
	})
}

// Promote explicitly promotes an approved output into a governance
// proposal. An output promotes at most once.
func (b *SupervisionBridge) Promote(ctx context.Context, in ReviewInput) (*ReviewResult, error) {
	out, err := b.getOutput(ctx, in)
	if err != nil {
		return nil, err
	}
	promoted, err := b.promote(ctx, out, PromotionManual, in.Reviewer, in.UserToken)
	if err != nil {
		return nil, err
	}
	return &ReviewResult{
		Output:     promoted,
		Promoted:   true,
		ProposalID: promoted.SubstrateProposalID,
	}, nil
}

// SkipPromotion records the intentional decision not to promote an
// approved output.
func (b *SupervisionBridge) SkipPromotion(ctx context.Context, in ReviewInput) (*substrate.WorkOutput, error) {
	out, err := b.getOutput(ctx, in)
	if err != nil {
		return nil, err
	}
	if out.SupervisionStatus != SupervisionApproved {
		return nil, fmt.Errorf("%w: output %s is %s, only approved outputs can skip promotion",
			ErrConflict, out.ID, out.SupervisionStatus)
	}
	if out.SubstrateProposalID != "" {
		return nil, fmt.Errorf("%w: output %s is already promoted", ErrConflict, out.ID)
	}

	skipped, err := b.api(in.UserToken).SkipOutputPromotion(ctx, in.OutputID, in.Reviewer, in.Notes)
	if err != nil {
		return nil, translateSubstrateError(err)
	}
	return skipped, nil
}

// review applies one supervision transition after checking the output is
// in an allowed source state.
func (b *SupervisionBridge) review(ctx context.Context, in ReviewInput, target string, allowedFrom ...string) (*substrate.WorkOutput, error) {
	out, err := b.getOutput(ctx, in)
	if err != nil {
		return nil, err
	}
	if !containsString(allowedFrom, out.SupervisionStatus) {
		return nil, fmt.Errorf("%w: output %s is %s, cannot mark %s",
			ErrConflict, out.ID, out.SupervisionStatus, target)
	}

	updated, err := b.api(in.UserToken).UpdateWorkOutput(ctx, in.OutputID, substrate.UpdateWorkOutputInput{
		SupervisionStatus: target,
		ReviewerNotes:     in.Notes,
		Reviewer:          in.Reviewer,
	})
	if err != nil {
		return nil, translateSubstrateError(err)
	}

	slog.Info("Work output reviewed",
		"output_id", updated.ID,
		"basket_id", in.BasketID,
		"supervision_status", target,
		"reviewer", in.Reviewer)
	return updated, nil
}

// promote builds the single-op block proposal and records the link back
// on the output.
func (b *SupervisionBridge) promote(ctx context.Context, out *substrate.WorkOutput, method, promotedBy, userToken string) (*substrate.WorkOutput, error) {
	if out.SupervisionStatus != SupervisionApproved {
		return nil, fmt.Errorf("%w: output %s is %s, only approved outputs promote",
			ErrConflict, out.ID, out.SupervisionStatus)
	}
	semanticType, ok := semanticTypeForOutput[out.OutputType]
	if !ok {
		return nil, NewValidationError("output_type",
			fmt.Sprintf("%q is not promotable", out.OutputType))
	}
	if out.SubstrateProposalID != "" {
		return nil, fmt.Errorf("%w: output %s is already promoted", ErrConflict, out.ID)
	}

	api := b.api(userToken)
	proposal, err := api.CreateProposal(ctx, out.BasketID, substrate.CreateProposalInput{
		Ops: []substrate.ProposalOp{{
			Type:             "CreateBlock",
			SemanticType:     semanticType,
			Title:            out.Title,
			Body:             outputBodyText(out.Body),
			Confidence:       out.Confidence,
			SourceContextIDs: out.SourceContextIDs,
			Metadata: map[string]any{
				"work_output_id": out.ID,
				"work_ticket_id": out.WorkTicketID,
				"agent_kind":     out.AgentKind,
			},
		}},
		Origin: "supervision_promotion",
		Provenance: map[string]any{
			"work_output_id": out.ID,
			"method":         method,
			"promoted_by":    promotedBy,
		},
	})
	if err != nil {
		return nil, translateSubstrateError(err)
	}

	marked, err := api.MarkOutputPromoted(ctx, out.ID, proposal.ID, method, promotedBy)
	if err != nil {
		// The proposal exists but the link-back failed; surface it so the
		// caller can retry MarkOutputPromoted without a second proposal.
		return nil, fmt.Errorf("proposal %s created but output link failed: %w",
			proposal.ID, translateSubstrateError(err))
	}

	slog.Info("Work output promoted",
		"output_id", out.ID,
		"proposal_id", proposal.ID,
		"method", method,
		"semantic_type", semanticType)
	return marked, nil
}

func (b *SupervisionBridge) getOutput(ctx context.Context, in ReviewInput) (*substrate.WorkOutput, error) {
	if in.OutputID == "" {
		return nil, NewValidationError("output_id", "required")
	}
	out, err := b.api(in.UserToken).GetWorkOutput(ctx, in.OutputID)
	if err != nil {
		return nil, translateSubstrateError(err)
	}
	if in.BasketID != "" && out.BasketID != in.BasketID {
		return nil, fmt.Errorf("%w: output %s does not belong to basket %s",
			ErrNotFound, in.OutputID, in.BasketID)
	}
	return out, nil
}

// translateSubstrateError maps substrate client errors onto service
// sentinels so the API layer renders them uniformly.
func translateSubstrateError(err error) error {
	switch {
	case substrate.IsNotFound(err):
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	case substrate.IsConflict(err):
		return fmt.Errorf("%w: %s", ErrConflict, err)
	default:
		return err
	}
}

// outputBodyText renders an output body for a block op. Bodies are
// usually strings; structured bodies are serialized.
func outputBodyText(body any) string {
	switch v := body.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
