package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/substrate"
	testdb "github.com/cobbleworks/foundry/test/database"
)

type bridgeFixture struct {
	fake     *fakeSubstrate
	bridge   *SupervisionBridge
	projects *ProjectService
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	fake := newFakeSubstrate(t)
	projects := NewProjectService(client.Client)
	return &bridgeFixture{
		fake:     fake,
		bridge:   NewSupervisionBridge(fake.Client(), projects, nil),
		projects: projects,
	}
}

// newProject creates a project row and returns its basket ID.
func (fx *bridgeFixture) newProject(t *testing.T, mode string, autoTypes ...string) string {
	t.Helper()
	basketID := uuid.New().String()
	_, err := fx.projects.Create(context.Background(), models.CreateProjectRequest{
		WorkspaceID:      "ws-1",
		BasketID:         basketID,
		Name:             "review fixture",
		PromotionMode:    mode,
		AutoPromoteTypes: autoTypes,
	})
	require.NoError(t, err)
	return basketID
}

func TestSupervisionBridge_Review(t *testing.T) {
	ctx := context.Background()

	t.Run("approve a pending output", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:   basketID,
			OutputType: "finding",
			Title:      "Churn is concentrated in SMB",
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, Reviewer: "user-1", Notes: "looks right",
		})
		require.NoError(t, err)
		assert.Equal(t, SupervisionApproved, result.Output.SupervisionStatus)
		assert.Equal(t, "looks right", result.Output.ReviewerNotes)
		assert.False(t, result.Promoted)
	})

	t.Run("approve from revision_requested", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "finding",
			SupervisionStatus: SupervisionRevisionRequested,
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, Reviewer: "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, SupervisionApproved, result.Output.SupervisionStatus)
	})

	t.Run("approve an approved output conflicts", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "finding",
			SupervisionStatus: SupervisionApproved,
		})

		_, err := fx.bridge.Approve(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("reject and request revision", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")

		rejected := fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding"})
		out, err := fx.bridge.Reject(ctx, ReviewInput{
			BasketID: basketID, OutputID: rejected.ID, Reviewer: "user-1", Notes: "off topic",
		})
		require.NoError(t, err)
		assert.Equal(t, SupervisionRejected, out.SupervisionStatus)
		assert.Equal(t, "off topic", out.ReviewerNotes)

		revise := fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding"})
		out, err = fx.bridge.RequestRevision(ctx, ReviewInput{
			BasketID: basketID, OutputID: revise.ID, Notes: "needs sources",
		})
		require.NoError(t, err)
		assert.Equal(t, SupervisionRevisionRequested, out.SupervisionStatus)

		// Revision can only be requested once: the next transition must be a
		// verdict.
		_, err = fx.bridge.RequestRevision(ctx, ReviewInput{BasketID: basketID, OutputID: revise.ID})
		assert.True(t, errors.Is(err, ErrConflict))

		out, err = fx.bridge.Reject(ctx, ReviewInput{BasketID: basketID, OutputID: revise.ID})
		require.NoError(t, err)
		assert.Equal(t, SupervisionRejected, out.SupervisionStatus)
	})

	t.Run("basket mismatch reads as not found", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding"})

		_, err := fx.bridge.Approve(ctx, ReviewInput{
			BasketID: uuid.New().String(), OutputID: out.ID,
		})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("unknown output is not found", func(t *testing.T) {
		fx := newBridgeFixture(t)
		_, err := fx.bridge.Approve(ctx, ReviewInput{OutputID: "wo-missing"})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("user token is forwarded to the substrate", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding"})

		_, err := fx.bridge.Approve(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, UserToken: "user-jwt",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bearer user-jwt", fx.fake.lastAuth)
	})
}

func TestSupervisionBridge_AutoPromotion(t *testing.T) {
	ctx := context.Background()

	t.Run("approval promotes when policy matches", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "auto", "finding", "insight")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:         basketID,
			WorkTicketID:     "wt-1",
			AgentKind:        "research",
			OutputType:       "finding",
			Title:            "Churn is concentrated in SMB",
			Body:             "Cohort analysis shows 80% of churn in <50 seat accounts.",
			Confidence:       0.9,
			SourceContextIDs: []string{"blk-1", "blk-2"},
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, Reviewer: "user-1",
		})
		require.NoError(t, err)
		assert.True(t, result.Promoted)
		assert.NotEmpty(t, result.ProposalID)
		assert.Equal(t, result.ProposalID, result.Output.SubstrateProposalID)
		assert.Equal(t, PromotionAuto, result.Output.PromotionMethod)

		require.Len(t, fx.fake.proposals, 1)
		proposal := fx.fake.proposals[0]
		assert.Equal(t, "supervision_promotion", proposal.Origin)
		require.Len(t, proposal.Ops, 1)
		op := proposal.Ops[0]
		assert.Equal(t, "CreateBlock", op.Type)
		assert.Equal(t, "fact", op.SemanticType)
		assert.Equal(t, "Churn is concentrated in SMB", op.Title)
		assert.Equal(t, "Cohort analysis shows 80% of churn in <50 seat accounts.", op.Body)
		assert.Equal(t, 0.9, op.Confidence)
		assert.Equal(t, []string{"blk-1", "blk-2"}, op.SourceContextIDs)
		assert.Equal(t, out.ID, op.Metadata["work_output_id"])
		assert.Equal(t, "wt-1", op.Metadata["work_ticket_id"])
		assert.Equal(t, PromotionAuto, proposal.Provenance["method"])
		assert.Equal(t, "user-1", proposal.Provenance["promoted_by"])
	})

	t.Run("type outside the auto list stays unpromoted", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "auto", "insight")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)
		assert.False(t, result.Promoted)
		assert.Empty(t, fx.fake.proposals)
	})

	t.Run("manual mode never auto-promotes", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual", "finding")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)
		assert.False(t, result.Promoted)
		assert.Empty(t, fx.fake.proposals)
	})

	t.Run("basket without a project row approves without promotion", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := uuid.New().String()
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})

		result, err := fx.bridge.Approve(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)
		assert.Equal(t, SupervisionApproved, result.Output.SupervisionStatus)
		assert.False(t, result.Promoted)
	})

	t.Run("failed promotion leaves the approval standing", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "auto", "finding")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})
		fx.fake.failOnce(http.MethodPost, "/proposals", 422)

		result, err := fx.bridge.Approve(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)
		assert.False(t, result.Promoted)
		assert.NotEmpty(t, result.PromotionError)
		assert.Equal(t, SupervisionApproved, result.Output.SupervisionStatus)
		assert.Empty(t, result.Output.SubstrateProposalID)
	})
}

func TestSupervisionBridge_Promote(t *testing.T) {
	ctx := context.Background()

	t.Run("manual promotion of an approved output", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "recommendation",
			Title:             "Prioritize SMB onboarding",
			Body:              map[string]any{"steps": []any{"audit flow", "ship checklist"}},
			SupervisionStatus: SupervisionApproved,
		})

		result, err := fx.bridge.Promote(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, Reviewer: "user-1",
		})
		require.NoError(t, err)
		assert.True(t, result.Promoted)
		assert.Equal(t, PromotionManual, result.Output.PromotionMethod)

		require.Len(t, fx.fake.proposals, 1)
		op := fx.fake.proposals[0].Ops[0]
		assert.Equal(t, "action", op.SemanticType)
		// Structured bodies are serialized into the block body.
		assert.JSONEq(t, `{"steps":["audit flow","ship checklist"]}`, op.Body)
	})

	t.Run("pending output cannot promote", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})

		_, err := fx.bridge.Promote(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("non-promotable types are rejected", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "status_note",
			SupervisionStatus: SupervisionApproved,
		})

		_, err := fx.bridge.Promote(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("an output promotes at most once", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "insight",
			SupervisionStatus: SupervisionApproved,
		})

		_, err := fx.bridge.Promote(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)

		_, err = fx.bridge.Promote(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, errors.Is(err, ErrConflict))
		assert.Len(t, fx.fake.proposals, 1)
	})
}

func TestSupervisionBridge_SkipPromotion(t *testing.T) {
	ctx := context.Background()

	t.Run("skip an approved output", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "finding",
			SupervisionStatus: SupervisionApproved,
		})

		skipped, err := fx.bridge.SkipPromotion(ctx, ReviewInput{
			BasketID: basketID, OutputID: out.ID, Reviewer: "user-1", Notes: "already known",
		})
		require.NoError(t, err)
		assert.Equal(t, PromotionSkipped, skipped.PromotionMethod)
	})

	t.Run("skip then promote still works", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:          basketID,
			OutputType:        "finding",
			SupervisionStatus: SupervisionApproved,
		})

		_, err := fx.bridge.SkipPromotion(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)

		// A skip is reversible until a real promotion happens.
		result, err := fx.bridge.Promote(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		require.NoError(t, err)
		assert.Equal(t, PromotionManual, result.Output.PromotionMethod)
	})

	t.Run("only approved outputs can skip", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID: basketID, OutputType: "finding",
		})

		_, err := fx.bridge.SkipPromotion(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("promoted outputs cannot skip", func(t *testing.T) {
		fx := newBridgeFixture(t)
		basketID := fx.newProject(t, "manual")
		out := fx.fake.seedOutput(substrate.WorkOutput{
			BasketID:            basketID,
			OutputType:          "finding",
			SupervisionStatus:   SupervisionApproved,
			SubstrateProposalID: "prop-existing",
		})

		_, err := fx.bridge.SkipPromotion(ctx, ReviewInput{BasketID: basketID, OutputID: out.ID})
		assert.True(t, errors.Is(err, ErrConflict))
	})
}

func TestSupervisionBridge_ListOutputs(t *testing.T) {
	ctx := context.Background()
	fx := newBridgeFixture(t)
	basketID := fx.newProject(t, "manual")

	fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding"})
	fx.fake.seedOutput(substrate.WorkOutput{BasketID: basketID, OutputType: "finding", SupervisionStatus: SupervisionApproved})
	fx.fake.seedOutput(substrate.WorkOutput{BasketID: uuid.New().String(), OutputType: "finding"})

	page, err := fx.bridge.ListOutputs(ctx, basketID, substrate.OutputFilter{
		SupervisionStatus: SupervisionPendingReview,
	}, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, SupervisionPendingReview, page.Items[0].SupervisionStatus)

	page, err = fx.bridge.ListOutputs(ctx, basketID, substrate.OutputFilter{}, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
