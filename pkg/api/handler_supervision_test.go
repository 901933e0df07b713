package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// seedReviewOutput plants one output in the stub substrate.
func (f *apiFixture) seedReviewOutput(basketID, outputType, status string) *substrate.WorkOutput {
	return f.sub.seedOutput(substrate.WorkOutput{
		BasketID:          basketID,
		WorkTicketID:      uuid.New().String(),
		AgentKind:         "research",
		OutputType:        outputType,
		Title:             "Competitive pricing gap",
		Body:              "Competitor X undercuts us by 14% in APAC.",
		Confidence:        0.82,
		SupervisionStatus: status,
	})
}

// newProjectRow creates a project row so the bridge can read promotion
// policy, and returns its basket ID.
func (f *apiFixture) newProjectRow(t *testing.T, mode string, autoTypes ...string) string {
	t.Helper()
	basketID := uuid.New().String()
	_, err := services.NewProjectService(f.client.Client).Create(context.Background(), models.CreateProjectRequest{
		WorkspaceID:      uuid.New().String(),
		BasketID:         basketID,
		Name:             "Review fixture",
		PromotionMode:    mode,
		AutoPromoteTypes: autoTypes,
		CreatedBy:        uuid.New().String(),
	})
	require.NoError(t, err)
	return basketID
}

func TestListOutputs(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")
	basketID := uuid.New().String()

	f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)
	f.seedReviewOutput(basketID, "insight", services.SupervisionApproved)
	f.seedReviewOutput(uuid.New().String(), "finding", services.SupervisionPendingReview)

	t.Run("lists the basket's outputs", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/api/supervision/baskets/"+basketID+"/outputs", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page substrate.WorkOutputPage
		f.decode(resp, &page)
		assert.Equal(t, 2, page.Total)

		// The listing ran under the caller's own token.
		assert.Equal(t, "Bearer "+token, f.sub.lastAuthorization())
	})

	t.Run("filters by supervision status", func(t *testing.T) {
		resp := f.request(http.MethodGet,
			"/api/supervision/baskets/"+basketID+"/outputs?supervision_status=pending_review", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page substrate.WorkOutputPage
		f.decode(resp, &page)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, services.SupervisionPendingReview, page.Items[0].SupervisionStatus)
	})

	t.Run("rejects an out-of-range limit", func(t *testing.T) {
		resp := f.request(http.MethodGet,
			"/api/supervision/baskets/"+basketID+"/outputs?limit=500", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, kindValidation, f.readError(resp).Kind)
	})

	t.Run("rejects a negative offset", func(t *testing.T) {
		resp := f.request(http.MethodGet,
			"/api/supervision/baskets/"+basketID+"/outputs?offset=-1", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestReviewActions(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "reviewer@example.com")

	reviewPath := func(basketID, outputID, action string) string {
		return "/api/supervision/baskets/" + basketID + "/outputs/" + outputID + "/" + action
	}

	t.Run("approve without auto-promotion", func(t *testing.T) {
		basketID := f.newProjectRow(t, "manual")
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "approve"), token,
			ReviewActionRequest{Notes: "solid sourcing"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result services.ReviewResult
		f.decode(resp, &result)
		assert.Equal(t, services.SupervisionApproved, result.Output.SupervisionStatus)
		assert.Equal(t, "solid sourcing", result.Output.ReviewerNotes)
		assert.False(t, result.Promoted)
		assert.Empty(t, result.ProposalID)
	})

	t.Run("approve auto-promotes under an auto project", func(t *testing.T) {
		basketID := f.newProjectRow(t, "auto", "finding")
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "approve"), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result services.ReviewResult
		f.decode(resp, &result)
		assert.True(t, result.Promoted)
		assert.NotEmpty(t, result.ProposalID)
		assert.Equal(t, result.ProposalID, result.Output.SubstrateProposalID)
		assert.Equal(t, services.PromotionAuto, result.Output.PromotionMethod)
	})

	t.Run("reject records the decision", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "reject"), token,
			ReviewActionRequest{Notes: "speculative"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated substrate.WorkOutput
		f.decode(resp, &updated)
		assert.Equal(t, services.SupervisionRejected, updated.SupervisionStatus)
		assert.Equal(t, "speculative", updated.ReviewerNotes)
	})

	t.Run("request-revision only from pending review", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "request-revision"), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		// A second revision request conflicts: the output already left
		// pending review.
		resp = f.request(http.MethodPost, reviewPath(basketID, out.ID, "request-revision"), token, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, kindConflict, f.readError(resp).Kind)
	})

	t.Run("rejecting an approved output conflicts", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionApproved)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "reject"), token, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("explicit promote, at most once", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "recommendation", services.SupervisionApproved)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "promote"), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result services.ReviewResult
		f.decode(resp, &result)
		assert.True(t, result.Promoted)
		assert.Equal(t, services.PromotionManual, result.Output.PromotionMethod)

		resp = f.request(http.MethodPost, reviewPath(basketID, out.ID, "promote"), token, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("promoting an unapproved output conflicts", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "promote"), token, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("skip-promotion records the intent", func(t *testing.T) {
		basketID := uuid.New().String()
		out := f.seedReviewOutput(basketID, "insight", services.SupervisionApproved)

		resp := f.request(http.MethodPost, reviewPath(basketID, out.ID, "skip-promotion"), token,
			ReviewActionRequest{Notes: "internal only"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated substrate.WorkOutput
		f.decode(resp, &updated)
		assert.Equal(t, services.PromotionSkipped, updated.PromotionMethod)
	})

	t.Run("unknown output", func(t *testing.T) {
		resp := f.request(http.MethodPost,
			reviewPath(uuid.New().String(), uuid.New().String(), "approve"), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, kindNotFound, f.readError(resp).Kind)
	})

	t.Run("basket mismatch is not found", func(t *testing.T) {
		out := f.seedReviewOutput(uuid.New().String(), "finding", services.SupervisionPendingReview)

		resp := f.request(http.MethodPost, reviewPath(uuid.New().String(), out.ID, "approve"), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
