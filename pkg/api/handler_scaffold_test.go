package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/pkg/models"
)

func scaffoldBody() ScaffoldProjectRequest {
	return ScaffoldProjectRequest{
		WorkspaceID:    uuid.New().String(),
		Name:           "Market entry study",
		Intent:         "Decide whether to enter the APAC market",
		InitialContext: "Notes from the kickoff call.",
	}
}

func TestScaffoldProject(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("creates the full project skeleton", func(t *testing.T) {
		userID := uuid.New().String()
		token := signUserToken(t, userID, "founder@example.com")

		resp := f.request(http.MethodPost, "/api/projects/scaffold", token, scaffoldBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out models.ScaffoldResult
		f.decode(resp, &out)
		assert.NotEmpty(t, out.ProjectID)
		assert.NotEmpty(t, out.BasketID)
		assert.NotEmpty(t, out.IntentBlockID)
		assert.NotEmpty(t, out.DumpID)
		assert.NotEmpty(t, out.WorkRequestID)
		assert.True(t, out.IsTrial)
		assert.Len(t, out.SessionIDs, 4)
		assert.Contains(t, out.SessionIDs, "thinking_partner")
		assert.Contains(t, out.SessionIDs, "research")

		proj, err := f.client.Project.Get(context.Background(), out.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, out.BasketID, proj.BasketID)
		require.NotNil(t, proj.CreatedBy)
		assert.Equal(t, userID, *proj.CreatedBy)

		request, err := f.client.WorkRequest.Get(context.Background(), out.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, "project_onboarding", request.WorkMode)
		assert.Equal(t, out.ProjectID, request.Payload["project_id"])

		// Substrate writes ran under the user's own token.
		assert.Equal(t, "Bearer "+token, f.sub.lastAuthorization())
	})

	t.Run("honors the promotion policy fields", func(t *testing.T) {
		body := scaffoldBody()
		body.PromotionMode = "auto"
		body.AutoPromoteTypes = []string{"finding"}

		resp := f.request(http.MethodPost, "/api/projects/scaffold", signUserToken(t, uuid.New().String(), ""), body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out models.ScaffoldResult
		f.decode(resp, &out)

		proj, err := f.client.Project.Get(context.Background(), out.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, project.PromotionModeAuto, proj.PromotionMode)
		assert.Equal(t, []string{"finding"}, proj.AutoPromoteTypes)
	})

	t.Run("names the failing step", func(t *testing.T) {
		f.sub.failOnce(http.MethodPost, "/blocks", http.StatusConflict)

		resp := f.request(http.MethodPost, "/api/projects/scaffold", signUserToken(t, uuid.New().String(), ""), scaffoldBody())
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		detail := f.readError(resp)
		assert.Equal(t, kindConflict, detail.Kind)
		assert.Equal(t, "create_intent_block", detail.Details["step"])
	})

	t.Run("missing intent is a validation error", func(t *testing.T) {
		body := scaffoldBody()
		body.Intent = ""

		resp := f.request(http.MethodPost, "/api/projects/scaffold", signUserToken(t, uuid.New().String(), ""), body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "intent", f.readError(resp).Details["field"])
	})

	t.Run("exhausted allowance fails at the permission step", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		f.seedTrialRequests(t, userID, workspaceID, testTrialCap)

		body := scaffoldBody()
		body.WorkspaceID = workspaceID

		resp := f.request(http.MethodPost, "/api/projects/scaffold", signUserToken(t, userID, ""), body)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		detail := f.readError(resp)
		assert.Equal(t, kindPermissionDenied, detail.Kind)
		assert.Equal(t, "permission_check", detail.Details["step"])
	})
}
