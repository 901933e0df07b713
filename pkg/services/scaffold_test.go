package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/models"
	testdb "github.com/cobbleworks/foundry/test/database"
)

type scaffoldFixture struct {
	fake       *fakeSubstrate
	scaffolder *Scaffolder
	client     *ent.Client
	registry   *SessionRegistry
	projects   *ProjectService
}

func newScaffoldFixture(t *testing.T, trialCap int) *scaffoldFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	fake := newFakeSubstrate(t)
	registry := NewSessionRegistry(client.Client)
	projects := NewProjectService(client.Client)
	return &scaffoldFixture{
		fake: fake,
		scaffolder: NewScaffolder(
			fake.Client(),
			NewQuotaGate(client.Client, trialCap),
			NewWorkRequestRecorder(client.Client),
			registry,
			projects,
		),
		client:   client.Client,
		registry: registry,
		projects: projects,
	}
}

func validScaffoldRequest() models.ScaffoldRequest {
	return models.ScaffoldRequest{
		UserID:         uuid.New().String(),
		WorkspaceID:    uuid.New().String(),
		Name:           "Market entry study",
		Description:    "Evaluate entering the nordic market",
		Intent:         "Decide whether to enter the nordic market in 2027.",
		InitialContext: "Sales data for 2024-2026 attached as notes.",
	}
}

func TestScaffolder_Scaffold(t *testing.T) {
	ctx := context.Background()

	t.Run("full onboarding", func(t *testing.T) {
		fx := newScaffoldFixture(t, 10)
		req := validScaffoldRequest()
		req.PromotionMode = "auto"
		req.AutoPromoteTypes = []string{"finding"}

		result, err := fx.scaffolder.Scaffold(ctx, req)
		require.NoError(t, err)

		assert.NotEmpty(t, result.BasketID)
		assert.NotEmpty(t, result.IntentBlockID)
		assert.NotEmpty(t, result.DumpID)
		assert.NotEmpty(t, result.ProjectID)
		assert.NotEmpty(t, result.WorkRequestID)
		assert.True(t, result.IsTrial)

		// Basket carries its origin marker.
		require.Len(t, fx.fake.baskets, 1)
		assert.Equal(t, req.WorkspaceID, fx.fake.baskets[0].WorkspaceID)
		assert.Equal(t, "project_scaffold", fx.fake.baskets[0].Origin["source"])
		assert.Equal(t, req.UserID, fx.fake.baskets[0].Origin["created_by"])

		// Intent anchor is the single direct block write.
		require.Len(t, fx.fake.blocks, 1)
		block := fx.fake.blocks[0]
		assert.Equal(t, "intent", block.SemanticType)
		assert.Equal(t, "intent", block.AnchorRole)
		assert.Equal(t, req.Name, block.Title)
		assert.Equal(t, req.Intent, block.Body)
		assert.Equal(t, 1.0, block.Confidence)
		assert.Equal(t, "ACCEPTED", block.State)

		// Initial context lands as an idempotent dump.
		require.Len(t, fx.fake.dumps, 1)
		assert.Equal(t, req.InitialContext, fx.fake.dumps[0]["content"])
		assert.NotEmpty(t, fx.fake.dumps[0]["request_id"])

		// Project row carries the promotion policy.
		proj, err := fx.projects.Get(ctx, result.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, result.BasketID, proj.BasketID)
		assert.Equal(t, []string{"finding"}, proj.AutoPromoteTypes)

		// All four sessions exist, specialists parented to the TP.
		require.Len(t, result.SessionIDs, 4)
		tp, err := fx.registry.Get(ctx, result.SessionIDs["thinking_partner"])
		require.NoError(t, err)
		assert.Nil(t, tp.ParentSessionID)
		for _, kind := range []string{"research", "content", "reporting"} {
			session, err := fx.registry.Get(ctx, result.SessionIDs[kind])
			require.NoError(t, err)
			require.NotNil(t, session.ParentSessionID)
			assert.Equal(t, tp.ID, *session.ParentSessionID)
		}

		// First work request is onboarding research bound to the project.
		request, err := fx.client.WorkRequest.Get(ctx, result.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.AgentKindResearch, request.AgentKind)
		assert.Equal(t, "project_onboarding", request.WorkMode)
		assert.Equal(t, result.BasketID, request.BasketID)
		assert.Equal(t, result.ProjectID, request.Payload["project_id"])
	})

	t.Run("no initial context skips the dump", func(t *testing.T) {
		fx := newScaffoldFixture(t, 10)
		req := validScaffoldRequest()
		req.InitialContext = ""

		result, err := fx.scaffolder.Scaffold(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, result.DumpID)
		assert.Empty(t, fx.fake.dumps)
	})

	t.Run("user token reaches the substrate", func(t *testing.T) {
		fx := newScaffoldFixture(t, 10)
		req := validScaffoldRequest()
		req.UserToken = "user-jwt"

		_, err := fx.scaffolder.Scaffold(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer user-jwt", fx.fake.lastAuth)
	})

	t.Run("quota denial stops before any substrate write", func(t *testing.T) {
		fx := newScaffoldFixture(t, 0)

		_, err := fx.scaffolder.Scaffold(ctx, validScaffoldRequest())
		require.Error(t, err)

		var stepErr *ScaffoldError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, StepPermissionCheck, stepErr.Step)
		var denied *PermissionDeniedError
		assert.True(t, errors.As(err, &denied))
		assert.Empty(t, fx.fake.baskets)
	})

	t.Run("intent block failure reports the step and partial result", func(t *testing.T) {
		fx := newScaffoldFixture(t, 10)
		fx.fake.failOnce(http.MethodPost, "/blocks", 422)

		result, err := fx.scaffolder.Scaffold(ctx, validScaffoldRequest())
		require.Error(t, err)

		var stepErr *ScaffoldError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, StepCreateIntentBlock, stepErr.Step)

		// The basket exists; the caller decides whether to clean up.
		require.NotNil(t, result)
		assert.NotEmpty(t, result.BasketID)
		assert.Empty(t, result.IntentBlockID)
	})

	t.Run("validates the request", func(t *testing.T) {
		fx := newScaffoldFixture(t, 10)

		req := validScaffoldRequest()
		req.Name = ""
		_, err := fx.scaffolder.Scaffold(ctx, req)
		assert.True(t, IsValidationError(err))

		req = validScaffoldRequest()
		req.Intent = ""
		_, err = fx.scaffolder.Scaffold(ctx, req)
		assert.True(t, IsValidationError(err))

		req = validScaffoldRequest()
		req.UserID = ""
		_, err = fx.scaffolder.Scaffold(ctx, req)
		assert.True(t, IsValidationError(err))
	})
}
