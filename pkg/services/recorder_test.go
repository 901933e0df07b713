package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/models"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func recordRequest(t *testing.T, recorder *WorkRequestRecorder) *ent.WorkRequest {
	t.Helper()
	request, err := recorder.Record(context.Background(), models.RecordWorkRequest{
		UserID:      uuid.New().String(),
		WorkspaceID: uuid.New().String(),
		BasketID:    uuid.New().String(),
		AgentKind:   "research",
		WorkMode:    "deep_dive",
		IsTrial:     true,
	})
	require.NoError(t, err)
	return request
}

func TestWorkRequestRecorder_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewWorkRequestRecorder(client.Client)
	ctx := context.Background()

	t.Run("records pending request with payload", func(t *testing.T) {
		request, err := recorder.Record(ctx, models.RecordWorkRequest{
			UserID:      "user-1",
			WorkspaceID: "ws-1",
			BasketID:    "basket-1",
			AgentKind:   "content",
			WorkMode:    "draft_document",
			Payload:     map[string]any{"topic": "quarterly report"},
			IsTrial:     true,
			Priority:    5,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, request.ID)
		assert.Equal(t, workrequest.StatusPending, request.Status)
		assert.Equal(t, workrequest.AgentKindContent, request.AgentKind)
		assert.Equal(t, "draft_document", request.WorkMode)
		assert.Equal(t, 5, request.Priority)
		assert.True(t, request.IsTrial)

		stored, err := recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, "quarterly report", stored.Payload["topic"])
	})

	t.Run("validates required fields", func(t *testing.T) {
		cases := []struct {
			name string
			req  models.RecordWorkRequest
		}{
			{"missing user", models.RecordWorkRequest{WorkspaceID: "w", BasketID: "b", AgentKind: "research", WorkMode: "m"}},
			{"missing workspace", models.RecordWorkRequest{UserID: "u", BasketID: "b", AgentKind: "research", WorkMode: "m"}},
			{"missing basket", models.RecordWorkRequest{UserID: "u", WorkspaceID: "w", AgentKind: "research", WorkMode: "m"}},
			{"unknown agent kind", models.RecordWorkRequest{UserID: "u", WorkspaceID: "w", BasketID: "b", AgentKind: "janitor", WorkMode: "m"}},
			{"missing work mode", models.RecordWorkRequest{UserID: "u", WorkspaceID: "w", BasketID: "b", AgentKind: "research"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := recorder.Record(ctx, tc.req)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("get unknown request returns not found", func(t *testing.T) {
		_, err := recorder.Get(ctx, uuid.New().String())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestWorkRequestRecorder_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	recorder := NewWorkRequestRecorder(client.Client)
	ctx := context.Background()

	t.Run("pending to running to completed", func(t *testing.T) {
		request := recordRequest(t, recorder)

		require.NoError(t, recorder.MarkRunning(ctx, request.ID))
		stored, err := recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.StatusRunning, stored.Status)

		require.NoError(t, recorder.MarkCompleted(ctx, request.ID, "produced 3 outputs"))
		stored, err = recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.StatusCompleted, stored.Status)
		assert.Equal(t, "produced 3 outputs", stored.ResultSummary)
	})

	t.Run("pending to failed records error message", func(t *testing.T) {
		request := recordRequest(t, recorder)

		require.NoError(t, recorder.MarkFailed(ctx, request.ID, "substrate unavailable"))
		stored, err := recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.StatusFailed, stored.Status)
		assert.Equal(t, "substrate unavailable", stored.ErrorMessage)
	})

	t.Run("same-status transition is a no-op", func(t *testing.T) {
		request := recordRequest(t, recorder)
		require.NoError(t, recorder.MarkCompleted(ctx, request.ID, "first"))

		// The close-out retry must not error or overwrite the summary.
		require.NoError(t, recorder.MarkCompleted(ctx, request.ID, "second"))
		stored, err := recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", stored.ResultSummary)
	})

	t.Run("terminal status cannot be rewritten", func(t *testing.T) {
		request := recordRequest(t, recorder)
		require.NoError(t, recorder.MarkCompleted(ctx, request.ID, "done"))

		err := recorder.MarkFailed(ctx, request.ID, "late failure")
		assert.True(t, errors.Is(err, ErrConflict))

		err = recorder.MarkRunning(ctx, request.ID)
		assert.True(t, errors.Is(err, ErrConflict))

		stored, err := recorder.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.StatusCompleted, stored.Status)
	})

	t.Run("transition on unknown request returns not found", func(t *testing.T) {
		err := recorder.MarkRunning(ctx, uuid.New().String())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
