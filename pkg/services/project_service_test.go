package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/pkg/models"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestProjectService(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("create defaults to manual promotion", func(t *testing.T) {
		proj, err := projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID: uuid.New().String(),
			BasketID:    uuid.New().String(),
			Name:        "Market scan",
		})
		require.NoError(t, err)
		assert.Equal(t, project.PromotionModeManual, proj.PromotionMode)
		assert.Empty(t, proj.AutoPromoteTypes)
	})

	t.Run("create with auto promotion settings", func(t *testing.T) {
		proj, err := projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID:      uuid.New().String(),
			BasketID:         uuid.New().String(),
			Name:             "Competitor briefs",
			Description:      "Weekly competitor analysis",
			PromotionMode:    "auto",
			AutoPromoteTypes: []string{"finding", "insight"},
			GovernancePolicy: map[string]any{"review_window_hours": float64(48)},
			CreatedBy:        "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, project.PromotionModeAuto, proj.PromotionMode)
		assert.Equal(t, []string{"finding", "insight"}, proj.AutoPromoteTypes)
		assert.EqualValues(t, 48, proj.GovernancePolicy["review_window_hours"])
	})

	t.Run("basket holds at most one project", func(t *testing.T) {
		basketID := uuid.New().String()
		_, err := projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID: "ws-1", BasketID: basketID, Name: "first",
		})
		require.NoError(t, err)

		_, err = projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID: "ws-1", BasketID: basketID, Name: "second",
		})
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("get by basket", func(t *testing.T) {
		basketID := uuid.New().String()
		created, err := projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID: "ws-1", BasketID: basketID, Name: "lookup",
		})
		require.NoError(t, err)

		found, err := projects.GetByBasket(ctx, basketID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = projects.GetByBasket(ctx, uuid.New().String())
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list by workspace newest first", func(t *testing.T) {
		workspaceID := uuid.New().String()
		for _, name := range []string{"alpha", "beta", "gamma"} {
			_, err := projects.Create(ctx, models.CreateProjectRequest{
				WorkspaceID: workspaceID, BasketID: uuid.New().String(), Name: name,
			})
			require.NoError(t, err)
		}

		listed, err := projects.ListByWorkspace(ctx, workspaceID)
		require.NoError(t, err)
		require.Len(t, listed, 3)

		other, err := projects.ListByWorkspace(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := projects.Create(ctx, models.CreateProjectRequest{BasketID: "b", Name: "n"})
		assert.True(t, IsValidationError(err))

		_, err = projects.Create(ctx, models.CreateProjectRequest{WorkspaceID: "w", Name: "n"})
		assert.True(t, IsValidationError(err))

		_, err = projects.Create(ctx, models.CreateProjectRequest{WorkspaceID: "w", BasketID: "b"})
		assert.True(t, IsValidationError(err))

		_, err = projects.Create(ctx, models.CreateProjectRequest{
			WorkspaceID: "w", BasketID: "b", Name: "n", PromotionMode: "sometimes",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("get unknown project returns not found", func(t *testing.T) {
		_, err := projects.Get(ctx, uuid.New().String())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
