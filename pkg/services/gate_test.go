package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/agent"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func createSubscription(t *testing.T, client *ent.Client, userID, workspaceID string, kind agentsubscription.AgentKind, status agentsubscription.Status, expiresAt *time.Time) {
	t.Helper()
	builder := client.AgentSubscription.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetWorkspaceID(workspaceID).
		SetAgentKind(kind).
		SetStatus(status)
	if expiresAt != nil {
		builder.SetExpiresAt(*expiresAt)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

func createTrialRequest(t *testing.T, client *ent.Client, userID, workspaceID string, status workrequest.Status) {
	t.Helper()
	_, err := client.WorkRequest.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetWorkspaceID(workspaceID).
		SetBasketID(uuid.New().String()).
		SetAgentKind(workrequest.AgentKindResearch).
		SetWorkMode("deep_dive").
		SetIsTrial(true).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
}

func TestQuotaGate_Check(t *testing.T) {
	client := testdb.NewTestClient(t)
	gate := NewQuotaGate(client.Client, 3)
	ctx := context.Background()

	t.Run("active subscription permits without touching trials", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		createSubscription(t, client.Client, userID, workspaceID,
			agentsubscription.AgentKindResearch, agentsubscription.StatusActive, nil)
		// Exhaust the trial allowance; the subscription must still permit.
		for i := 0; i < 3; i++ {
			createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusCompleted)
		}

		decision, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.NoError(t, err)
		assert.True(t, decision.Subscribed)
		assert.False(t, decision.IsTrial)
	})

	t.Run("subscription for another kind does not permit", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		createSubscription(t, client.Client, userID, workspaceID,
			agentsubscription.AgentKindContent, agentsubscription.StatusActive, nil)

		decision, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.NoError(t, err)
		assert.False(t, decision.Subscribed)
		assert.True(t, decision.IsTrial)
	})

	t.Run("cancelled or expired subscriptions fall back to trial", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		expired := time.Now().Add(-time.Hour)
		createSubscription(t, client.Client, userID, workspaceID,
			agentsubscription.AgentKindResearch, agentsubscription.StatusCancelled, nil)
		createSubscription(t, client.Client, userID, workspaceID,
			agentsubscription.AgentKindContent, agentsubscription.StatusActive, &expired)

		decision, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.NoError(t, err)
		assert.True(t, decision.IsTrial)

		decision, err = gate.Check(ctx, userID, workspaceID, agent.KindContent)
		require.NoError(t, err)
		assert.True(t, decision.IsTrial)
	})

	t.Run("trial permit reports remaining allowance", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusCompleted)
		createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusRunning)

		decision, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.NoError(t, err)
		assert.True(t, decision.IsTrial)
		assert.Equal(t, 1, decision.RemainingTrials)
	})

	t.Run("failed requests do not consume the allowance", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		for i := 0; i < 5; i++ {
			createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusFailed)
		}

		decision, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.NoError(t, err)
		assert.Equal(t, 3, decision.RemainingTrials)
	})

	t.Run("exhausted allowance is denied with cap and count", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		for i := 0; i < 3; i++ {
			createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusCompleted)
		}

		_, err := gate.Check(ctx, userID, workspaceID, agent.KindResearch)
		require.Error(t, err)

		var denied *PermissionDeniedError
		require.True(t, errors.As(err, &denied))
		assert.Equal(t, 3, denied.Cap)
		assert.Equal(t, 3, denied.Count)
		assert.Equal(t, "research", denied.AgentKind)
	})

	t.Run("trial usage is workspace scoped", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceA := uuid.New().String()
		workspaceB := uuid.New().String()
		for i := 0; i < 3; i++ {
			createTrialRequest(t, client.Client, userID, workspaceA, workrequest.StatusCompleted)
		}

		_, err := gate.Check(ctx, userID, workspaceA, agent.KindResearch)
		require.Error(t, err)

		decision, err := gate.Check(ctx, userID, workspaceB, agent.KindResearch)
		require.NoError(t, err)
		assert.Equal(t, 3, decision.RemainingTrials)
	})

	t.Run("rejects unknown agent kind", func(t *testing.T) {
		_, err := gate.Check(ctx, uuid.New().String(), uuid.New().String(), agent.Kind("janitor"))
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		_, err := gate.Check(ctx, "", uuid.New().String(), agent.KindResearch)
		assert.True(t, IsValidationError(err))

		_, err = gate.Check(ctx, uuid.New().String(), "", agent.KindResearch)
		assert.True(t, IsValidationError(err))
	})
}

func TestQuotaGate_ZeroCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	gate := NewQuotaGate(client.Client, 0)
	ctx := context.Background()

	// With a zero cap only subscribers get through.
	_, err := gate.Check(ctx, uuid.New().String(), uuid.New().String(), agent.KindResearch)
	var denied *PermissionDeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, 0, denied.Cap)
	assert.Equal(t, 0, denied.Count)
}
