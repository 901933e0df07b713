package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestSessionRegistry_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	registry := NewSessionRegistry(client.Client)
	ctx := context.Background()

	t.Run("thinking partner session has no parent", func(t *testing.T) {
		basketID := uuid.New().String()
		session, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindThinkingPartner, "user-1")
		require.NoError(t, err)

		assert.Equal(t, agentsession.AgentKindThinkingPartner, session.AgentKind)
		assert.Nil(t, session.ParentSessionID)
		assert.Equal(t, basketID, session.BasketID)
	})

	t.Run("specialist session is parented to the thinking partner", func(t *testing.T) {
		basketID := uuid.New().String()
		session, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindResearch, "user-1")
		require.NoError(t, err)

		require.NotNil(t, session.ParentSessionID)
		parent, err := registry.Get(ctx, *session.ParentSessionID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.AgentKindThinkingPartner, parent.AgentKind)
		assert.Equal(t, basketID, parent.BasketID)
		require.NotNil(t, session.CreatedBySessionID)
		assert.Equal(t, parent.ID, *session.CreatedBySessionID)
	})

	t.Run("specialists in one basket share the thinking partner", func(t *testing.T) {
		basketID := uuid.New().String()
		research, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindResearch, "user-1")
		require.NoError(t, err)
		content, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindContent, "user-1")
		require.NoError(t, err)

		require.NotNil(t, research.ParentSessionID)
		require.NotNil(t, content.ParentSessionID)
		assert.Equal(t, *research.ParentSessionID, *content.ParentSessionID)
	})

	t.Run("second call returns the existing session", func(t *testing.T) {
		basketID := uuid.New().String()
		first, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindReporting, "user-1")
		require.NoError(t, err)
		second, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindReporting, "user-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("concurrent creates converge on one session", func(t *testing.T) {
		basketID := uuid.New().String()
		const callers = 8

		var wg sync.WaitGroup
		ids := make([]string, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				session, err := registry.GetOrCreate(ctx, basketID, "ws-1", agent.KindResearch, "user-1")
				if err != nil {
					errs[i] = err
					return
				}
				ids[i] = session.ID
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}

		count, err := client.AgentSession.Query().
			Where(
				agentsession.BasketID(basketID),
				agentsession.AgentKindEQ(agentsession.AgentKindResearch),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := registry.GetOrCreate(ctx, "", "ws-1", agent.KindResearch, "")
		assert.True(t, IsValidationError(err))

		_, err = registry.GetOrCreate(ctx, uuid.New().String(), "", agent.KindResearch, "")
		assert.True(t, IsValidationError(err))

		_, err = registry.GetOrCreate(ctx, uuid.New().String(), "ws-1", agent.Kind("janitor"), "")
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionRegistry_Conversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	registry := NewSessionRegistry(client.Client)
	ctx := context.Background()

	t.Run("fresh session decodes to an empty snapshot", func(t *testing.T) {
		session, err := registry.GetOrCreate(ctx, uuid.New().String(), "ws-1", agent.KindThinkingPartner, "user-1")
		require.NoError(t, err)

		snap, err := registry.Snapshot(session)
		require.NoError(t, err)
		assert.Empty(t, snap.Messages)
		assert.Empty(t, snap.ProviderSessionID)
		assert.Zero(t, snap.TurnCount)
	})

	t.Run("save and reload round-trips messages", func(t *testing.T) {
		session, err := registry.GetOrCreate(ctx, uuid.New().String(), "ws-1", agent.KindResearch, "user-1")
		require.NoError(t, err)

		snap := &models.ConversationSnapshot{
			ProviderSessionID: "prov-abc",
			TurnCount:         2,
			Messages: []agent.ConversationMessage{
				{Role: "user", Content: "find recent papers on retrieval"},
				{Role: "assistant", Content: "Found three relevant papers."},
			},
		}
		require.NoError(t, registry.SaveConversation(ctx, session.ID, snap))

		reloaded, err := registry.Get(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.ProviderSessionID)
		assert.Equal(t, "prov-abc", *reloaded.ProviderSessionID)

		decoded, err := registry.Snapshot(reloaded)
		require.NoError(t, err)
		assert.Equal(t, 2, decoded.TurnCount)
		require.Len(t, decoded.Messages, 2)
		assert.Equal(t, "user", decoded.Messages[0].Role)
		assert.Equal(t, "Found three relevant papers.", decoded.Messages[1].Content)
		assert.False(t, decoded.UpdatedAt.IsZero())
	})

	t.Run("empty provider handle keeps the existing one", func(t *testing.T) {
		session, err := registry.GetOrCreate(ctx, uuid.New().String(), "ws-1", agent.KindContent, "user-1")
		require.NoError(t, err)

		require.NoError(t, registry.SaveConversation(ctx, session.ID, &models.ConversationSnapshot{
			ProviderSessionID: "prov-1",
			TurnCount:         1,
		}))
		require.NoError(t, registry.SaveConversation(ctx, session.ID, &models.ConversationSnapshot{
			TurnCount: 2,
		}))

		reloaded, err := registry.Get(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.ProviderSessionID)
		assert.Equal(t, "prov-1", *reloaded.ProviderSessionID)

		snap, err := registry.Snapshot(reloaded)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.TurnCount)
		// The column value backfills the snapshot's empty handle.
		assert.Equal(t, "prov-1", snap.ProviderSessionID)
	})

	t.Run("save on unknown session returns not found", func(t *testing.T) {
		err := registry.SaveConversation(ctx, uuid.New().String(), &models.ConversationSnapshot{})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("nil snapshot is rejected", func(t *testing.T) {
		err := registry.SaveConversation(ctx, uuid.New().String(), nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionRegistry_AcquireRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	registry := NewSessionRegistry(client.Client)
	ctx := context.Background()

	newSession := func(t *testing.T) string {
		t.Helper()
		session, err := registry.GetOrCreate(ctx, uuid.New().String(), "ws-1", agent.KindResearch, "user-1")
		require.NoError(t, err)
		return session.ID
	}

	t.Run("acquire then release", func(t *testing.T) {
		sessionID := newSession(t)
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-1", time.Hour))
		require.NoError(t, registry.Release(ctx, sessionID, "ticket-1"))

		// A different ticket can claim after release.
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-2", time.Hour))
	})

	t.Run("acquire is reentrant for the holding ticket", func(t *testing.T) {
		sessionID := newSession(t)
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-1", time.Hour))
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-1", time.Hour))
	})

	t.Run("held session conflicts for other tickets", func(t *testing.T) {
		sessionID := newSession(t)
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-1", time.Hour))

		err := registry.Acquire(ctx, sessionID, "ticket-2", time.Hour)
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("stale claims can be stolen", func(t *testing.T) {
		sessionID := newSession(t)
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-dead", time.Hour))

		// Age the claim past the steal window.
		err := client.AgentSession.UpdateOneID(sessionID).
			SetLastClaimedAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-live", time.Hour))

		session, err := registry.Get(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, session.LastClaimedBy)
		assert.Equal(t, "ticket-live", *session.LastClaimedBy)
	})

	t.Run("release by a non-holder is a no-op", func(t *testing.T) {
		sessionID := newSession(t)
		require.NoError(t, registry.Acquire(ctx, sessionID, "ticket-1", time.Hour))
		require.NoError(t, registry.Release(ctx, sessionID, "ticket-other"))

		session, err := registry.Get(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, session.LastClaimedBy)
		assert.Equal(t, "ticket-1", *session.LastClaimedBy)
	})

	t.Run("acquire on unknown session returns not found", func(t *testing.T) {
		err := registry.Acquire(ctx, uuid.New().String(), "ticket-1", time.Hour)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
