package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/google/uuid"
)

// SessionRegistry owns AgentSession rows: one persistent conversation per
// (basket, agent_kind). Specialist sessions are parented to the basket's
// thinking-partner session, forming a fan-out tree of depth 1.
//
// No other component writes sessions.
type SessionRegistry struct {
	client *ent.Client
}

// NewSessionRegistry creates a new SessionRegistry.
func NewSessionRegistry(client *ent.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

// GetOrCreate returns the session for (basket, agentKind), creating it on
// first use. For non-thinking-partner kinds the basket's thinking-partner
// session is ensured first and becomes the parent. Concurrent creates
// resolve by re-reading the unique-index winner.
func (r *SessionRegistry) GetOrCreate(ctx context.Context, basketID, workspaceID string, kind agent.Kind, createdBy string) (*ent.AgentSession, error) {
	if basketID == "" {
		return nil, NewValidationError("basket_id", "required")
	}
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if !agent.ValidKind(string(kind)) {
		return nil, NewValidationError("agent_kind", fmt.Sprintf("unknown agent kind %q", kind))
	}

	existing, err := r.client.AgentSession.Query().
		Where(
			agentsession.BasketID(basketID),
			agentsession.AgentKindEQ(agentsession.AgentKind(kind)),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var parentID string
	if kind != agent.KindThinkingPartner {
		parent, err := r.GetOrCreate(ctx, basketID, workspaceID, agent.KindThinkingPartner, createdBy)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure thinking-partner parent: %w", err)
		}
		parentID = parent.ID
	}

	builder := r.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetBasketID(basketID).
		SetWorkspaceID(workspaceID).
		SetAgentKind(agentsession.AgentKind(kind))
	if parentID != "" {
		builder.SetParentSessionID(parentID).SetCreatedBySessionID(parentID)
	}
	if createdBy != "" {
		builder.SetCreatedBy(createdBy)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent create on the same (basket, agent_kind); the
			// winner's row is authoritative.
			winner, rerr := r.client.AgentSession.Query().
				Where(
					agentsession.BasketID(basketID),
					agentsession.AgentKindEQ(agentsession.AgentKind(kind)),
				).
				Only(ctx)
			if rerr != nil {
				return nil, fmt.Errorf("failed to re-read session after concurrent create: %w", rerr)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("Agent session created",
		"session_id", session.ID,
		"basket_id", basketID,
		"agent_kind", kind,
		"parent_session_id", parentID)
	return session, nil
}

// Get returns a session by ID.
func (r *SessionRegistry) Get(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := r.client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// SaveConversation persists the provider handle and conversation snapshot
// after a run.
func (r *SessionRegistry) SaveConversation(ctx context.Context, sessionID string, snap *models.ConversationSnapshot) error {
	if snap == nil {
		return NewValidationError("snapshot", "required")
	}
	snap.UpdatedAt = time.Now().UTC()
	state, err := snap.ToState()
	if err != nil {
		return err
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := r.client.AgentSession.UpdateOneID(sessionID).SetState(state)
	if snap.ProviderSessionID != "" {
		update.SetProviderSessionID(snap.ProviderSessionID)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

// Snapshot decodes a session's conversation state.
func (r *SessionRegistry) Snapshot(session *ent.AgentSession) (*models.ConversationSnapshot, error) {
	snap, err := models.SnapshotFromState(session.State)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", session.ID, err)
	}
	if snap.ProviderSessionID == "" && session.ProviderSessionID != nil {
		snap.ProviderSessionID = *session.ProviderSessionID
	}
	return snap, nil
}

// Acquire marks the session as executing under ticketID. Execution on a
// session is serialized: the call fails with ErrConflict while another
// live ticket holds the claim. Claims older than staleAfter are presumed
// dead (crashed pod) and may be stolen.
func (r *SessionRegistry) Acquire(ctx context.Context, sessionID, ticketID string, staleAfter time.Duration) error {
	staleBefore := time.Now().Add(-staleAfter)
	count, err := r.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.Or(
				agentsession.LastClaimedByIsNil(),
				agentsession.LastClaimedBy(ticketID),
				agentsession.LastClaimedAtLT(staleBefore),
			),
		).
		SetLastClaimedBy(ticketID).
		SetLastClaimedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire session: %w", err)
	}
	if count > 0 {
		return nil
	}

	exists, err := r.client.AgentSession.Query().
		Where(agentsession.IDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	return fmt.Errorf("%w: session %s is held by another ticket", ErrConflict, sessionID)
}

// Release clears the claim if ticketID still holds it. Releasing a claim
// that was stolen or already released is a no-op.
func (r *SessionRegistry) Release(ctx context.Context, sessionID, ticketID string) error {
	_, err := r.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.LastClaimedBy(ticketID),
		).
		ClearLastClaimedBy().
		ClearLastClaimedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release session: %w", err)
	}
	return nil
}
