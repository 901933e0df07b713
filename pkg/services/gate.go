package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
)

// QuotaGate decides whether a user may start new work: an active
// subscription grants unlimited access to the agent kind; otherwise a
// workspace-wide trial allowance applies.
//
// The gate is a pure read. Two concurrent checks can both observe
// count = cap-1 and admit, so the cap is a soft ceiling of cap+1 under
// burst; the recorder's insert is what actually consumes the allowance.
type QuotaGate struct {
	client   *ent.Client
	trialCap int
}

// NewQuotaGate creates a new QuotaGate with the given trial request cap.
func NewQuotaGate(client *ent.Client, trialCap int) *QuotaGate {
	return &QuotaGate{client: client, trialCap: trialCap}
}

// Check permits or denies new work for (user, workspace, agentKind).
// Denial is a *PermissionDeniedError carrying the cap and observed count.
func (g *QuotaGate) Check(ctx context.Context, userID, workspaceID string, kind agent.Kind) (*models.QuotaDecision, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if !agent.ValidKind(string(kind)) {
		return nil, NewValidationError("agent_kind", fmt.Sprintf("unknown agent kind %q", kind))
	}

	subscribed, err := g.client.AgentSubscription.Query().
		Where(
			agentsubscription.UserID(userID),
			agentsubscription.WorkspaceID(workspaceID),
			agentsubscription.AgentKindEQ(agentsubscription.AgentKind(kind)),
			agentsubscription.StatusEQ(agentsubscription.StatusActive),
			agentsubscription.Or(
				agentsubscription.ExpiresAtIsNil(),
				agentsubscription.ExpiresAtGT(time.Now()),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if subscribed {
		return &models.QuotaDecision{Subscribed: true}, nil
	}

	// Failed requests do not consume the allowance.
	count, err := g.client.WorkRequest.Query().
		Where(
			workrequest.UserID(userID),
			workrequest.WorkspaceID(workspaceID),
			workrequest.IsTrial(true),
			workrequest.StatusIn(
				workrequest.StatusPending,
				workrequest.StatusRunning,
				workrequest.StatusCompleted,
			),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count trial requests: %w", err)
	}

	if count >= g.trialCap {
		slog.Info("Trial allowance exhausted",
			"user_id", userID,
			"workspace_id", workspaceID,
			"agent_kind", kind,
			"count", count,
			"cap", g.trialCap)
		return nil, &PermissionDeniedError{
			AgentKind: string(kind),
			Cap:       g.trialCap,
			Count:     count,
		}
	}

	return &models.QuotaDecision{
		IsTrial:         true,
		RemainingTrials: g.trialCap - count,
	}, nil
}
