package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/tools"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func newAdmissionService(client *ent.Client, trialCap int) *AdmissionService {
	return NewAdmissionService(
		NewQuotaGate(client, trialCap),
		NewWorkRequestRecorder(client),
		NewSessionRegistry(client),
		NewTicketService(client),
	)
}

func TestAdmissionService_Admit(t *testing.T) {
	client := testdb.NewTestClient(t)
	admissions := newAdmissionService(client.Client, 3)
	ctx := context.Background()

	t.Run("admits work end to end", func(t *testing.T) {
		basketID := uuid.New().String()
		admission, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID:      uuid.New().String(),
			WorkspaceID: uuid.New().String(),
			BasketID:    basketID,
			AgentKind:   "research",
			WorkMode:    "deep_dive",
			Payload:     map[string]any{"question": "what changed in Q2"},
			Priority:    1,
		})
		require.NoError(t, err)

		assert.Equal(t, workrequest.StatusPending, admission.Request.Status)
		assert.Equal(t, workticket.StatusPending, admission.Ticket.Status)
		assert.Equal(t, admission.Request.ID, admission.Ticket.WorkRequestID)
		assert.Equal(t, admission.Session.ID, admission.Ticket.AgentSessionID)
		assert.Equal(t, agentsession.AgentKindResearch, admission.Session.AgentKind)
		assert.Equal(t, basketID, admission.Session.BasketID)
		assert.True(t, admission.IsTrial)
		assert.Equal(t, 2, admission.RemainingTrials)
		assert.Equal(t, "what changed in Q2", admission.Request.Payload["question"])
	})

	t.Run("repeat admissions reuse the session", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		basketID := uuid.New().String()

		first, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID: userID, WorkspaceID: workspaceID, BasketID: basketID,
			AgentKind: "content", WorkMode: "draft_document",
		})
		require.NoError(t, err)
		second, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID: userID, WorkspaceID: workspaceID, BasketID: basketID,
			AgentKind: "content", WorkMode: "draft_document",
		})
		require.NoError(t, err)

		assert.Equal(t, first.Session.ID, second.Session.ID)
		assert.NotEqual(t, first.Ticket.ID, second.Ticket.ID)
	})

	t.Run("project and parent ticket fold into the payload", func(t *testing.T) {
		admission, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID:         uuid.New().String(),
			WorkspaceID:    uuid.New().String(),
			BasketID:       uuid.New().String(),
			ProjectID:      "proj-7",
			AgentKind:      "reporting",
			WorkMode:       "compile_report",
			Payload:        map[string]any{"sections": float64(4)},
			ParentTicketID: "ticket-parent",
		})
		require.NoError(t, err)

		assert.Equal(t, "proj-7", admission.Request.Payload["project_id"])
		assert.Equal(t, "ticket-parent", admission.Request.Payload["parent_ticket_id"])
		assert.EqualValues(t, 4, admission.Request.Payload["sections"])
	})

	t.Run("quota denial short-circuits before any row exists", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		for i := 0; i < 3; i++ {
			createTrialRequest(t, client.Client, userID, workspaceID, workrequest.StatusCompleted)
		}

		_, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID: userID, WorkspaceID: workspaceID, BasketID: uuid.New().String(),
			AgentKind: "research", WorkMode: "deep_dive",
		})
		var denied *PermissionDeniedError
		require.True(t, errors.As(err, &denied))

		// Nothing is recorded for a denied admission.
		count, cerr := client.WorkRequest.Query().
			Where(
				workrequest.UserID(userID),
				workrequest.StatusEQ(workrequest.StatusPending),
			).
			Count(ctx)
		require.NoError(t, cerr)
		assert.Zero(t, count)
	})

	t.Run("subscribed admission is not a trial", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		createSubscription(t, client.Client, userID, workspaceID,
			agentsubscription.AgentKindResearch, agentsubscription.StatusActive, nil)

		admission, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID: userID, WorkspaceID: workspaceID, BasketID: uuid.New().String(),
			AgentKind: "research", WorkMode: "deep_dive",
		})
		require.NoError(t, err)
		assert.False(t, admission.IsTrial)
		assert.False(t, admission.Request.IsTrial)
	})

	t.Run("validates basket before hitting the gate", func(t *testing.T) {
		_, err := admissions.Admit(ctx, models.QueueWorkRequest{
			UserID: uuid.New().String(), WorkspaceID: uuid.New().String(),
			AgentKind: "research", WorkMode: "deep_dive",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAdmissionService_AdmitWork(t *testing.T) {
	client := testdb.NewTestClient(t)
	admissions := newAdmissionService(client.Client, 3)
	ctx := context.Background()

	// The tool-layer admitter returns only the ticket ID.
	ticketID, err := admissions.AdmitWork(ctx, tools.AdmitWorkInput{
		WorkspaceID:    uuid.New().String(),
		BasketID:       uuid.New().String(),
		UserID:         uuid.New().String(),
		AgentKind:      "research",
		WorkMode:       "deep_dive",
		Payload:        map[string]any{"task": "collect sources"},
		ParentTicketID: "ticket-tp",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ticketID)

	ticket, err := client.WorkTicket.Get(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, workticket.StatusPending, ticket.Status)

	request, err := client.WorkRequest.Get(ctx, ticket.WorkRequestID)
	require.NoError(t, err)
	assert.Equal(t, "ticket-tp", request.Payload["parent_ticket_id"])
	assert.Equal(t, "collect sources", request.Payload["task"])
}
