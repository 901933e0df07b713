package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/workticket"
)

func TestQueueWork(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("admits a pending ticket and returns the stream URL", func(t *testing.T) {
		userID := uuid.New().String()
		token := signUserToken(t, userID, "dev@example.com")
		body := submitBody()
		body.Priority = 5

		resp := f.request(http.MethodPost, "/api/work/queue", token, body)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		var out WorkQueuedResponse
		f.decode(resp, &out)
		assert.NotEmpty(t, out.TicketID)
		assert.NotEmpty(t, out.WorkRequestID)
		assert.Equal(t, testPublicURL+"/api/work/tickets/"+out.TicketID+"/stream", out.StreamURL)
		assert.True(t, out.IsTrialRequest)
		assert.Equal(t, testTrialCap-1, out.RemainingTrials)

		request, err := f.client.WorkRequest.Get(context.Background(), out.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, userID, request.UserID)
		assert.Equal(t, body.BasketID, request.BasketID)
		assert.Equal(t, "Map the competitive landscape", request.Payload["task"])
		assert.Contains(t, request.Payload, "parameters")

		ticket := f.getTicket(t, out.TicketID)
		assert.Equal(t, workticket.StatusPending, ticket.Status)
		assert.Equal(t, out.WorkRequestID, ticket.WorkRequestID)
		assert.Equal(t, body.BasketID, ticket.BasketID)
		assert.Equal(t, 5, ticket.Priority)
		assert.NotEmpty(t, ticket.AgentSessionID)

		// Queued work waits for the pool; nothing runs inline.
		assert.Empty(t, f.exec.ranTickets())
	})

	t.Run("remaining trials count down to zero", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		token := signUserToken(t, userID, "")

		for want := testTrialCap - 1; want >= 0; want-- {
			body := submitBody()
			body.WorkspaceID = workspaceID
			out := f.queueWork(t, token, body)
			assert.True(t, out.IsTrialRequest)
			assert.Equal(t, want, out.RemainingTrials)
		}
	})

	t.Run("exhausted allowance is a permission denial", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		f.seedTrialRequests(t, userID, workspaceID, testTrialCap)

		body := submitBody()
		body.WorkspaceID = workspaceID
		resp := f.request(http.MethodPost, "/api/work/queue", signUserToken(t, userID, ""), body)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		detail := f.readError(resp)
		assert.Equal(t, kindPermissionDenied, detail.Kind)
		assert.EqualValues(t, testTrialCap, detail.Details["trial_cap"])
		assert.EqualValues(t, testTrialCap, detail.Details["trials_used"])
	})

	t.Run("subscription bypasses the trial gate", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		_, err := f.client.AgentSubscription.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetWorkspaceID(workspaceID).
			SetAgentKind(agentsubscription.AgentKindResearch).
			SetStatus(agentsubscription.StatusActive).
			Save(context.Background())
		require.NoError(t, err)
		f.seedTrialRequests(t, userID, workspaceID, testTrialCap)

		body := submitBody()
		body.WorkspaceID = workspaceID
		out := f.queueWork(t, signUserToken(t, userID, ""), body)
		assert.False(t, out.IsTrialRequest)
	})

	t.Run("missing basket is a validation error", func(t *testing.T) {
		body := submitBody()
		body.BasketID = ""
		resp := f.request(http.MethodPost, "/api/work/queue", signUserToken(t, uuid.New().String(), ""), body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		detail := f.readError(resp)
		assert.Equal(t, kindValidation, detail.Kind)
		assert.Equal(t, "basket_id", detail.Details["field"])
	})

	t.Run("unknown agent kind is a validation error", func(t *testing.T) {
		body := submitBody()
		body.AgentKind = "oracle"
		resp := f.request(http.MethodPost, "/api/work/queue", signUserToken(t, uuid.New().String(), ""), body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "agent_kind", f.readError(resp).Details["field"])
	})

	t.Run("missing work mode is a validation error", func(t *testing.T) {
		body := submitBody()
		body.WorkMode = ""
		resp := f.request(http.MethodPost, "/api/work/queue", signUserToken(t, uuid.New().String(), ""), body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "work_mode", f.readError(resp).Details["field"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := f.request(http.MethodPost, "/api/work/queue", signUserToken(t, uuid.New().String(), ""), "{{{")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, kindValidation, f.readError(resp).Kind)
	})
}

func TestGetTicket(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	t.Run("returns the ticket", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())

		resp := f.request(http.MethodGet, "/api/work/tickets/"+queued.TicketID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out TicketResponse
		f.decode(resp, &out)
		assert.Equal(t, queued.TicketID, out.ID)
		assert.Equal(t, queued.WorkRequestID, out.WorkRequestID)
		assert.Equal(t, "research", out.AgentKind)
		assert.Equal(t, string(workticket.StatusPending), out.Status)
		assert.Nil(t, out.StartedAt)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/api/work/tickets/"+uuid.New().String(), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, kindNotFound, f.readError(resp).Kind)
	})
}
