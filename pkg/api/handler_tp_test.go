package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
)

func chatBody(message string) TPChatRequest {
	return TPChatRequest{
		WorkspaceID: uuid.New().String(),
		BasketID:    uuid.New().String(),
		Message:     message,
	}
}

func TestTPChat(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	t.Run("answers inline with the turn's tool activity", func(t *testing.T) {
		f.exec.setRun(func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult {
			f.deps.Broadcaster.Emit(ctx, ticket.ID, progress.Event{
				Type:     progress.EventToolStart,
				StepName: "read_context",
			})
			f.deps.Broadcaster.Emit(ctx, ticket.ID, progress.Event{
				Type:     progress.EventToolResult,
				StepName: "read_context",
				Payload:  map[string]any{"blocks": 3},
			})
			return &queue.ExecutionResult{
				Status:       workticket.StatusCompleted,
				ResponseText: "Here is my read on the market.",
			}
		})
		defer f.exec.setRun(nil)

		resp := f.request(http.MethodPost, "/api/tp/chat", token, chatBody("What do you make of the market?"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out TPChatResponse
		f.decode(resp, &out)
		assert.Equal(t, "Here is my read on the market.", out.Reply)
		assert.Equal(t, string(workticket.StatusCompleted), out.Status)

		// The claimed and completed frames are lifecycle noise for a chat
		// caller; only the tool calls come back.
		require.Len(t, out.ToolActivity, 2)
		assert.Equal(t, progress.EventToolStart, out.ToolActivity[0].Type)
		assert.Equal(t, progress.EventToolResult, out.ToolActivity[1].Type)
		assert.Equal(t, "read_context", out.ToolActivity[1].StepName)

		// Nobody streams an inline turn; its buffer is gone.
		assert.Equal(t, 0, f.hub.ActiveBuffers())

		// A chat turn is a full work request against the TP session.
		request, err := f.client.WorkRequest.Get(context.Background(), out.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.AgentKindThinkingPartner, request.AgentKind)
		assert.Equal(t, "chat", request.WorkMode)
		assert.Equal(t, "What do you make of the market?", request.Payload["task"])
	})

	t.Run("missing message", func(t *testing.T) {
		resp := f.request(http.MethodPost, "/api/tp/chat", token, chatBody(""))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		detail := f.readError(resp)
		assert.Equal(t, kindValidation, detail.Kind)
		assert.Equal(t, "message is required", detail.Message)
	})

	t.Run("chat turns consume the trial allowance", func(t *testing.T) {
		userID := uuid.New().String()
		workspaceID := uuid.New().String()
		f.seedTrialRequests(t, userID, workspaceID, testTrialCap)

		body := chatBody("One more question")
		body.WorkspaceID = workspaceID

		resp := f.request(http.MethodPost, "/api/tp/chat", signUserToken(t, userID, ""), body)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, kindPermissionDenied, f.readError(resp).Kind)
	})

	t.Run("successive turns share the basket's TP session", func(t *testing.T) {
		body := chatBody("First question")

		resp := f.request(http.MethodPost, "/api/tp/chat", token, body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var first TPChatResponse
		f.decode(resp, &first)

		body.Message = "Second question"
		resp = f.request(http.MethodPost, "/api/tp/chat", token, body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var second TPChatResponse
		f.decode(resp, &second)

		firstTicket := f.getTicket(t, first.TicketID)
		secondTicket := f.getTicket(t, second.TicketID)
		assert.Equal(t, firstTicket.AgentSessionID, secondTicket.AgentSessionID)
	})
}
