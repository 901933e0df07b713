package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

func TestRunAgent(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	t.Run("runs the ticket inline and returns its outputs", func(t *testing.T) {
		f.exec.setRun(func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult {
			f.sub.seedOutput(substrate.WorkOutput{
				BasketID:     ticket.BasketID,
				WorkTicketID: ticket.ID,
				AgentKind:    "research",
				OutputType:   "finding",
				Title:        "Key finding",
			})
			return &queue.ExecutionResult{
				Status:       workticket.StatusCompleted,
				ResponseText: "Research complete.",
				OutputCount:  1,
			}
		})
		defer f.exec.setRun(nil)

		resp := f.request(http.MethodPost, "/api/agents/run", token, submitBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out AgentRunResponse
		f.decode(resp, &out)
		assert.Equal(t, string(workticket.StatusCompleted), out.Status)
		assert.Equal(t, "Research complete.", out.ResponseText)
		assert.True(t, out.IsTrialRequest)
		require.Len(t, out.WorkOutputs, 1)
		assert.Equal(t, out.TicketID, out.WorkOutputs[0].WorkTicketID)
		assert.Equal(t, "finding", out.WorkOutputs[0].OutputType)

		ticket := f.getTicket(t, out.TicketID)
		assert.Equal(t, workticket.StatusCompleted, ticket.Status)

		request, err := f.client.WorkRequest.Get(context.Background(), out.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, workrequest.StatusCompleted, request.Status)
	})

	t.Run("a failed run is still a created run", func(t *testing.T) {
		f.exec.setRun(func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult {
			return &queue.ExecutionResult{
				Status:    workticket.StatusFailed,
				ErrorKind: queue.ErrorKindLLMError,
				Error:     errors.New("provider returned 500"),
			}
		})
		defer f.exec.setRun(nil)

		resp := f.request(http.MethodPost, "/api/agents/run", token, submitBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out AgentRunResponse
		f.decode(resp, &out)
		assert.Equal(t, string(workticket.StatusFailed), out.Status)
		assert.Empty(t, out.WorkOutputs)

		ticket := f.getTicket(t, out.TicketID)
		assert.Equal(t, workticket.StatusFailed, ticket.Status)
	})

	t.Run("concurrent run against a busy session conflicts", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan string, 1)
		f.exec.setRun(func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult {
			started <- ticket.ID
			select {
			case <-release:
			case <-ctx.Done():
			}
			return &queue.ExecutionResult{Status: workticket.StatusCompleted, ResponseText: "done"}
		})
		defer f.exec.setRun(nil)

		// Same basket and kind, so both runs contend for one session.
		body := submitBody()

		firstDone := make(chan *http.Response, 1)
		go func() {
			firstDone <- f.request(http.MethodPost, "/api/agents/run", token, body)
		}()

		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatal("first run never started executing")
		}

		second := f.request(http.MethodPost, "/api/agents/run", token, body)
		require.Equal(t, http.StatusConflict, second.StatusCode)
		assert.Equal(t, kindConflict, f.readError(second).Kind)

		close(release)
		first := <-firstDone
		require.Equal(t, http.StatusCreated, first.StatusCode)
		first.Body.Close()
	})

	t.Run("admission failures never reach the executor", func(t *testing.T) {
		before := len(f.exec.ranTickets())

		body := submitBody()
		body.BasketID = ""
		resp := f.request(http.MethodPost, "/api/agents/run", token, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		assert.Len(t, f.exec.ranTickets(), before)
	})
}
