package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/progress"
)

// frameWindow bounds how long a test waits for one frame. Buffered events
// reach the client on the next poll tick.
const frameWindow = 3 * time.Second

func TestStreamTicket_Live(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")
	ctx := context.Background()

	t.Run("relays buffered events and ends on the terminal frame", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())
		ch := f.sseStream(t, queued.TicketID, token)

		first := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventConnected, first.Type)
		assert.Equal(t, queued.TicketID, first.TicketID)

		f.deps.Broadcaster.Emit(ctx, queued.TicketID, progress.Event{
			Type:     progress.EventProgress,
			Status:   string(workticket.StatusRunning),
			StepName: "claimed",
		})
		f.deps.Broadcaster.Emit(ctx, queued.TicketID, progress.Event{
			Type:     progress.EventToolStart,
			StepName: "web_search",
		})
		f.deps.Broadcaster.Emit(ctx, queued.TicketID, progress.Event{
			Type:    progress.EventCompleted,
			Status:  string(workticket.StatusCompleted),
			Payload: map[string]any{"output_count": 2},
		})

		ev := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventProgress, ev.Type)
		assert.Equal(t, "claimed", ev.StepName)

		ev = nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventToolStart, ev.Type)

		terminal := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventCompleted, terminal.Type)
		assert.EqualValues(t, 2, terminal.Payload["output_count"])

		expectStreamEnd(t, ch, frameWindow)

		// Termination releases the ticket's buffer.
		require.Eventually(t, func() bool {
			return f.hub.ActiveBuffers() == 0
		}, 2*time.Second, 25*time.Millisecond)
	})

	t.Run("a failed run ends the stream with one failed frame", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())
		ch := f.sseStream(t, queued.TicketID, token)
		nextFrame(t, ch, frameWindow) // connected

		f.deps.Broadcaster.Emit(ctx, queued.TicketID, progress.Event{
			Type:    progress.EventFailed,
			Status:  string(workticket.StatusFailed),
			Payload: map[string]any{"error_kind": "llm_error", "error": "provider returned 500"},
		})

		terminal := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventFailed, terminal.Type)
		assert.Equal(t, string(workticket.StatusFailed), terminal.Status)
		assert.Equal(t, "llm_error", terminal.Payload["error_kind"])

		expectStreamEnd(t, ch, frameWindow)
	})
}

func TestStreamTicket_ReplaysStoredTrail(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	queued := f.queueWork(t, token, submitBody())
	f.finishTicket(t, queued.TicketID, workticket.StatusCompleted, map[string]any{"output_count": 2})

	f.storeEvent(t, queued.TicketID, progress.Event{
		Type: progress.EventProgress, Status: "running", StepName: "claimed",
	})
	f.storeEvent(t, queued.TicketID, progress.Event{
		Type: progress.EventToolResult, StepName: "web_search",
	})
	f.storeEvent(t, queued.TicketID, progress.Event{
		Type: progress.EventCompleted, Status: "completed",
		Payload: map[string]any{"output_count": 2},
	})

	// The live buffer is long gone; the consumer still gets the full trail.
	ch := f.sseStream(t, queued.TicketID, token)

	assert.Equal(t, progress.EventConnected, nextFrame(t, ch, frameWindow).Type)
	assert.Equal(t, "claimed", nextFrame(t, ch, frameWindow).StepName)
	assert.Equal(t, progress.EventToolResult, nextFrame(t, ch, frameWindow).Type)

	terminal := nextFrame(t, ch, frameWindow)
	assert.Equal(t, progress.EventCompleted, terminal.Type)
	assert.EqualValues(t, 2, terminal.Payload["output_count"])

	expectStreamEnd(t, ch, frameWindow)
}

func TestStreamTicket_SynthesizesTerminalFrame(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	// No stored trail at all: the stream still must end with a terminal
	// frame built from ticket state.
	t.Run("completed", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())
		f.finishTicket(t, queued.TicketID, workticket.StatusCompleted, map[string]any{"output_count": 3})

		ch := f.sseStream(t, queued.TicketID, token)
		assert.Equal(t, progress.EventConnected, nextFrame(t, ch, frameWindow).Type)

		terminal := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventCompleted, terminal.Type)
		assert.Equal(t, string(workticket.StatusCompleted), terminal.Status)
		assert.EqualValues(t, 3, terminal.Payload["output_count"])

		expectStreamEnd(t, ch, frameWindow)
	})

	t.Run("failed by timeout", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())
		f.finishTicket(t, queued.TicketID, workticket.StatusFailed, map[string]any{
			"error_kind":    "timeout",
			"error_message": "ticket execution timed out",
		})

		ch := f.sseStream(t, queued.TicketID, token)
		nextFrame(t, ch, frameWindow) // connected

		terminal := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventTimeout, terminal.Type)
		assert.Equal(t, string(workticket.StatusFailed), terminal.Status)
		assert.Equal(t, "timeout", terminal.Payload["error_kind"])
		assert.Equal(t, "ticket execution timed out", terminal.Payload["error"])

		expectStreamEnd(t, ch, frameWindow)
	})

	t.Run("checkpointed for review", func(t *testing.T) {
		queued := f.queueWork(t, token, submitBody())
		f.finishTicket(t, queued.TicketID, workticket.StatusPendingReview, map[string]any{
			"checkpoint_reason": "awaiting supervision",
		})

		ch := f.sseStream(t, queued.TicketID, token)
		nextFrame(t, ch, frameWindow) // connected

		terminal := nextFrame(t, ch, frameWindow)
		assert.Equal(t, progress.EventCompleted, terminal.Type)
		assert.Equal(t, string(workticket.StatusPendingReview), terminal.Payload["ticket_status"])
		assert.Equal(t, "awaiting supervision", terminal.Payload["checkpoint_reason"])

		expectStreamEnd(t, ch, frameWindow)
	})
}

func TestStreamTicket_UnknownTicket(t *testing.T) {
	f := newAPIFixture(t)
	token := signUserToken(t, uuid.New().String(), "")

	resp := f.request(http.MethodGet, "/api/work/tickets/"+uuid.New().String()+"/stream", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, kindNotFound, f.readError(resp).Kind)
}
