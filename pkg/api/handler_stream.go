package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
)

const (
	// streamPollInterval is how often buffered events are flushed to the
	// client.
	streamPollInterval = 500 * time.Millisecond

	// streamHeartbeatAfter is the silence window after which a heartbeat
	// frame keeps the connection alive through proxies.
	streamHeartbeatAfter = 15 * time.Second

	// streamMaxDuration bounds any single stream. A client whose ticket
	// is still running reconnects and catches up from the buffer.
	streamMaxDuration = 10 * time.Minute

	// streamTicketCheckEvery is the number of polls between direct
	// ticket reads. The read is a backstop for a lost terminal event;
	// the happy path terminates on the buffered frame.
	streamTicketCheckEvery = 10
)

// streamTicketHandler handles GET /api/work/tickets/:id/stream. Frames
// are SSE data frames carrying progress events. Every stream ends with
// exactly one terminal frame (completed, failed, or timeout) and the
// ticket's buffer is released on termination.
func (s *Server) streamTicketHandler(c *gin.Context) {
	ticketID := c.Param("id")

	ticket, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		writeError(c, err)
		return
	}

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	if !s.writeFrame(c, progress.Event{
		Type:      progress.EventConnected,
		TicketID:  ticketID,
		Timestamp: time.Now().UTC(),
	}) {
		return
	}

	// A consumer arriving after the live buffer is gone replays the
	// durable trail instead.
	if terminalTicketStatus(ticket.Status) {
		if buffered, _ := s.hub.Since(ticketID, progress.CursorStart); len(buffered) == 0 {
			s.replayStoredTrail(c, ticket)
			return
		}
	}

	defer s.hub.Purge(ticketID)

	poll := time.NewTicker(streamPollInterval)
	defer poll.Stop()
	bound := time.NewTimer(streamMaxDuration)
	defer bound.Stop()

	cursor := progress.CursorStart
	lastFrame := time.Now()
	polls := 0

	for {
		select {
		case <-c.Request.Context().Done():
			return

		case <-bound.C:
			s.writeFrame(c, progress.Event{
				Type:      progress.EventTimeout,
				TicketID:  ticketID,
				Timestamp: time.Now().UTC(),
				Status:    "timeout",
				Payload:   map[string]any{"reason": "stream bound reached"},
			})
			return

		case <-poll.C:
			events, next := s.hub.Since(ticketID, cursor)
			cursor = next
			for _, ev := range events {
				if !s.writeFrame(c, ev) {
					return
				}
				lastFrame = time.Now()
				if progress.Terminal(ev.Type) {
					return
				}
			}

			polls++
			if polls%streamTicketCheckEvery == 0 {
				done, ok := s.checkTicketTerminal(c, ticketID, &cursor)
				if done || !ok {
					return
				}
			}

			if time.Since(lastFrame) >= streamHeartbeatAfter {
				if !s.writeFrame(c, progress.Event{
					Type:      progress.EventHeartbeat,
					TicketID:  ticketID,
					Timestamp: time.Now().UTC(),
				}) {
					return
				}
				lastFrame = time.Now()
			}
		}
	}
}

// writeFrame encodes one event as an SSE data frame and flushes it.
// Returns false when the client is gone.
func (s *Server) writeFrame(c *gin.Context, ev progress.Event) bool {
	if err := sse.Encode(c.Writer, sse.Event{Data: ev}); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}

// checkTicketTerminal is the slow-path backstop: a direct ticket read.
// When the ticket is terminal it drains what the buffer still holds and
// guarantees the terminal frame, synthesizing one if the buffered trail
// never got it. Returns (terminated, client still connected).
func (s *Server) checkTicketTerminal(c *gin.Context, ticketID string, cursor *uint64) (bool, bool) {
	ticket, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil || !terminalTicketStatus(ticket.Status) {
		return false, true
	}

	// Final drain: the terminal event may have landed between the read
	// and now.
	events, next := s.hub.Since(ticketID, *cursor)
	*cursor = next
	for _, ev := range events {
		if !s.writeFrame(c, ev) {
			return true, false
		}
		if progress.Terminal(ev.Type) {
			return true, true
		}
	}

	s.writeFrame(c, synthesizeTerminalFrame(ticket))
	return true, true
}

// replayStoredTrail serves a stream for a ticket that finished before the
// consumer connected: the persisted work events are replayed in order,
// ending with exactly one terminal frame.
func (s *Server) replayStoredTrail(c *gin.Context, ticket *ent.WorkTicket) {
	trail, err := s.eventStore.ReplayTicket(c.Request.Context(), ticket.ID)
	if err != nil {
		s.writeFrame(c, synthesizeTerminalFrame(ticket))
		return
	}

	for _, ev := range trail {
		if !s.writeFrame(c, ev) {
			return
		}
		if progress.Terminal(ev.Type) {
			return
		}
	}
	s.writeFrame(c, synthesizeTerminalFrame(ticket))
}

// synthesizeTerminalFrame builds the terminal frame from ticket state,
// mirroring the shape the executor emits, for streams whose buffered
// terminal event was lost or swept.
func synthesizeTerminalFrame(ticket *ent.WorkTicket) progress.Event {
	ev := progress.Event{
		Type:      progress.EventCompleted,
		TicketID:  ticket.ID,
		Timestamp: time.Now().UTC(),
		Status:    string(workticket.StatusCompleted),
		Payload:   map[string]any{},
	}

	meta := ticket.TicketMetadata
	if count, ok := meta["output_count"]; ok {
		ev.Payload["output_count"] = count
	}

	switch ticket.Status {
	case workticket.StatusFailed:
		ev.Status = string(workticket.StatusFailed)
		ev.Type = progress.EventFailed
		if kind, _ := meta["error_kind"].(string); kind != "" {
			ev.Payload["error_kind"] = kind
			if kind == queue.ErrorKindTimeout {
				ev.Type = progress.EventTimeout
			}
		}
		if msg, _ := meta["error_message"].(string); msg != "" {
			ev.Payload["error"] = msg
		}
	case workticket.StatusPendingReview:
		ev.Payload["ticket_status"] = string(workticket.StatusPendingReview)
		if reason, _ := meta["checkpoint_reason"].(string); reason != "" {
			ev.Payload["checkpoint_reason"] = reason
		}
	}

	return ev
}

// terminalTicketStatus reports whether a ticket will emit no further
// events.
func terminalTicketStatus(status workticket.Status) bool {
	switch status {
	case workticket.StatusCompleted, workticket.StatusPendingReview, workticket.StatusFailed:
		return true
	}
	return false
}
