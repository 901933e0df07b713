// Package progress is the in-memory per-ticket progress hub. Producers emit
// events while a ticket executes; SSE consumers poll their cursor against
// the ticket's buffer. Delivery is FIFO per ticket with no cross-ticket
// ordering. The durable mirror of these events lives in pkg/events.
package progress

import (
	"sync"
	"time"
)

// Event types carried over the progress channel.
const (
	EventConnected  = "connected"
	EventProgress   = "progress"
	EventToolStart  = "tool_start"
	EventToolResult = "tool_result"
	EventCompleted  = "completed"
	EventFailed     = "failed"
	EventTimeout    = "timeout"
	EventHeartbeat  = "heartbeat"
)

// Terminal reports whether an event type ends a stream. Exactly one
// terminal event is sent per stream; nothing follows it.
func Terminal(eventType string) bool {
	return eventType == EventCompleted || eventType == EventFailed || eventType == EventTimeout
}

// Event is one frame on a ticket's progress channel.
type Event struct {
	Type      string         `json:"type"`
	TicketID  string         `json:"ticket_id"`
	Timestamp time.Time      `json:"timestamp"`
	StepName  string         `json:"current_step,omitempty"`
	Status    string         `json:"status,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// maxBufferedEvents bounds one ticket's buffer. A runaway producer drops
// the oldest events first; sequence numbers stay stable so cursors remain
// valid across the drop.
const maxBufferedEvents = 2048

type buffer struct {
	mu       sync.Mutex
	first    uint64 // sequence number of events[0]
	events   []Event
	lastEmit time.Time
}

// append stores one event and returns its sequence number.
func (b *buffer) append(ev Event) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, ev)
	b.lastEmit = time.Now()
	if len(b.events) > maxBufferedEvents {
		drop := len(b.events) - maxBufferedEvents
		b.events = b.events[drop:]
		b.first += uint64(drop)
	}
	return b.first + uint64(len(b.events)) - 1
}

// since returns events with sequence > cursor and the new cursor.
func (b *buffer) since(cursor uint64) ([]Event, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 {
		return nil, cursor
	}
	last := b.first + uint64(len(b.events)) - 1

	start := b.first
	if cursor != CursorStart {
		if cursor >= last {
			return nil, cursor
		}
		if cursor+1 > start {
			start = cursor + 1
		}
	}

	out := make([]Event, last-start+1)
	copy(out, b.events[start-b.first:])
	return out, last
}

// CursorStart is the cursor value before any event has been read.
const CursorStart = ^uint64(0)

// Hub holds per-ticket event buffers.
type Hub struct {
	mu      sync.RWMutex
	buffers map[string]*buffer
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{buffers: make(map[string]*buffer)}
}

func (h *Hub) buffer(ticketID string, create bool) *buffer {
	h.mu.RLock()
	b := h.buffers[ticketID]
	h.mu.RUnlock()
	if b != nil || !create {
		return b
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if b = h.buffers[ticketID]; b == nil {
		b = &buffer{lastEmit: time.Now()}
		h.buffers[ticketID] = b
	}
	return b
}

// Emit appends an event to the ticket's buffer. It never blocks on
// consumers; a ticket nobody watches just accumulates until purge.
func (h *Hub) Emit(ticketID string, ev Event) {
	if ticketID == "" {
		return
	}
	ev.TicketID = ticketID
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	h.buffer(ticketID, true).append(ev)
}

// Since returns the ticket's events after the cursor, plus the advanced
// cursor. Pass CursorStart on the first read.
func (h *Hub) Since(ticketID string, cursor uint64) ([]Event, uint64) {
	b := h.buffer(ticketID, false)
	if b == nil {
		return nil, cursor
	}
	return b.since(cursor)
}

// Purge drops the ticket's buffer. Called by the stream consumer after the
// terminal frame.
func (h *Hub) Purge(ticketID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.buffers, ticketID)
}

// PurgeIdle drops buffers that saw no emit within the window. The cleanup
// sweeper runs this so tickets nobody streamed do not pin memory.
func (h *Hub) PurgeIdle(window time.Duration) int {
	cutoff := time.Now().Add(-window)

	h.mu.Lock()
	defer h.mu.Unlock()
	purged := 0
	for id, b := range h.buffers {
		b.mu.Lock()
		idle := b.lastEmit.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(h.buffers, id)
			purged++
		}
	}
	return purged
}

// ActiveBuffers reports how many tickets currently hold buffered events,
// for queue health.
func (h *Hub) ActiveBuffers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.buffers)
}
