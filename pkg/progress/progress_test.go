package progress

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_EmitAndSince(t *testing.T) {
	t.Run("events arrive in emit order", func(t *testing.T) {
		hub := NewHub()
		hub.Emit("wt-1", Event{Type: EventConnected})
		hub.Emit("wt-1", Event{Type: EventProgress, StepName: "fetch_context"})
		hub.Emit("wt-1", Event{Type: EventToolStart, StepName: "web_research"})

		events, cursor := hub.Since("wt-1", CursorStart)
		require.Len(t, events, 3)
		assert.Equal(t, EventConnected, events[0].Type)
		assert.Equal(t, EventProgress, events[1].Type)
		assert.Equal(t, EventToolStart, events[2].Type)

		// Cursor advances; nothing new yields nothing.
		events, cursor2 := hub.Since("wt-1", cursor)
		assert.Empty(t, events)
		assert.Equal(t, cursor, cursor2)
	})

	t.Run("cursor picks up only new events", func(t *testing.T) {
		hub := NewHub()
		hub.Emit("wt-1", Event{Type: EventConnected})

		_, cursor := hub.Since("wt-1", CursorStart)
		hub.Emit("wt-1", Event{Type: EventToolResult})
		hub.Emit("wt-1", Event{Type: EventCompleted})

		events, _ := hub.Since("wt-1", cursor)
		require.Len(t, events, 2)
		assert.Equal(t, EventToolResult, events[0].Type)
		assert.Equal(t, EventCompleted, events[1].Type)
	})

	t.Run("tickets are isolated", func(t *testing.T) {
		hub := NewHub()
		hub.Emit("wt-1", Event{Type: EventProgress})
		hub.Emit("wt-2", Event{Type: EventToolStart})

		events, _ := hub.Since("wt-1", CursorStart)
		require.Len(t, events, 1)
		assert.Equal(t, EventProgress, events[0].Type)
		assert.Equal(t, "wt-1", events[0].TicketID)
	})

	t.Run("emit stamps ticket id and timestamp", func(t *testing.T) {
		hub := NewHub()
		hub.Emit("wt-1", Event{Type: EventProgress})

		events, _ := hub.Since("wt-1", CursorStart)
		require.Len(t, events, 1)
		assert.Equal(t, "wt-1", events[0].TicketID)
		assert.False(t, events[0].Timestamp.IsZero())
	})

	t.Run("unknown ticket yields nothing", func(t *testing.T) {
		hub := NewHub()
		events, cursor := hub.Since("wt-missing", CursorStart)
		assert.Empty(t, events)
		assert.Equal(t, CursorStart, cursor)
	})

	t.Run("empty ticket id is dropped", func(t *testing.T) {
		hub := NewHub()
		hub.Emit("", Event{Type: EventProgress})
		assert.Zero(t, hub.ActiveBuffers())
	})
}

func TestHub_Purge(t *testing.T) {
	hub := NewHub()
	hub.Emit("wt-1", Event{Type: EventCompleted})
	require.Equal(t, 1, hub.ActiveBuffers())

	hub.Purge("wt-1")
	assert.Zero(t, hub.ActiveBuffers())

	events, _ := hub.Since("wt-1", CursorStart)
	assert.Empty(t, events)
}

func TestHub_PurgeIdle(t *testing.T) {
	hub := NewHub()
	hub.Emit("wt-old", Event{Type: EventProgress})
	hub.Emit("wt-new", Event{Type: EventProgress})

	// Age the first buffer past the window.
	hub.mu.Lock()
	hub.buffers["wt-old"].lastEmit = time.Now().Add(-time.Hour)
	hub.mu.Unlock()

	purged := hub.PurgeIdle(30 * time.Minute)
	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, hub.ActiveBuffers())

	events, _ := hub.Since("wt-new", CursorStart)
	assert.Len(t, events, 1)
}

func TestHub_BufferBound(t *testing.T) {
	hub := NewHub()
	total := maxBufferedEvents + 50
	for i := 0; i < total; i++ {
		hub.Emit("wt-1", Event{Type: EventProgress, StepName: fmt.Sprintf("step-%d", i)})
	}

	events, cursor := hub.Since("wt-1", CursorStart)
	require.Len(t, events, maxBufferedEvents)
	// Oldest events were dropped; the window ends at the newest emit.
	assert.Equal(t, fmt.Sprintf("step-%d", total-1), events[len(events)-1].StepName)
	assert.Equal(t, fmt.Sprintf("step-%d", total-maxBufferedEvents), events[0].StepName)

	// Cursor still tracks the absolute sequence.
	hub.Emit("wt-1", Event{Type: EventCompleted})
	more, _ := hub.Since("wt-1", cursor)
	require.Len(t, more, 1)
	assert.Equal(t, EventCompleted, more[0].Type)
}

func TestHub_ConcurrentEmit(t *testing.T) {
	hub := NewHub()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				hub.Emit("wt-1", Event{Type: EventProgress})
			}
		}()
	}
	wg.Wait()

	events, _ := hub.Since("wt-1", CursorStart)
	assert.Len(t, events, producers*perProducer)
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(EventCompleted))
	assert.True(t, Terminal(EventFailed))
	assert.True(t, Terminal(EventTimeout))
	assert.False(t, Terminal(EventProgress))
	assert.False(t, Terminal(EventHeartbeat))
	assert.False(t, Terminal(EventConnected))
}
