package events

import (
	"context"
	"log/slog"

	"github.com/cobbleworks/foundry/pkg/progress"
)

// Broadcaster is the single entry point executors use to report
// progress. It delivers the event to the local hub synchronously, then
// persists and notifies through the Publisher. Persistence failures are
// logged and swallowed: a degraded event trail must never fail the work
// run that produced the event.
type Broadcaster struct {
	hub       *progress.Hub
	publisher *Publisher
	logger    *slog.Logger
}

// NewBroadcaster creates a Broadcaster. publisher may be nil, in which
// case events reach the local hub only.
func NewBroadcaster(hub *progress.Hub, publisher *Publisher, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{hub: hub, publisher: publisher, logger: logger}
}

// Emit publishes the event for the given ticket to local stream
// consumers and to the durable trail.
func (b *Broadcaster) Emit(ctx context.Context, ticketID string, ev progress.Event) {
	ev.TicketID = ticketID
	b.hub.Emit(ticketID, ev)

	if b.publisher == nil {
		return
	}
	if _, err := b.publisher.Publish(ctx, ev); err != nil {
		b.logger.Warn("Failed to persist work event",
			"ticket_id", ticketID,
			"event_type", ev.Type,
			"error", err)
	}
}
