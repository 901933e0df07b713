package events

import (
	"context"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workevent"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
)

// Store reads and prunes the durable work event trail. Listeners use it
// to resolve truncated envelopes, the stream endpoint uses it to replay
// history on connect, and the retention sweeper uses it to prune.
type Store struct {
	client *ent.Client
}

// NewStore creates a Store backed by the given ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get loads a single event by its work_events row ID.
func (s *Store) Get(ctx context.Context, id int64) (progress.Event, error) {
	row, err := s.client.WorkEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.Event{}, fmt.Errorf("work event %d: %w", id, services.ErrNotFound)
		}
		return progress.Event{}, fmt.Errorf("get work event %d: %w", id, err)
	}
	return eventFromRow(row), nil
}

// ReplayTicket returns every persisted event for a ticket in insertion
// order. Used by the stream endpoint to cover the gap between work
// starting and the consumer attaching, including across pod restarts.
func (s *Store) ReplayTicket(ctx context.Context, ticketID string) ([]progress.Event, error) {
	rows, err := s.client.WorkEvent.Query().
		Where(workevent.TicketIDEQ(ticketID)).
		Order(ent.Asc(workevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("replay work events for ticket %s: %w", ticketID, err)
	}

	out := make([]progress.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

// DeleteOlderThan removes events created before the cutoff and returns
// the number of rows deleted.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.WorkEvent.Delete().
		Where(workevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete work events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}

func eventFromRow(row *ent.WorkEvent) progress.Event {
	return progress.Event{
		Type:      row.EventType,
		TicketID:  row.TicketID,
		Timestamp: row.CreatedAt,
		StepName:  row.StepName,
		Status:    row.Status,
		Payload:   row.Payload,
	}
}
