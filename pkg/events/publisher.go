package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/pkg/progress"
)

// Publisher writes work events to the work_events table and announces
// them with pg_notify. Both happen in one transaction: an event is only
// broadcast if its row committed, and a committed row is always
// broadcast.
type Publisher struct {
	db      *sql.DB
	channel string
	origin  string
}

// NewPublisher creates a Publisher over the given database handle.
// origin identifies this pod in envelopes so listeners can skip events
// they already saw locally. An empty channel selects DefaultChannel.
func NewPublisher(db *sql.DB, channel, origin string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{db: db, channel: channel, origin: origin}
}

// Publish persists the event and notifies listeners atomically,
// returning the new work_events row ID. A zero timestamp is stamped
// with the current time before insert.
func (p *Publisher) Publish(ctx context.Context, ev progress.Event) (int64, error) {
	if ev.TicketID == "" {
		return 0, fmt.Errorf("publish work event: empty ticket id")
	}
	if ev.Type == "" {
		return 0, fmt.Errorf("publish work event: empty event type")
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	var payload []byte
	if len(ev.Payload) > 0 {
		var err error
		payload, err = json.Marshal(ev.Payload)
		if err != nil {
			return 0, fmt.Errorf("marshal work event payload: %w", err)
		}
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin work event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO work_events (ticket_id, event_type, step_name, status, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING work_event_id`,
		ev.TicketID, ev.Type, nullIfEmpty(ev.StepName), nullIfEmpty(ev.Status), payload, ev.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert work event: %w", err)
	}

	notifyPayload, err := p.buildNotifyPayload(ev, id)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, p.channel, string(notifyPayload)); err != nil {
		return 0, fmt.Errorf("notify work event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit work event: %w", err)
	}
	return id, nil
}

// buildNotifyPayload wraps the event in an Envelope. If the marshaled
// envelope exceeds the NOTIFY budget the payload is dropped and the
// envelope marked truncated; receivers re-fetch the row by DBEventID.
func (p *Publisher) buildNotifyPayload(ev progress.Event, id int64) ([]byte, error) {
	env := Envelope{Event: ev, DBEventID: id, Origin: p.origin}
	buf, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal work event envelope: %w", err)
	}
	if len(buf) <= maxNotifyPayload {
		return buf, nil
	}

	env.Event.Payload = nil
	env.Truncated = true
	buf, err = json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal truncated work event envelope: %w", err)
	}
	return buf, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
