package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkEvent holds the schema definition for the WorkEvent entity.
// Durable trail of per-ticket progress events. Rows are inserted in the
// same transaction as the pg_notify that fans them out to replicas; the
// retention sweeper prunes old rows.
type WorkEvent struct {
	ent.Schema
}

// Fields of the WorkEvent.
func (WorkEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("work_event_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("connected, progress, tool_start, tool_result, completed, failed, timeout"),
		field.String("step_name").
			Optional().
			Immutable(),
		field.String("status").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkEvent.
func (WorkEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Per-ticket replay in insertion order
		index.Fields("ticket_id", "id"),
		// Retention sweep
		index.Fields("created_at"),
	}
}
