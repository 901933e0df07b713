package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkTicket holds the schema definition for the WorkTicket entity.
// One bounded execution attempt for a work request. Only the ticket
// executor writes status; terminal statuses are immutable.
type WorkTicket struct {
	ent.Schema
}

// Fields of the WorkTicket.
func (WorkTicket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("work_ticket_id").
			Unique().
			Immutable(),
		field.String("work_request_id").
			Unique().
			Immutable(),
		field.String("agent_session_id").
			Immutable(),
		field.String("basket_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Enum("agent_kind").
			Values("research", "content", "reporting", "thinking_partner").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "pending_review", "failed").
			Default("pending"),
		field.Int("priority").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.JSON("ticket_metadata", map[string]interface{}{}).
			Optional().
			Comment("output_count, checkpoint_reason, error kind/message"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker replica that claimed the ticket"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkTicket.
func (WorkTicket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work_request", WorkRequest.Type).
			Ref("ticket").
			Field("work_request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkTicket.
func (WorkTicket) Indexes() []ent.Index {
	return []ent.Index{
		// Queue claim scan: pending tickets by priority then age
		index.Fields("status", "priority", "created_at"),
		index.Fields("basket_id"),
		index.Fields("agent_session_id", "status"),
		// Orphan sweep
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("work_request_id").
			Unique(),
	}
}
