package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkRequest holds the schema definition for the WorkRequest entity.
// Durable record of a user's intent; quota consumption is tied to it.
type WorkRequest struct {
	ent.Schema
}

// Fields of the WorkRequest.
func (WorkRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("work_request_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("basket_id").
			Immutable(),
		field.Enum("agent_kind").
			Values("research", "content", "reporting", "thinking_partner"),
		field.String("work_mode").
			Comment("Free-form mode per agent kind (e.g. deep_dive, draft, tp_chat)"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque task parameters passed through to the runtime"),
		field.Bool("is_trial").
			Default(false),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Text("result_summary").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkRequest.
func (WorkRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("ticket", WorkTicket.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkRequest.
func (WorkRequest) Indexes() []ent.Index {
	return []ent.Index{
		// Trial counting scans (user, workspace, is_trial, status)
		index.Fields("user_id", "workspace_id", "is_trial", "status"),
		index.Fields("basket_id"),
		index.Fields("status", "created_at"),
	}
}
