package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSubscription holds the schema definition for the AgentSubscription
// entity. Rows are written by the billing system; the quota gate only reads
// them.
type AgentSubscription struct {
	ent.Schema
}

// Fields of the AgentSubscription.
func (AgentSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_subscription_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Enum("agent_kind").
			Values("research", "content", "reporting", "thinking_partner").
			Immutable(),
		field.Enum("status").
			Values("active", "cancelled").
			Default("active"),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentSubscription.
func (AgentSubscription) Indexes() []ent.Index {
	return []ent.Index{
		// Gate lookup
		index.Fields("user_id", "workspace_id", "agent_kind", "status"),
	}
}
