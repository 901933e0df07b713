package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One persistent conversation per (basket, agent_kind); conversation state
// accumulates across tickets.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_session_id").
			Unique().
			Immutable(),
		field.String("basket_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Enum("agent_kind").
			Values("research", "content", "reporting", "thinking_partner").
			Immutable(),
		field.String("parent_session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Thinking-partner session of the same basket; nil only for the TP session itself"),
		field.String("created_by_session_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("provider_session_id").
			Optional().
			Nillable().
			Comment("Opaque LLM provider conversation handle, set on first turn"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Provider conversation snapshot and runtime bookkeeping"),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.String("created_by").
			Optional().
			Nillable(),
		field.String("last_claimed_by").
			Optional().
			Nillable().
			Comment("Ticket currently executing on this session (per-session serialization)"),
		field.Time("last_claimed_at").
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

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", AgentSession.Type).
			From("parent").
			Field("parent_session_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		// Registry key: one session per (basket, agent_kind)
		index.Fields("basket_id", "agent_kind").
			Unique(),
		index.Fields("workspace_id"),
		index.Fields("parent_session_id"),
	}
}
