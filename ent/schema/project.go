package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("basket_id").
			Unique().
			Immutable().
			Comment("Substrate container backing this project (1:1)"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("active", "archived").
			Default("active"),
		field.Enum("promotion_mode").
			Values("manual", "auto").
			Default("manual"),
		field.JSON("auto_promote_types", []string{}).
			Optional().
			Comment("Output types the supervision bridge may promote without an explicit call"),
		field.JSON("governance_policy", map[string]interface{}{}).
			Optional().
			Comment("Per-action policy for foundation-tier context writes (e.g. ep_manual_edit: proposal)"),
		field.String("created_by").
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

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "status"),
		index.Fields("basket_id").
			Unique(),
	}
}
