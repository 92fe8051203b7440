package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageEvent is one row of the append-only usage ledger. Rows are never
// updated or deleted; all fields are immutable.
type UsageEvent struct {
	ent.Schema
}

// Fields of the UsageEvent.
func (UsageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Immutable(),
		field.Int("user_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("event_type").
			Values("cell_operation", "agentic_qa", "workflow", "storage_upload", "agentic_chunking").
			Immutable(),
		field.Int("quantity").
			Min(1).
			Default(1).
			Immutable(),
		field.Int64("file_size_bytes").
			Optional().
			Nillable().
			Immutable().
			Comment("Only set for storage_upload events"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UsageEvent.
func (UsageEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("usage_events").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UsageEvent.
func (UsageEvent) Indexes() []ent.Index {
	return []ent.Index{
		// The quota reserve sums this ledger per (company, event_type, window).
		index.Fields("company_id", "event_type", "created_at"),
	}
}
