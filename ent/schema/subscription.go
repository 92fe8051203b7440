package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription is the 1:1 billing state of a company. Exactly one
// non-deleted subscription exists per company (partial unique index).
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Immutable(),
		field.Enum("tier").
			Values("free", "starter", "professional", "business", "enterprise").
			Default("free"),
		field.Enum("status").
			Values("active", "past_due", "suspended", "cancelled").
			Default("active"),
		field.Time("current_period_start"),
		field.Time("current_period_end"),
		field.String("external_ref").
			Optional().
			Nillable().
			Comment("Payment provider subscription reference"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("subscription").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		// One live subscription per company.
		index.Fields("company_id").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
		index.Fields("status"),
	}
}
