package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitySetMember is one member of an entity set axis.
type EntitySetMember struct {
	ent.Schema
}

// Fields of the EntitySetMember.
func (EntitySetMember) Fields() []ent.Field {
	return []ent.Field{
		field.Int("entity_set_id").
			Immutable(),
		field.Int("entity_id").
			Immutable().
			Comment("Document or question id, per entity_type"),
		field.Enum("entity_type").
			Values("document", "question"),
		field.Int("member_order").
			Min(0),
		field.String("label").
			Optional().
			Nillable().
			Comment("Per-context display label"),
	}
}

// Edges of the EntitySetMember.
func (EntitySetMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity_set", EntitySet.Type).
			Ref("members").
			Field("entity_set_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntitySetMember.
func (EntitySetMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_set_id", "member_order"),
		index.Fields("entity_set_id", "entity_id").
			Unique(),
	}
}
