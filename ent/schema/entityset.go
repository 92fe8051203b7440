package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitySet is one axis of a matrix: an ordered collection of typed members.
type EntitySet struct {
	ent.Schema
}

// Fields of the EntitySet.
func (EntitySet) Fields() []ent.Field {
	return []ent.Field{
		field.Int("matrix_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("entity_type").
			Values("document", "question"),
	}
}

// Edges of the EntitySet.
func (EntitySet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("matrix", Matrix.Type).
			Ref("entity_sets").
			Field("matrix_id").
			Unique().
			Required().
			Immutable(),
		edge.To("members", EntitySetMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the EntitySet.
func (EntitySet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("matrix_id"),
	}
}
