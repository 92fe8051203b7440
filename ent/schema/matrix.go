package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Matrix is an N-dimensional workspace whose axes are entity sets and
// whose coordinates are cells.
type Matrix struct {
	ent.Schema
}

// Fields of the Matrix.
func (Matrix) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("workspace_id"),
		field.Enum("matrix_type").
			Values("standard", "cross_correlation", "generic_correlation", "synopsis").
			Default("standard"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Matrix.
func (Matrix) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("matrices").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
		edge.To("entity_sets", EntitySet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cells", MatrixCell.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Matrix.
func (Matrix) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "workspace_id"),
	}
}
