package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CellEntityRef records one (role, entity_id) pair of a cell's coordinate.
type CellEntityRef struct {
	ent.Schema
}

// Fields of the CellEntityRef.
func (CellEntityRef) Fields() []ent.Field {
	return []ent.Field{
		field.Int("cell_id").
			Immutable(),
		field.String("role").
			NotEmpty().
			Immutable().
			Comment("Axis role, e.g. document or question"),
		field.Int("entity_id").
			Immutable(),
	}
}

// Edges of the CellEntityRef.
func (CellEntityRef) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cell", MatrixCell.Type).
			Ref("entity_refs").
			Field("cell_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CellEntityRef.
func (CellEntityRef) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cell_id", "role", "entity_id").
			Unique(),
	}
}
