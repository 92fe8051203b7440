package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MatrixCell is one coordinate in the N-dimensional product of a matrix's
// entity sets. The (matrix_id, cell_signature) partial unique index is the
// durable dedup contract: at most one live cell per coordinate.
type MatrixCell struct {
	ent.Schema
}

// Fields of the MatrixCell.
func (MatrixCell) Fields() []ent.Field {
	return []ent.Field{
		field.Int("matrix_id").
			Immutable(),
		field.Int("company_id").
			Immutable(),
		field.String("cell_type"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("current_answer_set_id").
			Optional().
			Nillable(),
		field.String("cell_signature").
			NotEmpty().
			Immutable().
			Comment("sha-256 hex of the canonical coordinate encoding"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the MatrixCell.
func (MatrixCell) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("matrix", Matrix.Type).
			Ref("cells").
			Field("matrix_id").
			Unique().
			Required().
			Immutable(),
		edge.To("entity_refs", CellEntityRef.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("answer_sets", AnswerSet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("qa_jobs", QAJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MatrixCell.
func (MatrixCell) Indexes() []ent.Index {
	return []ent.Index{
		// At most one live cell per coordinate.
		index.Fields("matrix_id", "cell_signature").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
		index.Fields("status"),
		index.Fields("company_id", "status"),
	}
}
