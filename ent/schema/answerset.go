package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerSet groups the ordered answers produced by one processing attempt
// of a matrix cell. Prior sets are kept for audit; the cell's
// current_answer_set_id points at the live one.
type AnswerSet struct {
	ent.Schema
}

// Fields of the AnswerSet.
func (AnswerSet) Fields() []ent.Field {
	return []ent.Field{
		field.Int("cell_id").
			Immutable(),
		field.Bool("answer_found").
			Default(false),
		field.Int("question_type_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AnswerSet.
func (AnswerSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cell", MatrixCell.Type).
			Ref("answer_sets").
			Field("cell_id").
			Unique().
			Required().
			Immutable(),
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnswerSet.
func (AnswerSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cell_id", "created_at"),
	}
}
