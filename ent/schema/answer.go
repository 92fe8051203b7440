package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer is one typed answer within an answer set. answer_data holds the
// tagged variant (text | date | currency | select); citations are rows.
type Answer struct {
	ent.Schema
}

// Fields of the Answer.
func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("answer_set_id").
			Immutable(),
		field.Int("answer_order").
			Min(0),
		field.Enum("answer_type").
			Values("text", "date", "currency", "select"),
		field.JSON("answer_data", map[string]interface{}{}).
			Comment("Tagged variant payload, shape per answer_type"),
		field.Float("confidence").
			Min(0).
			Max(1),
	}
}

// Edges of the Answer.
func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("answer_set", AnswerSet.Type).
			Ref("answers").
			Field("answer_set_id").
			Unique().
			Required().
			Immutable(),
		edge.To("citations", Citation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Answer.
func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("answer_set_id", "answer_order").
			Unique(),
	}
}
