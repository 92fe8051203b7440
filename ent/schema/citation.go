package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Citation grounds one answer in a source document quote.
type Citation struct {
	ent.Schema
}

// Fields of the Citation.
func (Citation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("answer_id").
			Immutable(),
		field.Int("document_id").
			Immutable(),
		field.Text("quote_text"),
		field.Int("citation_order").
			Min(1),
		field.Float("grounding_score").
			Optional().
			Nillable().
			Comment("Set by the grounding validator, in [0,1]"),
	}
}

// Edges of the Citation.
func (Citation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("answer", Answer.Type).
			Ref("citations").
			Field("answer_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Citation.
func (Citation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("answer_id", "citation_order"),
	}
}
