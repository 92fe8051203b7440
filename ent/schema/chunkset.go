package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChunkSet is one chunking run of a document. The document's
// current_chunk_set_id points at the latest run.
type ChunkSet struct {
	ent.Schema
}

// Fields of the ChunkSet.
func (ChunkSet) Fields() []ent.Field {
	return []ent.Field{
		field.Int("document_id").
			Immutable(),
		field.Int("company_id").
			Immutable(),
		field.String("chunking_strategy").
			Comment("hierarchical | semantic | fixed_size | sentence | paragraph | agentic"),
		field.Int("total_chunks").
			Default(0),
		field.String("s3_prefix").
			Comment("Object-store prefix holding chunk bodies and manifest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChunkSet.
func (ChunkSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("chunk_sets").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chunks", Chunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChunkSet.
func (ChunkSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("document_id", "created_at"),
	}
}
