package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chunk is one semantic segment of a document. The body lives in object
// storage; this row holds metadata only.
type Chunk struct {
	ent.Schema
}

// Fields of the Chunk.
func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.Int("chunk_set_id").
			Immutable(),
		field.String("chunk_id").
			NotEmpty().
			Comment("Stable string id within the set, e.g. chunk_001"),
		field.Int("document_id").
			Immutable().
			Comment("Denormalized from the chunk set"),
		field.Int("company_id").
			Immutable().
			Comment("Denormalized from the chunk set"),
		field.String("s3_key").
			Comment("Object-store key of the chunk body"),
		field.JSON("chunk_metadata", map[string]interface{}{}).
			Optional().
			Comment("Section, page range, char range, overlap flags"),
		field.Int("chunk_order").
			Min(0).
			Comment("Emission order within the chunk set"),
	}
}

// Edges of the Chunk.
func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chunk_set", ChunkSet.Type).
			Ref("chunks").
			Field("chunk_set_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Chunk.
func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chunk_set_id", "chunk_order").
			Unique(),
		index.Fields("document_id"),
		index.Fields("company_id"),
	}
}
