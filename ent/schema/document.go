package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document is one uploaded file, unique per (company, checksum) among
// non-deleted rows.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Immutable(),
		field.String("filename").
			NotEmpty(),
		field.String("storage_key").
			Comment("Object-store key of the original upload"),
		field.String("checksum").
			NotEmpty().
			Comment("sha-256 of the uploaded bytes"),
		field.Enum("extraction_status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("extracted_content_path").
			Optional().
			Nillable().
			Comment("Object-store key of extracted markdown"),
		field.Int("extracted_char_count").
			Default(0).
			Comment("Character count of extracted content, used for QA routing"),
		field.Int("current_chunk_set_id").
			Optional().
			Nillable(),
		field.Time("uploaded_at").
			Default(time.Now).
			Immutable(),
		field.Time("extracted_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("documents").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chunk_sets", ChunkSet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate-upload dedup contract.
		index.Fields("company_id", "checksum").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
		index.Fields("extraction_status"),
	}
}
