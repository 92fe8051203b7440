package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionFile is one file produced by a workflow execution.
type ExecutionFile struct {
	ent.Schema
}

// Fields of the ExecutionFile.
func (ExecutionFile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("execution_id").
			Immutable(),
		field.String("file_name").
			NotEmpty(),
		field.String("storage_key"),
		field.Enum("file_kind").
			Values("output", "scratch").
			Default("output"),
		field.Int64("size_bytes").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionFile.
func (ExecutionFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("files").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionFile.
func (ExecutionFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "file_name").
			Unique(),
	}
}
