package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QAJob is one processing attempt of a matrix cell. Transitions are
// monotonic: queued -> processing -> completed | failed.
type QAJob struct {
	ent.Schema
}

// Fields of the QAJob.
func (QAJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int("cell_id").
			Immutable(),
		field.Int("company_id").
			Immutable(),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed").
			Default("queued"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the QAJob.
func (QAJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cell", MatrixCell.Type).
			Ref("qa_jobs").
			Field("cell_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QAJob.
func (QAJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("company_id", "status"),
		index.Fields("pod_id"),
	}
}
