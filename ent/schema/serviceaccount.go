package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServiceAccount is the ephemeral credential holder for a single job.
// Only the sha-256 hash of the key is persisted; the plaintext is handed
// to the job exactly once via env var.
type ServiceAccount struct {
	ent.Schema
}

// Fields of the ServiceAccount.
func (ServiceAccount) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id").
			Immutable(),
		field.String("execution_id").
			Immutable().
			Comment("Job or workflow execution this credential is scoped to"),
		field.String("api_key_hash").
			NotEmpty().
			Immutable().
			Comment("sha-256 hex of the plain key"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ServiceAccount.
func (ServiceAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("service_accounts").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ServiceAccount.
func (ServiceAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("api_key_hash"),
		index.Fields("company_id", "is_active"),
		index.Fields("execution_id"),
	}
}
