// Code generated by ent, DO NOT EDIT.

package chunkset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldDocumentID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldCompanyID, v))
}

// ChunkingStrategy applies equality check predicate on the "chunking_strategy" field. It's identical to ChunkingStrategyEQ.
func ChunkingStrategy(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldChunkingStrategy, v))
}

// TotalChunks applies equality check predicate on the "total_chunks" field. It's identical to TotalChunksEQ.
func TotalChunks(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldTotalChunks, v))
}

// S3Prefix applies equality check predicate on the "s3_prefix" field. It's identical to S3PrefixEQ.
func S3Prefix(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldS3Prefix, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldDocumentID, vs...))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldCompanyID, v))
}

// ChunkingStrategyEQ applies the EQ predicate on the "chunking_strategy" field.
func ChunkingStrategyEQ(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldChunkingStrategy, v))
}

// ChunkingStrategyNEQ applies the NEQ predicate on the "chunking_strategy" field.
func ChunkingStrategyNEQ(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldChunkingStrategy, v))
}

// ChunkingStrategyIn applies the In predicate on the "chunking_strategy" field.
func ChunkingStrategyIn(vs ...string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldChunkingStrategy, vs...))
}

// ChunkingStrategyNotIn applies the NotIn predicate on the "chunking_strategy" field.
func ChunkingStrategyNotIn(vs ...string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldChunkingStrategy, vs...))
}

// ChunkingStrategyGT applies the GT predicate on the "chunking_strategy" field.
func ChunkingStrategyGT(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldChunkingStrategy, v))
}

// ChunkingStrategyGTE applies the GTE predicate on the "chunking_strategy" field.
func ChunkingStrategyGTE(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldChunkingStrategy, v))
}

// ChunkingStrategyLT applies the LT predicate on the "chunking_strategy" field.
func ChunkingStrategyLT(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldChunkingStrategy, v))
}

// ChunkingStrategyLTE applies the LTE predicate on the "chunking_strategy" field.
func ChunkingStrategyLTE(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldChunkingStrategy, v))
}

// ChunkingStrategyContains applies the Contains predicate on the "chunking_strategy" field.
func ChunkingStrategyContains(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldContains(FieldChunkingStrategy, v))
}

// ChunkingStrategyHasPrefix applies the HasPrefix predicate on the "chunking_strategy" field.
func ChunkingStrategyHasPrefix(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldHasPrefix(FieldChunkingStrategy, v))
}

// ChunkingStrategyHasSuffix applies the HasSuffix predicate on the "chunking_strategy" field.
func ChunkingStrategyHasSuffix(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldHasSuffix(FieldChunkingStrategy, v))
}

// ChunkingStrategyEqualFold applies the EqualFold predicate on the "chunking_strategy" field.
func ChunkingStrategyEqualFold(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEqualFold(FieldChunkingStrategy, v))
}

// ChunkingStrategyContainsFold applies the ContainsFold predicate on the "chunking_strategy" field.
func ChunkingStrategyContainsFold(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldContainsFold(FieldChunkingStrategy, v))
}

// TotalChunksEQ applies the EQ predicate on the "total_chunks" field.
func TotalChunksEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldTotalChunks, v))
}

// TotalChunksNEQ applies the NEQ predicate on the "total_chunks" field.
func TotalChunksNEQ(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldTotalChunks, v))
}

// TotalChunksIn applies the In predicate on the "total_chunks" field.
func TotalChunksIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldTotalChunks, vs...))
}

// TotalChunksNotIn applies the NotIn predicate on the "total_chunks" field.
func TotalChunksNotIn(vs ...int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldTotalChunks, vs...))
}

// TotalChunksGT applies the GT predicate on the "total_chunks" field.
func TotalChunksGT(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldTotalChunks, v))
}

// TotalChunksGTE applies the GTE predicate on the "total_chunks" field.
func TotalChunksGTE(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldTotalChunks, v))
}

// TotalChunksLT applies the LT predicate on the "total_chunks" field.
func TotalChunksLT(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldTotalChunks, v))
}

// TotalChunksLTE applies the LTE predicate on the "total_chunks" field.
func TotalChunksLTE(v int) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldTotalChunks, v))
}

// S3PrefixEQ applies the EQ predicate on the "s3_prefix" field.
func S3PrefixEQ(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldS3Prefix, v))
}

// S3PrefixNEQ applies the NEQ predicate on the "s3_prefix" field.
func S3PrefixNEQ(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldS3Prefix, v))
}

// S3PrefixIn applies the In predicate on the "s3_prefix" field.
func S3PrefixIn(vs ...string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldS3Prefix, vs...))
}

// S3PrefixNotIn applies the NotIn predicate on the "s3_prefix" field.
func S3PrefixNotIn(vs ...string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldS3Prefix, vs...))
}

// S3PrefixGT applies the GT predicate on the "s3_prefix" field.
func S3PrefixGT(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldS3Prefix, v))
}

// S3PrefixGTE applies the GTE predicate on the "s3_prefix" field.
func S3PrefixGTE(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldS3Prefix, v))
}

// S3PrefixLT applies the LT predicate on the "s3_prefix" field.
func S3PrefixLT(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldS3Prefix, v))
}

// S3PrefixLTE applies the LTE predicate on the "s3_prefix" field.
func S3PrefixLTE(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldS3Prefix, v))
}

// S3PrefixContains applies the Contains predicate on the "s3_prefix" field.
func S3PrefixContains(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldContains(FieldS3Prefix, v))
}

// S3PrefixHasPrefix applies the HasPrefix predicate on the "s3_prefix" field.
func S3PrefixHasPrefix(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldHasPrefix(FieldS3Prefix, v))
}

// S3PrefixHasSuffix applies the HasSuffix predicate on the "s3_prefix" field.
func S3PrefixHasSuffix(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldHasSuffix(FieldS3Prefix, v))
}

// S3PrefixEqualFold applies the EqualFold predicate on the "s3_prefix" field.
func S3PrefixEqualFold(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEqualFold(FieldS3Prefix, v))
}

// S3PrefixContainsFold applies the ContainsFold predicate on the "s3_prefix" field.
func S3PrefixContainsFold(v string) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldContainsFold(FieldS3Prefix, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChunkSet {
	return predicate.ChunkSet(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ChunkSet {
	return predicate.ChunkSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ChunkSet {
	return predicate.ChunkSet(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChunks applies the HasEdge predicate on the "chunks" edge.
func HasChunks() predicate.ChunkSet {
	return predicate.ChunkSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunksWith applies the HasEdge predicate on the "chunks" edge with a given conditions (other predicates).
func HasChunksWith(preds ...predicate.Chunk) predicate.ChunkSet {
	return predicate.ChunkSet(func(s *sql.Selector) {
		step := newChunksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChunkSet) predicate.ChunkSet {
	return predicate.ChunkSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChunkSet) predicate.ChunkSet {
	return predicate.ChunkSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChunkSet) predicate.ChunkSet {
	return predicate.ChunkSet(sql.NotPredicates(p))
}
