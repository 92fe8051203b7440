// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldID, id))
}

// ChunkSetID applies equality check predicate on the "chunk_set_id" field. It's identical to ChunkSetIDEQ.
func ChunkSetID(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkSetID, v))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCompanyID, v))
}

// S3Key applies equality check predicate on the "s3_key" field. It's identical to S3KeyEQ.
func S3Key(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldS3Key, v))
}

// ChunkOrder applies equality check predicate on the "chunk_order" field. It's identical to ChunkOrderEQ.
func ChunkOrder(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkOrder, v))
}

// ChunkSetIDEQ applies the EQ predicate on the "chunk_set_id" field.
func ChunkSetIDEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkSetID, v))
}

// ChunkSetIDNEQ applies the NEQ predicate on the "chunk_set_id" field.
func ChunkSetIDNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkSetID, v))
}

// ChunkSetIDIn applies the In predicate on the "chunk_set_id" field.
func ChunkSetIDIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkSetID, vs...))
}

// ChunkSetIDNotIn applies the NotIn predicate on the "chunk_set_id" field.
func ChunkSetIDNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkSetID, vs...))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldChunkID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldDocumentID, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldCompanyID, v))
}

// S3KeyEQ applies the EQ predicate on the "s3_key" field.
func S3KeyEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldS3Key, v))
}

// S3KeyNEQ applies the NEQ predicate on the "s3_key" field.
func S3KeyNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldS3Key, v))
}

// S3KeyIn applies the In predicate on the "s3_key" field.
func S3KeyIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldS3Key, vs...))
}

// S3KeyNotIn applies the NotIn predicate on the "s3_key" field.
func S3KeyNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldS3Key, vs...))
}

// S3KeyGT applies the GT predicate on the "s3_key" field.
func S3KeyGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldS3Key, v))
}

// S3KeyGTE applies the GTE predicate on the "s3_key" field.
func S3KeyGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldS3Key, v))
}

// S3KeyLT applies the LT predicate on the "s3_key" field.
func S3KeyLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldS3Key, v))
}

// S3KeyLTE applies the LTE predicate on the "s3_key" field.
func S3KeyLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldS3Key, v))
}

// S3KeyContains applies the Contains predicate on the "s3_key" field.
func S3KeyContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldS3Key, v))
}

// S3KeyHasPrefix applies the HasPrefix predicate on the "s3_key" field.
func S3KeyHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldS3Key, v))
}

// S3KeyHasSuffix applies the HasSuffix predicate on the "s3_key" field.
func S3KeyHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldS3Key, v))
}

// S3KeyEqualFold applies the EqualFold predicate on the "s3_key" field.
func S3KeyEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldS3Key, v))
}

// S3KeyContainsFold applies the ContainsFold predicate on the "s3_key" field.
func S3KeyContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldS3Key, v))
}

// ChunkMetadataIsNil applies the IsNil predicate on the "chunk_metadata" field.
func ChunkMetadataIsNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldIsNull(FieldChunkMetadata))
}

// ChunkMetadataNotNil applies the NotNil predicate on the "chunk_metadata" field.
func ChunkMetadataNotNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldNotNull(FieldChunkMetadata))
}

// ChunkOrderEQ applies the EQ predicate on the "chunk_order" field.
func ChunkOrderEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkOrder, v))
}

// ChunkOrderNEQ applies the NEQ predicate on the "chunk_order" field.
func ChunkOrderNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkOrder, v))
}

// ChunkOrderIn applies the In predicate on the "chunk_order" field.
func ChunkOrderIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkOrder, vs...))
}

// ChunkOrderNotIn applies the NotIn predicate on the "chunk_order" field.
func ChunkOrderNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkOrder, vs...))
}

// ChunkOrderGT applies the GT predicate on the "chunk_order" field.
func ChunkOrderGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldChunkOrder, v))
}

// ChunkOrderGTE applies the GTE predicate on the "chunk_order" field.
func ChunkOrderGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldChunkOrder, v))
}

// ChunkOrderLT applies the LT predicate on the "chunk_order" field.
func ChunkOrderLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldChunkOrder, v))
}

// ChunkOrderLTE applies the LTE predicate on the "chunk_order" field.
func ChunkOrderLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldChunkOrder, v))
}

// HasChunkSet applies the HasEdge predicate on the "chunk_set" edge.
func HasChunkSet() predicate.Chunk {
	return predicate.Chunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChunkSetTable, ChunkSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkSetWith applies the HasEdge predicate on the "chunk_set" edge with a given conditions (other predicates).
func HasChunkSetWith(preds ...predicate.ChunkSet) predicate.Chunk {
	return predicate.Chunk(func(s *sql.Selector) {
		step := newChunkSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.NotPredicates(p))
}
