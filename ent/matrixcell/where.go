// Code generated by ent, DO NOT EDIT.

package matrixcell

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldID, id))
}

// MatrixID applies equality check predicate on the "matrix_id" field. It's identical to MatrixIDEQ.
func MatrixID(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldMatrixID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCompanyID, v))
}

// CellType applies equality check predicate on the "cell_type" field. It's identical to CellTypeEQ.
func CellType(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCellType, v))
}

// CurrentAnswerSetID applies equality check predicate on the "current_answer_set_id" field. It's identical to CurrentAnswerSetIDEQ.
func CurrentAnswerSetID(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCurrentAnswerSetID, v))
}

// CellSignature applies equality check predicate on the "cell_signature" field. It's identical to CellSignatureEQ.
func CellSignature(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCellSignature, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldDeletedAt, v))
}

// MatrixIDEQ applies the EQ predicate on the "matrix_id" field.
func MatrixIDEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldMatrixID, v))
}

// MatrixIDNEQ applies the NEQ predicate on the "matrix_id" field.
func MatrixIDNEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldMatrixID, v))
}

// MatrixIDIn applies the In predicate on the "matrix_id" field.
func MatrixIDIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldMatrixID, vs...))
}

// MatrixIDNotIn applies the NotIn predicate on the "matrix_id" field.
func MatrixIDNotIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldMatrixID, vs...))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldCompanyID, v))
}

// CellTypeEQ applies the EQ predicate on the "cell_type" field.
func CellTypeEQ(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCellType, v))
}

// CellTypeNEQ applies the NEQ predicate on the "cell_type" field.
func CellTypeNEQ(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldCellType, v))
}

// CellTypeIn applies the In predicate on the "cell_type" field.
func CellTypeIn(vs ...string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldCellType, vs...))
}

// CellTypeNotIn applies the NotIn predicate on the "cell_type" field.
func CellTypeNotIn(vs ...string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldCellType, vs...))
}

// CellTypeGT applies the GT predicate on the "cell_type" field.
func CellTypeGT(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldCellType, v))
}

// CellTypeGTE applies the GTE predicate on the "cell_type" field.
func CellTypeGTE(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldCellType, v))
}

// CellTypeLT applies the LT predicate on the "cell_type" field.
func CellTypeLT(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldCellType, v))
}

// CellTypeLTE applies the LTE predicate on the "cell_type" field.
func CellTypeLTE(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldCellType, v))
}

// CellTypeContains applies the Contains predicate on the "cell_type" field.
func CellTypeContains(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldContains(FieldCellType, v))
}

// CellTypeHasPrefix applies the HasPrefix predicate on the "cell_type" field.
func CellTypeHasPrefix(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldHasPrefix(FieldCellType, v))
}

// CellTypeHasSuffix applies the HasSuffix predicate on the "cell_type" field.
func CellTypeHasSuffix(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldHasSuffix(FieldCellType, v))
}

// CellTypeEqualFold applies the EqualFold predicate on the "cell_type" field.
func CellTypeEqualFold(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEqualFold(FieldCellType, v))
}

// CellTypeContainsFold applies the ContainsFold predicate on the "cell_type" field.
func CellTypeContainsFold(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldContainsFold(FieldCellType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentAnswerSetIDEQ applies the EQ predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDNEQ applies the NEQ predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDNEQ(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDIn applies the In predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldCurrentAnswerSetID, vs...))
}

// CurrentAnswerSetIDNotIn applies the NotIn predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDNotIn(vs ...int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldCurrentAnswerSetID, vs...))
}

// CurrentAnswerSetIDGT applies the GT predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDGT(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDGTE applies the GTE predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDGTE(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDLT applies the LT predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDLT(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDLTE applies the LTE predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDLTE(v int) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldCurrentAnswerSetID, v))
}

// CurrentAnswerSetIDIsNil applies the IsNil predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDIsNil() predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIsNull(FieldCurrentAnswerSetID))
}

// CurrentAnswerSetIDNotNil applies the NotNil predicate on the "current_answer_set_id" field.
func CurrentAnswerSetIDNotNil() predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotNull(FieldCurrentAnswerSetID))
}

// CellSignatureEQ applies the EQ predicate on the "cell_signature" field.
func CellSignatureEQ(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCellSignature, v))
}

// CellSignatureNEQ applies the NEQ predicate on the "cell_signature" field.
func CellSignatureNEQ(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldCellSignature, v))
}

// CellSignatureIn applies the In predicate on the "cell_signature" field.
func CellSignatureIn(vs ...string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldCellSignature, vs...))
}

// CellSignatureNotIn applies the NotIn predicate on the "cell_signature" field.
func CellSignatureNotIn(vs ...string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldCellSignature, vs...))
}

// CellSignatureGT applies the GT predicate on the "cell_signature" field.
func CellSignatureGT(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldCellSignature, v))
}

// CellSignatureGTE applies the GTE predicate on the "cell_signature" field.
func CellSignatureGTE(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldCellSignature, v))
}

// CellSignatureLT applies the LT predicate on the "cell_signature" field.
func CellSignatureLT(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldCellSignature, v))
}

// CellSignatureLTE applies the LTE predicate on the "cell_signature" field.
func CellSignatureLTE(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldCellSignature, v))
}

// CellSignatureContains applies the Contains predicate on the "cell_signature" field.
func CellSignatureContains(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldContains(FieldCellSignature, v))
}

// CellSignatureHasPrefix applies the HasPrefix predicate on the "cell_signature" field.
func CellSignatureHasPrefix(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldHasPrefix(FieldCellSignature, v))
}

// CellSignatureHasSuffix applies the HasSuffix predicate on the "cell_signature" field.
func CellSignatureHasSuffix(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldHasSuffix(FieldCellSignature, v))
}

// CellSignatureEqualFold applies the EqualFold predicate on the "cell_signature" field.
func CellSignatureEqualFold(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEqualFold(FieldCellSignature, v))
}

// CellSignatureContainsFold applies the ContainsFold predicate on the "cell_signature" field.
func CellSignatureContainsFold(v string) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldContainsFold(FieldCellSignature, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.MatrixCell {
	return predicate.MatrixCell(sql.FieldNotNull(FieldDeletedAt))
}

// HasMatrix applies the HasEdge predicate on the "matrix" edge.
func HasMatrix() predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MatrixTable, MatrixColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatrixWith applies the HasEdge predicate on the "matrix" edge with a given conditions (other predicates).
func HasMatrixWith(preds ...predicate.Matrix) predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := newMatrixStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntityRefs applies the HasEdge predicate on the "entity_refs" edge.
func HasEntityRefs() predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntityRefsTable, EntityRefsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityRefsWith applies the HasEdge predicate on the "entity_refs" edge with a given conditions (other predicates).
func HasEntityRefsWith(preds ...predicate.CellEntityRef) predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := newEntityRefsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswerSets applies the HasEdge predicate on the "answer_sets" edge.
func HasAnswerSets() predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswerSetsTable, AnswerSetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswerSetsWith applies the HasEdge predicate on the "answer_sets" edge with a given conditions (other predicates).
func HasAnswerSetsWith(preds ...predicate.AnswerSet) predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := newAnswerSetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQaJobs applies the HasEdge predicate on the "qa_jobs" edge.
func HasQaJobs() predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QaJobsTable, QaJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQaJobsWith applies the HasEdge predicate on the "qa_jobs" edge with a given conditions (other predicates).
func HasQaJobsWith(preds ...predicate.QAJob) predicate.MatrixCell {
	return predicate.MatrixCell(func(s *sql.Selector) {
		step := newQaJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatrixCell) predicate.MatrixCell {
	return predicate.MatrixCell(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatrixCell) predicate.MatrixCell {
	return predicate.MatrixCell(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatrixCell) predicate.MatrixCell {
	return predicate.MatrixCell(sql.NotPredicates(p))
}
