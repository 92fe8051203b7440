// Code generated by ent, DO NOT EDIT.

package answerset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLTE(FieldID, id))
}

// CellID applies equality check predicate on the "cell_id" field. It's identical to CellIDEQ.
func CellID(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldCellID, v))
}

// AnswerFound applies equality check predicate on the "answer_found" field. It's identical to AnswerFoundEQ.
func AnswerFound(v bool) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldAnswerFound, v))
}

// QuestionTypeID applies equality check predicate on the "question_type_id" field. It's identical to QuestionTypeIDEQ.
func QuestionTypeID(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldQuestionTypeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CellIDEQ applies the EQ predicate on the "cell_id" field.
func CellIDEQ(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldCellID, v))
}

// CellIDNEQ applies the NEQ predicate on the "cell_id" field.
func CellIDNEQ(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNEQ(FieldCellID, v))
}

// CellIDIn applies the In predicate on the "cell_id" field.
func CellIDIn(vs ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldIn(FieldCellID, vs...))
}

// CellIDNotIn applies the NotIn predicate on the "cell_id" field.
func CellIDNotIn(vs ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNotIn(FieldCellID, vs...))
}

// AnswerFoundEQ applies the EQ predicate on the "answer_found" field.
func AnswerFoundEQ(v bool) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldAnswerFound, v))
}

// AnswerFoundNEQ applies the NEQ predicate on the "answer_found" field.
func AnswerFoundNEQ(v bool) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNEQ(FieldAnswerFound, v))
}

// QuestionTypeIDEQ applies the EQ predicate on the "question_type_id" field.
func QuestionTypeIDEQ(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldQuestionTypeID, v))
}

// QuestionTypeIDNEQ applies the NEQ predicate on the "question_type_id" field.
func QuestionTypeIDNEQ(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNEQ(FieldQuestionTypeID, v))
}

// QuestionTypeIDIn applies the In predicate on the "question_type_id" field.
func QuestionTypeIDIn(vs ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldIn(FieldQuestionTypeID, vs...))
}

// QuestionTypeIDNotIn applies the NotIn predicate on the "question_type_id" field.
func QuestionTypeIDNotIn(vs ...int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNotIn(FieldQuestionTypeID, vs...))
}

// QuestionTypeIDGT applies the GT predicate on the "question_type_id" field.
func QuestionTypeIDGT(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGT(FieldQuestionTypeID, v))
}

// QuestionTypeIDGTE applies the GTE predicate on the "question_type_id" field.
func QuestionTypeIDGTE(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGTE(FieldQuestionTypeID, v))
}

// QuestionTypeIDLT applies the LT predicate on the "question_type_id" field.
func QuestionTypeIDLT(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLT(FieldQuestionTypeID, v))
}

// QuestionTypeIDLTE applies the LTE predicate on the "question_type_id" field.
func QuestionTypeIDLTE(v int) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLTE(FieldQuestionTypeID, v))
}

// QuestionTypeIDIsNil applies the IsNil predicate on the "question_type_id" field.
func QuestionTypeIDIsNil() predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldIsNull(FieldQuestionTypeID))
}

// QuestionTypeIDNotNil applies the NotNil predicate on the "question_type_id" field.
func QuestionTypeIDNotNil() predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNotNull(FieldQuestionTypeID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnswerSet {
	return predicate.AnswerSet(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCell applies the HasEdge predicate on the "cell" edge.
func HasCell() predicate.AnswerSet {
	return predicate.AnswerSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellWith applies the HasEdge predicate on the "cell" edge with a given conditions (other predicates).
func HasCellWith(preds ...predicate.MatrixCell) predicate.AnswerSet {
	return predicate.AnswerSet(func(s *sql.Selector) {
		step := newCellStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.AnswerSet {
	return predicate.AnswerSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.AnswerSet {
	return predicate.AnswerSet(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerSet) predicate.AnswerSet {
	return predicate.AnswerSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerSet) predicate.AnswerSet {
	return predicate.AnswerSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerSet) predicate.AnswerSet {
	return predicate.AnswerSet(sql.NotPredicates(p))
}
