// Code generated by ent, DO NOT EDIT.

package answer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// AnswerSetID applies equality check predicate on the "answer_set_id" field. It's identical to AnswerSetIDEQ.
func AnswerSetID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerSetID, v))
}

// AnswerOrder applies equality check predicate on the "answer_order" field. It's identical to AnswerOrderEQ.
func AnswerOrder(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerOrder, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldConfidence, v))
}

// AnswerSetIDEQ applies the EQ predicate on the "answer_set_id" field.
func AnswerSetIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerSetID, v))
}

// AnswerSetIDNEQ applies the NEQ predicate on the "answer_set_id" field.
func AnswerSetIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAnswerSetID, v))
}

// AnswerSetIDIn applies the In predicate on the "answer_set_id" field.
func AnswerSetIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAnswerSetID, vs...))
}

// AnswerSetIDNotIn applies the NotIn predicate on the "answer_set_id" field.
func AnswerSetIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAnswerSetID, vs...))
}

// AnswerOrderEQ applies the EQ predicate on the "answer_order" field.
func AnswerOrderEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerOrder, v))
}

// AnswerOrderNEQ applies the NEQ predicate on the "answer_order" field.
func AnswerOrderNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAnswerOrder, v))
}

// AnswerOrderIn applies the In predicate on the "answer_order" field.
func AnswerOrderIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAnswerOrder, vs...))
}

// AnswerOrderNotIn applies the NotIn predicate on the "answer_order" field.
func AnswerOrderNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAnswerOrder, vs...))
}

// AnswerOrderGT applies the GT predicate on the "answer_order" field.
func AnswerOrderGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldAnswerOrder, v))
}

// AnswerOrderGTE applies the GTE predicate on the "answer_order" field.
func AnswerOrderGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldAnswerOrder, v))
}

// AnswerOrderLT applies the LT predicate on the "answer_order" field.
func AnswerOrderLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldAnswerOrder, v))
}

// AnswerOrderLTE applies the LTE predicate on the "answer_order" field.
func AnswerOrderLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldAnswerOrder, v))
}

// AnswerTypeEQ applies the EQ predicate on the "answer_type" field.
func AnswerTypeEQ(v AnswerType) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerType, v))
}

// AnswerTypeNEQ applies the NEQ predicate on the "answer_type" field.
func AnswerTypeNEQ(v AnswerType) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAnswerType, v))
}

// AnswerTypeIn applies the In predicate on the "answer_type" field.
func AnswerTypeIn(vs ...AnswerType) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAnswerType, vs...))
}

// AnswerTypeNotIn applies the NotIn predicate on the "answer_type" field.
func AnswerTypeNotIn(vs ...AnswerType) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAnswerType, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldConfidence, v))
}

// HasAnswerSet applies the HasEdge predicate on the "answer_set" edge.
func HasAnswerSet() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnswerSetTable, AnswerSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswerSetWith applies the HasEdge predicate on the "answer_set" edge with a given conditions (other predicates).
func HasAnswerSetWith(preds ...predicate.AnswerSet) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newAnswerSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCitations applies the HasEdge predicate on the "citations" edge.
func HasCitations() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCitationsWith applies the HasEdge predicate on the "citations" edge with a given conditions (other predicates).
func HasCitationsWith(preds ...predicate.Citation) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newCitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
