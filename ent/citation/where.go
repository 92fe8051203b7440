// Code generated by ent, DO NOT EDIT.

package citation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldID, id))
}

// AnswerID applies equality check predicate on the "answer_id" field. It's identical to AnswerIDEQ.
func AnswerID(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldAnswerID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldDocumentID, v))
}

// QuoteText applies equality check predicate on the "quote_text" field. It's identical to QuoteTextEQ.
func QuoteText(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldQuoteText, v))
}

// CitationOrder applies equality check predicate on the "citation_order" field. It's identical to CitationOrderEQ.
func CitationOrder(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldCitationOrder, v))
}

// GroundingScore applies equality check predicate on the "grounding_score" field. It's identical to GroundingScoreEQ.
func GroundingScore(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldGroundingScore, v))
}

// AnswerIDEQ applies the EQ predicate on the "answer_id" field.
func AnswerIDEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldAnswerID, v))
}

// AnswerIDNEQ applies the NEQ predicate on the "answer_id" field.
func AnswerIDNEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldAnswerID, v))
}

// AnswerIDIn applies the In predicate on the "answer_id" field.
func AnswerIDIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldAnswerID, vs...))
}

// AnswerIDNotIn applies the NotIn predicate on the "answer_id" field.
func AnswerIDNotIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldAnswerID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldDocumentID, v))
}

// QuoteTextEQ applies the EQ predicate on the "quote_text" field.
func QuoteTextEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldQuoteText, v))
}

// QuoteTextNEQ applies the NEQ predicate on the "quote_text" field.
func QuoteTextNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldQuoteText, v))
}

// QuoteTextIn applies the In predicate on the "quote_text" field.
func QuoteTextIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldQuoteText, vs...))
}

// QuoteTextNotIn applies the NotIn predicate on the "quote_text" field.
func QuoteTextNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldQuoteText, vs...))
}

// QuoteTextGT applies the GT predicate on the "quote_text" field.
func QuoteTextGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldQuoteText, v))
}

// QuoteTextGTE applies the GTE predicate on the "quote_text" field.
func QuoteTextGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldQuoteText, v))
}

// QuoteTextLT applies the LT predicate on the "quote_text" field.
func QuoteTextLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldQuoteText, v))
}

// QuoteTextLTE applies the LTE predicate on the "quote_text" field.
func QuoteTextLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldQuoteText, v))
}

// QuoteTextContains applies the Contains predicate on the "quote_text" field.
func QuoteTextContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldQuoteText, v))
}

// QuoteTextHasPrefix applies the HasPrefix predicate on the "quote_text" field.
func QuoteTextHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldQuoteText, v))
}

// QuoteTextHasSuffix applies the HasSuffix predicate on the "quote_text" field.
func QuoteTextHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldQuoteText, v))
}

// QuoteTextEqualFold applies the EqualFold predicate on the "quote_text" field.
func QuoteTextEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldQuoteText, v))
}

// QuoteTextContainsFold applies the ContainsFold predicate on the "quote_text" field.
func QuoteTextContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldQuoteText, v))
}

// CitationOrderEQ applies the EQ predicate on the "citation_order" field.
func CitationOrderEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldCitationOrder, v))
}

// CitationOrderNEQ applies the NEQ predicate on the "citation_order" field.
func CitationOrderNEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldCitationOrder, v))
}

// CitationOrderIn applies the In predicate on the "citation_order" field.
func CitationOrderIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldCitationOrder, vs...))
}

// CitationOrderNotIn applies the NotIn predicate on the "citation_order" field.
func CitationOrderNotIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldCitationOrder, vs...))
}

// CitationOrderGT applies the GT predicate on the "citation_order" field.
func CitationOrderGT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldCitationOrder, v))
}

// CitationOrderGTE applies the GTE predicate on the "citation_order" field.
func CitationOrderGTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldCitationOrder, v))
}

// CitationOrderLT applies the LT predicate on the "citation_order" field.
func CitationOrderLT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldCitationOrder, v))
}

// CitationOrderLTE applies the LTE predicate on the "citation_order" field.
func CitationOrderLTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldCitationOrder, v))
}

// GroundingScoreEQ applies the EQ predicate on the "grounding_score" field.
func GroundingScoreEQ(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldGroundingScore, v))
}

// GroundingScoreNEQ applies the NEQ predicate on the "grounding_score" field.
func GroundingScoreNEQ(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldGroundingScore, v))
}

// GroundingScoreIn applies the In predicate on the "grounding_score" field.
func GroundingScoreIn(vs ...float64) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldGroundingScore, vs...))
}

// GroundingScoreNotIn applies the NotIn predicate on the "grounding_score" field.
func GroundingScoreNotIn(vs ...float64) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldGroundingScore, vs...))
}

// GroundingScoreGT applies the GT predicate on the "grounding_score" field.
func GroundingScoreGT(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldGroundingScore, v))
}

// GroundingScoreGTE applies the GTE predicate on the "grounding_score" field.
func GroundingScoreGTE(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldGroundingScore, v))
}

// GroundingScoreLT applies the LT predicate on the "grounding_score" field.
func GroundingScoreLT(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldGroundingScore, v))
}

// GroundingScoreLTE applies the LTE predicate on the "grounding_score" field.
func GroundingScoreLTE(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldGroundingScore, v))
}

// GroundingScoreIsNil applies the IsNil predicate on the "grounding_score" field.
func GroundingScoreIsNil() predicate.Citation {
	return predicate.Citation(sql.FieldIsNull(FieldGroundingScore))
}

// GroundingScoreNotNil applies the NotNil predicate on the "grounding_score" field.
func GroundingScoreNotNil() predicate.Citation {
	return predicate.Citation(sql.FieldNotNull(FieldGroundingScore))
}

// HasAnswer applies the HasEdge predicate on the "answer" edge.
func HasAnswer() predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnswerTable, AnswerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswerWith applies the HasEdge predicate on the "answer" edge with a given conditions (other predicates).
func HasAnswerWith(preds ...predicate.Answer) predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := newAnswerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.NotPredicates(p))
}
