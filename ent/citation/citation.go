// Code generated by ent, DO NOT EDIT.

package citation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the citation type in the database.
	Label = "citation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnswerID holds the string denoting the answer_id field in the database.
	FieldAnswerID = "answer_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldQuoteText holds the string denoting the quote_text field in the database.
	FieldQuoteText = "quote_text"
	// FieldCitationOrder holds the string denoting the citation_order field in the database.
	FieldCitationOrder = "citation_order"
	// FieldGroundingScore holds the string denoting the grounding_score field in the database.
	FieldGroundingScore = "grounding_score"
	// EdgeAnswer holds the string denoting the answer edge name in mutations.
	EdgeAnswer = "answer"
	// Table holds the table name of the citation in the database.
	Table = "citations"
	// AnswerTable is the table that holds the answer relation/edge.
	AnswerTable = "citations"
	// AnswerInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswerInverseTable = "answers"
	// AnswerColumn is the table column denoting the answer relation/edge.
	AnswerColumn = "answer_id"
)

// Columns holds all SQL columns for citation fields.
var Columns = []string{
	FieldID,
	FieldAnswerID,
	FieldDocumentID,
	FieldQuoteText,
	FieldCitationOrder,
	FieldGroundingScore,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CitationOrderValidator is a validator for the "citation_order" field. It is called by the builders before save.
	CitationOrderValidator func(int) error
)

// OrderOption defines the ordering options for the Citation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnswerID orders the results by the answer_id field.
func ByAnswerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByQuoteText orders the results by the quote_text field.
func ByQuoteText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuoteText, opts...).ToFunc()
}

// ByCitationOrder orders the results by the citation_order field.
func ByCitationOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationOrder, opts...).ToFunc()
}

// ByGroundingScore orders the results by the grounding_score field.
func ByGroundingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroundingScore, opts...).ToFunc()
}

// ByAnswerField orders the results by answer field.
func ByAnswerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswerStep(), sql.OrderByField(field, opts...))
	}
}
func newAnswerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnswerTable, AnswerColumn),
	)
}
