// Code generated by ent, DO NOT EDIT.

package answer

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnswerSetID holds the string denoting the answer_set_id field in the database.
	FieldAnswerSetID = "answer_set_id"
	// FieldAnswerOrder holds the string denoting the answer_order field in the database.
	FieldAnswerOrder = "answer_order"
	// FieldAnswerType holds the string denoting the answer_type field in the database.
	FieldAnswerType = "answer_type"
	// FieldAnswerData holds the string denoting the answer_data field in the database.
	FieldAnswerData = "answer_data"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeAnswerSet holds the string denoting the answer_set edge name in mutations.
	EdgeAnswerSet = "answer_set"
	// EdgeCitations holds the string denoting the citations edge name in mutations.
	EdgeCitations = "citations"
	// Table holds the table name of the answer in the database.
	Table = "answers"
	// AnswerSetTable is the table that holds the answer_set relation/edge.
	AnswerSetTable = "answers"
	// AnswerSetInverseTable is the table name for the AnswerSet entity.
	// It exists in this package in order to avoid circular dependency with the "answerset" package.
	AnswerSetInverseTable = "answer_sets"
	// AnswerSetColumn is the table column denoting the answer_set relation/edge.
	AnswerSetColumn = "answer_set_id"
	// CitationsTable is the table that holds the citations relation/edge.
	CitationsTable = "citations"
	// CitationsInverseTable is the table name for the Citation entity.
	// It exists in this package in order to avoid circular dependency with the "citation" package.
	CitationsInverseTable = "citations"
	// CitationsColumn is the table column denoting the citations relation/edge.
	CitationsColumn = "answer_id"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldAnswerSetID,
	FieldAnswerOrder,
	FieldAnswerType,
	FieldAnswerData,
	FieldConfidence,
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
	// AnswerOrderValidator is a validator for the "answer_order" field. It is called by the builders before save.
	AnswerOrderValidator func(int) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
)

// AnswerType defines the type for the "answer_type" enum field.
type AnswerType string

// AnswerType values.
const (
	AnswerTypeText     AnswerType = "text"
	AnswerTypeDate     AnswerType = "date"
	AnswerTypeCurrency AnswerType = "currency"
	AnswerTypeSelect   AnswerType = "select"
)

func (at AnswerType) String() string {
	return string(at)
}

// AnswerTypeValidator is a validator for the "answer_type" field enum values. It is called by the builders before save.
func AnswerTypeValidator(at AnswerType) error {
	switch at {
	case AnswerTypeText, AnswerTypeDate, AnswerTypeCurrency, AnswerTypeSelect:
		return nil
	default:
		return fmt.Errorf("answer: invalid enum value for answer_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the Answer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnswerSetID orders the results by the answer_set_id field.
func ByAnswerSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerSetID, opts...).ToFunc()
}

// ByAnswerOrder orders the results by the answer_order field.
func ByAnswerOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerOrder, opts...).ToFunc()
}

// ByAnswerType orders the results by the answer_type field.
func ByAnswerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByAnswerSetField orders the results by answer_set field.
func ByAnswerSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswerSetStep(), sql.OrderByField(field, opts...))
	}
}

// ByCitationsCount orders the results by citations count.
func ByCitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCitationsStep(), opts...)
	}
}

// ByCitations orders the results by citations terms.
func ByCitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnswerSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswerSetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnswerSetTable, AnswerSetColumn),
	)
}
func newCitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CitationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
	)
}
