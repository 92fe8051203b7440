// Code generated by ent, DO NOT EDIT.

package answerset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the answerset type in the database.
	Label = "answer_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCellID holds the string denoting the cell_id field in the database.
	FieldCellID = "cell_id"
	// FieldAnswerFound holds the string denoting the answer_found field in the database.
	FieldAnswerFound = "answer_found"
	// FieldQuestionTypeID holds the string denoting the question_type_id field in the database.
	FieldQuestionTypeID = "question_type_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCell holds the string denoting the cell edge name in mutations.
	EdgeCell = "cell"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the answerset in the database.
	Table = "answer_sets"
	// CellTable is the table that holds the cell relation/edge.
	CellTable = "answer_sets"
	// CellInverseTable is the table name for the MatrixCell entity.
	// It exists in this package in order to avoid circular dependency with the "matrixcell" package.
	CellInverseTable = "matrix_cells"
	// CellColumn is the table column denoting the cell relation/edge.
	CellColumn = "cell_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "answer_set_id"
)

// Columns holds all SQL columns for answerset fields.
var Columns = []string{
	FieldID,
	FieldCellID,
	FieldAnswerFound,
	FieldQuestionTypeID,
	FieldCreatedAt,
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
	// DefaultAnswerFound holds the default value on creation for the "answer_found" field.
	DefaultAnswerFound bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnswerSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCellID orders the results by the cell_id field.
func ByCellID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellID, opts...).ToFunc()
}

// ByAnswerFound orders the results by the answer_found field.
func ByAnswerFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerFound, opts...).ToFunc()
}

// ByQuestionTypeID orders the results by the question_type_id field.
func ByQuestionTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionTypeID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCellField orders the results by cell field.
func ByCellField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCellStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
