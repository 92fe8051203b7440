// Code generated by ent, DO NOT EDIT.

package matrixcell

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the matrixcell type in the database.
	Label = "matrix_cell"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMatrixID holds the string denoting the matrix_id field in the database.
	FieldMatrixID = "matrix_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldCellType holds the string denoting the cell_type field in the database.
	FieldCellType = "cell_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentAnswerSetID holds the string denoting the current_answer_set_id field in the database.
	FieldCurrentAnswerSetID = "current_answer_set_id"
	// FieldCellSignature holds the string denoting the cell_signature field in the database.
	FieldCellSignature = "cell_signature"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeMatrix holds the string denoting the matrix edge name in mutations.
	EdgeMatrix = "matrix"
	// EdgeEntityRefs holds the string denoting the entity_refs edge name in mutations.
	EdgeEntityRefs = "entity_refs"
	// EdgeAnswerSets holds the string denoting the answer_sets edge name in mutations.
	EdgeAnswerSets = "answer_sets"
	// EdgeQaJobs holds the string denoting the qa_jobs edge name in mutations.
	EdgeQaJobs = "qa_jobs"
	// Table holds the table name of the matrixcell in the database.
	Table = "matrix_cells"
	// MatrixTable is the table that holds the matrix relation/edge.
	MatrixTable = "matrix_cells"
	// MatrixInverseTable is the table name for the Matrix entity.
	// It exists in this package in order to avoid circular dependency with the "matrix" package.
	MatrixInverseTable = "matrixes"
	// MatrixColumn is the table column denoting the matrix relation/edge.
	MatrixColumn = "matrix_id"
	// EntityRefsTable is the table that holds the entity_refs relation/edge.
	EntityRefsTable = "cell_entity_refs"
	// EntityRefsInverseTable is the table name for the CellEntityRef entity.
	// It exists in this package in order to avoid circular dependency with the "cellentityref" package.
	EntityRefsInverseTable = "cell_entity_refs"
	// EntityRefsColumn is the table column denoting the entity_refs relation/edge.
	EntityRefsColumn = "cell_id"
	// AnswerSetsTable is the table that holds the answer_sets relation/edge.
	AnswerSetsTable = "answer_sets"
	// AnswerSetsInverseTable is the table name for the AnswerSet entity.
	// It exists in this package in order to avoid circular dependency with the "answerset" package.
	AnswerSetsInverseTable = "answer_sets"
	// AnswerSetsColumn is the table column denoting the answer_sets relation/edge.
	AnswerSetsColumn = "cell_id"
	// QaJobsTable is the table that holds the qa_jobs relation/edge.
	QaJobsTable = "qa_jobs"
	// QaJobsInverseTable is the table name for the QAJob entity.
	// It exists in this package in order to avoid circular dependency with the "qajob" package.
	QaJobsInverseTable = "qa_jobs"
	// QaJobsColumn is the table column denoting the qa_jobs relation/edge.
	QaJobsColumn = "cell_id"
)

// Columns holds all SQL columns for matrixcell fields.
var Columns = []string{
	FieldID,
	FieldMatrixID,
	FieldCompanyID,
	FieldCellType,
	FieldStatus,
	FieldCurrentAnswerSetID,
	FieldCellSignature,
	FieldCreatedAt,
	FieldDeletedAt,
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
	// CellSignatureValidator is a validator for the "cell_signature" field. It is called by the builders before save.
	CellSignatureValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("matrixcell: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MatrixCell queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMatrixID orders the results by the matrix_id field.
func ByMatrixID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatrixID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByCellType orders the results by the cell_type field.
func ByCellType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentAnswerSetID orders the results by the current_answer_set_id field.
func ByCurrentAnswerSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAnswerSetID, opts...).ToFunc()
}

// ByCellSignature orders the results by the cell_signature field.
func ByCellSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellSignature, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByMatrixField orders the results by matrix field.
func ByMatrixField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatrixStep(), sql.OrderByField(field, opts...))
	}
}

// ByEntityRefsCount orders the results by entity_refs count.
func ByEntityRefsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntityRefsStep(), opts...)
	}
}

// ByEntityRefs orders the results by entity_refs terms.
func ByEntityRefs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityRefsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnswerSetsCount orders the results by answer_sets count.
func ByAnswerSetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswerSetsStep(), opts...)
	}
}

// ByAnswerSets orders the results by answer_sets terms.
func ByAnswerSets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswerSetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQaJobsCount orders the results by qa_jobs count.
func ByQaJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQaJobsStep(), opts...)
	}
}

// ByQaJobs orders the results by qa_jobs terms.
func ByQaJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQaJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatrixStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatrixInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MatrixTable, MatrixColumn),
	)
}
func newEntityRefsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityRefsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntityRefsTable, EntityRefsColumn),
	)
}
func newAnswerSetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswerSetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswerSetsTable, AnswerSetsColumn),
	)
}
func newQaJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QaJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QaJobsTable, QaJobsColumn),
	)
}
