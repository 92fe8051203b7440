// Code generated by ent, DO NOT EDIT.

package matrix

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the matrix type in the database.
	Label = "matrix"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldMatrixType holds the string denoting the matrix_type field in the database.
	FieldMatrixType = "matrix_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeEntitySets holds the string denoting the entity_sets edge name in mutations.
	EdgeEntitySets = "entity_sets"
	// EdgeCells holds the string denoting the cells edge name in mutations.
	EdgeCells = "cells"
	// Table holds the table name of the matrix in the database.
	Table = "matrixes"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "matrixes"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// EntitySetsTable is the table that holds the entity_sets relation/edge.
	EntitySetsTable = "entity_sets"
	// EntitySetsInverseTable is the table name for the EntitySet entity.
	// It exists in this package in order to avoid circular dependency with the "entityset" package.
	EntitySetsInverseTable = "entity_sets"
	// EntitySetsColumn is the table column denoting the entity_sets relation/edge.
	EntitySetsColumn = "matrix_id"
	// CellsTable is the table that holds the cells relation/edge.
	CellsTable = "matrix_cells"
	// CellsInverseTable is the table name for the MatrixCell entity.
	// It exists in this package in order to avoid circular dependency with the "matrixcell" package.
	CellsInverseTable = "matrix_cells"
	// CellsColumn is the table column denoting the cells relation/edge.
	CellsColumn = "matrix_id"
)

// Columns holds all SQL columns for matrix fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldName,
	FieldWorkspaceID,
	FieldMatrixType,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MatrixType defines the type for the "matrix_type" enum field.
type MatrixType string

// MatrixTypeStandard is the default value of the MatrixType enum.
const DefaultMatrixType = MatrixTypeStandard

// MatrixType values.
const (
	MatrixTypeStandard           MatrixType = "standard"
	MatrixTypeCrossCorrelation   MatrixType = "cross_correlation"
	MatrixTypeGenericCorrelation MatrixType = "generic_correlation"
	MatrixTypeSynopsis           MatrixType = "synopsis"
)

func (mt MatrixType) String() string {
	return string(mt)
}

// MatrixTypeValidator is a validator for the "matrix_type" field enum values. It is called by the builders before save.
func MatrixTypeValidator(mt MatrixType) error {
	switch mt {
	case MatrixTypeStandard, MatrixTypeCrossCorrelation, MatrixTypeGenericCorrelation, MatrixTypeSynopsis:
		return nil
	default:
		return fmt.Errorf("matrix: invalid enum value for matrix_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the Matrix queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByMatrixType orders the results by the matrix_type field.
func ByMatrixType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatrixType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByEntitySetsCount orders the results by entity_sets count.
func ByEntitySetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitySetsStep(), opts...)
	}
}

// ByEntitySets orders the results by entity_sets terms.
func ByEntitySets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitySetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCellsCount orders the results by cells count.
func ByCellsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCellsStep(), opts...)
	}
}

// ByCells orders the results by cells terms.
func ByCells(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newEntitySetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitySetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntitySetsTable, EntitySetsColumn),
	)
}
func newCellsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CellsTable, CellsColumn),
	)
}
