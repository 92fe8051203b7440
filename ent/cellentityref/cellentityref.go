// Code generated by ent, DO NOT EDIT.

package cellentityref

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cellentityref type in the database.
	Label = "cell_entity_ref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCellID holds the string denoting the cell_id field in the database.
	FieldCellID = "cell_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// EdgeCell holds the string denoting the cell edge name in mutations.
	EdgeCell = "cell"
	// Table holds the table name of the cellentityref in the database.
	Table = "cell_entity_refs"
	// CellTable is the table that holds the cell relation/edge.
	CellTable = "cell_entity_refs"
	// CellInverseTable is the table name for the MatrixCell entity.
	// It exists in this package in order to avoid circular dependency with the "matrixcell" package.
	CellInverseTable = "matrix_cells"
	// CellColumn is the table column denoting the cell relation/edge.
	CellColumn = "cell_id"
)

// Columns holds all SQL columns for cellentityref fields.
var Columns = []string{
	FieldID,
	FieldCellID,
	FieldRole,
	FieldEntityID,
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
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
)

// OrderOption defines the ordering options for the CellEntityRef queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCellID orders the results by the cell_id field.
func ByCellID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByCellField orders the results by cell field.
func ByCellField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellStep(), sql.OrderByField(field, opts...))
	}
}
func newCellStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
	)
}
