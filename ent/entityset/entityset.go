// Code generated by ent, DO NOT EDIT.

package entityset

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entityset type in the database.
	Label = "entity_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMatrixID holds the string denoting the matrix_id field in the database.
	FieldMatrixID = "matrix_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// EdgeMatrix holds the string denoting the matrix edge name in mutations.
	EdgeMatrix = "matrix"
	// EdgeMembers holds the string denoting the members edge name in mutations.
	EdgeMembers = "members"
	// Table holds the table name of the entityset in the database.
	Table = "entity_sets"
	// MatrixTable is the table that holds the matrix relation/edge.
	MatrixTable = "entity_sets"
	// MatrixInverseTable is the table name for the Matrix entity.
	// It exists in this package in order to avoid circular dependency with the "matrix" package.
	MatrixInverseTable = "matrixes"
	// MatrixColumn is the table column denoting the matrix relation/edge.
	MatrixColumn = "matrix_id"
	// MembersTable is the table that holds the members relation/edge.
	MembersTable = "entity_set_members"
	// MembersInverseTable is the table name for the EntitySetMember entity.
	// It exists in this package in order to avoid circular dependency with the "entitysetmember" package.
	MembersInverseTable = "entity_set_members"
	// MembersColumn is the table column denoting the members relation/edge.
	MembersColumn = "entity_set_id"
)

// Columns holds all SQL columns for entityset fields.
var Columns = []string{
	FieldID,
	FieldMatrixID,
	FieldName,
	FieldEntityType,
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
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypeDocument EntityType = "document"
	EntityTypeQuestion EntityType = "question"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeDocument, EntityTypeQuestion:
		return nil
	default:
		return fmt.Errorf("entityset: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the EntitySet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMatrixID orders the results by the matrix_id field.
func ByMatrixID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatrixID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByMatrixField orders the results by matrix field.
func ByMatrixField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatrixStep(), sql.OrderByField(field, opts...))
	}
}

// ByMembersCount orders the results by members count.
func ByMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembersStep(), opts...)
	}
}

// ByMembers orders the results by members terms.
func ByMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatrixStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatrixInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MatrixTable, MatrixColumn),
	)
}
func newMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
	)
}
