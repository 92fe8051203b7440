// Code generated by ent, DO NOT EDIT.

package entitysetmember

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entitysetmember type in the database.
	Label = "entity_set_member"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntitySetID holds the string denoting the entity_set_id field in the database.
	FieldEntitySetID = "entity_set_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldMemberOrder holds the string denoting the member_order field in the database.
	FieldMemberOrder = "member_order"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// EdgeEntitySet holds the string denoting the entity_set edge name in mutations.
	EdgeEntitySet = "entity_set"
	// Table holds the table name of the entitysetmember in the database.
	Table = "entity_set_members"
	// EntitySetTable is the table that holds the entity_set relation/edge.
	EntitySetTable = "entity_set_members"
	// EntitySetInverseTable is the table name for the EntitySet entity.
	// It exists in this package in order to avoid circular dependency with the "entityset" package.
	EntitySetInverseTable = "entity_sets"
	// EntitySetColumn is the table column denoting the entity_set relation/edge.
	EntitySetColumn = "entity_set_id"
)

// Columns holds all SQL columns for entitysetmember fields.
var Columns = []string{
	FieldID,
	FieldEntitySetID,
	FieldEntityID,
	FieldEntityType,
	FieldMemberOrder,
	FieldLabel,
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
	// MemberOrderValidator is a validator for the "member_order" field. It is called by the builders before save.
	MemberOrderValidator func(int) error
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
		return fmt.Errorf("entitysetmember: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the EntitySetMember queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntitySetID orders the results by the entity_set_id field.
func ByEntitySetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntitySetID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByMemberOrder orders the results by the member_order field.
func ByMemberOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberOrder, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByEntitySetField orders the results by entity_set field.
func ByEntitySetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitySetStep(), sql.OrderByField(field, opts...))
	}
}
func newEntitySetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitySetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EntitySetTable, EntitySetColumn),
	)
}
