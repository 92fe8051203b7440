// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
)

// EntitySetMember is the model entity for the EntitySetMember schema.
type EntitySetMember struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EntitySetID holds the value of the "entity_set_id" field.
	EntitySetID int `json:"entity_set_id,omitempty"`
	// Document or question id, per entity_type
	EntityID int `json:"entity_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType entitysetmember.EntityType `json:"entity_type,omitempty"`
	// MemberOrder holds the value of the "member_order" field.
	MemberOrder int `json:"member_order,omitempty"`
	// Per-context display label
	Label *string `json:"label,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntitySetMemberQuery when eager-loading is set.
	Edges        EntitySetMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntitySetMemberEdges holds the relations/edges for other nodes in the graph.
type EntitySetMemberEdges struct {
	// EntitySet holds the value of the entity_set edge.
	EntitySet *EntitySet `json:"entity_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EntitySetOrErr returns the EntitySet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntitySetMemberEdges) EntitySetOrErr() (*EntitySet, error) {
	if e.EntitySet != nil {
		return e.EntitySet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entityset.Label}
	}
	return nil, &NotLoadedError{edge: "entity_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitySetMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitysetmember.FieldID, entitysetmember.FieldEntitySetID, entitysetmember.FieldEntityID, entitysetmember.FieldMemberOrder:
			values[i] = new(sql.NullInt64)
		case entitysetmember.FieldEntityType, entitysetmember.FieldLabel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitySetMember fields.
func (_m *EntitySetMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitysetmember.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entitysetmember.FieldEntitySetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_set_id", values[i])
			} else if value.Valid {
				_m.EntitySetID = int(value.Int64)
			}
		case entitysetmember.FieldEntityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = int(value.Int64)
			}
		case entitysetmember.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = entitysetmember.EntityType(value.String)
			}
		case entitysetmember.FieldMemberOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field member_order", values[i])
			} else if value.Valid {
				_m.MemberOrder = int(value.Int64)
			}
		case entitysetmember.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = new(string)
				*_m.Label = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntitySetMember.
// This includes values selected through modifiers, order, etc.
func (_m *EntitySetMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntitySet queries the "entity_set" edge of the EntitySetMember entity.
func (_m *EntitySetMember) QueryEntitySet() *EntitySetQuery {
	return NewEntitySetMemberClient(_m.config).QueryEntitySet(_m)
}

// Update returns a builder for updating this EntitySetMember.
// Note that you need to call EntitySetMember.Unwrap() before calling this method if this EntitySetMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitySetMember) Update() *EntitySetMemberUpdateOne {
	return NewEntitySetMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitySetMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitySetMember) Unwrap() *EntitySetMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitySetMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitySetMember) String() string {
	var builder strings.Builder
	builder.WriteString("EntitySetMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntitySetID))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("member_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberOrder))
	builder.WriteString(", ")
	if v := _m.Label; v != nil {
		builder.WriteString("label=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// EntitySetMembers is a parsable slice of EntitySetMember.
type EntitySetMembers []*EntitySetMember
