// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
)

// EntitySet is the model entity for the EntitySet schema.
type EntitySet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MatrixID holds the value of the "matrix_id" field.
	MatrixID int `json:"matrix_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType entityset.EntityType `json:"entity_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntitySetQuery when eager-loading is set.
	Edges        EntitySetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntitySetEdges holds the relations/edges for other nodes in the graph.
type EntitySetEdges struct {
	// Matrix holds the value of the matrix edge.
	Matrix *Matrix `json:"matrix,omitempty"`
	// Members holds the value of the members edge.
	Members []*EntitySetMember `json:"members,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MatrixOrErr returns the Matrix value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntitySetEdges) MatrixOrErr() (*Matrix, error) {
	if e.Matrix != nil {
		return e.Matrix, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matrix.Label}
	}
	return nil, &NotLoadedError{edge: "matrix"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e EntitySetEdges) MembersOrErr() ([]*EntitySetMember, error) {
	if e.loadedTypes[1] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitySet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityset.FieldID, entityset.FieldMatrixID:
			values[i] = new(sql.NullInt64)
		case entityset.FieldName, entityset.FieldEntityType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitySet fields.
func (_m *EntitySet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entityset.FieldMatrixID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field matrix_id", values[i])
			} else if value.Valid {
				_m.MatrixID = int(value.Int64)
			}
		case entityset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case entityset.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = entityset.EntityType(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntitySet.
// This includes values selected through modifiers, order, etc.
func (_m *EntitySet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatrix queries the "matrix" edge of the EntitySet entity.
func (_m *EntitySet) QueryMatrix() *MatrixQuery {
	return NewEntitySetClient(_m.config).QueryMatrix(_m)
}

// QueryMembers queries the "members" edge of the EntitySet entity.
func (_m *EntitySet) QueryMembers() *EntitySetMemberQuery {
	return NewEntitySetClient(_m.config).QueryMembers(_m)
}

// Update returns a builder for updating this EntitySet.
// Note that you need to call EntitySet.Unwrap() before calling this method if this EntitySet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitySet) Update() *EntitySetUpdateOne {
	return NewEntitySetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitySet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitySet) Unwrap() *EntitySet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitySet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitySet) String() string {
	var builder strings.Builder
	builder.WriteString("EntitySet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("matrix_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatrixID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteByte(')')
	return builder.String()
}

// EntitySets is a parsable slice of EntitySet.
type EntitySets []*EntitySet
