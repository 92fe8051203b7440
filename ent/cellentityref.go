// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// CellEntityRef is the model entity for the CellEntityRef schema.
type CellEntityRef struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CellID holds the value of the "cell_id" field.
	CellID int `json:"cell_id,omitempty"`
	// Axis role, e.g. document or question
	Role string `json:"role,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID int `json:"entity_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CellEntityRefQuery when eager-loading is set.
	Edges        CellEntityRefEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CellEntityRefEdges holds the relations/edges for other nodes in the graph.
type CellEntityRefEdges struct {
	// Cell holds the value of the cell edge.
	Cell *MatrixCell `json:"cell,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CellOrErr returns the Cell value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CellEntityRefEdges) CellOrErr() (*MatrixCell, error) {
	if e.Cell != nil {
		return e.Cell, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matrixcell.Label}
	}
	return nil, &NotLoadedError{edge: "cell"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CellEntityRef) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cellentityref.FieldID, cellentityref.FieldCellID, cellentityref.FieldEntityID:
			values[i] = new(sql.NullInt64)
		case cellentityref.FieldRole:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CellEntityRef fields.
func (_m *CellEntityRef) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cellentityref.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cellentityref.FieldCellID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cell_id", values[i])
			} else if value.Valid {
				_m.CellID = int(value.Int64)
			}
		case cellentityref.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case cellentityref.FieldEntityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CellEntityRef.
// This includes values selected through modifiers, order, etc.
func (_m *CellEntityRef) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCell queries the "cell" edge of the CellEntityRef entity.
func (_m *CellEntityRef) QueryCell() *MatrixCellQuery {
	return NewCellEntityRefClient(_m.config).QueryCell(_m)
}

// Update returns a builder for updating this CellEntityRef.
// Note that you need to call CellEntityRef.Unwrap() before calling this method if this CellEntityRef
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CellEntityRef) Update() *CellEntityRefUpdateOne {
	return NewCellEntityRefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CellEntityRef entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CellEntityRef) Unwrap() *CellEntityRef {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CellEntityRef is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CellEntityRef) String() string {
	var builder strings.Builder
	builder.WriteString("CellEntityRef(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cell_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CellID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteByte(')')
	return builder.String()
}

// CellEntityRefs is a parsable slice of CellEntityRef.
type CellEntityRefs []*CellEntityRef
