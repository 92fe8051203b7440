// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
)

// Matrix is the model entity for the Matrix schema.
type Matrix struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// MatrixType holds the value of the "matrix_type" field.
	MatrixType matrix.MatrixType `json:"matrix_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatrixQuery when eager-loading is set.
	Edges        MatrixEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatrixEdges holds the relations/edges for other nodes in the graph.
type MatrixEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// EntitySets holds the value of the entity_sets edge.
	EntitySets []*EntitySet `json:"entity_sets,omitempty"`
	// Cells holds the value of the cells edge.
	Cells []*MatrixCell `json:"cells,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatrixEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// EntitySetsOrErr returns the EntitySets value or an error if the edge
// was not loaded in eager-loading.
func (e MatrixEdges) EntitySetsOrErr() ([]*EntitySet, error) {
	if e.loadedTypes[1] {
		return e.EntitySets, nil
	}
	return nil, &NotLoadedError{edge: "entity_sets"}
}

// CellsOrErr returns the Cells value or an error if the edge
// was not loaded in eager-loading.
func (e MatrixEdges) CellsOrErr() ([]*MatrixCell, error) {
	if e.loadedTypes[2] {
		return e.Cells, nil
	}
	return nil, &NotLoadedError{edge: "cells"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Matrix) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matrix.FieldID, matrix.FieldCompanyID:
			values[i] = new(sql.NullInt64)
		case matrix.FieldName, matrix.FieldWorkspaceID, matrix.FieldMatrixType:
			values[i] = new(sql.NullString)
		case matrix.FieldCreatedAt, matrix.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Matrix fields.
func (_m *Matrix) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matrix.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matrix.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case matrix.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case matrix.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case matrix.FieldMatrixType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matrix_type", values[i])
			} else if value.Valid {
				_m.MatrixType = matrix.MatrixType(value.String)
			}
		case matrix.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case matrix.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Matrix.
// This includes values selected through modifiers, order, etc.
func (_m *Matrix) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Matrix entity.
func (_m *Matrix) QueryCompany() *CompanyQuery {
	return NewMatrixClient(_m.config).QueryCompany(_m)
}

// QueryEntitySets queries the "entity_sets" edge of the Matrix entity.
func (_m *Matrix) QueryEntitySets() *EntitySetQuery {
	return NewMatrixClient(_m.config).QueryEntitySets(_m)
}

// QueryCells queries the "cells" edge of the Matrix entity.
func (_m *Matrix) QueryCells() *MatrixCellQuery {
	return NewMatrixClient(_m.config).QueryCells(_m)
}

// Update returns a builder for updating this Matrix.
// Note that you need to call Matrix.Unwrap() before calling this method if this Matrix
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Matrix) Update() *MatrixUpdateOne {
	return NewMatrixClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Matrix entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Matrix) Unwrap() *Matrix {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Matrix is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Matrix) String() string {
	var builder strings.Builder
	builder.WriteString("Matrix(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("matrix_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatrixType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Matrixes is a parsable slice of Matrix.
type Matrixes []*Matrix
