// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// MatrixCell is the model entity for the MatrixCell schema.
type MatrixCell struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MatrixID holds the value of the "matrix_id" field.
	MatrixID int `json:"matrix_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// CellType holds the value of the "cell_type" field.
	CellType string `json:"cell_type,omitempty"`
	// Status holds the value of the "status" field.
	Status matrixcell.Status `json:"status,omitempty"`
	// CurrentAnswerSetID holds the value of the "current_answer_set_id" field.
	CurrentAnswerSetID *int `json:"current_answer_set_id,omitempty"`
	// sha-256 hex of the canonical coordinate encoding
	CellSignature string `json:"cell_signature,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatrixCellQuery when eager-loading is set.
	Edges        MatrixCellEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatrixCellEdges holds the relations/edges for other nodes in the graph.
type MatrixCellEdges struct {
	// Matrix holds the value of the matrix edge.
	Matrix *Matrix `json:"matrix,omitempty"`
	// EntityRefs holds the value of the entity_refs edge.
	EntityRefs []*CellEntityRef `json:"entity_refs,omitempty"`
	// AnswerSets holds the value of the answer_sets edge.
	AnswerSets []*AnswerSet `json:"answer_sets,omitempty"`
	// QaJobs holds the value of the qa_jobs edge.
	QaJobs []*QAJob `json:"qa_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MatrixOrErr returns the Matrix value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatrixCellEdges) MatrixOrErr() (*Matrix, error) {
	if e.Matrix != nil {
		return e.Matrix, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matrix.Label}
	}
	return nil, &NotLoadedError{edge: "matrix"}
}

// EntityRefsOrErr returns the EntityRefs value or an error if the edge
// was not loaded in eager-loading.
func (e MatrixCellEdges) EntityRefsOrErr() ([]*CellEntityRef, error) {
	if e.loadedTypes[1] {
		return e.EntityRefs, nil
	}
	return nil, &NotLoadedError{edge: "entity_refs"}
}

// AnswerSetsOrErr returns the AnswerSets value or an error if the edge
// was not loaded in eager-loading.
func (e MatrixCellEdges) AnswerSetsOrErr() ([]*AnswerSet, error) {
	if e.loadedTypes[2] {
		return e.AnswerSets, nil
	}
	return nil, &NotLoadedError{edge: "answer_sets"}
}

// QaJobsOrErr returns the QaJobs value or an error if the edge
// was not loaded in eager-loading.
func (e MatrixCellEdges) QaJobsOrErr() ([]*QAJob, error) {
	if e.loadedTypes[3] {
		return e.QaJobs, nil
	}
	return nil, &NotLoadedError{edge: "qa_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatrixCell) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matrixcell.FieldID, matrixcell.FieldMatrixID, matrixcell.FieldCompanyID, matrixcell.FieldCurrentAnswerSetID:
			values[i] = new(sql.NullInt64)
		case matrixcell.FieldCellType, matrixcell.FieldStatus, matrixcell.FieldCellSignature:
			values[i] = new(sql.NullString)
		case matrixcell.FieldCreatedAt, matrixcell.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatrixCell fields.
func (_m *MatrixCell) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matrixcell.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case matrixcell.FieldMatrixID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field matrix_id", values[i])
			} else if value.Valid {
				_m.MatrixID = int(value.Int64)
			}
		case matrixcell.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case matrixcell.FieldCellType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cell_type", values[i])
			} else if value.Valid {
				_m.CellType = value.String
			}
		case matrixcell.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = matrixcell.Status(value.String)
			}
		case matrixcell.FieldCurrentAnswerSetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_answer_set_id", values[i])
			} else if value.Valid {
				_m.CurrentAnswerSetID = new(int)
				*_m.CurrentAnswerSetID = int(value.Int64)
			}
		case matrixcell.FieldCellSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cell_signature", values[i])
			} else if value.Valid {
				_m.CellSignature = value.String
			}
		case matrixcell.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case matrixcell.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MatrixCell.
// This includes values selected through modifiers, order, etc.
func (_m *MatrixCell) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatrix queries the "matrix" edge of the MatrixCell entity.
func (_m *MatrixCell) QueryMatrix() *MatrixQuery {
	return NewMatrixCellClient(_m.config).QueryMatrix(_m)
}

// QueryEntityRefs queries the "entity_refs" edge of the MatrixCell entity.
func (_m *MatrixCell) QueryEntityRefs() *CellEntityRefQuery {
	return NewMatrixCellClient(_m.config).QueryEntityRefs(_m)
}

// QueryAnswerSets queries the "answer_sets" edge of the MatrixCell entity.
func (_m *MatrixCell) QueryAnswerSets() *AnswerSetQuery {
	return NewMatrixCellClient(_m.config).QueryAnswerSets(_m)
}

// QueryQaJobs queries the "qa_jobs" edge of the MatrixCell entity.
func (_m *MatrixCell) QueryQaJobs() *QAJobQuery {
	return NewMatrixCellClient(_m.config).QueryQaJobs(_m)
}

// Update returns a builder for updating this MatrixCell.
// Note that you need to call MatrixCell.Unwrap() before calling this method if this MatrixCell
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatrixCell) Update() *MatrixCellUpdateOne {
	return NewMatrixCellClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatrixCell entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatrixCell) Unwrap() *MatrixCell {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatrixCell is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatrixCell) String() string {
	var builder strings.Builder
	builder.WriteString("MatrixCell(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("matrix_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatrixID))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("cell_type=")
	builder.WriteString(_m.CellType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentAnswerSetID; v != nil {
		builder.WriteString("current_answer_set_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cell_signature=")
	builder.WriteString(_m.CellSignature)
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

// MatrixCells is a parsable slice of MatrixCell.
type MatrixCells []*MatrixCell
