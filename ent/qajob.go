// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
)

// QAJob is the model entity for the QAJob schema.
type QAJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CellID holds the value of the "cell_id" field.
	CellID int `json:"cell_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// Status holds the value of the "status" field.
	Status qajob.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QAJobQuery when eager-loading is set.
	Edges        QAJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QAJobEdges holds the relations/edges for other nodes in the graph.
type QAJobEdges struct {
	// Cell holds the value of the cell edge.
	Cell *MatrixCell `json:"cell,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CellOrErr returns the Cell value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QAJobEdges) CellOrErr() (*MatrixCell, error) {
	if e.Cell != nil {
		return e.Cell, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matrixcell.Label}
	}
	return nil, &NotLoadedError{edge: "cell"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QAJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qajob.FieldID, qajob.FieldCellID, qajob.FieldCompanyID:
			values[i] = new(sql.NullInt64)
		case qajob.FieldStatus, qajob.FieldErrorMessage, qajob.FieldPodID:
			values[i] = new(sql.NullString)
		case qajob.FieldCreatedAt, qajob.FieldStartedAt, qajob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QAJob fields.
func (_m *QAJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qajob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case qajob.FieldCellID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cell_id", values[i])
			} else if value.Valid {
				_m.CellID = int(value.Int64)
			}
		case qajob.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case qajob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = qajob.Status(value.String)
			}
		case qajob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case qajob.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case qajob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case qajob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case qajob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QAJob.
// This includes values selected through modifiers, order, etc.
func (_m *QAJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCell queries the "cell" edge of the QAJob entity.
func (_m *QAJob) QueryCell() *MatrixCellQuery {
	return NewQAJobClient(_m.config).QueryCell(_m)
}

// Update returns a builder for updating this QAJob.
// Note that you need to call QAJob.Unwrap() before calling this method if this QAJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QAJob) Update() *QAJobUpdateOne {
	return NewQAJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QAJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QAJob) Unwrap() *QAJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QAJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QAJob) String() string {
	var builder strings.Builder
	builder.WriteString("QAJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cell_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CellID))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QAJobs is a parsable slice of QAJob.
type QAJobs []*QAJob
