// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// AnswerSet is the model entity for the AnswerSet schema.
type AnswerSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CellID holds the value of the "cell_id" field.
	CellID int `json:"cell_id,omitempty"`
	// AnswerFound holds the value of the "answer_found" field.
	AnswerFound bool `json:"answer_found,omitempty"`
	// QuestionTypeID holds the value of the "question_type_id" field.
	QuestionTypeID *int `json:"question_type_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerSetQuery when eager-loading is set.
	Edges        AnswerSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerSetEdges holds the relations/edges for other nodes in the graph.
type AnswerSetEdges struct {
	// Cell holds the value of the cell edge.
	Cell *MatrixCell `json:"cell,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CellOrErr returns the Cell value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerSetEdges) CellOrErr() (*MatrixCell, error) {
	if e.Cell != nil {
		return e.Cell, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matrixcell.Label}
	}
	return nil, &NotLoadedError{edge: "cell"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e AnswerSetEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerset.FieldAnswerFound:
			values[i] = new(sql.NullBool)
		case answerset.FieldID, answerset.FieldCellID, answerset.FieldQuestionTypeID:
			values[i] = new(sql.NullInt64)
		case answerset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerSet fields.
func (_m *AnswerSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerset.FieldCellID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cell_id", values[i])
			} else if value.Valid {
				_m.CellID = int(value.Int64)
			}
		case answerset.FieldAnswerFound:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field answer_found", values[i])
			} else if value.Valid {
				_m.AnswerFound = value.Bool
			}
		case answerset.FieldQuestionTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_type_id", values[i])
			} else if value.Valid {
				_m.QuestionTypeID = new(int)
				*_m.QuestionTypeID = int(value.Int64)
			}
		case answerset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerSet.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCell queries the "cell" edge of the AnswerSet entity.
func (_m *AnswerSet) QueryCell() *MatrixCellQuery {
	return NewAnswerSetClient(_m.config).QueryCell(_m)
}

// QueryAnswers queries the "answers" edge of the AnswerSet entity.
func (_m *AnswerSet) QueryAnswers() *AnswerQuery {
	return NewAnswerSetClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this AnswerSet.
// Note that you need to call AnswerSet.Unwrap() before calling this method if this AnswerSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerSet) Update() *AnswerSetUpdateOne {
	return NewAnswerSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerSet) Unwrap() *AnswerSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerSet) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cell_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CellID))
	builder.WriteString(", ")
	builder.WriteString("answer_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerFound))
	builder.WriteString(", ")
	if v := _m.QuestionTypeID; v != nil {
		builder.WriteString("question_type_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerSets is a parsable slice of AnswerSet.
type AnswerSets []*AnswerSet
