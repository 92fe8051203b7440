// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
)

// Answer is the model entity for the Answer schema.
type Answer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AnswerSetID holds the value of the "answer_set_id" field.
	AnswerSetID int `json:"answer_set_id,omitempty"`
	// AnswerOrder holds the value of the "answer_order" field.
	AnswerOrder int `json:"answer_order,omitempty"`
	// AnswerType holds the value of the "answer_type" field.
	AnswerType answer.AnswerType `json:"answer_type,omitempty"`
	// Tagged variant payload, shape per answer_type
	AnswerData map[string]interface{} `json:"answer_data,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerQuery when eager-loading is set.
	Edges        AnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerEdges holds the relations/edges for other nodes in the graph.
type AnswerEdges struct {
	// AnswerSet holds the value of the answer_set edge.
	AnswerSet *AnswerSet `json:"answer_set,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*Citation `json:"citations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnswerSetOrErr returns the AnswerSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) AnswerSetOrErr() (*AnswerSet, error) {
	if e.AnswerSet != nil {
		return e.AnswerSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: answerset.Label}
	}
	return nil, &NotLoadedError{edge: "answer_set"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e AnswerEdges) CitationsOrErr() ([]*Citation, error) {
	if e.loadedTypes[1] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Answer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answer.FieldAnswerData:
			values[i] = new([]byte)
		case answer.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case answer.FieldID, answer.FieldAnswerSetID, answer.FieldAnswerOrder:
			values[i] = new(sql.NullInt64)
		case answer.FieldAnswerType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Answer fields.
func (_m *Answer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answer.FieldAnswerSetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_set_id", values[i])
			} else if value.Valid {
				_m.AnswerSetID = int(value.Int64)
			}
		case answer.FieldAnswerOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_order", values[i])
			} else if value.Valid {
				_m.AnswerOrder = int(value.Int64)
			}
		case answer.FieldAnswerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_type", values[i])
			} else if value.Valid {
				_m.AnswerType = answer.AnswerType(value.String)
			}
		case answer.FieldAnswerData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answer_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnswerData); err != nil {
					return fmt.Errorf("unmarshal field answer_data: %w", err)
				}
			}
		case answer.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Answer.
// This includes values selected through modifiers, order, etc.
func (_m *Answer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnswerSet queries the "answer_set" edge of the Answer entity.
func (_m *Answer) QueryAnswerSet() *AnswerSetQuery {
	return NewAnswerClient(_m.config).QueryAnswerSet(_m)
}

// QueryCitations queries the "citations" edge of the Answer entity.
func (_m *Answer) QueryCitations() *CitationQuery {
	return NewAnswerClient(_m.config).QueryCitations(_m)
}

// Update returns a builder for updating this Answer.
// Note that you need to call Answer.Unwrap() before calling this method if this Answer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Answer) Update() *AnswerUpdateOne {
	return NewAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Answer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Answer) Unwrap() *Answer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Answer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Answer) String() string {
	var builder strings.Builder
	builder.WriteString("Answer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("answer_set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerSetID))
	builder.WriteString(", ")
	builder.WriteString("answer_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerOrder))
	builder.WriteString(", ")
	builder.WriteString("answer_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerType))
	builder.WriteString(", ")
	builder.WriteString("answer_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerData))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// Answers is a parsable slice of Answer.
type Answers []*Answer
