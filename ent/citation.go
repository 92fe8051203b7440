// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
)

// Citation is the model entity for the Citation schema.
type Citation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AnswerID holds the value of the "answer_id" field.
	AnswerID int `json:"answer_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// QuoteText holds the value of the "quote_text" field.
	QuoteText string `json:"quote_text,omitempty"`
	// CitationOrder holds the value of the "citation_order" field.
	CitationOrder int `json:"citation_order,omitempty"`
	// Set by the grounding validator, in [0,1]
	GroundingScore *float64 `json:"grounding_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CitationQuery when eager-loading is set.
	Edges        CitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CitationEdges holds the relations/edges for other nodes in the graph.
type CitationEdges struct {
	// Answer holds the value of the answer edge.
	Answer *Answer `json:"answer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnswerOrErr returns the Answer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) AnswerOrErr() (*Answer, error) {
	if e.Answer != nil {
		return e.Answer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: answer.Label}
	}
	return nil, &NotLoadedError{edge: "answer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Citation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case citation.FieldGroundingScore:
			values[i] = new(sql.NullFloat64)
		case citation.FieldID, citation.FieldAnswerID, citation.FieldDocumentID, citation.FieldCitationOrder:
			values[i] = new(sql.NullInt64)
		case citation.FieldQuoteText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Citation fields.
func (_m *Citation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case citation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case citation.FieldAnswerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_id", values[i])
			} else if value.Valid {
				_m.AnswerID = int(value.Int64)
			}
		case citation.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case citation.FieldQuoteText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote_text", values[i])
			} else if value.Valid {
				_m.QuoteText = value.String
			}
		case citation.FieldCitationOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field citation_order", values[i])
			} else if value.Valid {
				_m.CitationOrder = int(value.Int64)
			}
		case citation.FieldGroundingScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field grounding_score", values[i])
			} else if value.Valid {
				_m.GroundingScore = new(float64)
				*_m.GroundingScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Citation.
// This includes values selected through modifiers, order, etc.
func (_m *Citation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnswer queries the "answer" edge of the Citation entity.
func (_m *Citation) QueryAnswer() *AnswerQuery {
	return NewCitationClient(_m.config).QueryAnswer(_m)
}

// Update returns a builder for updating this Citation.
// Note that you need to call Citation.Unwrap() before calling this method if this Citation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Citation) Update() *CitationUpdateOne {
	return NewCitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Citation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Citation) Unwrap() *Citation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Citation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Citation) String() string {
	var builder strings.Builder
	builder.WriteString("Citation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("answer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("quote_text=")
	builder.WriteString(_m.QuoteText)
	builder.WriteString(", ")
	builder.WriteString("citation_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.CitationOrder))
	builder.WriteString(", ")
	if v := _m.GroundingScore; v != nil {
		builder.WriteString("grounding_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Citations is a parsable slice of Citation.
type Citations []*Citation
