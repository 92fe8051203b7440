// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/document"
)

// ChunkSet is the model entity for the ChunkSet schema.
type ChunkSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// hierarchical | semantic | fixed_size | sentence | paragraph | agentic
	ChunkingStrategy string `json:"chunking_strategy,omitempty"`
	// TotalChunks holds the value of the "total_chunks" field.
	TotalChunks int `json:"total_chunks,omitempty"`
	// Object-store prefix holding chunk bodies and manifest
	S3Prefix string `json:"s3_prefix,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChunkSetQuery when eager-loading is set.
	Edges        ChunkSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChunkSetEdges holds the relations/edges for other nodes in the graph.
type ChunkSetEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Chunks holds the value of the chunks edge.
	Chunks []*Chunk `json:"chunks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChunkSetEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e ChunkSetEdges) ChunksOrErr() ([]*Chunk, error) {
	if e.loadedTypes[1] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChunkSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunkset.FieldID, chunkset.FieldDocumentID, chunkset.FieldCompanyID, chunkset.FieldTotalChunks:
			values[i] = new(sql.NullInt64)
		case chunkset.FieldChunkingStrategy, chunkset.FieldS3Prefix:
			values[i] = new(sql.NullString)
		case chunkset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChunkSet fields.
func (_m *ChunkSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunkset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chunkset.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case chunkset.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case chunkset.FieldChunkingStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunking_strategy", values[i])
			} else if value.Valid {
				_m.ChunkingStrategy = value.String
			}
		case chunkset.FieldTotalChunks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chunks", values[i])
			} else if value.Valid {
				_m.TotalChunks = int(value.Int64)
			}
		case chunkset.FieldS3Prefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_prefix", values[i])
			} else if value.Valid {
				_m.S3Prefix = value.String
			}
		case chunkset.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChunkSet.
// This includes values selected through modifiers, order, etc.
func (_m *ChunkSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ChunkSet entity.
func (_m *ChunkSet) QueryDocument() *DocumentQuery {
	return NewChunkSetClient(_m.config).QueryDocument(_m)
}

// QueryChunks queries the "chunks" edge of the ChunkSet entity.
func (_m *ChunkSet) QueryChunks() *ChunkQuery {
	return NewChunkSetClient(_m.config).QueryChunks(_m)
}

// Update returns a builder for updating this ChunkSet.
// Note that you need to call ChunkSet.Unwrap() before calling this method if this ChunkSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChunkSet) Update() *ChunkSetUpdateOne {
	return NewChunkSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChunkSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChunkSet) Unwrap() *ChunkSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChunkSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChunkSet) String() string {
	var builder strings.Builder
	builder.WriteString("ChunkSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("chunking_strategy=")
	builder.WriteString(_m.ChunkingStrategy)
	builder.WriteString(", ")
	builder.WriteString("total_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChunks))
	builder.WriteString(", ")
	builder.WriteString("s3_prefix=")
	builder.WriteString(_m.S3Prefix)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChunkSets is a parsable slice of ChunkSet.
type ChunkSets []*ChunkSet
