// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
)

// Chunk is the model entity for the Chunk schema.
type Chunk struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChunkSetID holds the value of the "chunk_set_id" field.
	ChunkSetID int `json:"chunk_set_id,omitempty"`
	// Stable string id within the set, e.g. chunk_001
	ChunkID string `json:"chunk_id,omitempty"`
	// Denormalized from the chunk set
	DocumentID int `json:"document_id,omitempty"`
	// Denormalized from the chunk set
	CompanyID int `json:"company_id,omitempty"`
	// Object-store key of the chunk body
	S3Key string `json:"s3_key,omitempty"`
	// Section, page range, char range, overlap flags
	ChunkMetadata map[string]interface{} `json:"chunk_metadata,omitempty"`
	// Emission order within the chunk set
	ChunkOrder int `json:"chunk_order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChunkQuery when eager-loading is set.
	Edges        ChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChunkEdges holds the relations/edges for other nodes in the graph.
type ChunkEdges struct {
	// ChunkSet holds the value of the chunk_set edge.
	ChunkSet *ChunkSet `json:"chunk_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunkSetOrErr returns the ChunkSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChunkEdges) ChunkSetOrErr() (*ChunkSet, error) {
	if e.ChunkSet != nil {
		return e.ChunkSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chunkset.Label}
	}
	return nil, &NotLoadedError{edge: "chunk_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunk.FieldChunkMetadata:
			values[i] = new([]byte)
		case chunk.FieldID, chunk.FieldChunkSetID, chunk.FieldDocumentID, chunk.FieldCompanyID, chunk.FieldChunkOrder:
			values[i] = new(sql.NullInt64)
		case chunk.FieldChunkID, chunk.FieldS3Key:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chunk fields.
func (_m *Chunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunk.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chunk.FieldChunkSetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_set_id", values[i])
			} else if value.Valid {
				_m.ChunkSetID = int(value.Int64)
			}
		case chunk.FieldChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value.Valid {
				_m.ChunkID = value.String
			}
		case chunk.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case chunk.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case chunk.FieldS3Key:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_key", values[i])
			} else if value.Valid {
				_m.S3Key = value.String
			}
		case chunk.FieldChunkMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChunkMetadata); err != nil {
					return fmt.Errorf("unmarshal field chunk_metadata: %w", err)
				}
			}
		case chunk.FieldChunkOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_order", values[i])
			} else if value.Valid {
				_m.ChunkOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chunk.
// This includes values selected through modifiers, order, etc.
func (_m *Chunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunkSet queries the "chunk_set" edge of the Chunk entity.
func (_m *Chunk) QueryChunkSet() *ChunkSetQuery {
	return NewChunkClient(_m.config).QueryChunkSet(_m)
}

// Update returns a builder for updating this Chunk.
// Note that you need to call Chunk.Unwrap() before calling this method if this Chunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chunk) Update() *ChunkUpdateOne {
	return NewChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chunk) Unwrap() *Chunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chunk) String() string {
	var builder strings.Builder
	builder.WriteString("Chunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chunk_set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkSetID))
	builder.WriteString(", ")
	builder.WriteString("chunk_id=")
	builder.WriteString(_m.ChunkID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("s3_key=")
	builder.WriteString(_m.S3Key)
	builder.WriteString(", ")
	builder.WriteString("chunk_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkMetadata))
	builder.WriteString(", ")
	builder.WriteString("chunk_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkOrder))
	builder.WriteByte(')')
	return builder.String()
}

// Chunks is a parsable slice of Chunk.
type Chunks []*Chunk
