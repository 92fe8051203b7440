// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chunk type in the database.
	Label = "chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChunkSetID holds the string denoting the chunk_set_id field in the database.
	FieldChunkSetID = "chunk_set_id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldS3Key holds the string denoting the s3_key field in the database.
	FieldS3Key = "s3_key"
	// FieldChunkMetadata holds the string denoting the chunk_metadata field in the database.
	FieldChunkMetadata = "chunk_metadata"
	// FieldChunkOrder holds the string denoting the chunk_order field in the database.
	FieldChunkOrder = "chunk_order"
	// EdgeChunkSet holds the string denoting the chunk_set edge name in mutations.
	EdgeChunkSet = "chunk_set"
	// Table holds the table name of the chunk in the database.
	Table = "chunks"
	// ChunkSetTable is the table that holds the chunk_set relation/edge.
	ChunkSetTable = "chunks"
	// ChunkSetInverseTable is the table name for the ChunkSet entity.
	// It exists in this package in order to avoid circular dependency with the "chunkset" package.
	ChunkSetInverseTable = "chunk_sets"
	// ChunkSetColumn is the table column denoting the chunk_set relation/edge.
	ChunkSetColumn = "chunk_set_id"
)

// Columns holds all SQL columns for chunk fields.
var Columns = []string{
	FieldID,
	FieldChunkSetID,
	FieldChunkID,
	FieldDocumentID,
	FieldCompanyID,
	FieldS3Key,
	FieldChunkMetadata,
	FieldChunkOrder,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ChunkIDValidator is a validator for the "chunk_id" field. It is called by the builders before save.
	ChunkIDValidator func(string) error
	// ChunkOrderValidator is a validator for the "chunk_order" field. It is called by the builders before save.
	ChunkOrderValidator func(int) error
)

// OrderOption defines the ordering options for the Chunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChunkSetID orders the results by the chunk_set_id field.
func ByChunkSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkSetID, opts...).ToFunc()
}

// ByChunkID orders the results by the chunk_id field.
func ByChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByS3Key orders the results by the s3_key field.
func ByS3Key(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Key, opts...).ToFunc()
}

// ByChunkOrder orders the results by the chunk_order field.
func ByChunkOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkOrder, opts...).ToFunc()
}

// ByChunkSetField orders the results by chunk_set field.
func ByChunkSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunkSetStep(), sql.OrderByField(field, opts...))
	}
}
func newChunkSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunkSetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChunkSetTable, ChunkSetColumn),
	)
}
