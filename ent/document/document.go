// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldExtractedContentPath holds the string denoting the extracted_content_path field in the database.
	FieldExtractedContentPath = "extracted_content_path"
	// FieldExtractedCharCount holds the string denoting the extracted_char_count field in the database.
	FieldExtractedCharCount = "extracted_char_count"
	// FieldCurrentChunkSetID holds the string denoting the current_chunk_set_id field in the database.
	FieldCurrentChunkSetID = "current_chunk_set_id"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeChunkSets holds the string denoting the chunk_sets edge name in mutations.
	EdgeChunkSets = "chunk_sets"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "documents"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// ChunkSetsTable is the table that holds the chunk_sets relation/edge.
	ChunkSetsTable = "chunk_sets"
	// ChunkSetsInverseTable is the table name for the ChunkSet entity.
	// It exists in this package in order to avoid circular dependency with the "chunkset" package.
	ChunkSetsInverseTable = "chunk_sets"
	// ChunkSetsColumn is the table column denoting the chunk_sets relation/edge.
	ChunkSetsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldFilename,
	FieldStorageKey,
	FieldChecksum,
	FieldExtractionStatus,
	FieldExtractedContentPath,
	FieldExtractedCharCount,
	FieldCurrentChunkSetID,
	FieldUploadedAt,
	FieldExtractedAt,
	FieldDeletedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	ChecksumValidator func(string) error
	// DefaultExtractedCharCount holds the default value on creation for the "extracted_char_count" field.
	DefaultExtractedCharCount int
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
)

// ExtractionStatus defines the type for the "extraction_status" enum field.
type ExtractionStatus string

// ExtractionStatusPending is the default value of the ExtractionStatus enum.
const DefaultExtractionStatus = ExtractionStatusPending

// ExtractionStatus values.
const (
	ExtractionStatusPending    ExtractionStatus = "pending"
	ExtractionStatusProcessing ExtractionStatus = "processing"
	ExtractionStatusCompleted  ExtractionStatus = "completed"
	ExtractionStatusFailed     ExtractionStatus = "failed"
)

func (es ExtractionStatus) String() string {
	return string(es)
}

// ExtractionStatusValidator is a validator for the "extraction_status" field enum values. It is called by the builders before save.
func ExtractionStatusValidator(es ExtractionStatus) error {
	switch es {
	case ExtractionStatusPending, ExtractionStatusProcessing, ExtractionStatusCompleted, ExtractionStatusFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for extraction_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByExtractedContentPath orders the results by the extracted_content_path field.
func ByExtractedContentPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedContentPath, opts...).ToFunc()
}

// ByExtractedCharCount orders the results by the extracted_char_count field.
func ByExtractedCharCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedCharCount, opts...).ToFunc()
}

// ByCurrentChunkSetID orders the results by the current_chunk_set_id field.
func ByCurrentChunkSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentChunkSetID, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByChunkSetsCount orders the results by chunk_sets count.
func ByChunkSetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunkSetsStep(), opts...)
	}
}

// ByChunkSets orders the results by chunk_sets terms.
func ByChunkSets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunkSetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newChunkSetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunkSetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunkSetsTable, ChunkSetsColumn),
	)
}
