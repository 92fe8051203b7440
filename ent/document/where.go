// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompanyID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStorageKey, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChecksum, v))
}

// ExtractedContentPath applies equality check predicate on the "extracted_content_path" field. It's identical to ExtractedContentPathEQ.
func ExtractedContentPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedContentPath, v))
}

// ExtractedCharCount applies equality check predicate on the "extracted_char_count" field. It's identical to ExtractedCharCountEQ.
func ExtractedCharCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCharCount, v))
}

// CurrentChunkSetID applies equality check predicate on the "current_chunk_set_id" field. It's identical to CurrentChunkSetIDEQ.
func CurrentChunkSetID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCurrentChunkSetID, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCompanyID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStorageKey, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldChecksum, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v ExtractionStatus) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v ExtractionStatus) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...ExtractionStatus) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...ExtractionStatus) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractedContentPathEQ applies the EQ predicate on the "extracted_content_path" field.
func ExtractedContentPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedContentPath, v))
}

// ExtractedContentPathNEQ applies the NEQ predicate on the "extracted_content_path" field.
func ExtractedContentPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedContentPath, v))
}

// ExtractedContentPathIn applies the In predicate on the "extracted_content_path" field.
func ExtractedContentPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedContentPath, vs...))
}

// ExtractedContentPathNotIn applies the NotIn predicate on the "extracted_content_path" field.
func ExtractedContentPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedContentPath, vs...))
}

// ExtractedContentPathGT applies the GT predicate on the "extracted_content_path" field.
func ExtractedContentPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedContentPath, v))
}

// ExtractedContentPathGTE applies the GTE predicate on the "extracted_content_path" field.
func ExtractedContentPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedContentPath, v))
}

// ExtractedContentPathLT applies the LT predicate on the "extracted_content_path" field.
func ExtractedContentPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedContentPath, v))
}

// ExtractedContentPathLTE applies the LTE predicate on the "extracted_content_path" field.
func ExtractedContentPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedContentPath, v))
}

// ExtractedContentPathContains applies the Contains predicate on the "extracted_content_path" field.
func ExtractedContentPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedContentPath, v))
}

// ExtractedContentPathHasPrefix applies the HasPrefix predicate on the "extracted_content_path" field.
func ExtractedContentPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedContentPath, v))
}

// ExtractedContentPathHasSuffix applies the HasSuffix predicate on the "extracted_content_path" field.
func ExtractedContentPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedContentPath, v))
}

// ExtractedContentPathIsNil applies the IsNil predicate on the "extracted_content_path" field.
func ExtractedContentPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedContentPath))
}

// ExtractedContentPathNotNil applies the NotNil predicate on the "extracted_content_path" field.
func ExtractedContentPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedContentPath))
}

// ExtractedContentPathEqualFold applies the EqualFold predicate on the "extracted_content_path" field.
func ExtractedContentPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedContentPath, v))
}

// ExtractedContentPathContainsFold applies the ContainsFold predicate on the "extracted_content_path" field.
func ExtractedContentPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedContentPath, v))
}

// ExtractedCharCountEQ applies the EQ predicate on the "extracted_char_count" field.
func ExtractedCharCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCharCount, v))
}

// ExtractedCharCountNEQ applies the NEQ predicate on the "extracted_char_count" field.
func ExtractedCharCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedCharCount, v))
}

// ExtractedCharCountIn applies the In predicate on the "extracted_char_count" field.
func ExtractedCharCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedCharCount, vs...))
}

// ExtractedCharCountNotIn applies the NotIn predicate on the "extracted_char_count" field.
func ExtractedCharCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedCharCount, vs...))
}

// ExtractedCharCountGT applies the GT predicate on the "extracted_char_count" field.
func ExtractedCharCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedCharCount, v))
}

// ExtractedCharCountGTE applies the GTE predicate on the "extracted_char_count" field.
func ExtractedCharCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedCharCount, v))
}

// ExtractedCharCountLT applies the LT predicate on the "extracted_char_count" field.
func ExtractedCharCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedCharCount, v))
}

// ExtractedCharCountLTE applies the LTE predicate on the "extracted_char_count" field.
func ExtractedCharCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedCharCount, v))
}

// CurrentChunkSetIDEQ applies the EQ predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDNEQ applies the NEQ predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDIn applies the In predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCurrentChunkSetID, vs...))
}

// CurrentChunkSetIDNotIn applies the NotIn predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCurrentChunkSetID, vs...))
}

// CurrentChunkSetIDGT applies the GT predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDGTE applies the GTE predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDLT applies the LT predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDLTE applies the LTE predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCurrentChunkSetID, v))
}

// CurrentChunkSetIDIsNil applies the IsNil predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCurrentChunkSetID))
}

// CurrentChunkSetIDNotNil applies the NotNil predicate on the "current_chunk_set_id" field.
func CurrentChunkSetIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCurrentChunkSetID))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedAt, v))
}

// ExtractedAtIsNil applies the IsNil predicate on the "extracted_at" field.
func ExtractedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedAt))
}

// ExtractedAtNotNil applies the NotNil predicate on the "extracted_at" field.
func ExtractedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDeletedAt))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChunkSets applies the HasEdge predicate on the "chunk_sets" edge.
func HasChunkSets() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunkSetsTable, ChunkSetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkSetsWith applies the HasEdge predicate on the "chunk_sets" edge with a given conditions (other predicates).
func HasChunkSetsWith(preds ...predicate.ChunkSet) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newChunkSetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
