// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/ent/schema"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
	"github.com/docmatrix-ai/docmatrix/ent/workflow"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescAnswerOrder is the schema descriptor for answer_order field.
	answerDescAnswerOrder := answerFields[1].Descriptor()
	// answer.AnswerOrderValidator is a validator for the "answer_order" field. It is called by the builders before save.
	answer.AnswerOrderValidator = answerDescAnswerOrder.Validators[0].(func(int) error)
	// answerDescConfidence is the schema descriptor for confidence field.
	answerDescConfidence := answerFields[4].Descriptor()
	// answer.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	answer.ConfidenceValidator = func() func(float64) error {
		validators := answerDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	answersetFields := schema.AnswerSet{}.Fields()
	_ = answersetFields
	// answersetDescAnswerFound is the schema descriptor for answer_found field.
	answersetDescAnswerFound := answersetFields[1].Descriptor()
	// answerset.DefaultAnswerFound holds the default value on creation for the answer_found field.
	answerset.DefaultAnswerFound = answersetDescAnswerFound.Default.(bool)
	// answersetDescCreatedAt is the schema descriptor for created_at field.
	answersetDescCreatedAt := answersetFields[3].Descriptor()
	// answerset.DefaultCreatedAt holds the default value on creation for the created_at field.
	answerset.DefaultCreatedAt = answersetDescCreatedAt.Default.(func() time.Time)
	cellentityrefFields := schema.CellEntityRef{}.Fields()
	_ = cellentityrefFields
	// cellentityrefDescRole is the schema descriptor for role field.
	cellentityrefDescRole := cellentityrefFields[1].Descriptor()
	// cellentityref.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	cellentityref.RoleValidator = cellentityrefDescRole.Validators[0].(func(string) error)
	chunkFields := schema.Chunk{}.Fields()
	_ = chunkFields
	// chunkDescChunkID is the schema descriptor for chunk_id field.
	chunkDescChunkID := chunkFields[1].Descriptor()
	// chunk.ChunkIDValidator is a validator for the "chunk_id" field. It is called by the builders before save.
	chunk.ChunkIDValidator = chunkDescChunkID.Validators[0].(func(string) error)
	// chunkDescChunkOrder is the schema descriptor for chunk_order field.
	chunkDescChunkOrder := chunkFields[6].Descriptor()
	// chunk.ChunkOrderValidator is a validator for the "chunk_order" field. It is called by the builders before save.
	chunk.ChunkOrderValidator = chunkDescChunkOrder.Validators[0].(func(int) error)
	chunksetFields := schema.ChunkSet{}.Fields()
	_ = chunksetFields
	// chunksetDescTotalChunks is the schema descriptor for total_chunks field.
	chunksetDescTotalChunks := chunksetFields[3].Descriptor()
	// chunkset.DefaultTotalChunks holds the default value on creation for the total_chunks field.
	chunkset.DefaultTotalChunks = chunksetDescTotalChunks.Default.(int)
	// chunksetDescCreatedAt is the schema descriptor for created_at field.
	chunksetDescCreatedAt := chunksetFields[5].Descriptor()
	// chunkset.DefaultCreatedAt holds the default value on creation for the created_at field.
	chunkset.DefaultCreatedAt = chunksetDescCreatedAt.Default.(func() time.Time)
	citationFields := schema.Citation{}.Fields()
	_ = citationFields
	// citationDescCitationOrder is the schema descriptor for citation_order field.
	citationDescCitationOrder := citationFields[3].Descriptor()
	// citation.CitationOrderValidator is a validator for the "citation_order" field. It is called by the builders before save.
	citation.CitationOrderValidator = citationDescCitationOrder.Validators[0].(func(int) error)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[0].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[1].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescChecksum is the schema descriptor for checksum field.
	documentDescChecksum := documentFields[3].Descriptor()
	// document.ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	document.ChecksumValidator = documentDescChecksum.Validators[0].(func(string) error)
	// documentDescExtractedCharCount is the schema descriptor for extracted_char_count field.
	documentDescExtractedCharCount := documentFields[6].Descriptor()
	// document.DefaultExtractedCharCount holds the default value on creation for the extracted_char_count field.
	document.DefaultExtractedCharCount = documentDescExtractedCharCount.Default.(int)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[8].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	entitysetFields := schema.EntitySet{}.Fields()
	_ = entitysetFields
	// entitysetDescName is the schema descriptor for name field.
	entitysetDescName := entitysetFields[1].Descriptor()
	// entityset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	entityset.NameValidator = entitysetDescName.Validators[0].(func(string) error)
	entitysetmemberFields := schema.EntitySetMember{}.Fields()
	_ = entitysetmemberFields
	// entitysetmemberDescMemberOrder is the schema descriptor for member_order field.
	entitysetmemberDescMemberOrder := entitysetmemberFields[3].Descriptor()
	// entitysetmember.MemberOrderValidator is a validator for the "member_order" field. It is called by the builders before save.
	entitysetmember.MemberOrderValidator = entitysetmemberDescMemberOrder.Validators[0].(func(int) error)
	executionfileFields := schema.ExecutionFile{}.Fields()
	_ = executionfileFields
	// executionfileDescFileName is the schema descriptor for file_name field.
	executionfileDescFileName := executionfileFields[1].Descriptor()
	// executionfile.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	executionfile.FileNameValidator = executionfileDescFileName.Validators[0].(func(string) error)
	// executionfileDescSizeBytes is the schema descriptor for size_bytes field.
	executionfileDescSizeBytes := executionfileFields[4].Descriptor()
	// executionfile.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	executionfile.DefaultSizeBytes = executionfileDescSizeBytes.Default.(int64)
	// executionfileDescCreatedAt is the schema descriptor for created_at field.
	executionfileDescCreatedAt := executionfileFields[5].Descriptor()
	// executionfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionfile.DefaultCreatedAt = executionfileDescCreatedAt.Default.(func() time.Time)
	matrixFields := schema.Matrix{}.Fields()
	_ = matrixFields
	// matrixDescName is the schema descriptor for name field.
	matrixDescName := matrixFields[1].Descriptor()
	// matrix.NameValidator is a validator for the "name" field. It is called by the builders before save.
	matrix.NameValidator = matrixDescName.Validators[0].(func(string) error)
	// matrixDescCreatedAt is the schema descriptor for created_at field.
	matrixDescCreatedAt := matrixFields[4].Descriptor()
	// matrix.DefaultCreatedAt holds the default value on creation for the created_at field.
	matrix.DefaultCreatedAt = matrixDescCreatedAt.Default.(func() time.Time)
	matrixcellFields := schema.MatrixCell{}.Fields()
	_ = matrixcellFields
	// matrixcellDescCellSignature is the schema descriptor for cell_signature field.
	matrixcellDescCellSignature := matrixcellFields[5].Descriptor()
	// matrixcell.CellSignatureValidator is a validator for the "cell_signature" field. It is called by the builders before save.
	matrixcell.CellSignatureValidator = matrixcellDescCellSignature.Validators[0].(func(string) error)
	// matrixcellDescCreatedAt is the schema descriptor for created_at field.
	matrixcellDescCreatedAt := matrixcellFields[6].Descriptor()
	// matrixcell.DefaultCreatedAt holds the default value on creation for the created_at field.
	matrixcell.DefaultCreatedAt = matrixcellDescCreatedAt.Default.(func() time.Time)
	qajobFields := schema.QAJob{}.Fields()
	_ = qajobFields
	// qajobDescCreatedAt is the schema descriptor for created_at field.
	qajobDescCreatedAt := qajobFields[5].Descriptor()
	// qajob.DefaultCreatedAt holds the default value on creation for the created_at field.
	qajob.DefaultCreatedAt = qajobDescCreatedAt.Default.(func() time.Time)
	serviceaccountFields := schema.ServiceAccount{}.Fields()
	_ = serviceaccountFields
	// serviceaccountDescAPIKeyHash is the schema descriptor for api_key_hash field.
	serviceaccountDescAPIKeyHash := serviceaccountFields[2].Descriptor()
	// serviceaccount.APIKeyHashValidator is a validator for the "api_key_hash" field. It is called by the builders before save.
	serviceaccount.APIKeyHashValidator = serviceaccountDescAPIKeyHash.Validators[0].(func(string) error)
	// serviceaccountDescIsActive is the schema descriptor for is_active field.
	serviceaccountDescIsActive := serviceaccountFields[3].Descriptor()
	// serviceaccount.DefaultIsActive holds the default value on creation for the is_active field.
	serviceaccount.DefaultIsActive = serviceaccountDescIsActive.Default.(bool)
	// serviceaccountDescCreatedAt is the schema descriptor for created_at field.
	serviceaccountDescCreatedAt := serviceaccountFields[4].Descriptor()
	// serviceaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceaccount.DefaultCreatedAt = serviceaccountDescCreatedAt.Default.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[6].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	usageeventFields := schema.UsageEvent{}.Fields()
	_ = usageeventFields
	// usageeventDescQuantity is the schema descriptor for quantity field.
	usageeventDescQuantity := usageeventFields[3].Descriptor()
	// usageevent.DefaultQuantity holds the default value on creation for the quantity field.
	usageevent.DefaultQuantity = usageeventDescQuantity.Default.(int)
	// usageevent.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	usageevent.QuantityValidator = usageeventDescQuantity.Validators[0].(func(int) error)
	// usageeventDescCreatedAt is the schema descriptor for created_at field.
	usageeventDescCreatedAt := usageeventFields[6].Descriptor()
	// usageevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageevent.DefaultCreatedAt = usageeventDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescName is the schema descriptor for name field.
	workflowDescName := workflowFields[1].Descriptor()
	// workflow.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflow.NameValidator = workflowDescName.Validators[0].(func(string) error)
	// workflowDescImageTag is the schema descriptor for image_tag field.
	workflowDescImageTag := workflowFields[4].Descriptor()
	// workflow.DefaultImageTag holds the default value on creation for the image_tag field.
	workflow.DefaultImageTag = workflowDescImageTag.Default.(string)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[6].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[7].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
}
