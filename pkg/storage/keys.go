package storage

import "fmt"

// Key layout. Everything is rooted under the owning company so tenant
// deletion is a single prefix removal.
//
//	company/{company_id}/documents/{document_id}/original/{filename}
//	company/{company_id}/documents/{document_id}/extracted.md
//	company/{company_id}/documents/{document_id}/chunks/{chunk_set_id}/manifest.json
//	company/{company_id}/documents/{document_id}/chunks/{chunk_set_id}/{chunk_id}.md
//	company/{company_id}/workflows/{workflow_id}/executions/{execution_id}/manifest.json
//	company/{company_id}/workflows/{workflow_id}/executions/{execution_id}/output/{file_name}
//	company/{company_id}/workflows/{workflow_id}/executions/{execution_id}/scratch/{file_name}

// CompanyPrefix is the root of all objects owned by a company.
func CompanyPrefix(companyID int) string {
	return fmt.Sprintf("company/%d/", companyID)
}

// DocumentPrefix covers the original upload, extracted content, and all
// chunk sets of a document.
func DocumentPrefix(companyID, documentID int) string {
	return fmt.Sprintf("company/%d/documents/%d/", companyID, documentID)
}

// DocumentOriginalKey is the key of the uploaded bytes.
func DocumentOriginalKey(companyID, documentID int, filename string) string {
	return fmt.Sprintf("company/%d/documents/%d/original/%s", companyID, documentID, filename)
}

// DocumentExtractedKey is the key of the extracted markdown.
func DocumentExtractedKey(companyID, documentID int) string {
	return fmt.Sprintf("company/%d/documents/%d/extracted.md", companyID, documentID)
}

// ChunkSetPrefix holds one chunking run's manifest and chunk bodies.
func ChunkSetPrefix(companyID, documentID, chunkSetID int) string {
	return fmt.Sprintf("company/%d/documents/%d/chunks/%d/", companyID, documentID, chunkSetID)
}

// ChunkSetManifestKey is the manifest listing every chunk in the set.
func ChunkSetManifestKey(companyID, documentID, chunkSetID int) string {
	return ChunkSetPrefix(companyID, documentID, chunkSetID) + "manifest.json"
}

// ChunkKey is the key of one chunk body within a set.
func ChunkKey(companyID, documentID, chunkSetID int, chunkID string) string {
	return ChunkSetPrefix(companyID, documentID, chunkSetID) + chunkID + ".md"
}

// QAJobPromptKey is the composed agent prompt handed to a QA job.
func QAJobPromptKey(companyID, jobID int) string {
	return fmt.Sprintf("company/%d/qa-jobs/%d/prompt.md", companyID, jobID)
}

// ExecutionPrefix holds one workflow execution's manifest and files.
func ExecutionPrefix(companyID, workflowID, executionID int) string {
	return fmt.Sprintf("company/%d/workflows/%d/executions/%d/", companyID, workflowID, executionID)
}

// ExecutionManifestKey is the output manifest of a workflow execution.
func ExecutionManifestKey(companyID, workflowID, executionID int) string {
	return ExecutionPrefix(companyID, workflowID, executionID) + "manifest.json"
}

// ExecutionFileKey is the key of one file produced by an execution.
// kind is "output" or "scratch".
func ExecutionFileKey(companyID, workflowID, executionID int, kind, fileName string) string {
	return ExecutionPrefix(companyID, workflowID, executionID) + kind + "/" + fileName
}
