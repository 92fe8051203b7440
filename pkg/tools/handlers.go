package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/chunks"
)

func chunkSearchTool(deps Deps) *Tool {
	const schema = `{
		"type": "object",
		"properties": {
			"query": {"type": "string", "minLength": 1},
			"document_ids": {"type": "array", "items": {"type": "integer"}},
			"skip": {"type": "integer", "minimum": 0},
			"limit": {"type": "integer", "minimum": 1, "maximum": 50}
		},
		"required": ["query"],
		"additionalProperties": false
	}`

	return &Tool{
		Name:            "chunk_search",
		Description:     "Hybrid keyword+vector search over the company's document chunks.",
		AllowedContexts: []Context{ContextAgentQA, ContextWorkflow},
		Permission:      PermissionRead,
		schema:          mustSchema("chunk_search", schema),
		handler: func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error) {
			var in struct {
				Query       string `json:"query"`
				DocumentIDs []int  `json:"document_ids"`
				Skip        int    `json:"skip"`
				Limit       int    `json:"limit"`
			}
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, err
			}
			if in.Limit == 0 {
				in.Limit = 10
			}
			results, err := deps.Searcher.Search(ctx, in.Query, chunks.Filters{
				CompanyID:   inv.CompanyID,
				DocumentIDs: in.DocumentIDs,
			}, in.Skip, in.Limit)
			if err != nil {
				return nil, fmt.Errorf("chunk search failed: %w", err)
			}
			return map[string]interface{}{"results": results}, nil
		},
	}
}

func chunkGetTool(deps Deps) *Tool {
	const schema = `{
		"type": "object",
		"properties": {
			"chunk_pk": {"type": "integer", "minimum": 1}
		},
		"required": ["chunk_pk"],
		"additionalProperties": false
	}`

	return &Tool{
		Name:            "chunk_get",
		Description:     "Fetch one chunk's content and metadata by its search result id.",
		AllowedContexts: []Context{ContextAgentQA, ContextWorkflow},
		Permission:      PermissionRead,
		schema:          mustSchema("chunk_get", schema),
		handler: func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error) {
			var in struct {
				ChunkPK int `json:"chunk_pk"`
			}
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, err
			}

			row, err := deps.Client.Chunk.Query().
				Where(
					chunk.ID(in.ChunkPK),
					chunk.CompanyID(inv.CompanyID),
				).
				Only(ctx)
			if err != nil {
				if ent.IsNotFound(err) {
					return nil, fmt.Errorf("chunk %d not found", in.ChunkPK)
				}
				return nil, fmt.Errorf("failed to load chunk: %w", err)
			}

			body, err := deps.Store.Get(ctx, row.S3Key)
			if err != nil {
				return nil, fmt.Errorf("failed to load chunk content: %w", err)
			}
			return map[string]interface{}{
				"chunk_id":    row.ChunkID,
				"document_id": row.DocumentID,
				"content":     string(body),
				"metadata":    row.ChunkMetadata,
			}, nil
		},
	}
}

func documentListTool(deps Deps) *Tool {
	const schema = `{
		"type": "object",
		"properties": {},
		"additionalProperties": false
	}`

	return &Tool{
		Name:            "document_list",
		Description:     "List the company's extracted documents available for search.",
		AllowedContexts: []Context{ContextAgentQA, ContextWorkflow},
		Permission:      PermissionRead,
		schema:          mustSchema("document_list", schema),
		handler: func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error) {
			docs, err := deps.Client.Document.Query().
				Where(
					document.CompanyID(inv.CompanyID),
					document.ExtractionStatusEQ(document.ExtractionStatusCompleted),
					document.DeletedAtIsNil(),
				).
				Order(ent.Asc(document.FieldID)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list documents: %w", err)
			}

			type docEntry struct {
				ID        int    `json:"id"`
				Filename  string `json:"filename"`
				CharCount int    `json:"char_count"`
			}
			out := make([]docEntry, 0, len(docs))
			for _, d := range docs {
				out = append(out, docEntry{ID: d.ID, Filename: d.Filename, CharCount: d.ExtractedCharCount})
			}
			return map[string]interface{}{"documents": out}, nil
		},
	}
}

func matrixCellGetTool(deps Deps) *Tool {
	const schema = `{
		"type": "object",
		"properties": {
			"matrix_cell_id": {"type": "integer", "minimum": 1}
		},
		"required": ["matrix_cell_id"],
		"additionalProperties": false
	}`

	return &Tool{
		Name:            "matrix_cell_get",
		Description:     "Inspect one matrix cell: status, type, and entity coordinates.",
		AllowedContexts: []Context{ContextAgentQA},
		Permission:      PermissionRead,
		schema:          mustSchema("matrix_cell_get", schema),
		handler: func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error) {
			var in struct {
				MatrixCellID int `json:"matrix_cell_id"`
			}
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, err
			}

			cell, err := deps.Engine.GetCell(ctx, in.MatrixCellID)
			if err != nil {
				return nil, fmt.Errorf("failed to load cell %d: %w", in.MatrixCellID, err)
			}
			if cell.CompanyID != inv.CompanyID {
				return nil, fmt.Errorf("cell %d not found", in.MatrixCellID)
			}

			type refEntry struct {
				Role     string `json:"role"`
				EntityID int    `json:"entity_id"`
			}
			refs := make([]refEntry, 0, len(cell.Edges.EntityRefs))
			for _, ref := range cell.Edges.EntityRefs {
				refs = append(refs, refEntry{Role: ref.Role, EntityID: ref.EntityID})
			}
			return map[string]interface{}{
				"id":        cell.ID,
				"status":    cell.Status,
				"cell_type": cell.CellType,
				"refs":      refs,
			}, nil
		},
	}
}

func answerUploadTool(deps Deps) *Tool {
	const schema = `{
		"type": "object",
		"properties": {
			"matrix_cell_id": {"type": "integer", "minimum": 1},
			"question_type_id": {"type": "integer"},
			"answer_found": {"type": "boolean"},
			"answers": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"type": {"enum": ["text", "date", "currency", "select"]},
						"value": {"type": "string"},
						"parsed_date": {"type": "string"},
						"amount": {"type": "number"},
						"currency": {"type": "string"},
						"option_id": {"type": "integer"},
						"option_value": {"type": "string"},
						"confidence": {"type": "number", "minimum": 0, "maximum": 1},
						"citations": {
							"type": "array",
							"items": {
								"type": "object",
								"properties": {
									"document_id": {"type": "integer"},
									"quote_text": {"type": "string"},
									"citation_order": {"type": "integer"}
								},
								"required": ["document_id", "quote_text"]
							}
						}
					},
					"required": ["type", "confidence"]
				}
			}
		},
		"required": ["matrix_cell_id", "answer_found"],
		"additionalProperties": false
	}`

	return &Tool{
		Name:            "answer_upload",
		Description:     "Post the final answer set for a matrix cell and complete the QA job.",
		AllowedContexts: []Context{ContextAgentQA},
		Permission:      PermissionWrite,
		schema:          mustSchema("answer_upload", schema),
		handler: func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error) {
			var in struct {
				MatrixCellID   int              `json:"matrix_cell_id"`
				QuestionTypeID *int             `json:"question_type_id"`
				AnswerFound    bool             `json:"answer_found"`
				Answers        []answers.Answer `json:"answers"`
			}
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, err
			}

			cell, err := deps.Engine.GetCell(ctx, in.MatrixCellID)
			if err != nil {
				return nil, fmt.Errorf("failed to load cell %d: %w", in.MatrixCellID, err)
			}
			if cell.CompanyID != inv.CompanyID {
				return nil, fmt.Errorf("cell %d not found", in.MatrixCellID)
			}

			payload := &answers.AnswerSetPayload{AnswerFound: in.AnswerFound, Answers: in.Answers}
			if err := payload.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			validation := deps.Validator.ValidateSet(ctx, payload)
			answers.ApplyConfidencePenalty(payload, validation.AverageScore)

			set, err := deps.Answers.SaveSet(ctx, cell.ID, in.QuestionTypeID, payload, validation)
			if err != nil {
				return nil, fmt.Errorf("failed to save answer set: %w", err)
			}
			if err := deps.Engine.AttachAnswerSet(ctx, cell.ID, set.ID); err != nil {
				return nil, fmt.Errorf("failed to attach answer set: %w", err)
			}

			if inv.QAJobID != 0 {
				err := deps.Client.QAJob.Update().
					Where(
						qajob.ID(inv.QAJobID),
						qajob.StatusEQ(qajob.StatusProcessing),
					).
					SetStatus(qajob.StatusCompleted).
					SetCompletedAt(time.Now()).
					Exec(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to complete QA job: %w", err)
				}
			}

			return map[string]interface{}{
				"answer_set_id":  set.ID,
				"average_score":  validation.AverageScore,
				"grounding":      validation.Results,
				"needs_revision": validation.NeedsRetry,
			}, nil
		},
	}
}
