package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/chunks"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

type fixture struct {
	registry *Registry
	client   *ent.Client
	store    *storage.MemoryStore
	engine   *matrix.Engine
	company  int
	document *ent.Document
	pipeline *chunks.Pipeline
}

const handbook = "# Handbook\n\nThe termination clause requires ninety days notice.\n\n## Benefits\n\nEmployees accrue vacation monthly.\n\n### Appendix\n\nAppendix body text.\n"

func setupRegistry(t *testing.T) *fixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	ctx := context.Background()

	store := storage.NewMemoryStore()
	provider := &chunks.StaticProvider{Dim: 1536}
	keyword := chunks.NewKeywordIndex(db)
	vector := chunks.NewVectorIndex(db)
	pipeline := chunks.NewPipeline(client, store, keyword, vector, provider)

	doc := util.CreateTestDocument(t, client, company.ID, "handbook.md", len(handbook))
	_, err := pipeline.Run(ctx, doc, handbook, config.ChunkingHierarchical)
	require.NoError(t, err)

	// Grounding loads full extracted content from the object store.
	extractedKey := storage.DocumentExtractedKey(company.ID, doc.ID)
	require.NoError(t, store.Put(ctx, extractedKey, []byte(handbook), "text/markdown"))
	require.NoError(t, client.Document.UpdateOneID(doc.ID).SetExtractedContentPath(extractedKey).Exec(ctx))

	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	loader := func(ctx context.Context, documentID int) (string, error) {
		if documentID != doc.ID {
			return "", fmt.Errorf("document %d not found", documentID)
		}
		return handbook, nil
	}

	registry := NewRegistry(Deps{
		Client:    client,
		Store:     store,
		Searcher:  chunks.NewHybridSearcher(keyword, vector, provider, config.DefaultSearchConfig()),
		Answers:   answers.NewStore(client),
		Engine:    engine,
		Validator: answers.NewValidator(loader),
	})

	return &fixture{
		registry: registry,
		client:   client,
		store:    store,
		engine:   engine,
		company:  company.ID,
		document: doc,
		pipeline: pipeline,
	}
}

func (f *fixture) invocation() Invocation {
	return Invocation{CompanyID: f.company, Context: ContextAgentQA}
}

func TestForContextFiltering(t *testing.T) {
	f := setupRegistry(t)

	qaTools := f.registry.ForContext(ContextAgentQA)
	var names []string
	for _, tool := range qaTools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"answer_upload", "chunk_get", "chunk_search", "document_list", "matrix_cell_get"}, names)

	// Workflows never upload answers or inspect cells.
	wfTools := f.registry.ForContext(ContextWorkflow)
	for _, tool := range wfTools {
		assert.NotEqual(t, "answer_upload", tool.Name)
		assert.NotEqual(t, "matrix_cell_get", tool.Name)
	}

	writers := f.registry.ForContext(ContextAgentQA, PermissionWrite)
	require.Len(t, writers, 1)
	assert.Equal(t, "answer_upload", writers[0].Name)
}

func TestExecuteRejectsContextAndSchema(t *testing.T) {
	f := setupRegistry(t)
	ctx := context.Background()

	_, err := f.registry.Execute(ctx, Invocation{CompanyID: f.company, Context: ContextWorkflow},
		"answer_upload", json.RawMessage(`{"matrix_cell_id": 1, "answer_found": false}`))
	assert.True(t, errors.Is(err, ErrContextDenied))

	_, err = f.registry.Execute(ctx, f.invocation(), "chunk_search", json.RawMessage(`{"limit": 5}`))
	assert.True(t, errors.Is(err, ErrInvalidInput), "query is required")

	_, err = f.registry.Execute(ctx, f.invocation(), "chunk_search", json.RawMessage(`{"query": "x", "extra": true}`))
	assert.True(t, errors.Is(err, ErrInvalidInput), "unknown fields rejected")

	_, err = f.registry.Execute(ctx, f.invocation(), "no_such_tool", nil)
	assert.True(t, errors.Is(err, ErrUnknownTool))

	_, err = f.registry.Execute(ctx, Invocation{Context: ContextAgentQA}, "document_list", nil)
	assert.True(t, errors.Is(err, ErrToolNotAllowed), "company scope is mandatory")
}

func TestChunkSearchAndGet(t *testing.T) {
	f := setupRegistry(t)
	ctx := context.Background()

	raw, err := f.registry.Execute(ctx, f.invocation(), "chunk_search",
		json.RawMessage(`{"query": "termination clause notice"}`))
	require.NoError(t, err)
	results := raw.(map[string]interface{})["results"].([]chunks.Result)
	require.NotEmpty(t, results)
	assert.Equal(t, f.document.ID, results[0].DocumentID)

	raw, err = f.registry.Execute(ctx, f.invocation(), "chunk_get",
		json.RawMessage(fmt.Sprintf(`{"chunk_pk": %d}`, results[0].ChunkPK)))
	require.NoError(t, err)
	got := raw.(map[string]interface{})
	assert.Equal(t, results[0].ChunkID, got["chunk_id"])
	assert.Contains(t, got["content"].(string), "termination clause")

	// Another tenant cannot fetch the chunk.
	_, err = f.registry.Execute(ctx, Invocation{CompanyID: f.company + 1, Context: ContextAgentQA},
		"chunk_get", json.RawMessage(fmt.Sprintf(`{"chunk_pk": %d}`, results[0].ChunkPK)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDocumentList(t *testing.T) {
	f := setupRegistry(t)
	ctx := context.Background()

	raw, err := f.registry.Execute(ctx, f.invocation(), "document_list", nil)
	require.NoError(t, err)
	docs := raw.(map[string]interface{})["documents"]
	data, err := json.Marshal(docs)
	require.NoError(t, err)
	assert.Contains(t, string(data), "handbook.md")
}

func TestAnswerUploadCompletesCellAndJob(t *testing.T) {
	f := setupRegistry(t)
	ctx := context.Background()

	m := util.CreateTestMatrix(t, f.client, f.company)
	cell, _, err := f.engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{
		{Role: "document", EntityID: f.document.ID},
		{Role: "question", EntityID: 7},
	})
	require.NoError(t, err)
	require.NoError(t, f.engine.MarkProcessing(ctx, cell.ID))
	job, err := f.client.QAJob.Create().
		SetCellID(cell.ID).
		SetCompanyID(f.company).
		SetStatus(qajob.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	input := fmt.Sprintf(`{
		"matrix_cell_id": %d,
		"answer_found": true,
		"answers": [{
			"type": "text",
			"value": "Ninety days notice is required.",
			"confidence": 1.0,
			"citations": [{
				"document_id": %d,
				"quote_text": "The termination clause requires ninety days notice.",
				"citation_order": 0
			}]
		}]
	}`, cell.ID, f.document.ID)

	inv := f.invocation()
	inv.QAJobID = job.ID
	raw, err := f.registry.Execute(ctx, inv, "answer_upload", json.RawMessage(input))
	require.NoError(t, err)
	out := raw.(map[string]interface{})
	assert.Equal(t, 1.0, out["average_score"])

	done, err := f.client.MatrixCell.Get(ctx, cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, done.Status)
	require.NotNil(t, done.CurrentAnswerSetID)

	finished, err := f.client.QAJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusCompleted, finished.Status)
}

func TestAnswerUploadRejectsInvalidPayload(t *testing.T) {
	f := setupRegistry(t)
	ctx := context.Background()

	m := util.CreateTestMatrix(t, f.client, f.company)
	cell, _, err := f.engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "question", EntityID: 7}})
	require.NoError(t, err)
	require.NoError(t, f.engine.MarkProcessing(ctx, cell.ID))

	// answer_found=false with answers violates the set invariant.
	input := fmt.Sprintf(`{
		"matrix_cell_id": %d,
		"answer_found": false,
		"answers": [{"type": "text", "value": "x", "confidence": 0.5}]
	}`, cell.ID)
	_, err = f.registry.Execute(ctx, f.invocation(), "answer_upload", json.RawMessage(input))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	unchanged, err := f.client.MatrixCell.Get(ctx, cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusProcessing, unchanged.Status)
}
