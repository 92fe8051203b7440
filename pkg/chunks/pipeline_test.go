package chunks

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestPipelineRun(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	doc := util.CreateTestDocument(t, client, company.ID, "handbook.md", len(structuredDoc))
	ctx := context.Background()

	store := storage.NewMemoryStore()
	provider := &StaticProvider{Dim: 1536}
	pipeline := NewPipeline(client, store, NewKeywordIndex(db), NewVectorIndex(db), provider)

	set, err := pipeline.Run(ctx, doc, structuredDoc, config.ChunkingHierarchical)
	require.NoError(t, err)
	assert.Equal(t, 4, set.TotalChunks)

	// Chunk rows exist in emission order with body keys.
	rows, err := set.QueryChunks().Order(chunk.ByChunkOrder()).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, i, row.ChunkOrder)
		body, err := store.Get(ctx, row.S3Key)
		require.NoError(t, err)
		assert.NotEmpty(t, body)
	}

	// Manifest was written under the set prefix and names the document.
	manifestKey := storage.ChunkSetManifestKey(company.ID, doc.ID, set.ID)
	manifestData, err := store.Get(ctx, manifestKey)
	require.NoError(t, err)
	var m struct {
		DocumentID  int `json:"document_id"`
		TotalChunks int `json:"total_chunks"`
		Chunks      []struct {
			ChunkID string `json:"chunk_id"`
		} `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(manifestData, &m))
	assert.Equal(t, doc.ID, m.DocumentID)
	assert.Equal(t, 4, m.TotalChunks)
	require.Len(t, m.Chunks, 4)
	assert.Equal(t, "chunk_001", m.Chunks[0].ChunkID)

	// The document now points at the new set.
	reloaded, err := client.Document.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentChunkSetID)
	assert.Equal(t, set.ID, *reloaded.CurrentChunkSetID)
}

func TestPipelineSearchScoping(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	companyA := util.CreateTestCompany(t, client, "professional")
	companyB := util.CreateTestCompany(t, client, "professional")
	ctx := context.Background()

	store := storage.NewMemoryStore()
	provider := &StaticProvider{Dim: 1536}
	keyword := NewKeywordIndex(db)
	vector := NewVectorIndex(db)
	pipeline := NewPipeline(client, store, keyword, vector, provider)

	contentA := "# Contract\n\nThe termination clause requires ninety days notice.\n\n## Terms\n\nPayment is due monthly.\n\n### Appendix\n\nAppendix body.\n"
	docA := util.CreateTestDocument(t, client, companyA.ID, "contract-a.md", len(contentA))
	_, err := pipeline.Run(ctx, docA, contentA, config.ChunkingHierarchical)
	require.NoError(t, err)

	contentB := "# Other\n\nThe termination clause here is different.\n\n## More\n\nBody.\n\n### Deep\n\nDeep body.\n"
	docB := util.CreateTestDocument(t, client, companyB.ID, "contract-b.md", len(contentB))
	_, err = pipeline.Run(ctx, docB, contentB, config.ChunkingHierarchical)
	require.NoError(t, err)

	searcher := NewHybridSearcher(keyword, vector, provider, config.DefaultSearchConfig())

	// Company A only sees its own chunks.
	results, err := searcher.Search(ctx, "termination clause notice", Filters{CompanyID: companyA.ID}, 0, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, docA.ID, r.DocumentID)
	}

	// Document allowlist excludes everything else.
	results, err = searcher.Search(ctx, "termination clause", Filters{CompanyID: companyA.ID, DocumentIDs: []int{docA.ID + 10000}}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	// Missing company scope is refused outright.
	_, err = searcher.Search(ctx, "anything", Filters{}, 0, 10)
	assert.Error(t, err)
}

func TestHybridSearchPagination(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	ctx := context.Background()

	store := storage.NewMemoryStore()
	provider := &StaticProvider{Dim: 1536}
	keyword := NewKeywordIndex(db)
	vector := NewVectorIndex(db)
	pipeline := NewPipeline(client, store, keyword, vector, provider)

	content := "# One\n\nalpha beta gamma.\n\n## Two\n\nalpha delta epsilon.\n\n### Three\n\nalpha zeta eta.\n"
	doc := util.CreateTestDocument(t, client, company.ID, "words.md", len(content))
	_, err := pipeline.Run(ctx, doc, content, config.ChunkingHierarchical)
	require.NoError(t, err)

	searcher := NewHybridSearcher(keyword, vector, provider, config.DefaultSearchConfig())

	all, err := searcher.Search(ctx, "alpha", Filters{CompanyID: company.ID}, 0, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	page, err := searcher.Search(ctx, "alpha", Filters{CompanyID: company.ID}, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, all[1].ChunkPK, page[0].ChunkPK)

	past, err := searcher.Search(ctx, "alpha", Filters{CompanyID: company.ID}, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}
