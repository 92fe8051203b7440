package chunks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func setupIngester(t *testing.T, tier string) (*Ingester, *ent.Client, int) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, tier)

	store := storage.NewMemoryStore()
	provider := &StaticProvider{Dim: 1536}
	pipeline := NewPipeline(client, store, NewKeywordIndex(db), NewVectorIndex(db), provider)
	return NewIngester(pipeline, quota.NewService(client), 3), client, company.ID
}

func agenticEvents(t *testing.T, client *ent.Client, companyID int) int {
	t.Helper()
	n, err := client.UsageEvent.Query().
		Where(
			usageevent.CompanyID(companyID),
			usageevent.EventTypeEQ(usageevent.EventType(config.EventAgenticChunking)),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestIngestStructuredDocumentIsFree(t *testing.T) {
	ingester, client, companyID := setupIngester(t, "professional")
	doc := util.CreateTestDocument(t, client, companyID, "handbook.md", len(structuredDoc))
	ctx := context.Background()

	set, err := ingester.Ingest(ctx, doc, structuredDoc)
	require.NoError(t, err)
	assert.Equal(t, string(config.ChunkingHierarchical), set.ChunkingStrategy)
	assert.Zero(t, agenticEvents(t, client, companyID), "hierarchical chunking is not billed")
}

func TestIngestFlatDocumentBillsAgenticChunking(t *testing.T) {
	ingester, client, companyID := setupIngester(t, "professional")
	doc := util.CreateTestDocument(t, client, companyID, "prose.md", len(flatDoc))
	ctx := context.Background()

	set, err := ingester.Ingest(ctx, doc, flatDoc)
	require.NoError(t, err)
	assert.Equal(t, string(config.ChunkingAgentic), set.ChunkingStrategy)
	assert.Equal(t, 1, agenticEvents(t, client, companyID))
}

func TestIngestDeniedWhenAgenticQuotaExhausted(t *testing.T) {
	ingester, client, companyID := setupIngester(t, "professional")
	doc := util.CreateTestDocument(t, client, companyID, "prose.md", len(flatDoc))
	ctx := context.Background()

	// Professional allows 500 agentic chunking runs a month.
	_, err := client.UsageEvent.Create().
		SetCompanyID(companyID).
		SetEventType(usageevent.EventType(config.EventAgenticChunking)).
		SetQuantity(500).
		Save(ctx)
	require.NoError(t, err)

	_, err = ingester.Ingest(ctx, doc, flatDoc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")

	// The denial left no chunk set behind.
	sets, err := client.ChunkSet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sets)
}

func TestIngestTierOverrideSkipsBilling(t *testing.T) {
	ingester, client, companyID := setupIngester(t, "free")
	doc := util.CreateTestDocument(t, client, companyID, "prose.md", len(flatDoc))
	ctx := context.Background()

	set, err := ingester.Ingest(ctx, doc, flatDoc)
	require.NoError(t, err)
	assert.Equal(t, string(config.ChunkingFixedSize), set.ChunkingStrategy)
	assert.Zero(t, agenticEvents(t, client, companyID))
}
