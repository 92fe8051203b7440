package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/chunks"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// contractText is what the validator's loader returns for every
// document; citation quotes in tests must appear in it verbatim.
const contractText = "The termination clause requires ninety days notice.\nPayment is due within thirty days of invoice.\n"

type apiFixture struct {
	server  *Server
	client  *ent.Client
	store   *storage.MemoryStore
	engine  *matrix.Engine
	broker  *credentials.Broker
	company int
}

func setupServer(t *testing.T) *apiFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")

	store := storage.NewMemoryStore()
	provider := &chunks.StaticProvider{Dim: 1536}
	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	broker := credentials.NewBroker(client)

	loader := func(ctx context.Context, documentID int) (string, error) {
		return contractText, nil
	}

	registry := tools.NewRegistry(tools.Deps{
		Client: client,
		Store:  store,
		Searcher: chunks.NewHybridSearcher(
			chunks.NewKeywordIndex(db),
			chunks.NewVectorIndex(db),
			provider,
			config.DefaultSearchConfig(),
		),
		Answers:   answers.NewStore(client),
		Engine:    engine,
		Validator: answers.NewValidator(loader),
	})

	server := NewServer(client, db, broker, registry, store)
	return &apiFixture{
		server:  server,
		client:  client,
		store:   store,
		engine:  engine,
		broker:  broker,
		company: company.ID,
	}
}

// do performs one request against the server. key is sent as X-Api-Key
// when non-empty.
func (f *apiFixture) do(t *testing.T, method, target, key, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if key != "" {
		req.Header.Set("X-Api-Key", key)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsUnauthenticated(t *testing.T) {
	f := setupServer(t)

	rec := f.do(t, http.MethodGet, "/health", "", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database"`)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestAuthRequired(t *testing.T) {
	f := setupServer(t)

	rec := f.do(t, http.MethodGet, "/api/v1/tools", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tools", "sa_deadbeef", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tools", "not-a-key", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRevokedKeyIsRejected(t *testing.T) {
	f := setupServer(t)
	ctx := context.Background()

	saID, plainKey, err := f.broker.Create(ctx, credentials.QAJobScope(1), f.company)
	require.NoError(t, err)
	require.NoError(t, f.broker.Delete(ctx, saID, f.company))

	rec := f.do(t, http.MethodGet, "/api/v1/tools", plainKey, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecurityHeadersOnResponses(t *testing.T) {
	f := setupServer(t)

	rec := f.do(t, http.MethodGet, "/health", "", "", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestUnscopedCredentialGetsNoTools(t *testing.T) {
	f := setupServer(t)
	ctx := context.Background()

	// A credential minted outside the two job scopes resolves to no
	// tool context.
	_, plainKey, err := f.broker.Create(ctx, "admin-backfill", f.company)
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/tools", plainKey, "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/tools/document_list", plainKey, "application/json",
		strings.NewReader("{}"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func qaJobKey(t *testing.T, f *apiFixture, jobID int) string {
	t.Helper()
	_, plainKey, err := f.broker.Create(context.Background(), credentials.QAJobScope(jobID), f.company)
	require.NoError(t, err)
	return plainKey
}

func executionKey(t *testing.T, f *apiFixture, executionID int) string {
	t.Helper()
	_, plainKey, err := f.broker.Create(context.Background(), credentials.ExecutionScope(executionID), f.company)
	require.NoError(t, err)
	return plainKey
}
