package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func setupDocuments(t *testing.T) (*DocumentService, *storage.MemoryStore, int) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	store := storage.NewMemoryStore()
	svc := NewDocumentService(client, store, quota.NewService(client))
	return svc, store, company.ID
}

func TestUploadStoresBytesAndDedupes(t *testing.T) {
	svc, store, companyID := setupDocuments(t)
	ctx := context.Background()
	data := []byte("# Contract\n\nThe term is 24 months.")

	doc, created, err := svc.Upload(ctx, companyID, "contract.md", data)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, doc.Checksum, 64)
	assert.Equal(t, document.ExtractionStatusPending, doc.ExtractionStatus)

	stored, err := store.Get(ctx, doc.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	// Identical bytes come back as the same document, even under a
	// different filename.
	dup, created, err := svc.Upload(ctx, companyID, "contract-copy.md", data)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, doc.ID, dup.ID)

	docs, err := svc.ListDocuments(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestUploadAfterDeleteCreatesFreshDocument(t *testing.T) {
	svc, _, companyID := setupDocuments(t)
	ctx := context.Background()
	data := []byte("same bytes")

	doc, _, err := svc.Upload(ctx, companyID, "a.md", data)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDocument(ctx, companyID, doc.ID))

	fresh, created, err := svc.Upload(ctx, companyID, "a.md", data)
	require.NoError(t, err)
	assert.True(t, created, "soft delete frees the checksum")
	assert.NotEqual(t, doc.ID, fresh.ID)
}

func TestExtractionLifecycle(t *testing.T) {
	svc, store, companyID := setupDocuments(t)
	ctx := context.Background()

	doc, _, err := svc.Upload(ctx, companyID, "report.pdf", []byte("%PDF-1.7 ..."))
	require.NoError(t, err)

	require.NoError(t, svc.StartExtraction(ctx, doc.ID))
	// A second extractor cannot claim the same document.
	err = svc.StartExtraction(ctx, doc.ID)
	assert.True(t, errors.Is(err, ErrInvalidState))

	content := []byte(strings.Repeat("extracted text ", 100))
	extracted, err := svc.CompleteExtraction(ctx, doc.ID, content)
	require.NoError(t, err)
	assert.Equal(t, document.ExtractionStatusCompleted, extracted.ExtractionStatus)
	assert.Equal(t, len(content), extracted.ExtractedCharCount)
	require.NotNil(t, extracted.ExtractedContentPath)
	require.NotNil(t, extracted.ExtractedAt)

	stored, err := store.Get(ctx, *extracted.ExtractedContentPath)
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	roundTrip, err := svc.ExtractedContent(ctx, companyID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, content, roundTrip)
}

func TestFailExtraction(t *testing.T) {
	svc, _, companyID := setupDocuments(t)
	ctx := context.Background()

	doc, _, err := svc.Upload(ctx, companyID, "scan.pdf", []byte("binary"))
	require.NoError(t, err)
	require.NoError(t, svc.StartExtraction(ctx, doc.ID))
	require.NoError(t, svc.FailExtraction(ctx, doc.ID))

	failed, err := svc.GetDocument(ctx, companyID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.ExtractionStatusFailed, failed.ExtractionStatus)

	_, err = svc.ExtractedContent(ctx, companyID, doc.ID)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestGetDocumentScopedToCompany(t *testing.T) {
	svc, _, companyID := setupDocuments(t)
	ctx := context.Background()

	doc, _, err := svc.Upload(ctx, companyID, "private.md", []byte("secret"))
	require.NoError(t, err)

	_, err = svc.GetDocument(ctx, companyID+1, doc.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "other tenants never see the document")
}

func TestDeleteDocumentRemovesStorage(t *testing.T) {
	svc, store, companyID := setupDocuments(t)
	ctx := context.Background()

	doc, _, err := svc.Upload(ctx, companyID, "gone.md", []byte("bytes"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDocument(ctx, companyID, doc.ID))

	objects, err := store.List(ctx, storage.DocumentPrefix(companyID, doc.ID))
	require.NoError(t, err)
	assert.Empty(t, objects)

	_, err = svc.GetDocument(ctx, companyID, doc.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// recordingIngester captures the ingest call made after extraction.
type recordingIngester struct {
	docID   int
	content string
	err     error
}

func (r *recordingIngester) Ingest(ctx context.Context, doc *ent.Document, content string) (*ent.ChunkSet, error) {
	r.docID = doc.ID
	r.content = content
	return nil, r.err
}

func TestCompleteExtractionTriggersChunking(t *testing.T) {
	svc, _, companyID := setupDocuments(t)
	ctx := context.Background()

	ingester := &recordingIngester{}
	svc.SetIngester(ingester)

	doc, _, err := svc.Upload(ctx, companyID, "report.pdf", []byte("%PDF-1.7 ..."))
	require.NoError(t, err)
	require.NoError(t, svc.StartExtraction(ctx, doc.ID))

	_, err = svc.CompleteExtraction(ctx, doc.ID, []byte("extracted body"))
	require.NoError(t, err)
	assert.Equal(t, doc.ID, ingester.docID)
	assert.Equal(t, "extracted body", ingester.content)
}

func TestCompleteExtractionSurvivesChunkingFailure(t *testing.T) {
	svc, _, companyID := setupDocuments(t)
	ctx := context.Background()

	svc.SetIngester(&recordingIngester{err: errors.New("index unavailable")})

	doc, _, err := svc.Upload(ctx, companyID, "report.pdf", []byte("%PDF-1.7 ..."))
	require.NoError(t, err)
	require.NoError(t, svc.StartExtraction(ctx, doc.ID))

	extracted, err := svc.CompleteExtraction(ctx, doc.ID, []byte("extracted body"))
	require.NoError(t, err)
	assert.Equal(t, document.ExtractionStatusCompleted, extracted.ExtractionStatus)
}
