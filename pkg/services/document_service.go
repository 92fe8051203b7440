package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// ChunkIngester chunks and indexes a freshly extracted document.
type ChunkIngester interface {
	Ingest(ctx context.Context, doc *ent.Document, content string) (*ent.ChunkSet, error)
}

// DocumentService manages uploads, checksum dedup, and extraction state.
type DocumentService struct {
	client   *ent.Client
	store    storage.ObjectStore
	quotas   *quota.Service
	ingester ChunkIngester
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client, store storage.ObjectStore, quotas *quota.Service) *DocumentService {
	if client == nil {
		panic("NewDocumentService: client must not be nil")
	}
	if store == nil {
		panic("NewDocumentService: store must not be nil")
	}
	return &DocumentService{client: client, store: store, quotas: quotas}
}

// SetIngester enables chunking on extraction completion.
func (s *DocumentService) SetIngester(ingester ChunkIngester) {
	s.ingester = ingester
}

// Upload stores a document for a company. Re-uploading identical bytes
// returns the existing live document instead of creating a second row;
// the bool reports whether a new document was created. New uploads
// reserve storage quota before any bytes are written.
func (s *DocumentService) Upload(ctx context.Context, companyID int, filename string, data []byte) (*ent.Document, bool, error) {
	if filename == "" {
		return nil, false, NewValidationError("filename", "filename is required")
	}
	if len(data) == 0 {
		return nil, false, NewValidationError("data", "document is empty")
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	existing, err := s.findByChecksum(ctx, companyID, checksum)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if s.quotas != nil {
		size := int64(len(data))
		check, err := s.quotas.CheckAndReserve(ctx, companyID, nil, config.EventStorageUpload, 1, &size)
		if err != nil {
			return nil, false, err
		}
		if !check.Allowed {
			return nil, false, fmt.Errorf("storage quota: %s: %w", check.Message(), ErrInvalidState)
		}
	}

	doc, err := s.client.Document.Create().
		SetCompanyID(companyID).
		SetFilename(filename).
		SetChecksum(checksum).
		SetStorageKey("").
		Save(ctx)
	if err != nil {
		// A concurrent upload of the same bytes won the race.
		if ent.IsConstraintError(err) {
			existing, lookupErr := s.findByChecksum(ctx, companyID, checksum)
			if lookupErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create document: %w", err)
	}

	key := storage.DocumentOriginalKey(companyID, doc.ID, filename)
	if err := s.store.Put(ctx, key, data, "application/octet-stream"); err != nil {
		return nil, false, fmt.Errorf("failed to store document bytes: %w", err)
	}

	doc, err = doc.Update().SetStorageKey(key).Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record storage key: %w", err)
	}
	return doc, true, nil
}

// GetDocument returns a live document scoped to a company.
func (s *DocumentService) GetDocument(ctx context.Context, companyID, documentID int) (*ent.Document, error) {
	doc, err := s.client.Document.Query().
		Where(
			document.ID(documentID),
			document.CompanyID(companyID),
			document.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %d: %w", documentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns a company's live documents, newest first.
func (s *DocumentService) ListDocuments(ctx context.Context, companyID int) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(
			document.CompanyID(companyID),
			document.DeletedAtIsNil(),
		).
		Order(ent.Desc(document.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// StartExtraction claims the document for extraction. Only a pending
// document can be claimed, so two extractors never race.
func (s *DocumentService) StartExtraction(ctx context.Context, documentID int) error {
	n, err := s.client.Document.Update().
		Where(
			document.ID(documentID),
			document.ExtractionStatusEQ(document.ExtractionStatusPending),
			document.DeletedAtIsNil(),
		).
		SetExtractionStatus(document.ExtractionStatusProcessing).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim extraction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %d not pending: %w", documentID, ErrInvalidState)
	}
	return nil
}

// CompleteExtraction stores the extracted markdown and records its
// character count, which drives QA routing.
func (s *DocumentService) CompleteExtraction(ctx context.Context, documentID int, content []byte) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %d: %w", documentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	key := storage.DocumentExtractedKey(doc.CompanyID, doc.ID)
	if err := s.store.Put(ctx, key, content, "text/markdown"); err != nil {
		return nil, fmt.Errorf("failed to store extracted content: %w", err)
	}

	updated, err := doc.Update().
		SetExtractionStatus(document.ExtractionStatusCompleted).
		SetExtractedContentPath(key).
		SetExtractedCharCount(utf8.RuneCount(content)).
		SetExtractedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record extraction: %w", err)
	}

	// The extraction result stands even when chunking fails; a later
	// ingest run replaces the set.
	if s.ingester != nil {
		if _, err := s.ingester.Ingest(ctx, updated, string(content)); err != nil {
			slog.Warn("Chunking failed after extraction",
				"document_id", updated.ID, "error", err)
		}
	}
	return updated, nil
}

// FailExtraction marks the extraction failed.
func (s *DocumentService) FailExtraction(ctx context.Context, documentID int) error {
	n, err := s.client.Document.Update().
		Where(
			document.ID(documentID),
			document.ExtractionStatusEQ(document.ExtractionStatusProcessing),
		).
		SetExtractionStatus(document.ExtractionStatusFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark extraction failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %d not processing: %w", documentID, ErrInvalidState)
	}
	return nil
}

// ExtractedContent loads the extracted markdown of a completed document.
func (s *DocumentService) ExtractedContent(ctx context.Context, companyID, documentID int) ([]byte, error) {
	doc, err := s.GetDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.ExtractionStatus != document.ExtractionStatusCompleted || doc.ExtractedContentPath == nil {
		return nil, fmt.Errorf("document %d not extracted: %w", documentID, ErrInvalidState)
	}
	return s.store.Get(ctx, *doc.ExtractedContentPath)
}

// DeleteDocument soft-deletes the row, freeing its checksum for future
// uploads, and removes the storage prefix best-effort.
func (s *DocumentService) DeleteDocument(ctx context.Context, companyID, documentID int) error {
	n, err := s.client.Document.Update().
		Where(
			document.ID(documentID),
			document.CompanyID(companyID),
			document.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %d: %w", documentID, ErrNotFound)
	}

	if err := s.store.DeletePrefix(ctx, storage.DocumentPrefix(companyID, documentID)); err != nil {
		slog.Warn("Failed to remove document storage prefix",
			"company_id", companyID, "document_id", documentID, "error", err)
	}
	return nil
}

func (s *DocumentService) findByChecksum(ctx context.Context, companyID int, checksum string) (*ent.Document, error) {
	doc, err := s.client.Document.Query().
		Where(
			document.CompanyID(companyID),
			document.Checksum(checksum),
			document.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query document by checksum: %w", err)
	}
	return doc, nil
}
