package chunks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// Pipeline persists chunk sets and feeds both search backends.
type Pipeline struct {
	db       *ent.Client
	store    storage.ObjectStore
	keyword  *KeywordIndex
	vector   *VectorIndex
	provider EmbeddingProvider
}

// NewPipeline wires the chunk pipeline.
func NewPipeline(db *ent.Client, store storage.ObjectStore, keyword *KeywordIndex, vector *VectorIndex, provider EmbeddingProvider) *Pipeline {
	return &Pipeline{db: db, store: store, keyword: keyword, vector: vector, provider: provider}
}

// manifestEntry is one line of the chunk set manifest.
type manifestEntry struct {
	ChunkID  string   `json:"chunk_id"`
	Metadata Metadata `json:"metadata"`
}

type manifest struct {
	DocumentID  int             `json:"document_id"`
	ChunkSetID  int             `json:"chunk_set_id"`
	Strategy    string          `json:"strategy"`
	TotalChunks int             `json:"total_chunks"`
	Chunks      []manifestEntry `json:"chunks"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Run chunks the document content with the given strategy, persists the
// set, and indexes every chunk. The document's current_chunk_set_id is
// moved to the new set on success.
func (p *Pipeline) Run(ctx context.Context, doc *ent.Document, content string, strategy config.ChunkingStrategy) (*ent.ChunkSet, error) {
	chunker, err := ChunkerFor(strategy)
	if err != nil {
		return nil, err
	}
	chunks := chunker.Split(content)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document %d produced no chunks", doc.ID)
	}

	set, err := p.persist(ctx, doc, chunks, strategy)
	if err != nil {
		return nil, err
	}
	if err := p.index(ctx, doc, set, chunks); err != nil {
		return nil, err
	}

	slog.Info("Chunk set ready",
		"document_id", doc.ID,
		"chunk_set_id", set.ID,
		"strategy", strategy,
		"chunks", len(chunks))
	return set, nil
}

// persist writes chunk bodies and metadata to the object store, the
// manifest last, and the ChunkSet/Chunk rows. Body keys land in the DB
// rows so readers never reconstruct the layout.
func (p *Pipeline) persist(ctx context.Context, doc *ent.Document, chunks []Chunk, strategy config.ChunkingStrategy) (*ent.ChunkSet, error) {
	prefix := "" // filled after the set row exists

	set, err := p.db.ChunkSet.Create().
		SetDocumentID(doc.ID).
		SetCompanyID(doc.CompanyID).
		SetChunkingStrategy(string(strategy)).
		SetS3Prefix(prefix).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk set: %w", err)
	}
	prefix = storage.ChunkSetPrefix(doc.CompanyID, doc.ID, set.ID)

	entries := make([]manifestEntry, 0, len(chunks))
	for order, chunk := range chunks {
		bodyKey := storage.ChunkKey(doc.CompanyID, doc.ID, set.ID, chunk.ChunkID)
		if err := p.store.Put(ctx, bodyKey, []byte(chunk.Content), "text/markdown"); err != nil {
			return nil, err
		}

		metaJSON, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata for %s: %w", chunk.ChunkID, err)
		}
		metaKey := prefix + chunk.ChunkID + ".meta.json"
		if err := p.store.Put(ctx, metaKey, metaJSON, "application/json"); err != nil {
			return nil, err
		}

		err = p.db.Chunk.Create().
			SetChunkSetID(set.ID).
			SetChunkID(chunk.ChunkID).
			SetDocumentID(doc.ID).
			SetCompanyID(doc.CompanyID).
			SetS3Key(bodyKey).
			SetChunkMetadata(map[string]interface{}{
				"section":    chunk.Metadata.Section,
				"level":      chunk.Metadata.Level,
				"start_char": chunk.Metadata.StartChar,
				"end_char":   chunk.Metadata.EndChar,
			}).
			SetChunkOrder(order).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chunk row %s: %w", chunk.ChunkID, err)
		}

		entries = append(entries, manifestEntry{ChunkID: chunk.ChunkID, Metadata: chunk.Metadata})
	}

	// Manifest last: its presence marks the set complete.
	manifestJSON, err := json.Marshal(manifest{
		DocumentID:  doc.ID,
		ChunkSetID:  set.ID,
		Strategy:    string(strategy),
		TotalChunks: len(chunks),
		Chunks:      entries,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	manifestKey := storage.ChunkSetManifestKey(doc.CompanyID, doc.ID, set.ID)
	if err := p.store.Put(ctx, manifestKey, manifestJSON, "application/json"); err != nil {
		return nil, err
	}

	set, err = set.Update().
		SetTotalChunks(len(chunks)).
		SetS3Prefix(prefix).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize chunk set: %w", err)
	}

	err = p.db.Document.UpdateOneID(doc.ID).
		SetCurrentChunkSetID(set.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to point document at chunk set: %w", err)
	}
	return set, nil
}

// index pushes every chunk to both backends via their bulk interfaces.
func (p *Pipeline) index(ctx context.Context, doc *ent.Document, set *ent.ChunkSet, chunks []Chunk) error {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	embeddings, err := p.provider.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunk set %d: %w", set.ID, err)
	}

	rows, err := set.QueryChunks().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chunk rows: %w", err)
	}
	pkByChunkID := make(map[string]int, len(rows))
	for _, row := range rows {
		pkByChunkID[row.ChunkID] = row.ID
	}

	entries := make([]IndexEntry, len(chunks))
	for i, chunk := range chunks {
		entries[i] = IndexEntry{
			ChunkPK:    pkByChunkID[chunk.ChunkID],
			ChunkID:    chunk.ChunkID,
			DocumentID: doc.ID,
			CompanyID:  doc.CompanyID,
			ChunkSetID: set.ID,
			Content:    chunk.Content,
			Embedding:  embeddings[i],
		}
	}

	if err := p.keyword.BulkIndex(ctx, entries); err != nil {
		return err
	}
	return p.vector.BulkIndex(ctx, entries)
}
