package chunks

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// IndexEntry is one chunk pushed to the search backends.
type IndexEntry struct {
	ChunkPK    int
	ChunkID    string
	DocumentID int
	CompanyID  int
	ChunkSetID int
	Content    string
	Embedding  []float32
}

// Candidate is one scored hit from a single backend.
type Candidate struct {
	ChunkPK    int
	ChunkID    string
	DocumentID int
	Score      float64
}

// KeywordIndex is the Postgres full-text backend over chunk_search.
type KeywordIndex struct {
	db *stdsql.DB
}

// NewKeywordIndex wraps the shared database connection.
func NewKeywordIndex(db *stdsql.DB) *KeywordIndex {
	return &KeywordIndex{db: db}
}

// BulkIndex upserts entries into chunk_search. The tsv column is
// generated, so only content is written.
func (idx *KeywordIndex) BulkIndex(ctx context.Context, entries []IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin keyword index tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunk_search (chunk_pk, company_id, document_id, chunk_set_id, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (chunk_pk) DO UPDATE SET content = EXCLUDED.content`)
	if err != nil {
		return fmt.Errorf("failed to prepare keyword upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ChunkPK, e.CompanyID, e.DocumentID, e.ChunkSetID, e.Content); err != nil {
			return fmt.Errorf("failed to index chunk %d: %w", e.ChunkPK, err)
		}
	}
	return tx.Commit()
}

// Search returns the top k chunks by ts_rank for the query, scoped to
// the company and optionally to a document-id allowlist.
func (idx *KeywordIndex) Search(ctx context.Context, query string, companyID int, documentIDs []int, k int) ([]Candidate, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT cs.chunk_pk, c.chunk_id, cs.document_id,
		       ts_rank(cs.tsv, plainto_tsquery('english', $1)) AS rank
		FROM chunk_search cs
		JOIN chunks c ON c.id = cs.chunk_pk
		WHERE cs.company_id = $2
		  AND cs.tsv @@ plainto_tsquery('english', $1)`)
	args := []interface{}{query, companyID}
	if len(documentIDs) > 0 {
		sb.WriteString(fmt.Sprintf(" AND cs.document_id = ANY($%d)", len(args)+1))
		args = append(args, intArray(documentIDs))
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY rank DESC LIMIT $%d", len(args)+1))
	args = append(args, k)

	rows, err := idx.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

// DeleteChunkSet removes a set's rows; used when re-chunking replaces a
// prior set. The FK cascade covers chunk deletion, this covers re-index.
func (idx *KeywordIndex) DeleteChunkSet(ctx context.Context, chunkSetID int) error {
	_, err := idx.db.ExecContext(ctx, `DELETE FROM chunk_search WHERE chunk_set_id = $1`, chunkSetID)
	if err != nil {
		return fmt.Errorf("failed to delete keyword entries for set %d: %w", chunkSetID, err)
	}
	return nil
}

// VectorIndex is the pgvector backend over chunk_embeddings.
type VectorIndex struct {
	db *stdsql.DB
}

// NewVectorIndex wraps the shared database connection.
func NewVectorIndex(db *stdsql.DB) *VectorIndex {
	return &VectorIndex{db: db}
}

// BulkIndex upserts entry embeddings into chunk_embeddings.
func (idx *VectorIndex) BulkIndex(ctx context.Context, entries []IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin vector index tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunk_embeddings (chunk_pk, company_id, document_id, chunk_set_id, embedding)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (chunk_pk) DO UPDATE SET embedding = EXCLUDED.embedding`)
	if err != nil {
		return fmt.Errorf("failed to prepare vector upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if len(e.Embedding) == 0 {
			return fmt.Errorf("chunk %d has no embedding", e.ChunkPK)
		}
		if _, err := stmt.ExecContext(ctx, e.ChunkPK, e.CompanyID, e.DocumentID, e.ChunkSetID, pgvector.NewVector(e.Embedding)); err != nil {
			return fmt.Errorf("failed to index embedding for chunk %d: %w", e.ChunkPK, err)
		}
	}
	return tx.Commit()
}

// Search returns the top k chunks by cosine similarity, scoped like the
// keyword backend.
func (idx *VectorIndex) Search(ctx context.Context, embedding []float32, companyID int, documentIDs []int, k int) ([]Candidate, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ce.chunk_pk, c.chunk_id, ce.document_id,
		       1 - (ce.embedding <=> $1) AS similarity
		FROM chunk_embeddings ce
		JOIN chunks c ON c.id = ce.chunk_pk
		WHERE ce.company_id = $2`)
	args := []interface{}{pgvector.NewVector(embedding), companyID}
	if len(documentIDs) > 0 {
		sb.WriteString(fmt.Sprintf(" AND ce.document_id = ANY($%d)", len(args)+1))
		args = append(args, intArray(documentIDs))
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY ce.embedding <=> $1 LIMIT $%d", len(args)+1))
	args = append(args, k)

	rows, err := idx.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

// DeleteChunkSet removes a set's embeddings.
func (idx *VectorIndex) DeleteChunkSet(ctx context.Context, chunkSetID int) error {
	_, err := idx.db.ExecContext(ctx, `DELETE FROM chunk_embeddings WHERE chunk_set_id = $1`, chunkSetID)
	if err != nil {
		return fmt.Errorf("failed to delete vector entries for set %d: %w", chunkSetID, err)
	}
	return nil
}

func scanCandidates(rows *stdsql.Rows) ([]Candidate, error) {
	var out []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ChunkPK, &c.ChunkID, &c.DocumentID, &c.Score); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// intArray renders a Postgres int array literal. pgx's database/sql
// driver accepts the string form for ANY($n).
func intArray(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
