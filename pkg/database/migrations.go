package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// CreateSearchTables creates the keyword and vector search side tables.
// Production schemas get these from the SQL migrations; this exists for
// test databases created through the Ent schema, which does not manage
// them. Requires the pgvector extension.
func CreateSearchTables(ctx context.Context, db *stdsql.DB) error {
	stmts := []string{
		// Installed into public so per-schema test databases share it.
		`CREATE EXTENSION IF NOT EXISTS vector WITH SCHEMA public`,
		`CREATE TABLE IF NOT EXISTS chunk_search (
			chunk_pk     bigint PRIMARY KEY REFERENCES chunks (id) ON DELETE CASCADE,
			company_id   bigint NOT NULL,
			document_id  bigint NOT NULL,
			chunk_set_id bigint NOT NULL,
			content      text NOT NULL,
			tsv          tsvector GENERATED ALWAYS AS (to_tsvector('english', content)) STORED
		)`,
		`CREATE INDEX IF NOT EXISTS chunk_search_tsv_gin ON chunk_search USING gin (tsv)`,
		`CREATE INDEX IF NOT EXISTS chunk_search_company_document ON chunk_search (company_id, document_id)`,
		`CREATE TABLE IF NOT EXISTS chunk_embeddings (
			chunk_pk     bigint PRIMARY KEY REFERENCES chunks (id) ON DELETE CASCADE,
			company_id   bigint NOT NULL,
			document_id  bigint NOT NULL,
			chunk_set_id bigint NOT NULL,
			embedding    vector(1536) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS chunk_embeddings_hnsw ON chunk_embeddings USING hnsw (embedding vector_cosine_ops)`,
		`CREATE INDEX IF NOT EXISTS chunk_embeddings_company_document ON chunk_embeddings (company_id, document_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create search tables: %w", err)
		}
	}
	return nil
}

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// the schema relies on. These must match the constraints in
// 20260301000000_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, db *stdsql.DB) error {
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS subscription_company_id
		ON subscriptions (company_id)
		WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create subscription index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS document_company_id_checksum
		ON documents (company_id, checksum)
		WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create document dedup index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS matrixcell_matrix_id_cell_signature
		ON matrix_cells (matrix_id, cell_signature)
		WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create cell signature index: %w", err)
	}

	return nil
}
