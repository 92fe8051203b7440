package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "company/7/", CompanyPrefix(7))
	assert.Equal(t, "company/7/documents/42/original/report.pdf", DocumentOriginalKey(7, 42, "report.pdf"))
	assert.Equal(t, "company/7/documents/42/extracted.md", DocumentExtractedKey(7, 42))
	assert.Equal(t, "company/7/documents/42/chunks/3/manifest.json", ChunkSetManifestKey(7, 42, 3))
	assert.Equal(t, "company/7/documents/42/chunks/3/chunk_001.md", ChunkKey(7, 42, 3, "chunk_001"))
	assert.Equal(t, "company/7/workflows/4/executions/9/manifest.json", ExecutionManifestKey(7, 4, 9))
	assert.Equal(t, "company/7/workflows/4/executions/9/output/result.csv", ExecutionFileKey(7, 4, 9, "output", "result.csv"))
}

func TestKeyLayoutNesting(t *testing.T) {
	// Every document key must fall under the document prefix, and every
	// document prefix under the company prefix. Tenant deletion relies
	// on this.
	docPrefix := DocumentPrefix(7, 42)
	assert.Contains(t, DocumentOriginalKey(7, 42, "a.pdf"), docPrefix)
	assert.Contains(t, DocumentExtractedKey(7, 42), docPrefix)
	assert.Contains(t, ChunkKey(7, 42, 3, "chunk_001"), docPrefix)
	assert.Contains(t, docPrefix, CompanyPrefix(7))
	assert.Contains(t, ExecutionPrefix(7, 4, 9), CompanyPrefix(7))
	assert.Contains(t, ExecutionFileKey(7, 4, 9, "output", "a.csv"), ExecutionPrefix(7, 4, 9))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Put(ctx, "company/1/documents/1/original/a.txt", []byte("hello"), "text/plain")
	require.NoError(t, err)

	data, err := store.Get(ctx, "company/1/documents/1/original/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	exists, err := store.Exists(ctx, "company/1/documents/1/original/a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "company/1/documents/1/original/a.txt", []byte("a"), ""))
	require.NoError(t, store.Put(ctx, "company/1/documents/1/extracted.md", []byte("b"), ""))
	require.NoError(t, store.Put(ctx, "company/2/documents/5/original/c.txt", []byte("c"), ""))

	require.NoError(t, store.DeletePrefix(ctx, "company/1/"))

	infos, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "company/2/documents/5/original/c.txt", infos[0].Key)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("immutable")
	require.NoError(t, store.Put(ctx, "k", original, ""))

	// Mutating the caller's slice must not reach the stored copy.
	original[0] = 'X'
	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), data)
}
