package chunks

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

func TestChunkerForUnknown(t *testing.T) {
	_, err := ChunkerFor("spiral")
	assert.Error(t, err)
}

func TestHierarchicalChunker(t *testing.T) {
	chunker, err := ChunkerFor(config.ChunkingHierarchical)
	require.NoError(t, err)

	chunks := chunker.Split(structuredDoc)
	require.Len(t, chunks, 4)

	assert.Equal(t, "chunk_001", chunks[0].ChunkID)
	assert.Equal(t, "Title", chunks[0].Metadata.Section)
	assert.Equal(t, 1, chunks[0].Metadata.Level)
	assert.Contains(t, chunks[0].Content, "Intro paragraph.")

	assert.Equal(t, "Section One", chunks[1].Metadata.Section)
	assert.Contains(t, chunks[1].Content, "Body one.")
	assert.Equal(t, "Detail", chunks[3].Metadata.Section)
	assert.Equal(t, 3, chunks[3].Metadata.Level)
}

func TestHierarchicalChunkerSplitsOversizedSection(t *testing.T) {
	big := "# Big\n\n" + strings.Repeat("word ", 200) + "\n\n" + strings.Repeat("more ", 200) + "\n"
	chunker := &HierarchicalChunker{MaxSectionSize: 600}

	chunks := chunker.Split(big)
	assert.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.Equal(t, chunkID(i+1), c.ChunkID, "ids follow emission order")
	}
}

func TestFixedSizeChunker(t *testing.T) {
	content := strings.Repeat("a", 250)
	chunker := &FixedSizeChunker{Size: 100, Overlap: 20}

	chunks := chunker.Split(content)
	require.Len(t, chunks, 4)
	assert.Equal(t, 100, len(chunks[0].Content))
	assert.Equal(t, 0, chunks[0].Metadata.StartChar)
	assert.Equal(t, 80, chunks[1].Metadata.StartChar, "windows advance by size minus overlap")
	assert.Equal(t, 250, chunks[3].Metadata.EndChar)
}

func TestFixedSizeChunkerEmpty(t *testing.T) {
	chunker := &FixedSizeChunker{Size: 100, Overlap: 20}
	assert.Empty(t, chunker.Split(""))
}

func TestSentenceChunker(t *testing.T) {
	content := "First sentence. Second sentence! Third sentence? Fourth."
	chunker := &SentenceChunker{TargetSize: 35}

	chunks := chunker.Split(content)
	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Contains(t, chunks[0].Content, "First sentence.")
	// Sentences are never cut mid-way: rejoining restores every word.
	joined := strings.Join([]string{chunks[0].Content, chunks[1].Content}, " ")
	for _, word := range strings.Fields(content) {
		assert.Contains(t, joined, word)
	}
}

func TestParagraphChunker(t *testing.T) {
	content := "Para one line.\n\nPara two line.\n\n\nPara three line."
	chunker := &ParagraphChunker{TargetSize: 32}

	chunks := chunker.Split(content)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Para one line.\n\nPara two line.", chunks[0].Content)
	assert.Equal(t, "Para three line.", chunks[1].Content)
}

func TestMergeWeightsAndNormalization(t *testing.T) {
	keyword := []Candidate{
		{ChunkPK: 1, ChunkID: "chunk_001", DocumentID: 10, Score: 0.8},
		{ChunkPK: 2, ChunkID: "chunk_002", DocumentID: 10, Score: 0.4},
	}
	vector := []Candidate{
		{ChunkPK: 2, ChunkID: "chunk_002", DocumentID: 10, Score: 0.9},
		{ChunkPK: 3, ChunkID: "chunk_003", DocumentID: 11, Score: 0.45},
	}

	results := merge(keyword, vector, 0.5, 0.5)
	require.Len(t, results, 3)

	// Chunk 2 appears in both lists: 0.5*(0.4/0.8) + 0.5*(0.9/0.9) = 0.75.
	assert.Equal(t, 2, results[0].ChunkPK)
	assert.InDelta(t, 0.75, results[0].Score, 1e-9)

	// Chunk 1 tops the keyword list: 0.5*1.0.
	assert.Equal(t, 1, results[1].ChunkPK)
	assert.InDelta(t, 0.5, results[1].Score, 1e-9)

	// Chunk 3: 0.5*(0.45/0.9) = 0.25.
	assert.Equal(t, 3, results[2].ChunkPK)
	assert.InDelta(t, 0.25, results[2].Score, 1e-9)
}

func TestMergeEmptyBackends(t *testing.T) {
	assert.Empty(t, merge(nil, nil, 0.5, 0.5))
}

func TestStaticProviderDeterministic(t *testing.T) {
	p := &StaticProvider{Dim: 8}
	a, err := p.Embed(context.Background(), []string{"same text", "same text", "other"})
	require.NoError(t, err)
	assert.Equal(t, a[0], a[1])
	assert.NotEqual(t, a[0], a[2])
	assert.Len(t, a[0], 8)
}
