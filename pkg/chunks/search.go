package chunks

import (
	"context"
	"fmt"
	"sort"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// Filters scope a search. CompanyID is mandatory; DocumentIDs, when
// non-empty, is an allowlist. The searcher enforces scope on every
// backend call rather than trusting callers to filter results.
type Filters struct {
	CompanyID   int
	DocumentIDs []int
}

// Result is one merged hit.
type Result struct {
	ChunkPK    int     `json:"chunk_pk"`
	ChunkID    string  `json:"chunk_id"`
	DocumentID int     `json:"document_id"`
	Score      float64 `json:"score"`
}

// HybridSearcher blends keyword and vector candidates.
type HybridSearcher struct {
	keyword  *KeywordIndex
	vector   *VectorIndex
	provider EmbeddingProvider
	cfg      *config.SearchConfig
}

// NewHybridSearcher wires the two backends and the embedding provider.
func NewHybridSearcher(keyword *KeywordIndex, vector *VectorIndex, provider EmbeddingProvider, cfg *config.SearchConfig) *HybridSearcher {
	return &HybridSearcher{keyword: keyword, vector: vector, provider: provider, cfg: cfg}
}

// Search runs both backends for CandidateK candidates each, merges by
// chunk, and returns the requested page. Per-backend scores are
// normalized to [0,1] by each list's maximum before the weighted sum.
func (s *HybridSearcher) Search(ctx context.Context, query string, filters Filters, skip, limit int) ([]Result, error) {
	if filters.CompanyID == 0 {
		return nil, fmt.Errorf("company scope is required")
	}
	if limit <= 0 {
		return nil, nil
	}

	keywordHits, err := s.keyword.Search(ctx, query, filters.CompanyID, filters.DocumentIDs, s.cfg.CandidateK)
	if err != nil {
		return nil, err
	}

	embeddings, err := s.provider.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	vectorHits, err := s.vector.Search(ctx, embeddings[0], filters.CompanyID, filters.DocumentIDs, s.cfg.CandidateK)
	if err != nil {
		return nil, err
	}

	merged := merge(keywordHits, vectorHits, s.cfg.KeywordWeight, s.cfg.VectorWeight)

	if skip >= len(merged) {
		return nil, nil
	}
	merged = merged[skip:]
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func merge(keyword, vector []Candidate, keywordWeight, vectorWeight float64) []Result {
	normalize(keyword)
	normalize(vector)

	byChunk := make(map[int]*Result)
	for _, c := range keyword {
		byChunk[c.ChunkPK] = &Result{
			ChunkPK:    c.ChunkPK,
			ChunkID:    c.ChunkID,
			DocumentID: c.DocumentID,
			Score:      keywordWeight * c.Score,
		}
	}
	for _, c := range vector {
		if existing, ok := byChunk[c.ChunkPK]; ok {
			existing.Score += vectorWeight * c.Score
			continue
		}
		byChunk[c.ChunkPK] = &Result{
			ChunkPK:    c.ChunkPK,
			ChunkID:    c.ChunkID,
			DocumentID: c.DocumentID,
			Score:      vectorWeight * c.Score,
		}
	}

	results := make([]Result, 0, len(byChunk))
	for _, r := range byChunk {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ChunkPK < results[j].ChunkPK
	})
	return results
}

// normalize scales scores in place by the list maximum.
func normalize(cands []Candidate) {
	var max float64
	for _, c := range cands {
		if c.Score > max {
			max = c.Score
		}
	}
	if max <= 0 {
		return
	}
	for i := range cands {
		cands[i].Score /= max
	}
}
