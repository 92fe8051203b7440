package config

// SearchConfig configures hybrid chunk search and embedding generation.
type SearchConfig struct {
	// KeywordWeight and VectorWeight blend the two normalized score sets.
	// They should sum to 1.
	KeywordWeight float64 `yaml:"keyword_weight"`
	VectorWeight  float64 `yaml:"vector_weight"`

	// CandidateK is how many candidates each backend contributes before
	// merging.
	CandidateK int `yaml:"candidate_k"`

	// EmbeddingModel passed to the embedding provider.
	EmbeddingModel string `yaml:"embedding_model"`

	// EmbeddingDimensions of the vector column.
	EmbeddingDimensions int `yaml:"embedding_dimensions"`

	// EmbeddingAPIKeys are tried in order; the provider rotates to the
	// next key on an authentication failure.
	EmbeddingAPIKeys []string `yaml:"embedding_api_keys"`
}

// DefaultSearchConfig returns the built-in search defaults.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		KeywordWeight:       0.5,
		VectorWeight:        0.5,
		CandidateK:          50,
		EmbeddingModel:      "text-embedding-3-small",
		EmbeddingDimensions: 1536,
	}
}
