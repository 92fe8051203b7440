package chunks

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// ErrNoAPIKeys is returned when every configured embedding key has been
// rejected.
var ErrNoAPIKeys = errors.New("all embedding API keys exhausted")

// EmbeddingProvider turns texts into vectors. Implementations must
// return one vector per input, in order.
type EmbeddingProvider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// OpenAIProvider generates embeddings with key rotation: an
// authentication failure permanently advances to the next configured
// key.
type OpenAIProvider struct {
	mu         sync.Mutex
	keys       []string
	active     int
	model      string
	dimensions int
}

// NewOpenAIProvider creates a provider from the search configuration.
func NewOpenAIProvider(cfg *config.SearchConfig) (*OpenAIProvider, error) {
	if len(cfg.EmbeddingAPIKeys) == 0 {
		return nil, errors.New("no embedding API keys configured")
	}
	return &OpenAIProvider{
		keys:       cfg.EmbeddingAPIKeys,
		model:      cfg.EmbeddingModel,
		dimensions: cfg.EmbeddingDimensions,
	}, nil
}

func (p *OpenAIProvider) Dimensions() int { return p.dimensions }

func (p *OpenAIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	for {
		p.mu.Lock()
		if p.active >= len(p.keys) {
			p.mu.Unlock()
			return nil, ErrNoAPIKeys
		}
		key := p.keys[p.active]
		p.mu.Unlock()

		vectors, err := p.embedWithKey(ctx, key, texts)
		if err == nil {
			return vectors, nil
		}
		if !isAuthError(err) {
			return nil, fmt.Errorf("embedding request failed: %w", err)
		}

		// The key was rejected; rotate and retry with the next one.
		p.mu.Lock()
		p.active++
		remaining := len(p.keys) - p.active
		p.mu.Unlock()
		slog.Warn("Embedding API key rejected, rotating", "keys_remaining", remaining)
	}
}

func (p *OpenAIProvider) embedWithKey(ctx context.Context, key string, texts []string) ([][]float32, error) {
	client := openai.NewClient(option.WithAPIKey(key))
	resp, err := client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(p.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		vec := make([]float32, len(item.Embedding))
		for j, v := range item.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func isAuthError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// StaticProvider is a deterministic test provider: each text hashes to a
// stable unit vector, so identical texts are identical vectors.
type StaticProvider struct {
	Dim int
}

func (p *StaticProvider) Dimensions() int { return p.Dim }

func (p *StaticProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, p.Dim)
		h := fnv.New64a()
		_, _ = h.Write([]byte(text))
		seed := h.Sum64()
		var norm float64
		for j := range vec {
			seed = seed*6364136223846793005 + 1442695040888963407
			v := float32(int64(seed>>33)) / float32(1<<30)
			vec[j] = v
			norm += float64(v) * float64(v)
		}
		norm = math.Sqrt(norm)
		for j := range vec {
			vec[j] = float32(float64(vec[j]) / norm)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
