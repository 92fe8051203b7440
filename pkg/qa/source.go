package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// WorkspaceSource resolves question content from the workspace API that
// owns it. Responses are cached briefly; question definitions change
// rarely but the same question is resolved once per cell in a column run.
type WorkspaceSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu       sync.RWMutex
	cache    map[string]*cachedQuestion
	cacheTTL time.Duration
}

type cachedQuestion struct {
	question  Question
	fetchedAt time.Time
}

// NewWorkspaceSource creates a question source against the workspace API
// at baseURL. apiKey may be empty for unauthenticated deployments.
func NewWorkspaceSource(baseURL, apiKey string) *WorkspaceSource {
	return &WorkspaceSource{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      make(map[string]*cachedQuestion),
		cacheTTL:   time.Minute,
	}
}

// Question fetches one question definition, company-scoped.
func (s *WorkspaceSource) Question(ctx context.Context, companyID, questionID int) (Question, error) {
	key := fmt.Sprintf("%d/%d", companyID, questionID)
	if q, ok := s.cached(key); ok {
		return q, nil
	}

	url := fmt.Sprintf("%s/api/v1/companies/%d/questions/%d", s.baseURL, companyID, questionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Question{}, fmt.Errorf("failed to build question request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Question{}, fmt.Errorf("failed to fetch question %d: %w", questionID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Question{}, fmt.Errorf("workspace API returned %d for question %d: %s",
			resp.StatusCode, questionID, string(body))
	}

	var q Question
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return Question{}, fmt.Errorf("failed to decode question %d: %w", questionID, err)
	}

	s.store(key, q)
	return q, nil
}

func (s *WorkspaceSource) cached(key string) (Question, bool) {
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok {
		return Question{}, false
	}
	if time.Since(entry.fetchedAt) > s.cacheTTL {
		// Expired; clean up lazily. Re-check under the write lock since a
		// concurrent store may have refreshed the entry.
		s.mu.Lock()
		if current, ok := s.cache[key]; ok && time.Since(current.fetchedAt) > s.cacheTTL {
			delete(s.cache, key)
		}
		s.mu.Unlock()
		return Question{}, false
	}
	return entry.question, true
}

func (s *WorkspaceSource) store(key string, q Question) {
	s.mu.Lock()
	s.cache[key] = &cachedQuestion{question: q, fetchedAt: time.Now()}
	s.mu.Unlock()
}
