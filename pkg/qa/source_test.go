package qa

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceSourceFetchesAndCaches(t *testing.T) {
	var hits atomic.Int64
	var lastPath, lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		lastPath = r.URL.Path
		lastAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"id": 42, "text": "What is the notice period?", "type": "text", "use_agent_qa": true}`)
	}))
	defer srv.Close()

	source := NewWorkspaceSource(srv.URL, "secret")
	ctx := context.Background()

	q, err := source.Question(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, q.ID)
	assert.Equal(t, "What is the notice period?", q.Text)
	assert.True(t, q.UseAgentQA)
	assert.Equal(t, "/api/v1/companies/7/questions/42", lastPath)
	assert.Equal(t, "Bearer secret", lastAuth)

	// Second resolve hits the cache.
	_, err = source.Question(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())

	// Another company's view of the same id is a separate cache entry.
	_, err = source.Question(ctx, 8, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
	assert.Equal(t, "/api/v1/companies/8/questions/42", lastPath)
}

func TestWorkspaceSourceErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "question not found", http.StatusNotFound)
	}))
	defer srv.Close()

	source := NewWorkspaceSource(srv.URL, "")
	_, err := source.Question(context.Background(), 7, 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
