package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestListToolsPerContext(t *testing.T) {
	f := setupServer(t)

	qaKey := qaJobKey(t, f, 1)
	rec := f.do(t, http.MethodGet, "/api/v1/tools", qaKey, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var qaList ToolListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qaList))
	assert.Equal(t, "agent_qa", qaList.Context)
	var qaNames []string
	for _, tool := range qaList.Tools {
		qaNames = append(qaNames, tool.Name)
	}
	assert.Equal(t, []string{"answer_upload", "chunk_get", "chunk_search", "document_list", "matrix_cell_get"}, qaNames)

	execKey := executionKey(t, f, 1)
	rec = f.do(t, http.MethodGet, "/api/v1/tools", execKey, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wfList ToolListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wfList))
	assert.Equal(t, "workflow", wfList.Context)
	for _, tool := range wfList.Tools {
		assert.NotEqual(t, "answer_upload", tool.Name)
		assert.NotEqual(t, "matrix_cell_get", tool.Name)
	}
}

func TestInvokeDocumentList(t *testing.T) {
	f := setupServer(t)
	util.CreateTestDocument(t, f.client, f.company, "handbook.md", 512)
	key := qaJobKey(t, f, 1)

	rec := f.do(t, http.MethodPost, "/api/v1/tools/document_list", key, "application/json",
		strings.NewReader("{}"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "handbook.md")
}

func TestInvokeToolErrors(t *testing.T) {
	f := setupServer(t)
	qaKey := qaJobKey(t, f, 1)
	execKey := executionKey(t, f, 1)

	rec := f.do(t, http.MethodPost, "/api/v1/tools/no_such_tool", qaKey, "application/json",
		strings.NewReader("{}"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Write tools are denied in the workflow context.
	rec = f.do(t, http.MethodPost, "/api/v1/tools/answer_upload", execKey, "application/json",
		strings.NewReader(`{"matrix_cell_id": 1, "answer_found": false}`))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Schema violations map to 400.
	rec = f.do(t, http.MethodPost, "/api/v1/tools/chunk_search", qaKey, "application/json",
		strings.NewReader(`{"limit": 3}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
