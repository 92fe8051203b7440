package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// runningExecution creates a workflow with one running execution.
func runningExecution(t *testing.T, f *apiFixture) (*ent.Workflow, *ent.WorkflowExecution) {
	t.Helper()
	ctx := context.Background()

	wf, err := f.client.Workflow.Create().
		SetCompanyID(f.company).
		SetName("report-builder").
		SetImageName("docmatrix/report-builder").
		Save(ctx)
	require.NoError(t, err)

	exec, err := f.client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetCompanyID(f.company).
		SetStatus(workflowexecution.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	return wf, exec
}

// multipartFile builds a multipart body with one file part and optional
// extra form fields.
func multipartFile(t *testing.T, fileName string, data []byte, fields map[string]string) (string, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return w.FormDataContentType(), buf
}

func filesPath(wf *ent.Workflow, exec *ent.WorkflowExecution) string {
	return fmt.Sprintf("/api/v1/workflows/%d/executions/%d/files", wf.ID, exec.ID)
}

func TestUploadExecutionFile(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)
	key := executionKey(t, f, exec.ID)

	contentType, body := multipartFile(t, "report.pdf", []byte("pdf-bytes"), nil)
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	row, err := f.client.ExecutionFile.Query().
		Where(executionfile.ExecutionID(exec.ID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", row.FileName)
	assert.Equal(t, executionfile.FileKindOutput, row.FileKind)
	assert.Equal(t, int64(len("pdf-bytes")), row.SizeBytes)

	stored, err := f.store.Get(context.Background(),
		storage.ExecutionFileKey(f.company, wf.ID, exec.ID, "output", "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), stored)
}

func TestUploadExecutionFileOverwritesSameName(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)
	key := executionKey(t, f, exec.ID)

	contentType, body := multipartFile(t, "report.pdf", []byte("v1"), nil)
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	contentType, body = multipartFile(t, "report.pdf", []byte("v2-longer"), nil)
	rec = f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rows, err := f.client.ExecutionFile.Query().
		Where(executionfile.ExecutionID(exec.ID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "one row per file name")
	assert.Equal(t, int64(len("v2-longer")), rows[0].SizeBytes)
}

func TestUploadScratchFile(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)
	key := executionKey(t, f, exec.ID)

	contentType, body := multipartFile(t, "notes.txt", []byte("wip"), map[string]string{"kind": "scratch"})
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	row, err := f.client.ExecutionFile.Query().
		Where(executionfile.ExecutionID(exec.ID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, executionfile.FileKindScratch, row.FileKind)
}

func TestUploadRequiresMatchingExecutionScope(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)

	otherKey := executionKey(t, f, exec.ID+100)
	contentType, body := multipartFile(t, "report.pdf", []byte("x"), nil)
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), otherKey, contentType, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	qaKey := qaJobKey(t, f, 1)
	contentType, body = multipartFile(t, "report.pdf", []byte("x"), nil)
	rec = f.do(t, http.MethodPost, filesPath(wf, exec), qaKey, contentType, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadConflictsWhenExecutionNotRunning(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)
	key := executionKey(t, f, exec.ID)

	require.NoError(t, f.client.WorkflowExecution.UpdateOneID(exec.ID).
		SetStatus(workflowexecution.StatusCompleted).
		Exec(context.Background()))

	contentType, body := multipartFile(t, "report.pdf", []byte("x"), nil)
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWriteManifest(t *testing.T) {
	f := setupServer(t)
	wf, exec := runningExecution(t, f)
	key := executionKey(t, f, exec.ID)

	for _, name := range []string{"b.csv", "a.pdf"} {
		contentType, body := multipartFile(t, name, []byte("data"), nil)
		rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	// Scratch files never appear in the manifest.
	contentType, body := multipartFile(t, "tmp.log", []byte("x"), map[string]string{"kind": "scratch"})
	rec := f.do(t, http.MethodPost, filesPath(wf, exec), key, contentType, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	manifestPath := fmt.Sprintf("/api/v1/workflows/%d/executions/%d/manifest", wf.ID, exec.ID)
	rec = f.do(t, http.MethodPost, manifestPath, key, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"file_count":2`)

	manifestKey := storage.ExecutionManifestKey(f.company, wf.ID, exec.ID)
	manifest, err := f.store.Get(context.Background(), manifestKey)
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "a.pdf")
	assert.Contains(t, string(manifest), "b.csv")
	assert.NotContains(t, string(manifest), "tmp.log")

	updated, err := f.client.WorkflowExecution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ManifestKey)
	assert.Equal(t, manifestKey, *updated.ManifestKey)
}
