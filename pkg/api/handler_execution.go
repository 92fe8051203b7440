package api

import (
	"encoding/json"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// maxUploadBytes caps one execution file upload.
const maxUploadBytes = 512 << 20

// loadScopedExecution resolves the execution addressed by the request
// path, enforcing that the credential was minted for exactly this
// execution and that it belongs to the caller's company.
func (s *Server) loadScopedExecution(c *echo.Context) (*ent.WorkflowExecution, *echo.HTTPError) {
	user, ok := principalFrom(c.Request().Context())
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	workflowID, err := strconv.Atoi(c.Param("workflow_id"))
	if err != nil || workflowID <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid workflow id")
	}
	executionID, err := strconv.Atoi(c.Param("execution_id"))
	if err != nil || executionID <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid execution id")
	}

	scopedID, ok := user.WorkflowExecutionID()
	if !ok || scopedID != executionID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "credential is not scoped to this execution")
	}

	exec, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.ID(executionID),
			workflowexecution.WorkflowID(workflowID),
			workflowexecution.CompanyID(user.CompanyID),
		).
		Only(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "execution not found")
		}
		return nil, mapServiceError(err)
	}
	if exec.Status != workflowexecution.StatusRunning {
		return nil, echo.NewHTTPError(http.StatusConflict, "execution is not running")
	}
	return exec, nil
}

// uploadExecutionFileHandler handles
// POST /api/v1/workflows/:workflow_id/executions/:execution_id/files.
// Multipart body: "file" (required), "kind" ("output" or "scratch",
// default "output"). Re-uploading the same name overwrites.
func (s *Server) uploadExecutionFileHandler(c *echo.Context) error {
	exec, httpErr := s.loadScopedExecution(c)
	if httpErr != nil {
		return httpErr
	}
	ctx := c.Request().Context()

	if err := c.Request().ParseMultipartForm(maxUploadBytes); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart body")
	}
	file, header, err := c.Request().FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}
	defer func() { _ = file.Close() }()

	kind := executionfile.FileKindOutput
	switch c.Request().FormValue("kind") {
	case "", "output":
	case "scratch":
		kind = executionfile.FileKindScratch
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be output or scratch")
	}

	// Strip any path components the client sent.
	fileName := path.Base(header.Filename)
	if fileName == "." || fileName == "/" || fileName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid file name")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read file")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.ExecutionFileKey(exec.CompanyID, exec.WorkflowID, exec.ID, string(kind), fileName)
	if err := s.store.Put(ctx, key, data, contentType); err != nil {
		return mapServiceError(err)
	}

	row, err := s.client.ExecutionFile.Create().
		SetExecutionID(exec.ID).
		SetFileName(fileName).
		SetStorageKey(key).
		SetFileKind(kind).
		SetSizeBytes(int64(len(data))).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Same name uploaded twice; keep one row per name.
		existing, qerr := s.client.ExecutionFile.Query().
			Where(executionfile.ExecutionID(exec.ID), executionfile.FileName(fileName)).
			Only(ctx)
		if qerr != nil {
			return mapServiceError(qerr)
		}
		row, err = existing.Update().
			SetStorageKey(key).
			SetFileKind(kind).
			SetSizeBytes(int64(len(data))).
			Save(ctx)
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &FileUploadResponse{
		FileID:     row.ID,
		FileName:   row.FileName,
		StorageKey: row.StorageKey,
		SizeBytes:  row.SizeBytes,
	})
}

// outputManifest mirrors the manifest the workflow's extract step
// writes; the endpoint lets a job publish it before exiting.
type outputManifest struct {
	ExecutionID int                 `json:"execution_id"`
	CreatedAt   time.Time           `json:"created_at"`
	TotalFiles  int                 `json:"total_files"`
	Files       []outputManifestRow `json:"files"`
}

type outputManifestRow struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
}

// writeManifestHandler handles
// POST /api/v1/workflows/:workflow_id/executions/:execution_id/manifest.
// Builds the manifest from the recorded output files and stores it at
// the execution's manifest key.
func (s *Server) writeManifestHandler(c *echo.Context) error {
	exec, httpErr := s.loadScopedExecution(c)
	if httpErr != nil {
		return httpErr
	}
	ctx := c.Request().Context()

	files, err := s.client.ExecutionFile.Query().
		Where(
			executionfile.ExecutionID(exec.ID),
			executionfile.FileKindEQ(executionfile.FileKindOutput),
		).
		Order(ent.Asc(executionfile.FieldFileName)).
		All(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	manifest := outputManifest{
		ExecutionID: exec.ID,
		CreatedAt:   time.Now().UTC(),
		TotalFiles:  len(files),
	}
	for _, f := range files {
		manifest.Files = append(manifest.Files, outputManifestRow{
			FileName:  f.FileName,
			SizeBytes: f.SizeBytes,
		})
	}

	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return mapServiceError(err)
	}
	key := storage.ExecutionManifestKey(exec.CompanyID, exec.WorkflowID, exec.ID)
	if err := s.store.Put(ctx, key, manifestJSON, "application/json"); err != nil {
		return mapServiceError(err)
	}
	if err := exec.Update().SetManifestKey(key).Exec(ctx); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ManifestResponse{
		ExecutionID: exec.ID,
		ManifestKey: key,
		FileCount:   len(files),
		WrittenAt:   manifest.CreatedAt,
	})
}
