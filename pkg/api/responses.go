package api

import (
	"time"

	"github.com/docmatrix-ai/docmatrix/pkg/quota"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's contribution to the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// QuotaDeniedResponse is the 402 payload for a denied quota reservation.
type QuotaDeniedResponse struct {
	Error string            `json:"error"`
	Quota *quota.QuotaCheck `json:"quota"`
}

// ToolDescriptor is one entry of GET /api/v1/tools.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Permission  string `json:"permission"`
}

// ToolListResponse is returned by GET /api/v1/tools.
type ToolListResponse struct {
	Context string           `json:"context"`
	Tools   []ToolDescriptor `json:"tools"`
}

// FileUploadResponse is returned by the execution file upload endpoint.
type FileUploadResponse struct {
	FileID     int    `json:"file_id"`
	FileName   string `json:"file_name"`
	StorageKey string `json:"storage_key"`
	SizeBytes  int64  `json:"size_bytes"`
}

// ManifestResponse is returned by the execution manifest endpoint.
type ManifestResponse struct {
	ExecutionID int       `json:"execution_id"`
	ManifestKey string    `json:"manifest_key"`
	FileCount   int       `json:"file_count"`
	WrittenAt   time.Time `json:"written_at"`
}
