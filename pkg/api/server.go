// Package api is the HTTP surface sandboxed jobs call back into: tool
// invocation, answer upload, and execution output upload. Every route
// except /health requires an ephemeral service-account key, and every
// query is scoped to the key's company.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/queue"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
)

// Server is the callback API server.
type Server struct {
	echo    *echo.Echo
	httpSrv *http.Server

	client   *ent.Client
	db       *sql.DB
	broker   *credentials.Broker
	registry *tools.Registry
	store    storage.ObjectStore

	workerPool *queue.Pool
}

// NewServer creates the callback API server and registers its routes.
func NewServer(client *ent.Client, db *sql.DB, broker *credentials.Broker, registry *tools.Registry, store storage.ObjectStore) *Server {
	s := &Server{
		echo:     echo.New(),
		client:   client,
		db:       db,
		broker:   broker,
		registry: registry,
		store:    store,
	}
	s.echo.Use(securityHeaders())
	s.registerRoutes()
	return s
}

// SetWorkerPool attaches the worker pool for health reporting.
func (s *Server) SetWorkerPool(pool *queue.Pool) {
	s.workerPool = pool
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)

	e.GET("/api/v1/tools", s.withAuth(s.listToolsHandler))
	e.POST("/api/v1/tools/:name", s.withAuth(s.invokeToolHandler))

	e.POST("/api/v1/qa-jobs/:id/answer", s.withAuth(s.uploadAnswerHandler))

	e.POST("/api/v1/workflows/:workflow_id/executions/:execution_id/files",
		s.withAuth(s.uploadExecutionFileHandler))
	e.POST("/api/v1/workflows/:workflow_id/executions/:execution_id/manifest",
		s.withAuth(s.writeManifestHandler))
}

// ServeHTTP implements http.Handler; used directly by tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start runs the HTTP server on addr. Blocks until Shutdown or a
// listener error; returns http.ErrServerClosed on clean shutdown.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
