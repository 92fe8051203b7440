// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// Service periodically enforces retention policies:
//   - Revokes active service accounts past their TTL (credentials
//     leaked by crashed or abandoned jobs)
//   - Soft-deletes completed workflow executions past retention and
//     removes their storage prefix
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	broker *credentials.Broker
	store  storage.ObjectStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, broker *credentials.Broker, store storage.ObjectStore) *Service {
	return &Service{
		config: cfg,
		client: client,
		broker: broker,
		store:  store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"service_account_ttl", s.config.ServiceAccountTTL,
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass. Exported for admin-triggered runs.
func (s *Service) RunAll(ctx context.Context) {
	s.revokeStaleCredentials(ctx)
	s.expireOldExecutions(ctx)
}

func (s *Service) revokeStaleCredentials(ctx context.Context) {
	count, err := s.broker.RevokeExpired(ctx, s.config.ServiceAccountTTL)
	if err != nil {
		slog.Error("Retention: credential revocation failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: revoked stale service accounts", "count", count)
	}
}

// expireOldExecutions soft-deletes completed executions whose retention
// ran out and removes their output files from storage. The DB row is
// kept for audit; only the bytes go away.
func (s *Service) expireOldExecutions(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.ExecutionRetentionDays)

	expired, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusCompleted),
			workflowexecution.CompletedAtNotNil(),
			workflowexecution.CompletedAtLT(cutoff),
			workflowexecution.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		slog.Error("Retention: execution query failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	removed := 0
	for _, exec := range expired {
		if err := s.store.DeletePrefix(ctx, storage.ExecutionPrefix(exec.CompanyID, exec.WorkflowID, exec.ID)); err != nil {
			slog.Warn("Retention: failed to remove execution storage",
				"execution_id", exec.ID, "error", err)
			continue
		}
		if err := exec.Update().SetDeletedAt(time.Now()).Exec(ctx); err != nil {
			slog.Error("Retention: failed to mark execution deleted",
				"execution_id", exec.ID, "error", err)
			continue
		}
		removed++
	}
	slog.Info("Retention: expired old executions", "count", removed)
}
