package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
)

// orphanState tracks scan metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanScan periodically fails jobs stuck in processing. Every pod
// runs this independently; the updates are idempotent.
func (p *Pool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// recoverOrphans fails processing jobs older than the orphan threshold.
// Agent-path jobs legitimately sit in processing while their workflow
// runs, but the workflow's own max wait is well under the threshold, so
// anything this old has lost its owner.
func (p *Pool) recoverOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.QAJob.Query().
		Where(
			qajob.StatusEQ(qajob.StatusProcessing),
			qajob.StartedAtNotNil(),
			qajob.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned QA jobs", "count", len(orphans), "pod_id", p.podID)

	recovered := 0
	for _, job := range orphans {
		if err := failOrphan(ctx, p.client, p.engine, job,
			fmt.Sprintf("orphaned: no progress since %s", job.StartedAt.Format(time.RFC3339))); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", job.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()
	return nil
}

// RecoverStartupOrphans fails jobs this pod was processing when it last
// died. Called once before the pool starts consuming.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, engine *matrix.Engine, podID string) error {
	orphans, err := client.QAJob.Query().
		Where(
			qajob.StatusEQ(qajob.StatusProcessing),
			qajob.PodID(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, job := range orphans {
		msg := fmt.Sprintf("orphaned: pod %s restarted while job was processing", podID)
		if err := failOrphan(ctx, client, engine, job, msg); err != nil {
			slog.Error("Failed to mark startup orphan", "job_id", job.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}
	return nil
}

// failOrphan records the terminal failure on the job and its cell. The
// conditional update tolerates a race with the callback API completing
// the job first.
func failOrphan(ctx context.Context, client *ent.Client, engine *matrix.Engine, job *ent.QAJob, message string) error {
	n, err := client.QAJob.Update().
		Where(
			qajob.ID(job.ID),
			qajob.StatusEQ(qajob.StatusProcessing),
		).
		SetStatus(qajob.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail orphaned job: %w", err)
	}
	if n == 0 {
		return nil
	}

	if err := engine.MarkFailed(ctx, job.CellID); err != nil &&
		!errors.Is(err, matrix.ErrInvalidTransition) {
		return fmt.Errorf("failed to fail orphaned cell: %w", err)
	}
	return nil
}
