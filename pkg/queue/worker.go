package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
)

// handleDelivery is the bus handler for one QA job delivery. A nil
// return acknowledges the message; errors before the claim trigger
// redelivery. After the claim the job can no longer be re-claimed, so
// every later failure is recorded as a terminal job state instead.
func (p *Pool) handleDelivery(ctx context.Context, msg messaging.Message) error {
	var payload matrix.JobPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		// A payload that never parses will never parse on redelivery.
		slog.Error("Dropping malformed QA job payload",
			"queue", msg.Queue, "attempt", msg.Attempt, "error", err)
		return nil
	}

	if err := p.acquireSlot(ctx); err != nil {
		return fmt.Errorf("no worker slot: %w", err)
	}
	defer p.releaseSlot()

	return p.processJob(ctx, payload)
}

func (p *Pool) processJob(ctx context.Context, payload matrix.JobPayload) error {
	log := slog.With("job_id", payload.JobID, "cell_id", payload.CellID, "pod_id", p.podID)

	claimed, err := p.claimJob(ctx, payload.JobID)
	if err != nil {
		return err
	}
	if !claimed {
		// Another replica got here first, or the job already finished.
		log.Debug("QA job already claimed, acknowledging")
		return nil
	}
	log.Info("QA job claimed")

	// The cell may already be processing if a previous attempt died
	// between claiming and crashing. Only a terminal cell is a surprise.
	if err := p.engine.MarkProcessing(ctx, payload.CellID); err != nil &&
		!errors.Is(err, matrix.ErrInvalidTransition) {
		p.finishFailed(payload, fmt.Sprintf("failed to mark cell processing: %v", err))
		return nil
	}

	jobCtx, cancel := context.WithTimeout(ctx, p.config.JobTimeout)
	defer cancel()

	outcome, err := p.processor.Process(jobCtx, payload)
	switch {
	case err == nil && outcome.WorkflowID != "":
		// Agent path: the job stays processing until the agent posts its
		// answer through the callback API. The workflow owns the rest.
		log.Info("QA job handed to agent workflow",
			"workflow_id", outcome.WorkflowID, "reason", outcome.Decision.Reason)
	case err == nil:
		p.finishCompleted(payload, log)
		log.Info("QA job completed", "answer_set_id", outcome.AnswerSetID)
	case isQuotaDenied(err):
		p.finishFailed(payload, err.Error())
		log.Warn("QA job denied by quota", "error", err)
	case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		p.finishFailed(payload, fmt.Sprintf("job timed out after %v", p.config.JobTimeout))
		log.Error("QA job timed out")
	default:
		p.finishFailed(payload, err.Error())
		log.Error("QA job failed", "error", err)
	}

	p.mu.Lock()
	p.jobsProcessed++
	p.mu.Unlock()
	return nil
}

// claimJob moves the job from queued to processing and stamps this pod.
// Zero affected rows means another worker owns it.
func (p *Pool) claimJob(ctx context.Context, jobID int) (bool, error) {
	n, err := p.client.QAJob.Update().
		Where(
			qajob.ID(jobID),
			qajob.StatusEQ(qajob.StatusQueued),
		).
		SetStatus(qajob.StatusProcessing).
		SetPodID(p.podID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim QA job %d: %w", jobID, err)
	}
	return n > 0, nil
}

// finishCompleted records local-path success. Uses a background context;
// the job context may already be cancelled.
func (p *Pool) finishCompleted(payload matrix.JobPayload, log *slog.Logger) {
	err := p.client.QAJob.UpdateOneID(payload.JobID).
		SetStatus(qajob.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(context.Background())
	if err != nil {
		log.Error("Failed to record QA job completion", "error", err)
	}
}

// finishFailed records a terminal failure on the job and its cell.
func (p *Pool) finishFailed(payload matrix.JobPayload, message string) {
	ctx := context.Background()

	err := p.client.QAJob.UpdateOneID(payload.JobID).
		SetStatus(qajob.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record QA job failure",
			"job_id", payload.JobID, "error", err)
	}

	if err := p.engine.MarkFailed(ctx, payload.CellID); err != nil &&
		!errors.Is(err, matrix.ErrInvalidTransition) {
		slog.Error("Failed to mark cell failed",
			"cell_id", payload.CellID, "error", err)
	}
}

func isQuotaDenied(err error) bool {
	var quotaErr *qa.QuotaError
	return errors.As(err, &quotaErr)
}

var _ JobProcessor = (*qa.Dispatcher)(nil)
