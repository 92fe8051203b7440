// Package workflow runs agent jobs durably on Temporal: launch a
// sandboxed job, poll its status on a timer, extract the result, and
// clean up. Workflow code is deterministic; everything touching the
// outside world lives in activities.
package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/docmatrix-ai/docmatrix/pkg/executor"
)

// Typed failure kinds callers can branch on.
const (
	ErrTypeJobExecutionFailed  = "JobExecutionFailed"
	ErrTypeJobExecutionTimeout = "JobExecutionTimeout"
)

// PollingConfig drives the status poll loop.
type PollingConfig struct {
	// MaxWait bounds the whole job end to end.
	MaxWait time.Duration
	// Interval between status checks.
	Interval time.Duration
	// CheckActivity reports the job's state.
	CheckActivity string
	// StatusTimeout is the start-to-close deadline of one check.
	StatusTimeout time.Duration
}

// OrchestrationConfig describes one launch-poll-extract-cleanup run.
// Both workflows feed this into runOrchestration; only the activities
// and timings differ.
type OrchestrationConfig struct {
	LaunchActivity string
	LaunchArgs     []interface{}
	LaunchTimeout  time.Duration

	Polling PollingConfig

	ExtractActivity    string
	ExtractArgsBuilder func(launch LaunchResult) []interface{}
	ExtractTimeout     time.Duration

	CleanupActivity    string
	CleanupArgsBuilder func(launch LaunchResult) []interface{}
	CleanupTimeout     time.Duration
}

// LaunchResult is what every launch activity returns: the execution
// handle plus the credential minted for the job.
type LaunchResult struct {
	Execution        executor.ExecutionInfo `json:"execution"`
	ServiceAccountID int                    `json:"service_account_id"`
}

// runOrchestration implements the shared job lifecycle. Cleanup runs on
// success and on poll timeout; genuinely failed jobs are left for
// post-mortem. Cleanup errors are logged, never raised.
func runOrchestration(ctx workflow.Context, cfg OrchestrationConfig, extractResult interface{}) error {
	logger := workflow.GetLogger(ctx)

	launchCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: cfg.LaunchTimeout,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 3},
	})
	var launch LaunchResult
	if err := workflow.ExecuteActivity(launchCtx, cfg.LaunchActivity, cfg.LaunchArgs...).Get(ctx, &launch); err != nil {
		return temporal.NewApplicationErrorWithCause("job launch failed", ErrTypeJobExecutionFailed, err)
	}
	logger.Info("Job launched", "job_id", launch.Execution.JobID, "mode", launch.Execution.Mode)

	checkCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: cfg.Polling.StatusTimeout,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 3},
	})
	deadline := workflow.Now(ctx).Add(cfg.Polling.MaxWait)
	for {
		var status executor.JobStatus
		if err := workflow.ExecuteActivity(checkCtx, cfg.Polling.CheckActivity, launch.Execution).Get(ctx, &status); err != nil {
			return temporal.NewApplicationErrorWithCause("status check failed", ErrTypeJobExecutionFailed, err)
		}
		if status.State == executor.StateCompleted {
			break
		}
		if status.State == executor.StateFailed {
			return temporal.NewApplicationError(
				fmt.Sprintf("job failed: %s", status.Reason), ErrTypeJobExecutionFailed)
		}
		if workflow.Now(ctx).After(deadline) {
			// The job is stuck, not failed: tear the sandbox down so it
			// does not keep running unattended.
			runCleanup(ctx, cfg, launch)
			return temporal.NewApplicationError(
				fmt.Sprintf("job still running after %s", cfg.Polling.MaxWait), ErrTypeJobExecutionTimeout)
		}
		if err := workflow.Sleep(ctx, cfg.Polling.Interval); err != nil {
			return err
		}
	}

	extractCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: cfg.ExtractTimeout,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 3},
	})
	if err := workflow.ExecuteActivity(extractCtx, cfg.ExtractActivity, cfg.ExtractArgsBuilder(launch)...).Get(ctx, extractResult); err != nil {
		return temporal.NewApplicationErrorWithCause("result extraction failed", ErrTypeJobExecutionFailed, err)
	}

	runCleanup(ctx, cfg, launch)
	return nil
}

// runCleanup tears the job down best-effort: a cleanup error is logged
// and never fails the workflow.
func runCleanup(ctx workflow.Context, cfg OrchestrationConfig, launch LaunchResult) {
	cleanupCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: cfg.CleanupTimeout,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 3},
	})
	if err := workflow.ExecuteActivity(cleanupCtx, cfg.CleanupActivity, cfg.CleanupArgsBuilder(launch)...).Get(ctx, nil); err != nil {
		workflow.GetLogger(ctx).Warn("Cleanup failed", "job_id", launch.Execution.JobID, "error", err)
	}
}
