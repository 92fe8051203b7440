package workflow

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

// ExecutionInput starts one workflow execution run.
type ExecutionInput struct {
	ExecutionID  int           `json:"execution_id"`
	WorkflowID   int           `json:"workflow_id"`
	CompanyID    int           `json:"company_id"`
	MaxWait      time.Duration `json:"max_wait"`
	PollInterval time.Duration `json:"poll_interval"`
}

// ExecutionResult summarizes a completed execution.
type ExecutionResult struct {
	FileCount   int    `json:"file_count"`
	ManifestKey string `json:"manifest_key"`
}

// WorkflowExecutionWorkflow runs one user-defined workflow job:
// hours-scale polling, then the extract step lists the uploaded output
// files, writes the manifest, and records success metadata on the
// execution row. Failure persists status=failed with the error message.
func WorkflowExecutionWorkflow(ctx workflow.Context, in ExecutionInput) (ExecutionResult, error) {
	cfg := OrchestrationConfig{
		LaunchActivity: "LaunchExecution",
		LaunchArgs:     []interface{}{in},
		LaunchTimeout:  2 * time.Minute,
		Polling: PollingConfig{
			MaxWait:       in.MaxWait,
			Interval:      in.PollInterval,
			CheckActivity: "CheckJobStatus",
			StatusTimeout: 30 * time.Second,
		},
		ExtractActivity: "ExtractExecutionResult",
		ExtractArgsBuilder: func(launch LaunchResult) []interface{} {
			return []interface{}{in.ExecutionID}
		},
		ExtractTimeout:  5 * time.Minute,
		CleanupActivity: "CleanupAgentJob",
		CleanupArgsBuilder: func(launch LaunchResult) []interface{} {
			return []interface{}{CleanupRequest{Execution: launch, CompanyID: in.CompanyID}}
		},
		CleanupTimeout: time.Minute,
	}

	var result ExecutionResult
	if err := runOrchestration(ctx, cfg, &result); err != nil {
		failCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
			StartToCloseTimeout: time.Minute,
		})
		if markErr := workflow.ExecuteActivity(failCtx, "MarkExecutionFailed", in.ExecutionID, err.Error()).Get(ctx, nil); markErr != nil {
			workflow.GetLogger(ctx).Error("Failed to record execution failure",
				"execution_id", in.ExecutionID, "error", markErr)
		}
		return ExecutionResult{}, err
	}
	return result, nil
}
