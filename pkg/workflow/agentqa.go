package workflow

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/docmatrix-ai/docmatrix/pkg/qa"
)

// Registered workflow names.
const (
	AgentQAWorkflowName           = "AgentQAWorkflow"
	WorkflowExecutionWorkflowName = "WorkflowExecutionWorkflow"
)

// AgentQAInput starts one sandboxed agent QA run. Timings travel in the
// input so replays stay deterministic across config changes.
type AgentQAInput struct {
	Request      qa.AgentQARequest `json:"request"`
	MaxWait      time.Duration     `json:"max_wait"`
	PollInterval time.Duration     `json:"poll_interval"`
}

// AgentQAResult reports the answer set the agent posted back.
type AgentQAResult struct {
	AnswerSetID int  `json:"answer_set_id"`
	AnswerFound bool `json:"answer_found"`
}

// CleanupRequest tears down one finished job.
type CleanupRequest struct {
	Execution LaunchResult `json:"execution"`
	CompanyID int          `json:"company_id"`
}

// AgentQAWorkflow runs one agent QA job: mint a credential, launch the
// agent container, poll until it exits, verify the posted answer set,
// revoke the credential and remove the job. Failure or timeout marks the
// QA job and its cell failed before the error propagates.
func AgentQAWorkflow(ctx workflow.Context, in AgentQAInput) (AgentQAResult, error) {
	cfg := OrchestrationConfig{
		LaunchActivity: "LaunchAgentJob",
		LaunchArgs:     []interface{}{in.Request},
		LaunchTimeout:  time.Minute,
		Polling: PollingConfig{
			MaxWait:       in.MaxWait,
			Interval:      in.PollInterval,
			CheckActivity: "CheckJobStatus",
			StatusTimeout: 30 * time.Second,
		},
		ExtractActivity: "ExtractAgentResult",
		ExtractArgsBuilder: func(launch LaunchResult) []interface{} {
			return []interface{}{in.Request.JobID}
		},
		ExtractTimeout:  time.Minute,
		CleanupActivity: "CleanupAgentJob",
		CleanupArgsBuilder: func(launch LaunchResult) []interface{} {
			return []interface{}{CleanupRequest{Execution: launch, CompanyID: in.Request.CompanyID}}
		},
		CleanupTimeout: time.Minute,
	}

	var result AgentQAResult
	if err := runOrchestration(ctx, cfg, &result); err != nil {
		failCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
			StartToCloseTimeout: time.Minute,
		})
		if markErr := workflow.ExecuteActivity(failCtx, "MarkJobFailed", in.Request.JobID, err.Error()).Get(ctx, nil); markErr != nil {
			workflow.GetLogger(ctx).Error("Failed to record job failure",
				"job_id", in.Request.JobID, "error", markErr)
		}
		return AgentQAResult{}, err
	}
	return result, nil
}
