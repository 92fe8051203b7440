package workflow

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
)

// Starter launches workflows on the configured task queue. Implements
// the dispatcher's AgentLauncher boundary.
type Starter struct {
	temporal client.Client
	cfg      *config.WorkflowConfig
}

// NewStarter creates a workflow starter.
func NewStarter(temporal client.Client, cfg *config.WorkflowConfig) *Starter {
	return &Starter{temporal: temporal, cfg: cfg}
}

// StartAgentQA starts the agent QA workflow for one job. The workflow id
// is derived from the job id so duplicate starts collapse.
func (s *Starter) StartAgentQA(ctx context.Context, req qa.AgentQARequest) (string, error) {
	run, err := s.temporal.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        fmt.Sprintf("agent-qa-%d", req.JobID),
		TaskQueue: s.cfg.TaskQueue,
	}, AgentQAWorkflowName, AgentQAInput{
		Request:      req,
		MaxWait:      s.cfg.AgentQAMaxWait,
		PollInterval: s.cfg.AgentQAPollInterval,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start agent QA workflow: %w", err)
	}
	return run.GetID(), nil
}

// StartExecution starts the long-running workflow execution workflow.
func (s *Starter) StartExecution(ctx context.Context, executionID, workflowID, companyID int) (string, error) {
	run, err := s.temporal.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        fmt.Sprintf("execution-%d", executionID),
		TaskQueue: s.cfg.TaskQueue,
	}, WorkflowExecutionWorkflowName, ExecutionInput{
		ExecutionID:  executionID,
		WorkflowID:   workflowID,
		CompanyID:    companyID,
		MaxWait:      s.cfg.ExecutionMaxWait,
		PollInterval: s.cfg.ExecutionPollInterval,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start execution workflow: %w", err)
	}
	return run.GetID(), nil
}
