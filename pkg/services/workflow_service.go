package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	entworkflow "github.com/docmatrix-ai/docmatrix/ent/workflow"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
)

// ExecutionStarter launches the durable execution workflow. Implemented
// by the workflow package's Starter.
type ExecutionStarter interface {
	StartExecution(ctx context.Context, executionID, workflowID, companyID int) (string, error)
}

// WorkflowService manages workflow definitions and their executions.
type WorkflowService struct {
	client  *ent.Client
	quotas  *quota.Service
	starter ExecutionStarter
}

// NewWorkflowService creates a new WorkflowService. starter may be nil
// when executions are launched elsewhere (tests, admin backfills).
func NewWorkflowService(client *ent.Client, quotas *quota.Service, starter ExecutionStarter) *WorkflowService {
	if client == nil {
		panic("NewWorkflowService: client must not be nil")
	}
	return &WorkflowService{client: client, quotas: quotas, starter: starter}
}

// CreateWorkflowInput is the domain-level definition of a new workflow.
type CreateWorkflowInput struct {
	Name        string
	Description string
	ImageName   string
	ImageTag    string
	JobConfig   map[string]interface{}
}

// CreateWorkflow registers a job definition for a company.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, companyID int, input CreateWorkflowInput) (*ent.Workflow, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "workflow name is required")
	}
	if input.ImageName == "" {
		return nil, NewValidationError("image_name", "image name is required")
	}

	builder := s.client.Workflow.Create().
		SetCompanyID(companyID).
		SetName(input.Name).
		SetDescription(input.Description).
		SetImageName(input.ImageName)
	if input.ImageTag != "" {
		builder.SetImageTag(input.ImageTag)
	}
	if input.JobConfig != nil {
		builder.SetJobConfig(input.JobConfig)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow returns a live workflow scoped to a company.
func (s *WorkflowService) GetWorkflow(ctx context.Context, companyID, workflowID int) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(
			entworkflow.ID(workflowID),
			entworkflow.CompanyID(companyID),
			entworkflow.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("workflow %d: %w", workflowID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query workflow: %w", err)
	}
	return wf, nil
}

// ListWorkflows returns a company's live workflows, newest first.
func (s *WorkflowService) ListWorkflows(ctx context.Context, companyID int) ([]*ent.Workflow, error) {
	wfs, err := s.client.Workflow.Query().
		Where(
			entworkflow.CompanyID(companyID),
			entworkflow.DeletedAtIsNil(),
		).
		Order(ent.Desc(entworkflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return wfs, nil
}

// DeleteWorkflow soft-deletes a workflow definition. Past executions and
// their files remain readable.
func (s *WorkflowService) DeleteWorkflow(ctx context.Context, companyID, workflowID int) error {
	n, err := s.client.Workflow.Update().
		Where(
			entworkflow.ID(workflowID),
			entworkflow.CompanyID(companyID),
			entworkflow.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workflow %d: %w", workflowID, ErrNotFound)
	}
	return nil
}

// StartExecution reserves workflow quota, creates a pending execution
// row, and hands it to the durable orchestration layer. The returned
// execution is pending; the workflow moves it to running on launch.
func (s *WorkflowService) StartExecution(ctx context.Context, companyID, workflowID int) (*ent.WorkflowExecution, error) {
	wf, err := s.GetWorkflow(ctx, companyID, workflowID)
	if err != nil {
		return nil, err
	}

	if s.quotas != nil {
		check, err := s.quotas.CheckAndReserve(ctx, companyID, nil, config.EventWorkflow, 1, nil)
		if err != nil {
			return nil, err
		}
		if !check.Allowed {
			return nil, fmt.Errorf("workflow quota: %s: %w", check.Message(), ErrInvalidState)
		}
	}

	exec, err := s.client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetCompanyID(companyID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	if s.starter != nil {
		if _, err := s.starter.StartExecution(ctx, exec.ID, wf.ID, companyID); err != nil {
			// The row survives as a pending execution an operator can retry.
			return nil, fmt.Errorf("failed to start execution workflow: %w", err)
		}
	}
	return exec, nil
}

// GetExecution returns an execution with its files, scoped to a company.
func (s *WorkflowService) GetExecution(ctx context.Context, companyID, executionID int) (*ent.WorkflowExecution, error) {
	exec, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.ID(executionID),
			workflowexecution.CompanyID(companyID),
			workflowexecution.DeletedAtIsNil(),
		).
		WithFiles(func(q *ent.ExecutionFileQuery) {
			q.Order(ent.Asc(executionfile.FieldFileName))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("execution %d: %w", executionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query execution: %w", err)
	}
	return exec, nil
}

// ListExecutions returns a workflow's executions, newest first.
func (s *WorkflowService) ListExecutions(ctx context.Context, companyID, workflowID int) ([]*ent.WorkflowExecution, error) {
	if _, err := s.GetWorkflow(ctx, companyID, workflowID); err != nil {
		return nil, err
	}
	execs, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.WorkflowID(workflowID),
			workflowexecution.CompanyID(companyID),
			workflowexecution.DeletedAtIsNil(),
		).
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return execs, nil
}
