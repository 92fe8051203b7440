package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/executor"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// Activities are the workflow's adapters to the executor, credential
// broker, object store, and database. Registered on the worker by
// method name.
type Activities struct {
	Client   *ent.Client
	Executor executor.Executor
	Broker   *credentials.Broker
	Store    storage.ObjectStore
	Engine   *matrix.Engine
	ExecCfg  *config.ExecutorConfig
}

// LaunchAgentJob mints an ephemeral credential, stages the prompt, and
// starts the agent container. The plain key only ever exists in the
// job's environment.
func (a *Activities) LaunchAgentJob(ctx context.Context, req qa.AgentQARequest) (LaunchResult, error) {
	promptKey := storage.QAJobPromptKey(req.CompanyID, req.JobID)
	if err := a.Store.Put(ctx, promptKey, []byte(req.Prompt), "text/markdown"); err != nil {
		return LaunchResult{}, fmt.Errorf("failed to stage prompt: %w", err)
	}

	saID, plainKey, err := a.Broker.Create(ctx, credentials.QAJobScope(req.JobID), req.CompanyID)
	if err != nil {
		return LaunchResult{}, err
	}

	info, err := a.Executor.Launch(ctx, executor.JobSpec{
		ContainerName: fmt.Sprintf("agent-qa-%d", req.JobID),
		TemplateName:  "agent-qa",
		ImageName:     a.ExecCfg.AgentImageName,
		ImageTag:      a.ExecCfg.AgentImageTag,
		EnvVars: map[string]string{
			"API_ENDPOINT":   a.ExecCfg.APIEndpoint,
			"API_KEY":        plainKey,
			"COMPANY_ID":     strconv.Itoa(req.CompanyID),
			"QA_JOB_ID":      strconv.Itoa(req.JobID),
			"MATRIX_CELL_ID": strconv.Itoa(req.CellID),
			"PROMPT_KEY":     promptKey,
		},
	})
	if err != nil {
		// A job that never started must not keep a live credential.
		if delErr := a.Broker.Delete(ctx, saID, req.CompanyID); delErr != nil {
			slog.Warn("Failed to revoke credential after launch failure",
				"service_account_id", saID, "error", delErr)
		}
		return LaunchResult{}, err
	}
	return LaunchResult{Execution: info, ServiceAccountID: saID}, nil
}

// CheckJobStatus reports the launched job's state. Shared by both
// workflows.
func (a *Activities) CheckJobStatus(ctx context.Context, info executor.ExecutionInfo) (executor.JobStatus, error) {
	return a.Executor.CheckStatus(ctx, info)
}

// ExtractAgentResult verifies the agent posted its answer set back
// before exiting. The callback API attaches the set and completes the
// job; a clean container exit without that upload is a failure.
func (a *Activities) ExtractAgentResult(ctx context.Context, jobID int) (AgentQAResult, error) {
	job, err := a.Client.QAJob.Get(ctx, jobID)
	if err != nil {
		return AgentQAResult{}, fmt.Errorf("failed to load job %d: %w", jobID, err)
	}
	if job.Status != qajob.StatusCompleted {
		return AgentQAResult{}, fmt.Errorf("agent exited without posting an answer (job status %s)", job.Status)
	}

	cell, err := a.Client.MatrixCell.Get(ctx, job.CellID)
	if err != nil {
		return AgentQAResult{}, fmt.Errorf("failed to load cell %d: %w", job.CellID, err)
	}
	if cell.CurrentAnswerSetID == nil {
		return AgentQAResult{}, fmt.Errorf("job %d completed but cell %d has no answer set", jobID, cell.ID)
	}

	set, err := a.Client.AnswerSet.Get(ctx, *cell.CurrentAnswerSetID)
	if err != nil {
		return AgentQAResult{}, fmt.Errorf("failed to load answer set: %w", err)
	}
	return AgentQAResult{AnswerSetID: set.ID, AnswerFound: set.AnswerFound}, nil
}

// CleanupAgentJob revokes the job's credential and removes the finished
// container. Best effort on both halves.
func (a *Activities) CleanupAgentJob(ctx context.Context, req CleanupRequest) error {
	var errs []error
	if err := a.Broker.Delete(ctx, req.Execution.ServiceAccountID, req.CompanyID); err != nil &&
		!errors.Is(err, credentials.ErrNotFound) {
		errs = append(errs, fmt.Errorf("revoke credential: %w", err))
	}
	if err := a.Executor.Cleanup(ctx, req.Execution.Execution); err != nil {
		errs = append(errs, fmt.Errorf("remove job: %w", err))
	}
	return errors.Join(errs...)
}

// MarkJobFailed records a terminal failure on the QA job and its cell.
func (a *Activities) MarkJobFailed(ctx context.Context, jobID int, message string) error {
	job, err := a.Client.QAJob.UpdateOneID(jobID).
		SetStatus(qajob.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job %d failed: %w", jobID, err)
	}

	if err := a.Engine.MarkFailed(ctx, job.CellID); err != nil &&
		!errors.Is(err, matrix.ErrInvalidTransition) {
		return err
	}
	return nil
}

// LaunchExecution starts one user-defined workflow job and moves the
// execution row to running.
func (a *Activities) LaunchExecution(ctx context.Context, in ExecutionInput) (LaunchResult, error) {
	wf, err := a.Client.Workflow.Get(ctx, in.WorkflowID)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("failed to load workflow %d: %w", in.WorkflowID, err)
	}

	saID, plainKey, err := a.Broker.Create(ctx, credentials.ExecutionScope(in.ExecutionID), in.CompanyID)
	if err != nil {
		return LaunchResult{}, err
	}

	err = a.Client.WorkflowExecution.UpdateOneID(in.ExecutionID).
		SetStatus(workflowexecution.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("failed to mark execution running: %w", err)
	}

	info, err := a.Executor.Launch(ctx, executor.JobSpec{
		ContainerName: fmt.Sprintf("execution-%d", in.ExecutionID),
		TemplateName:  "workflow-execution",
		ImageName:     wf.ImageName,
		ImageTag:      wf.ImageTag,
		TemplateVars:  wf.JobConfig,
		EnvVars: map[string]string{
			"API_ENDPOINT": a.ExecCfg.APIEndpoint,
			"API_KEY":      plainKey,
			"COMPANY_ID":   strconv.Itoa(in.CompanyID),
			"WORKFLOW_ID":  strconv.Itoa(in.WorkflowID),
			"EXECUTION_ID": strconv.Itoa(in.ExecutionID),
		},
	})
	if err != nil {
		if delErr := a.Broker.Delete(ctx, saID, in.CompanyID); delErr != nil {
			slog.Warn("Failed to revoke credential after launch failure",
				"service_account_id", saID, "error", delErr)
		}
		return LaunchResult{}, err
	}
	return LaunchResult{Execution: info, ServiceAccountID: saID}, nil
}

// executionManifest is the output manifest written by the extract step.
type executionManifest struct {
	ExecutionID int                  `json:"execution_id"`
	CreatedAt   time.Time            `json:"created_at"`
	TotalFiles  int                  `json:"total_files"`
	Files       []executionFileEntry `json:"files"`
}

type executionFileEntry struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
}

// ExtractExecutionResult lists the output files the job uploaded,
// reconciles the file rows, writes the manifest last, and records
// success metadata on the execution row.
func (a *Activities) ExtractExecutionResult(ctx context.Context, executionID int) (ExecutionResult, error) {
	exec, err := a.Client.WorkflowExecution.Get(ctx, executionID)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to load execution %d: %w", executionID, err)
	}

	prefix := storage.ExecutionPrefix(exec.CompanyID, exec.WorkflowID, executionID) + "output/"
	objects, err := a.Store.List(ctx, prefix)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to list output files: %w", err)
	}

	manifest := executionManifest{
		ExecutionID: executionID,
		CreatedAt:   time.Now().UTC(),
		TotalFiles:  len(objects),
	}
	for _, obj := range objects {
		name := path.Base(obj.Key)
		manifest.Files = append(manifest.Files, executionFileEntry{FileName: name, SizeBytes: obj.Size})

		// The upload API usually created the row already; reconcile any
		// file the job wrote directly.
		exists, err := a.Client.ExecutionFile.Query().
			Where(executionfile.ExecutionID(executionID), executionfile.FileName(name)).
			Exist(ctx)
		if err != nil {
			return ExecutionResult{}, fmt.Errorf("failed to check file row %q: %w", name, err)
		}
		if !exists {
			err = a.Client.ExecutionFile.Create().
				SetExecutionID(executionID).
				SetFileName(name).
				SetStorageKey(obj.Key).
				SetFileKind(executionfile.FileKindOutput).
				SetSizeBytes(obj.Size).
				Exec(ctx)
			if err != nil {
				return ExecutionResult{}, fmt.Errorf("failed to record file %q: %w", name, err)
			}
		}
	}

	// Manifest last: its presence marks the output set complete.
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	manifestKey := storage.ExecutionManifestKey(exec.CompanyID, exec.WorkflowID, executionID)
	if err := a.Store.Put(ctx, manifestKey, manifestJSON, "application/json"); err != nil {
		return ExecutionResult{}, err
	}

	update := a.Client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusCompleted).
		SetManifestKey(manifestKey).
		SetCompletedAt(time.Now())
	if exec.StartedAt != nil {
		update = update.SetDurationMs(time.Since(*exec.StartedAt).Milliseconds())
	}
	if err := update.Exec(ctx); err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to complete execution: %w", err)
	}

	return ExecutionResult{FileCount: len(objects), ManifestKey: manifestKey}, nil
}

// MarkExecutionFailed records a terminal failure on the execution row.
func (a *Activities) MarkExecutionFailed(ctx context.Context, executionID int, message string) error {
	err := a.Client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark execution %d failed: %w", executionID, err)
	}
	return nil
}
