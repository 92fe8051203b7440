package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/executor"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// stubExecutor records launches and scripts status checks.
type stubExecutor struct {
	launched  []executor.JobSpec
	status    executor.JobStatus
	launchErr error
	cleaned   []string
}

func (s *stubExecutor) Launch(ctx context.Context, spec executor.JobSpec) (executor.ExecutionInfo, error) {
	if s.launchErr != nil {
		return executor.ExecutionInfo{}, s.launchErr
	}
	s.launched = append(s.launched, spec)
	return executor.ExecutionInfo{Mode: config.ExecutorDocker, JobID: "c-" + spec.ContainerName, JobName: spec.ContainerName}, nil
}

func (s *stubExecutor) CheckStatus(ctx context.Context, info executor.ExecutionInfo) (executor.JobStatus, error) {
	return s.status, nil
}

func (s *stubExecutor) Cleanup(ctx context.Context, info executor.ExecutionInfo) error {
	s.cleaned = append(s.cleaned, info.JobID)
	return nil
}

func setupActivities(t *testing.T) (*Activities, *ent.Client, *stubExecutor, int) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	exec := &stubExecutor{}
	a := &Activities{
		Client:   client,
		Executor: exec,
		Broker:   credentials.NewBroker(client),
		Store:    storage.NewMemoryStore(),
		Engine:   matrix.NewEngine(client, messaging.NewMemoryBus(3), nil),
		ExecCfg:  config.DefaultExecutorConfig(),
	}
	return a, client, exec, company.ID
}

func TestLaunchAgentJob(t *testing.T) {
	a, client, exec, companyID := setupActivities(t)
	ctx := context.Background()

	req := qa.AgentQARequest{JobID: 5, CellID: 6, CompanyID: companyID, Prompt: "Question: test"}
	result, err := a.LaunchAgentJob(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "c-agent-qa-5", result.Execution.JobID)
	require.NotZero(t, result.ServiceAccountID)

	// The prompt was staged and its key handed to the job.
	require.Len(t, exec.launched, 1)
	spec := exec.launched[0]
	promptKey := storage.QAJobPromptKey(companyID, 5)
	assert.Equal(t, promptKey, spec.EnvVars["PROMPT_KEY"])
	staged, err := a.Store.Get(ctx, promptKey)
	require.NoError(t, err)
	assert.Equal(t, "Question: test", string(staged))

	// The env carries a live key; the database only its hash.
	plainKey := spec.EnvVars["API_KEY"]
	user, err := a.Broker.Authenticate(ctx, plainKey)
	require.NoError(t, err)
	assert.Equal(t, companyID, user.CompanyID)
	n, err := client.ServiceAccount.Query().
		Where(serviceaccount.APIKeyHash(plainKey)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "plaintext key never persisted")
}

func TestLaunchAgentJobRevokesKeyOnFailure(t *testing.T) {
	a, client, exec, companyID := setupActivities(t)
	exec.launchErr = fmt.Errorf("image pull failed: %w", executor.ErrLaunchFailed)
	ctx := context.Background()

	_, err := a.LaunchAgentJob(ctx, qa.AgentQARequest{JobID: 5, CellID: 6, CompanyID: companyID, Prompt: "p"})
	require.Error(t, err)

	active, err := client.ServiceAccount.Query().
		Where(serviceaccount.CompanyID(companyID), serviceaccount.IsActive(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, active, "credential revoked when the job never started")
}

func TestExtractAgentResult(t *testing.T) {
	a, client, _, companyID := setupActivities(t)
	ctx := context.Background()

	m := util.CreateTestMatrix(t, client, companyID)
	cell, _, err := a.Engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "document", EntityID: 1}})
	require.NoError(t, err)
	job, err := client.QAJob.Create().SetCellID(cell.ID).SetCompanyID(companyID).Save(ctx)
	require.NoError(t, err)

	// Before the agent posts back, extraction fails.
	_, err = a.ExtractAgentResult(ctx, job.ID)
	require.ErrorContains(t, err, "without posting an answer")

	// Simulate the callback API's work.
	set, err := client.AnswerSet.Create().SetCellID(cell.ID).SetAnswerFound(true).Save(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Engine.AttachAnswerSet(ctx, cell.ID, set.ID))
	require.NoError(t, client.QAJob.UpdateOneID(job.ID).SetStatus(qajob.StatusCompleted).Exec(ctx))

	result, err := a.ExtractAgentResult(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, set.ID, result.AnswerSetID)
	assert.True(t, result.AnswerFound)
}

func TestMarkJobFailed(t *testing.T) {
	a, client, _, companyID := setupActivities(t)
	ctx := context.Background()

	m := util.CreateTestMatrix(t, client, companyID)
	cell, _, err := a.Engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "document", EntityID: 1}})
	require.NoError(t, err)
	job, err := client.QAJob.Create().SetCellID(cell.ID).SetCompanyID(companyID).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, a.MarkJobFailed(ctx, job.ID, "job failed: exit code 2"))

	reloaded, err := client.QAJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "exit code 2")

	failedCell, err := client.MatrixCell.Get(ctx, cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusFailed, failedCell.Status)
}

func TestExtractExecutionResult(t *testing.T) {
	a, client, _, companyID := setupActivities(t)
	ctx := context.Background()

	wf, err := client.Workflow.Create().
		SetCompanyID(companyID).
		SetName("report-builder").
		SetImageName("docmatrix/report-builder").
		Save(ctx)
	require.NoError(t, err)

	in := ExecutionInput{WorkflowID: wf.ID, CompanyID: companyID}
	exec, err := client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetCompanyID(companyID).
		Save(ctx)
	require.NoError(t, err)
	in.ExecutionID = exec.ID

	// Launch moves the row to running and starts the job.
	launch, err := a.LaunchExecution(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, launch.ServiceAccountID)
	running, err := client.WorkflowExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusRunning, running.Status)

	// The job uploads two output files.
	for _, name := range []string{"report.pdf", "summary.csv"} {
		key := storage.ExecutionFileKey(companyID, wf.ID, exec.ID, "output", name)
		require.NoError(t, a.Store.Put(ctx, key, []byte("data-"+name), "application/octet-stream"))
	}

	result, err := a.ExtractExecutionResult(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FileCount)

	// Manifest written, rows reconciled, row completed with metadata.
	manifestData, err := a.Store.Get(ctx, result.ManifestKey)
	require.NoError(t, err)
	assert.Contains(t, string(manifestData), "report.pdf")

	files, err := client.ExecutionFile.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, files)

	done, err := client.WorkflowExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, done.Status)
	require.NotNil(t, done.ManifestKey)
	require.NotNil(t, done.DurationMs)
	assert.GreaterOrEqual(t, *done.DurationMs, int64(0))
}

func TestMarkExecutionFailed(t *testing.T) {
	a, client, _, companyID := setupActivities(t)
	ctx := context.Background()

	wf, err := client.Workflow.Create().
		SetCompanyID(companyID).
		SetName("report-builder").
		SetImageName("docmatrix/report-builder").
		Save(ctx)
	require.NoError(t, err)
	exec, err := client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetCompanyID(companyID).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, a.MarkExecutionFailed(ctx, exec.ID, "job still running after 6h0m0s"))

	failed, err := client.WorkflowExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "still running")
}
