package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// recordingStarter captures execution starts without a Temporal server.
type recordingStarter struct {
	started []int
	err     error
}

func (r *recordingStarter) StartExecution(ctx context.Context, executionID, workflowID, companyID int) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.started = append(r.started, executionID)
	return "execution-1", nil
}

func TestWorkflowCRUD(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "business")
	svc := NewWorkflowService(client, nil, nil)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, company.ID, CreateWorkflowInput{
		Name:      "report-builder",
		ImageName: "docmatrix/report-builder",
		ImageTag:  "v3",
		JobConfig: map[string]interface{}{"format": "pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "v3", wf.ImageTag)

	listed, err := svc.ListWorkflows(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, svc.DeleteWorkflow(ctx, company.ID, wf.ID))
	_, err = svc.GetWorkflow(ctx, company.ID, wf.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateWorkflowValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "business")
	svc := NewWorkflowService(client, nil, nil)

	_, err := svc.CreateWorkflow(context.Background(), company.ID, CreateWorkflowInput{Name: "x"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestStartExecutionReservesQuotaAndStarts(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "business")
	starter := &recordingStarter{}
	svc := NewWorkflowService(client, quota.NewService(client), starter)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, company.ID, CreateWorkflowInput{
		Name: "report-builder", ImageName: "docmatrix/report-builder",
	})
	require.NoError(t, err)

	exec, err := svc.StartExecution(ctx, company.ID, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPending, exec.Status)
	assert.Equal(t, []int{exec.ID}, starter.started)

	// The reservation landed in the ledger.
	usage, err := quota.NewService(client).CurrentUsage(ctx, company.ID, "workflow")
	require.NoError(t, err)
	assert.Equal(t, 1, usage.CurrentUsage)
}

func TestStartExecutionDeniedOnFreeTier(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "free")
	starter := &recordingStarter{}
	svc := NewWorkflowService(client, quota.NewService(client), starter)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, company.ID, CreateWorkflowInput{
		Name: "report-builder", ImageName: "docmatrix/report-builder",
	})
	require.NoError(t, err)

	// The free tier allows two workflow runs per period.
	for i := 0; i < 2; i++ {
		_, err = svc.StartExecution(ctx, company.ID, wf.ID)
		require.NoError(t, err)
	}

	_, err = svc.StartExecution(ctx, company.ID, wf.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Contains(t, err.Error(), "limit reached")
	assert.Len(t, starter.started, 2, "denied executions never launch")
}

func TestGetExecutionWithFiles(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "business")
	svc := NewWorkflowService(client, nil, &recordingStarter{})
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, company.ID, CreateWorkflowInput{
		Name: "report-builder", ImageName: "docmatrix/report-builder",
	})
	require.NoError(t, err)
	exec, err := svc.StartExecution(ctx, company.ID, wf.ID)
	require.NoError(t, err)

	for _, name := range []string{"b.csv", "a.pdf"} {
		_, err := client.ExecutionFile.Create().
			SetExecutionID(exec.ID).
			SetFileName(name).
			SetStorageKey(storage.ExecutionFileKey(company.ID, wf.ID, exec.ID, "output", name)).
			Save(ctx)
		require.NoError(t, err)
	}

	loaded, err := svc.GetExecution(ctx, company.ID, exec.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Files, 2)
	assert.Equal(t, "a.pdf", loaded.Edges.Files[0].FileName, "files ordered by name")

	execs, err := svc.ListExecutions(ctx, company.ID, wf.ID)
	require.NoError(t, err)
	assert.Len(t, execs, 1)
}
