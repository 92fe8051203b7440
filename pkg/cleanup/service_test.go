package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func setupService(t *testing.T) (*Service, *ent.Client, *storage.MemoryStore, int) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "business")
	store := storage.NewMemoryStore()
	svc := NewService(config.DefaultRetentionConfig(), client, credentials.NewBroker(client), store)
	return svc, client, store, company.ID
}

func TestRevokeStaleCredentials(t *testing.T) {
	svc, client, _, companyID := setupService(t)
	broker := credentials.NewBroker(client)
	ctx := context.Background()

	oldID, _, err := broker.Create(ctx, "qa-job-1", companyID)
	require.NoError(t, err)
	freshID, _, err := broker.Create(ctx, "qa-job-2", companyID)
	require.NoError(t, err)

	// Age the first credential past the TTL.
	require.NoError(t, client.ServiceAccount.UpdateOneID(oldID).
		SetCreatedAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))

	svc.RunAll(ctx)

	stale, err := client.ServiceAccount.Get(ctx, oldID)
	require.NoError(t, err)
	assert.False(t, stale.IsActive)

	fresh, err := client.ServiceAccount.Get(ctx, freshID)
	require.NoError(t, err)
	assert.True(t, fresh.IsActive)

	active, err := client.ServiceAccount.Query().
		Where(serviceaccount.IsActive(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestExpireOldExecutions(t *testing.T) {
	svc, client, store, companyID := setupService(t)
	ctx := context.Background()

	wf, err := client.Workflow.Create().
		SetCompanyID(companyID).
		SetName("report-builder").
		SetImageName("docmatrix/report-builder").
		Save(ctx)
	require.NoError(t, err)

	mkExecution := func(completedAt time.Time) *ent.WorkflowExecution {
		exec, err := client.WorkflowExecution.Create().
			SetWorkflowID(wf.ID).
			SetCompanyID(companyID).
			SetStatus(workflowexecution.StatusCompleted).
			SetCompletedAt(completedAt).
			Save(ctx)
		require.NoError(t, err)
		key := storage.ExecutionFileKey(companyID, wf.ID, exec.ID, "output", "report.pdf")
		require.NoError(t, store.Put(ctx, key, []byte("data"), "application/pdf"))
		return exec
	}

	old := mkExecution(time.Now().AddDate(0, 0, -120))
	recent := mkExecution(time.Now().AddDate(0, 0, -5))

	svc.RunAll(ctx)

	expired, err := client.WorkflowExecution.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, expired.DeletedAt)
	objects, err := store.List(ctx, storage.ExecutionPrefix(companyID, wf.ID, old.ID))
	require.NoError(t, err)
	assert.Empty(t, objects, "storage prefix removed")

	kept, err := client.WorkflowExecution.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
	objects, err = store.List(ctx, storage.ExecutionPrefix(companyID, wf.ID, recent.ID))
	require.NoError(t, err)
	assert.Len(t, objects, 1)

	// A second pass finds nothing to do.
	svc.RunAll(ctx)
	count, err := client.WorkflowExecution.Query().
		Where(workflowexecution.DeletedAtNotNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFailedExecutionsAreKept(t *testing.T) {
	svc, client, _, companyID := setupService(t)
	ctx := context.Background()

	wf, err := client.Workflow.Create().
		SetCompanyID(companyID).
		SetName("report-builder").
		SetImageName("docmatrix/report-builder").
		Save(ctx)
	require.NoError(t, err)

	failed, err := client.WorkflowExecution.Create().
		SetWorkflowID(wf.ID).
		SetCompanyID(companyID).
		SetStatus(workflowexecution.StatusFailed).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	kept, err := client.WorkflowExecution.Get(ctx, failed.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt, "failed runs stay for post-mortem")
}
