package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// processingJob creates a job already claimed by the given pod.
func processingJob(t *testing.T, client *ent.Client, engine *matrix.Engine, podID string, startedAt time.Time) *ent.QAJob {
	t.Helper()
	ctx := context.Background()
	company := util.CreateTestCompany(t, client, "free")
	m := util.CreateTestMatrix(t, client, company.ID)
	cell, _, err := engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "question", EntityID: 1}})
	require.NoError(t, err)
	require.NoError(t, engine.MarkProcessing(ctx, cell.ID))

	job, err := client.QAJob.Create().
		SetCellID(cell.ID).
		SetCompanyID(company.ID).
		SetStatus(qajob.StatusProcessing).
		SetPodID(podID).
		SetStartedAt(startedAt).
		Save(ctx)
	require.NoError(t, err)
	return job
}

func TestRecoverStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	mine := processingJob(t, client, engine, "pod-a", time.Now())
	other := processingJob(t, client, engine, "pod-b", time.Now())

	require.NoError(t, RecoverStartupOrphans(ctx, client, engine, "pod-a"))

	failed, err := client.QAJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "pod pod-a restarted")

	cell, err := client.MatrixCell.Get(ctx, failed.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusFailed, cell.Status)

	// Jobs owned by live pods are untouched.
	untouched, err := client.QAJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusProcessing, untouched.Status)
}

func TestRecoverOrphansByAge(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	bus := messaging.NewMemoryBus(3)
	engine := matrix.NewEngine(client, bus, nil)
	cfg := config.DefaultQueueConfig()
	pool := NewPool("pod-a", client, cfg, bus, &fakeProcessor{}, engine)
	ctx := context.Background()

	stale := processingJob(t, client, engine, "pod-gone", time.Now().Add(-time.Hour))
	fresh := processingJob(t, client, engine, "pod-a", time.Now().Add(-time.Minute))

	require.NoError(t, pool.recoverOrphans(ctx))

	failed, err := client.QAJob.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "orphaned")

	running, err := client.QAJob.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusProcessing, running.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}
