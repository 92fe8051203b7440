package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
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
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// fakeProcessor scripts the dispatcher boundary.
type fakeProcessor struct {
	mu       sync.Mutex
	calls    []matrix.JobPayload
	outcome  *qa.Outcome
	err      error
	blockFor time.Duration
}

func (f *fakeProcessor) Process(ctx context.Context, job matrix.JobPayload) (*qa.Outcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, job)
	f.mu.Unlock()
	if f.blockFor > 0 {
		select {
		case <-time.After(f.blockFor):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func (f *fakeProcessor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type poolFixture struct {
	pool   *Pool
	bus    *messaging.MemoryBus
	client *ent.Client
	proc   *fakeProcessor
	engine *matrix.Engine
}

func setupPool(t *testing.T, proc *fakeProcessor) *poolFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	bus := messaging.NewMemoryBus(3)
	engine := matrix.NewEngine(client, bus, nil)
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2

	pool := NewPool("pod-a", client, cfg, bus, proc, engine)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	return &poolFixture{pool: pool, bus: bus, client: client, proc: proc, engine: engine}
}

// queueJob creates a cell and a queued job, returning the payload the
// engine would publish.
func queueJob(t *testing.T, f *poolFixture) matrix.JobPayload {
	t.Helper()
	ctx := context.Background()
	company := util.CreateTestCompany(t, f.client, "free")
	m := util.CreateTestMatrix(t, f.client, company.ID)
	cell, _, err := f.engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "question", EntityID: 1}})
	require.NoError(t, err)
	job, err := f.client.QAJob.Create().SetCellID(cell.ID).SetCompanyID(company.ID).Save(ctx)
	require.NoError(t, err)
	return matrix.JobPayload{JobID: job.ID, CellID: cell.ID, CompanyID: company.ID}
}

func publish(t *testing.T, f *poolFixture, payload matrix.JobPayload) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, f.bus.Publish(context.Background(), messaging.QueueQAJobs, data))
}

func TestPoolProcessesLocalJob(t *testing.T) {
	proc := &fakeProcessor{outcome: &qa.Outcome{AnswerSetID: 9}}
	f := setupPool(t, proc)
	payload := queueJob(t, f)

	publish(t, f, payload)

	job, err := f.client.QAJob.Get(context.Background(), payload.JobID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusCompleted, job.Status)
	assert.Equal(t, "pod-a", *job.PodID)
	require.NotNil(t, job.StartedAt)
	require.NotNil(t, job.CompletedAt)
	assert.Equal(t, 1, proc.callCount())
}

func TestPoolSkipsAlreadyClaimedJob(t *testing.T) {
	proc := &fakeProcessor{outcome: &qa.Outcome{AnswerSetID: 9}}
	f := setupPool(t, proc)
	payload := queueJob(t, f)

	publish(t, f, payload)
	publish(t, f, payload)

	assert.Equal(t, 1, proc.callCount(), "duplicate delivery acknowledged without reprocessing")
	assert.Empty(t, f.bus.DeadLetters(messaging.QueueQAJobs))
}

func TestPoolAgentJobStaysProcessing(t *testing.T) {
	proc := &fakeProcessor{outcome: &qa.Outcome{WorkflowID: "agent-qa-1"}}
	f := setupPool(t, proc)
	payload := queueJob(t, f)

	publish(t, f, payload)

	job, err := f.client.QAJob.Get(context.Background(), payload.JobID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusProcessing, job.Status, "agent jobs finish via the callback API")
	assert.Nil(t, job.CompletedAt)

	cell, err := f.client.MatrixCell.Get(context.Background(), payload.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusProcessing, cell.Status)
}

func TestPoolQuotaDenialFailsJob(t *testing.T) {
	check := &quota.QuotaCheck{
		Allowed:      false,
		Metric:       config.EventCellOperation,
		CurrentUsage: 100,
		Limit:        100,
		PeriodEnd:    time.Now().AddDate(0, 1, 0),
	}
	proc := &fakeProcessor{err: &qa.QuotaError{Check: check}}
	f := setupPool(t, proc)
	payload := queueJob(t, f)

	publish(t, f, payload)

	job, err := f.client.QAJob.Get(context.Background(), payload.JobID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "limit reached")

	cell, err := f.client.MatrixCell.Get(context.Background(), payload.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusFailed, cell.Status)

	// Terminal failure is recorded, not retried.
	assert.Equal(t, 1, proc.callCount())
	assert.Empty(t, f.bus.DeadLetters(messaging.QueueQAJobs))
}

func TestPoolProcessorErrorFailsJob(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("llm backend unreachable")}
	f := setupPool(t, proc)
	payload := queueJob(t, f)

	publish(t, f, payload)

	job, err := f.client.QAJob.Get(context.Background(), payload.JobID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "llm backend unreachable")
}

func TestPoolDropsMalformedPayload(t *testing.T) {
	proc := &fakeProcessor{}
	f := setupPool(t, proc)

	require.NoError(t, f.bus.Publish(context.Background(), messaging.QueueQAJobs, []byte("{not json")))

	assert.Zero(t, proc.callCount())
	assert.Empty(t, f.bus.DeadLetters(messaging.QueueQAJobs), "malformed payloads are acknowledged, not parked")
}

func TestPoolHealth(t *testing.T) {
	proc := &fakeProcessor{outcome: &qa.Outcome{AnswerSetID: 1}}
	f := setupPool(t, proc)
	payload := queueJob(t, f)
	publish(t, f, payload)

	// One more job left queued to show up as depth.
	queueJob(t, f)

	health := f.pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 2, health.WorkerSlots)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, 1, health.JobsProcessed)
}
