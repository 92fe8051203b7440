package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
)

// Pool subscribes to the QA job queue and processes deliveries with a
// bounded number of concurrent worker slots.
type Pool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	bus       messaging.Bus
	processor JobProcessor
	engine    *matrix.Engine

	slots    chan struct{}
	sub      messaging.Subscription
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.Mutex
	started       bool
	busy          int
	jobsProcessed int

	orphans orphanState
}

// NewPool creates a worker pool. The processor is invoked once per
// claimed job.
func NewPool(podID string, client *ent.Client, cfg *config.QueueConfig, bus messaging.Bus, processor JobProcessor, engine *matrix.Engine) *Pool {
	return &Pool{
		podID:     podID,
		client:    client,
		config:    cfg,
		bus:       bus,
		processor: processor,
		engine:    engine,
		slots:     make(chan struct{}, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start recovers jobs this pod abandoned in a previous run, subscribes to
// the QA job queue, and launches the orphan scan. Safe to call once.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true
	p.mu.Unlock()

	if err := RecoverStartupOrphans(ctx, p.client, p.engine, p.podID); err != nil {
		return fmt.Errorf("startup orphan recovery: %w", err)
	}

	sub, err := p.bus.Subscribe(messaging.QueueQAJobs, p.handleDelivery)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", messaging.QueueQAJobs, err)
	}
	p.sub = sub

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started",
		"pod_id", p.podID, "worker_count", p.config.WorkerCount)
	return nil
}

// Stop detaches from the queue and waits for in-flight jobs to finish,
// up to the graceful shutdown timeout.
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully", "pod_id", p.podID)

	if p.sub != nil {
		if err := p.sub.Unsubscribe(); err != nil {
			slog.Warn("Failed to unsubscribe from QA job queue", "error", err)
		}
	}
	p.stopOnce.Do(func() { close(p.stopCh) })

	deadline := time.After(p.config.GracefulShutdownTimeout)
	for i := 0; i < p.config.WorkerCount; i++ {
		select {
		case p.slots <- struct{}{}:
		case <-deadline:
			slog.Warn("Graceful shutdown timeout reached with jobs still in flight",
				"pod_id", p.podID)
			p.wg.Wait()
			return
		}
	}
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully", "pod_id", p.podID)
}

// Health reports pool and queue state. A DB failure makes the pool
// unhealthy since no job can be claimed without it.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.QAJob.Query().
		Where(qajob.StatusEQ(qajob.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	p.mu.Lock()
	busy := p.busy
	processed := p.jobsProcessed
	p.mu.Unlock()

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastScan
	recovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:        errQ == nil && p.sub != nil,
		DBReachable:      errQ == nil,
		DBError:          dbError,
		PodID:            p.podID,
		WorkerSlots:      p.config.WorkerCount,
		BusySlots:        busy,
		QueueDepth:       queueDepth,
		JobsProcessed:    processed,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

func (p *Pool) acquireSlot(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
	case <-p.stopCh:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
	p.mu.Lock()
	p.busy++
	p.mu.Unlock()
	return nil
}

func (p *Pool) releaseSlot() {
	p.mu.Lock()
	p.busy--
	p.mu.Unlock()
	<-p.slots
}
