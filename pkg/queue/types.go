// Package queue consumes QA jobs from the message bus and drives them to
// a terminal state. Workers claim jobs with a conditional status update,
// so replicas sharing a queue never process the same job twice.
package queue

import (
	"context"
	"time"

	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
)

// JobProcessor runs one claimed QA job. Implemented by qa.Dispatcher.
type JobProcessor interface {
	Process(ctx context.Context, job matrix.JobPayload) (*qa.Outcome, error)
}

// PoolHealth contains health information for the whole pool.
type PoolHealth struct {
	IsHealthy        bool      `json:"is_healthy"`
	DBReachable      bool      `json:"db_reachable"`
	DBError          string    `json:"db_error,omitempty"`
	PodID            string    `json:"pod_id"`
	WorkerSlots      int       `json:"worker_slots"`
	BusySlots        int       `json:"busy_slots"`
	QueueDepth       int       `json:"queue_depth"`
	JobsProcessed    int       `json:"jobs_processed"`
	LastOrphanScan   time.Time `json:"last_orphan_scan"`
	OrphansRecovered int       `json:"orphans_recovered"`
}
