package config

import "time"

// QueueConfig contains QA-job worker pool configuration. These values
// control how queued jobs are consumed, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// Prefetch bounds the number of unacknowledged messages a consumer
	// holds at once.
	Prefetch int `yaml:"prefetch"`

	// JobTimeout is the maximum time one QA job can be processed.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job may sit in processing without
	// completing before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		Prefetch:                10,
		JobTimeout:              20 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         30 * time.Minute,
	}
}
