// Package executor launches, polls, and cleans up single opaque jobs in
// one of two backends: local Docker containers or Kubernetes Jobs. Both
// backends consume the same JobSpec so workflow code never branches on
// the runtime.
package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// ErrLaunchFailed is wrapped by backends when job creation fails.
var ErrLaunchFailed = errors.New("job launch failed")

// JobSpec is the runtime-independent description of one unit of work.
type JobSpec struct {
	// ContainerName identifies the instance; must be unique per launch.
	ContainerName string
	// TemplateName selects the manifest template (kubernetes mode).
	TemplateName string
	ImageName    string
	ImageTag     string
	// EnvVars are injected into the job's environment.
	EnvVars map[string]string
	// TemplateVars feed manifest rendering (kubernetes mode only).
	TemplateVars map[string]interface{}
	// DockerNetwork overrides the configured network (docker mode only).
	DockerNetwork string
}

// Image returns the fully qualified image reference.
func (s JobSpec) Image() string {
	tag := s.ImageTag
	if tag == "" {
		tag = "latest"
	}
	return fmt.Sprintf("%s:%s", s.ImageName, tag)
}

// ExecutionInfo is the handle returned by a launch.
type ExecutionInfo struct {
	Mode config.ExecutorMode `json:"mode"`
	// JobID is the container id (docker) or namespaced job name (kubernetes).
	JobID   string `json:"job_id"`
	JobName string `json:"job_name"`
}

// JobState is the coarse lifecycle state of a launched job.
type JobState string

const (
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
	StateFailed    JobState = "failed"
)

// JobStatus is the result of a status check.
type JobStatus struct {
	State    JobState
	ExitCode int
	// Reason is set for failed states.
	Reason string
}

// Executor is the job execution backend boundary.
type Executor interface {
	// Launch creates and starts one job instance.
	Launch(ctx context.Context, spec JobSpec) (ExecutionInfo, error)
	// CheckStatus reports the job's current state. A missing job reports
	// failed with reason "not found", never an error.
	CheckStatus(ctx context.Context, info ExecutionInfo) (JobStatus, error)
	// Cleanup removes the job. Idempotent: a missing job is a no-op.
	// Callers invoke this after successful completion or a poll
	// timeout; failed jobs are deliberately left for post-mortem.
	Cleanup(ctx context.Context, info ExecutionInfo) error
}

// New selects the backend from configuration.
func New(cfg *config.ExecutorConfig) (Executor, error) {
	switch cfg.Mode {
	case config.ExecutorDocker:
		return NewDockerExecutor(cfg)
	case config.ExecutorKubernetes:
		return NewKubernetesExecutor(cfg)
	default:
		return nil, fmt.Errorf("unknown executor mode %q", cfg.Mode)
	}
}
