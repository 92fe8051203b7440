package executor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	dockerclient "github.com/docker/docker/client"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

const (
	labelManagedBy = "docmatrix.managed-by"
	labelJobName   = "docmatrix.job-name"
	managedByValue = "docmatrix"
)

// DockerExecutor runs jobs as detached local containers.
type DockerExecutor struct {
	client  *dockerclient.Client
	network string
}

// NewDockerExecutor creates the docker backend. Uses DOCKER_HOST or the
// default socket path.
func NewDockerExecutor(cfg *config.ExecutorConfig) (*DockerExecutor, error) {
	cli, err := dockerclient.NewClientWithOpts(
		dockerclient.FromEnv,
		dockerclient.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &DockerExecutor{client: cli, network: cfg.DockerNetwork}, nil
}

func (e *DockerExecutor) Launch(ctx context.Context, spec JobSpec) (ExecutionInfo, error) {
	if spec.ImageName == "" {
		return ExecutionInfo{}, fmt.Errorf("%w: image name is required", ErrLaunchFailed)
	}
	if spec.ContainerName == "" {
		return ExecutionInfo{}, fmt.Errorf("%w: container name is required", ErrLaunchFailed)
	}

	env := make([]string, 0, len(spec.EnvVars))
	for k, v := range spec.EnvVars {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	networkName := spec.DockerNetwork
	if networkName == "" {
		networkName = e.network
	}

	containerCfg := &container.Config{
		Image: spec.Image(),
		Env:   env,
		Labels: map[string]string{
			labelManagedBy: managedByValue,
			labelJobName:   spec.ContainerName,
		},
	}
	networkCfg := &network.NetworkingConfig{
		EndpointsConfig: map[string]*network.EndpointSettings{
			networkName: {},
		},
	}

	resp, err := e.client.ContainerCreate(ctx, containerCfg, &container.HostConfig{}, networkCfg, nil, spec.ContainerName)
	if err != nil {
		return ExecutionInfo{}, fmt.Errorf("%w: create container %q: %v", ErrLaunchFailed, spec.ContainerName, err)
	}

	if err := e.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		// The created container would otherwise leak.
		_ = e.client.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return ExecutionInfo{}, fmt.Errorf("%w: start container %q: %v", ErrLaunchFailed, spec.ContainerName, err)
	}

	slog.Info("Launched container job",
		"container_name", spec.ContainerName,
		"container_id", resp.ID,
		"image", spec.Image())

	return ExecutionInfo{
		Mode:    config.ExecutorDocker,
		JobID:   resp.ID,
		JobName: spec.ContainerName,
	}, nil
}

func (e *DockerExecutor) CheckStatus(ctx context.Context, info ExecutionInfo) (JobStatus, error) {
	inspect, err := e.client.ContainerInspect(ctx, info.JobID)
	if err != nil {
		if dockerclient.IsErrNotFound(err) {
			return JobStatus{State: StateFailed, Reason: "not found"}, nil
		}
		return JobStatus{}, fmt.Errorf("failed to inspect container %q: %w", info.JobID, err)
	}

	switch inspect.State.Status {
	case "running", "created", "restarting":
		return JobStatus{State: StateRunning}, nil
	case "exited", "dead":
		if inspect.State.ExitCode == 0 {
			return JobStatus{State: StateCompleted}, nil
		}
		return JobStatus{
			State:    StateFailed,
			ExitCode: inspect.State.ExitCode,
			Reason:   fmt.Sprintf("exit code %d: %s", inspect.State.ExitCode, inspect.State.Error),
		}, nil
	default:
		return JobStatus{State: StateFailed, Reason: "unexpected state " + inspect.State.Status}, nil
	}
}

func (e *DockerExecutor) Cleanup(ctx context.Context, info ExecutionInfo) error {
	err := e.client.ContainerRemove(ctx, info.JobID, container.RemoveOptions{Force: true})
	if err != nil && !dockerclient.IsErrNotFound(err) {
		return fmt.Errorf("failed to remove container %q: %w", info.JobID, err)
	}
	return nil
}
