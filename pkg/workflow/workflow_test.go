package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/executor"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
)

// fakeActivities scripts the activity layer for workflow tests.
type fakeActivities struct {
	statuses []executor.JobStatus
	checks   int

	launched      *qa.AgentQARequest
	extractResult AgentQAResult
	extractErr    error
	cleanedUp     bool
	failedJobID   int
	failedMessage string
}

func (f *fakeActivities) register(env *testsuite.TestWorkflowEnvironment) {
	env.RegisterActivityWithOptions(func(ctx context.Context, req qa.AgentQARequest) (LaunchResult, error) {
		f.launched = &req
		return LaunchResult{
			Execution:        executor.ExecutionInfo{Mode: config.ExecutorDocker, JobID: "c-1", JobName: "agent-qa-1"},
			ServiceAccountID: 42,
		}, nil
	}, activity.RegisterOptions{Name: "LaunchAgentJob"})

	env.RegisterActivityWithOptions(func(ctx context.Context, info executor.ExecutionInfo) (executor.JobStatus, error) {
		idx := f.checks
		if idx >= len(f.statuses) {
			idx = len(f.statuses) - 1
		}
		f.checks++
		return f.statuses[idx], nil
	}, activity.RegisterOptions{Name: "CheckJobStatus"})

	env.RegisterActivityWithOptions(func(ctx context.Context, jobID int) (AgentQAResult, error) {
		if f.extractErr != nil {
			return AgentQAResult{}, f.extractErr
		}
		return f.extractResult, nil
	}, activity.RegisterOptions{Name: "ExtractAgentResult"})

	env.RegisterActivityWithOptions(func(ctx context.Context, req CleanupRequest) error {
		f.cleanedUp = true
		return nil
	}, activity.RegisterOptions{Name: "CleanupAgentJob"})

	env.RegisterActivityWithOptions(func(ctx context.Context, jobID int, message string) error {
		f.failedJobID = jobID
		f.failedMessage = message
		return nil
	}, activity.RegisterOptions{Name: "MarkJobFailed"})
}

func agentInput() AgentQAInput {
	return AgentQAInput{
		Request: qa.AgentQARequest{
			JobID:     1,
			CellID:    2,
			CompanyID: 3,
			Prompt:    "Question: test",
		},
		MaxWait:      15 * time.Minute,
		PollInterval: 5 * time.Second,
	}
}

func TestAgentQAWorkflowCompletes(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	fakes := &fakeActivities{
		statuses: []executor.JobStatus{
			{State: executor.StateRunning},
			{State: executor.StateRunning},
			{State: executor.StateCompleted},
		},
		extractResult: AgentQAResult{AnswerSetID: 9, AnswerFound: true},
	}
	fakes.register(env)

	env.ExecuteWorkflow(AgentQAWorkflow, agentInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result AgentQAResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, 9, result.AnswerSetID)
	assert.True(t, result.AnswerFound)

	assert.Equal(t, 3, fakes.checks, "polled until completion")
	assert.True(t, fakes.cleanedUp, "cleanup runs on success")
	require.NotNil(t, fakes.launched)
	assert.Equal(t, 1, fakes.launched.JobID)
	assert.Zero(t, fakes.failedJobID)
}

func TestAgentQAWorkflowJobFailure(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	fakes := &fakeActivities{
		statuses: []executor.JobStatus{
			{State: executor.StateFailed, Reason: "exit code 2"},
		},
	}
	fakes.register(env)

	env.ExecuteWorkflow(AgentQAWorkflow, agentInput())

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeJobExecutionFailed, appErr.Type())

	assert.Equal(t, 1, fakes.failedJobID, "terminal failure recorded")
	assert.Contains(t, fakes.failedMessage, "exit code 2")
	assert.False(t, fakes.cleanedUp, "failed jobs stay for post-mortem")
}

func TestAgentQAWorkflowTimeout(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	fakes := &fakeActivities{
		statuses: []executor.JobStatus{{State: executor.StateRunning}},
	}
	fakes.register(env)

	in := agentInput()
	in.MaxWait = 30 * time.Second
	env.ExecuteWorkflow(AgentQAWorkflow, in)

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeJobExecutionTimeout, appErr.Type())
	assert.Equal(t, 1, fakes.failedJobID)
	assert.True(t, fakes.cleanedUp, "a timed-out job is torn down, not left running")
}

func TestAgentQAWorkflowExtractFailure(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	fakes := &fakeActivities{
		statuses:   []executor.JobStatus{{State: executor.StateCompleted}},
		extractErr: fmt.Errorf("agent exited without posting an answer (job status processing)"),
	}
	fakes.register(env)

	env.ExecuteWorkflow(AgentQAWorkflow, agentInput())

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeJobExecutionFailed, appErr.Type())
	assert.Equal(t, 1, fakes.failedJobID)
}

func TestWorkflowExecutionWorkflowCompletes(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	var failedExecution int
	env.RegisterActivityWithOptions(func(ctx context.Context, in ExecutionInput) (LaunchResult, error) {
		return LaunchResult{
			Execution:        executor.ExecutionInfo{Mode: config.ExecutorKubernetes, JobID: "jobs/execution-7", JobName: "execution-7"},
			ServiceAccountID: 11,
		}, nil
	}, activity.RegisterOptions{Name: "LaunchExecution"})
	env.RegisterActivityWithOptions(func(ctx context.Context, info executor.ExecutionInfo) (executor.JobStatus, error) {
		return executor.JobStatus{State: executor.StateCompleted}, nil
	}, activity.RegisterOptions{Name: "CheckJobStatus"})
	env.RegisterActivityWithOptions(func(ctx context.Context, executionID int) (ExecutionResult, error) {
		return ExecutionResult{FileCount: 2, ManifestKey: "company/3/workflows/4/executions/7/manifest.json"}, nil
	}, activity.RegisterOptions{Name: "ExtractExecutionResult"})
	env.RegisterActivityWithOptions(func(ctx context.Context, req CleanupRequest) error {
		return nil
	}, activity.RegisterOptions{Name: "CleanupAgentJob"})
	env.RegisterActivityWithOptions(func(ctx context.Context, executionID int, message string) error {
		failedExecution = executionID
		return nil
	}, activity.RegisterOptions{Name: "MarkExecutionFailed"})

	env.ExecuteWorkflow(WorkflowExecutionWorkflow, ExecutionInput{
		ExecutionID:  7,
		WorkflowID:   4,
		CompanyID:    3,
		MaxWait:      time.Hour,
		PollInterval: 30 * time.Second,
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result ExecutionResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, 2, result.FileCount)
	assert.Contains(t, result.ManifestKey, "manifest.json")
	assert.Zero(t, failedExecution)
}
