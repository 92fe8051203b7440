package workflow

import (
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// NewClient dials the Temporal frontend.
func NewClient(cfg *config.WorkflowConfig) (client.Client, error) {
	return client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
	})
}

// Register registers both workflows and every activity on the worker.
func Register(w worker.Worker, activities *Activities) {
	w.RegisterWorkflowWithOptions(AgentQAWorkflow, workflow.RegisterOptions{Name: AgentQAWorkflowName})
	w.RegisterWorkflowWithOptions(WorkflowExecutionWorkflow, workflow.RegisterOptions{Name: WorkflowExecutionWorkflowName})
	w.RegisterActivity(activities)
}

// RunWorker registers everything on a new worker for the configured task
// queue and blocks until interrupted.
func RunWorker(c client.Client, cfg *config.WorkflowConfig, activities *Activities) error {
	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	Register(w, activities)
	return w.Run(worker.InterruptCh())
}
