package config

import "time"

// WorkflowConfig configures the durable workflow engine.
type WorkflowConfig struct {
	// HostPort of the Temporal frontend.
	HostPort string `yaml:"host_port"`

	// Namespace for workflow executions.
	Namespace string `yaml:"namespace"`

	// TaskQueue workers poll.
	TaskQueue string `yaml:"task_queue"`

	// AgentQAMaxWait bounds an agent QA job end to end.
	AgentQAMaxWait time.Duration `yaml:"agent_qa_max_wait"`

	// AgentQAPollInterval is the status poll timer for agent QA jobs.
	AgentQAPollInterval time.Duration `yaml:"agent_qa_poll_interval"`

	// ExecutionMaxWait bounds a long-running workflow execution.
	ExecutionMaxWait time.Duration `yaml:"execution_max_wait"`

	// ExecutionPollInterval is the status poll timer for workflow
	// executions.
	ExecutionPollInterval time.Duration `yaml:"execution_poll_interval"`
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		HostPort:              "localhost:7233",
		Namespace:             "default",
		TaskQueue:             "docmatrix-jobs",
		AgentQAMaxWait:        15 * time.Minute,
		AgentQAPollInterval:   5 * time.Second,
		ExecutionMaxWait:      6 * time.Hour,
		ExecutionPollInterval: 30 * time.Second,
	}
}
