package config

// Config is the umbrella configuration object returned by Initialize()
// and passed to subsystems at startup.
type Config struct {
	configDir string

	// System-wide defaults (QA routing, grounding, chunking)
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Executor backend selection and settings
	Executor *ExecutorConfig

	// Durable workflow engine settings
	Workflow *WorkflowConfig

	// Object storage settings
	Storage *StorageConfig

	// Hybrid search settings
	Search *SearchConfig

	// Redis lock settings
	Redis *RedisConfig

	// NATS message queue settings
	Messaging *MessagingConfig

	// Data retention settings
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
