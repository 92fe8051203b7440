package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the complete docmatrix.yaml file structure.
type yamlConfig struct {
	Defaults  *Defaults        `yaml:"defaults"`
	Queue     *QueueConfig     `yaml:"queue"`
	Executor  *ExecutorConfig  `yaml:"executor"`
	Workflow  *WorkflowConfig  `yaml:"workflow"`
	Storage   *StorageConfig   `yaml:"storage"`
	Search    *SearchConfig    `yaml:"search"`
	Redis     *RedisConfig     `yaml:"redis"`
	Messaging *MessagingConfig `yaml:"messaging"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read docmatrix.yaml from configDir (missing file → all defaults)
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into typed sub-configs
//  4. Fill unset sections with built-in defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{configDir: configDir}

	path := filepath.Join(configDir, "docmatrix.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Warn("No docmatrix.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		var parsed yamlConfig
		if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.Defaults = parsed.Defaults
		cfg.Queue = parsed.Queue
		cfg.Executor = parsed.Executor
		cfg.Workflow = parsed.Workflow
		cfg.Storage = parsed.Storage
		cfg.Search = parsed.Search
		cfg.Redis = parsed.Redis
		cfg.Messaging = parsed.Messaging
		cfg.Retention = parsed.Retention
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"executor_mode", cfg.Executor.Mode,
		"workers", cfg.Queue.WorkerCount)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Defaults == nil {
		cfg.Defaults = DefaultDefaults()
	}
	if cfg.Queue == nil {
		cfg.Queue = DefaultQueueConfig()
	}
	if cfg.Executor == nil {
		cfg.Executor = DefaultExecutorConfig()
	}
	if cfg.Workflow == nil {
		cfg.Workflow = DefaultWorkflowConfig()
	}
	if cfg.Storage == nil {
		cfg.Storage = DefaultStorageConfig()
	}
	if cfg.Search == nil {
		cfg.Search = DefaultSearchConfig()
	}
	if cfg.Redis == nil {
		cfg.Redis = DefaultRedisConfig()
	}
	if cfg.Messaging == nil {
		cfg.Messaging = DefaultMessagingConfig()
	}
	if cfg.Retention == nil {
		cfg.Retention = DefaultRetentionConfig()
	}
}

func validate(cfg *Config) error {
	if !cfg.Executor.Mode.IsValid() {
		return fmt.Errorf("executor.mode must be docker or kubernetes, got %q", cfg.Executor.Mode)
	}
	if cfg.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Defaults.AgentQACharThreshold <= 0 {
		return fmt.Errorf("defaults.agent_qa_char_threshold must be positive, got %d", cfg.Defaults.AgentQACharThreshold)
	}
	if cfg.Defaults.GroundingMaxRetries < 0 {
		return fmt.Errorf("defaults.grounding_max_retries must not be negative, got %d", cfg.Defaults.GroundingMaxRetries)
	}
	if w := cfg.Search.KeywordWeight + cfg.Search.VectorWeight; w < 0.999 || w > 1.001 {
		return fmt.Errorf("search weights must sum to 1, got %f", w)
	}
	if cfg.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required")
	}
	if cfg.Workflow.TaskQueue == "" {
		return fmt.Errorf("workflow.task_queue is required")
	}
	return nil
}
