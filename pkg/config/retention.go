package config

import "time"

// RetentionConfig controls the cleanup janitor.
type RetentionConfig struct {
	// ServiceAccountTTL is how long an active service account may outlive
	// its creation before the janitor revokes it. Covers credentials
	// leaked by failed workflows.
	ServiceAccountTTL time.Duration `yaml:"service_account_ttl"`

	// ExecutionRetentionDays is how long completed workflow executions
	// are kept before soft deletion.
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// CleanupInterval is how often the janitor runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ServiceAccountTTL:      24 * time.Hour,
		ExecutionRetentionDays: 90,
		CleanupInterval:        1 * time.Hour,
	}
}
