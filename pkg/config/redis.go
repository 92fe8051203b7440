package config

import "time"

// RedisConfig configures the distributed lock backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// LockTTL bounds crash recovery for held locks.
	LockTTL time.Duration `yaml:"lock_ttl"`
}

// DefaultRedisConfig returns the built-in redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:    "localhost:6379",
		LockTTL: 30 * time.Second,
	}
}
