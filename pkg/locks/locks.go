// Package locks provides distributed locks backed by Redis. Locks are
// token-verified: release and extend only succeed for the holder that
// acquired the lock, and every lock carries a TTL so a crashed holder
// cannot wedge the system.
package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotHeld is returned when releasing or extending a lock with a token
// that does not match the current holder.
var ErrNotHeld = errors.New("lock not held by this token")

// releaseScript deletes the key only if the stored token matches.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript refreshes the TTL only if the stored token matches.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Manager acquires and releases named locks.
type Manager struct {
	client     redis.UniversalClient
	defaultTTL time.Duration
}

// NewManager wraps an existing Redis client.
func NewManager(client redis.UniversalClient, defaultTTL time.Duration) *Manager {
	return &Manager{client: client, defaultTTL: defaultTTL}
}

// Acquire attempts to take the named lock. On success it returns the
// holder token needed for Release and Extend; acquired is false when the
// lock is held by someone else.
func (m *Manager) Acquire(ctx context.Context, name string) (token string, acquired bool, err error) {
	return m.AcquireTTL(ctx, name, m.defaultTTL)
}

// AcquireTTL is Acquire with an explicit TTL.
func (m *Manager) AcquireTTL(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := m.client.SetNX(ctx, lockKey(name), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock %q: %w", name, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lock if token still holds it. Returns ErrNotHeld when
// the lock expired or was taken by another holder.
func (m *Manager) Release(ctx context.Context, name, token string) error {
	n, err := releaseScript.Run(ctx, m.client, []string{lockKey(name)}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}

// Extend refreshes the lock's TTL if token still holds it.
func (m *Manager) Extend(ctx context.Context, name, token string, ttl time.Duration) error {
	n, err := extendScript.Run(ctx, m.client, []string{lockKey(name)}, token, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to extend lock %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}

// IsLocked reports whether the named lock is currently held.
func (m *Manager) IsLocked(ctx context.Context, name string) (bool, error) {
	n, err := m.client.Exists(ctx, lockKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check lock %q: %w", name, err)
	}
	return n > 0, nil
}

func lockKey(name string) string {
	return "lock:" + name
}
