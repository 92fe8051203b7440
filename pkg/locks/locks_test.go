package locks

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManager(client, 30*time.Second), mr
}

func TestAcquireRelease(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	token, acquired, err := m.Acquire(ctx, "cell:42")
	require.NoError(t, err)
	require.True(t, acquired)
	require.NotEmpty(t, token)

	locked, err := m.IsLocked(ctx, "cell:42")
	require.NoError(t, err)
	assert.True(t, locked)

	require.NoError(t, m.Release(ctx, "cell:42", token))

	locked, err = m.IsLocked(ctx, "cell:42")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestAcquireContended(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, acquired, err := m.Acquire(ctx, "cell:42")
	require.NoError(t, err)
	require.True(t, acquired)

	_, acquired, err = m.Acquire(ctx, "cell:42")
	require.NoError(t, err)
	assert.False(t, acquired, "second acquire must fail while held")
}

func TestReleaseWrongToken(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	token, acquired, err := m.Acquire(ctx, "cell:42")
	require.NoError(t, err)
	require.True(t, acquired)

	err = m.Release(ctx, "cell:42", "not-the-token")
	assert.ErrorIs(t, err, ErrNotHeld)

	// The real holder can still release.
	require.NoError(t, m.Release(ctx, "cell:42", token))
}

func TestLockExpiry(t *testing.T) {
	ctx := context.Background()
	m, mr := newTestManager(t)

	token, acquired, err := m.AcquireTTL(ctx, "cell:42", 100*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(200 * time.Millisecond)

	locked, err := m.IsLocked(ctx, "cell:42")
	require.NoError(t, err)
	assert.False(t, locked, "lock must expire after its TTL")

	// Release after expiry reports the loss.
	assert.ErrorIs(t, m.Release(ctx, "cell:42", token), ErrNotHeld)
}

func TestExtend(t *testing.T) {
	ctx := context.Background()
	m, mr := newTestManager(t)

	token, acquired, err := m.AcquireTTL(ctx, "cell:42", 200*time.Millisecond)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, m.Extend(ctx, "cell:42", token, time.Minute))

	mr.FastForward(500 * time.Millisecond)
	locked, err := m.IsLocked(ctx, "cell:42")
	require.NoError(t, err)
	assert.True(t, locked, "extended lock must survive the original TTL")

	assert.ErrorIs(t, m.Extend(ctx, "cell:42", "wrong", time.Minute), ErrNotHeld)
}
