package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusDelivery(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus(3)

	var got []Message
	_, err := bus.Subscribe(QueueQAJobs, func(_ context.Context, msg Message) error {
		got = append(got, msg)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, QueueQAJobs, []byte(`{"job_id":1}`)))

	require.Len(t, got, 1)
	assert.Equal(t, QueueQAJobs, got[0].Queue)
	assert.Equal(t, 1, got[0].Attempt)
	assert.Empty(t, bus.DeadLetters(QueueQAJobs))
}

func TestMemoryBusRetryThenSuccess(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus(3)

	attempts := 0
	_, err := bus.Subscribe(QueueChunking, func(_ context.Context, msg Message) error {
		attempts++
		if msg.Attempt < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, QueueChunking, []byte("payload")))
	assert.Equal(t, 2, attempts)
	assert.Empty(t, bus.DeadLetters(QueueChunking))
}

func TestMemoryBusDeadLetter(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus(3)

	attempts := 0
	_, err := bus.Subscribe(QueueQAJobs, func(_ context.Context, _ Message) error {
		attempts++
		return errors.New("permanent")
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, QueueQAJobs, []byte("poison")))

	assert.Equal(t, 3, attempts, "handler retried up to the delivery ceiling")
	dead := bus.DeadLetters(QueueQAJobs)
	require.Len(t, dead, 1)
	assert.Equal(t, []byte("poison"), dead[0])
}

func TestMemoryBusQueueIsolation(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus(3)

	var qaCount int
	_, err := bus.Subscribe(QueueQAJobs, func(_ context.Context, _ Message) error {
		qaCount++
		return nil
	})
	require.NoError(t, err)

	// Published to a queue with no consumer: dropped, not cross-delivered.
	require.NoError(t, bus.Publish(ctx, QueueExtraction, []byte("x")))
	assert.Zero(t, qaCount)
}

func TestMemoryBusUnsubscribe(t *testing.T) {
	ctx := context.Background()
	bus := NewMemoryBus(3)

	count := 0
	sub, err := bus.Subscribe(QueueQAJobs, func(_ context.Context, _ Message) error {
		count++
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, sub.Unsubscribe())

	require.NoError(t, bus.Publish(ctx, QueueQAJobs, []byte("x")))
	assert.Zero(t, count)
}
