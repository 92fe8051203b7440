package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// NATSBus implements Bus on JetStream. All queues live in one stream;
// queue q maps to subject <prefix>.q.<q> and its dead letters to
// <prefix>.dlq.<q>.
type NATSBus struct {
	nc         *nats.Conn
	js         nats.JetStreamContext
	prefix     string
	maxDeliver int
}

// NewNATSBus connects to NATS and ensures the stream exists.
func NewNATSBus(cfg *config.MessagingConfig) (*NATSBus, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to get JetStream context: %w", err)
	}

	prefix := strings.ToLower(cfg.Stream)
	_, err = js.AddStream(&nats.StreamConfig{
		Name:      cfg.Stream,
		Subjects:  []string{prefix + ".q.>", prefix + ".dlq.>"},
		Retention: nats.WorkQueuePolicy,
		Storage:   nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %q: %w", cfg.Stream, err)
	}

	return &NATSBus{
		nc:         nc,
		js:         js,
		prefix:     prefix,
		maxDeliver: cfg.MaxDeliver,
	}, nil
}

func (b *NATSBus) Publish(ctx context.Context, queue string, data []byte) error {
	_, err := b.js.Publish(b.subject(queue), data, nats.Context(ctx))
	if err != nil {
		return fmt.Errorf("failed to publish to queue %q: %w", queue, err)
	}
	return nil
}

// Subscribe creates a durable pull-style consumer group on the queue.
// Handlers share work across process replicas via the queue group.
func (b *NATSBus) Subscribe(queue string, handler Handler) (Subscription, error) {
	sub, err := b.js.QueueSubscribe(b.subject(queue), queue+"-workers", func(msg *nats.Msg) {
		attempt := 1
		if meta, err := msg.Metadata(); err == nil {
			attempt = int(meta.NumDelivered)
		}

		err := handler(context.Background(), Message{
			Queue:   queue,
			Data:    msg.Data,
			Attempt: attempt,
		})
		if err == nil {
			_ = msg.Ack()
			return
		}

		log := slog.With("queue", queue, "attempt", attempt, "error", err)
		if attempt >= b.maxDeliver {
			// Delivery ceiling reached. Park the payload on the DLQ and
			// ack so the work queue stops retrying.
			if _, dlqErr := b.js.Publish(b.dlqSubject(queue), msg.Data); dlqErr != nil {
				log.Error("Failed to publish to dead-letter queue", "dlq_error", dlqErr)
				_ = msg.Nak()
				return
			}
			log.Warn("Message moved to dead-letter queue")
			_ = msg.Ack()
			return
		}

		log.Warn("Handler failed, message will be redelivered")
		_ = msg.Nak()
	},
		nats.ManualAck(),
		nats.AckWait(30*time.Second),
		nats.MaxDeliver(b.maxDeliver),
		nats.MaxAckPending(16),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to queue %q: %w", queue, err)
	}
	return sub, nil
}

// DeadLetters attaches a handler to the queue's dead-letter subject.
func (b *NATSBus) DeadLetters(queue string, handler Handler) (Subscription, error) {
	sub, err := b.js.QueueSubscribe(b.dlqSubject(queue), queue+"-dlq", func(msg *nats.Msg) {
		_ = handler(context.Background(), Message{Queue: queue, Data: msg.Data, Attempt: 1})
		_ = msg.Ack()
	}, nats.ManualAck())
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to dead letters of %q: %w", queue, err)
	}
	return sub, nil
}

func (b *NATSBus) Close() {
	b.nc.Close()
}

func (b *NATSBus) subject(queue string) string {
	return b.prefix + ".q." + queue
}

func (b *NATSBus) dlqSubject(queue string) string {
	return b.prefix + ".dlq." + queue
}
