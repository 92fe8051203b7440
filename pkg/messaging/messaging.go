// Package messaging provides named work queues with at-least-once
// delivery and per-queue dead-letter routing. Production uses NATS
// JetStream; tests use the in-process bus.
package messaging

import "context"

// Well-known queue names.
const (
	QueueQAJobs     = "qa_jobs"
	QueueChunking   = "chunking"
	QueueExtraction = "extraction"
)

// Message is one delivery attempt of a queued payload.
type Message struct {
	Queue string
	Data  []byte
	// Attempt is 1-based. When it reaches the bus's delivery ceiling and
	// the handler still fails, the payload moves to the dead-letter queue.
	Attempt int
}

// Handler processes one message. A nil return acknowledges the message;
// an error schedules redelivery until the delivery ceiling is reached.
type Handler func(ctx context.Context, msg Message) error

// Subscription is an active consumer on a queue.
type Subscription interface {
	Unsubscribe() error
}

// Bus is the message substrate boundary.
type Bus interface {
	Publish(ctx context.Context, queue string, data []byte) error
	// Subscribe attaches a handler to the named queue. Multiple
	// subscribers on the same queue share work.
	Subscribe(queue string, handler Handler) (Subscription, error)
	Close()
}
