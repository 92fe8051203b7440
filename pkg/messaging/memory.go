package messaging

import (
	"context"
	"sync"
)

// MemoryBus is an in-process Bus for tests. Delivery is synchronous:
// Publish runs the subscribed handler inline, retrying up to maxDeliver
// attempts before parking the payload on the queue's dead-letter slice.
type MemoryBus struct {
	mu         sync.Mutex
	handlers   map[string]Handler
	dead       map[string][][]byte
	maxDeliver int
}

// NewMemoryBus returns an empty in-process bus.
func NewMemoryBus(maxDeliver int) *MemoryBus {
	return &MemoryBus{
		handlers:   make(map[string]Handler),
		dead:       make(map[string][][]byte),
		maxDeliver: maxDeliver,
	}
}

func (b *MemoryBus) Publish(ctx context.Context, queue string, data []byte) error {
	b.mu.Lock()
	handler, ok := b.handlers[queue]
	b.mu.Unlock()
	if !ok {
		// No consumer yet; drop like an unsubscribed subject would.
		return nil
	}

	var err error
	for attempt := 1; attempt <= b.maxDeliver; attempt++ {
		err = handler(ctx, Message{Queue: queue, Data: data, Attempt: attempt})
		if err == nil {
			return nil
		}
	}

	b.mu.Lock()
	b.dead[queue] = append(b.dead[queue], data)
	b.mu.Unlock()
	return nil
}

func (b *MemoryBus) Subscribe(queue string, handler Handler) (Subscription, error) {
	b.mu.Lock()
	b.handlers[queue] = handler
	b.mu.Unlock()
	return memorySubscription{bus: b, queue: queue}, nil
}

// DeadLetters returns the payloads that exhausted their delivery attempts.
func (b *MemoryBus) DeadLetters(queue string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.dead[queue]...)
}

func (b *MemoryBus) Close() {}

type memorySubscription struct {
	bus   *MemoryBus
	queue string
}

func (s memorySubscription) Unsubscribe() error {
	s.bus.mu.Lock()
	delete(s.bus.handlers, s.queue)
	s.bus.mu.Unlock()
	return nil
}
