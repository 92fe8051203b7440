package config

// MessagingConfig configures the NATS JetStream message substrate.
type MessagingConfig struct {
	URL string `yaml:"url"`

	// Stream is the JetStream stream name holding all named queues.
	Stream string `yaml:"stream"`

	// MaxDeliver is the delivery attempt ceiling before a message is
	// routed to the queue's dead-letter subject.
	MaxDeliver int `yaml:"max_deliver"`
}

// DefaultMessagingConfig returns the built-in messaging defaults.
func DefaultMessagingConfig() *MessagingConfig {
	return &MessagingConfig{
		URL:        "nats://localhost:4222",
		Stream:     "DOCMATRIX",
		MaxDeliver: 3,
	}
}
