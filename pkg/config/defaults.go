package config

// Defaults holds system-wide tunables for QA routing, citation grounding,
// and chunk structure detection.
type Defaults struct {
	// AgentQACharThreshold routes a question to a sandboxed agent when the
	// summed extracted character count of its documents exceeds this value.
	// Exactly at the threshold stays local.
	AgentQACharThreshold int `yaml:"agent_qa_char_threshold"`

	// GroundingMaxRetries bounds citation-grounding retry rounds.
	GroundingMaxRetries int `yaml:"grounding_max_retries"`

	// MinHeaders is the minimum markdown header count for hierarchical
	// chunking selection.
	MinHeaders int `yaml:"min_headers"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		AgentQACharThreshold: 150_000,
		GroundingMaxRetries:  1,
		MinHeaders:           3,
	}
}
