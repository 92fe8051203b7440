package config

// Tier is a subscription tier.
type Tier string

// Subscription tiers.
const (
	TierFree         Tier = "free"
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierBusiness     Tier = "business"
	TierEnterprise   Tier = "enterprise"
)

// IsValid checks if the tier is a known value.
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierStarter, TierProfessional, TierBusiness, TierEnterprise:
		return true
	default:
		return false
	}
}

// EventType is a billable usage event type.
type EventType string

// Billable event types.
const (
	EventCellOperation    EventType = "cell_operation"
	EventAgenticQA        EventType = "agentic_qa"
	EventWorkflow         EventType = "workflow"
	EventStorageUpload    EventType = "storage_upload"
	EventAgenticChunking  EventType = "agentic_chunking"
)

// IsValid checks if the event type is a known value.
func (e EventType) IsValid() bool {
	switch e {
	case EventCellOperation, EventAgenticQA, EventWorkflow, EventStorageUpload, EventAgenticChunking:
		return true
	default:
		return false
	}
}

// ChunkingStrategy selects how a document is split into chunks.
type ChunkingStrategy string

// Chunking strategies. Hierarchical and agentic are auto-selected by the
// structure detector; the others are tier-based overrides or manual
// choices.
const (
	ChunkingHierarchical ChunkingStrategy = "hierarchical"
	ChunkingSemantic     ChunkingStrategy = "semantic"
	ChunkingFixedSize    ChunkingStrategy = "fixed_size"
	ChunkingSentence     ChunkingStrategy = "sentence"
	ChunkingParagraph    ChunkingStrategy = "paragraph"
	ChunkingAgentic      ChunkingStrategy = "agentic"
)

// IsValid checks if the chunking strategy is a known value.
func (s ChunkingStrategy) IsValid() bool {
	switch s {
	case ChunkingHierarchical, ChunkingSemantic, ChunkingFixedSize,
		ChunkingSentence, ChunkingParagraph, ChunkingAgentic:
		return true
	default:
		return false
	}
}

// ExecutorMode selects the job execution backend.
type ExecutorMode string

// Executor backends.
const (
	ExecutorDocker     ExecutorMode = "docker"
	ExecutorKubernetes ExecutorMode = "kubernetes"
)

// IsValid checks if the executor mode is a known value.
func (m ExecutorMode) IsValid() bool {
	return m == ExecutorDocker || m == ExecutorKubernetes
}
