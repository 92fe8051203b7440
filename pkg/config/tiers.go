package config

// QuotaLimits holds the monthly ceilings for one tier. A limit of -1 means
// unlimited; StorageBytes bounds the summed file_size_bytes of
// storage_upload events.
type QuotaLimits struct {
	CellOperations  int
	AgenticQA       int
	Workflows       int
	StorageUploads  int
	AgenticChunking int
	StorageBytes    int64
}

// Limit returns the monthly ceiling for an event type.
func (q QuotaLimits) Limit(event EventType) int {
	switch event {
	case EventCellOperation:
		return q.CellOperations
	case EventAgenticQA:
		return q.AgenticQA
	case EventWorkflow:
		return q.Workflows
	case EventStorageUpload:
		return q.StorageUploads
	case EventAgenticChunking:
		return q.AgenticChunking
	default:
		return 0
	}
}

const gib = int64(1) << 30

// tierLimits is the tier → quota table. Enterprise is unlimited on all
// counters.
var tierLimits = map[Tier]QuotaLimits{
	TierFree: {
		CellOperations:  50,
		AgenticQA:       5,
		Workflows:       2,
		StorageUploads:  20,
		AgenticChunking: 5,
		StorageBytes:    1 * gib,
	},
	TierStarter: {
		CellOperations:  500,
		AgenticQA:       25,
		Workflows:       10,
		StorageUploads:  200,
		AgenticChunking: 50,
		StorageBytes:    10 * gib,
	},
	TierProfessional: {
		CellOperations:  5000,
		AgenticQA:       250,
		Workflows:       100,
		StorageUploads:  2000,
		AgenticChunking: 500,
		StorageBytes:    100 * gib,
	},
	TierBusiness: {
		CellOperations:  25000,
		AgenticQA:       1000,
		Workflows:       500,
		StorageUploads:  10000,
		AgenticChunking: 2500,
		StorageBytes:    500 * gib,
	},
	TierEnterprise: {
		CellOperations:  -1,
		AgenticQA:       -1,
		Workflows:       -1,
		StorageUploads:  -1,
		AgenticChunking: -1,
		StorageBytes:    -1,
	},
}

// LimitsForTier returns the quota table entry for a tier. Unknown tiers get
// the free limits.
func LimitsForTier(tier Tier) QuotaLimits {
	if limits, ok := tierLimits[tier]; ok {
		return limits
	}
	return tierLimits[TierFree]
}

// ChunkingOverrideForTier returns a forced chunking strategy for the tier,
// or empty when the structure detector should decide.
func ChunkingOverrideForTier(tier Tier) ChunkingStrategy {
	switch tier {
	case TierFree:
		return ChunkingFixedSize
	case TierStarter:
		return ChunkingParagraph
	default:
		return ""
	}
}
