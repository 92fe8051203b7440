package chunks

import (
	"context"
	"fmt"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
)

// Ingester runs the post-extraction chunking pass for a document: pick
// a strategy from the company's tier and the document's structure,
// charge agent-backed chunking against quota, and feed the pipeline.
type Ingester struct {
	pipeline   *Pipeline
	quotas     *quota.Service
	minHeaders int
}

// NewIngester wires the ingest pass. quotas may be nil for paths that
// never bill, such as re-chunking an already charged document.
func NewIngester(pipeline *Pipeline, quotas *quota.Service, minHeaders int) *Ingester {
	return &Ingester{pipeline: pipeline, quotas: quotas, minHeaders: minHeaders}
}

// Ingest chunks and indexes an extracted document. Agentic chunking is
// billed per document before any chunk is produced; a denied quota
// aborts the run with no ledger entry.
func (i *Ingester) Ingest(ctx context.Context, doc *ent.Document, content string) (*ent.ChunkSet, error) {
	tier, err := i.tierFor(ctx, doc.CompanyID)
	if err != nil {
		return nil, err
	}
	strategy := DecideStrategy(content, tier, i.minHeaders)

	if strategy == config.ChunkingAgentic && i.quotas != nil {
		check, err := i.quotas.CheckAndReserve(ctx, doc.CompanyID, nil, config.EventAgenticChunking, 1, nil)
		if err != nil {
			return nil, err
		}
		if !check.Allowed {
			return nil, fmt.Errorf("agentic chunking for document %d: %s", doc.ID, check.Message())
		}
	}

	return i.pipeline.Run(ctx, doc, content, strategy)
}

func (i *Ingester) tierFor(ctx context.Context, companyID int) (config.Tier, error) {
	sub, err := i.pipeline.db.Subscription.Query().
		Where(
			subscription.CompanyID(companyID),
			subscription.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load subscription for company %d: %w", companyID, err)
	}
	return config.Tier(sub.Tier), nil
}
