package quota

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// Service is the quota gate over the subscription and usage_events tables.
type Service struct {
	client *ent.Client
}

// NewService creates a quota service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// CheckAndReserve atomically checks the monthly ceiling and appends the
// usage event. A disallowed check returns reserved=false with no ledger
// write and no error; hard failures (no subscription, revoked access,
// database errors) return an error.
//
// userID and fileSize are optional; fileSize only applies to
// storage_upload events.
func (s *Service) CheckAndReserve(ctx context.Context, companyID int, userID *int, eventType config.EventType, quantity int, fileSize *int64) (*QuotaCheck, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}

	sub, err := s.loadSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	limits := config.LimitsForTier(config.Tier(sub.Tier))
	limit := limits.Limit(eventType)

	check := &QuotaCheck{
		Metric:    eventType,
		PeriodEnd: sub.CurrentPeriodEnd,
	}

	// Serializable keeps concurrent reservations from both reading the
	// same ledger sum and both appending.
	tx, err := s.client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	usage, usedBytes, err := sumLedger(ctx, tx, companyID, eventType, sub.CurrentPeriodStart, sub.CurrentPeriodEnd)
	if err != nil {
		return nil, err
	}

	if limit != Unlimited && usage+quantity > limit {
		finalize(check, usage, limit)
		check.Allowed = false
		return check, nil
	}
	if eventType == config.EventStorageUpload && limits.StorageBytes != Unlimited && fileSize != nil {
		if usedBytes+*fileSize > limits.StorageBytes {
			finalize(check, usage, limit)
			check.Allowed = false
			return check, nil
		}
	}

	builder := tx.UsageEvent.Create().
		SetCompanyID(companyID).
		SetEventType(usageevent.EventType(eventType)).
		SetQuantity(quantity)
	if userID != nil {
		builder.SetUserID(*userID)
	}
	if fileSize != nil {
		builder.SetFileSizeBytes(*fileSize)
	}
	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append usage event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	finalize(check, usage+quantity, limit)
	check.Allowed = true
	check.UsageEventID = event.ID

	if check.WarningThresholdReached {
		slog.Warn("Company approaching quota limit",
			"company_id", companyID,
			"metric", eventType,
			"usage", check.CurrentUsage,
			"limit", check.Limit)
	}
	return check, nil
}

// CurrentUsage reports usage for the running period without reserving.
func (s *Service) CurrentUsage(ctx context.Context, companyID int, eventType config.EventType) (*QuotaCheck, error) {
	sub, err := s.loadSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	limits := config.LimitsForTier(config.Tier(sub.Tier))

	usage, _, err := s.sumLedgerClient(ctx, companyID, eventType, sub.CurrentPeriodStart, sub.CurrentPeriodEnd)
	if err != nil {
		return nil, err
	}

	check := &QuotaCheck{
		Metric:    eventType,
		PeriodEnd: sub.CurrentPeriodEnd,
	}
	finalize(check, usage, limits.Limit(eventType))
	check.Allowed = check.Limit == Unlimited || check.CurrentUsage < check.Limit
	return check, nil
}

// loadSubscription returns the live subscription and verifies access.
// active and past_due retain access; suspended and cancelled do not.
func (s *Service) loadSubscription(ctx context.Context, companyID int) (*ent.Subscription, error) {
	sub, err := s.client.Subscription.Query().
		Where(
			subscription.CompanyID(companyID),
			subscription.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSubscription
		}
		return nil, fmt.Errorf("failed to load subscription for company %d: %w", companyID, err)
	}
	switch sub.Status {
	case subscription.StatusActive, subscription.StatusPastDue:
		return sub, nil
	default:
		return nil, fmt.Errorf("%w: status %s", ErrSubscriptionInactive, sub.Status)
	}
}

func sumLedger(ctx context.Context, tx *ent.Tx, companyID int, eventType config.EventType, from, to time.Time) (int, int64, error) {
	return sumLedgerQuery(ctx, tx.UsageEvent.Query(), companyID, eventType, from, to)
}

func (s *Service) sumLedgerClient(ctx context.Context, companyID int, eventType config.EventType, from, to time.Time) (int, int64, error) {
	return sumLedgerQuery(ctx, s.client.UsageEvent.Query(), companyID, eventType, from, to)
}

// sumLedgerQuery sums quantity and file_size_bytes for one (company,
// event_type) pair in the billing window. COALESCE keeps the empty-window
// case at zero instead of NULL.
func sumLedgerQuery(ctx context.Context, q *ent.UsageEventQuery, companyID int, eventType config.EventType, from, to time.Time) (int, int64, error) {
	var rows []struct {
		Quantity int   `json:"quantity"`
		Bytes    int64 `json:"bytes"`
	}
	err := q.
		Where(
			usageevent.CompanyID(companyID),
			usageevent.EventTypeEQ(usageevent.EventType(eventType)),
			usageevent.CreatedAtGTE(from),
			usageevent.CreatedAtLT(to),
		).
		Aggregate(
			func(s *entsql.Selector) string {
				return "COALESCE(SUM(quantity), 0) AS quantity"
			},
			func(s *entsql.Selector) string {
				return "COALESCE(SUM(file_size_bytes), 0) AS bytes"
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum usage ledger: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Quantity, rows[0].Bytes, nil
}
