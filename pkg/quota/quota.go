// Package quota enforces per-tenant monthly ceilings on billable events.
// Reservation is atomic: the ledger sum, the limit check, and the usage
// event append happen in one serializable transaction, so concurrent
// reservations cannot oversubscribe a tenant.
package quota

import (
	"errors"
	"fmt"
	"time"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

var (
	// ErrNoSubscription is returned when the company has no live
	// subscription row.
	ErrNoSubscription = errors.New("company has no subscription")

	// ErrSubscriptionInactive is returned when the subscription status
	// does not grant access (suspended or cancelled).
	ErrSubscriptionInactive = errors.New("subscription is not active")
)

// Unlimited marks a tier ceiling that is never enforced.
const Unlimited = -1

// warningThreshold is the usage fraction at which responses start
// carrying an advisory warning.
const warningThreshold = 0.80

// QuotaCheck is the outcome of a reserve or read-only usage check.
type QuotaCheck struct {
	Allowed                 bool             `json:"allowed"`
	Metric                  config.EventType `json:"metric"`
	CurrentUsage            int              `json:"current_usage"`
	Limit                   int              `json:"limit"`
	Remaining               int              `json:"remaining"`
	PercentageUsed          float64          `json:"percentage_used"`
	WarningThresholdReached bool             `json:"warning_threshold_reached"`
	PeriodEnd               time.Time        `json:"period_end"`
	// UsageEventID is set when a reservation was appended to the ledger.
	UsageEventID int `json:"usage_event_id,omitempty"`
}

// Message derives the user-facing advisory from the check. Pure function
// of the struct.
func (q QuotaCheck) Message() string {
	if q.Limit == Unlimited {
		return ""
	}
	if !q.Allowed {
		return fmt.Sprintf("Monthly %s limit reached (%d/%d). Upgrade your plan or wait until %s.",
			q.Metric, q.CurrentUsage, q.Limit, q.PeriodEnd.Format("2006-01-02"))
	}
	if q.WarningThresholdReached {
		return fmt.Sprintf("Approaching monthly %s limit: %d of %d used (%.0f%%).",
			q.Metric, q.CurrentUsage, q.Limit, q.PercentageUsed)
	}
	return ""
}

// finalize fills the derived fields from usage and limit.
func finalize(check *QuotaCheck, usage, limit int) {
	check.CurrentUsage = usage
	check.Limit = limit
	if limit == Unlimited {
		check.Remaining = Unlimited
		check.PercentageUsed = 0
		check.WarningThresholdReached = false
		return
	}
	check.Remaining = limit - usage
	if check.Remaining < 0 {
		check.Remaining = 0
	}
	if limit > 0 {
		check.PercentageUsed = float64(usage) / float64(limit) * 100
	}
	check.WarningThresholdReached = limit > 0 && float64(usage) >= warningThreshold*float64(limit)
}
