package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// CompanyService manages tenants and their 1:1 subscriptions.
type CompanyService struct {
	client *ent.Client
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(client *ent.Client) *CompanyService {
	if client == nil {
		panic("NewCompanyService: client must not be nil")
	}
	return &CompanyService{client: client}
}

// CreateCompany creates a tenant with an active subscription on the given
// tier. The first billing period starts now and runs one month.
func (s *CompanyService) CreateCompany(ctx context.Context, name string, tier config.Tier) (*ent.Company, error) {
	if name == "" {
		return nil, NewValidationError("name", "company name is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Company.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	now := time.Now()
	_, err = tx.Subscription.Create().
		SetCompanyID(c.ID).
		SetTier(subscription.Tier(tier)).
		SetStatus(subscription.StatusActive).
		SetCurrentPeriodStart(now).
		SetCurrentPeriodEnd(now.AddDate(0, 1, 0)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit company creation: %w", err)
	}
	return c, nil
}

// GetCompany returns a live company by id.
func (s *CompanyService) GetCompany(ctx context.Context, companyID int) (*ent.Company, error) {
	c, err := s.client.Company.Query().
		Where(
			company.ID(companyID),
			company.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("company %d: %w", companyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query company: %w", err)
	}
	return c, nil
}

// DeleteCompany soft-deletes a tenant and its subscription. Owned data
// stays until the retention janitor removes the storage prefix.
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	n, err := tx.Company.Update().
		Where(
			company.ID(companyID),
			company.DeletedAtIsNil(),
		).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("company %d: %w", companyID, ErrNotFound)
	}

	_, err = tx.Subscription.Update().
		Where(
			subscription.CompanyID(companyID),
			subscription.DeletedAtIsNil(),
		).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return tx.Commit()
}

// GetSubscription returns the live subscription of a company.
func (s *CompanyService) GetSubscription(ctx context.Context, companyID int) (*ent.Subscription, error) {
	sub, err := s.client.Subscription.Query().
		Where(
			subscription.CompanyID(companyID),
			subscription.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subscription for company %d: %w", companyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}
	return sub, nil
}

// ChangeTier moves the live subscription to a new tier. Quota limits take
// effect immediately; the billing period is unchanged.
func (s *CompanyService) ChangeTier(ctx context.Context, companyID int, tier config.Tier) (*ent.Subscription, error) {
	sub, err := s.GetSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	updated, err := sub.Update().
		SetTier(subscription.Tier(tier)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change tier: %w", err)
	}
	return updated, nil
}

// SetSubscriptionStatus updates the billing status, typically from a
// payment-provider webhook. Suspended and cancelled subscriptions fail
// every quota check.
func (s *CompanyService) SetSubscriptionStatus(ctx context.Context, companyID int, status subscription.Status, externalRef string) (*ent.Subscription, error) {
	sub, err := s.GetSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	update := sub.Update().SetStatus(status)
	if externalRef != "" {
		update.SetExternalRef(externalRef)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}
	return updated, nil
}

// RenewPeriod rolls the billing period forward one month from its end.
// Usage queries window on the period, so this effectively resets quotas.
func (s *CompanyService) RenewPeriod(ctx context.Context, companyID int) (*ent.Subscription, error) {
	sub, err := s.GetSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	updated, err := sub.Update().
		SetCurrentPeriodStart(sub.CurrentPeriodEnd).
		SetCurrentPeriodEnd(sub.CurrentPeriodEnd.AddDate(0, 1, 0)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to renew period: %w", err)
	}
	return updated, nil
}
