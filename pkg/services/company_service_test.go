package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestCreateCompanyWithSubscription(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, "acme", config.TierStarter)
	require.NoError(t, err)

	sub, err := svc.GetSubscription(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, subscription.TierStarter, sub.Tier)
	assert.Equal(t, subscription.StatusActive, sub.Status)
	assert.True(t, sub.CurrentPeriodEnd.After(sub.CurrentPeriodStart))
}

func TestCreateCompanyRequiresName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)

	_, err := svc.CreateCompany(context.Background(), "", config.TierFree)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestChangeTier(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, "acme", config.TierFree)
	require.NoError(t, err)

	sub, err := svc.ChangeTier(ctx, c.ID, config.TierProfessional)
	require.NoError(t, err)
	assert.Equal(t, subscription.TierProfessional, sub.Tier)
}

func TestRenewPeriodRollsForward(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, "acme", config.TierFree)
	require.NoError(t, err)
	before, err := svc.GetSubscription(ctx, c.ID)
	require.NoError(t, err)

	renewed, err := svc.RenewPeriod(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, renewed.CurrentPeriodStart.Equal(before.CurrentPeriodEnd))
	assert.True(t, renewed.CurrentPeriodEnd.After(renewed.CurrentPeriodStart))
}

func TestDeleteCompanyCascadesToSubscription(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, "acme", config.TierFree)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCompany(ctx, c.ID))

	_, err = svc.GetCompany(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = svc.GetSubscription(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Deleting twice reports not found, not a silent success.
	err = svc.DeleteCompany(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSetSubscriptionStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCompanyService(client)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, "acme", config.TierBusiness)
	require.NoError(t, err)

	sub, err := svc.SetSubscriptionStatus(ctx, c.ID, subscription.StatusPastDue, "sub_ext_123")
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusPastDue, sub.Status)
	require.NotNil(t, sub.ExternalRef)
	assert.Equal(t, "sub_ext_123", *sub.ExternalRef)
}
