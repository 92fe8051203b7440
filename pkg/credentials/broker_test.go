package credentials

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestCreateKeyFormat(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "starter")
	broker := NewBroker(client)

	id, plainKey, err := broker.Create(context.Background(), "exec-1", company.ID)
	require.NoError(t, err)
	assert.Positive(t, id)

	assert.True(t, strings.HasPrefix(plainKey, KeyPrefix))
	assert.Len(t, plainKey, len(KeyPrefix)+66, "33 random bytes hex encoded")

	// The plain key never appears in the database.
	sa, err := client.ServiceAccount.Get(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, plainKey, sa.APIKeyHash)
	assert.Equal(t, HashKey(plainKey), sa.APIKeyHash)
	assert.True(t, sa.IsActive)
}

func TestAuthenticate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "starter")
	broker := NewBroker(client)
	ctx := context.Background()

	id, plainKey, err := broker.Create(ctx, "exec-1", company.ID)
	require.NoError(t, err)

	user, err := broker.Authenticate(ctx, plainKey)
	require.NoError(t, err)
	assert.Equal(t, id, user.ServiceAccountID)
	assert.Equal(t, company.ID, user.CompanyID)
	assert.Equal(t, "exec-1", user.ExecutionID)
}

func TestAuthenticateRejections(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "starter")
	broker := NewBroker(client)
	ctx := context.Background()

	id, plainKey, err := broker.Create(ctx, "exec-1", company.ID)
	require.NoError(t, err)

	// Missing prefix.
	_, err = broker.Authenticate(ctx, strings.TrimPrefix(plainKey, KeyPrefix))
	assert.ErrorIs(t, err, ErrInvalidKey)

	// Unknown key.
	_, err = broker.Authenticate(ctx, KeyPrefix+strings.Repeat("ab", 33))
	assert.ErrorIs(t, err, ErrInvalidKey)

	// Revoked key.
	require.NoError(t, broker.Delete(ctx, id, company.ID))
	_, err = broker.Authenticate(ctx, plainKey)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDeleteCompanyScoping(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	owner := util.CreateTestCompany(t, client, "starter")
	other := util.CreateTestCompany(t, client, "starter")
	broker := NewBroker(client)
	ctx := context.Background()

	id, _, err := broker.Create(ctx, "exec-1", owner.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, broker.Delete(ctx, id, other.ID), ErrAccessDenied)
	assert.ErrorIs(t, broker.Delete(ctx, 999999, owner.ID), ErrNotFound)
	require.NoError(t, broker.Delete(ctx, id, owner.ID))

	// Double delete: the row is already soft-deleted.
	assert.ErrorIs(t, broker.Delete(ctx, id, owner.ID), ErrNotFound)
}

func TestRevokeExpired(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "starter")
	broker := NewBroker(client)
	ctx := context.Background()

	_, freshKey, err := broker.Create(ctx, "exec-fresh", company.ID)
	require.NoError(t, err)

	// created_at is immutable, so the stale row is created directly.
	staleKey := KeyPrefix + strings.Repeat("cd", 33)
	_, err = client.ServiceAccount.Create().
		SetCompanyID(company.ID).
		SetExecutionID("exec-stale").
		SetAPIKeyHash(HashKey(staleKey)).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := broker.RevokeExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = broker.Authenticate(ctx, staleKey)
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = broker.Authenticate(ctx, freshKey)
	assert.NoError(t, err)
}
