// Package credentials mints and verifies the ephemeral service-account
// keys handed to sandboxed jobs. Keys are prefixed "sa_", transmitted to
// the job exactly once via env var, and stored only as a sha-256 hash.
package credentials

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
)

const (
	// KeyPrefix marks service-account keys. Informational only; all
	// secrecy lives in the random suffix.
	KeyPrefix = "sa_"

	// keyRandomBytes of entropy per key, hex encoded to 66 characters.
	keyRandomBytes = 33
)

var (
	// ErrInvalidKey is returned when a key fails authentication for any
	// reason: bad prefix, unknown hash, revoked, or deleted.
	ErrInvalidKey = errors.New("invalid service account key")

	// ErrAccessDenied is returned when an operation targets a service
	// account owned by a different company.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is returned when the service account does not exist.
	ErrNotFound = errors.New("service account not found")
)

// AuthenticatedUser is the company-scoped principal a valid key resolves
// to.
type AuthenticatedUser struct {
	ServiceAccountID int
	CompanyID        int
	ExecutionID      string
}

// Broker manages the service-account lifecycle.
type Broker struct {
	db *ent.Client
}

// NewBroker creates a credential broker.
func NewBroker(db *ent.Client) *Broker {
	return &Broker{db: db}
}

// Create mints a credential scoped to one execution. The plain key is
// returned exactly once and never persisted.
func (b *Broker) Create(ctx context.Context, executionID string, companyID int) (int, string, error) {
	plainKey, err := generateKey()
	if err != nil {
		return 0, "", fmt.Errorf("failed to generate key: %w", err)
	}

	sa, err := b.db.ServiceAccount.Create().
		SetCompanyID(companyID).
		SetExecutionID(executionID).
		SetAPIKeyHash(HashKey(plainKey)).
		Save(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create service account: %w", err)
	}

	slog.Info("Created service account",
		"service_account_id", sa.ID,
		"company_id", companyID,
		"execution_id", executionID)
	return sa.ID, plainKey, nil
}

// Authenticate resolves a plain key to its principal. Requires the sa_
// prefix, a matching hash, is_active, and no soft delete.
func (b *Broker) Authenticate(ctx context.Context, plainKey string) (*AuthenticatedUser, error) {
	if !strings.HasPrefix(plainKey, KeyPrefix) {
		return nil, ErrInvalidKey
	}

	sa, err := b.db.ServiceAccount.Query().
		Where(
			serviceaccount.APIKeyHash(HashKey(plainKey)),
			serviceaccount.IsActive(true),
			serviceaccount.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidKey
		}
		return nil, fmt.Errorf("failed to authenticate key: %w", err)
	}

	return &AuthenticatedUser{
		ServiceAccountID: sa.ID,
		CompanyID:        sa.CompanyID,
		ExecutionID:      sa.ExecutionID,
	}, nil
}

// Delete revokes a credential. Soft delete; subsequent Authenticate calls
// with the key fail. Revoking an account of another company is refused.
func (b *Broker) Delete(ctx context.Context, id, companyID int) error {
	sa, err := b.db.ServiceAccount.Query().
		Where(serviceaccount.ID(id), serviceaccount.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load service account %d: %w", id, err)
	}
	if sa.CompanyID != companyID {
		return ErrAccessDenied
	}

	err = b.db.ServiceAccount.UpdateOneID(id).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke service account %d: %w", id, err)
	}

	slog.Info("Revoked service account", "service_account_id", id, "company_id", companyID)
	return nil
}

// RevokeExpired deactivates active accounts older than ttl. Used by the
// retention janitor to reap credentials leaked by failed workflows.
func (b *Broker) RevokeExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := b.db.ServiceAccount.Update().
		Where(
			serviceaccount.IsActive(true),
			serviceaccount.DeletedAtIsNil(),
			serviceaccount.CreatedAtLT(cutoff),
		).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke expired service accounts: %w", err)
	}
	return n, nil
}

// HashKey returns the sha-256 hex digest stored for a plain key.
func HashKey(plainKey string) string {
	sum := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(sum[:])
}

func generateKey() (string, error) {
	buf := make([]byte, keyRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return KeyPrefix + hex.EncodeToString(buf), nil
}
