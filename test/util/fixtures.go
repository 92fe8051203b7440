package util

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
)

// CreateTestCompany creates a company with an active subscription on the
// given tier. The billing period covers now-1h to now+30d.
func CreateTestCompany(t *testing.T, client *ent.Client, tier string) *ent.Company {
	t.Helper()
	ctx := context.Background()

	company, err := client.Company.Create().
		SetName(fmt.Sprintf("test-company-%s", GenerateSchemaName(t))).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Subscription.Create().
		SetCompanyID(company.ID).
		SetTier(subscription.Tier(tier)).
		SetStatus(subscription.StatusActive).
		SetCurrentPeriodStart(time.Now().Add(-time.Hour)).
		SetCurrentPeriodEnd(time.Now().Add(30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	return company
}

// CreateTestDocument creates a completed-extraction document for the
// company with the given extracted character count.
func CreateTestDocument(t *testing.T, client *ent.Client, companyID int, filename string, charCount int) *ent.Document {
	t.Helper()
	ctx := context.Background()

	doc, err := client.Document.Create().
		SetCompanyID(companyID).
		SetFilename(filename).
		SetStorageKey(fmt.Sprintf("company/%d/documents/test/%s", companyID, filename)).
		SetChecksum(fmt.Sprintf("checksum-%s-%d", filename, charCount)).
		SetExtractionStatus("completed").
		SetExtractedCharCount(charCount).
		SetExtractedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	return doc
}

// CreateTestMatrix creates a standard matrix for the company.
func CreateTestMatrix(t *testing.T, client *ent.Client, companyID int) *ent.Matrix {
	t.Helper()
	ctx := context.Background()

	m, err := client.Matrix.Create().
		SetCompanyID(companyID).
		SetName("test-matrix").
		SetWorkspaceID("ws-test").
		Save(ctx)
	require.NoError(t, err)

	return m
}
