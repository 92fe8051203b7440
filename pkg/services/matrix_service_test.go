package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	entmatrix "github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestMatrixCRUD(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "free")
	svc := NewMatrixService(client)
	ctx := context.Background()

	m, err := svc.CreateMatrix(ctx, company.ID, "due diligence", "ws-1", entmatrix.MatrixTypeStandard)
	require.NoError(t, err)

	_, err = svc.CreateMatrix(ctx, company.ID, "correlations", "ws-2", entmatrix.MatrixTypeCrossCorrelation)
	require.NoError(t, err)

	scoped, err := svc.ListMatrices(ctx, company.ID, "ws-1")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, m.ID, scoped[0].ID)

	all, err := svc.ListMatrices(ctx, company.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.DeleteMatrix(ctx, company.ID, m.ID))
	_, err = svc.GetMatrix(ctx, company.ID, m.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetMatrixLoadsEntitySets(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "free")
	svc := NewMatrixService(client)
	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	m, err := svc.CreateMatrix(ctx, company.ID, "dd", "ws-1", entmatrix.MatrixTypeStandard)
	require.NoError(t, err)
	_, err = engine.AddEntitySet(ctx, m.ID, "documents", entityset.EntityTypeDocument, []int{10, 11})
	require.NoError(t, err)
	_, err = engine.AddEntitySet(ctx, m.ID, "questions", entityset.EntityTypeQuestion, []int{20})
	require.NoError(t, err)

	loaded, err := svc.GetMatrix(ctx, company.ID, m.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.EntitySets, 2)
	assert.Len(t, loaded.Edges.EntitySets[0].Edges.Members, 2)
}

func TestMatrixProgress(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "free")
	svc := NewMatrixService(client)
	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	m, err := svc.CreateMatrix(ctx, company.ID, "dd", "ws-1", entmatrix.MatrixTypeStandard)
	require.NoError(t, err)

	cellA, _, err := engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "question", EntityID: 1}})
	require.NoError(t, err)
	_, _, err = engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{{Role: "question", EntityID: 2}})
	require.NoError(t, err)
	require.NoError(t, engine.MarkProcessing(ctx, cellA.ID))

	progress, err := svc.Progress(ctx, company.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Total)
	assert.Equal(t, 1, progress.Pending)
	assert.Equal(t, 1, progress.Processing)
	assert.Zero(t, progress.Completed)
}
