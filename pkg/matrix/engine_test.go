package matrix

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestSignatureCanonical(t *testing.T) {
	a := Signature([]Ref{{Role: "document", EntityID: 7}, {Role: "question", EntityID: 3}})
	b := Signature([]Ref{{Role: "question", EntityID: 3}, {Role: "document", EntityID: 7}})
	assert.Equal(t, a, b, "ref order must not change the signature")
	assert.Len(t, a, 64)

	c := Signature([]Ref{{Role: "document", EntityID: 8}, {Role: "question", EntityID: 3}})
	assert.NotEqual(t, a, c)

	// Same role sorts by entity id.
	d := Signature([]Ref{{Role: "document", EntityID: 2}, {Role: "document", EntityID: 1}})
	e := Signature([]Ref{{Role: "document", EntityID: 1}, {Role: "document", EntityID: 2}})
	assert.Equal(t, d, e)
}

func TestCreateCellDeduplicates(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	refs := []Ref{{Role: "document", EntityID: 1}, {Role: "question", EntityID: 2}}
	cell, created, err := engine.CreateCell(ctx, m.ID, "qa", refs)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, matrixcell.StatusPending, cell.Status)
	assert.Equal(t, company.ID, cell.CompanyID)

	// Same coordinate in a different order resolves to the same cell.
	shuffled := []Ref{{Role: "question", EntityID: 2}, {Role: "document", EntityID: 1}}
	again, created, err := engine.CreateCell(ctx, m.ID, "qa", shuffled)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cell.ID, again.ID)

	// The refs were persisted with the cell.
	loaded, err := engine.GetCell(ctx, cell.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Edges.EntityRefs, 2)
}

func TestCreateCellAfterSoftDelete(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	refs := []Ref{{Role: "document", EntityID: 5}}
	cell, _, err := engine.CreateCell(ctx, m.ID, "qa", refs)
	require.NoError(t, err)
	require.NoError(t, engine.DeleteCell(ctx, cell.ID))

	// Deleted rows leave the partial unique index, so the coordinate is free.
	fresh, created, err := engine.CreateCell(ctx, m.ID, "qa", refs)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, cell.ID, fresh.ID)

	// The deleted cell is invisible to reads and to repeated deletes.
	_, err = engine.GetCell(ctx, cell.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, engine.DeleteCell(ctx, cell.ID), ErrNotFound)
}

func TestStatusMachineIsMonotonic(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	cell, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 1}})
	require.NoError(t, err)

	require.NoError(t, engine.MarkProcessing(ctx, cell.ID))
	// A second claim must not succeed.
	assert.ErrorIs(t, engine.MarkProcessing(ctx, cell.ID), ErrInvalidTransition)

	require.NoError(t, engine.MarkFailed(ctx, cell.ID))
	// Terminal states are final.
	assert.ErrorIs(t, engine.MarkProcessing(ctx, cell.ID), ErrInvalidTransition)
	assert.ErrorIs(t, engine.MarkFailed(ctx, cell.ID), ErrInvalidTransition)

	assert.ErrorIs(t, engine.MarkProcessing(ctx, cell.ID+9999), ErrNotFound)
}

func TestAttachAnswerSet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	cell, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 1}})
	require.NoError(t, err)
	require.NoError(t, engine.MarkProcessing(ctx, cell.ID))

	set, err := client.AnswerSet.Create().SetCellID(cell.ID).SetAnswerFound(true).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, engine.AttachAnswerSet(ctx, cell.ID, set.ID))

	reloaded, err := engine.GetCell(ctx, cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.CurrentAnswerSetID)
	assert.Equal(t, set.ID, *reloaded.CurrentAnswerSetID)

	// A completed cell does not accept another set.
	second, err := client.AnswerSet.Create().SetCellID(cell.ID).Save(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, engine.AttachAnswerSet(ctx, cell.ID, second.ID), ErrInvalidTransition)

	// An answer set belonging to another cell is rejected.
	other, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 2}})
	require.NoError(t, err)
	assert.ErrorIs(t, engine.AttachAnswerSet(ctx, other.ID, set.ID), ErrNotFound)
}

func TestEnqueuePendingCells(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	bus := messaging.NewMemoryBus(3)
	engine := NewEngine(client, bus, nil)
	ctx := context.Background()

	var payloads []JobPayload
	_, err := bus.Subscribe(messaging.QueueQAJobs, func(ctx context.Context, msg messaging.Message) error {
		var p JobPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return err
		}
		payloads = append(payloads, p)
		return nil
	})
	require.NoError(t, err)

	cellA, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 1}})
	require.NoError(t, err)
	cellB, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 2}})
	require.NoError(t, err)

	// A processing cell is not swept.
	busyCell, _, err := engine.CreateCell(ctx, m.ID, "qa", []Ref{{Role: "document", EntityID: 3}})
	require.NoError(t, err)
	require.NoError(t, engine.MarkProcessing(ctx, busyCell.ID))

	n, err := engine.EnqueuePendingCells(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, payloads, 2)
	assert.Equal(t, cellA.ID, payloads[0].CellID)
	assert.Equal(t, cellB.ID, payloads[1].CellID)
	assert.Equal(t, company.ID, payloads[0].CompanyID)

	// Cells with a live job are skipped on the next sweep.
	n, err = engine.EnqueuePendingCells(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMaterializeCells(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	_, err := engine.AddEntitySet(ctx, m.ID, "contracts", entityset.EntityTypeDocument, []int{1, 2, 3})
	require.NoError(t, err)
	_, err = engine.AddEntitySet(ctx, m.ID, "diligence", entityset.EntityTypeQuestion, []int{10, 11})
	require.NoError(t, err)

	created, err := engine.MaterializeCells(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, created, "3 documents x 2 questions")

	// Re-running materialization creates nothing new.
	created, err = engine.MaterializeCells(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	total, err := client.MatrixCell.Query().Where(matrixcell.MatrixID(m.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestMaterializeCellsEmptyMatrix(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := NewEngine(client, messaging.NewMemoryBus(3), nil)

	created, err := engine.MaterializeCells(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}
