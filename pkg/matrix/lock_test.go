package matrix

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/pkg/locks"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

func TestStructureMutationsRespectLock(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "professional")
	m := util.CreateTestMatrix(t, client, company.ID)

	mr := miniredis.RunT(t)
	lockMgr := locks.NewManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Second)
	engine := NewEngine(client, messaging.NewMemoryBus(3), lockMgr)
	ctx := context.Background()

	// Another writer holds this matrix's structure lock.
	name := fmt.Sprintf("matrix-structure:%d", m.ID)
	_, acquired, err := lockMgr.Acquire(ctx, name)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = engine.AddEntitySet(ctx, m.ID, "contracts", entityset.EntityTypeDocument, []int{1})
	assert.ErrorIs(t, err, ErrLockHeld)

	// A different matrix is unaffected.
	other := util.CreateTestMatrix(t, client, company.ID)
	_, err = engine.AddEntitySet(ctx, other.ID, "contracts", entityset.EntityTypeDocument, []int{1})
	require.NoError(t, err)

	// The lock is released afterwards, not leaked.
	held, err := lockMgr.IsLocked(ctx, fmt.Sprintf("matrix-structure:%d", other.ID))
	require.NoError(t, err)
	assert.False(t, held)
}
