package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/locks"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
)

var (
	// ErrNotFound is returned when the referenced matrix, cell, or answer
	// set does not exist or is deleted.
	ErrNotFound = errors.New("matrix: not found")
	// ErrInvalidTransition is returned for a status change the monotonic
	// cell machine does not allow.
	ErrInvalidTransition = errors.New("matrix: invalid status transition")
	// ErrLockHeld is returned when the matrix structure lock is taken by
	// another writer.
	ErrLockHeld = errors.New("matrix: structure lock held")
)

// structureLockTTL bounds crash recovery for structure mutations.
const structureLockTTL = 30 * time.Second

// JobPayload is the queue message for one QA job.
type JobPayload struct {
	JobID     int `json:"job_id"`
	CellID    int `json:"cell_id"`
	CompanyID int `json:"company_id"`
}

// Engine manages cells, their refs, and their processing lifecycle.
type Engine struct {
	client *ent.Client
	bus    messaging.Bus
	locks  *locks.Manager
}

// NewEngine creates a matrix engine. The lock manager may be nil when no
// structure mutations will be performed (read-only and worker paths).
func NewEngine(client *ent.Client, bus messaging.Bus, lockMgr *locks.Manager) *Engine {
	return &Engine{client: client, bus: bus, locks: lockMgr}
}

// CreateCell inserts a cell and its coordinate refs in one transaction.
// The (matrix_id, cell_signature) partial unique index is the dedup
// contract: a constraint violation means the coordinate already has a live
// cell, which is returned with created=false.
func (e *Engine) CreateCell(ctx context.Context, matrixID int, cellType string, refs []Ref) (*ent.MatrixCell, bool, error) {
	if len(refs) == 0 {
		return nil, false, fmt.Errorf("cell needs at least one entity ref")
	}

	m, err := e.client.Matrix.Get(ctx, matrixID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to load matrix %d: %w", matrixID, err)
	}

	sig := Signature(refs)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cell, err := tx.MatrixCell.Create().
		SetMatrixID(matrixID).
		SetCompanyID(m.CompanyID).
		SetCellType(cellType).
		SetCellSignature(sig).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race or the cell predates us; hand back the live one.
			existing, lookupErr := e.findLiveCell(ctx, matrixID, sig)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create cell: %w", err)
	}

	for _, ref := range refs {
		err = tx.CellEntityRef.Create().
			SetCellID(cell.ID).
			SetRole(ref.Role).
			SetEntityID(ref.EntityID).
			Exec(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create entity ref %s:%d: %w", ref.Role, ref.EntityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := e.findLiveCell(ctx, matrixID, sig)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to commit cell: %w", err)
	}
	return cell, true, nil
}

func (e *Engine) findLiveCell(ctx context.Context, matrixID int, signature string) (*ent.MatrixCell, error) {
	cell, err := e.client.MatrixCell.Query().
		Where(
			matrixcell.MatrixID(matrixID),
			matrixcell.CellSignature(signature),
			matrixcell.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load existing cell: %w", err)
	}
	return cell, nil
}

// GetCell loads a live cell with its entity refs.
func (e *Engine) GetCell(ctx context.Context, cellID int) (*ent.MatrixCell, error) {
	cell, err := e.client.MatrixCell.Query().
		Where(matrixcell.ID(cellID), matrixcell.DeletedAtIsNil()).
		WithEntityRefs().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load cell %d: %w", cellID, err)
	}
	return cell, nil
}

// DeleteCell soft-deletes a cell. The partial unique index ignores deleted
// rows, so the coordinate can be recreated afterwards.
func (e *Engine) DeleteCell(ctx context.Context, cellID int) error {
	n, err := e.client.MatrixCell.Update().
		Where(matrixcell.ID(cellID), matrixcell.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete cell %d: %w", cellID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkProcessing moves a pending cell to processing. Conditional update:
// a cell already past pending is left alone and the call fails.
func (e *Engine) MarkProcessing(ctx context.Context, cellID int) error {
	return e.transition(ctx, cellID, matrixcell.StatusProcessing, matrixcell.StatusPending)
}

// MarkFailed moves a pending or processing cell to failed.
func (e *Engine) MarkFailed(ctx context.Context, cellID int) error {
	return e.transition(ctx, cellID, matrixcell.StatusFailed, matrixcell.StatusPending, matrixcell.StatusProcessing)
}

// transition applies a conditional status update. Zero rows means the cell
// is missing, deleted, or not in an allowed predecessor state.
func (e *Engine) transition(ctx context.Context, cellID int, to matrixcell.Status, from ...matrixcell.Status) error {
	n, err := e.client.MatrixCell.Update().
		Where(
			matrixcell.ID(cellID),
			matrixcell.StatusIn(from...),
			matrixcell.DeletedAtIsNil(),
		).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition cell %d to %s: %w", cellID, to, err)
	}
	if n == 0 {
		exists, err := e.client.MatrixCell.Query().
			Where(matrixcell.ID(cellID), matrixcell.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check cell %d: %w", cellID, err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

// AttachAnswerSet points the cell at the answer set and completes it in
// one transaction. Prior answer sets remain for audit.
func (e *Engine) AttachAnswerSet(ctx context.Context, cellID, answerSetID int) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	owned, err := tx.AnswerSet.Query().
		Where(answerset.ID(answerSetID), answerset.CellID(cellID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check answer set %d: %w", answerSetID, err)
	}
	if !owned {
		return ErrNotFound
	}

	n, err := tx.MatrixCell.Update().
		Where(
			matrixcell.ID(cellID),
			matrixcell.StatusIn(matrixcell.StatusPending, matrixcell.StatusProcessing),
			matrixcell.DeletedAtIsNil(),
		).
		SetCurrentAnswerSetID(answerSetID).
		SetStatus(matrixcell.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to attach answer set: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return tx.Commit()
}

// EnqueuePendingCells creates a QAJob for every live pending cell and
// publishes it to the QA queue. matrixID scopes the sweep to one matrix;
// zero sweeps everything. Returns the number of jobs enqueued.
func (e *Engine) EnqueuePendingCells(ctx context.Context, matrixID int) (int, error) {
	query := e.client.MatrixCell.Query().
		Where(
			matrixcell.StatusEQ(matrixcell.StatusPending),
			matrixcell.DeletedAtIsNil(),
		)
	if matrixID != 0 {
		query = query.Where(matrixcell.MatrixID(matrixID))
	}
	cells, err := query.Order(matrixcell.ByID()).All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending cells: %w", err)
	}

	enqueued := 0
	for _, cell := range cells {
		// Skip cells that already have a live job so repeated sweeps do
		// not double-process.
		busy, err := e.client.QAJob.Query().
			Where(
				qajob.CellID(cell.ID),
				qajob.StatusIn(qajob.StatusQueued, qajob.StatusProcessing),
			).
			Exist(ctx)
		if err != nil {
			return enqueued, fmt.Errorf("failed to check jobs for cell %d: %w", cell.ID, err)
		}
		if busy {
			continue
		}

		job, err := e.client.QAJob.Create().
			SetCellID(cell.ID).
			SetCompanyID(cell.CompanyID).
			Save(ctx)
		if err != nil {
			return enqueued, fmt.Errorf("failed to create job for cell %d: %w", cell.ID, err)
		}

		payload, err := json.Marshal(JobPayload{
			JobID:     job.ID,
			CellID:    cell.ID,
			CompanyID: cell.CompanyID,
		})
		if err != nil {
			return enqueued, fmt.Errorf("failed to marshal job payload: %w", err)
		}
		if err := e.bus.Publish(ctx, messaging.QueueQAJobs, payload); err != nil {
			return enqueued, fmt.Errorf("failed to publish job %d: %w", job.ID, err)
		}
		enqueued++
	}

	if enqueued > 0 {
		slog.Info("Enqueued pending cells", "matrix_id", matrixID, "jobs", enqueued)
	}
	return enqueued, nil
}

// AddEntitySet creates an axis with its members under the matrix
// structure lock. Members get member_order from their slice position.
func (e *Engine) AddEntitySet(ctx context.Context, matrixID int, name string, entityType entityset.EntityType, entityIDs []int) (*ent.EntitySet, error) {
	set, err := withStructureLock(ctx, e, matrixID, func(ctx context.Context) (*ent.EntitySet, error) {
		tx, err := e.client.Tx(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		set, err := tx.EntitySet.Create().
			SetMatrixID(matrixID).
			SetName(name).
			SetEntityType(entityType).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create entity set: %w", err)
		}
		for order, entityID := range entityIDs {
			err = tx.EntitySetMember.Create().
				SetEntitySetID(set.ID).
				SetEntityID(entityID).
				SetEntityType(entitysetmember.EntityType(entityType)).
				SetMemberOrder(order).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to add member %d: %w", entityID, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit entity set: %w", err)
		}
		return set, nil
	})
	return set, err
}

// MaterializeCells creates a cell for every coordinate of the cartesian
// product of the matrix's entity sets, skipping coordinates that already
// have a live cell. Runs under the structure lock. Returns the number of
// newly created cells.
func (e *Engine) MaterializeCells(ctx context.Context, matrixID int) (int, error) {
	return withStructureLock(ctx, e, matrixID, func(ctx context.Context) (int, error) {
		sets, err := e.client.EntitySet.Query().
			Where(entityset.MatrixID(matrixID)).
			Order(entityset.ByID()).
			WithMembers().
			All(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load entity sets: %w", err)
		}
		if len(sets) == 0 {
			return 0, nil
		}

		created := 0
		for _, coord := range cartesian(sets) {
			_, fresh, err := e.CreateCell(ctx, matrixID, "qa", coord)
			if err != nil {
				return created, err
			}
			if fresh {
				created++
			}
		}
		return created, nil
	})
}

// cartesian expands the product of the entity sets into coordinates, one
// Ref per axis. The axis role is the set's entity type.
func cartesian(sets []*ent.EntitySet) [][]Ref {
	coords := [][]Ref{{}}
	for _, set := range sets {
		next := make([][]Ref, 0, len(coords)*len(set.Edges.Members))
		for _, coord := range coords {
			for _, member := range set.Edges.Members {
				extended := make([]Ref, len(coord), len(coord)+1)
				copy(extended, coord)
				extended = append(extended, Ref{
					Role:     string(member.EntityType),
					EntityID: member.EntityID,
				})
				next = append(next, extended)
			}
		}
		coords = next
	}
	if len(coords) == 1 && len(coords[0]) == 0 {
		return nil
	}
	return coords
}

// withStructureLock runs fn while holding the per-matrix structure lock.
// Without a lock manager the engine runs unguarded, which single-writer
// deployments and tests rely on.
func withStructureLock[T any](ctx context.Context, e *Engine, matrixID int, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if e.locks == nil {
		return fn(ctx)
	}

	name := fmt.Sprintf("matrix-structure:%d", matrixID)
	token, acquired, err := e.locks.AcquireTTL(ctx, name, structureLockTTL)
	if err != nil {
		return zero, fmt.Errorf("failed to acquire structure lock: %w", err)
	}
	if !acquired {
		return zero, ErrLockHeld
	}
	defer func() {
		if releaseErr := e.locks.Release(context.WithoutCancel(ctx), name, token); releaseErr != nil {
			slog.Warn("Failed to release structure lock", "matrix_id", matrixID, "error", releaseErr)
		}
	}()

	return fn(ctx)
}
