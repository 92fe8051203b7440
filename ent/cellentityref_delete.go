// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// CellEntityRefDelete is the builder for deleting a CellEntityRef entity.
type CellEntityRefDelete struct {
	config
	hooks    []Hook
	mutation *CellEntityRefMutation
}

// Where appends a list predicates to the CellEntityRefDelete builder.
func (_d *CellEntityRefDelete) Where(ps ...predicate.CellEntityRef) *CellEntityRefDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CellEntityRefDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CellEntityRefDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CellEntityRefDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cellentityref.Table, sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CellEntityRefDeleteOne is the builder for deleting a single CellEntityRef entity.
type CellEntityRefDeleteOne struct {
	_d *CellEntityRefDelete
}

// Where appends a list predicates to the CellEntityRefDelete builder.
func (_d *CellEntityRefDeleteOne) Where(ps ...predicate.CellEntityRef) *CellEntityRefDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CellEntityRefDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cellentityref.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CellEntityRefDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
