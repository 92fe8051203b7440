// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// CellEntityRefUpdate is the builder for updating CellEntityRef entities.
type CellEntityRefUpdate struct {
	config
	hooks    []Hook
	mutation *CellEntityRefMutation
}

// Where appends a list predicates to the CellEntityRefUpdate builder.
func (_u *CellEntityRefUpdate) Where(ps ...predicate.CellEntityRef) *CellEntityRefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CellEntityRefMutation object of the builder.
func (_u *CellEntityRefUpdate) Mutation() *CellEntityRefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CellEntityRefUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellEntityRefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CellEntityRefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellEntityRefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellEntityRefUpdate) check() error {
	if _u.mutation.CellCleared() && len(_u.mutation.CellIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CellEntityRef.cell"`)
	}
	return nil
}

func (_u *CellEntityRefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellentityref.Table, cellentityref.Columns, sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellentityref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CellEntityRefUpdateOne is the builder for updating a single CellEntityRef entity.
type CellEntityRefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CellEntityRefMutation
}

// Mutation returns the CellEntityRefMutation object of the builder.
func (_u *CellEntityRefUpdateOne) Mutation() *CellEntityRefMutation {
	return _u.mutation
}

// Where appends a list predicates to the CellEntityRefUpdate builder.
func (_u *CellEntityRefUpdateOne) Where(ps ...predicate.CellEntityRef) *CellEntityRefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CellEntityRefUpdateOne) Select(field string, fields ...string) *CellEntityRefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CellEntityRef entity.
func (_u *CellEntityRefUpdateOne) Save(ctx context.Context) (*CellEntityRef, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellEntityRefUpdateOne) SaveX(ctx context.Context) *CellEntityRef {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CellEntityRefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellEntityRefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellEntityRefUpdateOne) check() error {
	if _u.mutation.CellCleared() && len(_u.mutation.CellIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CellEntityRef.cell"`)
	}
	return nil
}

func (_u *CellEntityRefUpdateOne) sqlSave(ctx context.Context) (_node *CellEntityRef, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellentityref.Table, cellentityref.Columns, sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CellEntityRef.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cellentityref.FieldID)
		for _, f := range fields {
			if !cellentityref.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cellentityref.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &CellEntityRef{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellentityref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
