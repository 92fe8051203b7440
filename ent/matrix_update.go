// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// MatrixUpdate is the builder for updating Matrix entities.
type MatrixUpdate struct {
	config
	hooks    []Hook
	mutation *MatrixMutation
}

// Where appends a list predicates to the MatrixUpdate builder.
func (_u *MatrixUpdate) Where(ps ...predicate.Matrix) *MatrixUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MatrixUpdate) SetName(v string) *MatrixUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MatrixUpdate) SetNillableName(v *string) *MatrixUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *MatrixUpdate) SetWorkspaceID(v string) *MatrixUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *MatrixUpdate) SetNillableWorkspaceID(v *string) *MatrixUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetMatrixType sets the "matrix_type" field.
func (_u *MatrixUpdate) SetMatrixType(v matrix.MatrixType) *MatrixUpdate {
	_u.mutation.SetMatrixType(v)
	return _u
}

// SetNillableMatrixType sets the "matrix_type" field if the given value is not nil.
func (_u *MatrixUpdate) SetNillableMatrixType(v *matrix.MatrixType) *MatrixUpdate {
	if v != nil {
		_u.SetMatrixType(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MatrixUpdate) SetDeletedAt(v time.Time) *MatrixUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MatrixUpdate) SetNillableDeletedAt(v *time.Time) *MatrixUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MatrixUpdate) ClearDeletedAt() *MatrixUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEntitySetIDs adds the "entity_sets" edge to the EntitySet entity by IDs.
func (_u *MatrixUpdate) AddEntitySetIDs(ids ...int) *MatrixUpdate {
	_u.mutation.AddEntitySetIDs(ids...)
	return _u
}

// AddEntitySets adds the "entity_sets" edges to the EntitySet entity.
func (_u *MatrixUpdate) AddEntitySets(v ...*EntitySet) *MatrixUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntitySetIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the MatrixCell entity by IDs.
func (_u *MatrixUpdate) AddCellIDs(ids ...int) *MatrixUpdate {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the MatrixCell entity.
func (_u *MatrixUpdate) AddCells(v ...*MatrixCell) *MatrixUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// Mutation returns the MatrixMutation object of the builder.
func (_u *MatrixUpdate) Mutation() *MatrixMutation {
	return _u.mutation
}

// ClearEntitySets clears all "entity_sets" edges to the EntitySet entity.
func (_u *MatrixUpdate) ClearEntitySets() *MatrixUpdate {
	_u.mutation.ClearEntitySets()
	return _u
}

// RemoveEntitySetIDs removes the "entity_sets" edge to EntitySet entities by IDs.
func (_u *MatrixUpdate) RemoveEntitySetIDs(ids ...int) *MatrixUpdate {
	_u.mutation.RemoveEntitySetIDs(ids...)
	return _u
}

// RemoveEntitySets removes "entity_sets" edges to EntitySet entities.
func (_u *MatrixUpdate) RemoveEntitySets(v ...*EntitySet) *MatrixUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntitySetIDs(ids...)
}

// ClearCells clears all "cells" edges to the MatrixCell entity.
func (_u *MatrixUpdate) ClearCells() *MatrixUpdate {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to MatrixCell entities by IDs.
func (_u *MatrixUpdate) RemoveCellIDs(ids ...int) *MatrixUpdate {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to MatrixCell entities.
func (_u *MatrixUpdate) RemoveCells(v ...*MatrixCell) *MatrixUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatrixUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatrixUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := matrix.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Matrix.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatrixType(); ok {
		if err := matrix.MatrixTypeValidator(v); err != nil {
			return &ValidationError{Name: "matrix_type", err: fmt.Errorf(`ent: validator failed for field "Matrix.matrix_type": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Matrix.company"`)
	}
	return nil
}

func (_u *MatrixUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrix.Table, matrix.Columns, sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(matrix.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(matrix.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatrixType(); ok {
		_spec.SetField(matrix.FieldMatrixType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(matrix.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(matrix.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntitySetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitySetsIDs(); len(nodes) > 0 && !_u.mutation.EntitySetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitySetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrix.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatrixUpdateOne is the builder for updating a single Matrix entity.
type MatrixUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatrixMutation
}

// SetName sets the "name" field.
func (_u *MatrixUpdateOne) SetName(v string) *MatrixUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MatrixUpdateOne) SetNillableName(v *string) *MatrixUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *MatrixUpdateOne) SetWorkspaceID(v string) *MatrixUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *MatrixUpdateOne) SetNillableWorkspaceID(v *string) *MatrixUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetMatrixType sets the "matrix_type" field.
func (_u *MatrixUpdateOne) SetMatrixType(v matrix.MatrixType) *MatrixUpdateOne {
	_u.mutation.SetMatrixType(v)
	return _u
}

// SetNillableMatrixType sets the "matrix_type" field if the given value is not nil.
func (_u *MatrixUpdateOne) SetNillableMatrixType(v *matrix.MatrixType) *MatrixUpdateOne {
	if v != nil {
		_u.SetMatrixType(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MatrixUpdateOne) SetDeletedAt(v time.Time) *MatrixUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MatrixUpdateOne) SetNillableDeletedAt(v *time.Time) *MatrixUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MatrixUpdateOne) ClearDeletedAt() *MatrixUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEntitySetIDs adds the "entity_sets" edge to the EntitySet entity by IDs.
func (_u *MatrixUpdateOne) AddEntitySetIDs(ids ...int) *MatrixUpdateOne {
	_u.mutation.AddEntitySetIDs(ids...)
	return _u
}

// AddEntitySets adds the "entity_sets" edges to the EntitySet entity.
func (_u *MatrixUpdateOne) AddEntitySets(v ...*EntitySet) *MatrixUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntitySetIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the MatrixCell entity by IDs.
func (_u *MatrixUpdateOne) AddCellIDs(ids ...int) *MatrixUpdateOne {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the MatrixCell entity.
func (_u *MatrixUpdateOne) AddCells(v ...*MatrixCell) *MatrixUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// Mutation returns the MatrixMutation object of the builder.
func (_u *MatrixUpdateOne) Mutation() *MatrixMutation {
	return _u.mutation
}

// ClearEntitySets clears all "entity_sets" edges to the EntitySet entity.
func (_u *MatrixUpdateOne) ClearEntitySets() *MatrixUpdateOne {
	_u.mutation.ClearEntitySets()
	return _u
}

// RemoveEntitySetIDs removes the "entity_sets" edge to EntitySet entities by IDs.
func (_u *MatrixUpdateOne) RemoveEntitySetIDs(ids ...int) *MatrixUpdateOne {
	_u.mutation.RemoveEntitySetIDs(ids...)
	return _u
}

// RemoveEntitySets removes "entity_sets" edges to EntitySet entities.
func (_u *MatrixUpdateOne) RemoveEntitySets(v ...*EntitySet) *MatrixUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntitySetIDs(ids...)
}

// ClearCells clears all "cells" edges to the MatrixCell entity.
func (_u *MatrixUpdateOne) ClearCells() *MatrixUpdateOne {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to MatrixCell entities by IDs.
func (_u *MatrixUpdateOne) RemoveCellIDs(ids ...int) *MatrixUpdateOne {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to MatrixCell entities.
func (_u *MatrixUpdateOne) RemoveCells(v ...*MatrixCell) *MatrixUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// Where appends a list predicates to the MatrixUpdate builder.
func (_u *MatrixUpdateOne) Where(ps ...predicate.Matrix) *MatrixUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatrixUpdateOne) Select(field string, fields ...string) *MatrixUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Matrix entity.
func (_u *MatrixUpdateOne) Save(ctx context.Context) (*Matrix, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixUpdateOne) SaveX(ctx context.Context) *Matrix {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatrixUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := matrix.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Matrix.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatrixType(); ok {
		if err := matrix.MatrixTypeValidator(v); err != nil {
			return &ValidationError{Name: "matrix_type", err: fmt.Errorf(`ent: validator failed for field "Matrix.matrix_type": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Matrix.company"`)
	}
	return nil
}

func (_u *MatrixUpdateOne) sqlSave(ctx context.Context) (_node *Matrix, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrix.Table, matrix.Columns, sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Matrix.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matrix.FieldID)
		for _, f := range fields {
			if !matrix.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matrix.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(matrix.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(matrix.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatrixType(); ok {
		_spec.SetField(matrix.FieldMatrixType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(matrix.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(matrix.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntitySetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitySetsIDs(); len(nodes) > 0 && !_u.mutation.EntitySetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitySetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.EntitySetsTable,
			Columns: []string{matrix.EntitySetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrix.CellsTable,
			Columns: []string{matrix.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Matrix{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrix.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
