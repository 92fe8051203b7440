// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// MatrixCreate is the builder for creating a Matrix entity.
type MatrixCreate struct {
	config
	mutation *MatrixMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *MatrixCreate) SetCompanyID(v int) *MatrixCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MatrixCreate) SetName(v string) *MatrixCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *MatrixCreate) SetWorkspaceID(v string) *MatrixCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetMatrixType sets the "matrix_type" field.
func (_c *MatrixCreate) SetMatrixType(v matrix.MatrixType) *MatrixCreate {
	_c.mutation.SetMatrixType(v)
	return _c
}

// SetNillableMatrixType sets the "matrix_type" field if the given value is not nil.
func (_c *MatrixCreate) SetNillableMatrixType(v *matrix.MatrixType) *MatrixCreate {
	if v != nil {
		_c.SetMatrixType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatrixCreate) SetCreatedAt(v time.Time) *MatrixCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatrixCreate) SetNillableCreatedAt(v *time.Time) *MatrixCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MatrixCreate) SetDeletedAt(v time.Time) *MatrixCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MatrixCreate) SetNillableDeletedAt(v *time.Time) *MatrixCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *MatrixCreate) SetCompany(v *Company) *MatrixCreate {
	return _c.SetCompanyID(v.ID)
}

// AddEntitySetIDs adds the "entity_sets" edge to the EntitySet entity by IDs.
func (_c *MatrixCreate) AddEntitySetIDs(ids ...int) *MatrixCreate {
	_c.mutation.AddEntitySetIDs(ids...)
	return _c
}

// AddEntitySets adds the "entity_sets" edges to the EntitySet entity.
func (_c *MatrixCreate) AddEntitySets(v ...*EntitySet) *MatrixCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntitySetIDs(ids...)
}

// AddCellIDs adds the "cells" edge to the MatrixCell entity by IDs.
func (_c *MatrixCreate) AddCellIDs(ids ...int) *MatrixCreate {
	_c.mutation.AddCellIDs(ids...)
	return _c
}

// AddCells adds the "cells" edges to the MatrixCell entity.
func (_c *MatrixCreate) AddCells(v ...*MatrixCell) *MatrixCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCellIDs(ids...)
}

// Mutation returns the MatrixMutation object of the builder.
func (_c *MatrixCreate) Mutation() *MatrixMutation {
	return _c.mutation
}

// Save creates the Matrix in the database.
func (_c *MatrixCreate) Save(ctx context.Context) (*Matrix, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatrixCreate) SaveX(ctx context.Context) *Matrix {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatrixCreate) defaults() {
	if _, ok := _c.mutation.MatrixType(); !ok {
		v := matrix.DefaultMatrixType
		_c.mutation.SetMatrixType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matrix.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatrixCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Matrix.company_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Matrix.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := matrix.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Matrix.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Matrix.workspace_id"`)}
	}
	if _, ok := _c.mutation.MatrixType(); !ok {
		return &ValidationError{Name: "matrix_type", err: errors.New(`ent: missing required field "Matrix.matrix_type"`)}
	}
	if v, ok := _c.mutation.MatrixType(); ok {
		if err := matrix.MatrixTypeValidator(v); err != nil {
			return &ValidationError{Name: "matrix_type", err: fmt.Errorf(`ent: validator failed for field "Matrix.matrix_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Matrix.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Matrix.company"`)}
	}
	return nil
}

func (_c *MatrixCreate) sqlSave(ctx context.Context) (*Matrix, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatrixCreate) createSpec() (*Matrix, *sqlgraph.CreateSpec) {
	var (
		_node = &Matrix{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matrix.Table, sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(matrix.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(matrix.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.MatrixType(); ok {
		_spec.SetField(matrix.FieldMatrixType, field.TypeEnum, value)
		_node.MatrixType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matrix.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(matrix.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matrix.CompanyTable,
			Columns: []string{matrix.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntitySetsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CellsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatrixCreateBulk is the builder for creating many Matrix entities in bulk.
type MatrixCreateBulk struct {
	config
	err      error
	builders []*MatrixCreate
}

// Save creates the Matrix entities in the database.
func (_c *MatrixCreateBulk) Save(ctx context.Context) ([]*Matrix, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Matrix, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatrixMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MatrixCreateBulk) SaveX(ctx context.Context) []*Matrix {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
