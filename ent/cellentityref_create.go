// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// CellEntityRefCreate is the builder for creating a CellEntityRef entity.
type CellEntityRefCreate struct {
	config
	mutation *CellEntityRefMutation
	hooks    []Hook
}

// SetCellID sets the "cell_id" field.
func (_c *CellEntityRefCreate) SetCellID(v int) *CellEntityRefCreate {
	_c.mutation.SetCellID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *CellEntityRefCreate) SetRole(v string) *CellEntityRefCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *CellEntityRefCreate) SetEntityID(v int) *CellEntityRefCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCell sets the "cell" edge to the MatrixCell entity.
func (_c *CellEntityRefCreate) SetCell(v *MatrixCell) *CellEntityRefCreate {
	return _c.SetCellID(v.ID)
}

// Mutation returns the CellEntityRefMutation object of the builder.
func (_c *CellEntityRefCreate) Mutation() *CellEntityRefMutation {
	return _c.mutation
}

// Save creates the CellEntityRef in the database.
func (_c *CellEntityRefCreate) Save(ctx context.Context) (*CellEntityRef, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellEntityRefCreate) SaveX(ctx context.Context) *CellEntityRef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellEntityRefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellEntityRefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellEntityRefCreate) check() error {
	if _, ok := _c.mutation.CellID(); !ok {
		return &ValidationError{Name: "cell_id", err: errors.New(`ent: missing required field "CellEntityRef.cell_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "CellEntityRef.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := cellentityref.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "CellEntityRef.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "CellEntityRef.entity_id"`)}
	}
	if len(_c.mutation.CellIDs()) == 0 {
		return &ValidationError{Name: "cell", err: errors.New(`ent: missing required edge "CellEntityRef.cell"`)}
	}
	return nil
}

func (_c *CellEntityRefCreate) sqlSave(ctx context.Context) (*CellEntityRef, error) {
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

func (_c *CellEntityRefCreate) createSpec() (*CellEntityRef, *sqlgraph.CreateSpec) {
	var (
		_node = &CellEntityRef{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cellentityref.Table, sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(cellentityref.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(cellentityref.FieldEntityID, field.TypeInt, value)
		_node.EntityID = value
	}
	if nodes := _c.mutation.CellIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cellentityref.CellTable,
			Columns: []string{cellentityref.CellColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CellID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CellEntityRefCreateBulk is the builder for creating many CellEntityRef entities in bulk.
type CellEntityRefCreateBulk struct {
	config
	err      error
	builders []*CellEntityRefCreate
}

// Save creates the CellEntityRef entities in the database.
func (_c *CellEntityRefCreateBulk) Save(ctx context.Context) ([]*CellEntityRef, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CellEntityRef, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellEntityRefMutation)
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
func (_c *CellEntityRefCreateBulk) SaveX(ctx context.Context) []*CellEntityRef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellEntityRefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellEntityRefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
