// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
)

// EntitySetCreate is the builder for creating a EntitySet entity.
type EntitySetCreate struct {
	config
	mutation *EntitySetMutation
	hooks    []Hook
}

// SetMatrixID sets the "matrix_id" field.
func (_c *EntitySetCreate) SetMatrixID(v int) *EntitySetCreate {
	_c.mutation.SetMatrixID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EntitySetCreate) SetName(v string) *EntitySetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntitySetCreate) SetEntityType(v entityset.EntityType) *EntitySetCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetMatrix sets the "matrix" edge to the Matrix entity.
func (_c *EntitySetCreate) SetMatrix(v *Matrix) *EntitySetCreate {
	return _c.SetMatrixID(v.ID)
}

// AddMemberIDs adds the "members" edge to the EntitySetMember entity by IDs.
func (_c *EntitySetCreate) AddMemberIDs(ids ...int) *EntitySetCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the EntitySetMember entity.
func (_c *EntitySetCreate) AddMembers(v ...*EntitySetMember) *EntitySetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// Mutation returns the EntitySetMutation object of the builder.
func (_c *EntitySetCreate) Mutation() *EntitySetMutation {
	return _c.mutation
}

// Save creates the EntitySet in the database.
func (_c *EntitySetCreate) Save(ctx context.Context) (*EntitySet, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitySetCreate) SaveX(ctx context.Context) *EntitySet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitySetCreate) check() error {
	if _, ok := _c.mutation.MatrixID(); !ok {
		return &ValidationError{Name: "matrix_id", err: errors.New(`ent: missing required field "EntitySet.matrix_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EntitySet.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := entityset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntitySet.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntitySet.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entityset.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySet.entity_type": %w`, err)}
		}
	}
	if len(_c.mutation.MatrixIDs()) == 0 {
		return &ValidationError{Name: "matrix", err: errors.New(`ent: missing required edge "EntitySet.matrix"`)}
	}
	return nil
}

func (_c *EntitySetCreate) sqlSave(ctx context.Context) (*EntitySet, error) {
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

func (_c *EntitySetCreate) createSpec() (*EntitySet, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitySet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityset.Table, sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entityset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entityset.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if nodes := _c.mutation.MatrixIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityset.MatrixTable,
			Columns: []string{entityset.MatrixColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MatrixID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entityset.MembersTable,
			Columns: []string{entityset.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysetmember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntitySetCreateBulk is the builder for creating many EntitySet entities in bulk.
type EntitySetCreateBulk struct {
	config
	err      error
	builders []*EntitySetCreate
}

// Save creates the EntitySet entities in the database.
func (_c *EntitySetCreateBulk) Save(ctx context.Context) ([]*EntitySet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitySet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitySetMutation)
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
func (_c *EntitySetCreateBulk) SaveX(ctx context.Context) []*EntitySet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
