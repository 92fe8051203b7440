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
)

// EntitySetMemberCreate is the builder for creating a EntitySetMember entity.
type EntitySetMemberCreate struct {
	config
	mutation *EntitySetMemberMutation
	hooks    []Hook
}

// SetEntitySetID sets the "entity_set_id" field.
func (_c *EntitySetMemberCreate) SetEntitySetID(v int) *EntitySetMemberCreate {
	_c.mutation.SetEntitySetID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntitySetMemberCreate) SetEntityID(v int) *EntitySetMemberCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntitySetMemberCreate) SetEntityType(v entitysetmember.EntityType) *EntitySetMemberCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetMemberOrder sets the "member_order" field.
func (_c *EntitySetMemberCreate) SetMemberOrder(v int) *EntitySetMemberCreate {
	_c.mutation.SetMemberOrder(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *EntitySetMemberCreate) SetLabel(v string) *EntitySetMemberCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *EntitySetMemberCreate) SetNillableLabel(v *string) *EntitySetMemberCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetEntitySet sets the "entity_set" edge to the EntitySet entity.
func (_c *EntitySetMemberCreate) SetEntitySet(v *EntitySet) *EntitySetMemberCreate {
	return _c.SetEntitySetID(v.ID)
}

// Mutation returns the EntitySetMemberMutation object of the builder.
func (_c *EntitySetMemberCreate) Mutation() *EntitySetMemberMutation {
	return _c.mutation
}

// Save creates the EntitySetMember in the database.
func (_c *EntitySetMemberCreate) Save(ctx context.Context) (*EntitySetMember, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitySetMemberCreate) SaveX(ctx context.Context) *EntitySetMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySetMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySetMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitySetMemberCreate) check() error {
	if _, ok := _c.mutation.EntitySetID(); !ok {
		return &ValidationError{Name: "entity_set_id", err: errors.New(`ent: missing required field "EntitySetMember.entity_set_id"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntitySetMember.entity_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntitySetMember.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entitysetmember.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MemberOrder(); !ok {
		return &ValidationError{Name: "member_order", err: errors.New(`ent: missing required field "EntitySetMember.member_order"`)}
	}
	if v, ok := _c.mutation.MemberOrder(); ok {
		if err := entitysetmember.MemberOrderValidator(v); err != nil {
			return &ValidationError{Name: "member_order", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.member_order": %w`, err)}
		}
	}
	if len(_c.mutation.EntitySetIDs()) == 0 {
		return &ValidationError{Name: "entity_set", err: errors.New(`ent: missing required edge "EntitySetMember.entity_set"`)}
	}
	return nil
}

func (_c *EntitySetMemberCreate) sqlSave(ctx context.Context) (*EntitySetMember, error) {
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

func (_c *EntitySetMemberCreate) createSpec() (*EntitySetMember, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitySetMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitysetmember.Table, sqlgraph.NewFieldSpec(entitysetmember.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitysetmember.FieldEntityID, field.TypeInt, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitysetmember.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.MemberOrder(); ok {
		_spec.SetField(entitysetmember.FieldMemberOrder, field.TypeInt, value)
		_node.MemberOrder = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(entitysetmember.FieldLabel, field.TypeString, value)
		_node.Label = &value
	}
	if nodes := _c.mutation.EntitySetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitysetmember.EntitySetTable,
			Columns: []string{entitysetmember.EntitySetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EntitySetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntitySetMemberCreateBulk is the builder for creating many EntitySetMember entities in bulk.
type EntitySetMemberCreateBulk struct {
	config
	err      error
	builders []*EntitySetMemberCreate
}

// Save creates the EntitySetMember entities in the database.
func (_c *EntitySetMemberCreateBulk) Save(ctx context.Context) ([]*EntitySetMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitySetMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitySetMemberMutation)
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
func (_c *EntitySetMemberCreateBulk) SaveX(ctx context.Context) []*EntitySetMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySetMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySetMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
