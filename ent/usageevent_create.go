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
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
)

// UsageEventCreate is the builder for creating a UsageEvent entity.
type UsageEventCreate struct {
	config
	mutation *UsageEventMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *UsageEventCreate) SetCompanyID(v int) *UsageEventCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UsageEventCreate) SetUserID(v int) *UsageEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableUserID(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *UsageEventCreate) SetEventType(v usageevent.EventType) *UsageEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *UsageEventCreate) SetQuantity(v int) *UsageEventCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableQuantity(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *UsageEventCreate) SetFileSizeBytes(v int64) *UsageEventCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableFileSizeBytes(v *int64) *UsageEventCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *UsageEventCreate) SetMetadata(v map[string]interface{}) *UsageEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageEventCreate) SetCreatedAt(v time.Time) *UsageEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCreatedAt(v *time.Time) *UsageEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *UsageEventCreate) SetCompany(v *Company) *UsageEventCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the UsageEventMutation object of the builder.
func (_c *UsageEventCreate) Mutation() *UsageEventMutation {
	return _c.mutation
}

// Save creates the UsageEvent in the database.
func (_c *UsageEventCreate) Save(ctx context.Context) (*UsageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageEventCreate) SaveX(ctx context.Context) *UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageEventCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := usageevent.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usageevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageEventCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "UsageEvent.company_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "UsageEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := usageevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "UsageEvent.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := usageevent.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageEvent.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "UsageEvent.company"`)}
	}
	return nil
}

func (_c *UsageEventCreate) sqlSave(ctx context.Context) (*UsageEvent, error) {
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

func (_c *UsageEventCreate) createSpec() (*UsageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageevent.Table, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usageevent.FieldUserID, field.TypeInt, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(usageevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(usageevent.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(usageevent.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(usageevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usageevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageevent.CompanyTable,
			Columns: []string{usageevent.CompanyColumn},
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
	return _node, _spec
}

// UsageEventCreateBulk is the builder for creating many UsageEvent entities in bulk.
type UsageEventCreateBulk struct {
	config
	err      error
	builders []*UsageEventCreate
}

// Save creates the UsageEvent entities in the database.
func (_c *UsageEventCreateBulk) Save(ctx context.Context) ([]*UsageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEventMutation)
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
func (_c *UsageEventCreateBulk) SaveX(ctx context.Context) []*UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
