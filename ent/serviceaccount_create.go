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
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
)

// ServiceAccountCreate is the builder for creating a ServiceAccount entity.
type ServiceAccountCreate struct {
	config
	mutation *ServiceAccountMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *ServiceAccountCreate) SetCompanyID(v int) *ServiceAccountCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *ServiceAccountCreate) SetExecutionID(v string) *ServiceAccountCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *ServiceAccountCreate) SetAPIKeyHash(v string) *ServiceAccountCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServiceAccountCreate) SetIsActive(v bool) *ServiceAccountCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableIsActive(v *bool) *ServiceAccountCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceAccountCreate) SetCreatedAt(v time.Time) *ServiceAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableCreatedAt(v *time.Time) *ServiceAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ServiceAccountCreate) SetDeletedAt(v time.Time) *ServiceAccountCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableDeletedAt(v *time.Time) *ServiceAccountCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *ServiceAccountCreate) SetCompany(v *Company) *ServiceAccountCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the ServiceAccountMutation object of the builder.
func (_c *ServiceAccountCreate) Mutation() *ServiceAccountMutation {
	return _c.mutation
}

// Save creates the ServiceAccount in the database.
func (_c *ServiceAccountCreate) Save(ctx context.Context) (*ServiceAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceAccountCreate) SaveX(ctx context.Context) *ServiceAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceAccountCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := serviceaccount.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceAccountCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "ServiceAccount.company_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ServiceAccount.execution_id"`)}
	}
	if _, ok := _c.mutation.APIKeyHash(); !ok {
		return &ValidationError{Name: "api_key_hash", err: errors.New(`ent: missing required field "ServiceAccount.api_key_hash"`)}
	}
	if v, ok := _c.mutation.APIKeyHash(); ok {
		if err := serviceaccount.APIKeyHashValidator(v); err != nil {
			return &ValidationError{Name: "api_key_hash", err: fmt.Errorf(`ent: validator failed for field "ServiceAccount.api_key_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ServiceAccount.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceAccount.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "ServiceAccount.company"`)}
	}
	return nil
}

func (_c *ServiceAccountCreate) sqlSave(ctx context.Context) (*ServiceAccount, error) {
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

func (_c *ServiceAccountCreate) createSpec() (*ServiceAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceaccount.Table, sqlgraph.NewFieldSpec(serviceaccount.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(serviceaccount.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(serviceaccount.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(serviceaccount.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(serviceaccount.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   serviceaccount.CompanyTable,
			Columns: []string{serviceaccount.CompanyColumn},
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

// ServiceAccountCreateBulk is the builder for creating many ServiceAccount entities in bulk.
type ServiceAccountCreateBulk struct {
	config
	err      error
	builders []*ServiceAccountCreate
}

// Save creates the ServiceAccount entities in the database.
func (_c *ServiceAccountCreateBulk) Save(ctx context.Context) ([]*ServiceAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceAccountMutation)
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
func (_c *ServiceAccountCreateBulk) SaveX(ctx context.Context) []*ServiceAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
