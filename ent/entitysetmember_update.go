// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// EntitySetMemberUpdate is the builder for updating EntitySetMember entities.
type EntitySetMemberUpdate struct {
	config
	hooks    []Hook
	mutation *EntitySetMemberMutation
}

// Where appends a list predicates to the EntitySetMemberUpdate builder.
func (_u *EntitySetMemberUpdate) Where(ps ...predicate.EntitySetMember) *EntitySetMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntitySetMemberUpdate) SetEntityType(v entitysetmember.EntityType) *EntitySetMemberUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntitySetMemberUpdate) SetNillableEntityType(v *entitysetmember.EntityType) *EntitySetMemberUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetMemberOrder sets the "member_order" field.
func (_u *EntitySetMemberUpdate) SetMemberOrder(v int) *EntitySetMemberUpdate {
	_u.mutation.ResetMemberOrder()
	_u.mutation.SetMemberOrder(v)
	return _u
}

// SetNillableMemberOrder sets the "member_order" field if the given value is not nil.
func (_u *EntitySetMemberUpdate) SetNillableMemberOrder(v *int) *EntitySetMemberUpdate {
	if v != nil {
		_u.SetMemberOrder(*v)
	}
	return _u
}

// AddMemberOrder adds value to the "member_order" field.
func (_u *EntitySetMemberUpdate) AddMemberOrder(v int) *EntitySetMemberUpdate {
	_u.mutation.AddMemberOrder(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *EntitySetMemberUpdate) SetLabel(v string) *EntitySetMemberUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *EntitySetMemberUpdate) SetNillableLabel(v *string) *EntitySetMemberUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *EntitySetMemberUpdate) ClearLabel() *EntitySetMemberUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// Mutation returns the EntitySetMemberMutation object of the builder.
func (_u *EntitySetMemberUpdate) Mutation() *EntitySetMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitySetMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySetMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitySetMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySetMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySetMemberUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entitysetmember.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemberOrder(); ok {
		if err := entitysetmember.MemberOrderValidator(v); err != nil {
			return &ValidationError{Name: "member_order", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.member_order": %w`, err)}
		}
	}
	if _u.mutation.EntitySetCleared() && len(_u.mutation.EntitySetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySetMember.entity_set"`)
	}
	return nil
}

func (_u *EntitySetMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitysetmember.Table, entitysetmember.Columns, sqlgraph.NewFieldSpec(entitysetmember.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitysetmember.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MemberOrder(); ok {
		_spec.SetField(entitysetmember.FieldMemberOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberOrder(); ok {
		_spec.AddField(entitysetmember.FieldMemberOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(entitysetmember.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(entitysetmember.FieldLabel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysetmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitySetMemberUpdateOne is the builder for updating a single EntitySetMember entity.
type EntitySetMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitySetMemberMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *EntitySetMemberUpdateOne) SetEntityType(v entitysetmember.EntityType) *EntitySetMemberUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntitySetMemberUpdateOne) SetNillableEntityType(v *entitysetmember.EntityType) *EntitySetMemberUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetMemberOrder sets the "member_order" field.
func (_u *EntitySetMemberUpdateOne) SetMemberOrder(v int) *EntitySetMemberUpdateOne {
	_u.mutation.ResetMemberOrder()
	_u.mutation.SetMemberOrder(v)
	return _u
}

// SetNillableMemberOrder sets the "member_order" field if the given value is not nil.
func (_u *EntitySetMemberUpdateOne) SetNillableMemberOrder(v *int) *EntitySetMemberUpdateOne {
	if v != nil {
		_u.SetMemberOrder(*v)
	}
	return _u
}

// AddMemberOrder adds value to the "member_order" field.
func (_u *EntitySetMemberUpdateOne) AddMemberOrder(v int) *EntitySetMemberUpdateOne {
	_u.mutation.AddMemberOrder(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *EntitySetMemberUpdateOne) SetLabel(v string) *EntitySetMemberUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *EntitySetMemberUpdateOne) SetNillableLabel(v *string) *EntitySetMemberUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *EntitySetMemberUpdateOne) ClearLabel() *EntitySetMemberUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// Mutation returns the EntitySetMemberMutation object of the builder.
func (_u *EntitySetMemberUpdateOne) Mutation() *EntitySetMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitySetMemberUpdate builder.
func (_u *EntitySetMemberUpdateOne) Where(ps ...predicate.EntitySetMember) *EntitySetMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitySetMemberUpdateOne) Select(field string, fields ...string) *EntitySetMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitySetMember entity.
func (_u *EntitySetMemberUpdateOne) Save(ctx context.Context) (*EntitySetMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySetMemberUpdateOne) SaveX(ctx context.Context) *EntitySetMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitySetMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySetMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySetMemberUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entitysetmember.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemberOrder(); ok {
		if err := entitysetmember.MemberOrderValidator(v); err != nil {
			return &ValidationError{Name: "member_order", err: fmt.Errorf(`ent: validator failed for field "EntitySetMember.member_order": %w`, err)}
		}
	}
	if _u.mutation.EntitySetCleared() && len(_u.mutation.EntitySetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySetMember.entity_set"`)
	}
	return nil
}

func (_u *EntitySetMemberUpdateOne) sqlSave(ctx context.Context) (_node *EntitySetMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitysetmember.Table, entitysetmember.Columns, sqlgraph.NewFieldSpec(entitysetmember.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitySetMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitysetmember.FieldID)
		for _, f := range fields {
			if !entitysetmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitysetmember.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitysetmember.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MemberOrder(); ok {
		_spec.SetField(entitysetmember.FieldMemberOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberOrder(); ok {
		_spec.AddField(entitysetmember.FieldMemberOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(entitysetmember.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(entitysetmember.FieldLabel, field.TypeString)
	}
	_node = &EntitySetMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysetmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
