// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// EntitySetUpdate is the builder for updating EntitySet entities.
type EntitySetUpdate struct {
	config
	hooks    []Hook
	mutation *EntitySetMutation
}

// Where appends a list predicates to the EntitySetUpdate builder.
func (_u *EntitySetUpdate) Where(ps ...predicate.EntitySet) *EntitySetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EntitySetUpdate) SetName(v string) *EntitySetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntitySetUpdate) SetNillableName(v *string) *EntitySetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntitySetUpdate) SetEntityType(v entityset.EntityType) *EntitySetUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntitySetUpdate) SetNillableEntityType(v *entityset.EntityType) *EntitySetUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// AddMemberIDs adds the "members" edge to the EntitySetMember entity by IDs.
func (_u *EntitySetUpdate) AddMemberIDs(ids ...int) *EntitySetUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the EntitySetMember entity.
func (_u *EntitySetUpdate) AddMembers(v ...*EntitySetMember) *EntitySetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the EntitySetMutation object of the builder.
func (_u *EntitySetUpdate) Mutation() *EntitySetMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the EntitySetMember entity.
func (_u *EntitySetUpdate) ClearMembers() *EntitySetUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to EntitySetMember entities by IDs.
func (_u *EntitySetUpdate) RemoveMemberIDs(ids ...int) *EntitySetUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to EntitySetMember entities.
func (_u *EntitySetUpdate) RemoveMembers(v ...*EntitySetMember) *EntitySetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitySetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitySetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entityset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntitySet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entityset.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySet.entity_type": %w`, err)}
		}
	}
	if _u.mutation.MatrixCleared() && len(_u.mutation.MatrixIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySet.matrix"`)
	}
	return nil
}

func (_u *EntitySetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityset.Table, entityset.Columns, sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entityset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entityset.FieldEntityType, field.TypeEnum, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitySetUpdateOne is the builder for updating a single EntitySet entity.
type EntitySetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitySetMutation
}

// SetName sets the "name" field.
func (_u *EntitySetUpdateOne) SetName(v string) *EntitySetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntitySetUpdateOne) SetNillableName(v *string) *EntitySetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntitySetUpdateOne) SetEntityType(v entityset.EntityType) *EntitySetUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntitySetUpdateOne) SetNillableEntityType(v *entityset.EntityType) *EntitySetUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// AddMemberIDs adds the "members" edge to the EntitySetMember entity by IDs.
func (_u *EntitySetUpdateOne) AddMemberIDs(ids ...int) *EntitySetUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the EntitySetMember entity.
func (_u *EntitySetUpdateOne) AddMembers(v ...*EntitySetMember) *EntitySetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the EntitySetMutation object of the builder.
func (_u *EntitySetUpdateOne) Mutation() *EntitySetMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the EntitySetMember entity.
func (_u *EntitySetUpdateOne) ClearMembers() *EntitySetUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to EntitySetMember entities by IDs.
func (_u *EntitySetUpdateOne) RemoveMemberIDs(ids ...int) *EntitySetUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to EntitySetMember entities.
func (_u *EntitySetUpdateOne) RemoveMembers(v ...*EntitySetMember) *EntitySetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the EntitySetUpdate builder.
func (_u *EntitySetUpdateOne) Where(ps ...predicate.EntitySet) *EntitySetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitySetUpdateOne) Select(field string, fields ...string) *EntitySetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitySet entity.
func (_u *EntitySetUpdateOne) Save(ctx context.Context) (*EntitySet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySetUpdateOne) SaveX(ctx context.Context) *EntitySet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitySetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entityset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntitySet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entityset.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySet.entity_type": %w`, err)}
		}
	}
	if _u.mutation.MatrixCleared() && len(_u.mutation.MatrixIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySet.matrix"`)
	}
	return nil
}

func (_u *EntitySetUpdateOne) sqlSave(ctx context.Context) (_node *EntitySet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityset.Table, entityset.Columns, sqlgraph.NewFieldSpec(entityset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitySet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityset.FieldID)
		for _, f := range fields {
			if !entityset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityset.FieldID {
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
		_spec.SetField(entityset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entityset.FieldEntityType, field.TypeEnum, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntitySet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
