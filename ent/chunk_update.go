// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ChunkUpdate is the builder for updating Chunk entities.
type ChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkMutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdate) Where(ps ...predicate.Chunk) *ChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkUpdate) SetChunkID(v string) *ChunkUpdate {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableChunkID(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *ChunkUpdate) SetS3Key(v string) *ChunkUpdate {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableS3Key(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetChunkMetadata sets the "chunk_metadata" field.
func (_u *ChunkUpdate) SetChunkMetadata(v map[string]interface{}) *ChunkUpdate {
	_u.mutation.SetChunkMetadata(v)
	return _u
}

// ClearChunkMetadata clears the value of the "chunk_metadata" field.
func (_u *ChunkUpdate) ClearChunkMetadata() *ChunkUpdate {
	_u.mutation.ClearChunkMetadata()
	return _u
}

// SetChunkOrder sets the "chunk_order" field.
func (_u *ChunkUpdate) SetChunkOrder(v int) *ChunkUpdate {
	_u.mutation.ResetChunkOrder()
	_u.mutation.SetChunkOrder(v)
	return _u
}

// SetNillableChunkOrder sets the "chunk_order" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableChunkOrder(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetChunkOrder(*v)
	}
	return _u
}

// AddChunkOrder adds value to the "chunk_order" field.
func (_u *ChunkUpdate) AddChunkOrder(v int) *ChunkUpdate {
	_u.mutation.AddChunkOrder(v)
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdate) Mutation() *ChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdate) check() error {
	if v, ok := _u.mutation.ChunkID(); ok {
		if err := chunk.ChunkIDValidator(v); err != nil {
			return &ValidationError{Name: "chunk_id", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkOrder(); ok {
		if err := chunk.ChunkOrderValidator(v); err != nil {
			return &ValidationError{Name: "chunk_order", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_order": %w`, err)}
		}
	}
	if _u.mutation.ChunkSetCleared() && len(_u.mutation.ChunkSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.chunk_set"`)
	}
	return nil
}

func (_u *ChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(chunk.FieldChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(chunk.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChunkMetadata(); ok {
		_spec.SetField(chunk.FieldChunkMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ChunkMetadataCleared() {
		_spec.ClearField(chunk.FieldChunkMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChunkOrder(); ok {
		_spec.SetField(chunk.FieldChunkOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkOrder(); ok {
		_spec.AddField(chunk.FieldChunkOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkUpdateOne is the builder for updating a single Chunk entity.
type ChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkMutation
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkUpdateOne) SetChunkID(v string) *ChunkUpdateOne {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableChunkID(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *ChunkUpdateOne) SetS3Key(v string) *ChunkUpdateOne {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableS3Key(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetChunkMetadata sets the "chunk_metadata" field.
func (_u *ChunkUpdateOne) SetChunkMetadata(v map[string]interface{}) *ChunkUpdateOne {
	_u.mutation.SetChunkMetadata(v)
	return _u
}

// ClearChunkMetadata clears the value of the "chunk_metadata" field.
func (_u *ChunkUpdateOne) ClearChunkMetadata() *ChunkUpdateOne {
	_u.mutation.ClearChunkMetadata()
	return _u
}

// SetChunkOrder sets the "chunk_order" field.
func (_u *ChunkUpdateOne) SetChunkOrder(v int) *ChunkUpdateOne {
	_u.mutation.ResetChunkOrder()
	_u.mutation.SetChunkOrder(v)
	return _u
}

// SetNillableChunkOrder sets the "chunk_order" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableChunkOrder(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetChunkOrder(*v)
	}
	return _u
}

// AddChunkOrder adds value to the "chunk_order" field.
func (_u *ChunkUpdateOne) AddChunkOrder(v int) *ChunkUpdateOne {
	_u.mutation.AddChunkOrder(v)
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdateOne) Mutation() *ChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdateOne) Where(ps ...predicate.Chunk) *ChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkUpdateOne) Select(field string, fields ...string) *ChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chunk entity.
func (_u *ChunkUpdateOne) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdateOne) SaveX(ctx context.Context) *Chunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdateOne) check() error {
	if v, ok := _u.mutation.ChunkID(); ok {
		if err := chunk.ChunkIDValidator(v); err != nil {
			return &ValidationError{Name: "chunk_id", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkOrder(); ok {
		if err := chunk.ChunkOrderValidator(v); err != nil {
			return &ValidationError{Name: "chunk_order", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_order": %w`, err)}
		}
	}
	if _u.mutation.ChunkSetCleared() && len(_u.mutation.ChunkSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.chunk_set"`)
	}
	return nil
}

func (_u *ChunkUpdateOne) sqlSave(ctx context.Context) (_node *Chunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunk.FieldID)
		for _, f := range fields {
			if !chunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunk.FieldID {
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
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(chunk.FieldChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(chunk.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChunkMetadata(); ok {
		_spec.SetField(chunk.FieldChunkMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ChunkMetadataCleared() {
		_spec.ClearField(chunk.FieldChunkMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChunkOrder(); ok {
		_spec.SetField(chunk.FieldChunkOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkOrder(); ok {
		_spec.AddField(chunk.FieldChunkOrder, field.TypeInt, value)
	}
	_node = &Chunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
