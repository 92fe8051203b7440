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
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ChunkSetUpdate is the builder for updating ChunkSet entities.
type ChunkSetUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkSetMutation
}

// Where appends a list predicates to the ChunkSetUpdate builder.
func (_u *ChunkSetUpdate) Where(ps ...predicate.ChunkSet) *ChunkSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkingStrategy sets the "chunking_strategy" field.
func (_u *ChunkSetUpdate) SetChunkingStrategy(v string) *ChunkSetUpdate {
	_u.mutation.SetChunkingStrategy(v)
	return _u
}

// SetNillableChunkingStrategy sets the "chunking_strategy" field if the given value is not nil.
func (_u *ChunkSetUpdate) SetNillableChunkingStrategy(v *string) *ChunkSetUpdate {
	if v != nil {
		_u.SetChunkingStrategy(*v)
	}
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *ChunkSetUpdate) SetTotalChunks(v int) *ChunkSetUpdate {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *ChunkSetUpdate) SetNillableTotalChunks(v *int) *ChunkSetUpdate {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *ChunkSetUpdate) AddTotalChunks(v int) *ChunkSetUpdate {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetS3Prefix sets the "s3_prefix" field.
func (_u *ChunkSetUpdate) SetS3Prefix(v string) *ChunkSetUpdate {
	_u.mutation.SetS3Prefix(v)
	return _u
}

// SetNillableS3Prefix sets the "s3_prefix" field if the given value is not nil.
func (_u *ChunkSetUpdate) SetNillableS3Prefix(v *string) *ChunkSetUpdate {
	if v != nil {
		_u.SetS3Prefix(*v)
	}
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *ChunkSetUpdate) AddChunkIDs(ids ...int) *ChunkSetUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *ChunkSetUpdate) AddChunks(v ...*Chunk) *ChunkSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the ChunkSetMutation object of the builder.
func (_u *ChunkSetUpdate) Mutation() *ChunkSetMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *ChunkSetUpdate) ClearChunks() *ChunkSetUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *ChunkSetUpdate) RemoveChunkIDs(ids ...int) *ChunkSetUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *ChunkSetUpdate) RemoveChunks(v ...*Chunk) *ChunkSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkSetUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkSet.document"`)
	}
	return nil
}

func (_u *ChunkSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkset.Table, chunkset.Columns, sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkingStrategy(); ok {
		_spec.SetField(chunkset.FieldChunkingStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(chunkset.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(chunkset.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.S3Prefix(); ok {
		_spec.SetField(chunkset.FieldS3Prefix, field.TypeString, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkSetUpdateOne is the builder for updating a single ChunkSet entity.
type ChunkSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkSetMutation
}

// SetChunkingStrategy sets the "chunking_strategy" field.
func (_u *ChunkSetUpdateOne) SetChunkingStrategy(v string) *ChunkSetUpdateOne {
	_u.mutation.SetChunkingStrategy(v)
	return _u
}

// SetNillableChunkingStrategy sets the "chunking_strategy" field if the given value is not nil.
func (_u *ChunkSetUpdateOne) SetNillableChunkingStrategy(v *string) *ChunkSetUpdateOne {
	if v != nil {
		_u.SetChunkingStrategy(*v)
	}
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *ChunkSetUpdateOne) SetTotalChunks(v int) *ChunkSetUpdateOne {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *ChunkSetUpdateOne) SetNillableTotalChunks(v *int) *ChunkSetUpdateOne {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *ChunkSetUpdateOne) AddTotalChunks(v int) *ChunkSetUpdateOne {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetS3Prefix sets the "s3_prefix" field.
func (_u *ChunkSetUpdateOne) SetS3Prefix(v string) *ChunkSetUpdateOne {
	_u.mutation.SetS3Prefix(v)
	return _u
}

// SetNillableS3Prefix sets the "s3_prefix" field if the given value is not nil.
func (_u *ChunkSetUpdateOne) SetNillableS3Prefix(v *string) *ChunkSetUpdateOne {
	if v != nil {
		_u.SetS3Prefix(*v)
	}
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *ChunkSetUpdateOne) AddChunkIDs(ids ...int) *ChunkSetUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *ChunkSetUpdateOne) AddChunks(v ...*Chunk) *ChunkSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the ChunkSetMutation object of the builder.
func (_u *ChunkSetUpdateOne) Mutation() *ChunkSetMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *ChunkSetUpdateOne) ClearChunks() *ChunkSetUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *ChunkSetUpdateOne) RemoveChunkIDs(ids ...int) *ChunkSetUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *ChunkSetUpdateOne) RemoveChunks(v ...*Chunk) *ChunkSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the ChunkSetUpdate builder.
func (_u *ChunkSetUpdateOne) Where(ps ...predicate.ChunkSet) *ChunkSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkSetUpdateOne) Select(field string, fields ...string) *ChunkSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChunkSet entity.
func (_u *ChunkSetUpdateOne) Save(ctx context.Context) (*ChunkSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkSetUpdateOne) SaveX(ctx context.Context) *ChunkSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkSetUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkSet.document"`)
	}
	return nil
}

func (_u *ChunkSetUpdateOne) sqlSave(ctx context.Context) (_node *ChunkSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkset.Table, chunkset.Columns, sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChunkSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunkset.FieldID)
		for _, f := range fields {
			if !chunkset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunkset.FieldID {
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
	if value, ok := _u.mutation.ChunkingStrategy(); ok {
		_spec.SetField(chunkset.FieldChunkingStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(chunkset.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(chunkset.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.S3Prefix(); ok {
		_spec.SetField(chunkset.FieldS3Prefix, field.TypeString, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chunkset.ChunksTable,
			Columns: []string{chunkset.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChunkSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
