// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/document"
)

// ChunkSetCreate is the builder for creating a ChunkSet entity.
type ChunkSetCreate struct {
	config
	mutation *ChunkSetMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ChunkSetCreate) SetDocumentID(v int) *ChunkSetCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ChunkSetCreate) SetCompanyID(v int) *ChunkSetCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetChunkingStrategy sets the "chunking_strategy" field.
func (_c *ChunkSetCreate) SetChunkingStrategy(v string) *ChunkSetCreate {
	_c.mutation.SetChunkingStrategy(v)
	return _c
}

// SetTotalChunks sets the "total_chunks" field.
func (_c *ChunkSetCreate) SetTotalChunks(v int) *ChunkSetCreate {
	_c.mutation.SetTotalChunks(v)
	return _c
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_c *ChunkSetCreate) SetNillableTotalChunks(v *int) *ChunkSetCreate {
	if v != nil {
		_c.SetTotalChunks(*v)
	}
	return _c
}

// SetS3Prefix sets the "s3_prefix" field.
func (_c *ChunkSetCreate) SetS3Prefix(v string) *ChunkSetCreate {
	_c.mutation.SetS3Prefix(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChunkSetCreate) SetCreatedAt(v time.Time) *ChunkSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChunkSetCreate) SetNillableCreatedAt(v *time.Time) *ChunkSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ChunkSetCreate) SetDocument(v *Document) *ChunkSetCreate {
	return _c.SetDocumentID(v.ID)
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_c *ChunkSetCreate) AddChunkIDs(ids ...int) *ChunkSetCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_c *ChunkSetCreate) AddChunks(v ...*Chunk) *ChunkSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the ChunkSetMutation object of the builder.
func (_c *ChunkSetCreate) Mutation() *ChunkSetMutation {
	return _c.mutation
}

// Save creates the ChunkSet in the database.
func (_c *ChunkSetCreate) Save(ctx context.Context) (*ChunkSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkSetCreate) SaveX(ctx context.Context) *ChunkSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkSetCreate) defaults() {
	if _, ok := _c.mutation.TotalChunks(); !ok {
		v := chunkset.DefaultTotalChunks
		_c.mutation.SetTotalChunks(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chunkset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkSetCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ChunkSet.document_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "ChunkSet.company_id"`)}
	}
	if _, ok := _c.mutation.ChunkingStrategy(); !ok {
		return &ValidationError{Name: "chunking_strategy", err: errors.New(`ent: missing required field "ChunkSet.chunking_strategy"`)}
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		return &ValidationError{Name: "total_chunks", err: errors.New(`ent: missing required field "ChunkSet.total_chunks"`)}
	}
	if _, ok := _c.mutation.S3Prefix(); !ok {
		return &ValidationError{Name: "s3_prefix", err: errors.New(`ent: missing required field "ChunkSet.s3_prefix"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChunkSet.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ChunkSet.document"`)}
	}
	return nil
}

func (_c *ChunkSetCreate) sqlSave(ctx context.Context) (*ChunkSet, error) {
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

func (_c *ChunkSetCreate) createSpec() (*ChunkSet, *sqlgraph.CreateSpec) {
	var (
		_node = &ChunkSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunkset.Table, sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(chunkset.FieldCompanyID, field.TypeInt, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.ChunkingStrategy(); ok {
		_spec.SetField(chunkset.FieldChunkingStrategy, field.TypeString, value)
		_node.ChunkingStrategy = value
	}
	if value, ok := _c.mutation.TotalChunks(); ok {
		_spec.SetField(chunkset.FieldTotalChunks, field.TypeInt, value)
		_node.TotalChunks = value
	}
	if value, ok := _c.mutation.S3Prefix(); ok {
		_spec.SetField(chunkset.FieldS3Prefix, field.TypeString, value)
		_node.S3Prefix = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chunkset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunkset.DocumentTable,
			Columns: []string{chunkset.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChunkSetCreateBulk is the builder for creating many ChunkSet entities in bulk.
type ChunkSetCreateBulk struct {
	config
	err      error
	builders []*ChunkSetCreate
}

// Save creates the ChunkSet entities in the database.
func (_c *ChunkSetCreateBulk) Save(ctx context.Context) ([]*ChunkSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChunkSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkSetMutation)
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
func (_c *ChunkSetCreateBulk) SaveX(ctx context.Context) []*ChunkSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
