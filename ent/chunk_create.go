// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
)

// ChunkCreate is the builder for creating a Chunk entity.
type ChunkCreate struct {
	config
	mutation *ChunkMutation
	hooks    []Hook
}

// SetChunkSetID sets the "chunk_set_id" field.
func (_c *ChunkCreate) SetChunkSetID(v int) *ChunkCreate {
	_c.mutation.SetChunkSetID(v)
	return _c
}

// SetChunkID sets the "chunk_id" field.
func (_c *ChunkCreate) SetChunkID(v string) *ChunkCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ChunkCreate) SetDocumentID(v int) *ChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ChunkCreate) SetCompanyID(v int) *ChunkCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetS3Key sets the "s3_key" field.
func (_c *ChunkCreate) SetS3Key(v string) *ChunkCreate {
	_c.mutation.SetS3Key(v)
	return _c
}

// SetChunkMetadata sets the "chunk_metadata" field.
func (_c *ChunkCreate) SetChunkMetadata(v map[string]interface{}) *ChunkCreate {
	_c.mutation.SetChunkMetadata(v)
	return _c
}

// SetChunkOrder sets the "chunk_order" field.
func (_c *ChunkCreate) SetChunkOrder(v int) *ChunkCreate {
	_c.mutation.SetChunkOrder(v)
	return _c
}

// SetChunkSet sets the "chunk_set" edge to the ChunkSet entity.
func (_c *ChunkCreate) SetChunkSet(v *ChunkSet) *ChunkCreate {
	return _c.SetChunkSetID(v.ID)
}

// Mutation returns the ChunkMutation object of the builder.
func (_c *ChunkCreate) Mutation() *ChunkMutation {
	return _c.mutation
}

// Save creates the Chunk in the database.
func (_c *ChunkCreate) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkCreate) SaveX(ctx context.Context) *Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkCreate) check() error {
	if _, ok := _c.mutation.ChunkSetID(); !ok {
		return &ValidationError{Name: "chunk_set_id", err: errors.New(`ent: missing required field "Chunk.chunk_set_id"`)}
	}
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "Chunk.chunk_id"`)}
	}
	if v, ok := _c.mutation.ChunkID(); ok {
		if err := chunk.ChunkIDValidator(v); err != nil {
			return &ValidationError{Name: "chunk_id", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Chunk.document_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Chunk.company_id"`)}
	}
	if _, ok := _c.mutation.S3Key(); !ok {
		return &ValidationError{Name: "s3_key", err: errors.New(`ent: missing required field "Chunk.s3_key"`)}
	}
	if _, ok := _c.mutation.ChunkOrder(); !ok {
		return &ValidationError{Name: "chunk_order", err: errors.New(`ent: missing required field "Chunk.chunk_order"`)}
	}
	if v, ok := _c.mutation.ChunkOrder(); ok {
		if err := chunk.ChunkOrderValidator(v); err != nil {
			return &ValidationError{Name: "chunk_order", err: fmt.Errorf(`ent: validator failed for field "Chunk.chunk_order": %w`, err)}
		}
	}
	if len(_c.mutation.ChunkSetIDs()) == 0 {
		return &ValidationError{Name: "chunk_set", err: errors.New(`ent: missing required edge "Chunk.chunk_set"`)}
	}
	return nil
}

func (_c *ChunkCreate) sqlSave(ctx context.Context) (*Chunk, error) {
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

func (_c *ChunkCreate) createSpec() (*Chunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Chunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunk.Table, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChunkID(); ok {
		_spec.SetField(chunk.FieldChunkID, field.TypeString, value)
		_node.ChunkID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(chunk.FieldDocumentID, field.TypeInt, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(chunk.FieldCompanyID, field.TypeInt, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.S3Key(); ok {
		_spec.SetField(chunk.FieldS3Key, field.TypeString, value)
		_node.S3Key = value
	}
	if value, ok := _c.mutation.ChunkMetadata(); ok {
		_spec.SetField(chunk.FieldChunkMetadata, field.TypeJSON, value)
		_node.ChunkMetadata = value
	}
	if value, ok := _c.mutation.ChunkOrder(); ok {
		_spec.SetField(chunk.FieldChunkOrder, field.TypeInt, value)
		_node.ChunkOrder = value
	}
	if nodes := _c.mutation.ChunkSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunk.ChunkSetTable,
			Columns: []string{chunk.ChunkSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChunkSetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChunkCreateBulk is the builder for creating many Chunk entities in bulk.
type ChunkCreateBulk struct {
	config
	err      error
	builders []*ChunkCreate
}

// Save creates the Chunk entities in the database.
func (_c *ChunkCreateBulk) Save(ctx context.Context) ([]*Chunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMutation)
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
func (_c *ChunkCreateBulk) SaveX(ctx context.Context) []*Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
