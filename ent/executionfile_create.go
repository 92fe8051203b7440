// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
)

// ExecutionFileCreate is the builder for creating a ExecutionFile entity.
type ExecutionFileCreate struct {
	config
	mutation *ExecutionFileMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionFileCreate) SetExecutionID(v int) *ExecutionFileCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ExecutionFileCreate) SetFileName(v string) *ExecutionFileCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *ExecutionFileCreate) SetStorageKey(v string) *ExecutionFileCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetFileKind sets the "file_kind" field.
func (_c *ExecutionFileCreate) SetFileKind(v executionfile.FileKind) *ExecutionFileCreate {
	_c.mutation.SetFileKind(v)
	return _c
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_c *ExecutionFileCreate) SetNillableFileKind(v *executionfile.FileKind) *ExecutionFileCreate {
	if v != nil {
		_c.SetFileKind(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ExecutionFileCreate) SetSizeBytes(v int64) *ExecutionFileCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *ExecutionFileCreate) SetNillableSizeBytes(v *int64) *ExecutionFileCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionFileCreate) SetCreatedAt(v time.Time) *ExecutionFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionFileCreate) SetNillableCreatedAt(v *time.Time) *ExecutionFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *ExecutionFileCreate) SetExecution(v *WorkflowExecution) *ExecutionFileCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ExecutionFileMutation object of the builder.
func (_c *ExecutionFileCreate) Mutation() *ExecutionFileMutation {
	return _c.mutation
}

// Save creates the ExecutionFile in the database.
func (_c *ExecutionFileCreate) Save(ctx context.Context) (*ExecutionFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionFileCreate) SaveX(ctx context.Context) *ExecutionFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionFileCreate) defaults() {
	if _, ok := _c.mutation.FileKind(); !ok {
		v := executionfile.DefaultFileKind
		_c.mutation.SetFileKind(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := executionfile.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionFileCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionFile.execution_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ExecutionFile.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := executionfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "ExecutionFile.storage_key"`)}
	}
	if _, ok := _c.mutation.FileKind(); !ok {
		return &ValidationError{Name: "file_kind", err: errors.New(`ent: missing required field "ExecutionFile.file_kind"`)}
	}
	if v, ok := _c.mutation.FileKind(); ok {
		if err := executionfile.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "ExecutionFile.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionFile.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ExecutionFile.execution"`)}
	}
	return nil
}

func (_c *ExecutionFileCreate) sqlSave(ctx context.Context) (*ExecutionFile, error) {
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

func (_c *ExecutionFileCreate) createSpec() (*ExecutionFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionfile.Table, sqlgraph.NewFieldSpec(executionfile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(executionfile.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(executionfile.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.FileKind(); ok {
		_spec.SetField(executionfile.FieldFileKind, field.TypeEnum, value)
		_node.FileKind = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(executionfile.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionfile.ExecutionTable,
			Columns: []string{executionfile.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionFileCreateBulk is the builder for creating many ExecutionFile entities in bulk.
type ExecutionFileCreateBulk struct {
	config
	err      error
	builders []*ExecutionFileCreate
}

// Save creates the ExecutionFile entities in the database.
func (_c *ExecutionFileCreateBulk) Save(ctx context.Context) ([]*ExecutionFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionFileMutation)
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
func (_c *ExecutionFileCreateBulk) SaveX(ctx context.Context) []*ExecutionFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
