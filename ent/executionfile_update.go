// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ExecutionFileUpdate is the builder for updating ExecutionFile entities.
type ExecutionFileUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionFileMutation
}

// Where appends a list predicates to the ExecutionFileUpdate builder.
func (_u *ExecutionFileUpdate) Where(ps ...predicate.ExecutionFile) *ExecutionFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExecutionFileUpdate) SetFileName(v string) *ExecutionFileUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExecutionFileUpdate) SetNillableFileName(v *string) *ExecutionFileUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ExecutionFileUpdate) SetStorageKey(v string) *ExecutionFileUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ExecutionFileUpdate) SetNillableStorageKey(v *string) *ExecutionFileUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *ExecutionFileUpdate) SetFileKind(v executionfile.FileKind) *ExecutionFileUpdate {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *ExecutionFileUpdate) SetNillableFileKind(v *executionfile.FileKind) *ExecutionFileUpdate {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ExecutionFileUpdate) SetSizeBytes(v int64) *ExecutionFileUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ExecutionFileUpdate) SetNillableSizeBytes(v *int64) *ExecutionFileUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ExecutionFileUpdate) AddSizeBytes(v int64) *ExecutionFileUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the ExecutionFileMutation object of the builder.
func (_u *ExecutionFileUpdate) Mutation() *ExecutionFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionFileUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := executionfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := executionfile.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_kind": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionFile.execution"`)
	}
	return nil
}

func (_u *ExecutionFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionfile.Table, executionfile.Columns, sqlgraph.NewFieldSpec(executionfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(executionfile.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(executionfile.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(executionfile.FieldFileKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(executionfile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(executionfile.FieldSizeBytes, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionFileUpdateOne is the builder for updating a single ExecutionFile entity.
type ExecutionFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionFileMutation
}

// SetFileName sets the "file_name" field.
func (_u *ExecutionFileUpdateOne) SetFileName(v string) *ExecutionFileUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExecutionFileUpdateOne) SetNillableFileName(v *string) *ExecutionFileUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ExecutionFileUpdateOne) SetStorageKey(v string) *ExecutionFileUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ExecutionFileUpdateOne) SetNillableStorageKey(v *string) *ExecutionFileUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *ExecutionFileUpdateOne) SetFileKind(v executionfile.FileKind) *ExecutionFileUpdateOne {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *ExecutionFileUpdateOne) SetNillableFileKind(v *executionfile.FileKind) *ExecutionFileUpdateOne {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ExecutionFileUpdateOne) SetSizeBytes(v int64) *ExecutionFileUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ExecutionFileUpdateOne) SetNillableSizeBytes(v *int64) *ExecutionFileUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ExecutionFileUpdateOne) AddSizeBytes(v int64) *ExecutionFileUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the ExecutionFileMutation object of the builder.
func (_u *ExecutionFileUpdateOne) Mutation() *ExecutionFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionFileUpdate builder.
func (_u *ExecutionFileUpdateOne) Where(ps ...predicate.ExecutionFile) *ExecutionFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionFileUpdateOne) Select(field string, fields ...string) *ExecutionFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionFile entity.
func (_u *ExecutionFileUpdateOne) Save(ctx context.Context) (*ExecutionFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionFileUpdateOne) SaveX(ctx context.Context) *ExecutionFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionFileUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := executionfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := executionfile.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "ExecutionFile.file_kind": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionFile.execution"`)
	}
	return nil
}

func (_u *ExecutionFileUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionfile.Table, executionfile.Columns, sqlgraph.NewFieldSpec(executionfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionfile.FieldID)
		for _, f := range fields {
			if !executionfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionfile.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(executionfile.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(executionfile.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(executionfile.FieldFileKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(executionfile.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(executionfile.FieldSizeBytes, field.TypeInt64, value)
	}
	_node = &ExecutionFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
