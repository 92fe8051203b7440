// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *DocumentUpdate) SetStorageKey(v string) *DocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStorageKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *DocumentUpdate) SetChecksum(v string) *DocumentUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableChecksum(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *DocumentUpdate) SetExtractionStatus(v document.ExtractionStatus) *DocumentUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionStatus(v *document.ExtractionStatus) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractedContentPath sets the "extracted_content_path" field.
func (_u *DocumentUpdate) SetExtractedContentPath(v string) *DocumentUpdate {
	_u.mutation.SetExtractedContentPath(v)
	return _u
}

// SetNillableExtractedContentPath sets the "extracted_content_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedContentPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedContentPath(*v)
	}
	return _u
}

// ClearExtractedContentPath clears the value of the "extracted_content_path" field.
func (_u *DocumentUpdate) ClearExtractedContentPath() *DocumentUpdate {
	_u.mutation.ClearExtractedContentPath()
	return _u
}

// SetExtractedCharCount sets the "extracted_char_count" field.
func (_u *DocumentUpdate) SetExtractedCharCount(v int) *DocumentUpdate {
	_u.mutation.ResetExtractedCharCount()
	_u.mutation.SetExtractedCharCount(v)
	return _u
}

// SetNillableExtractedCharCount sets the "extracted_char_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedCharCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedCharCount(*v)
	}
	return _u
}

// AddExtractedCharCount adds value to the "extracted_char_count" field.
func (_u *DocumentUpdate) AddExtractedCharCount(v int) *DocumentUpdate {
	_u.mutation.AddExtractedCharCount(v)
	return _u
}

// SetCurrentChunkSetID sets the "current_chunk_set_id" field.
func (_u *DocumentUpdate) SetCurrentChunkSetID(v int) *DocumentUpdate {
	_u.mutation.ResetCurrentChunkSetID()
	_u.mutation.SetCurrentChunkSetID(v)
	return _u
}

// SetNillableCurrentChunkSetID sets the "current_chunk_set_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCurrentChunkSetID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetCurrentChunkSetID(*v)
	}
	return _u
}

// AddCurrentChunkSetID adds value to the "current_chunk_set_id" field.
func (_u *DocumentUpdate) AddCurrentChunkSetID(v int) *DocumentUpdate {
	_u.mutation.AddCurrentChunkSetID(v)
	return _u
}

// ClearCurrentChunkSetID clears the value of the "current_chunk_set_id" field.
func (_u *DocumentUpdate) ClearCurrentChunkSetID() *DocumentUpdate {
	_u.mutation.ClearCurrentChunkSetID()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *DocumentUpdate) SetExtractedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *DocumentUpdate) ClearExtractedAt() *DocumentUpdate {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdate) SetDeletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDeletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdate) ClearDeletedAt() *DocumentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChunkSetIDs adds the "chunk_sets" edge to the ChunkSet entity by IDs.
func (_u *DocumentUpdate) AddChunkSetIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddChunkSetIDs(ids...)
	return _u
}

// AddChunkSets adds the "chunk_sets" edges to the ChunkSet entity.
func (_u *DocumentUpdate) AddChunkSets(v ...*ChunkSet) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkSetIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunkSets clears all "chunk_sets" edges to the ChunkSet entity.
func (_u *DocumentUpdate) ClearChunkSets() *DocumentUpdate {
	_u.mutation.ClearChunkSets()
	return _u
}

// RemoveChunkSetIDs removes the "chunk_sets" edge to ChunkSet entities by IDs.
func (_u *DocumentUpdate) RemoveChunkSetIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveChunkSetIDs(ids...)
	return _u
}

// RemoveChunkSets removes "chunk_sets" edges to ChunkSet entities.
func (_u *DocumentUpdate) RemoveChunkSets(v ...*ChunkSet) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkSetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := document.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Document.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.company"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(document.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedContentPath(); ok {
		_spec.SetField(document.FieldExtractedContentPath, field.TypeString, value)
	}
	if _u.mutation.ExtractedContentPathCleared() {
		_spec.ClearField(document.FieldExtractedContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCharCount(); ok {
		_spec.SetField(document.FieldExtractedCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedCharCount(); ok {
		_spec.AddField(document.FieldExtractedCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentChunkSetID(); ok {
		_spec.SetField(document.FieldCurrentChunkSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentChunkSetID(); ok {
		_spec.AddField(document.FieldCurrentChunkSetID, field.TypeInt, value)
	}
	if _u.mutation.CurrentChunkSetIDCleared() {
		_spec.ClearField(document.FieldCurrentChunkSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(document.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(document.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChunkSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkSetsIDs(); len(nodes) > 0 && !_u.mutation.ChunkSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *DocumentUpdateOne) SetStorageKey(v string) *DocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStorageKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *DocumentUpdateOne) SetChecksum(v string) *DocumentUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableChecksum(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *DocumentUpdateOne) SetExtractionStatus(v document.ExtractionStatus) *DocumentUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionStatus(v *document.ExtractionStatus) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractedContentPath sets the "extracted_content_path" field.
func (_u *DocumentUpdateOne) SetExtractedContentPath(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedContentPath(v)
	return _u
}

// SetNillableExtractedContentPath sets the "extracted_content_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedContentPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedContentPath(*v)
	}
	return _u
}

// ClearExtractedContentPath clears the value of the "extracted_content_path" field.
func (_u *DocumentUpdateOne) ClearExtractedContentPath() *DocumentUpdateOne {
	_u.mutation.ClearExtractedContentPath()
	return _u
}

// SetExtractedCharCount sets the "extracted_char_count" field.
func (_u *DocumentUpdateOne) SetExtractedCharCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetExtractedCharCount()
	_u.mutation.SetExtractedCharCount(v)
	return _u
}

// SetNillableExtractedCharCount sets the "extracted_char_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedCharCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedCharCount(*v)
	}
	return _u
}

// AddExtractedCharCount adds value to the "extracted_char_count" field.
func (_u *DocumentUpdateOne) AddExtractedCharCount(v int) *DocumentUpdateOne {
	_u.mutation.AddExtractedCharCount(v)
	return _u
}

// SetCurrentChunkSetID sets the "current_chunk_set_id" field.
func (_u *DocumentUpdateOne) SetCurrentChunkSetID(v int) *DocumentUpdateOne {
	_u.mutation.ResetCurrentChunkSetID()
	_u.mutation.SetCurrentChunkSetID(v)
	return _u
}

// SetNillableCurrentChunkSetID sets the "current_chunk_set_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCurrentChunkSetID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetCurrentChunkSetID(*v)
	}
	return _u
}

// AddCurrentChunkSetID adds value to the "current_chunk_set_id" field.
func (_u *DocumentUpdateOne) AddCurrentChunkSetID(v int) *DocumentUpdateOne {
	_u.mutation.AddCurrentChunkSetID(v)
	return _u
}

// ClearCurrentChunkSetID clears the value of the "current_chunk_set_id" field.
func (_u *DocumentUpdateOne) ClearCurrentChunkSetID() *DocumentUpdateOne {
	_u.mutation.ClearCurrentChunkSetID()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *DocumentUpdateOne) SetExtractedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *DocumentUpdateOne) ClearExtractedAt() *DocumentUpdateOne {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdateOne) SetDeletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDeletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdateOne) ClearDeletedAt() *DocumentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddChunkSetIDs adds the "chunk_sets" edge to the ChunkSet entity by IDs.
func (_u *DocumentUpdateOne) AddChunkSetIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddChunkSetIDs(ids...)
	return _u
}

// AddChunkSets adds the "chunk_sets" edges to the ChunkSet entity.
func (_u *DocumentUpdateOne) AddChunkSets(v ...*ChunkSet) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkSetIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunkSets clears all "chunk_sets" edges to the ChunkSet entity.
func (_u *DocumentUpdateOne) ClearChunkSets() *DocumentUpdateOne {
	_u.mutation.ClearChunkSets()
	return _u
}

// RemoveChunkSetIDs removes the "chunk_sets" edge to ChunkSet entities by IDs.
func (_u *DocumentUpdateOne) RemoveChunkSetIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveChunkSetIDs(ids...)
	return _u
}

// RemoveChunkSets removes "chunk_sets" edges to ChunkSet entities.
func (_u *DocumentUpdateOne) RemoveChunkSets(v ...*ChunkSet) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkSetIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := document.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Document.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.company"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(document.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedContentPath(); ok {
		_spec.SetField(document.FieldExtractedContentPath, field.TypeString, value)
	}
	if _u.mutation.ExtractedContentPathCleared() {
		_spec.ClearField(document.FieldExtractedContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCharCount(); ok {
		_spec.SetField(document.FieldExtractedCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedCharCount(); ok {
		_spec.AddField(document.FieldExtractedCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentChunkSetID(); ok {
		_spec.SetField(document.FieldCurrentChunkSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentChunkSetID(); ok {
		_spec.AddField(document.FieldCurrentChunkSetID, field.TypeInt, value)
	}
	if _u.mutation.CurrentChunkSetIDCleared() {
		_spec.ClearField(document.FieldCurrentChunkSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(document.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(document.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChunkSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkSetsIDs(); len(nodes) > 0 && !_u.mutation.ChunkSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunkSetsTable,
			Columns: []string{document.ChunkSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
