// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *DocumentCreate) SetCompanyID(v int) *DocumentCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *DocumentCreate) SetStorageKey(v string) *DocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *DocumentCreate) SetChecksum(v string) *DocumentCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *DocumentCreate) SetExtractionStatus(v document.ExtractionStatus) *DocumentCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractionStatus(v *document.ExtractionStatus) *DocumentCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetExtractedContentPath sets the "extracted_content_path" field.
func (_c *DocumentCreate) SetExtractedContentPath(v string) *DocumentCreate {
	_c.mutation.SetExtractedContentPath(v)
	return _c
}

// SetNillableExtractedContentPath sets the "extracted_content_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedContentPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedContentPath(*v)
	}
	return _c
}

// SetExtractedCharCount sets the "extracted_char_count" field.
func (_c *DocumentCreate) SetExtractedCharCount(v int) *DocumentCreate {
	_c.mutation.SetExtractedCharCount(v)
	return _c
}

// SetNillableExtractedCharCount sets the "extracted_char_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedCharCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetExtractedCharCount(*v)
	}
	return _c
}

// SetCurrentChunkSetID sets the "current_chunk_set_id" field.
func (_c *DocumentCreate) SetCurrentChunkSetID(v int) *DocumentCreate {
	_c.mutation.SetCurrentChunkSetID(v)
	return _c
}

// SetNillableCurrentChunkSetID sets the "current_chunk_set_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCurrentChunkSetID(v *int) *DocumentCreate {
	if v != nil {
		_c.SetCurrentChunkSetID(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DocumentCreate) SetUploadedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *DocumentCreate) SetExtractedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DocumentCreate) SetDeletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDeletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *DocumentCreate) SetCompany(v *Company) *DocumentCreate {
	return _c.SetCompanyID(v.ID)
}

// AddChunkSetIDs adds the "chunk_sets" edge to the ChunkSet entity by IDs.
func (_c *DocumentCreate) AddChunkSetIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddChunkSetIDs(ids...)
	return _c
}

// AddChunkSets adds the "chunk_sets" edges to the ChunkSet entity.
func (_c *DocumentCreate) AddChunkSets(v ...*ChunkSet) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkSetIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := document.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.ExtractedCharCount(); !ok {
		v := document.DefaultExtractedCharCount
		_c.mutation.SetExtractedCharCount(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := document.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Document.company_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "Document.storage_key"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "Document.checksum"`)}
	}
	if v, ok := _c.mutation.Checksum(); ok {
		if err := document.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Document.checksum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "Document.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedCharCount(); !ok {
		return &ValidationError{Name: "extracted_char_count", err: errors.New(`ent: missing required field "Document.extracted_char_count"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Document.uploaded_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Document.company"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(document.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(document.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeEnum, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.ExtractedContentPath(); ok {
		_spec.SetField(document.FieldExtractedContentPath, field.TypeString, value)
		_node.ExtractedContentPath = &value
	}
	if value, ok := _c.mutation.ExtractedCharCount(); ok {
		_spec.SetField(document.FieldExtractedCharCount, field.TypeInt, value)
		_node.ExtractedCharCount = value
	}
	if value, ok := _c.mutation.CurrentChunkSetID(); ok {
		_spec.SetField(document.FieldCurrentChunkSetID, field.TypeInt, value)
		_node.CurrentChunkSetID = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(document.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
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
	if nodes := _c.mutation.ChunkSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
