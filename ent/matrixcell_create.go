// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
)

// MatrixCellCreate is the builder for creating a MatrixCell entity.
type MatrixCellCreate struct {
	config
	mutation *MatrixCellMutation
	hooks    []Hook
}

// SetMatrixID sets the "matrix_id" field.
func (_c *MatrixCellCreate) SetMatrixID(v int) *MatrixCellCreate {
	_c.mutation.SetMatrixID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *MatrixCellCreate) SetCompanyID(v int) *MatrixCellCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetCellType sets the "cell_type" field.
func (_c *MatrixCellCreate) SetCellType(v string) *MatrixCellCreate {
	_c.mutation.SetCellType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MatrixCellCreate) SetStatus(v matrixcell.Status) *MatrixCellCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MatrixCellCreate) SetNillableStatus(v *matrixcell.Status) *MatrixCellCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentAnswerSetID sets the "current_answer_set_id" field.
func (_c *MatrixCellCreate) SetCurrentAnswerSetID(v int) *MatrixCellCreate {
	_c.mutation.SetCurrentAnswerSetID(v)
	return _c
}

// SetNillableCurrentAnswerSetID sets the "current_answer_set_id" field if the given value is not nil.
func (_c *MatrixCellCreate) SetNillableCurrentAnswerSetID(v *int) *MatrixCellCreate {
	if v != nil {
		_c.SetCurrentAnswerSetID(*v)
	}
	return _c
}

// SetCellSignature sets the "cell_signature" field.
func (_c *MatrixCellCreate) SetCellSignature(v string) *MatrixCellCreate {
	_c.mutation.SetCellSignature(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatrixCellCreate) SetCreatedAt(v time.Time) *MatrixCellCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatrixCellCreate) SetNillableCreatedAt(v *time.Time) *MatrixCellCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MatrixCellCreate) SetDeletedAt(v time.Time) *MatrixCellCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MatrixCellCreate) SetNillableDeletedAt(v *time.Time) *MatrixCellCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMatrix sets the "matrix" edge to the Matrix entity.
func (_c *MatrixCellCreate) SetMatrix(v *Matrix) *MatrixCellCreate {
	return _c.SetMatrixID(v.ID)
}

// AddEntityRefIDs adds the "entity_refs" edge to the CellEntityRef entity by IDs.
func (_c *MatrixCellCreate) AddEntityRefIDs(ids ...int) *MatrixCellCreate {
	_c.mutation.AddEntityRefIDs(ids...)
	return _c
}

// AddEntityRefs adds the "entity_refs" edges to the CellEntityRef entity.
func (_c *MatrixCellCreate) AddEntityRefs(v ...*CellEntityRef) *MatrixCellCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityRefIDs(ids...)
}

// AddAnswerSetIDs adds the "answer_sets" edge to the AnswerSet entity by IDs.
func (_c *MatrixCellCreate) AddAnswerSetIDs(ids ...int) *MatrixCellCreate {
	_c.mutation.AddAnswerSetIDs(ids...)
	return _c
}

// AddAnswerSets adds the "answer_sets" edges to the AnswerSet entity.
func (_c *MatrixCellCreate) AddAnswerSets(v ...*AnswerSet) *MatrixCellCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerSetIDs(ids...)
}

// AddQaJobIDs adds the "qa_jobs" edge to the QAJob entity by IDs.
func (_c *MatrixCellCreate) AddQaJobIDs(ids ...int) *MatrixCellCreate {
	_c.mutation.AddQaJobIDs(ids...)
	return _c
}

// AddQaJobs adds the "qa_jobs" edges to the QAJob entity.
func (_c *MatrixCellCreate) AddQaJobs(v ...*QAJob) *MatrixCellCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQaJobIDs(ids...)
}

// Mutation returns the MatrixCellMutation object of the builder.
func (_c *MatrixCellCreate) Mutation() *MatrixCellMutation {
	return _c.mutation
}

// Save creates the MatrixCell in the database.
func (_c *MatrixCellCreate) Save(ctx context.Context) (*MatrixCell, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatrixCellCreate) SaveX(ctx context.Context) *MatrixCell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixCellCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixCellCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatrixCellCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := matrixcell.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matrixcell.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatrixCellCreate) check() error {
	if _, ok := _c.mutation.MatrixID(); !ok {
		return &ValidationError{Name: "matrix_id", err: errors.New(`ent: missing required field "MatrixCell.matrix_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "MatrixCell.company_id"`)}
	}
	if _, ok := _c.mutation.CellType(); !ok {
		return &ValidationError{Name: "cell_type", err: errors.New(`ent: missing required field "MatrixCell.cell_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MatrixCell.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := matrixcell.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatrixCell.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CellSignature(); !ok {
		return &ValidationError{Name: "cell_signature", err: errors.New(`ent: missing required field "MatrixCell.cell_signature"`)}
	}
	if v, ok := _c.mutation.CellSignature(); ok {
		if err := matrixcell.CellSignatureValidator(v); err != nil {
			return &ValidationError{Name: "cell_signature", err: fmt.Errorf(`ent: validator failed for field "MatrixCell.cell_signature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MatrixCell.created_at"`)}
	}
	if len(_c.mutation.MatrixIDs()) == 0 {
		return &ValidationError{Name: "matrix", err: errors.New(`ent: missing required edge "MatrixCell.matrix"`)}
	}
	return nil
}

func (_c *MatrixCellCreate) sqlSave(ctx context.Context) (*MatrixCell, error) {
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

func (_c *MatrixCellCreate) createSpec() (*MatrixCell, *sqlgraph.CreateSpec) {
	var (
		_node = &MatrixCell{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matrixcell.Table, sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(matrixcell.FieldCompanyID, field.TypeInt, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.CellType(); ok {
		_spec.SetField(matrixcell.FieldCellType, field.TypeString, value)
		_node.CellType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(matrixcell.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentAnswerSetID(); ok {
		_spec.SetField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt, value)
		_node.CurrentAnswerSetID = &value
	}
	if value, ok := _c.mutation.CellSignature(); ok {
		_spec.SetField(matrixcell.FieldCellSignature, field.TypeString, value)
		_node.CellSignature = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matrixcell.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(matrixcell.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.MatrixIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matrixcell.MatrixTable,
			Columns: []string{matrixcell.MatrixColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrix.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MatrixID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntityRefsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrixcell.EntityRefsTable,
			Columns: []string{matrixcell.EntityRefsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cellentityref.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswerSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrixcell.AnswerSetsTable,
			Columns: []string{matrixcell.AnswerSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QaJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matrixcell.QaJobsTable,
			Columns: []string{matrixcell.QaJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qajob.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatrixCellCreateBulk is the builder for creating many MatrixCell entities in bulk.
type MatrixCellCreateBulk struct {
	config
	err      error
	builders []*MatrixCellCreate
}

// Save creates the MatrixCell entities in the database.
func (_c *MatrixCellCreateBulk) Save(ctx context.Context) ([]*MatrixCell, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatrixCell, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatrixCellMutation)
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
func (_c *MatrixCellCreateBulk) SaveX(ctx context.Context) []*MatrixCell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatrixCellCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatrixCellCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
