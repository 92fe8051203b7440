// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
)

// AnswerSetCreate is the builder for creating a AnswerSet entity.
type AnswerSetCreate struct {
	config
	mutation *AnswerSetMutation
	hooks    []Hook
}

// SetCellID sets the "cell_id" field.
func (_c *AnswerSetCreate) SetCellID(v int) *AnswerSetCreate {
	_c.mutation.SetCellID(v)
	return _c
}

// SetAnswerFound sets the "answer_found" field.
func (_c *AnswerSetCreate) SetAnswerFound(v bool) *AnswerSetCreate {
	_c.mutation.SetAnswerFound(v)
	return _c
}

// SetNillableAnswerFound sets the "answer_found" field if the given value is not nil.
func (_c *AnswerSetCreate) SetNillableAnswerFound(v *bool) *AnswerSetCreate {
	if v != nil {
		_c.SetAnswerFound(*v)
	}
	return _c
}

// SetQuestionTypeID sets the "question_type_id" field.
func (_c *AnswerSetCreate) SetQuestionTypeID(v int) *AnswerSetCreate {
	_c.mutation.SetQuestionTypeID(v)
	return _c
}

// SetNillableQuestionTypeID sets the "question_type_id" field if the given value is not nil.
func (_c *AnswerSetCreate) SetNillableQuestionTypeID(v *int) *AnswerSetCreate {
	if v != nil {
		_c.SetQuestionTypeID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerSetCreate) SetCreatedAt(v time.Time) *AnswerSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerSetCreate) SetNillableCreatedAt(v *time.Time) *AnswerSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCell sets the "cell" edge to the MatrixCell entity.
func (_c *AnswerSetCreate) SetCell(v *MatrixCell) *AnswerSetCreate {
	return _c.SetCellID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *AnswerSetCreate) AddAnswerIDs(ids ...int) *AnswerSetCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *AnswerSetCreate) AddAnswers(v ...*Answer) *AnswerSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerSetMutation object of the builder.
func (_c *AnswerSetCreate) Mutation() *AnswerSetMutation {
	return _c.mutation
}

// Save creates the AnswerSet in the database.
func (_c *AnswerSetCreate) Save(ctx context.Context) (*AnswerSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerSetCreate) SaveX(ctx context.Context) *AnswerSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerSetCreate) defaults() {
	if _, ok := _c.mutation.AnswerFound(); !ok {
		v := answerset.DefaultAnswerFound
		_c.mutation.SetAnswerFound(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answerset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerSetCreate) check() error {
	if _, ok := _c.mutation.CellID(); !ok {
		return &ValidationError{Name: "cell_id", err: errors.New(`ent: missing required field "AnswerSet.cell_id"`)}
	}
	if _, ok := _c.mutation.AnswerFound(); !ok {
		return &ValidationError{Name: "answer_found", err: errors.New(`ent: missing required field "AnswerSet.answer_found"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnswerSet.created_at"`)}
	}
	if len(_c.mutation.CellIDs()) == 0 {
		return &ValidationError{Name: "cell", err: errors.New(`ent: missing required edge "AnswerSet.cell"`)}
	}
	return nil
}

func (_c *AnswerSetCreate) sqlSave(ctx context.Context) (*AnswerSet, error) {
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

func (_c *AnswerSetCreate) createSpec() (*AnswerSet, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerset.Table, sqlgraph.NewFieldSpec(answerset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AnswerFound(); ok {
		_spec.SetField(answerset.FieldAnswerFound, field.TypeBool, value)
		_node.AnswerFound = value
	}
	if value, ok := _c.mutation.QuestionTypeID(); ok {
		_spec.SetField(answerset.FieldQuestionTypeID, field.TypeInt, value)
		_node.QuestionTypeID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answerset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CellIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerset.CellTable,
			Columns: []string{answerset.CellColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CellID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   answerset.AnswersTable,
			Columns: []string{answerset.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerSetCreateBulk is the builder for creating many AnswerSet entities in bulk.
type AnswerSetCreateBulk struct {
	config
	err      error
	builders []*AnswerSetCreate
}

// Save creates the AnswerSet entities in the database.
func (_c *AnswerSetCreateBulk) Save(ctx context.Context) ([]*AnswerSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerSetMutation)
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
func (_c *AnswerSetCreateBulk) SaveX(ctx context.Context) []*AnswerSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
