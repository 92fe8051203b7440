// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetAnswerSetID sets the "answer_set_id" field.
func (_c *AnswerCreate) SetAnswerSetID(v int) *AnswerCreate {
	_c.mutation.SetAnswerSetID(v)
	return _c
}

// SetAnswerOrder sets the "answer_order" field.
func (_c *AnswerCreate) SetAnswerOrder(v int) *AnswerCreate {
	_c.mutation.SetAnswerOrder(v)
	return _c
}

// SetAnswerType sets the "answer_type" field.
func (_c *AnswerCreate) SetAnswerType(v answer.AnswerType) *AnswerCreate {
	_c.mutation.SetAnswerType(v)
	return _c
}

// SetAnswerData sets the "answer_data" field.
func (_c *AnswerCreate) SetAnswerData(v map[string]interface{}) *AnswerCreate {
	_c.mutation.SetAnswerData(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnswerCreate) SetConfidence(v float64) *AnswerCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAnswerSet sets the "answer_set" edge to the AnswerSet entity.
func (_c *AnswerCreate) SetAnswerSet(v *AnswerSet) *AnswerCreate {
	return _c.SetAnswerSetID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_c *AnswerCreate) AddCitationIDs(ids ...int) *AnswerCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_c *AnswerCreate) AddCitations(v ...*Citation) *AnswerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.AnswerSetID(); !ok {
		return &ValidationError{Name: "answer_set_id", err: errors.New(`ent: missing required field "Answer.answer_set_id"`)}
	}
	if _, ok := _c.mutation.AnswerOrder(); !ok {
		return &ValidationError{Name: "answer_order", err: errors.New(`ent: missing required field "Answer.answer_order"`)}
	}
	if v, ok := _c.mutation.AnswerOrder(); ok {
		if err := answer.AnswerOrderValidator(v); err != nil {
			return &ValidationError{Name: "answer_order", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerType(); !ok {
		return &ValidationError{Name: "answer_type", err: errors.New(`ent: missing required field "Answer.answer_type"`)}
	}
	if v, ok := _c.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerData(); !ok {
		return &ValidationError{Name: "answer_data", err: errors.New(`ent: missing required field "Answer.answer_data"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Answer.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := answer.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Answer.confidence": %w`, err)}
		}
	}
	if len(_c.mutation.AnswerSetIDs()) == 0 {
		return &ValidationError{Name: "answer_set", err: errors.New(`ent: missing required edge "Answer.answer_set"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AnswerOrder(); ok {
		_spec.SetField(answer.FieldAnswerOrder, field.TypeInt, value)
		_node.AnswerOrder = value
	}
	if value, ok := _c.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeEnum, value)
		_node.AnswerType = value
	}
	if value, ok := _c.mutation.AnswerData(); ok {
		_spec.SetField(answer.FieldAnswerData, field.TypeJSON, value)
		_node.AnswerData = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(answer.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.AnswerSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.AnswerSetTable,
			Columns: []string{answer.AnswerSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnswerSetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   answer.CitationsTable,
			Columns: []string{answer.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
