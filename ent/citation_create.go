// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
)

// CitationCreate is the builder for creating a Citation entity.
type CitationCreate struct {
	config
	mutation *CitationMutation
	hooks    []Hook
}

// SetAnswerID sets the "answer_id" field.
func (_c *CitationCreate) SetAnswerID(v int) *CitationCreate {
	_c.mutation.SetAnswerID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *CitationCreate) SetDocumentID(v int) *CitationCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetQuoteText sets the "quote_text" field.
func (_c *CitationCreate) SetQuoteText(v string) *CitationCreate {
	_c.mutation.SetQuoteText(v)
	return _c
}

// SetCitationOrder sets the "citation_order" field.
func (_c *CitationCreate) SetCitationOrder(v int) *CitationCreate {
	_c.mutation.SetCitationOrder(v)
	return _c
}

// SetGroundingScore sets the "grounding_score" field.
func (_c *CitationCreate) SetGroundingScore(v float64) *CitationCreate {
	_c.mutation.SetGroundingScore(v)
	return _c
}

// SetNillableGroundingScore sets the "grounding_score" field if the given value is not nil.
func (_c *CitationCreate) SetNillableGroundingScore(v *float64) *CitationCreate {
	if v != nil {
		_c.SetGroundingScore(*v)
	}
	return _c
}

// SetAnswer sets the "answer" edge to the Answer entity.
func (_c *CitationCreate) SetAnswer(v *Answer) *CitationCreate {
	return _c.SetAnswerID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_c *CitationCreate) Mutation() *CitationMutation {
	return _c.mutation
}

// Save creates the Citation in the database.
func (_c *CitationCreate) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CitationCreate) SaveX(ctx context.Context) *Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CitationCreate) check() error {
	if _, ok := _c.mutation.AnswerID(); !ok {
		return &ValidationError{Name: "answer_id", err: errors.New(`ent: missing required field "Citation.answer_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Citation.document_id"`)}
	}
	if _, ok := _c.mutation.QuoteText(); !ok {
		return &ValidationError{Name: "quote_text", err: errors.New(`ent: missing required field "Citation.quote_text"`)}
	}
	if _, ok := _c.mutation.CitationOrder(); !ok {
		return &ValidationError{Name: "citation_order", err: errors.New(`ent: missing required field "Citation.citation_order"`)}
	}
	if v, ok := _c.mutation.CitationOrder(); ok {
		if err := citation.CitationOrderValidator(v); err != nil {
			return &ValidationError{Name: "citation_order", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_order": %w`, err)}
		}
	}
	if len(_c.mutation.AnswerIDs()) == 0 {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required edge "Citation.answer"`)}
	}
	return nil
}

func (_c *CitationCreate) sqlSave(ctx context.Context) (*Citation, error) {
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

func (_c *CitationCreate) createSpec() (*Citation, *sqlgraph.CreateSpec) {
	var (
		_node = &Citation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(citation.Table, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(citation.FieldDocumentID, field.TypeInt, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.QuoteText(); ok {
		_spec.SetField(citation.FieldQuoteText, field.TypeString, value)
		_node.QuoteText = value
	}
	if value, ok := _c.mutation.CitationOrder(); ok {
		_spec.SetField(citation.FieldCitationOrder, field.TypeInt, value)
		_node.CitationOrder = value
	}
	if value, ok := _c.mutation.GroundingScore(); ok {
		_spec.SetField(citation.FieldGroundingScore, field.TypeFloat64, value)
		_node.GroundingScore = &value
	}
	if nodes := _c.mutation.AnswerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.AnswerTable,
			Columns: []string{citation.AnswerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnswerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CitationCreateBulk is the builder for creating many Citation entities in bulk.
type CitationCreateBulk struct {
	config
	err      error
	builders []*CitationCreate
}

// Save creates the Citation entities in the database.
func (_c *CitationCreateBulk) Save(ctx context.Context) ([]*Citation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Citation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CitationMutation)
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
func (_c *CitationCreateBulk) SaveX(ctx context.Context) []*Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
