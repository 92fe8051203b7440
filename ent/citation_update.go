// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// CitationUpdate is the builder for updating Citation entities.
type CitationUpdate struct {
	config
	hooks    []Hook
	mutation *CitationMutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdate) Where(ps ...predicate.Citation) *CitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteText sets the "quote_text" field.
func (_u *CitationUpdate) SetQuoteText(v string) *CitationUpdate {
	_u.mutation.SetQuoteText(v)
	return _u
}

// SetNillableQuoteText sets the "quote_text" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableQuoteText(v *string) *CitationUpdate {
	if v != nil {
		_u.SetQuoteText(*v)
	}
	return _u
}

// SetCitationOrder sets the "citation_order" field.
func (_u *CitationUpdate) SetCitationOrder(v int) *CitationUpdate {
	_u.mutation.ResetCitationOrder()
	_u.mutation.SetCitationOrder(v)
	return _u
}

// SetNillableCitationOrder sets the "citation_order" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableCitationOrder(v *int) *CitationUpdate {
	if v != nil {
		_u.SetCitationOrder(*v)
	}
	return _u
}

// AddCitationOrder adds value to the "citation_order" field.
func (_u *CitationUpdate) AddCitationOrder(v int) *CitationUpdate {
	_u.mutation.AddCitationOrder(v)
	return _u
}

// SetGroundingScore sets the "grounding_score" field.
func (_u *CitationUpdate) SetGroundingScore(v float64) *CitationUpdate {
	_u.mutation.ResetGroundingScore()
	_u.mutation.SetGroundingScore(v)
	return _u
}

// SetNillableGroundingScore sets the "grounding_score" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableGroundingScore(v *float64) *CitationUpdate {
	if v != nil {
		_u.SetGroundingScore(*v)
	}
	return _u
}

// AddGroundingScore adds value to the "grounding_score" field.
func (_u *CitationUpdate) AddGroundingScore(v float64) *CitationUpdate {
	_u.mutation.AddGroundingScore(v)
	return _u
}

// ClearGroundingScore clears the value of the "grounding_score" field.
func (_u *CitationUpdate) ClearGroundingScore() *CitationUpdate {
	_u.mutation.ClearGroundingScore()
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdate) Mutation() *CitationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdate) check() error {
	if v, ok := _u.mutation.CitationOrder(); ok {
		if err := citation.CitationOrderValidator(v); err != nil {
			return &ValidationError{Name: "citation_order", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_order": %w`, err)}
		}
	}
	if _u.mutation.AnswerCleared() && len(_u.mutation.AnswerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.answer"`)
	}
	return nil
}

func (_u *CitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuoteText(); ok {
		_spec.SetField(citation.FieldQuoteText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationOrder(); ok {
		_spec.SetField(citation.FieldCitationOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationOrder(); ok {
		_spec.AddField(citation.FieldCitationOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroundingScore(); ok {
		_spec.SetField(citation.FieldGroundingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGroundingScore(); ok {
		_spec.AddField(citation.FieldGroundingScore, field.TypeFloat64, value)
	}
	if _u.mutation.GroundingScoreCleared() {
		_spec.ClearField(citation.FieldGroundingScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CitationUpdateOne is the builder for updating a single Citation entity.
type CitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CitationMutation
}

// SetQuoteText sets the "quote_text" field.
func (_u *CitationUpdateOne) SetQuoteText(v string) *CitationUpdateOne {
	_u.mutation.SetQuoteText(v)
	return _u
}

// SetNillableQuoteText sets the "quote_text" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableQuoteText(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetQuoteText(*v)
	}
	return _u
}

// SetCitationOrder sets the "citation_order" field.
func (_u *CitationUpdateOne) SetCitationOrder(v int) *CitationUpdateOne {
	_u.mutation.ResetCitationOrder()
	_u.mutation.SetCitationOrder(v)
	return _u
}

// SetNillableCitationOrder sets the "citation_order" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableCitationOrder(v *int) *CitationUpdateOne {
	if v != nil {
		_u.SetCitationOrder(*v)
	}
	return _u
}

// AddCitationOrder adds value to the "citation_order" field.
func (_u *CitationUpdateOne) AddCitationOrder(v int) *CitationUpdateOne {
	_u.mutation.AddCitationOrder(v)
	return _u
}

// SetGroundingScore sets the "grounding_score" field.
func (_u *CitationUpdateOne) SetGroundingScore(v float64) *CitationUpdateOne {
	_u.mutation.ResetGroundingScore()
	_u.mutation.SetGroundingScore(v)
	return _u
}

// SetNillableGroundingScore sets the "grounding_score" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableGroundingScore(v *float64) *CitationUpdateOne {
	if v != nil {
		_u.SetGroundingScore(*v)
	}
	return _u
}

// AddGroundingScore adds value to the "grounding_score" field.
func (_u *CitationUpdateOne) AddGroundingScore(v float64) *CitationUpdateOne {
	_u.mutation.AddGroundingScore(v)
	return _u
}

// ClearGroundingScore clears the value of the "grounding_score" field.
func (_u *CitationUpdateOne) ClearGroundingScore() *CitationUpdateOne {
	_u.mutation.ClearGroundingScore()
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdateOne) Mutation() *CitationMutation {
	return _u.mutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdateOne) Where(ps ...predicate.Citation) *CitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CitationUpdateOne) Select(field string, fields ...string) *CitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Citation entity.
func (_u *CitationUpdateOne) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdateOne) SaveX(ctx context.Context) *Citation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdateOne) check() error {
	if v, ok := _u.mutation.CitationOrder(); ok {
		if err := citation.CitationOrderValidator(v); err != nil {
			return &ValidationError{Name: "citation_order", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_order": %w`, err)}
		}
	}
	if _u.mutation.AnswerCleared() && len(_u.mutation.AnswerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.answer"`)
	}
	return nil
}

func (_u *CitationUpdateOne) sqlSave(ctx context.Context) (_node *Citation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Citation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, citation.FieldID)
		for _, f := range fields {
			if !citation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != citation.FieldID {
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
	if value, ok := _u.mutation.QuoteText(); ok {
		_spec.SetField(citation.FieldQuoteText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationOrder(); ok {
		_spec.SetField(citation.FieldCitationOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationOrder(); ok {
		_spec.AddField(citation.FieldCitationOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroundingScore(); ok {
		_spec.SetField(citation.FieldGroundingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGroundingScore(); ok {
		_spec.AddField(citation.FieldGroundingScore, field.TypeFloat64, value)
	}
	if _u.mutation.GroundingScoreCleared() {
		_spec.ClearField(citation.FieldGroundingScore, field.TypeFloat64)
	}
	_node = &Citation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
