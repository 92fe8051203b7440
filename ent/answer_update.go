// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswerOrder sets the "answer_order" field.
func (_u *AnswerUpdate) SetAnswerOrder(v int) *AnswerUpdate {
	_u.mutation.ResetAnswerOrder()
	_u.mutation.SetAnswerOrder(v)
	return _u
}

// SetNillableAnswerOrder sets the "answer_order" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAnswerOrder(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetAnswerOrder(*v)
	}
	return _u
}

// AddAnswerOrder adds value to the "answer_order" field.
func (_u *AnswerUpdate) AddAnswerOrder(v int) *AnswerUpdate {
	_u.mutation.AddAnswerOrder(v)
	return _u
}

// SetAnswerType sets the "answer_type" field.
func (_u *AnswerUpdate) SetAnswerType(v answer.AnswerType) *AnswerUpdate {
	_u.mutation.SetAnswerType(v)
	return _u
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAnswerType(v *answer.AnswerType) *AnswerUpdate {
	if v != nil {
		_u.SetAnswerType(*v)
	}
	return _u
}

// SetAnswerData sets the "answer_data" field.
func (_u *AnswerUpdate) SetAnswerData(v map[string]interface{}) *AnswerUpdate {
	_u.mutation.SetAnswerData(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerUpdate) SetConfidence(v float64) *AnswerUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableConfidence(v *float64) *AnswerUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerUpdate) AddConfidence(v float64) *AnswerUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *AnswerUpdate) AddCitationIDs(ids ...int) *AnswerUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *AnswerUpdate) AddCitations(v ...*Citation) *AnswerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *AnswerUpdate) ClearCitations() *AnswerUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *AnswerUpdate) RemoveCitationIDs(ids ...int) *AnswerUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *AnswerUpdate) RemoveCitations(v ...*Citation) *AnswerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.AnswerOrder(); ok {
		if err := answer.AnswerOrderValidator(v); err != nil {
			return &ValidationError{Name: "answer_order", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := answer.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Answer.confidence": %w`, err)}
		}
	}
	if _u.mutation.AnswerSetCleared() && len(_u.mutation.AnswerSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.answer_set"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnswerOrder(); ok {
		_spec.SetField(answer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerOrder(); ok {
		_spec.AddField(answer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerData(); ok {
		_spec.SetField(answer.FieldAnswerData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answer.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answer.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetAnswerOrder sets the "answer_order" field.
func (_u *AnswerUpdateOne) SetAnswerOrder(v int) *AnswerUpdateOne {
	_u.mutation.ResetAnswerOrder()
	_u.mutation.SetAnswerOrder(v)
	return _u
}

// SetNillableAnswerOrder sets the "answer_order" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAnswerOrder(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetAnswerOrder(*v)
	}
	return _u
}

// AddAnswerOrder adds value to the "answer_order" field.
func (_u *AnswerUpdateOne) AddAnswerOrder(v int) *AnswerUpdateOne {
	_u.mutation.AddAnswerOrder(v)
	return _u
}

// SetAnswerType sets the "answer_type" field.
func (_u *AnswerUpdateOne) SetAnswerType(v answer.AnswerType) *AnswerUpdateOne {
	_u.mutation.SetAnswerType(v)
	return _u
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAnswerType(v *answer.AnswerType) *AnswerUpdateOne {
	if v != nil {
		_u.SetAnswerType(*v)
	}
	return _u
}

// SetAnswerData sets the "answer_data" field.
func (_u *AnswerUpdateOne) SetAnswerData(v map[string]interface{}) *AnswerUpdateOne {
	_u.mutation.SetAnswerData(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerUpdateOne) SetConfidence(v float64) *AnswerUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableConfidence(v *float64) *AnswerUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerUpdateOne) AddConfidence(v float64) *AnswerUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *AnswerUpdateOne) AddCitationIDs(ids ...int) *AnswerUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *AnswerUpdateOne) AddCitations(v ...*Citation) *AnswerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *AnswerUpdateOne) ClearCitations() *AnswerUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *AnswerUpdateOne) RemoveCitationIDs(ids ...int) *AnswerUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *AnswerUpdateOne) RemoveCitations(v ...*Citation) *AnswerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.AnswerOrder(); ok {
		if err := answer.AnswerOrderValidator(v); err != nil {
			return &ValidationError{Name: "answer_order", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := answer.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Answer.confidence": %w`, err)}
		}
	}
	if _u.mutation.AnswerSetCleared() && len(_u.mutation.AnswerSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.answer_set"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.AnswerOrder(); ok {
		_spec.SetField(answer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerOrder(); ok {
		_spec.AddField(answer.FieldAnswerOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerData(); ok {
		_spec.SetField(answer.FieldAnswerData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answer.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answer.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
