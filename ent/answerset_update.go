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
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// AnswerSetUpdate is the builder for updating AnswerSet entities.
type AnswerSetUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerSetMutation
}

// Where appends a list predicates to the AnswerSetUpdate builder.
func (_u *AnswerSetUpdate) Where(ps ...predicate.AnswerSet) *AnswerSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswerFound sets the "answer_found" field.
func (_u *AnswerSetUpdate) SetAnswerFound(v bool) *AnswerSetUpdate {
	_u.mutation.SetAnswerFound(v)
	return _u
}

// SetNillableAnswerFound sets the "answer_found" field if the given value is not nil.
func (_u *AnswerSetUpdate) SetNillableAnswerFound(v *bool) *AnswerSetUpdate {
	if v != nil {
		_u.SetAnswerFound(*v)
	}
	return _u
}

// SetQuestionTypeID sets the "question_type_id" field.
func (_u *AnswerSetUpdate) SetQuestionTypeID(v int) *AnswerSetUpdate {
	_u.mutation.ResetQuestionTypeID()
	_u.mutation.SetQuestionTypeID(v)
	return _u
}

// SetNillableQuestionTypeID sets the "question_type_id" field if the given value is not nil.
func (_u *AnswerSetUpdate) SetNillableQuestionTypeID(v *int) *AnswerSetUpdate {
	if v != nil {
		_u.SetQuestionTypeID(*v)
	}
	return _u
}

// AddQuestionTypeID adds value to the "question_type_id" field.
func (_u *AnswerSetUpdate) AddQuestionTypeID(v int) *AnswerSetUpdate {
	_u.mutation.AddQuestionTypeID(v)
	return _u
}

// ClearQuestionTypeID clears the value of the "question_type_id" field.
func (_u *AnswerSetUpdate) ClearQuestionTypeID() *AnswerSetUpdate {
	_u.mutation.ClearQuestionTypeID()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AnswerSetUpdate) AddAnswerIDs(ids ...int) *AnswerSetUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AnswerSetUpdate) AddAnswers(v ...*Answer) *AnswerSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerSetMutation object of the builder.
func (_u *AnswerSetUpdate) Mutation() *AnswerSetMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AnswerSetUpdate) ClearAnswers() *AnswerSetUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AnswerSetUpdate) RemoveAnswerIDs(ids ...int) *AnswerSetUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AnswerSetUpdate) RemoveAnswers(v ...*Answer) *AnswerSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerSetUpdate) check() error {
	if _u.mutation.CellCleared() && len(_u.mutation.CellIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerSet.cell"`)
	}
	return nil
}

func (_u *AnswerSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerset.Table, answerset.Columns, sqlgraph.NewFieldSpec(answerset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnswerFound(); ok {
		_spec.SetField(answerset.FieldAnswerFound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionTypeID(); ok {
		_spec.SetField(answerset.FieldQuestionTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionTypeID(); ok {
		_spec.AddField(answerset.FieldQuestionTypeID, field.TypeInt, value)
	}
	if _u.mutation.QuestionTypeIDCleared() {
		_spec.ClearField(answerset.FieldQuestionTypeID, field.TypeInt)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerSetUpdateOne is the builder for updating a single AnswerSet entity.
type AnswerSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerSetMutation
}

// SetAnswerFound sets the "answer_found" field.
func (_u *AnswerSetUpdateOne) SetAnswerFound(v bool) *AnswerSetUpdateOne {
	_u.mutation.SetAnswerFound(v)
	return _u
}

// SetNillableAnswerFound sets the "answer_found" field if the given value is not nil.
func (_u *AnswerSetUpdateOne) SetNillableAnswerFound(v *bool) *AnswerSetUpdateOne {
	if v != nil {
		_u.SetAnswerFound(*v)
	}
	return _u
}

// SetQuestionTypeID sets the "question_type_id" field.
func (_u *AnswerSetUpdateOne) SetQuestionTypeID(v int) *AnswerSetUpdateOne {
	_u.mutation.ResetQuestionTypeID()
	_u.mutation.SetQuestionTypeID(v)
	return _u
}

// SetNillableQuestionTypeID sets the "question_type_id" field if the given value is not nil.
func (_u *AnswerSetUpdateOne) SetNillableQuestionTypeID(v *int) *AnswerSetUpdateOne {
	if v != nil {
		_u.SetQuestionTypeID(*v)
	}
	return _u
}

// AddQuestionTypeID adds value to the "question_type_id" field.
func (_u *AnswerSetUpdateOne) AddQuestionTypeID(v int) *AnswerSetUpdateOne {
	_u.mutation.AddQuestionTypeID(v)
	return _u
}

// ClearQuestionTypeID clears the value of the "question_type_id" field.
func (_u *AnswerSetUpdateOne) ClearQuestionTypeID() *AnswerSetUpdateOne {
	_u.mutation.ClearQuestionTypeID()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AnswerSetUpdateOne) AddAnswerIDs(ids ...int) *AnswerSetUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AnswerSetUpdateOne) AddAnswers(v ...*Answer) *AnswerSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerSetMutation object of the builder.
func (_u *AnswerSetUpdateOne) Mutation() *AnswerSetMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AnswerSetUpdateOne) ClearAnswers() *AnswerSetUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AnswerSetUpdateOne) RemoveAnswerIDs(ids ...int) *AnswerSetUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AnswerSetUpdateOne) RemoveAnswers(v ...*Answer) *AnswerSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the AnswerSetUpdate builder.
func (_u *AnswerSetUpdateOne) Where(ps ...predicate.AnswerSet) *AnswerSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerSetUpdateOne) Select(field string, fields ...string) *AnswerSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerSet entity.
func (_u *AnswerSetUpdateOne) Save(ctx context.Context) (*AnswerSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerSetUpdateOne) SaveX(ctx context.Context) *AnswerSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerSetUpdateOne) check() error {
	if _u.mutation.CellCleared() && len(_u.mutation.CellIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerSet.cell"`)
	}
	return nil
}

func (_u *AnswerSetUpdateOne) sqlSave(ctx context.Context) (_node *AnswerSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerset.Table, answerset.Columns, sqlgraph.NewFieldSpec(answerset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerset.FieldID)
		for _, f := range fields {
			if !answerset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerset.FieldID {
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
	if value, ok := _u.mutation.AnswerFound(); ok {
		_spec.SetField(answerset.FieldAnswerFound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionTypeID(); ok {
		_spec.SetField(answerset.FieldQuestionTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionTypeID(); ok {
		_spec.AddField(answerset.FieldQuestionTypeID, field.TypeInt, value)
	}
	if _u.mutation.QuestionTypeIDCleared() {
		_spec.ClearField(answerset.FieldQuestionTypeID, field.TypeInt)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnswerSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
