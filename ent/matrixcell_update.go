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
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
)

// MatrixCellUpdate is the builder for updating MatrixCell entities.
type MatrixCellUpdate struct {
	config
	hooks    []Hook
	mutation *MatrixCellMutation
}

// Where appends a list predicates to the MatrixCellUpdate builder.
func (_u *MatrixCellUpdate) Where(ps ...predicate.MatrixCell) *MatrixCellUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCellType sets the "cell_type" field.
func (_u *MatrixCellUpdate) SetCellType(v string) *MatrixCellUpdate {
	_u.mutation.SetCellType(v)
	return _u
}

// SetNillableCellType sets the "cell_type" field if the given value is not nil.
func (_u *MatrixCellUpdate) SetNillableCellType(v *string) *MatrixCellUpdate {
	if v != nil {
		_u.SetCellType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatrixCellUpdate) SetStatus(v matrixcell.Status) *MatrixCellUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatrixCellUpdate) SetNillableStatus(v *matrixcell.Status) *MatrixCellUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentAnswerSetID sets the "current_answer_set_id" field.
func (_u *MatrixCellUpdate) SetCurrentAnswerSetID(v int) *MatrixCellUpdate {
	_u.mutation.ResetCurrentAnswerSetID()
	_u.mutation.SetCurrentAnswerSetID(v)
	return _u
}

// SetNillableCurrentAnswerSetID sets the "current_answer_set_id" field if the given value is not nil.
func (_u *MatrixCellUpdate) SetNillableCurrentAnswerSetID(v *int) *MatrixCellUpdate {
	if v != nil {
		_u.SetCurrentAnswerSetID(*v)
	}
	return _u
}

// AddCurrentAnswerSetID adds value to the "current_answer_set_id" field.
func (_u *MatrixCellUpdate) AddCurrentAnswerSetID(v int) *MatrixCellUpdate {
	_u.mutation.AddCurrentAnswerSetID(v)
	return _u
}

// ClearCurrentAnswerSetID clears the value of the "current_answer_set_id" field.
func (_u *MatrixCellUpdate) ClearCurrentAnswerSetID() *MatrixCellUpdate {
	_u.mutation.ClearCurrentAnswerSetID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MatrixCellUpdate) SetDeletedAt(v time.Time) *MatrixCellUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MatrixCellUpdate) SetNillableDeletedAt(v *time.Time) *MatrixCellUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MatrixCellUpdate) ClearDeletedAt() *MatrixCellUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEntityRefIDs adds the "entity_refs" edge to the CellEntityRef entity by IDs.
func (_u *MatrixCellUpdate) AddEntityRefIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.AddEntityRefIDs(ids...)
	return _u
}

// AddEntityRefs adds the "entity_refs" edges to the CellEntityRef entity.
func (_u *MatrixCellUpdate) AddEntityRefs(v ...*CellEntityRef) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityRefIDs(ids...)
}

// AddAnswerSetIDs adds the "answer_sets" edge to the AnswerSet entity by IDs.
func (_u *MatrixCellUpdate) AddAnswerSetIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.AddAnswerSetIDs(ids...)
	return _u
}

// AddAnswerSets adds the "answer_sets" edges to the AnswerSet entity.
func (_u *MatrixCellUpdate) AddAnswerSets(v ...*AnswerSet) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerSetIDs(ids...)
}

// AddQaJobIDs adds the "qa_jobs" edge to the QAJob entity by IDs.
func (_u *MatrixCellUpdate) AddQaJobIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.AddQaJobIDs(ids...)
	return _u
}

// AddQaJobs adds the "qa_jobs" edges to the QAJob entity.
func (_u *MatrixCellUpdate) AddQaJobs(v ...*QAJob) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQaJobIDs(ids...)
}

// Mutation returns the MatrixCellMutation object of the builder.
func (_u *MatrixCellUpdate) Mutation() *MatrixCellMutation {
	return _u.mutation
}

// ClearEntityRefs clears all "entity_refs" edges to the CellEntityRef entity.
func (_u *MatrixCellUpdate) ClearEntityRefs() *MatrixCellUpdate {
	_u.mutation.ClearEntityRefs()
	return _u
}

// RemoveEntityRefIDs removes the "entity_refs" edge to CellEntityRef entities by IDs.
func (_u *MatrixCellUpdate) RemoveEntityRefIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.RemoveEntityRefIDs(ids...)
	return _u
}

// RemoveEntityRefs removes "entity_refs" edges to CellEntityRef entities.
func (_u *MatrixCellUpdate) RemoveEntityRefs(v ...*CellEntityRef) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityRefIDs(ids...)
}

// ClearAnswerSets clears all "answer_sets" edges to the AnswerSet entity.
func (_u *MatrixCellUpdate) ClearAnswerSets() *MatrixCellUpdate {
	_u.mutation.ClearAnswerSets()
	return _u
}

// RemoveAnswerSetIDs removes the "answer_sets" edge to AnswerSet entities by IDs.
func (_u *MatrixCellUpdate) RemoveAnswerSetIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.RemoveAnswerSetIDs(ids...)
	return _u
}

// RemoveAnswerSets removes "answer_sets" edges to AnswerSet entities.
func (_u *MatrixCellUpdate) RemoveAnswerSets(v ...*AnswerSet) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerSetIDs(ids...)
}

// ClearQaJobs clears all "qa_jobs" edges to the QAJob entity.
func (_u *MatrixCellUpdate) ClearQaJobs() *MatrixCellUpdate {
	_u.mutation.ClearQaJobs()
	return _u
}

// RemoveQaJobIDs removes the "qa_jobs" edge to QAJob entities by IDs.
func (_u *MatrixCellUpdate) RemoveQaJobIDs(ids ...int) *MatrixCellUpdate {
	_u.mutation.RemoveQaJobIDs(ids...)
	return _u
}

// RemoveQaJobs removes "qa_jobs" edges to QAJob entities.
func (_u *MatrixCellUpdate) RemoveQaJobs(v ...*QAJob) *MatrixCellUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQaJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatrixCellUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixCellUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatrixCellUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixCellUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixCellUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matrixcell.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatrixCell.status": %w`, err)}
		}
	}
	if _u.mutation.MatrixCleared() && len(_u.mutation.MatrixIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatrixCell.matrix"`)
	}
	return nil
}

func (_u *MatrixCellUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrixcell.Table, matrixcell.Columns, sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CellType(); ok {
		_spec.SetField(matrixcell.FieldCellType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matrixcell.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentAnswerSetID(); ok {
		_spec.SetField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentAnswerSetID(); ok {
		_spec.AddField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt, value)
	}
	if _u.mutation.CurrentAnswerSetIDCleared() {
		_spec.ClearField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(matrixcell.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(matrixcell.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntityRefsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityRefsIDs(); len(nodes) > 0 && !_u.mutation.EntityRefsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityRefsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswerSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswerSetsIDs(); len(nodes) > 0 && !_u.mutation.AnswerSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswerSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QaJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQaJobsIDs(); len(nodes) > 0 && !_u.mutation.QaJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QaJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrixcell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatrixCellUpdateOne is the builder for updating a single MatrixCell entity.
type MatrixCellUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatrixCellMutation
}

// SetCellType sets the "cell_type" field.
func (_u *MatrixCellUpdateOne) SetCellType(v string) *MatrixCellUpdateOne {
	_u.mutation.SetCellType(v)
	return _u
}

// SetNillableCellType sets the "cell_type" field if the given value is not nil.
func (_u *MatrixCellUpdateOne) SetNillableCellType(v *string) *MatrixCellUpdateOne {
	if v != nil {
		_u.SetCellType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatrixCellUpdateOne) SetStatus(v matrixcell.Status) *MatrixCellUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatrixCellUpdateOne) SetNillableStatus(v *matrixcell.Status) *MatrixCellUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentAnswerSetID sets the "current_answer_set_id" field.
func (_u *MatrixCellUpdateOne) SetCurrentAnswerSetID(v int) *MatrixCellUpdateOne {
	_u.mutation.ResetCurrentAnswerSetID()
	_u.mutation.SetCurrentAnswerSetID(v)
	return _u
}

// SetNillableCurrentAnswerSetID sets the "current_answer_set_id" field if the given value is not nil.
func (_u *MatrixCellUpdateOne) SetNillableCurrentAnswerSetID(v *int) *MatrixCellUpdateOne {
	if v != nil {
		_u.SetCurrentAnswerSetID(*v)
	}
	return _u
}

// AddCurrentAnswerSetID adds value to the "current_answer_set_id" field.
func (_u *MatrixCellUpdateOne) AddCurrentAnswerSetID(v int) *MatrixCellUpdateOne {
	_u.mutation.AddCurrentAnswerSetID(v)
	return _u
}

// ClearCurrentAnswerSetID clears the value of the "current_answer_set_id" field.
func (_u *MatrixCellUpdateOne) ClearCurrentAnswerSetID() *MatrixCellUpdateOne {
	_u.mutation.ClearCurrentAnswerSetID()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MatrixCellUpdateOne) SetDeletedAt(v time.Time) *MatrixCellUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MatrixCellUpdateOne) SetNillableDeletedAt(v *time.Time) *MatrixCellUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MatrixCellUpdateOne) ClearDeletedAt() *MatrixCellUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEntityRefIDs adds the "entity_refs" edge to the CellEntityRef entity by IDs.
func (_u *MatrixCellUpdateOne) AddEntityRefIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.AddEntityRefIDs(ids...)
	return _u
}

// AddEntityRefs adds the "entity_refs" edges to the CellEntityRef entity.
func (_u *MatrixCellUpdateOne) AddEntityRefs(v ...*CellEntityRef) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityRefIDs(ids...)
}

// AddAnswerSetIDs adds the "answer_sets" edge to the AnswerSet entity by IDs.
func (_u *MatrixCellUpdateOne) AddAnswerSetIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.AddAnswerSetIDs(ids...)
	return _u
}

// AddAnswerSets adds the "answer_sets" edges to the AnswerSet entity.
func (_u *MatrixCellUpdateOne) AddAnswerSets(v ...*AnswerSet) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerSetIDs(ids...)
}

// AddQaJobIDs adds the "qa_jobs" edge to the QAJob entity by IDs.
func (_u *MatrixCellUpdateOne) AddQaJobIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.AddQaJobIDs(ids...)
	return _u
}

// AddQaJobs adds the "qa_jobs" edges to the QAJob entity.
func (_u *MatrixCellUpdateOne) AddQaJobs(v ...*QAJob) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQaJobIDs(ids...)
}

// Mutation returns the MatrixCellMutation object of the builder.
func (_u *MatrixCellUpdateOne) Mutation() *MatrixCellMutation {
	return _u.mutation
}

// ClearEntityRefs clears all "entity_refs" edges to the CellEntityRef entity.
func (_u *MatrixCellUpdateOne) ClearEntityRefs() *MatrixCellUpdateOne {
	_u.mutation.ClearEntityRefs()
	return _u
}

// RemoveEntityRefIDs removes the "entity_refs" edge to CellEntityRef entities by IDs.
func (_u *MatrixCellUpdateOne) RemoveEntityRefIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.RemoveEntityRefIDs(ids...)
	return _u
}

// RemoveEntityRefs removes "entity_refs" edges to CellEntityRef entities.
func (_u *MatrixCellUpdateOne) RemoveEntityRefs(v ...*CellEntityRef) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityRefIDs(ids...)
}

// ClearAnswerSets clears all "answer_sets" edges to the AnswerSet entity.
func (_u *MatrixCellUpdateOne) ClearAnswerSets() *MatrixCellUpdateOne {
	_u.mutation.ClearAnswerSets()
	return _u
}

// RemoveAnswerSetIDs removes the "answer_sets" edge to AnswerSet entities by IDs.
func (_u *MatrixCellUpdateOne) RemoveAnswerSetIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.RemoveAnswerSetIDs(ids...)
	return _u
}

// RemoveAnswerSets removes "answer_sets" edges to AnswerSet entities.
func (_u *MatrixCellUpdateOne) RemoveAnswerSets(v ...*AnswerSet) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerSetIDs(ids...)
}

// ClearQaJobs clears all "qa_jobs" edges to the QAJob entity.
func (_u *MatrixCellUpdateOne) ClearQaJobs() *MatrixCellUpdateOne {
	_u.mutation.ClearQaJobs()
	return _u
}

// RemoveQaJobIDs removes the "qa_jobs" edge to QAJob entities by IDs.
func (_u *MatrixCellUpdateOne) RemoveQaJobIDs(ids ...int) *MatrixCellUpdateOne {
	_u.mutation.RemoveQaJobIDs(ids...)
	return _u
}

// RemoveQaJobs removes "qa_jobs" edges to QAJob entities.
func (_u *MatrixCellUpdateOne) RemoveQaJobs(v ...*QAJob) *MatrixCellUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQaJobIDs(ids...)
}

// Where appends a list predicates to the MatrixCellUpdate builder.
func (_u *MatrixCellUpdateOne) Where(ps ...predicate.MatrixCell) *MatrixCellUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatrixCellUpdateOne) Select(field string, fields ...string) *MatrixCellUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatrixCell entity.
func (_u *MatrixCellUpdateOne) Save(ctx context.Context) (*MatrixCell, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatrixCellUpdateOne) SaveX(ctx context.Context) *MatrixCell {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatrixCellUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatrixCellUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatrixCellUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matrixcell.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatrixCell.status": %w`, err)}
		}
	}
	if _u.mutation.MatrixCleared() && len(_u.mutation.MatrixIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatrixCell.matrix"`)
	}
	return nil
}

func (_u *MatrixCellUpdateOne) sqlSave(ctx context.Context) (_node *MatrixCell, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matrixcell.Table, matrixcell.Columns, sqlgraph.NewFieldSpec(matrixcell.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatrixCell.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matrixcell.FieldID)
		for _, f := range fields {
			if !matrixcell.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matrixcell.FieldID {
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
	if value, ok := _u.mutation.CellType(); ok {
		_spec.SetField(matrixcell.FieldCellType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matrixcell.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentAnswerSetID(); ok {
		_spec.SetField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentAnswerSetID(); ok {
		_spec.AddField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt, value)
	}
	if _u.mutation.CurrentAnswerSetIDCleared() {
		_spec.ClearField(matrixcell.FieldCurrentAnswerSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(matrixcell.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(matrixcell.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntityRefsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityRefsIDs(); len(nodes) > 0 && !_u.mutation.EntityRefsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityRefsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswerSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswerSetsIDs(); len(nodes) > 0 && !_u.mutation.AnswerSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswerSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QaJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQaJobsIDs(); len(nodes) > 0 && !_u.mutation.QaJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QaJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MatrixCell{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matrixcell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
