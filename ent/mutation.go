// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
	"github.com/docmatrix-ai/docmatrix/ent/answerset"
	"github.com/docmatrix-ai/docmatrix/ent/cellentityref"
	"github.com/docmatrix-ai/docmatrix/ent/chunk"
	"github.com/docmatrix-ai/docmatrix/ent/chunkset"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/company"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/ent/entityset"
	"github.com/docmatrix-ai/docmatrix/ent/entitysetmember"
	"github.com/docmatrix-ai/docmatrix/ent/executionfile"
	"github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/ent/serviceaccount"
	"github.com/docmatrix-ai/docmatrix/ent/subscription"
	"github.com/docmatrix-ai/docmatrix/ent/usageevent"
	"github.com/docmatrix-ai/docmatrix/ent/workflow"
	"github.com/docmatrix-ai/docmatrix/ent/workflowexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer            = "Answer"
	TypeAnswerSet         = "AnswerSet"
	TypeCellEntityRef     = "CellEntityRef"
	TypeChunk             = "Chunk"
	TypeChunkSet          = "ChunkSet"
	TypeCitation          = "Citation"
	TypeCompany           = "Company"
	TypeDocument          = "Document"
	TypeEntitySet         = "EntitySet"
	TypeEntitySetMember   = "EntitySetMember"
	TypeExecutionFile     = "ExecutionFile"
	TypeMatrix            = "Matrix"
	TypeMatrixCell        = "MatrixCell"
	TypeQAJob             = "QAJob"
	TypeServiceAccount    = "ServiceAccount"
	TypeSubscription      = "Subscription"
	TypeUsageEvent        = "UsageEvent"
	TypeWorkflow          = "Workflow"
	TypeWorkflowExecution = "WorkflowExecution"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                Op
	typ               string
	id                *int
	answer_order      *int
	addanswer_order   *int
	answer_type       *answer.AnswerType
	answer_data       *map[string]interface{}
	confidence        *float64
	addconfidence     *float64
	clearedFields     map[string]struct{}
	answer_set        *int
	clearedanswer_set bool
	citations         map[int]struct{}
	removedcitations  map[int]struct{}
	clearedcitations  bool
	done              bool
	oldValue          func(context.Context) (*Answer, error)
	predicates        []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id int) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnswerSetID sets the "answer_set_id" field.
func (m *AnswerMutation) SetAnswerSetID(i int) {
	m.answer_set = &i
}

// AnswerSetID returns the value of the "answer_set_id" field in the mutation.
func (m *AnswerMutation) AnswerSetID() (r int, exists bool) {
	v := m.answer_set
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerSetID returns the old "answer_set_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnswerSetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerSetID: %w", err)
	}
	return oldValue.AnswerSetID, nil
}

// ResetAnswerSetID resets all changes to the "answer_set_id" field.
func (m *AnswerMutation) ResetAnswerSetID() {
	m.answer_set = nil
}

// SetAnswerOrder sets the "answer_order" field.
func (m *AnswerMutation) SetAnswerOrder(i int) {
	m.answer_order = &i
	m.addanswer_order = nil
}

// AnswerOrder returns the value of the "answer_order" field in the mutation.
func (m *AnswerMutation) AnswerOrder() (r int, exists bool) {
	v := m.answer_order
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerOrder returns the old "answer_order" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnswerOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerOrder: %w", err)
	}
	return oldValue.AnswerOrder, nil
}

// AddAnswerOrder adds i to the "answer_order" field.
func (m *AnswerMutation) AddAnswerOrder(i int) {
	if m.addanswer_order != nil {
		*m.addanswer_order += i
	} else {
		m.addanswer_order = &i
	}
}

// AddedAnswerOrder returns the value that was added to the "answer_order" field in this mutation.
func (m *AnswerMutation) AddedAnswerOrder() (r int, exists bool) {
	v := m.addanswer_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswerOrder resets all changes to the "answer_order" field.
func (m *AnswerMutation) ResetAnswerOrder() {
	m.answer_order = nil
	m.addanswer_order = nil
}

// SetAnswerType sets the "answer_type" field.
func (m *AnswerMutation) SetAnswerType(at answer.AnswerType) {
	m.answer_type = &at
}

// AnswerType returns the value of the "answer_type" field in the mutation.
func (m *AnswerMutation) AnswerType() (r answer.AnswerType, exists bool) {
	v := m.answer_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerType returns the old "answer_type" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnswerType(ctx context.Context) (v answer.AnswerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerType: %w", err)
	}
	return oldValue.AnswerType, nil
}

// ResetAnswerType resets all changes to the "answer_type" field.
func (m *AnswerMutation) ResetAnswerType() {
	m.answer_type = nil
}

// SetAnswerData sets the "answer_data" field.
func (m *AnswerMutation) SetAnswerData(value map[string]interface{}) {
	m.answer_data = &value
}

// AnswerData returns the value of the "answer_data" field in the mutation.
func (m *AnswerMutation) AnswerData() (r map[string]interface{}, exists bool) {
	v := m.answer_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerData returns the old "answer_data" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnswerData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerData: %w", err)
	}
	return oldValue.AnswerData, nil
}

// ResetAnswerData resets all changes to the "answer_data" field.
func (m *AnswerMutation) ResetAnswerData() {
	m.answer_data = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnswerMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnswerMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnswerMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnswerMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnswerMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearAnswerSet clears the "answer_set" edge to the AnswerSet entity.
func (m *AnswerMutation) ClearAnswerSet() {
	m.clearedanswer_set = true
	m.clearedFields[answer.FieldAnswerSetID] = struct{}{}
}

// AnswerSetCleared reports if the "answer_set" edge to the AnswerSet entity was cleared.
func (m *AnswerMutation) AnswerSetCleared() bool {
	return m.clearedanswer_set
}

// AnswerSetIDs returns the "answer_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnswerSetID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) AnswerSetIDs() (ids []int) {
	if id := m.answer_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnswerSet resets all changes to the "answer_set" edge.
func (m *AnswerMutation) ResetAnswerSet() {
	m.answer_set = nil
	m.clearedanswer_set = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *AnswerMutation) AddCitationIDs(ids ...int) {
	if m.citations == nil {
		m.citations = make(map[int]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *AnswerMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *AnswerMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *AnswerMutation) RemoveCitationIDs(ids ...int) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *AnswerMutation) RemovedCitationsIDs() (ids []int) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *AnswerMutation) CitationsIDs() (ids []int) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *AnswerMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.answer_set != nil {
		fields = append(fields, answer.FieldAnswerSetID)
	}
	if m.answer_order != nil {
		fields = append(fields, answer.FieldAnswerOrder)
	}
	if m.answer_type != nil {
		fields = append(fields, answer.FieldAnswerType)
	}
	if m.answer_data != nil {
		fields = append(fields, answer.FieldAnswerData)
	}
	if m.confidence != nil {
		fields = append(fields, answer.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldAnswerSetID:
		return m.AnswerSetID()
	case answer.FieldAnswerOrder:
		return m.AnswerOrder()
	case answer.FieldAnswerType:
		return m.AnswerType()
	case answer.FieldAnswerData:
		return m.AnswerData()
	case answer.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldAnswerSetID:
		return m.OldAnswerSetID(ctx)
	case answer.FieldAnswerOrder:
		return m.OldAnswerOrder(ctx)
	case answer.FieldAnswerType:
		return m.OldAnswerType(ctx)
	case answer.FieldAnswerData:
		return m.OldAnswerData(ctx)
	case answer.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldAnswerSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerSetID(v)
		return nil
	case answer.FieldAnswerOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerOrder(v)
		return nil
	case answer.FieldAnswerType:
		v, ok := value.(answer.AnswerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerType(v)
		return nil
	case answer.FieldAnswerData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerData(v)
		return nil
	case answer.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addanswer_order != nil {
		fields = append(fields, answer.FieldAnswerOrder)
	}
	if m.addconfidence != nil {
		fields = append(fields, answer.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldAnswerOrder:
		return m.AddedAnswerOrder()
	case answer.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldAnswerOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswerOrder(v)
		return nil
	case answer.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldAnswerSetID:
		m.ResetAnswerSetID()
		return nil
	case answer.FieldAnswerOrder:
		m.ResetAnswerOrder()
		return nil
	case answer.FieldAnswerType:
		m.ResetAnswerType()
		return nil
	case answer.FieldAnswerData:
		m.ResetAnswerData()
		return nil
	case answer.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.answer_set != nil {
		edges = append(edges, answer.EdgeAnswerSet)
	}
	if m.citations != nil {
		edges = append(edges, answer.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeAnswerSet:
		if id := m.answer_set; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, answer.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanswer_set {
		edges = append(edges, answer.EdgeAnswerSet)
	}
	if m.clearedcitations {
		edges = append(edges, answer.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeAnswerSet:
		return m.clearedanswer_set
	case answer.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeAnswerSet:
		m.ClearAnswerSet()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeAnswerSet:
		m.ResetAnswerSet()
		return nil
	case answer.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// AnswerSetMutation represents an operation that mutates the AnswerSet nodes in the graph.
type AnswerSetMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	answer_found        *bool
	question_type_id    *int
	addquestion_type_id *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	cell                *int
	clearedcell         bool
	answers             map[int]struct{}
	removedanswers      map[int]struct{}
	clearedanswers      bool
	done                bool
	oldValue            func(context.Context) (*AnswerSet, error)
	predicates          []predicate.AnswerSet
}

var _ ent.Mutation = (*AnswerSetMutation)(nil)

// answersetOption allows management of the mutation configuration using functional options.
type answersetOption func(*AnswerSetMutation)

// newAnswerSetMutation creates new mutation for the AnswerSet entity.
func newAnswerSetMutation(c config, op Op, opts ...answersetOption) *AnswerSetMutation {
	m := &AnswerSetMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerSetID sets the ID field of the mutation.
func withAnswerSetID(id int) answersetOption {
	return func(m *AnswerSetMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerSet
		)
		m.oldValue = func(ctx context.Context) (*AnswerSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerSet sets the old AnswerSet of the mutation.
func withAnswerSet(node *AnswerSet) answersetOption {
	return func(m *AnswerSetMutation) {
		m.oldValue = func(context.Context) (*AnswerSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerSetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerSetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCellID sets the "cell_id" field.
func (m *AnswerSetMutation) SetCellID(i int) {
	m.cell = &i
}

// CellID returns the value of the "cell_id" field in the mutation.
func (m *AnswerSetMutation) CellID() (r int, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCellID returns the old "cell_id" field's value of the AnswerSet entity.
// If the AnswerSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerSetMutation) OldCellID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellID: %w", err)
	}
	return oldValue.CellID, nil
}

// ResetCellID resets all changes to the "cell_id" field.
func (m *AnswerSetMutation) ResetCellID() {
	m.cell = nil
}

// SetAnswerFound sets the "answer_found" field.
func (m *AnswerSetMutation) SetAnswerFound(b bool) {
	m.answer_found = &b
}

// AnswerFound returns the value of the "answer_found" field in the mutation.
func (m *AnswerSetMutation) AnswerFound() (r bool, exists bool) {
	v := m.answer_found
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerFound returns the old "answer_found" field's value of the AnswerSet entity.
// If the AnswerSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerSetMutation) OldAnswerFound(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerFound: %w", err)
	}
	return oldValue.AnswerFound, nil
}

// ResetAnswerFound resets all changes to the "answer_found" field.
func (m *AnswerSetMutation) ResetAnswerFound() {
	m.answer_found = nil
}

// SetQuestionTypeID sets the "question_type_id" field.
func (m *AnswerSetMutation) SetQuestionTypeID(i int) {
	m.question_type_id = &i
	m.addquestion_type_id = nil
}

// QuestionTypeID returns the value of the "question_type_id" field in the mutation.
func (m *AnswerSetMutation) QuestionTypeID() (r int, exists bool) {
	v := m.question_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionTypeID returns the old "question_type_id" field's value of the AnswerSet entity.
// If the AnswerSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerSetMutation) OldQuestionTypeID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionTypeID: %w", err)
	}
	return oldValue.QuestionTypeID, nil
}

// AddQuestionTypeID adds i to the "question_type_id" field.
func (m *AnswerSetMutation) AddQuestionTypeID(i int) {
	if m.addquestion_type_id != nil {
		*m.addquestion_type_id += i
	} else {
		m.addquestion_type_id = &i
	}
}

// AddedQuestionTypeID returns the value that was added to the "question_type_id" field in this mutation.
func (m *AnswerSetMutation) AddedQuestionTypeID() (r int, exists bool) {
	v := m.addquestion_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuestionTypeID clears the value of the "question_type_id" field.
func (m *AnswerSetMutation) ClearQuestionTypeID() {
	m.question_type_id = nil
	m.addquestion_type_id = nil
	m.clearedFields[answerset.FieldQuestionTypeID] = struct{}{}
}

// QuestionTypeIDCleared returns if the "question_type_id" field was cleared in this mutation.
func (m *AnswerSetMutation) QuestionTypeIDCleared() bool {
	_, ok := m.clearedFields[answerset.FieldQuestionTypeID]
	return ok
}

// ResetQuestionTypeID resets all changes to the "question_type_id" field.
func (m *AnswerSetMutation) ResetQuestionTypeID() {
	m.question_type_id = nil
	m.addquestion_type_id = nil
	delete(m.clearedFields, answerset.FieldQuestionTypeID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnswerSet entity.
// If the AnswerSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCell clears the "cell" edge to the MatrixCell entity.
func (m *AnswerSetMutation) ClearCell() {
	m.clearedcell = true
	m.clearedFields[answerset.FieldCellID] = struct{}{}
}

// CellCleared reports if the "cell" edge to the MatrixCell entity was cleared.
func (m *AnswerSetMutation) CellCleared() bool {
	return m.clearedcell
}

// CellIDs returns the "cell" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CellID instead. It exists only for internal usage by the builders.
func (m *AnswerSetMutation) CellIDs() (ids []int) {
	if id := m.cell; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCell resets all changes to the "cell" edge.
func (m *AnswerSetMutation) ResetCell() {
	m.cell = nil
	m.clearedcell = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *AnswerSetMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *AnswerSetMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *AnswerSetMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *AnswerSetMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *AnswerSetMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *AnswerSetMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *AnswerSetMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the AnswerSetMutation builder.
func (m *AnswerSetMutation) Where(ps ...predicate.AnswerSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerSet).
func (m *AnswerSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerSetMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.cell != nil {
		fields = append(fields, answerset.FieldCellID)
	}
	if m.answer_found != nil {
		fields = append(fields, answerset.FieldAnswerFound)
	}
	if m.question_type_id != nil {
		fields = append(fields, answerset.FieldQuestionTypeID)
	}
	if m.created_at != nil {
		fields = append(fields, answerset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerset.FieldCellID:
		return m.CellID()
	case answerset.FieldAnswerFound:
		return m.AnswerFound()
	case answerset.FieldQuestionTypeID:
		return m.QuestionTypeID()
	case answerset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerset.FieldCellID:
		return m.OldCellID(ctx)
	case answerset.FieldAnswerFound:
		return m.OldAnswerFound(ctx)
	case answerset.FieldQuestionTypeID:
		return m.OldQuestionTypeID(ctx)
	case answerset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerset.FieldCellID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellID(v)
		return nil
	case answerset.FieldAnswerFound:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerFound(v)
		return nil
	case answerset.FieldQuestionTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionTypeID(v)
		return nil
	case answerset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerSetMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_type_id != nil {
		fields = append(fields, answerset.FieldQuestionTypeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerSetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerset.FieldQuestionTypeID:
		return m.AddedQuestionTypeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerset.FieldQuestionTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerSetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerset.FieldQuestionTypeID) {
		fields = append(fields, answerset.FieldQuestionTypeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerSetMutation) ClearField(name string) error {
	switch name {
	case answerset.FieldQuestionTypeID:
		m.ClearQuestionTypeID()
		return nil
	}
	return fmt.Errorf("unknown AnswerSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerSetMutation) ResetField(name string) error {
	switch name {
	case answerset.FieldCellID:
		m.ResetCellID()
		return nil
	case answerset.FieldAnswerFound:
		m.ResetAnswerFound()
		return nil
	case answerset.FieldQuestionTypeID:
		m.ResetQuestionTypeID()
		return nil
	case answerset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cell != nil {
		edges = append(edges, answerset.EdgeCell)
	}
	if m.answers != nil {
		edges = append(edges, answerset.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answerset.EdgeCell:
		if id := m.cell; id != nil {
			return []ent.Value{*id}
		}
	case answerset.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanswers != nil {
		edges = append(edges, answerset.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case answerset.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcell {
		edges = append(edges, answerset.EdgeCell)
	}
	if m.clearedanswers {
		edges = append(edges, answerset.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerSetMutation) EdgeCleared(name string) bool {
	switch name {
	case answerset.EdgeCell:
		return m.clearedcell
	case answerset.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerSetMutation) ClearEdge(name string) error {
	switch name {
	case answerset.EdgeCell:
		m.ClearCell()
		return nil
	}
	return fmt.Errorf("unknown AnswerSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerSetMutation) ResetEdge(name string) error {
	switch name {
	case answerset.EdgeCell:
		m.ResetCell()
		return nil
	case answerset.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown AnswerSet edge %s", name)
}

// CellEntityRefMutation represents an operation that mutates the CellEntityRef nodes in the graph.
type CellEntityRefMutation struct {
	config
	op            Op
	typ           string
	id            *int
	role          *string
	entity_id     *int
	addentity_id  *int
	clearedFields map[string]struct{}
	cell          *int
	clearedcell   bool
	done          bool
	oldValue      func(context.Context) (*CellEntityRef, error)
	predicates    []predicate.CellEntityRef
}

var _ ent.Mutation = (*CellEntityRefMutation)(nil)

// cellentityrefOption allows management of the mutation configuration using functional options.
type cellentityrefOption func(*CellEntityRefMutation)

// newCellEntityRefMutation creates new mutation for the CellEntityRef entity.
func newCellEntityRefMutation(c config, op Op, opts ...cellentityrefOption) *CellEntityRefMutation {
	m := &CellEntityRefMutation{
		config:        c,
		op:            op,
		typ:           TypeCellEntityRef,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellEntityRefID sets the ID field of the mutation.
func withCellEntityRefID(id int) cellentityrefOption {
	return func(m *CellEntityRefMutation) {
		var (
			err   error
			once  sync.Once
			value *CellEntityRef
		)
		m.oldValue = func(ctx context.Context) (*CellEntityRef, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CellEntityRef.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCellEntityRef sets the old CellEntityRef of the mutation.
func withCellEntityRef(node *CellEntityRef) cellentityrefOption {
	return func(m *CellEntityRefMutation) {
		m.oldValue = func(context.Context) (*CellEntityRef, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellEntityRefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellEntityRefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellEntityRefMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellEntityRefMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CellEntityRef.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCellID sets the "cell_id" field.
func (m *CellEntityRefMutation) SetCellID(i int) {
	m.cell = &i
}

// CellID returns the value of the "cell_id" field in the mutation.
func (m *CellEntityRefMutation) CellID() (r int, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCellID returns the old "cell_id" field's value of the CellEntityRef entity.
// If the CellEntityRef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellEntityRefMutation) OldCellID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellID: %w", err)
	}
	return oldValue.CellID, nil
}

// ResetCellID resets all changes to the "cell_id" field.
func (m *CellEntityRefMutation) ResetCellID() {
	m.cell = nil
}

// SetRole sets the "role" field.
func (m *CellEntityRefMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *CellEntityRefMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the CellEntityRef entity.
// If the CellEntityRef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellEntityRefMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *CellEntityRefMutation) ResetRole() {
	m.role = nil
}

// SetEntityID sets the "entity_id" field.
func (m *CellEntityRefMutation) SetEntityID(i int) {
	m.entity_id = &i
	m.addentity_id = nil
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *CellEntityRefMutation) EntityID() (r int, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the CellEntityRef entity.
// If the CellEntityRef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellEntityRefMutation) OldEntityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// AddEntityID adds i to the "entity_id" field.
func (m *CellEntityRefMutation) AddEntityID(i int) {
	if m.addentity_id != nil {
		*m.addentity_id += i
	} else {
		m.addentity_id = &i
	}
}

// AddedEntityID returns the value that was added to the "entity_id" field in this mutation.
func (m *CellEntityRefMutation) AddedEntityID() (r int, exists bool) {
	v := m.addentity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *CellEntityRefMutation) ResetEntityID() {
	m.entity_id = nil
	m.addentity_id = nil
}

// ClearCell clears the "cell" edge to the MatrixCell entity.
func (m *CellEntityRefMutation) ClearCell() {
	m.clearedcell = true
	m.clearedFields[cellentityref.FieldCellID] = struct{}{}
}

// CellCleared reports if the "cell" edge to the MatrixCell entity was cleared.
func (m *CellEntityRefMutation) CellCleared() bool {
	return m.clearedcell
}

// CellIDs returns the "cell" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CellID instead. It exists only for internal usage by the builders.
func (m *CellEntityRefMutation) CellIDs() (ids []int) {
	if id := m.cell; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCell resets all changes to the "cell" edge.
func (m *CellEntityRefMutation) ResetCell() {
	m.cell = nil
	m.clearedcell = false
}

// Where appends a list predicates to the CellEntityRefMutation builder.
func (m *CellEntityRefMutation) Where(ps ...predicate.CellEntityRef) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellEntityRefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellEntityRefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CellEntityRef, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellEntityRefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellEntityRefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CellEntityRef).
func (m *CellEntityRefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellEntityRefMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.cell != nil {
		fields = append(fields, cellentityref.FieldCellID)
	}
	if m.role != nil {
		fields = append(fields, cellentityref.FieldRole)
	}
	if m.entity_id != nil {
		fields = append(fields, cellentityref.FieldEntityID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellEntityRefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cellentityref.FieldCellID:
		return m.CellID()
	case cellentityref.FieldRole:
		return m.Role()
	case cellentityref.FieldEntityID:
		return m.EntityID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellEntityRefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cellentityref.FieldCellID:
		return m.OldCellID(ctx)
	case cellentityref.FieldRole:
		return m.OldRole(ctx)
	case cellentityref.FieldEntityID:
		return m.OldEntityID(ctx)
	}
	return nil, fmt.Errorf("unknown CellEntityRef field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellEntityRefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cellentityref.FieldCellID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellID(v)
		return nil
	case cellentityref.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case cellentityref.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	}
	return fmt.Errorf("unknown CellEntityRef field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellEntityRefMutation) AddedFields() []string {
	var fields []string
	if m.addentity_id != nil {
		fields = append(fields, cellentityref.FieldEntityID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellEntityRefMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cellentityref.FieldEntityID:
		return m.AddedEntityID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellEntityRefMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cellentityref.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityID(v)
		return nil
	}
	return fmt.Errorf("unknown CellEntityRef numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellEntityRefMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellEntityRefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellEntityRefMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CellEntityRef nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellEntityRefMutation) ResetField(name string) error {
	switch name {
	case cellentityref.FieldCellID:
		m.ResetCellID()
		return nil
	case cellentityref.FieldRole:
		m.ResetRole()
		return nil
	case cellentityref.FieldEntityID:
		m.ResetEntityID()
		return nil
	}
	return fmt.Errorf("unknown CellEntityRef field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellEntityRefMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cell != nil {
		edges = append(edges, cellentityref.EdgeCell)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellEntityRefMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cellentityref.EdgeCell:
		if id := m.cell; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellEntityRefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellEntityRefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellEntityRefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcell {
		edges = append(edges, cellentityref.EdgeCell)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellEntityRefMutation) EdgeCleared(name string) bool {
	switch name {
	case cellentityref.EdgeCell:
		return m.clearedcell
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellEntityRefMutation) ClearEdge(name string) error {
	switch name {
	case cellentityref.EdgeCell:
		m.ClearCell()
		return nil
	}
	return fmt.Errorf("unknown CellEntityRef unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellEntityRefMutation) ResetEdge(name string) error {
	switch name {
	case cellentityref.EdgeCell:
		m.ResetCell()
		return nil
	}
	return fmt.Errorf("unknown CellEntityRef edge %s", name)
}

// ChunkMutation represents an operation that mutates the Chunk nodes in the graph.
type ChunkMutation struct {
	config
	op               Op
	typ              string
	id               *int
	chunk_id         *string
	document_id      *int
	adddocument_id   *int
	company_id       *int
	addcompany_id    *int
	s3_key           *string
	chunk_metadata   *map[string]interface{}
	chunk_order      *int
	addchunk_order   *int
	clearedFields    map[string]struct{}
	chunk_set        *int
	clearedchunk_set bool
	done             bool
	oldValue         func(context.Context) (*Chunk, error)
	predicates       []predicate.Chunk
}

var _ ent.Mutation = (*ChunkMutation)(nil)

// chunkOption allows management of the mutation configuration using functional options.
type chunkOption func(*ChunkMutation)

// newChunkMutation creates new mutation for the Chunk entity.
func newChunkMutation(c config, op Op, opts ...chunkOption) *ChunkMutation {
	m := &ChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkID sets the ID field of the mutation.
func withChunkID(id int) chunkOption {
	return func(m *ChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *Chunk
		)
		m.oldValue = func(ctx context.Context) (*Chunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunk sets the old Chunk of the mutation.
func withChunk(node *Chunk) chunkOption {
	return func(m *ChunkMutation) {
		m.oldValue = func(context.Context) (*Chunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChunkSetID sets the "chunk_set_id" field.
func (m *ChunkMutation) SetChunkSetID(i int) {
	m.chunk_set = &i
}

// ChunkSetID returns the value of the "chunk_set_id" field in the mutation.
func (m *ChunkMutation) ChunkSetID() (r int, exists bool) {
	v := m.chunk_set
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkSetID returns the old "chunk_set_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkSetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkSetID: %w", err)
	}
	return oldValue.ChunkSetID, nil
}

// ResetChunkSetID resets all changes to the "chunk_set_id" field.
func (m *ChunkMutation) ResetChunkSetID() {
	m.chunk_set = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *ChunkMutation) SetChunkID(s string) {
	m.chunk_id = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *ChunkMutation) ChunkID() (r string, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *ChunkMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ChunkMutation) SetDocumentID(i int) {
	m.document_id = &i
	m.adddocument_id = nil
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ChunkMutation) DocumentID() (r int, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// AddDocumentID adds i to the "document_id" field.
func (m *ChunkMutation) AddDocumentID(i int) {
	if m.adddocument_id != nil {
		*m.adddocument_id += i
	} else {
		m.adddocument_id = &i
	}
}

// AddedDocumentID returns the value that was added to the "document_id" field in this mutation.
func (m *ChunkMutation) AddedDocumentID() (r int, exists bool) {
	v := m.adddocument_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ChunkMutation) ResetDocumentID() {
	m.document_id = nil
	m.adddocument_id = nil
}

// SetCompanyID sets the "company_id" field.
func (m *ChunkMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ChunkMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *ChunkMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *ChunkMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ChunkMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetS3Key sets the "s3_key" field.
func (m *ChunkMutation) SetS3Key(s string) {
	m.s3_key = &s
}

// S3Key returns the value of the "s3_key" field in the mutation.
func (m *ChunkMutation) S3Key() (r string, exists bool) {
	v := m.s3_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Key returns the old "s3_key" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldS3Key(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Key is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Key requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Key: %w", err)
	}
	return oldValue.S3Key, nil
}

// ResetS3Key resets all changes to the "s3_key" field.
func (m *ChunkMutation) ResetS3Key() {
	m.s3_key = nil
}

// SetChunkMetadata sets the "chunk_metadata" field.
func (m *ChunkMutation) SetChunkMetadata(value map[string]interface{}) {
	m.chunk_metadata = &value
}

// ChunkMetadata returns the value of the "chunk_metadata" field in the mutation.
func (m *ChunkMutation) ChunkMetadata() (r map[string]interface{}, exists bool) {
	v := m.chunk_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkMetadata returns the old "chunk_metadata" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkMetadata: %w", err)
	}
	return oldValue.ChunkMetadata, nil
}

// ClearChunkMetadata clears the value of the "chunk_metadata" field.
func (m *ChunkMutation) ClearChunkMetadata() {
	m.chunk_metadata = nil
	m.clearedFields[chunk.FieldChunkMetadata] = struct{}{}
}

// ChunkMetadataCleared returns if the "chunk_metadata" field was cleared in this mutation.
func (m *ChunkMutation) ChunkMetadataCleared() bool {
	_, ok := m.clearedFields[chunk.FieldChunkMetadata]
	return ok
}

// ResetChunkMetadata resets all changes to the "chunk_metadata" field.
func (m *ChunkMutation) ResetChunkMetadata() {
	m.chunk_metadata = nil
	delete(m.clearedFields, chunk.FieldChunkMetadata)
}

// SetChunkOrder sets the "chunk_order" field.
func (m *ChunkMutation) SetChunkOrder(i int) {
	m.chunk_order = &i
	m.addchunk_order = nil
}

// ChunkOrder returns the value of the "chunk_order" field in the mutation.
func (m *ChunkMutation) ChunkOrder() (r int, exists bool) {
	v := m.chunk_order
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkOrder returns the old "chunk_order" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkOrder: %w", err)
	}
	return oldValue.ChunkOrder, nil
}

// AddChunkOrder adds i to the "chunk_order" field.
func (m *ChunkMutation) AddChunkOrder(i int) {
	if m.addchunk_order != nil {
		*m.addchunk_order += i
	} else {
		m.addchunk_order = &i
	}
}

// AddedChunkOrder returns the value that was added to the "chunk_order" field in this mutation.
func (m *ChunkMutation) AddedChunkOrder() (r int, exists bool) {
	v := m.addchunk_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkOrder resets all changes to the "chunk_order" field.
func (m *ChunkMutation) ResetChunkOrder() {
	m.chunk_order = nil
	m.addchunk_order = nil
}

// ClearChunkSet clears the "chunk_set" edge to the ChunkSet entity.
func (m *ChunkMutation) ClearChunkSet() {
	m.clearedchunk_set = true
	m.clearedFields[chunk.FieldChunkSetID] = struct{}{}
}

// ChunkSetCleared reports if the "chunk_set" edge to the ChunkSet entity was cleared.
func (m *ChunkMutation) ChunkSetCleared() bool {
	return m.clearedchunk_set
}

// ChunkSetIDs returns the "chunk_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChunkSetID instead. It exists only for internal usage by the builders.
func (m *ChunkMutation) ChunkSetIDs() (ids []int) {
	if id := m.chunk_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChunkSet resets all changes to the "chunk_set" edge.
func (m *ChunkMutation) ResetChunkSet() {
	m.chunk_set = nil
	m.clearedchunk_set = false
}

// Where appends a list predicates to the ChunkMutation builder.
func (m *ChunkMutation) Where(ps ...predicate.Chunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chunk).
func (m *ChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.chunk_set != nil {
		fields = append(fields, chunk.FieldChunkSetID)
	}
	if m.chunk_id != nil {
		fields = append(fields, chunk.FieldChunkID)
	}
	if m.document_id != nil {
		fields = append(fields, chunk.FieldDocumentID)
	}
	if m.company_id != nil {
		fields = append(fields, chunk.FieldCompanyID)
	}
	if m.s3_key != nil {
		fields = append(fields, chunk.FieldS3Key)
	}
	if m.chunk_metadata != nil {
		fields = append(fields, chunk.FieldChunkMetadata)
	}
	if m.chunk_order != nil {
		fields = append(fields, chunk.FieldChunkOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldChunkSetID:
		return m.ChunkSetID()
	case chunk.FieldChunkID:
		return m.ChunkID()
	case chunk.FieldDocumentID:
		return m.DocumentID()
	case chunk.FieldCompanyID:
		return m.CompanyID()
	case chunk.FieldS3Key:
		return m.S3Key()
	case chunk.FieldChunkMetadata:
		return m.ChunkMetadata()
	case chunk.FieldChunkOrder:
		return m.ChunkOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunk.FieldChunkSetID:
		return m.OldChunkSetID(ctx)
	case chunk.FieldChunkID:
		return m.OldChunkID(ctx)
	case chunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case chunk.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case chunk.FieldS3Key:
		return m.OldS3Key(ctx)
	case chunk.FieldChunkMetadata:
		return m.OldChunkMetadata(ctx)
	case chunk.FieldChunkOrder:
		return m.OldChunkOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Chunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldChunkSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkSetID(v)
		return nil
	case chunk.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case chunk.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case chunk.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case chunk.FieldS3Key:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Key(v)
		return nil
	case chunk.FieldChunkMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkMetadata(v)
		return nil
	case chunk.FieldChunkOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkMutation) AddedFields() []string {
	var fields []string
	if m.adddocument_id != nil {
		fields = append(fields, chunk.FieldDocumentID)
	}
	if m.addcompany_id != nil {
		fields = append(fields, chunk.FieldCompanyID)
	}
	if m.addchunk_order != nil {
		fields = append(fields, chunk.FieldChunkOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldDocumentID:
		return m.AddedDocumentID()
	case chunk.FieldCompanyID:
		return m.AddedCompanyID()
	case chunk.FieldChunkOrder:
		return m.AddedChunkOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentID(v)
		return nil
	case chunk.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	case chunk.FieldChunkOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chunk.FieldChunkMetadata) {
		fields = append(fields, chunk.FieldChunkMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkMutation) ClearField(name string) error {
	switch name {
	case chunk.FieldChunkMetadata:
		m.ClearChunkMetadata()
		return nil
	}
	return fmt.Errorf("unknown Chunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkMutation) ResetField(name string) error {
	switch name {
	case chunk.FieldChunkSetID:
		m.ResetChunkSetID()
		return nil
	case chunk.FieldChunkID:
		m.ResetChunkID()
		return nil
	case chunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case chunk.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case chunk.FieldS3Key:
		m.ResetS3Key()
		return nil
	case chunk.FieldChunkMetadata:
		m.ResetChunkMetadata()
		return nil
	case chunk.FieldChunkOrder:
		m.ResetChunkOrder()
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunk_set != nil {
		edges = append(edges, chunk.EdgeChunkSet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunk.EdgeChunkSet:
		if id := m.chunk_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunk_set {
		edges = append(edges, chunk.EdgeChunkSet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case chunk.EdgeChunkSet:
		return m.clearedchunk_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkMutation) ClearEdge(name string) error {
	switch name {
	case chunk.EdgeChunkSet:
		m.ClearChunkSet()
		return nil
	}
	return fmt.Errorf("unknown Chunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkMutation) ResetEdge(name string) error {
	switch name {
	case chunk.EdgeChunkSet:
		m.ResetChunkSet()
		return nil
	}
	return fmt.Errorf("unknown Chunk edge %s", name)
}

// ChunkSetMutation represents an operation that mutates the ChunkSet nodes in the graph.
type ChunkSetMutation struct {
	config
	op                Op
	typ               string
	id                *int
	company_id        *int
	addcompany_id     *int
	chunking_strategy *string
	total_chunks      *int
	addtotal_chunks   *int
	s3_prefix         *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	document          *int
	cleareddocument   bool
	chunks            map[int]struct{}
	removedchunks     map[int]struct{}
	clearedchunks     bool
	done              bool
	oldValue          func(context.Context) (*ChunkSet, error)
	predicates        []predicate.ChunkSet
}

var _ ent.Mutation = (*ChunkSetMutation)(nil)

// chunksetOption allows management of the mutation configuration using functional options.
type chunksetOption func(*ChunkSetMutation)

// newChunkSetMutation creates new mutation for the ChunkSet entity.
func newChunkSetMutation(c config, op Op, opts ...chunksetOption) *ChunkSetMutation {
	m := &ChunkSetMutation{
		config:        c,
		op:            op,
		typ:           TypeChunkSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkSetID sets the ID field of the mutation.
func withChunkSetID(id int) chunksetOption {
	return func(m *ChunkSetMutation) {
		var (
			err   error
			once  sync.Once
			value *ChunkSet
		)
		m.oldValue = func(ctx context.Context) (*ChunkSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChunkSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunkSet sets the old ChunkSet of the mutation.
func withChunkSet(node *ChunkSet) chunksetOption {
	return func(m *ChunkSetMutation) {
		m.oldValue = func(context.Context) (*ChunkSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkSetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkSetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChunkSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ChunkSetMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ChunkSetMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ChunkSetMutation) ResetDocumentID() {
	m.document = nil
}

// SetCompanyID sets the "company_id" field.
func (m *ChunkSetMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ChunkSetMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *ChunkSetMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *ChunkSetMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ChunkSetMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetChunkingStrategy sets the "chunking_strategy" field.
func (m *ChunkSetMutation) SetChunkingStrategy(s string) {
	m.chunking_strategy = &s
}

// ChunkingStrategy returns the value of the "chunking_strategy" field in the mutation.
func (m *ChunkSetMutation) ChunkingStrategy() (r string, exists bool) {
	v := m.chunking_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkingStrategy returns the old "chunking_strategy" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldChunkingStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkingStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkingStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkingStrategy: %w", err)
	}
	return oldValue.ChunkingStrategy, nil
}

// ResetChunkingStrategy resets all changes to the "chunking_strategy" field.
func (m *ChunkSetMutation) ResetChunkingStrategy() {
	m.chunking_strategy = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *ChunkSetMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *ChunkSetMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *ChunkSetMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *ChunkSetMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *ChunkSetMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetS3Prefix sets the "s3_prefix" field.
func (m *ChunkSetMutation) SetS3Prefix(s string) {
	m.s3_prefix = &s
}

// S3Prefix returns the value of the "s3_prefix" field in the mutation.
func (m *ChunkSetMutation) S3Prefix() (r string, exists bool) {
	v := m.s3_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Prefix returns the old "s3_prefix" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldS3Prefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Prefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Prefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Prefix: %w", err)
	}
	return oldValue.S3Prefix, nil
}

// ResetS3Prefix resets all changes to the "s3_prefix" field.
func (m *ChunkSetMutation) ResetS3Prefix() {
	m.s3_prefix = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChunkSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChunkSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChunkSet entity.
// If the ChunkSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChunkSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ChunkSetMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[chunkset.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ChunkSetMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ChunkSetMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ChunkSetMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by ids.
func (m *ChunkSetMutation) AddChunkIDs(ids ...int) {
	if m.chunks == nil {
		m.chunks = make(map[int]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the Chunk entity.
func (m *ChunkSetMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the Chunk entity was cleared.
func (m *ChunkSetMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the Chunk entity by IDs.
func (m *ChunkSetMutation) RemoveChunkIDs(ids ...int) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the Chunk entity.
func (m *ChunkSetMutation) RemovedChunksIDs() (ids []int) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *ChunkSetMutation) ChunksIDs() (ids []int) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *ChunkSetMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// Where appends a list predicates to the ChunkSetMutation builder.
func (m *ChunkSetMutation) Where(ps ...predicate.ChunkSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChunkSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChunkSet).
func (m *ChunkSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkSetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, chunkset.FieldDocumentID)
	}
	if m.company_id != nil {
		fields = append(fields, chunkset.FieldCompanyID)
	}
	if m.chunking_strategy != nil {
		fields = append(fields, chunkset.FieldChunkingStrategy)
	}
	if m.total_chunks != nil {
		fields = append(fields, chunkset.FieldTotalChunks)
	}
	if m.s3_prefix != nil {
		fields = append(fields, chunkset.FieldS3Prefix)
	}
	if m.created_at != nil {
		fields = append(fields, chunkset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunkset.FieldDocumentID:
		return m.DocumentID()
	case chunkset.FieldCompanyID:
		return m.CompanyID()
	case chunkset.FieldChunkingStrategy:
		return m.ChunkingStrategy()
	case chunkset.FieldTotalChunks:
		return m.TotalChunks()
	case chunkset.FieldS3Prefix:
		return m.S3Prefix()
	case chunkset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunkset.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case chunkset.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case chunkset.FieldChunkingStrategy:
		return m.OldChunkingStrategy(ctx)
	case chunkset.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case chunkset.FieldS3Prefix:
		return m.OldS3Prefix(ctx)
	case chunkset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChunkSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunkset.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case chunkset.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case chunkset.FieldChunkingStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkingStrategy(v)
		return nil
	case chunkset.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case chunkset.FieldS3Prefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Prefix(v)
		return nil
	case chunkset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkSetMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, chunkset.FieldCompanyID)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, chunkset.FieldTotalChunks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkSetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunkset.FieldCompanyID:
		return m.AddedCompanyID()
	case chunkset.FieldTotalChunks:
		return m.AddedTotalChunks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunkset.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	case chunkset.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkSetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkSetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChunkSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkSetMutation) ResetField(name string) error {
	switch name {
	case chunkset.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case chunkset.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case chunkset.FieldChunkingStrategy:
		m.ResetChunkingStrategy()
		return nil
	case chunkset.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case chunkset.FieldS3Prefix:
		m.ResetS3Prefix()
		return nil
	case chunkset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChunkSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, chunkset.EdgeDocument)
	}
	if m.chunks != nil {
		edges = append(edges, chunkset.EdgeChunks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunkset.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case chunkset.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchunks != nil {
		edges = append(edges, chunkset.EdgeChunks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chunkset.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, chunkset.EdgeDocument)
	}
	if m.clearedchunks {
		edges = append(edges, chunkset.EdgeChunks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkSetMutation) EdgeCleared(name string) bool {
	switch name {
	case chunkset.EdgeDocument:
		return m.cleareddocument
	case chunkset.EdgeChunks:
		return m.clearedchunks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkSetMutation) ClearEdge(name string) error {
	switch name {
	case chunkset.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ChunkSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkSetMutation) ResetEdge(name string) error {
	switch name {
	case chunkset.EdgeDocument:
		m.ResetDocument()
		return nil
	case chunkset.EdgeChunks:
		m.ResetChunks()
		return nil
	}
	return fmt.Errorf("unknown ChunkSet edge %s", name)
}

// CitationMutation represents an operation that mutates the Citation nodes in the graph.
type CitationMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	document_id        *int
	adddocument_id     *int
	quote_text         *string
	citation_order     *int
	addcitation_order  *int
	grounding_score    *float64
	addgrounding_score *float64
	clearedFields      map[string]struct{}
	answer             *int
	clearedanswer      bool
	done               bool
	oldValue           func(context.Context) (*Citation, error)
	predicates         []predicate.Citation
}

var _ ent.Mutation = (*CitationMutation)(nil)

// citationOption allows management of the mutation configuration using functional options.
type citationOption func(*CitationMutation)

// newCitationMutation creates new mutation for the Citation entity.
func newCitationMutation(c config, op Op, opts ...citationOption) *CitationMutation {
	m := &CitationMutation{
		config:        c,
		op:            op,
		typ:           TypeCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCitationID sets the ID field of the mutation.
func withCitationID(id int) citationOption {
	return func(m *CitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Citation
		)
		m.oldValue = func(ctx context.Context) (*Citation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Citation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCitation sets the old Citation of the mutation.
func withCitation(node *Citation) citationOption {
	return func(m *CitationMutation) {
		m.oldValue = func(context.Context) (*Citation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CitationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CitationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Citation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnswerID sets the "answer_id" field.
func (m *CitationMutation) SetAnswerID(i int) {
	m.answer = &i
}

// AnswerID returns the value of the "answer_id" field in the mutation.
func (m *CitationMutation) AnswerID() (r int, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerID returns the old "answer_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldAnswerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerID: %w", err)
	}
	return oldValue.AnswerID, nil
}

// ResetAnswerID resets all changes to the "answer_id" field.
func (m *CitationMutation) ResetAnswerID() {
	m.answer = nil
}

// SetDocumentID sets the "document_id" field.
func (m *CitationMutation) SetDocumentID(i int) {
	m.document_id = &i
	m.adddocument_id = nil
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *CitationMutation) DocumentID() (r int, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// AddDocumentID adds i to the "document_id" field.
func (m *CitationMutation) AddDocumentID(i int) {
	if m.adddocument_id != nil {
		*m.adddocument_id += i
	} else {
		m.adddocument_id = &i
	}
}

// AddedDocumentID returns the value that was added to the "document_id" field in this mutation.
func (m *CitationMutation) AddedDocumentID() (r int, exists bool) {
	v := m.adddocument_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *CitationMutation) ResetDocumentID() {
	m.document_id = nil
	m.adddocument_id = nil
}

// SetQuoteText sets the "quote_text" field.
func (m *CitationMutation) SetQuoteText(s string) {
	m.quote_text = &s
}

// QuoteText returns the value of the "quote_text" field in the mutation.
func (m *CitationMutation) QuoteText() (r string, exists bool) {
	v := m.quote_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuoteText returns the old "quote_text" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldQuoteText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuoteText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuoteText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuoteText: %w", err)
	}
	return oldValue.QuoteText, nil
}

// ResetQuoteText resets all changes to the "quote_text" field.
func (m *CitationMutation) ResetQuoteText() {
	m.quote_text = nil
}

// SetCitationOrder sets the "citation_order" field.
func (m *CitationMutation) SetCitationOrder(i int) {
	m.citation_order = &i
	m.addcitation_order = nil
}

// CitationOrder returns the value of the "citation_order" field in the mutation.
func (m *CitationMutation) CitationOrder() (r int, exists bool) {
	v := m.citation_order
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationOrder returns the old "citation_order" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldCitationOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationOrder: %w", err)
	}
	return oldValue.CitationOrder, nil
}

// AddCitationOrder adds i to the "citation_order" field.
func (m *CitationMutation) AddCitationOrder(i int) {
	if m.addcitation_order != nil {
		*m.addcitation_order += i
	} else {
		m.addcitation_order = &i
	}
}

// AddedCitationOrder returns the value that was added to the "citation_order" field in this mutation.
func (m *CitationMutation) AddedCitationOrder() (r int, exists bool) {
	v := m.addcitation_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetCitationOrder resets all changes to the "citation_order" field.
func (m *CitationMutation) ResetCitationOrder() {
	m.citation_order = nil
	m.addcitation_order = nil
}

// SetGroundingScore sets the "grounding_score" field.
func (m *CitationMutation) SetGroundingScore(f float64) {
	m.grounding_score = &f
	m.addgrounding_score = nil
}

// GroundingScore returns the value of the "grounding_score" field in the mutation.
func (m *CitationMutation) GroundingScore() (r float64, exists bool) {
	v := m.grounding_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGroundingScore returns the old "grounding_score" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldGroundingScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroundingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroundingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroundingScore: %w", err)
	}
	return oldValue.GroundingScore, nil
}

// AddGroundingScore adds f to the "grounding_score" field.
func (m *CitationMutation) AddGroundingScore(f float64) {
	if m.addgrounding_score != nil {
		*m.addgrounding_score += f
	} else {
		m.addgrounding_score = &f
	}
}

// AddedGroundingScore returns the value that was added to the "grounding_score" field in this mutation.
func (m *CitationMutation) AddedGroundingScore() (r float64, exists bool) {
	v := m.addgrounding_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearGroundingScore clears the value of the "grounding_score" field.
func (m *CitationMutation) ClearGroundingScore() {
	m.grounding_score = nil
	m.addgrounding_score = nil
	m.clearedFields[citation.FieldGroundingScore] = struct{}{}
}

// GroundingScoreCleared returns if the "grounding_score" field was cleared in this mutation.
func (m *CitationMutation) GroundingScoreCleared() bool {
	_, ok := m.clearedFields[citation.FieldGroundingScore]
	return ok
}

// ResetGroundingScore resets all changes to the "grounding_score" field.
func (m *CitationMutation) ResetGroundingScore() {
	m.grounding_score = nil
	m.addgrounding_score = nil
	delete(m.clearedFields, citation.FieldGroundingScore)
}

// ClearAnswer clears the "answer" edge to the Answer entity.
func (m *CitationMutation) ClearAnswer() {
	m.clearedanswer = true
	m.clearedFields[citation.FieldAnswerID] = struct{}{}
}

// AnswerCleared reports if the "answer" edge to the Answer entity was cleared.
func (m *CitationMutation) AnswerCleared() bool {
	return m.clearedanswer
}

// AnswerIDs returns the "answer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnswerID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) AnswerIDs() (ids []int) {
	if id := m.answer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnswer resets all changes to the "answer" edge.
func (m *CitationMutation) ResetAnswer() {
	m.answer = nil
	m.clearedanswer = false
}

// Where appends a list predicates to the CitationMutation builder.
func (m *CitationMutation) Where(ps ...predicate.Citation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Citation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Citation).
func (m *CitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CitationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.answer != nil {
		fields = append(fields, citation.FieldAnswerID)
	}
	if m.document_id != nil {
		fields = append(fields, citation.FieldDocumentID)
	}
	if m.quote_text != nil {
		fields = append(fields, citation.FieldQuoteText)
	}
	if m.citation_order != nil {
		fields = append(fields, citation.FieldCitationOrder)
	}
	if m.grounding_score != nil {
		fields = append(fields, citation.FieldGroundingScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldAnswerID:
		return m.AnswerID()
	case citation.FieldDocumentID:
		return m.DocumentID()
	case citation.FieldQuoteText:
		return m.QuoteText()
	case citation.FieldCitationOrder:
		return m.CitationOrder()
	case citation.FieldGroundingScore:
		return m.GroundingScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case citation.FieldAnswerID:
		return m.OldAnswerID(ctx)
	case citation.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case citation.FieldQuoteText:
		return m.OldQuoteText(ctx)
	case citation.FieldCitationOrder:
		return m.OldCitationOrder(ctx)
	case citation.FieldGroundingScore:
		return m.OldGroundingScore(ctx)
	}
	return nil, fmt.Errorf("unknown Citation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case citation.FieldAnswerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerID(v)
		return nil
	case citation.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case citation.FieldQuoteText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuoteText(v)
		return nil
	case citation.FieldCitationOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationOrder(v)
		return nil
	case citation.FieldGroundingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroundingScore(v)
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CitationMutation) AddedFields() []string {
	var fields []string
	if m.adddocument_id != nil {
		fields = append(fields, citation.FieldDocumentID)
	}
	if m.addcitation_order != nil {
		fields = append(fields, citation.FieldCitationOrder)
	}
	if m.addgrounding_score != nil {
		fields = append(fields, citation.FieldGroundingScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldDocumentID:
		return m.AddedDocumentID()
	case citation.FieldCitationOrder:
		return m.AddedCitationOrder()
	case citation.FieldGroundingScore:
		return m.AddedGroundingScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case citation.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentID(v)
		return nil
	case citation.FieldCitationOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCitationOrder(v)
		return nil
	case citation.FieldGroundingScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroundingScore(v)
		return nil
	}
	return fmt.Errorf("unknown Citation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(citation.FieldGroundingScore) {
		fields = append(fields, citation.FieldGroundingScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CitationMutation) ClearField(name string) error {
	switch name {
	case citation.FieldGroundingScore:
		m.ClearGroundingScore()
		return nil
	}
	return fmt.Errorf("unknown Citation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CitationMutation) ResetField(name string) error {
	switch name {
	case citation.FieldAnswerID:
		m.ResetAnswerID()
		return nil
	case citation.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case citation.FieldQuoteText:
		m.ResetQuoteText()
		return nil
	case citation.FieldCitationOrder:
		m.ResetCitationOrder()
		return nil
	case citation.FieldGroundingScore:
		m.ResetGroundingScore()
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.answer != nil {
		edges = append(edges, citation.EdgeAnswer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case citation.EdgeAnswer:
		if id := m.answer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanswer {
		edges = append(edges, citation.EdgeAnswer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CitationMutation) EdgeCleared(name string) bool {
	switch name {
	case citation.EdgeAnswer:
		return m.clearedanswer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CitationMutation) ClearEdge(name string) error {
	switch name {
	case citation.EdgeAnswer:
		m.ClearAnswer()
		return nil
	}
	return fmt.Errorf("unknown Citation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CitationMutation) ResetEdge(name string) error {
	switch name {
	case citation.EdgeAnswer:
		m.ResetAnswer()
		return nil
	}
	return fmt.Errorf("unknown Citation edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	created_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	subscription            *int
	clearedsubscription     bool
	documents               map[int]struct{}
	removeddocuments        map[int]struct{}
	cleareddocuments        bool
	matrices                map[int]struct{}
	removedmatrices         map[int]struct{}
	clearedmatrices         bool
	usage_events            map[int]struct{}
	removedusage_events     map[int]struct{}
	clearedusage_events     bool
	service_accounts        map[int]struct{}
	removedservice_accounts map[int]struct{}
	clearedservice_accounts bool
	workflows               map[int]struct{}
	removedworkflows        map[int]struct{}
	clearedworkflows        bool
	done                    bool
	oldValue                func(context.Context) (*Company, error)
	predicates              []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id int) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CompanyMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CompanyMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CompanyMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[company.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CompanyMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[company.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CompanyMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, company.FieldDeletedAt)
}

// SetSubscriptionID sets the "subscription" edge to the Subscription entity by id.
func (m *CompanyMutation) SetSubscriptionID(id int) {
	m.subscription = &id
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (m *CompanyMutation) ClearSubscription() {
	m.clearedsubscription = true
}

// SubscriptionCleared reports if the "subscription" edge to the Subscription entity was cleared.
func (m *CompanyMutation) SubscriptionCleared() bool {
	return m.clearedsubscription
}

// SubscriptionID returns the "subscription" edge ID in the mutation.
func (m *CompanyMutation) SubscriptionID() (id int, exists bool) {
	if m.subscription != nil {
		return *m.subscription, true
	}
	return
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *CompanyMutation) SubscriptionIDs() (ids []int) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *CompanyMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *CompanyMutation) AddDocumentIDs(ids ...int) {
	if m.documents == nil {
		m.documents = make(map[int]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *CompanyMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *CompanyMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *CompanyMutation) RemoveDocumentIDs(ids ...int) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *CompanyMutation) RemovedDocumentsIDs() (ids []int) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CompanyMutation) DocumentsIDs() (ids []int) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CompanyMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddMatrixIDs adds the "matrices" edge to the Matrix entity by ids.
func (m *CompanyMutation) AddMatrixIDs(ids ...int) {
	if m.matrices == nil {
		m.matrices = make(map[int]struct{})
	}
	for i := range ids {
		m.matrices[ids[i]] = struct{}{}
	}
}

// ClearMatrices clears the "matrices" edge to the Matrix entity.
func (m *CompanyMutation) ClearMatrices() {
	m.clearedmatrices = true
}

// MatricesCleared reports if the "matrices" edge to the Matrix entity was cleared.
func (m *CompanyMutation) MatricesCleared() bool {
	return m.clearedmatrices
}

// RemoveMatrixIDs removes the "matrices" edge to the Matrix entity by IDs.
func (m *CompanyMutation) RemoveMatrixIDs(ids ...int) {
	if m.removedmatrices == nil {
		m.removedmatrices = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.matrices, ids[i])
		m.removedmatrices[ids[i]] = struct{}{}
	}
}

// RemovedMatrices returns the removed IDs of the "matrices" edge to the Matrix entity.
func (m *CompanyMutation) RemovedMatricesIDs() (ids []int) {
	for id := range m.removedmatrices {
		ids = append(ids, id)
	}
	return
}

// MatricesIDs returns the "matrices" edge IDs in the mutation.
func (m *CompanyMutation) MatricesIDs() (ids []int) {
	for id := range m.matrices {
		ids = append(ids, id)
	}
	return
}

// ResetMatrices resets all changes to the "matrices" edge.
func (m *CompanyMutation) ResetMatrices() {
	m.matrices = nil
	m.clearedmatrices = false
	m.removedmatrices = nil
}

// AddUsageEventIDs adds the "usage_events" edge to the UsageEvent entity by ids.
func (m *CompanyMutation) AddUsageEventIDs(ids ...int) {
	if m.usage_events == nil {
		m.usage_events = make(map[int]struct{})
	}
	for i := range ids {
		m.usage_events[ids[i]] = struct{}{}
	}
}

// ClearUsageEvents clears the "usage_events" edge to the UsageEvent entity.
func (m *CompanyMutation) ClearUsageEvents() {
	m.clearedusage_events = true
}

// UsageEventsCleared reports if the "usage_events" edge to the UsageEvent entity was cleared.
func (m *CompanyMutation) UsageEventsCleared() bool {
	return m.clearedusage_events
}

// RemoveUsageEventIDs removes the "usage_events" edge to the UsageEvent entity by IDs.
func (m *CompanyMutation) RemoveUsageEventIDs(ids ...int) {
	if m.removedusage_events == nil {
		m.removedusage_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.usage_events, ids[i])
		m.removedusage_events[ids[i]] = struct{}{}
	}
}

// RemovedUsageEvents returns the removed IDs of the "usage_events" edge to the UsageEvent entity.
func (m *CompanyMutation) RemovedUsageEventsIDs() (ids []int) {
	for id := range m.removedusage_events {
		ids = append(ids, id)
	}
	return
}

// UsageEventsIDs returns the "usage_events" edge IDs in the mutation.
func (m *CompanyMutation) UsageEventsIDs() (ids []int) {
	for id := range m.usage_events {
		ids = append(ids, id)
	}
	return
}

// ResetUsageEvents resets all changes to the "usage_events" edge.
func (m *CompanyMutation) ResetUsageEvents() {
	m.usage_events = nil
	m.clearedusage_events = false
	m.removedusage_events = nil
}

// AddServiceAccountIDs adds the "service_accounts" edge to the ServiceAccount entity by ids.
func (m *CompanyMutation) AddServiceAccountIDs(ids ...int) {
	if m.service_accounts == nil {
		m.service_accounts = make(map[int]struct{})
	}
	for i := range ids {
		m.service_accounts[ids[i]] = struct{}{}
	}
}

// ClearServiceAccounts clears the "service_accounts" edge to the ServiceAccount entity.
func (m *CompanyMutation) ClearServiceAccounts() {
	m.clearedservice_accounts = true
}

// ServiceAccountsCleared reports if the "service_accounts" edge to the ServiceAccount entity was cleared.
func (m *CompanyMutation) ServiceAccountsCleared() bool {
	return m.clearedservice_accounts
}

// RemoveServiceAccountIDs removes the "service_accounts" edge to the ServiceAccount entity by IDs.
func (m *CompanyMutation) RemoveServiceAccountIDs(ids ...int) {
	if m.removedservice_accounts == nil {
		m.removedservice_accounts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.service_accounts, ids[i])
		m.removedservice_accounts[ids[i]] = struct{}{}
	}
}

// RemovedServiceAccounts returns the removed IDs of the "service_accounts" edge to the ServiceAccount entity.
func (m *CompanyMutation) RemovedServiceAccountsIDs() (ids []int) {
	for id := range m.removedservice_accounts {
		ids = append(ids, id)
	}
	return
}

// ServiceAccountsIDs returns the "service_accounts" edge IDs in the mutation.
func (m *CompanyMutation) ServiceAccountsIDs() (ids []int) {
	for id := range m.service_accounts {
		ids = append(ids, id)
	}
	return
}

// ResetServiceAccounts resets all changes to the "service_accounts" edge.
func (m *CompanyMutation) ResetServiceAccounts() {
	m.service_accounts = nil
	m.clearedservice_accounts = false
	m.removedservice_accounts = nil
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by ids.
func (m *CompanyMutation) AddWorkflowIDs(ids ...int) {
	if m.workflows == nil {
		m.workflows = make(map[int]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the Workflow entity.
func (m *CompanyMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the Workflow entity was cleared.
func (m *CompanyMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the Workflow entity by IDs.
func (m *CompanyMutation) RemoveWorkflowIDs(ids ...int) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the Workflow entity.
func (m *CompanyMutation) RemovedWorkflowsIDs() (ids []int) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *CompanyMutation) WorkflowsIDs() (ids []int) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *CompanyMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, company.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldDeletedAt) {
		fields = append(fields, company.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.subscription != nil {
		edges = append(edges, company.EdgeSubscription)
	}
	if m.documents != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.matrices != nil {
		edges = append(edges, company.EdgeMatrices)
	}
	if m.usage_events != nil {
		edges = append(edges, company.EdgeUsageEvents)
	}
	if m.service_accounts != nil {
		edges = append(edges, company.EdgeServiceAccounts)
	}
	if m.workflows != nil {
		edges = append(edges, company.EdgeWorkflows)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeMatrices:
		ids := make([]ent.Value, 0, len(m.matrices))
		for id := range m.matrices {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeUsageEvents:
		ids := make([]ent.Value, 0, len(m.usage_events))
		for id := range m.usage_events {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeServiceAccounts:
		ids := make([]ent.Value, 0, len(m.service_accounts))
		for id := range m.service_accounts {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removeddocuments != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.removedmatrices != nil {
		edges = append(edges, company.EdgeMatrices)
	}
	if m.removedusage_events != nil {
		edges = append(edges, company.EdgeUsageEvents)
	}
	if m.removedservice_accounts != nil {
		edges = append(edges, company.EdgeServiceAccounts)
	}
	if m.removedworkflows != nil {
		edges = append(edges, company.EdgeWorkflows)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeMatrices:
		ids := make([]ent.Value, 0, len(m.removedmatrices))
		for id := range m.removedmatrices {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeUsageEvents:
		ids := make([]ent.Value, 0, len(m.removedusage_events))
		for id := range m.removedusage_events {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeServiceAccounts:
		ids := make([]ent.Value, 0, len(m.removedservice_accounts))
		for id := range m.removedservice_accounts {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedsubscription {
		edges = append(edges, company.EdgeSubscription)
	}
	if m.cleareddocuments {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.clearedmatrices {
		edges = append(edges, company.EdgeMatrices)
	}
	if m.clearedusage_events {
		edges = append(edges, company.EdgeUsageEvents)
	}
	if m.clearedservice_accounts {
		edges = append(edges, company.EdgeServiceAccounts)
	}
	if m.clearedworkflows {
		edges = append(edges, company.EdgeWorkflows)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeSubscription:
		return m.clearedsubscription
	case company.EdgeDocuments:
		return m.cleareddocuments
	case company.EdgeMatrices:
		return m.clearedmatrices
	case company.EdgeUsageEvents:
		return m.clearedusage_events
	case company.EdgeServiceAccounts:
		return m.clearedservice_accounts
	case company.EdgeWorkflows:
		return m.clearedworkflows
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	case company.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeSubscription:
		m.ResetSubscription()
		return nil
	case company.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case company.EdgeMatrices:
		m.ResetMatrices()
		return nil
	case company.EdgeUsageEvents:
		m.ResetUsageEvents()
		return nil
	case company.EdgeServiceAccounts:
		m.ResetServiceAccounts()
		return nil
	case company.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	filename                *string
	storage_key             *string
	checksum                *string
	extraction_status       *document.ExtractionStatus
	extracted_content_path  *string
	extracted_char_count    *int
	addextracted_char_count *int
	current_chunk_set_id    *int
	addcurrent_chunk_set_id *int
	uploaded_at             *time.Time
	extracted_at            *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	company                 *int
	clearedcompany          bool
	chunk_sets              map[int]struct{}
	removedchunk_sets       map[int]struct{}
	clearedchunk_sets       bool
	done                    bool
	oldValue                func(context.Context) (*Document, error)
	predicates              []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *DocumentMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DocumentMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DocumentMutation) ResetCompanyID() {
	m.company = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *DocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *DocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *DocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetChecksum sets the "checksum" field.
func (m *DocumentMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *DocumentMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *DocumentMutation) ResetChecksum() {
	m.checksum = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *DocumentMutation) SetExtractionStatus(ds document.ExtractionStatus) {
	m.extraction_status = &ds
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *DocumentMutation) ExtractionStatus() (r document.ExtractionStatus, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionStatus(ctx context.Context) (v document.ExtractionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *DocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractedContentPath sets the "extracted_content_path" field.
func (m *DocumentMutation) SetExtractedContentPath(s string) {
	m.extracted_content_path = &s
}

// ExtractedContentPath returns the value of the "extracted_content_path" field in the mutation.
func (m *DocumentMutation) ExtractedContentPath() (r string, exists bool) {
	v := m.extracted_content_path
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedContentPath returns the old "extracted_content_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedContentPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedContentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedContentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedContentPath: %w", err)
	}
	return oldValue.ExtractedContentPath, nil
}

// ClearExtractedContentPath clears the value of the "extracted_content_path" field.
func (m *DocumentMutation) ClearExtractedContentPath() {
	m.extracted_content_path = nil
	m.clearedFields[document.FieldExtractedContentPath] = struct{}{}
}

// ExtractedContentPathCleared returns if the "extracted_content_path" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedContentPathCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedContentPath]
	return ok
}

// ResetExtractedContentPath resets all changes to the "extracted_content_path" field.
func (m *DocumentMutation) ResetExtractedContentPath() {
	m.extracted_content_path = nil
	delete(m.clearedFields, document.FieldExtractedContentPath)
}

// SetExtractedCharCount sets the "extracted_char_count" field.
func (m *DocumentMutation) SetExtractedCharCount(i int) {
	m.extracted_char_count = &i
	m.addextracted_char_count = nil
}

// ExtractedCharCount returns the value of the "extracted_char_count" field in the mutation.
func (m *DocumentMutation) ExtractedCharCount() (r int, exists bool) {
	v := m.extracted_char_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedCharCount returns the old "extracted_char_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedCharCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedCharCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedCharCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedCharCount: %w", err)
	}
	return oldValue.ExtractedCharCount, nil
}

// AddExtractedCharCount adds i to the "extracted_char_count" field.
func (m *DocumentMutation) AddExtractedCharCount(i int) {
	if m.addextracted_char_count != nil {
		*m.addextracted_char_count += i
	} else {
		m.addextracted_char_count = &i
	}
}

// AddedExtractedCharCount returns the value that was added to the "extracted_char_count" field in this mutation.
func (m *DocumentMutation) AddedExtractedCharCount() (r int, exists bool) {
	v := m.addextracted_char_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractedCharCount resets all changes to the "extracted_char_count" field.
func (m *DocumentMutation) ResetExtractedCharCount() {
	m.extracted_char_count = nil
	m.addextracted_char_count = nil
}

// SetCurrentChunkSetID sets the "current_chunk_set_id" field.
func (m *DocumentMutation) SetCurrentChunkSetID(i int) {
	m.current_chunk_set_id = &i
	m.addcurrent_chunk_set_id = nil
}

// CurrentChunkSetID returns the value of the "current_chunk_set_id" field in the mutation.
func (m *DocumentMutation) CurrentChunkSetID() (r int, exists bool) {
	v := m.current_chunk_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentChunkSetID returns the old "current_chunk_set_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCurrentChunkSetID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentChunkSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentChunkSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentChunkSetID: %w", err)
	}
	return oldValue.CurrentChunkSetID, nil
}

// AddCurrentChunkSetID adds i to the "current_chunk_set_id" field.
func (m *DocumentMutation) AddCurrentChunkSetID(i int) {
	if m.addcurrent_chunk_set_id != nil {
		*m.addcurrent_chunk_set_id += i
	} else {
		m.addcurrent_chunk_set_id = &i
	}
}

// AddedCurrentChunkSetID returns the value that was added to the "current_chunk_set_id" field in this mutation.
func (m *DocumentMutation) AddedCurrentChunkSetID() (r int, exists bool) {
	v := m.addcurrent_chunk_set_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentChunkSetID clears the value of the "current_chunk_set_id" field.
func (m *DocumentMutation) ClearCurrentChunkSetID() {
	m.current_chunk_set_id = nil
	m.addcurrent_chunk_set_id = nil
	m.clearedFields[document.FieldCurrentChunkSetID] = struct{}{}
}

// CurrentChunkSetIDCleared returns if the "current_chunk_set_id" field was cleared in this mutation.
func (m *DocumentMutation) CurrentChunkSetIDCleared() bool {
	_, ok := m.clearedFields[document.FieldCurrentChunkSetID]
	return ok
}

// ResetCurrentChunkSetID resets all changes to the "current_chunk_set_id" field.
func (m *DocumentMutation) ResetCurrentChunkSetID() {
	m.current_chunk_set_id = nil
	m.addcurrent_chunk_set_id = nil
	delete(m.clearedFields, document.FieldCurrentChunkSetID)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *DocumentMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *DocumentMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (m *DocumentMutation) ClearExtractedAt() {
	m.extracted_at = nil
	m.clearedFields[document.FieldExtractedAt] = struct{}{}
}

// ExtractedAtCleared returns if the "extracted_at" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedAt]
	return ok
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *DocumentMutation) ResetExtractedAt() {
	m.extracted_at = nil
	delete(m.clearedFields, document.FieldExtractedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DocumentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DocumentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DocumentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[document.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DocumentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DocumentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, document.FieldDeletedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *DocumentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[document.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *DocumentMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *DocumentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddChunkSetIDs adds the "chunk_sets" edge to the ChunkSet entity by ids.
func (m *DocumentMutation) AddChunkSetIDs(ids ...int) {
	if m.chunk_sets == nil {
		m.chunk_sets = make(map[int]struct{})
	}
	for i := range ids {
		m.chunk_sets[ids[i]] = struct{}{}
	}
}

// ClearChunkSets clears the "chunk_sets" edge to the ChunkSet entity.
func (m *DocumentMutation) ClearChunkSets() {
	m.clearedchunk_sets = true
}

// ChunkSetsCleared reports if the "chunk_sets" edge to the ChunkSet entity was cleared.
func (m *DocumentMutation) ChunkSetsCleared() bool {
	return m.clearedchunk_sets
}

// RemoveChunkSetIDs removes the "chunk_sets" edge to the ChunkSet entity by IDs.
func (m *DocumentMutation) RemoveChunkSetIDs(ids ...int) {
	if m.removedchunk_sets == nil {
		m.removedchunk_sets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunk_sets, ids[i])
		m.removedchunk_sets[ids[i]] = struct{}{}
	}
}

// RemovedChunkSets returns the removed IDs of the "chunk_sets" edge to the ChunkSet entity.
func (m *DocumentMutation) RemovedChunkSetsIDs() (ids []int) {
	for id := range m.removedchunk_sets {
		ids = append(ids, id)
	}
	return
}

// ChunkSetsIDs returns the "chunk_sets" edge IDs in the mutation.
func (m *DocumentMutation) ChunkSetsIDs() (ids []int) {
	for id := range m.chunk_sets {
		ids = append(ids, id)
	}
	return
}

// ResetChunkSets resets all changes to the "chunk_sets" edge.
func (m *DocumentMutation) ResetChunkSets() {
	m.chunk_sets = nil
	m.clearedchunk_sets = false
	m.removedchunk_sets = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company != nil {
		fields = append(fields, document.FieldCompanyID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.storage_key != nil {
		fields = append(fields, document.FieldStorageKey)
	}
	if m.checksum != nil {
		fields = append(fields, document.FieldChecksum)
	}
	if m.extraction_status != nil {
		fields = append(fields, document.FieldExtractionStatus)
	}
	if m.extracted_content_path != nil {
		fields = append(fields, document.FieldExtractedContentPath)
	}
	if m.extracted_char_count != nil {
		fields = append(fields, document.FieldExtractedCharCount)
	}
	if m.current_chunk_set_id != nil {
		fields = append(fields, document.FieldCurrentChunkSetID)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.extracted_at != nil {
		fields = append(fields, document.FieldExtractedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, document.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCompanyID:
		return m.CompanyID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStorageKey:
		return m.StorageKey()
	case document.FieldChecksum:
		return m.Checksum()
	case document.FieldExtractionStatus:
		return m.ExtractionStatus()
	case document.FieldExtractedContentPath:
		return m.ExtractedContentPath()
	case document.FieldExtractedCharCount:
		return m.ExtractedCharCount()
	case document.FieldCurrentChunkSetID:
		return m.CurrentChunkSetID()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldExtractedAt:
		return m.ExtractedAt()
	case document.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case document.FieldChecksum:
		return m.OldChecksum(ctx)
	case document.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case document.FieldExtractedContentPath:
		return m.OldExtractedContentPath(ctx)
	case document.FieldExtractedCharCount:
		return m.OldExtractedCharCount(ctx)
	case document.FieldCurrentChunkSetID:
		return m.OldCurrentChunkSetID(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case document.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case document.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case document.FieldExtractionStatus:
		v, ok := value.(document.ExtractionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case document.FieldExtractedContentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedContentPath(v)
		return nil
	case document.FieldExtractedCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedCharCount(v)
		return nil
	case document.FieldCurrentChunkSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentChunkSetID(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case document.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addextracted_char_count != nil {
		fields = append(fields, document.FieldExtractedCharCount)
	}
	if m.addcurrent_chunk_set_id != nil {
		fields = append(fields, document.FieldCurrentChunkSetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldExtractedCharCount:
		return m.AddedExtractedCharCount()
	case document.FieldCurrentChunkSetID:
		return m.AddedCurrentChunkSetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldExtractedCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedCharCount(v)
		return nil
	case document.FieldCurrentChunkSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentChunkSetID(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldExtractedContentPath) {
		fields = append(fields, document.FieldExtractedContentPath)
	}
	if m.FieldCleared(document.FieldCurrentChunkSetID) {
		fields = append(fields, document.FieldCurrentChunkSetID)
	}
	if m.FieldCleared(document.FieldExtractedAt) {
		fields = append(fields, document.FieldExtractedAt)
	}
	if m.FieldCleared(document.FieldDeletedAt) {
		fields = append(fields, document.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldExtractedContentPath:
		m.ClearExtractedContentPath()
		return nil
	case document.FieldCurrentChunkSetID:
		m.ClearCurrentChunkSetID()
		return nil
	case document.FieldExtractedAt:
		m.ClearExtractedAt()
		return nil
	case document.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case document.FieldChecksum:
		m.ResetChecksum()
		return nil
	case document.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case document.FieldExtractedContentPath:
		m.ResetExtractedContentPath()
		return nil
	case document.FieldExtractedCharCount:
		m.ResetExtractedCharCount()
		return nil
	case document.FieldCurrentChunkSetID:
		m.ResetCurrentChunkSetID()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case document.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, document.EdgeCompany)
	}
	if m.chunk_sets != nil {
		edges = append(edges, document.EdgeChunkSets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeChunkSets:
		ids := make([]ent.Value, 0, len(m.chunk_sets))
		for id := range m.chunk_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchunk_sets != nil {
		edges = append(edges, document.EdgeChunkSets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunkSets:
		ids := make([]ent.Value, 0, len(m.removedchunk_sets))
		for id := range m.removedchunk_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, document.EdgeCompany)
	}
	if m.clearedchunk_sets {
		edges = append(edges, document.EdgeChunkSets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeCompany:
		return m.clearedcompany
	case document.EdgeChunkSets:
		return m.clearedchunk_sets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeCompany:
		m.ResetCompany()
		return nil
	case document.EdgeChunkSets:
		m.ResetChunkSets()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EntitySetMutation represents an operation that mutates the EntitySet nodes in the graph.
type EntitySetMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	entity_type    *entityset.EntityType
	clearedFields  map[string]struct{}
	matrix         *int
	clearedmatrix  bool
	members        map[int]struct{}
	removedmembers map[int]struct{}
	clearedmembers bool
	done           bool
	oldValue       func(context.Context) (*EntitySet, error)
	predicates     []predicate.EntitySet
}

var _ ent.Mutation = (*EntitySetMutation)(nil)

// entitysetOption allows management of the mutation configuration using functional options.
type entitysetOption func(*EntitySetMutation)

// newEntitySetMutation creates new mutation for the EntitySet entity.
func newEntitySetMutation(c config, op Op, opts ...entitysetOption) *EntitySetMutation {
	m := &EntitySetMutation{
		config:        c,
		op:            op,
		typ:           TypeEntitySet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntitySetID sets the ID field of the mutation.
func withEntitySetID(id int) entitysetOption {
	return func(m *EntitySetMutation) {
		var (
			err   error
			once  sync.Once
			value *EntitySet
		)
		m.oldValue = func(ctx context.Context) (*EntitySet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntitySet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntitySet sets the old EntitySet of the mutation.
func withEntitySet(node *EntitySet) entitysetOption {
	return func(m *EntitySetMutation) {
		m.oldValue = func(context.Context) (*EntitySet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntitySetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntitySetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntitySetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntitySetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntitySet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMatrixID sets the "matrix_id" field.
func (m *EntitySetMutation) SetMatrixID(i int) {
	m.matrix = &i
}

// MatrixID returns the value of the "matrix_id" field in the mutation.
func (m *EntitySetMutation) MatrixID() (r int, exists bool) {
	v := m.matrix
	if v == nil {
		return
	}
	return *v, true
}

// OldMatrixID returns the old "matrix_id" field's value of the EntitySet entity.
// If the EntitySet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMutation) OldMatrixID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatrixID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatrixID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatrixID: %w", err)
	}
	return oldValue.MatrixID, nil
}

// ResetMatrixID resets all changes to the "matrix_id" field.
func (m *EntitySetMutation) ResetMatrixID() {
	m.matrix = nil
}

// SetName sets the "name" field.
func (m *EntitySetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntitySetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EntitySet entity.
// If the EntitySet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntitySetMutation) ResetName() {
	m.name = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntitySetMutation) SetEntityType(et entityset.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntitySetMutation) EntityType() (r entityset.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntitySet entity.
// If the EntitySet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMutation) OldEntityType(ctx context.Context) (v entityset.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntitySetMutation) ResetEntityType() {
	m.entity_type = nil
}

// ClearMatrix clears the "matrix" edge to the Matrix entity.
func (m *EntitySetMutation) ClearMatrix() {
	m.clearedmatrix = true
	m.clearedFields[entityset.FieldMatrixID] = struct{}{}
}

// MatrixCleared reports if the "matrix" edge to the Matrix entity was cleared.
func (m *EntitySetMutation) MatrixCleared() bool {
	return m.clearedmatrix
}

// MatrixIDs returns the "matrix" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatrixID instead. It exists only for internal usage by the builders.
func (m *EntitySetMutation) MatrixIDs() (ids []int) {
	if id := m.matrix; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatrix resets all changes to the "matrix" edge.
func (m *EntitySetMutation) ResetMatrix() {
	m.matrix = nil
	m.clearedmatrix = false
}

// AddMemberIDs adds the "members" edge to the EntitySetMember entity by ids.
func (m *EntitySetMutation) AddMemberIDs(ids ...int) {
	if m.members == nil {
		m.members = make(map[int]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the EntitySetMember entity.
func (m *EntitySetMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the EntitySetMember entity was cleared.
func (m *EntitySetMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the EntitySetMember entity by IDs.
func (m *EntitySetMutation) RemoveMemberIDs(ids ...int) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the EntitySetMember entity.
func (m *EntitySetMutation) RemovedMembersIDs() (ids []int) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *EntitySetMutation) MembersIDs() (ids []int) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *EntitySetMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the EntitySetMutation builder.
func (m *EntitySetMutation) Where(ps ...predicate.EntitySet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntitySetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntitySetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntitySet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntitySetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntitySetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntitySet).
func (m *EntitySetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntitySetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.matrix != nil {
		fields = append(fields, entityset.FieldMatrixID)
	}
	if m.name != nil {
		fields = append(fields, entityset.FieldName)
	}
	if m.entity_type != nil {
		fields = append(fields, entityset.FieldEntityType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntitySetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityset.FieldMatrixID:
		return m.MatrixID()
	case entityset.FieldName:
		return m.Name()
	case entityset.FieldEntityType:
		return m.EntityType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntitySetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityset.FieldMatrixID:
		return m.OldMatrixID(ctx)
	case entityset.FieldName:
		return m.OldName(ctx)
	case entityset.FieldEntityType:
		return m.OldEntityType(ctx)
	}
	return nil, fmt.Errorf("unknown EntitySet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityset.FieldMatrixID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatrixID(v)
		return nil
	case entityset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entityset.FieldEntityType:
		v, ok := value.(entityset.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntitySetMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntitySetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EntitySet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntitySetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntitySetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntitySetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntitySet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntitySetMutation) ResetField(name string) error {
	switch name {
	case entityset.FieldMatrixID:
		m.ResetMatrixID()
		return nil
	case entityset.FieldName:
		m.ResetName()
		return nil
	case entityset.FieldEntityType:
		m.ResetEntityType()
		return nil
	}
	return fmt.Errorf("unknown EntitySet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntitySetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.matrix != nil {
		edges = append(edges, entityset.EdgeMatrix)
	}
	if m.members != nil {
		edges = append(edges, entityset.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntitySetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityset.EdgeMatrix:
		if id := m.matrix; id != nil {
			return []ent.Value{*id}
		}
	case entityset.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntitySetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmembers != nil {
		edges = append(edges, entityset.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntitySetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entityset.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntitySetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmatrix {
		edges = append(edges, entityset.EdgeMatrix)
	}
	if m.clearedmembers {
		edges = append(edges, entityset.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntitySetMutation) EdgeCleared(name string) bool {
	switch name {
	case entityset.EdgeMatrix:
		return m.clearedmatrix
	case entityset.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntitySetMutation) ClearEdge(name string) error {
	switch name {
	case entityset.EdgeMatrix:
		m.ClearMatrix()
		return nil
	}
	return fmt.Errorf("unknown EntitySet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntitySetMutation) ResetEdge(name string) error {
	switch name {
	case entityset.EdgeMatrix:
		m.ResetMatrix()
		return nil
	case entityset.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown EntitySet edge %s", name)
}

// EntitySetMemberMutation represents an operation that mutates the EntitySetMember nodes in the graph.
type EntitySetMemberMutation struct {
	config
	op                Op
	typ               string
	id                *int
	entity_id         *int
	addentity_id      *int
	entity_type       *entitysetmember.EntityType
	member_order      *int
	addmember_order   *int
	label             *string
	clearedFields     map[string]struct{}
	entity_set        *int
	clearedentity_set bool
	done              bool
	oldValue          func(context.Context) (*EntitySetMember, error)
	predicates        []predicate.EntitySetMember
}

var _ ent.Mutation = (*EntitySetMemberMutation)(nil)

// entitysetmemberOption allows management of the mutation configuration using functional options.
type entitysetmemberOption func(*EntitySetMemberMutation)

// newEntitySetMemberMutation creates new mutation for the EntitySetMember entity.
func newEntitySetMemberMutation(c config, op Op, opts ...entitysetmemberOption) *EntitySetMemberMutation {
	m := &EntitySetMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeEntitySetMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntitySetMemberID sets the ID field of the mutation.
func withEntitySetMemberID(id int) entitysetmemberOption {
	return func(m *EntitySetMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *EntitySetMember
		)
		m.oldValue = func(ctx context.Context) (*EntitySetMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntitySetMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntitySetMember sets the old EntitySetMember of the mutation.
func withEntitySetMember(node *EntitySetMember) entitysetmemberOption {
	return func(m *EntitySetMemberMutation) {
		m.oldValue = func(context.Context) (*EntitySetMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntitySetMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntitySetMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntitySetMemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntitySetMemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntitySetMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntitySetID sets the "entity_set_id" field.
func (m *EntitySetMemberMutation) SetEntitySetID(i int) {
	m.entity_set = &i
}

// EntitySetID returns the value of the "entity_set_id" field in the mutation.
func (m *EntitySetMemberMutation) EntitySetID() (r int, exists bool) {
	v := m.entity_set
	if v == nil {
		return
	}
	return *v, true
}

// OldEntitySetID returns the old "entity_set_id" field's value of the EntitySetMember entity.
// If the EntitySetMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMemberMutation) OldEntitySetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntitySetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntitySetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntitySetID: %w", err)
	}
	return oldValue.EntitySetID, nil
}

// ResetEntitySetID resets all changes to the "entity_set_id" field.
func (m *EntitySetMemberMutation) ResetEntitySetID() {
	m.entity_set = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntitySetMemberMutation) SetEntityID(i int) {
	m.entity_id = &i
	m.addentity_id = nil
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntitySetMemberMutation) EntityID() (r int, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntitySetMember entity.
// If the EntitySetMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMemberMutation) OldEntityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// AddEntityID adds i to the "entity_id" field.
func (m *EntitySetMemberMutation) AddEntityID(i int) {
	if m.addentity_id != nil {
		*m.addentity_id += i
	} else {
		m.addentity_id = &i
	}
}

// AddedEntityID returns the value that was added to the "entity_id" field in this mutation.
func (m *EntitySetMemberMutation) AddedEntityID() (r int, exists bool) {
	v := m.addentity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntitySetMemberMutation) ResetEntityID() {
	m.entity_id = nil
	m.addentity_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntitySetMemberMutation) SetEntityType(et entitysetmember.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntitySetMemberMutation) EntityType() (r entitysetmember.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntitySetMember entity.
// If the EntitySetMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMemberMutation) OldEntityType(ctx context.Context) (v entitysetmember.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntitySetMemberMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetMemberOrder sets the "member_order" field.
func (m *EntitySetMemberMutation) SetMemberOrder(i int) {
	m.member_order = &i
	m.addmember_order = nil
}

// MemberOrder returns the value of the "member_order" field in the mutation.
func (m *EntitySetMemberMutation) MemberOrder() (r int, exists bool) {
	v := m.member_order
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberOrder returns the old "member_order" field's value of the EntitySetMember entity.
// If the EntitySetMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMemberMutation) OldMemberOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberOrder: %w", err)
	}
	return oldValue.MemberOrder, nil
}

// AddMemberOrder adds i to the "member_order" field.
func (m *EntitySetMemberMutation) AddMemberOrder(i int) {
	if m.addmember_order != nil {
		*m.addmember_order += i
	} else {
		m.addmember_order = &i
	}
}

// AddedMemberOrder returns the value that was added to the "member_order" field in this mutation.
func (m *EntitySetMemberMutation) AddedMemberOrder() (r int, exists bool) {
	v := m.addmember_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemberOrder resets all changes to the "member_order" field.
func (m *EntitySetMemberMutation) ResetMemberOrder() {
	m.member_order = nil
	m.addmember_order = nil
}

// SetLabel sets the "label" field.
func (m *EntitySetMemberMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *EntitySetMemberMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the EntitySetMember entity.
// If the EntitySetMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySetMemberMutation) OldLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *EntitySetMemberMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[entitysetmember.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *EntitySetMemberMutation) LabelCleared() bool {
	_, ok := m.clearedFields[entitysetmember.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *EntitySetMemberMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, entitysetmember.FieldLabel)
}

// ClearEntitySet clears the "entity_set" edge to the EntitySet entity.
func (m *EntitySetMemberMutation) ClearEntitySet() {
	m.clearedentity_set = true
	m.clearedFields[entitysetmember.FieldEntitySetID] = struct{}{}
}

// EntitySetCleared reports if the "entity_set" edge to the EntitySet entity was cleared.
func (m *EntitySetMemberMutation) EntitySetCleared() bool {
	return m.clearedentity_set
}

// EntitySetIDs returns the "entity_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntitySetID instead. It exists only for internal usage by the builders.
func (m *EntitySetMemberMutation) EntitySetIDs() (ids []int) {
	if id := m.entity_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntitySet resets all changes to the "entity_set" edge.
func (m *EntitySetMemberMutation) ResetEntitySet() {
	m.entity_set = nil
	m.clearedentity_set = false
}

// Where appends a list predicates to the EntitySetMemberMutation builder.
func (m *EntitySetMemberMutation) Where(ps ...predicate.EntitySetMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntitySetMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntitySetMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntitySetMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntitySetMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntitySetMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntitySetMember).
func (m *EntitySetMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntitySetMemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.entity_set != nil {
		fields = append(fields, entitysetmember.FieldEntitySetID)
	}
	if m.entity_id != nil {
		fields = append(fields, entitysetmember.FieldEntityID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitysetmember.FieldEntityType)
	}
	if m.member_order != nil {
		fields = append(fields, entitysetmember.FieldMemberOrder)
	}
	if m.label != nil {
		fields = append(fields, entitysetmember.FieldLabel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntitySetMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitysetmember.FieldEntitySetID:
		return m.EntitySetID()
	case entitysetmember.FieldEntityID:
		return m.EntityID()
	case entitysetmember.FieldEntityType:
		return m.EntityType()
	case entitysetmember.FieldMemberOrder:
		return m.MemberOrder()
	case entitysetmember.FieldLabel:
		return m.Label()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntitySetMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitysetmember.FieldEntitySetID:
		return m.OldEntitySetID(ctx)
	case entitysetmember.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitysetmember.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitysetmember.FieldMemberOrder:
		return m.OldMemberOrder(ctx)
	case entitysetmember.FieldLabel:
		return m.OldLabel(ctx)
	}
	return nil, fmt.Errorf("unknown EntitySetMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySetMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitysetmember.FieldEntitySetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntitySetID(v)
		return nil
	case entitysetmember.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitysetmember.FieldEntityType:
		v, ok := value.(entitysetmember.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitysetmember.FieldMemberOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberOrder(v)
		return nil
	case entitysetmember.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntitySetMemberMutation) AddedFields() []string {
	var fields []string
	if m.addentity_id != nil {
		fields = append(fields, entitysetmember.FieldEntityID)
	}
	if m.addmember_order != nil {
		fields = append(fields, entitysetmember.FieldMemberOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntitySetMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitysetmember.FieldEntityID:
		return m.AddedEntityID()
	case entitysetmember.FieldMemberOrder:
		return m.AddedMemberOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySetMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitysetmember.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityID(v)
		return nil
	case entitysetmember.FieldMemberOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemberOrder(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntitySetMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitysetmember.FieldLabel) {
		fields = append(fields, entitysetmember.FieldLabel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntitySetMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntitySetMemberMutation) ClearField(name string) error {
	switch name {
	case entitysetmember.FieldLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntitySetMemberMutation) ResetField(name string) error {
	switch name {
	case entitysetmember.FieldEntitySetID:
		m.ResetEntitySetID()
		return nil
	case entitysetmember.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitysetmember.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitysetmember.FieldMemberOrder:
		m.ResetMemberOrder()
		return nil
	case entitysetmember.FieldLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntitySetMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entity_set != nil {
		edges = append(edges, entitysetmember.EdgeEntitySet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntitySetMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitysetmember.EdgeEntitySet:
		if id := m.entity_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntitySetMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntitySetMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntitySetMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentity_set {
		edges = append(edges, entitysetmember.EdgeEntitySet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntitySetMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case entitysetmember.EdgeEntitySet:
		return m.clearedentity_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntitySetMemberMutation) ClearEdge(name string) error {
	switch name {
	case entitysetmember.EdgeEntitySet:
		m.ClearEntitySet()
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntitySetMemberMutation) ResetEdge(name string) error {
	switch name {
	case entitysetmember.EdgeEntitySet:
		m.ResetEntitySet()
		return nil
	}
	return fmt.Errorf("unknown EntitySetMember edge %s", name)
}

// ExecutionFileMutation represents an operation that mutates the ExecutionFile nodes in the graph.
type ExecutionFileMutation struct {
	config
	op               Op
	typ              string
	id               *int
	file_name        *string
	storage_key      *string
	file_kind        *executionfile.FileKind
	size_bytes       *int64
	addsize_bytes    *int64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *int
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*ExecutionFile, error)
	predicates       []predicate.ExecutionFile
}

var _ ent.Mutation = (*ExecutionFileMutation)(nil)

// executionfileOption allows management of the mutation configuration using functional options.
type executionfileOption func(*ExecutionFileMutation)

// newExecutionFileMutation creates new mutation for the ExecutionFile entity.
func newExecutionFileMutation(c config, op Op, opts ...executionfileOption) *ExecutionFileMutation {
	m := &ExecutionFileMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionFileID sets the ID field of the mutation.
func withExecutionFileID(id int) executionfileOption {
	return func(m *ExecutionFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionFile
		)
		m.oldValue = func(ctx context.Context) (*ExecutionFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionFile sets the old ExecutionFile of the mutation.
func withExecutionFile(node *ExecutionFile) executionfileOption {
	return func(m *ExecutionFileMutation) {
		m.oldValue = func(context.Context) (*ExecutionFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionFileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionFileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionFileMutation) SetExecutionID(i int) {
	m.execution = &i
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionFileMutation) ExecutionID() (r int, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldExecutionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionFileMutation) ResetExecutionID() {
	m.execution = nil
}

// SetFileName sets the "file_name" field.
func (m *ExecutionFileMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ExecutionFileMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ExecutionFileMutation) ResetFileName() {
	m.file_name = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *ExecutionFileMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *ExecutionFileMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *ExecutionFileMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetFileKind sets the "file_kind" field.
func (m *ExecutionFileMutation) SetFileKind(ek executionfile.FileKind) {
	m.file_kind = &ek
}

// FileKind returns the value of the "file_kind" field in the mutation.
func (m *ExecutionFileMutation) FileKind() (r executionfile.FileKind, exists bool) {
	v := m.file_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKind returns the old "file_kind" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldFileKind(ctx context.Context) (v executionfile.FileKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKind: %w", err)
	}
	return oldValue.FileKind, nil
}

// ResetFileKind resets all changes to the "file_kind" field.
func (m *ExecutionFileMutation) ResetFileKind() {
	m.file_kind = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ExecutionFileMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ExecutionFileMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ExecutionFileMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ExecutionFileMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ExecutionFileMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionFile entity.
// If the ExecutionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *ExecutionFileMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[executionfile.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *ExecutionFileMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ExecutionFileMutation) ExecutionIDs() (ids []int) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ExecutionFileMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the ExecutionFileMutation builder.
func (m *ExecutionFileMutation) Where(ps ...predicate.ExecutionFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionFile).
func (m *ExecutionFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.execution != nil {
		fields = append(fields, executionfile.FieldExecutionID)
	}
	if m.file_name != nil {
		fields = append(fields, executionfile.FieldFileName)
	}
	if m.storage_key != nil {
		fields = append(fields, executionfile.FieldStorageKey)
	}
	if m.file_kind != nil {
		fields = append(fields, executionfile.FieldFileKind)
	}
	if m.size_bytes != nil {
		fields = append(fields, executionfile.FieldSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, executionfile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionfile.FieldExecutionID:
		return m.ExecutionID()
	case executionfile.FieldFileName:
		return m.FileName()
	case executionfile.FieldStorageKey:
		return m.StorageKey()
	case executionfile.FieldFileKind:
		return m.FileKind()
	case executionfile.FieldSizeBytes:
		return m.SizeBytes()
	case executionfile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionfile.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionfile.FieldFileName:
		return m.OldFileName(ctx)
	case executionfile.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case executionfile.FieldFileKind:
		return m.OldFileKind(ctx)
	case executionfile.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case executionfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionfile.FieldExecutionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionfile.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case executionfile.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case executionfile.FieldFileKind:
		v, ok := value.(executionfile.FileKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKind(v)
		return nil
	case executionfile.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case executionfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionFileMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, executionfile.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionfile.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionfile.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExecutionFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionFileMutation) ResetField(name string) error {
	switch name {
	case executionfile.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionfile.FieldFileName:
		m.ResetFileName()
		return nil
	case executionfile.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case executionfile.FieldFileKind:
		m.ResetFileKind()
		return nil
	case executionfile.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case executionfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, executionfile.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionfile.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, executionfile.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionFileMutation) EdgeCleared(name string) bool {
	switch name {
	case executionfile.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionFileMutation) ClearEdge(name string) error {
	switch name {
	case executionfile.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionFileMutation) ResetEdge(name string) error {
	switch name {
	case executionfile.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionFile edge %s", name)
}

// MatrixMutation represents an operation that mutates the Matrix nodes in the graph.
type MatrixMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	workspace_id       *string
	matrix_type        *matrix.MatrixType
	created_at         *time.Time
	deleted_at         *time.Time
	clearedFields      map[string]struct{}
	company            *int
	clearedcompany     bool
	entity_sets        map[int]struct{}
	removedentity_sets map[int]struct{}
	clearedentity_sets bool
	cells              map[int]struct{}
	removedcells       map[int]struct{}
	clearedcells       bool
	done               bool
	oldValue           func(context.Context) (*Matrix, error)
	predicates         []predicate.Matrix
}

var _ ent.Mutation = (*MatrixMutation)(nil)

// matrixOption allows management of the mutation configuration using functional options.
type matrixOption func(*MatrixMutation)

// newMatrixMutation creates new mutation for the Matrix entity.
func newMatrixMutation(c config, op Op, opts ...matrixOption) *MatrixMutation {
	m := &MatrixMutation{
		config:        c,
		op:            op,
		typ:           TypeMatrix,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatrixID sets the ID field of the mutation.
func withMatrixID(id int) matrixOption {
	return func(m *MatrixMutation) {
		var (
			err   error
			once  sync.Once
			value *Matrix
		)
		m.oldValue = func(ctx context.Context) (*Matrix, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Matrix.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatrix sets the old Matrix of the mutation.
func withMatrix(node *Matrix) matrixOption {
	return func(m *MatrixMutation) {
		m.oldValue = func(context.Context) (*Matrix, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatrixMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatrixMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatrixMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatrixMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Matrix.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *MatrixMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *MatrixMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *MatrixMutation) ResetCompanyID() {
	m.company = nil
}

// SetName sets the "name" field.
func (m *MatrixMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MatrixMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MatrixMutation) ResetName() {
	m.name = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *MatrixMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *MatrixMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *MatrixMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetMatrixType sets the "matrix_type" field.
func (m *MatrixMutation) SetMatrixType(mt matrix.MatrixType) {
	m.matrix_type = &mt
}

// MatrixType returns the value of the "matrix_type" field in the mutation.
func (m *MatrixMutation) MatrixType() (r matrix.MatrixType, exists bool) {
	v := m.matrix_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatrixType returns the old "matrix_type" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldMatrixType(ctx context.Context) (v matrix.MatrixType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatrixType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatrixType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatrixType: %w", err)
	}
	return oldValue.MatrixType, nil
}

// ResetMatrixType resets all changes to the "matrix_type" field.
func (m *MatrixMutation) ResetMatrixType() {
	m.matrix_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MatrixMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatrixMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatrixMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MatrixMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MatrixMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Matrix entity.
// If the Matrix object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MatrixMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[matrix.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MatrixMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[matrix.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MatrixMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, matrix.FieldDeletedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *MatrixMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[matrix.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *MatrixMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *MatrixMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *MatrixMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddEntitySetIDs adds the "entity_sets" edge to the EntitySet entity by ids.
func (m *MatrixMutation) AddEntitySetIDs(ids ...int) {
	if m.entity_sets == nil {
		m.entity_sets = make(map[int]struct{})
	}
	for i := range ids {
		m.entity_sets[ids[i]] = struct{}{}
	}
}

// ClearEntitySets clears the "entity_sets" edge to the EntitySet entity.
func (m *MatrixMutation) ClearEntitySets() {
	m.clearedentity_sets = true
}

// EntitySetsCleared reports if the "entity_sets" edge to the EntitySet entity was cleared.
func (m *MatrixMutation) EntitySetsCleared() bool {
	return m.clearedentity_sets
}

// RemoveEntitySetIDs removes the "entity_sets" edge to the EntitySet entity by IDs.
func (m *MatrixMutation) RemoveEntitySetIDs(ids ...int) {
	if m.removedentity_sets == nil {
		m.removedentity_sets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entity_sets, ids[i])
		m.removedentity_sets[ids[i]] = struct{}{}
	}
}

// RemovedEntitySets returns the removed IDs of the "entity_sets" edge to the EntitySet entity.
func (m *MatrixMutation) RemovedEntitySetsIDs() (ids []int) {
	for id := range m.removedentity_sets {
		ids = append(ids, id)
	}
	return
}

// EntitySetsIDs returns the "entity_sets" edge IDs in the mutation.
func (m *MatrixMutation) EntitySetsIDs() (ids []int) {
	for id := range m.entity_sets {
		ids = append(ids, id)
	}
	return
}

// ResetEntitySets resets all changes to the "entity_sets" edge.
func (m *MatrixMutation) ResetEntitySets() {
	m.entity_sets = nil
	m.clearedentity_sets = false
	m.removedentity_sets = nil
}

// AddCellIDs adds the "cells" edge to the MatrixCell entity by ids.
func (m *MatrixMutation) AddCellIDs(ids ...int) {
	if m.cells == nil {
		m.cells = make(map[int]struct{})
	}
	for i := range ids {
		m.cells[ids[i]] = struct{}{}
	}
}

// ClearCells clears the "cells" edge to the MatrixCell entity.
func (m *MatrixMutation) ClearCells() {
	m.clearedcells = true
}

// CellsCleared reports if the "cells" edge to the MatrixCell entity was cleared.
func (m *MatrixMutation) CellsCleared() bool {
	return m.clearedcells
}

// RemoveCellIDs removes the "cells" edge to the MatrixCell entity by IDs.
func (m *MatrixMutation) RemoveCellIDs(ids ...int) {
	if m.removedcells == nil {
		m.removedcells = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.cells, ids[i])
		m.removedcells[ids[i]] = struct{}{}
	}
}

// RemovedCells returns the removed IDs of the "cells" edge to the MatrixCell entity.
func (m *MatrixMutation) RemovedCellsIDs() (ids []int) {
	for id := range m.removedcells {
		ids = append(ids, id)
	}
	return
}

// CellsIDs returns the "cells" edge IDs in the mutation.
func (m *MatrixMutation) CellsIDs() (ids []int) {
	for id := range m.cells {
		ids = append(ids, id)
	}
	return
}

// ResetCells resets all changes to the "cells" edge.
func (m *MatrixMutation) ResetCells() {
	m.cells = nil
	m.clearedcells = false
	m.removedcells = nil
}

// Where appends a list predicates to the MatrixMutation builder.
func (m *MatrixMutation) Where(ps ...predicate.Matrix) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatrixMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatrixMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Matrix, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatrixMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatrixMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Matrix).
func (m *MatrixMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatrixMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.company != nil {
		fields = append(fields, matrix.FieldCompanyID)
	}
	if m.name != nil {
		fields = append(fields, matrix.FieldName)
	}
	if m.workspace_id != nil {
		fields = append(fields, matrix.FieldWorkspaceID)
	}
	if m.matrix_type != nil {
		fields = append(fields, matrix.FieldMatrixType)
	}
	if m.created_at != nil {
		fields = append(fields, matrix.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, matrix.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatrixMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matrix.FieldCompanyID:
		return m.CompanyID()
	case matrix.FieldName:
		return m.Name()
	case matrix.FieldWorkspaceID:
		return m.WorkspaceID()
	case matrix.FieldMatrixType:
		return m.MatrixType()
	case matrix.FieldCreatedAt:
		return m.CreatedAt()
	case matrix.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatrixMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matrix.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case matrix.FieldName:
		return m.OldName(ctx)
	case matrix.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case matrix.FieldMatrixType:
		return m.OldMatrixType(ctx)
	case matrix.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case matrix.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Matrix field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matrix.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case matrix.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case matrix.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case matrix.FieldMatrixType:
		v, ok := value.(matrix.MatrixType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatrixType(v)
		return nil
	case matrix.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case matrix.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Matrix field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatrixMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatrixMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Matrix numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatrixMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matrix.FieldDeletedAt) {
		fields = append(fields, matrix.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatrixMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatrixMutation) ClearField(name string) error {
	switch name {
	case matrix.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Matrix nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatrixMutation) ResetField(name string) error {
	switch name {
	case matrix.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case matrix.FieldName:
		m.ResetName()
		return nil
	case matrix.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case matrix.FieldMatrixType:
		m.ResetMatrixType()
		return nil
	case matrix.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case matrix.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Matrix field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatrixMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, matrix.EdgeCompany)
	}
	if m.entity_sets != nil {
		edges = append(edges, matrix.EdgeEntitySets)
	}
	if m.cells != nil {
		edges = append(edges, matrix.EdgeCells)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatrixMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matrix.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case matrix.EdgeEntitySets:
		ids := make([]ent.Value, 0, len(m.entity_sets))
		for id := range m.entity_sets {
			ids = append(ids, id)
		}
		return ids
	case matrix.EdgeCells:
		ids := make([]ent.Value, 0, len(m.cells))
		for id := range m.cells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatrixMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedentity_sets != nil {
		edges = append(edges, matrix.EdgeEntitySets)
	}
	if m.removedcells != nil {
		edges = append(edges, matrix.EdgeCells)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatrixMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case matrix.EdgeEntitySets:
		ids := make([]ent.Value, 0, len(m.removedentity_sets))
		for id := range m.removedentity_sets {
			ids = append(ids, id)
		}
		return ids
	case matrix.EdgeCells:
		ids := make([]ent.Value, 0, len(m.removedcells))
		for id := range m.removedcells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatrixMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, matrix.EdgeCompany)
	}
	if m.clearedentity_sets {
		edges = append(edges, matrix.EdgeEntitySets)
	}
	if m.clearedcells {
		edges = append(edges, matrix.EdgeCells)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatrixMutation) EdgeCleared(name string) bool {
	switch name {
	case matrix.EdgeCompany:
		return m.clearedcompany
	case matrix.EdgeEntitySets:
		return m.clearedentity_sets
	case matrix.EdgeCells:
		return m.clearedcells
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatrixMutation) ClearEdge(name string) error {
	switch name {
	case matrix.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Matrix unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatrixMutation) ResetEdge(name string) error {
	switch name {
	case matrix.EdgeCompany:
		m.ResetCompany()
		return nil
	case matrix.EdgeEntitySets:
		m.ResetEntitySets()
		return nil
	case matrix.EdgeCells:
		m.ResetCells()
		return nil
	}
	return fmt.Errorf("unknown Matrix edge %s", name)
}

// MatrixCellMutation represents an operation that mutates the MatrixCell nodes in the graph.
type MatrixCellMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	company_id               *int
	addcompany_id            *int
	cell_type                *string
	status                   *matrixcell.Status
	current_answer_set_id    *int
	addcurrent_answer_set_id *int
	cell_signature           *string
	created_at               *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	matrix                   *int
	clearedmatrix            bool
	entity_refs              map[int]struct{}
	removedentity_refs       map[int]struct{}
	clearedentity_refs       bool
	answer_sets              map[int]struct{}
	removedanswer_sets       map[int]struct{}
	clearedanswer_sets       bool
	qa_jobs                  map[int]struct{}
	removedqa_jobs           map[int]struct{}
	clearedqa_jobs           bool
	done                     bool
	oldValue                 func(context.Context) (*MatrixCell, error)
	predicates               []predicate.MatrixCell
}

var _ ent.Mutation = (*MatrixCellMutation)(nil)

// matrixcellOption allows management of the mutation configuration using functional options.
type matrixcellOption func(*MatrixCellMutation)

// newMatrixCellMutation creates new mutation for the MatrixCell entity.
func newMatrixCellMutation(c config, op Op, opts ...matrixcellOption) *MatrixCellMutation {
	m := &MatrixCellMutation{
		config:        c,
		op:            op,
		typ:           TypeMatrixCell,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatrixCellID sets the ID field of the mutation.
func withMatrixCellID(id int) matrixcellOption {
	return func(m *MatrixCellMutation) {
		var (
			err   error
			once  sync.Once
			value *MatrixCell
		)
		m.oldValue = func(ctx context.Context) (*MatrixCell, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatrixCell.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatrixCell sets the old MatrixCell of the mutation.
func withMatrixCell(node *MatrixCell) matrixcellOption {
	return func(m *MatrixCellMutation) {
		m.oldValue = func(context.Context) (*MatrixCell, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatrixCellMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatrixCellMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatrixCellMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatrixCellMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatrixCell.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMatrixID sets the "matrix_id" field.
func (m *MatrixCellMutation) SetMatrixID(i int) {
	m.matrix = &i
}

// MatrixID returns the value of the "matrix_id" field in the mutation.
func (m *MatrixCellMutation) MatrixID() (r int, exists bool) {
	v := m.matrix
	if v == nil {
		return
	}
	return *v, true
}

// OldMatrixID returns the old "matrix_id" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldMatrixID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatrixID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatrixID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatrixID: %w", err)
	}
	return oldValue.MatrixID, nil
}

// ResetMatrixID resets all changes to the "matrix_id" field.
func (m *MatrixCellMutation) ResetMatrixID() {
	m.matrix = nil
}

// SetCompanyID sets the "company_id" field.
func (m *MatrixCellMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *MatrixCellMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *MatrixCellMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *MatrixCellMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *MatrixCellMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetCellType sets the "cell_type" field.
func (m *MatrixCellMutation) SetCellType(s string) {
	m.cell_type = &s
}

// CellType returns the value of the "cell_type" field in the mutation.
func (m *MatrixCellMutation) CellType() (r string, exists bool) {
	v := m.cell_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCellType returns the old "cell_type" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldCellType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellType: %w", err)
	}
	return oldValue.CellType, nil
}

// ResetCellType resets all changes to the "cell_type" field.
func (m *MatrixCellMutation) ResetCellType() {
	m.cell_type = nil
}

// SetStatus sets the "status" field.
func (m *MatrixCellMutation) SetStatus(value matrixcell.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatrixCellMutation) Status() (r matrixcell.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldStatus(ctx context.Context) (v matrixcell.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MatrixCellMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentAnswerSetID sets the "current_answer_set_id" field.
func (m *MatrixCellMutation) SetCurrentAnswerSetID(i int) {
	m.current_answer_set_id = &i
	m.addcurrent_answer_set_id = nil
}

// CurrentAnswerSetID returns the value of the "current_answer_set_id" field in the mutation.
func (m *MatrixCellMutation) CurrentAnswerSetID() (r int, exists bool) {
	v := m.current_answer_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAnswerSetID returns the old "current_answer_set_id" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldCurrentAnswerSetID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAnswerSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAnswerSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAnswerSetID: %w", err)
	}
	return oldValue.CurrentAnswerSetID, nil
}

// AddCurrentAnswerSetID adds i to the "current_answer_set_id" field.
func (m *MatrixCellMutation) AddCurrentAnswerSetID(i int) {
	if m.addcurrent_answer_set_id != nil {
		*m.addcurrent_answer_set_id += i
	} else {
		m.addcurrent_answer_set_id = &i
	}
}

// AddedCurrentAnswerSetID returns the value that was added to the "current_answer_set_id" field in this mutation.
func (m *MatrixCellMutation) AddedCurrentAnswerSetID() (r int, exists bool) {
	v := m.addcurrent_answer_set_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentAnswerSetID clears the value of the "current_answer_set_id" field.
func (m *MatrixCellMutation) ClearCurrentAnswerSetID() {
	m.current_answer_set_id = nil
	m.addcurrent_answer_set_id = nil
	m.clearedFields[matrixcell.FieldCurrentAnswerSetID] = struct{}{}
}

// CurrentAnswerSetIDCleared returns if the "current_answer_set_id" field was cleared in this mutation.
func (m *MatrixCellMutation) CurrentAnswerSetIDCleared() bool {
	_, ok := m.clearedFields[matrixcell.FieldCurrentAnswerSetID]
	return ok
}

// ResetCurrentAnswerSetID resets all changes to the "current_answer_set_id" field.
func (m *MatrixCellMutation) ResetCurrentAnswerSetID() {
	m.current_answer_set_id = nil
	m.addcurrent_answer_set_id = nil
	delete(m.clearedFields, matrixcell.FieldCurrentAnswerSetID)
}

// SetCellSignature sets the "cell_signature" field.
func (m *MatrixCellMutation) SetCellSignature(s string) {
	m.cell_signature = &s
}

// CellSignature returns the value of the "cell_signature" field in the mutation.
func (m *MatrixCellMutation) CellSignature() (r string, exists bool) {
	v := m.cell_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldCellSignature returns the old "cell_signature" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldCellSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellSignature: %w", err)
	}
	return oldValue.CellSignature, nil
}

// ResetCellSignature resets all changes to the "cell_signature" field.
func (m *MatrixCellMutation) ResetCellSignature() {
	m.cell_signature = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MatrixCellMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatrixCellMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatrixCellMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MatrixCellMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MatrixCellMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the MatrixCell entity.
// If the MatrixCell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatrixCellMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MatrixCellMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[matrixcell.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MatrixCellMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[matrixcell.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MatrixCellMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, matrixcell.FieldDeletedAt)
}

// ClearMatrix clears the "matrix" edge to the Matrix entity.
func (m *MatrixCellMutation) ClearMatrix() {
	m.clearedmatrix = true
	m.clearedFields[matrixcell.FieldMatrixID] = struct{}{}
}

// MatrixCleared reports if the "matrix" edge to the Matrix entity was cleared.
func (m *MatrixCellMutation) MatrixCleared() bool {
	return m.clearedmatrix
}

// MatrixIDs returns the "matrix" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatrixID instead. It exists only for internal usage by the builders.
func (m *MatrixCellMutation) MatrixIDs() (ids []int) {
	if id := m.matrix; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatrix resets all changes to the "matrix" edge.
func (m *MatrixCellMutation) ResetMatrix() {
	m.matrix = nil
	m.clearedmatrix = false
}

// AddEntityRefIDs adds the "entity_refs" edge to the CellEntityRef entity by ids.
func (m *MatrixCellMutation) AddEntityRefIDs(ids ...int) {
	if m.entity_refs == nil {
		m.entity_refs = make(map[int]struct{})
	}
	for i := range ids {
		m.entity_refs[ids[i]] = struct{}{}
	}
}

// ClearEntityRefs clears the "entity_refs" edge to the CellEntityRef entity.
func (m *MatrixCellMutation) ClearEntityRefs() {
	m.clearedentity_refs = true
}

// EntityRefsCleared reports if the "entity_refs" edge to the CellEntityRef entity was cleared.
func (m *MatrixCellMutation) EntityRefsCleared() bool {
	return m.clearedentity_refs
}

// RemoveEntityRefIDs removes the "entity_refs" edge to the CellEntityRef entity by IDs.
func (m *MatrixCellMutation) RemoveEntityRefIDs(ids ...int) {
	if m.removedentity_refs == nil {
		m.removedentity_refs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entity_refs, ids[i])
		m.removedentity_refs[ids[i]] = struct{}{}
	}
}

// RemovedEntityRefs returns the removed IDs of the "entity_refs" edge to the CellEntityRef entity.
func (m *MatrixCellMutation) RemovedEntityRefsIDs() (ids []int) {
	for id := range m.removedentity_refs {
		ids = append(ids, id)
	}
	return
}

// EntityRefsIDs returns the "entity_refs" edge IDs in the mutation.
func (m *MatrixCellMutation) EntityRefsIDs() (ids []int) {
	for id := range m.entity_refs {
		ids = append(ids, id)
	}
	return
}

// ResetEntityRefs resets all changes to the "entity_refs" edge.
func (m *MatrixCellMutation) ResetEntityRefs() {
	m.entity_refs = nil
	m.clearedentity_refs = false
	m.removedentity_refs = nil
}

// AddAnswerSetIDs adds the "answer_sets" edge to the AnswerSet entity by ids.
func (m *MatrixCellMutation) AddAnswerSetIDs(ids ...int) {
	if m.answer_sets == nil {
		m.answer_sets = make(map[int]struct{})
	}
	for i := range ids {
		m.answer_sets[ids[i]] = struct{}{}
	}
}

// ClearAnswerSets clears the "answer_sets" edge to the AnswerSet entity.
func (m *MatrixCellMutation) ClearAnswerSets() {
	m.clearedanswer_sets = true
}

// AnswerSetsCleared reports if the "answer_sets" edge to the AnswerSet entity was cleared.
func (m *MatrixCellMutation) AnswerSetsCleared() bool {
	return m.clearedanswer_sets
}

// RemoveAnswerSetIDs removes the "answer_sets" edge to the AnswerSet entity by IDs.
func (m *MatrixCellMutation) RemoveAnswerSetIDs(ids ...int) {
	if m.removedanswer_sets == nil {
		m.removedanswer_sets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answer_sets, ids[i])
		m.removedanswer_sets[ids[i]] = struct{}{}
	}
}

// RemovedAnswerSets returns the removed IDs of the "answer_sets" edge to the AnswerSet entity.
func (m *MatrixCellMutation) RemovedAnswerSetsIDs() (ids []int) {
	for id := range m.removedanswer_sets {
		ids = append(ids, id)
	}
	return
}

// AnswerSetsIDs returns the "answer_sets" edge IDs in the mutation.
func (m *MatrixCellMutation) AnswerSetsIDs() (ids []int) {
	for id := range m.answer_sets {
		ids = append(ids, id)
	}
	return
}

// ResetAnswerSets resets all changes to the "answer_sets" edge.
func (m *MatrixCellMutation) ResetAnswerSets() {
	m.answer_sets = nil
	m.clearedanswer_sets = false
	m.removedanswer_sets = nil
}

// AddQaJobIDs adds the "qa_jobs" edge to the QAJob entity by ids.
func (m *MatrixCellMutation) AddQaJobIDs(ids ...int) {
	if m.qa_jobs == nil {
		m.qa_jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.qa_jobs[ids[i]] = struct{}{}
	}
}

// ClearQaJobs clears the "qa_jobs" edge to the QAJob entity.
func (m *MatrixCellMutation) ClearQaJobs() {
	m.clearedqa_jobs = true
}

// QaJobsCleared reports if the "qa_jobs" edge to the QAJob entity was cleared.
func (m *MatrixCellMutation) QaJobsCleared() bool {
	return m.clearedqa_jobs
}

// RemoveQaJobIDs removes the "qa_jobs" edge to the QAJob entity by IDs.
func (m *MatrixCellMutation) RemoveQaJobIDs(ids ...int) {
	if m.removedqa_jobs == nil {
		m.removedqa_jobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.qa_jobs, ids[i])
		m.removedqa_jobs[ids[i]] = struct{}{}
	}
}

// RemovedQaJobs returns the removed IDs of the "qa_jobs" edge to the QAJob entity.
func (m *MatrixCellMutation) RemovedQaJobsIDs() (ids []int) {
	for id := range m.removedqa_jobs {
		ids = append(ids, id)
	}
	return
}

// QaJobsIDs returns the "qa_jobs" edge IDs in the mutation.
func (m *MatrixCellMutation) QaJobsIDs() (ids []int) {
	for id := range m.qa_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetQaJobs resets all changes to the "qa_jobs" edge.
func (m *MatrixCellMutation) ResetQaJobs() {
	m.qa_jobs = nil
	m.clearedqa_jobs = false
	m.removedqa_jobs = nil
}

// Where appends a list predicates to the MatrixCellMutation builder.
func (m *MatrixCellMutation) Where(ps ...predicate.MatrixCell) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatrixCellMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatrixCellMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatrixCell, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatrixCellMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatrixCellMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatrixCell).
func (m *MatrixCellMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatrixCellMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.matrix != nil {
		fields = append(fields, matrixcell.FieldMatrixID)
	}
	if m.company_id != nil {
		fields = append(fields, matrixcell.FieldCompanyID)
	}
	if m.cell_type != nil {
		fields = append(fields, matrixcell.FieldCellType)
	}
	if m.status != nil {
		fields = append(fields, matrixcell.FieldStatus)
	}
	if m.current_answer_set_id != nil {
		fields = append(fields, matrixcell.FieldCurrentAnswerSetID)
	}
	if m.cell_signature != nil {
		fields = append(fields, matrixcell.FieldCellSignature)
	}
	if m.created_at != nil {
		fields = append(fields, matrixcell.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, matrixcell.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatrixCellMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matrixcell.FieldMatrixID:
		return m.MatrixID()
	case matrixcell.FieldCompanyID:
		return m.CompanyID()
	case matrixcell.FieldCellType:
		return m.CellType()
	case matrixcell.FieldStatus:
		return m.Status()
	case matrixcell.FieldCurrentAnswerSetID:
		return m.CurrentAnswerSetID()
	case matrixcell.FieldCellSignature:
		return m.CellSignature()
	case matrixcell.FieldCreatedAt:
		return m.CreatedAt()
	case matrixcell.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatrixCellMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matrixcell.FieldMatrixID:
		return m.OldMatrixID(ctx)
	case matrixcell.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case matrixcell.FieldCellType:
		return m.OldCellType(ctx)
	case matrixcell.FieldStatus:
		return m.OldStatus(ctx)
	case matrixcell.FieldCurrentAnswerSetID:
		return m.OldCurrentAnswerSetID(ctx)
	case matrixcell.FieldCellSignature:
		return m.OldCellSignature(ctx)
	case matrixcell.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case matrixcell.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MatrixCell field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixCellMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matrixcell.FieldMatrixID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatrixID(v)
		return nil
	case matrixcell.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case matrixcell.FieldCellType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellType(v)
		return nil
	case matrixcell.FieldStatus:
		v, ok := value.(matrixcell.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case matrixcell.FieldCurrentAnswerSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAnswerSetID(v)
		return nil
	case matrixcell.FieldCellSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellSignature(v)
		return nil
	case matrixcell.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case matrixcell.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MatrixCell field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatrixCellMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, matrixcell.FieldCompanyID)
	}
	if m.addcurrent_answer_set_id != nil {
		fields = append(fields, matrixcell.FieldCurrentAnswerSetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatrixCellMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matrixcell.FieldCompanyID:
		return m.AddedCompanyID()
	case matrixcell.FieldCurrentAnswerSetID:
		return m.AddedCurrentAnswerSetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatrixCellMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matrixcell.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	case matrixcell.FieldCurrentAnswerSetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentAnswerSetID(v)
		return nil
	}
	return fmt.Errorf("unknown MatrixCell numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatrixCellMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matrixcell.FieldCurrentAnswerSetID) {
		fields = append(fields, matrixcell.FieldCurrentAnswerSetID)
	}
	if m.FieldCleared(matrixcell.FieldDeletedAt) {
		fields = append(fields, matrixcell.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatrixCellMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatrixCellMutation) ClearField(name string) error {
	switch name {
	case matrixcell.FieldCurrentAnswerSetID:
		m.ClearCurrentAnswerSetID()
		return nil
	case matrixcell.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MatrixCell nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatrixCellMutation) ResetField(name string) error {
	switch name {
	case matrixcell.FieldMatrixID:
		m.ResetMatrixID()
		return nil
	case matrixcell.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case matrixcell.FieldCellType:
		m.ResetCellType()
		return nil
	case matrixcell.FieldStatus:
		m.ResetStatus()
		return nil
	case matrixcell.FieldCurrentAnswerSetID:
		m.ResetCurrentAnswerSetID()
		return nil
	case matrixcell.FieldCellSignature:
		m.ResetCellSignature()
		return nil
	case matrixcell.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case matrixcell.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MatrixCell field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatrixCellMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.matrix != nil {
		edges = append(edges, matrixcell.EdgeMatrix)
	}
	if m.entity_refs != nil {
		edges = append(edges, matrixcell.EdgeEntityRefs)
	}
	if m.answer_sets != nil {
		edges = append(edges, matrixcell.EdgeAnswerSets)
	}
	if m.qa_jobs != nil {
		edges = append(edges, matrixcell.EdgeQaJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatrixCellMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matrixcell.EdgeMatrix:
		if id := m.matrix; id != nil {
			return []ent.Value{*id}
		}
	case matrixcell.EdgeEntityRefs:
		ids := make([]ent.Value, 0, len(m.entity_refs))
		for id := range m.entity_refs {
			ids = append(ids, id)
		}
		return ids
	case matrixcell.EdgeAnswerSets:
		ids := make([]ent.Value, 0, len(m.answer_sets))
		for id := range m.answer_sets {
			ids = append(ids, id)
		}
		return ids
	case matrixcell.EdgeQaJobs:
		ids := make([]ent.Value, 0, len(m.qa_jobs))
		for id := range m.qa_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatrixCellMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedentity_refs != nil {
		edges = append(edges, matrixcell.EdgeEntityRefs)
	}
	if m.removedanswer_sets != nil {
		edges = append(edges, matrixcell.EdgeAnswerSets)
	}
	if m.removedqa_jobs != nil {
		edges = append(edges, matrixcell.EdgeQaJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatrixCellMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case matrixcell.EdgeEntityRefs:
		ids := make([]ent.Value, 0, len(m.removedentity_refs))
		for id := range m.removedentity_refs {
			ids = append(ids, id)
		}
		return ids
	case matrixcell.EdgeAnswerSets:
		ids := make([]ent.Value, 0, len(m.removedanswer_sets))
		for id := range m.removedanswer_sets {
			ids = append(ids, id)
		}
		return ids
	case matrixcell.EdgeQaJobs:
		ids := make([]ent.Value, 0, len(m.removedqa_jobs))
		for id := range m.removedqa_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatrixCellMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmatrix {
		edges = append(edges, matrixcell.EdgeMatrix)
	}
	if m.clearedentity_refs {
		edges = append(edges, matrixcell.EdgeEntityRefs)
	}
	if m.clearedanswer_sets {
		edges = append(edges, matrixcell.EdgeAnswerSets)
	}
	if m.clearedqa_jobs {
		edges = append(edges, matrixcell.EdgeQaJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatrixCellMutation) EdgeCleared(name string) bool {
	switch name {
	case matrixcell.EdgeMatrix:
		return m.clearedmatrix
	case matrixcell.EdgeEntityRefs:
		return m.clearedentity_refs
	case matrixcell.EdgeAnswerSets:
		return m.clearedanswer_sets
	case matrixcell.EdgeQaJobs:
		return m.clearedqa_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatrixCellMutation) ClearEdge(name string) error {
	switch name {
	case matrixcell.EdgeMatrix:
		m.ClearMatrix()
		return nil
	}
	return fmt.Errorf("unknown MatrixCell unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatrixCellMutation) ResetEdge(name string) error {
	switch name {
	case matrixcell.EdgeMatrix:
		m.ResetMatrix()
		return nil
	case matrixcell.EdgeEntityRefs:
		m.ResetEntityRefs()
		return nil
	case matrixcell.EdgeAnswerSets:
		m.ResetAnswerSets()
		return nil
	case matrixcell.EdgeQaJobs:
		m.ResetQaJobs()
		return nil
	}
	return fmt.Errorf("unknown MatrixCell edge %s", name)
}

// QAJobMutation represents an operation that mutates the QAJob nodes in the graph.
type QAJobMutation struct {
	config
	op            Op
	typ           string
	id            *int
	company_id    *int
	addcompany_id *int
	status        *qajob.Status
	error_message *string
	pod_id        *string
	created_at    *time.Time
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	cell          *int
	clearedcell   bool
	done          bool
	oldValue      func(context.Context) (*QAJob, error)
	predicates    []predicate.QAJob
}

var _ ent.Mutation = (*QAJobMutation)(nil)

// qajobOption allows management of the mutation configuration using functional options.
type qajobOption func(*QAJobMutation)

// newQAJobMutation creates new mutation for the QAJob entity.
func newQAJobMutation(c config, op Op, opts ...qajobOption) *QAJobMutation {
	m := &QAJobMutation{
		config:        c,
		op:            op,
		typ:           TypeQAJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQAJobID sets the ID field of the mutation.
func withQAJobID(id int) qajobOption {
	return func(m *QAJobMutation) {
		var (
			err   error
			once  sync.Once
			value *QAJob
		)
		m.oldValue = func(ctx context.Context) (*QAJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QAJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQAJob sets the old QAJob of the mutation.
func withQAJob(node *QAJob) qajobOption {
	return func(m *QAJobMutation) {
		m.oldValue = func(context.Context) (*QAJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QAJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QAJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QAJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QAJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QAJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCellID sets the "cell_id" field.
func (m *QAJobMutation) SetCellID(i int) {
	m.cell = &i
}

// CellID returns the value of the "cell_id" field in the mutation.
func (m *QAJobMutation) CellID() (r int, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCellID returns the old "cell_id" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldCellID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellID: %w", err)
	}
	return oldValue.CellID, nil
}

// ResetCellID resets all changes to the "cell_id" field.
func (m *QAJobMutation) ResetCellID() {
	m.cell = nil
}

// SetCompanyID sets the "company_id" field.
func (m *QAJobMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *QAJobMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *QAJobMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *QAJobMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *QAJobMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetStatus sets the "status" field.
func (m *QAJobMutation) SetStatus(q qajob.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QAJobMutation) Status() (r qajob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldStatus(ctx context.Context) (v qajob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QAJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *QAJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QAJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QAJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[qajob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QAJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[qajob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QAJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, qajob.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *QAJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *QAJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *QAJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[qajob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *QAJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[qajob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *QAJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, qajob.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *QAJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QAJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QAJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QAJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QAJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *QAJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[qajob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *QAJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[qajob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QAJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, qajob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QAJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QAJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QAJob entity.
// If the QAJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QAJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QAJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[qajob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QAJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[qajob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QAJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, qajob.FieldCompletedAt)
}

// ClearCell clears the "cell" edge to the MatrixCell entity.
func (m *QAJobMutation) ClearCell() {
	m.clearedcell = true
	m.clearedFields[qajob.FieldCellID] = struct{}{}
}

// CellCleared reports if the "cell" edge to the MatrixCell entity was cleared.
func (m *QAJobMutation) CellCleared() bool {
	return m.clearedcell
}

// CellIDs returns the "cell" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CellID instead. It exists only for internal usage by the builders.
func (m *QAJobMutation) CellIDs() (ids []int) {
	if id := m.cell; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCell resets all changes to the "cell" edge.
func (m *QAJobMutation) ResetCell() {
	m.cell = nil
	m.clearedcell = false
}

// Where appends a list predicates to the QAJobMutation builder.
func (m *QAJobMutation) Where(ps ...predicate.QAJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QAJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QAJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QAJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QAJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QAJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QAJob).
func (m *QAJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QAJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.cell != nil {
		fields = append(fields, qajob.FieldCellID)
	}
	if m.company_id != nil {
		fields = append(fields, qajob.FieldCompanyID)
	}
	if m.status != nil {
		fields = append(fields, qajob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, qajob.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, qajob.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, qajob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, qajob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, qajob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QAJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qajob.FieldCellID:
		return m.CellID()
	case qajob.FieldCompanyID:
		return m.CompanyID()
	case qajob.FieldStatus:
		return m.Status()
	case qajob.FieldErrorMessage:
		return m.ErrorMessage()
	case qajob.FieldPodID:
		return m.PodID()
	case qajob.FieldCreatedAt:
		return m.CreatedAt()
	case qajob.FieldStartedAt:
		return m.StartedAt()
	case qajob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QAJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qajob.FieldCellID:
		return m.OldCellID(ctx)
	case qajob.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case qajob.FieldStatus:
		return m.OldStatus(ctx)
	case qajob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case qajob.FieldPodID:
		return m.OldPodID(ctx)
	case qajob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case qajob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case qajob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QAJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QAJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qajob.FieldCellID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellID(v)
		return nil
	case qajob.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case qajob.FieldStatus:
		v, ok := value.(qajob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case qajob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case qajob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case qajob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case qajob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case qajob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QAJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QAJobMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, qajob.FieldCompanyID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QAJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case qajob.FieldCompanyID:
		return m.AddedCompanyID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QAJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case qajob.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	}
	return fmt.Errorf("unknown QAJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QAJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qajob.FieldErrorMessage) {
		fields = append(fields, qajob.FieldErrorMessage)
	}
	if m.FieldCleared(qajob.FieldPodID) {
		fields = append(fields, qajob.FieldPodID)
	}
	if m.FieldCleared(qajob.FieldStartedAt) {
		fields = append(fields, qajob.FieldStartedAt)
	}
	if m.FieldCleared(qajob.FieldCompletedAt) {
		fields = append(fields, qajob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QAJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QAJobMutation) ClearField(name string) error {
	switch name {
	case qajob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case qajob.FieldPodID:
		m.ClearPodID()
		return nil
	case qajob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case qajob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QAJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QAJobMutation) ResetField(name string) error {
	switch name {
	case qajob.FieldCellID:
		m.ResetCellID()
		return nil
	case qajob.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case qajob.FieldStatus:
		m.ResetStatus()
		return nil
	case qajob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case qajob.FieldPodID:
		m.ResetPodID()
		return nil
	case qajob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case qajob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case qajob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QAJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QAJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cell != nil {
		edges = append(edges, qajob.EdgeCell)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QAJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qajob.EdgeCell:
		if id := m.cell; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QAJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QAJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QAJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcell {
		edges = append(edges, qajob.EdgeCell)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QAJobMutation) EdgeCleared(name string) bool {
	switch name {
	case qajob.EdgeCell:
		return m.clearedcell
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QAJobMutation) ClearEdge(name string) error {
	switch name {
	case qajob.EdgeCell:
		m.ClearCell()
		return nil
	}
	return fmt.Errorf("unknown QAJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QAJobMutation) ResetEdge(name string) error {
	switch name {
	case qajob.EdgeCell:
		m.ResetCell()
		return nil
	}
	return fmt.Errorf("unknown QAJob edge %s", name)
}

// ServiceAccountMutation represents an operation that mutates the ServiceAccount nodes in the graph.
type ServiceAccountMutation struct {
	config
	op             Op
	typ            string
	id             *int
	execution_id   *string
	api_key_hash   *string
	is_active      *bool
	created_at     *time.Time
	deleted_at     *time.Time
	clearedFields  map[string]struct{}
	company        *int
	clearedcompany bool
	done           bool
	oldValue       func(context.Context) (*ServiceAccount, error)
	predicates     []predicate.ServiceAccount
}

var _ ent.Mutation = (*ServiceAccountMutation)(nil)

// serviceaccountOption allows management of the mutation configuration using functional options.
type serviceaccountOption func(*ServiceAccountMutation)

// newServiceAccountMutation creates new mutation for the ServiceAccount entity.
func newServiceAccountMutation(c config, op Op, opts ...serviceaccountOption) *ServiceAccountMutation {
	m := &ServiceAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceAccountID sets the ID field of the mutation.
func withServiceAccountID(id int) serviceaccountOption {
	return func(m *ServiceAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceAccount
		)
		m.oldValue = func(ctx context.Context) (*ServiceAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceAccount sets the old ServiceAccount of the mutation.
func withServiceAccount(node *ServiceAccount) serviceaccountOption {
	return func(m *ServiceAccountMutation) {
		m.oldValue = func(context.Context) (*ServiceAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceAccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceAccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *ServiceAccountMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ServiceAccountMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ServiceAccountMutation) ResetCompanyID() {
	m.company = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *ServiceAccountMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ServiceAccountMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ServiceAccountMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *ServiceAccountMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *ServiceAccountMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldAPIKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *ServiceAccountMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
}

// SetIsActive sets the "is_active" field.
func (m *ServiceAccountMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ServiceAccountMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ServiceAccountMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ServiceAccountMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ServiceAccountMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ServiceAccountMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[serviceaccount.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ServiceAccountMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[serviceaccount.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ServiceAccountMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, serviceaccount.FieldDeletedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *ServiceAccountMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[serviceaccount.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *ServiceAccountMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *ServiceAccountMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *ServiceAccountMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the ServiceAccountMutation builder.
func (m *ServiceAccountMutation) Where(ps ...predicate.ServiceAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceAccount).
func (m *ServiceAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceAccountMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.company != nil {
		fields = append(fields, serviceaccount.FieldCompanyID)
	}
	if m.execution_id != nil {
		fields = append(fields, serviceaccount.FieldExecutionID)
	}
	if m.api_key_hash != nil {
		fields = append(fields, serviceaccount.FieldAPIKeyHash)
	}
	if m.is_active != nil {
		fields = append(fields, serviceaccount.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, serviceaccount.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, serviceaccount.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceaccount.FieldCompanyID:
		return m.CompanyID()
	case serviceaccount.FieldExecutionID:
		return m.ExecutionID()
	case serviceaccount.FieldAPIKeyHash:
		return m.APIKeyHash()
	case serviceaccount.FieldIsActive:
		return m.IsActive()
	case serviceaccount.FieldCreatedAt:
		return m.CreatedAt()
	case serviceaccount.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceaccount.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case serviceaccount.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case serviceaccount.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case serviceaccount.FieldIsActive:
		return m.OldIsActive(ctx)
	case serviceaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case serviceaccount.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceaccount.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case serviceaccount.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case serviceaccount.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case serviceaccount.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case serviceaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case serviceaccount.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceAccountMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(serviceaccount.FieldDeletedAt) {
		fields = append(fields, serviceaccount.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceAccountMutation) ClearField(name string) error {
	switch name {
	case serviceaccount.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceAccountMutation) ResetField(name string) error {
	switch name {
	case serviceaccount.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case serviceaccount.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case serviceaccount.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case serviceaccount.FieldIsActive:
		m.ResetIsActive()
		return nil
	case serviceaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case serviceaccount.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, serviceaccount.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case serviceaccount.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, serviceaccount.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case serviceaccount.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceAccountMutation) ClearEdge(name string) error {
	switch name {
	case serviceaccount.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceAccountMutation) ResetEdge(name string) error {
	switch name {
	case serviceaccount.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	tier                 *subscription.Tier
	status               *subscription.Status
	current_period_start *time.Time
	current_period_end   *time.Time
	external_ref         *string
	created_at           *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	company              *int
	clearedcompany       bool
	done                 bool
	oldValue             func(context.Context) (*Subscription, error)
	predicates           []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id int) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *SubscriptionMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *SubscriptionMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *SubscriptionMutation) ResetCompanyID() {
	m.company = nil
}

// SetTier sets the "tier" field.
func (m *SubscriptionMutation) SetTier(s subscription.Tier) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *SubscriptionMutation) Tier() (r subscription.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldTier(ctx context.Context) (v subscription.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *SubscriptionMutation) ResetTier() {
	m.tier = nil
}

// SetStatus sets the "status" field.
func (m *SubscriptionMutation) SetStatus(s subscription.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubscriptionMutation) Status() (r subscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStatus(ctx context.Context) (v subscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (m *SubscriptionMutation) SetCurrentPeriodStart(t time.Time) {
	m.current_period_start = &t
}

// CurrentPeriodStart returns the value of the "current_period_start" field in the mutation.
func (m *SubscriptionMutation) CurrentPeriodStart() (r time.Time, exists bool) {
	v := m.current_period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodStart returns the old "current_period_start" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodStart: %w", err)
	}
	return oldValue.CurrentPeriodStart, nil
}

// ResetCurrentPeriodStart resets all changes to the "current_period_start" field.
func (m *SubscriptionMutation) ResetCurrentPeriodStart() {
	m.current_period_start = nil
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *SubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *SubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *SubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
}

// SetExternalRef sets the "external_ref" field.
func (m *SubscriptionMutation) SetExternalRef(s string) {
	m.external_ref = &s
}

// ExternalRef returns the value of the "external_ref" field in the mutation.
func (m *SubscriptionMutation) ExternalRef() (r string, exists bool) {
	v := m.external_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRef returns the old "external_ref" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldExternalRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRef: %w", err)
	}
	return oldValue.ExternalRef, nil
}

// ClearExternalRef clears the value of the "external_ref" field.
func (m *SubscriptionMutation) ClearExternalRef() {
	m.external_ref = nil
	m.clearedFields[subscription.FieldExternalRef] = struct{}{}
}

// ExternalRefCleared returns if the "external_ref" field was cleared in this mutation.
func (m *SubscriptionMutation) ExternalRefCleared() bool {
	_, ok := m.clearedFields[subscription.FieldExternalRef]
	return ok
}

// ResetExternalRef resets all changes to the "external_ref" field.
func (m *SubscriptionMutation) ResetExternalRef() {
	m.external_ref = nil
	delete(m.clearedFields, subscription.FieldExternalRef)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SubscriptionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SubscriptionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SubscriptionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[subscription.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SubscriptionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[subscription.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SubscriptionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, subscription.FieldDeletedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *SubscriptionMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[subscription.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *SubscriptionMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *SubscriptionMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *SubscriptionMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.company != nil {
		fields = append(fields, subscription.FieldCompanyID)
	}
	if m.tier != nil {
		fields = append(fields, subscription.FieldTier)
	}
	if m.status != nil {
		fields = append(fields, subscription.FieldStatus)
	}
	if m.current_period_start != nil {
		fields = append(fields, subscription.FieldCurrentPeriodStart)
	}
	if m.current_period_end != nil {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	if m.external_ref != nil {
		fields = append(fields, subscription.FieldExternalRef)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, subscription.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldCompanyID:
		return m.CompanyID()
	case subscription.FieldTier:
		return m.Tier()
	case subscription.FieldStatus:
		return m.Status()
	case subscription.FieldCurrentPeriodStart:
		return m.CurrentPeriodStart()
	case subscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case subscription.FieldExternalRef:
		return m.ExternalRef()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case subscription.FieldTier:
		return m.OldTier(ctx)
	case subscription.FieldStatus:
		return m.OldStatus(ctx)
	case subscription.FieldCurrentPeriodStart:
		return m.OldCurrentPeriodStart(ctx)
	case subscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case subscription.FieldExternalRef:
		return m.OldExternalRef(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case subscription.FieldTier:
		v, ok := value.(subscription.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case subscription.FieldStatus:
		v, ok := value.(subscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subscription.FieldCurrentPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodStart(v)
		return nil
	case subscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case subscription.FieldExternalRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRef(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldExternalRef) {
		fields = append(fields, subscription.FieldExternalRef)
	}
	if m.FieldCleared(subscription.FieldDeletedAt) {
		fields = append(fields, subscription.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldExternalRef:
		m.ClearExternalRef()
		return nil
	case subscription.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case subscription.FieldTier:
		m.ResetTier()
		return nil
	case subscription.FieldStatus:
		m.ResetStatus()
		return nil
	case subscription.FieldCurrentPeriodStart:
		m.ResetCurrentPeriodStart()
		return nil
	case subscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case subscription.FieldExternalRef:
		m.ResetExternalRef()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, subscription.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, subscription.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case subscription.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case subscription.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case subscription.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// UsageEventMutation represents an operation that mutates the UsageEvent nodes in the graph.
type UsageEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *int
	adduser_id         *int
	event_type         *usageevent.EventType
	quantity           *int
	addquantity        *int
	file_size_bytes    *int64
	addfile_size_bytes *int64
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	company            *int
	clearedcompany     bool
	done               bool
	oldValue           func(context.Context) (*UsageEvent, error)
	predicates         []predicate.UsageEvent
}

var _ ent.Mutation = (*UsageEventMutation)(nil)

// usageeventOption allows management of the mutation configuration using functional options.
type usageeventOption func(*UsageEventMutation)

// newUsageEventMutation creates new mutation for the UsageEvent entity.
func newUsageEventMutation(c config, op Op, opts ...usageeventOption) *UsageEventMutation {
	m := &UsageEventMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageEventID sets the ID field of the mutation.
func withUsageEventID(id int) usageeventOption {
	return func(m *UsageEventMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageEvent
		)
		m.oldValue = func(ctx context.Context) (*UsageEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageEvent sets the old UsageEvent of the mutation.
func withUsageEvent(node *UsageEvent) usageeventOption {
	return func(m *UsageEventMutation) {
		m.oldValue = func(context.Context) (*UsageEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *UsageEventMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *UsageEventMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *UsageEventMutation) ResetCompanyID() {
	m.company = nil
}

// SetUserID sets the "user_id" field.
func (m *UsageEventMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageEventMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *UsageEventMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *UsageEventMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearUserID clears the value of the "user_id" field.
func (m *UsageEventMutation) ClearUserID() {
	m.user_id = nil
	m.adduser_id = nil
	m.clearedFields[usageevent.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *UsageEventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
	delete(m.clearedFields, usageevent.FieldUserID)
}

// SetEventType sets the "event_type" field.
func (m *UsageEventMutation) SetEventType(ut usageevent.EventType) {
	m.event_type = &ut
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *UsageEventMutation) EventType() (r usageevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldEventType(ctx context.Context) (v usageevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *UsageEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetQuantity sets the "quantity" field.
func (m *UsageEventMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *UsageEventMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *UsageEventMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *UsageEventMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *UsageEventMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *UsageEventMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *UsageEventMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldFileSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *UsageEventMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *UsageEventMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *UsageEventMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[usageevent.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *UsageEventMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *UsageEventMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, usageevent.FieldFileSizeBytes)
}

// SetMetadata sets the "metadata" field.
func (m *UsageEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UsageEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UsageEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[usageevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UsageEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[usageevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UsageEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, usageevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageEvent entity.
// If the UsageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *UsageEventMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[usageevent.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *UsageEventMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *UsageEventMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *UsageEventMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the UsageEventMutation builder.
func (m *UsageEventMutation) Where(ps ...predicate.UsageEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageEvent).
func (m *UsageEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.company != nil {
		fields = append(fields, usageevent.FieldCompanyID)
	}
	if m.user_id != nil {
		fields = append(fields, usageevent.FieldUserID)
	}
	if m.event_type != nil {
		fields = append(fields, usageevent.FieldEventType)
	}
	if m.quantity != nil {
		fields = append(fields, usageevent.FieldQuantity)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, usageevent.FieldFileSizeBytes)
	}
	if m.metadata != nil {
		fields = append(fields, usageevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, usageevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageevent.FieldCompanyID:
		return m.CompanyID()
	case usageevent.FieldUserID:
		return m.UserID()
	case usageevent.FieldEventType:
		return m.EventType()
	case usageevent.FieldQuantity:
		return m.Quantity()
	case usageevent.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case usageevent.FieldMetadata:
		return m.Metadata()
	case usageevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageevent.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case usageevent.FieldUserID:
		return m.OldUserID(ctx)
	case usageevent.FieldEventType:
		return m.OldEventType(ctx)
	case usageevent.FieldQuantity:
		return m.OldQuantity(ctx)
	case usageevent.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case usageevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case usageevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageevent.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case usageevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usageevent.FieldEventType:
		v, ok := value.(usageevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case usageevent.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case usageevent.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case usageevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case usageevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, usageevent.FieldUserID)
	}
	if m.addquantity != nil {
		fields = append(fields, usageevent.FieldQuantity)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, usageevent.FieldFileSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usageevent.FieldUserID:
		return m.AddedUserID()
	case usageevent.FieldQuantity:
		return m.AddedQuantity()
	case usageevent.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usageevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case usageevent.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case usageevent.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usageevent.FieldUserID) {
		fields = append(fields, usageevent.FieldUserID)
	}
	if m.FieldCleared(usageevent.FieldFileSizeBytes) {
		fields = append(fields, usageevent.FieldFileSizeBytes)
	}
	if m.FieldCleared(usageevent.FieldMetadata) {
		fields = append(fields, usageevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageEventMutation) ClearField(name string) error {
	switch name {
	case usageevent.FieldUserID:
		m.ClearUserID()
		return nil
	case usageevent.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	case usageevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageEventMutation) ResetField(name string) error {
	switch name {
	case usageevent.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case usageevent.FieldUserID:
		m.ResetUserID()
		return nil
	case usageevent.FieldEventType:
		m.ResetEventType()
		return nil
	case usageevent.FieldQuantity:
		m.ResetQuantity()
		return nil
	case usageevent.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case usageevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case usageevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, usageevent.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usageevent.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, usageevent.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageEventMutation) EdgeCleared(name string) bool {
	switch name {
	case usageevent.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageEventMutation) ClearEdge(name string) error {
	switch name {
	case usageevent.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageEventMutation) ResetEdge(name string) error {
	switch name {
	case usageevent.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown UsageEvent edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	description       *string
	image_name        *string
	image_tag         *string
	job_config        *map[string]interface{}
	created_at        *time.Time
	deleted_at        *time.Time
	clearedFields     map[string]struct{}
	company           *int
	clearedcompany    bool
	executions        map[int]struct{}
	removedexecutions map[int]struct{}
	clearedexecutions bool
	done              bool
	oldValue          func(context.Context) (*Workflow, error)
	predicates        []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id int) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *WorkflowMutation) SetCompanyID(i int) {
	m.company = &i
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *WorkflowMutation) CompanyID() (r int, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *WorkflowMutation) ResetCompanyID() {
	m.company = nil
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkflowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkflowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkflowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workflow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkflowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkflowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workflow.FieldDescription)
}

// SetImageName sets the "image_name" field.
func (m *WorkflowMutation) SetImageName(s string) {
	m.image_name = &s
}

// ImageName returns the value of the "image_name" field in the mutation.
func (m *WorkflowMutation) ImageName() (r string, exists bool) {
	v := m.image_name
	if v == nil {
		return
	}
	return *v, true
}

// OldImageName returns the old "image_name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldImageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageName: %w", err)
	}
	return oldValue.ImageName, nil
}

// ResetImageName resets all changes to the "image_name" field.
func (m *WorkflowMutation) ResetImageName() {
	m.image_name = nil
}

// SetImageTag sets the "image_tag" field.
func (m *WorkflowMutation) SetImageTag(s string) {
	m.image_tag = &s
}

// ImageTag returns the value of the "image_tag" field in the mutation.
func (m *WorkflowMutation) ImageTag() (r string, exists bool) {
	v := m.image_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldImageTag returns the old "image_tag" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldImageTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageTag: %w", err)
	}
	return oldValue.ImageTag, nil
}

// ResetImageTag resets all changes to the "image_tag" field.
func (m *WorkflowMutation) ResetImageTag() {
	m.image_tag = nil
}

// SetJobConfig sets the "job_config" field.
func (m *WorkflowMutation) SetJobConfig(value map[string]interface{}) {
	m.job_config = &value
}

// JobConfig returns the value of the "job_config" field in the mutation.
func (m *WorkflowMutation) JobConfig() (r map[string]interface{}, exists bool) {
	v := m.job_config
	if v == nil {
		return
	}
	return *v, true
}

// OldJobConfig returns the old "job_config" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldJobConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobConfig: %w", err)
	}
	return oldValue.JobConfig, nil
}

// ClearJobConfig clears the value of the "job_config" field.
func (m *WorkflowMutation) ClearJobConfig() {
	m.job_config = nil
	m.clearedFields[workflow.FieldJobConfig] = struct{}{}
}

// JobConfigCleared returns if the "job_config" field was cleared in this mutation.
func (m *WorkflowMutation) JobConfigCleared() bool {
	_, ok := m.clearedFields[workflow.FieldJobConfig]
	return ok
}

// ResetJobConfig resets all changes to the "job_config" field.
func (m *WorkflowMutation) ResetJobConfig() {
	m.job_config = nil
	delete(m.clearedFields, workflow.FieldJobConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflow.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflow.FieldDeletedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *WorkflowMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[workflow.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *WorkflowMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *WorkflowMutation) CompanyIDs() (ids []int) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *WorkflowMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddExecutionIDs adds the "executions" edge to the WorkflowExecution entity by ids.
func (m *WorkflowMutation) AddExecutionIDs(ids ...int) {
	if m.executions == nil {
		m.executions = make(map[int]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the WorkflowExecution entity by IDs.
func (m *WorkflowMutation) RemoveExecutionIDs(ids ...int) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) RemovedExecutionsIDs() (ids []int) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *WorkflowMutation) ExecutionsIDs() (ids []int) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *WorkflowMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.company != nil {
		fields = append(fields, workflow.FieldCompanyID)
	}
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.image_name != nil {
		fields = append(fields, workflow.FieldImageName)
	}
	if m.image_tag != nil {
		fields = append(fields, workflow.FieldImageTag)
	}
	if m.job_config != nil {
		fields = append(fields, workflow.FieldJobConfig)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflow.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldCompanyID:
		return m.CompanyID()
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDescription:
		return m.Description()
	case workflow.FieldImageName:
		return m.ImageName()
	case workflow.FieldImageTag:
		return m.ImageTag()
	case workflow.FieldJobConfig:
		return m.JobConfig()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDescription:
		return m.OldDescription(ctx)
	case workflow.FieldImageName:
		return m.OldImageName(ctx)
	case workflow.FieldImageTag:
		return m.OldImageTag(ctx)
	case workflow.FieldJobConfig:
		return m.OldJobConfig(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workflow.FieldImageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageName(v)
		return nil
	case workflow.FieldImageTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageTag(v)
		return nil
	case workflow.FieldJobConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobConfig(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldDescription) {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.FieldCleared(workflow.FieldJobConfig) {
		fields = append(fields, workflow.FieldJobConfig)
	}
	if m.FieldCleared(workflow.FieldDeletedAt) {
		fields = append(fields, workflow.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldDescription:
		m.ClearDescription()
		return nil
	case workflow.FieldJobConfig:
		m.ClearJobConfig()
		return nil
	case workflow.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDescription:
		m.ResetDescription()
		return nil
	case workflow.FieldImageName:
		m.ResetImageName()
		return nil
	case workflow.FieldImageTag:
		m.ResetImageTag()
		return nil
	case workflow.FieldJobConfig:
		m.ResetJobConfig()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, workflow.EdgeCompany)
	}
	if m.executions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, workflow.EdgeCompany)
	}
	if m.clearedexecutions {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeCompany:
		return m.clearedcompany
	case workflow.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	case workflow.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeCompany:
		m.ResetCompany()
		return nil
	case workflow.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	company_id      *int
	addcompany_id   *int
	status          *workflowexecution.Status
	error_message   *string
	cost            *float64
	addcost         *float64
	duration_ms     *int64
	addduration_ms  *int64
	manifest_key    *string
	created_at      *time.Time
	started_at      *time.Time
	completed_at    *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *int
	clearedworkflow bool
	files           map[int]struct{}
	removedfiles    map[int]struct{}
	clearedfiles    bool
	done            bool
	oldValue        func(context.Context) (*WorkflowExecution, error)
	predicates      []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id int) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowExecutionMutation) SetWorkflowID(i int) {
	m.workflow = &i
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowExecutionMutation) WorkflowID() (r int, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflowID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowExecutionMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetCompanyID sets the "company_id" field.
func (m *WorkflowExecutionMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *WorkflowExecutionMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *WorkflowExecutionMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *WorkflowExecutionMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *WorkflowExecutionMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetCost sets the "cost" field.
func (m *WorkflowExecutionMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *WorkflowExecutionMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *WorkflowExecutionMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *WorkflowExecutionMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *WorkflowExecutionMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[workflowexecution.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CostCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *WorkflowExecutionMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, workflowexecution.FieldCost)
}

// SetDurationMs sets the "duration_ms" field.
func (m *WorkflowExecutionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *WorkflowExecutionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *WorkflowExecutionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *WorkflowExecutionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *WorkflowExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[workflowexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *WorkflowExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, workflowexecution.FieldDurationMs)
}

// SetManifestKey sets the "manifest_key" field.
func (m *WorkflowExecutionMutation) SetManifestKey(s string) {
	m.manifest_key = &s
}

// ManifestKey returns the value of the "manifest_key" field in the mutation.
func (m *WorkflowExecutionMutation) ManifestKey() (r string, exists bool) {
	v := m.manifest_key
	if v == nil {
		return
	}
	return *v, true
}

// OldManifestKey returns the old "manifest_key" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldManifestKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifestKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifestKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifestKey: %w", err)
	}
	return oldValue.ManifestKey, nil
}

// ClearManifestKey clears the value of the "manifest_key" field.
func (m *WorkflowExecutionMutation) ClearManifestKey() {
	m.manifest_key = nil
	m.clearedFields[workflowexecution.FieldManifestKey] = struct{}{}
}

// ManifestKeyCleared returns if the "manifest_key" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ManifestKeyCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldManifestKey]
	return ok
}

// ResetManifestKey resets all changes to the "manifest_key" field.
func (m *WorkflowExecutionMutation) ResetManifestKey() {
	m.manifest_key = nil
	delete(m.clearedFields, workflowexecution.FieldManifestKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowExecutionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowExecutionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowExecutionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflowexecution.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowExecutionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflowexecution.FieldDeletedAt)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowExecutionMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowexecution.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowExecutionMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) WorkflowIDs() (ids []int) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowExecutionMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddFileIDs adds the "files" edge to the ExecutionFile entity by ids.
func (m *WorkflowExecutionMutation) AddFileIDs(ids ...int) {
	if m.files == nil {
		m.files = make(map[int]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the ExecutionFile entity.
func (m *WorkflowExecutionMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the ExecutionFile entity was cleared.
func (m *WorkflowExecutionMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the ExecutionFile entity by IDs.
func (m *WorkflowExecutionMutation) RemoveFileIDs(ids ...int) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the ExecutionFile entity.
func (m *WorkflowExecutionMutation) RemovedFilesIDs() (ids []int) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) FilesIDs() (ids []int) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *WorkflowExecutionMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workflow != nil {
		fields = append(fields, workflowexecution.FieldWorkflowID)
	}
	if m.company_id != nil {
		fields = append(fields, workflowexecution.FieldCompanyID)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.cost != nil {
		fields = append(fields, workflowexecution.FieldCost)
	}
	if m.duration_ms != nil {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	if m.manifest_key != nil {
		fields = append(fields, workflowexecution.FieldManifestKey)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.WorkflowID()
	case workflowexecution.FieldCompanyID:
		return m.CompanyID()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldCost:
		return m.Cost()
	case workflowexecution.FieldDurationMs:
		return m.DurationMs()
	case workflowexecution.FieldManifestKey:
		return m.ManifestKey()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowexecution.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowexecution.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldCost:
		return m.OldCost(ctx)
	case workflowexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case workflowexecution.FieldManifestKey:
		return m.OldManifestKey(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowexecution.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowexecution.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case workflowexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case workflowexecution.FieldManifestKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifestKey(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowexecution.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, workflowexecution.FieldCompanyID)
	}
	if m.addcost != nil {
		fields = append(fields, workflowexecution.FieldCost)
	}
	if m.addduration_ms != nil {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldCompanyID:
		return m.AddedCompanyID()
	case workflowexecution.FieldCost:
		return m.AddedCost()
	case workflowexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	case workflowexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case workflowexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldCost) {
		fields = append(fields, workflowexecution.FieldCost)
	}
	if m.FieldCleared(workflowexecution.FieldDurationMs) {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	if m.FieldCleared(workflowexecution.FieldManifestKey) {
		fields = append(fields, workflowexecution.FieldManifestKey)
	}
	if m.FieldCleared(workflowexecution.FieldStartedAt) {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldCompletedAt) {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.FieldCleared(workflowexecution.FieldDeletedAt) {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldCost:
		m.ClearCost()
		return nil
	case workflowexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case workflowexecution.FieldManifestKey:
		m.ClearManifestKey()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowexecution.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldCost:
		m.ResetCost()
		return nil
	case workflowexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case workflowexecution.FieldManifestKey:
		m.ResetManifestKey()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workflow != nil {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.files != nil {
		edges = append(edges, workflowexecution.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, workflowexecution.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkflow {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.clearedfiles {
		edges = append(edges, workflowexecution.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeWorkflow:
		return m.clearedworkflow
	case workflowexecution.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case workflowexecution.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}
