// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// AnswerSet is the predicate function for answerset builders.
type AnswerSet func(*sql.Selector)

// CellEntityRef is the predicate function for cellentityref builders.
type CellEntityRef func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// ChunkSet is the predicate function for chunkset builders.
type ChunkSet func(*sql.Selector)

// Citation is the predicate function for citation builders.
type Citation func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// EntitySet is the predicate function for entityset builders.
type EntitySet func(*sql.Selector)

// EntitySetMember is the predicate function for entitysetmember builders.
type EntitySetMember func(*sql.Selector)

// ExecutionFile is the predicate function for executionfile builders.
type ExecutionFile func(*sql.Selector)

// Matrix is the predicate function for matrix builders.
type Matrix func(*sql.Selector)

// MatrixCell is the predicate function for matrixcell builders.
type MatrixCell func(*sql.Selector)

// QAJob is the predicate function for qajob builders.
type QAJob func(*sql.Selector)

// ServiceAccount is the predicate function for serviceaccount builders.
type ServiceAccount func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// UsageEvent is the predicate function for usageevent builders.
type UsageEvent func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)
