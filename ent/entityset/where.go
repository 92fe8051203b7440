// Code generated by ent, DO NOT EDIT.

package entityset

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldLTE(FieldID, id))
}

// MatrixID applies equality check predicate on the "matrix_id" field. It's identical to MatrixIDEQ.
func MatrixID(v int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldMatrixID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldName, v))
}

// MatrixIDEQ applies the EQ predicate on the "matrix_id" field.
func MatrixIDEQ(v int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldMatrixID, v))
}

// MatrixIDNEQ applies the NEQ predicate on the "matrix_id" field.
func MatrixIDNEQ(v int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNEQ(FieldMatrixID, v))
}

// MatrixIDIn applies the In predicate on the "matrix_id" field.
func MatrixIDIn(vs ...int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldIn(FieldMatrixID, vs...))
}

// MatrixIDNotIn applies the NotIn predicate on the "matrix_id" field.
func MatrixIDNotIn(vs ...int) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNotIn(FieldMatrixID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldContainsFold(FieldName, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.EntitySet {
	return predicate.EntitySet(sql.FieldNotIn(FieldEntityType, vs...))
}

// HasMatrix applies the HasEdge predicate on the "matrix" edge.
func HasMatrix() predicate.EntitySet {
	return predicate.EntitySet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MatrixTable, MatrixColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatrixWith applies the HasEdge predicate on the "matrix" edge with a given conditions (other predicates).
func HasMatrixWith(preds ...predicate.Matrix) predicate.EntitySet {
	return predicate.EntitySet(func(s *sql.Selector) {
		step := newMatrixStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMembers applies the HasEdge predicate on the "members" edge.
func HasMembers() predicate.EntitySet {
	return predicate.EntitySet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembersWith applies the HasEdge predicate on the "members" edge with a given conditions (other predicates).
func HasMembersWith(preds ...predicate.EntitySetMember) predicate.EntitySet {
	return predicate.EntitySet(func(s *sql.Selector) {
		step := newMembersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitySet) predicate.EntitySet {
	return predicate.EntitySet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitySet) predicate.EntitySet {
	return predicate.EntitySet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitySet) predicate.EntitySet {
	return predicate.EntitySet(sql.NotPredicates(p))
}
