// Code generated by ent, DO NOT EDIT.

package cellentityref

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLTE(FieldID, id))
}

// CellID applies equality check predicate on the "cell_id" field. It's identical to CellIDEQ.
func CellID(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldCellID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldRole, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldEntityID, v))
}

// CellIDEQ applies the EQ predicate on the "cell_id" field.
func CellIDEQ(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldCellID, v))
}

// CellIDNEQ applies the NEQ predicate on the "cell_id" field.
func CellIDNEQ(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNEQ(FieldCellID, v))
}

// CellIDIn applies the In predicate on the "cell_id" field.
func CellIDIn(vs ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldIn(FieldCellID, vs...))
}

// CellIDNotIn applies the NotIn predicate on the "cell_id" field.
func CellIDNotIn(vs ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNotIn(FieldCellID, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldContainsFold(FieldRole, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v int) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.FieldLTE(FieldEntityID, v))
}

// HasCell applies the HasEdge predicate on the "cell" edge.
func HasCell() predicate.CellEntityRef {
	return predicate.CellEntityRef(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellWith applies the HasEdge predicate on the "cell" edge with a given conditions (other predicates).
func HasCellWith(preds ...predicate.MatrixCell) predicate.CellEntityRef {
	return predicate.CellEntityRef(func(s *sql.Selector) {
		step := newCellStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CellEntityRef) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CellEntityRef) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CellEntityRef) predicate.CellEntityRef {
	return predicate.CellEntityRef(sql.NotPredicates(p))
}
