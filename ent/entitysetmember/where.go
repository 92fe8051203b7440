// Code generated by ent, DO NOT EDIT.

package entitysetmember

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docmatrix-ai/docmatrix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLTE(FieldID, id))
}

// EntitySetID applies equality check predicate on the "entity_set_id" field. It's identical to EntitySetIDEQ.
func EntitySetID(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldEntitySetID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldEntityID, v))
}

// MemberOrder applies equality check predicate on the "member_order" field. It's identical to MemberOrderEQ.
func MemberOrder(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldMemberOrder, v))
}

// EntitySetIDEQ applies the EQ predicate on the "entity_set_id" field.
func EntitySetIDEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldEntitySetID, v))
}

// EntitySetIDNEQ applies the NEQ predicate on the "entity_set_id" field.
func EntitySetIDNEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldEntitySetID, v))
}

// EntitySetIDIn applies the In predicate on the "entity_set_id" field.
func EntitySetIDIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldEntitySetID, vs...))
}

// EntitySetIDNotIn applies the NotIn predicate on the "entity_set_id" field.
func EntitySetIDNotIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldEntitySetID, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLTE(FieldEntityID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldEntityType, vs...))
}

// MemberOrderEQ applies the EQ predicate on the "member_order" field.
func MemberOrderEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldMemberOrder, v))
}

// MemberOrderNEQ applies the NEQ predicate on the "member_order" field.
func MemberOrderNEQ(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldMemberOrder, v))
}

// MemberOrderIn applies the In predicate on the "member_order" field.
func MemberOrderIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldMemberOrder, vs...))
}

// MemberOrderNotIn applies the NotIn predicate on the "member_order" field.
func MemberOrderNotIn(vs ...int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldMemberOrder, vs...))
}

// MemberOrderGT applies the GT predicate on the "member_order" field.
func MemberOrderGT(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGT(FieldMemberOrder, v))
}

// MemberOrderGTE applies the GTE predicate on the "member_order" field.
func MemberOrderGTE(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGTE(FieldMemberOrder, v))
}

// MemberOrderLT applies the LT predicate on the "member_order" field.
func MemberOrderLT(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLT(FieldMemberOrder, v))
}

// MemberOrderLTE applies the LTE predicate on the "member_order" field.
func MemberOrderLTE(v int) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLTE(FieldMemberOrder, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.FieldContainsFold(FieldLabel, v))
}

// HasEntitySet applies the HasEdge predicate on the "entity_set" edge.
func HasEntitySet() predicate.EntitySetMember {
	return predicate.EntitySetMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntitySetTable, EntitySetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitySetWith applies the HasEdge predicate on the "entity_set" edge with a given conditions (other predicates).
func HasEntitySetWith(preds ...predicate.EntitySet) predicate.EntitySetMember {
	return predicate.EntitySetMember(func(s *sql.Selector) {
		step := newEntitySetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitySetMember) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitySetMember) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitySetMember) predicate.EntitySetMember {
	return predicate.EntitySetMember(sql.NotPredicates(p))
}
