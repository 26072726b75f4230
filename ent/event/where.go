// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderplan/wanderplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// ItineraryID applies equality check predicate on the "itinerary_id" field. It's identical to ItineraryIDEQ.
func ItineraryID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldItineraryID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldChannel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// ItineraryIDEQ applies the EQ predicate on the "itinerary_id" field.
func ItineraryIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldItineraryID, v))
}

// ItineraryIDNEQ applies the NEQ predicate on the "itinerary_id" field.
func ItineraryIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldItineraryID, v))
}

// ItineraryIDIn applies the In predicate on the "itinerary_id" field.
func ItineraryIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldItineraryID, vs...))
}

// ItineraryIDNotIn applies the NotIn predicate on the "itinerary_id" field.
func ItineraryIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldItineraryID, vs...))
}

// ItineraryIDGT applies the GT predicate on the "itinerary_id" field.
func ItineraryIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldItineraryID, v))
}

// ItineraryIDGTE applies the GTE predicate on the "itinerary_id" field.
func ItineraryIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldItineraryID, v))
}

// ItineraryIDLT applies the LT predicate on the "itinerary_id" field.
func ItineraryIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldItineraryID, v))
}

// ItineraryIDLTE applies the LTE predicate on the "itinerary_id" field.
func ItineraryIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldItineraryID, v))
}

// ItineraryIDContains applies the Contains predicate on the "itinerary_id" field.
func ItineraryIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldItineraryID, v))
}

// ItineraryIDHasPrefix applies the HasPrefix predicate on the "itinerary_id" field.
func ItineraryIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldItineraryID, v))
}

// ItineraryIDHasSuffix applies the HasSuffix predicate on the "itinerary_id" field.
func ItineraryIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldItineraryID, v))
}

// ItineraryIDEqualFold applies the EqualFold predicate on the "itinerary_id" field.
func ItineraryIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldItineraryID, v))
}

// ItineraryIDContainsFold applies the ContainsFold predicate on the "itinerary_id" field.
func ItineraryIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldItineraryID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldChannel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// HasItinerary applies the HasEdge predicate on the "itinerary" edge.
func HasItinerary() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ItineraryTable, ItineraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItineraryWith applies the HasEdge predicate on the "itinerary" edge with a given conditions (other predicates).
func HasItineraryWith(preds ...predicate.Itinerary) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newItineraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
