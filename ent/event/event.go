// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItineraryID holds the string denoting the itinerary_id field in the database.
	FieldItineraryID = "itinerary_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeItinerary holds the string denoting the itinerary edge name in mutations.
	EdgeItinerary = "itinerary"
	// ItineraryFieldID holds the string denoting the ID field of the Itinerary.
	ItineraryFieldID = "itinerary_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// ItineraryTable is the table that holds the itinerary relation/edge.
	ItineraryTable = "events"
	// ItineraryInverseTable is the table name for the Itinerary entity.
	// It exists in this package in order to avoid circular dependency with the "itinerary" package.
	ItineraryInverseTable = "itineraries"
	// ItineraryColumn is the table column denoting the itinerary relation/edge.
	ItineraryColumn = "itinerary_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldItineraryID,
	FieldChannel,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItineraryID orders the results by the itinerary_id field.
func ByItineraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItineraryID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByItineraryField orders the results by itinerary field.
func ByItineraryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItineraryStep(), sql.OrderByField(field, opts...))
	}
}
func newItineraryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItineraryInverseTable, ItineraryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ItineraryTable, ItineraryColumn),
	)
}
