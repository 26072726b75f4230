// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatmessage type in the database.
	Label = "chat_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldItineraryID holds the string denoting the itinerary_id field in the database.
	FieldItineraryID = "itinerary_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldChangeSet holds the string denoting the change_set field in the database.
	FieldChangeSet = "change_set"
	// FieldAppliedVersion holds the string denoting the applied_version field in the database.
	FieldAppliedVersion = "applied_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeItinerary holds the string denoting the itinerary edge name in mutations.
	EdgeItinerary = "itinerary"
	// ItineraryFieldID holds the string denoting the ID field of the Itinerary.
	ItineraryFieldID = "itinerary_id"
	// Table holds the table name of the chatmessage in the database.
	Table = "chat_messages"
	// ItineraryTable is the table that holds the itinerary relation/edge.
	ItineraryTable = "chat_messages"
	// ItineraryInverseTable is the table name for the Itinerary entity.
	// It exists in this package in order to avoid circular dependency with the "itinerary" package.
	ItineraryInverseTable = "itineraries"
	// ItineraryColumn is the table column denoting the itinerary relation/edge.
	ItineraryColumn = "itinerary_id"
)

// Columns holds all SQL columns for chatmessage fields.
var Columns = []string{
	FieldID,
	FieldItineraryID,
	FieldRole,
	FieldContent,
	FieldIntent,
	FieldChangeSet,
	FieldAppliedVersion,
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

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("chatmessage: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the ChatMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItineraryID orders the results by the itinerary_id field.
func ByItineraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItineraryID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByAppliedVersion orders the results by the applied_version field.
func ByAppliedVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedVersion, opts...).ToFunc()
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
