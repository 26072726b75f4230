// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Itinerary is the predicate function for itinerary builders.
type Itinerary func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)

// UserTrip is the predicate function for usertrip builders.
type UserTrip func(*sql.Selector)
