package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserTrip links a user to an itinerary for the trip list page.
type UserTrip struct {
	ent.Schema
}

// Fields of the UserTrip.
func (UserTrip) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("itinerary_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UserTrip.
func (UserTrip) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("itinerary", Itinerary.Type).
			Ref("user_trips").
			Field("itinerary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserTrip.
func (UserTrip) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "itinerary_id").
			Unique(),
		index.Fields("user_id", "created_at"),
	}
}
