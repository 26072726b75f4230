package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is the durable replay buffer behind pg_notify. Rows are written by
// the event publisher in the same transaction as the NOTIFY, read back by
// WebSocket catchup, and reaped by the retention cleanup service.
type Event struct {
	ent.Schema
}

// Fields of the Event. The integer id doubles as the catchup cursor:
// clients resume with the last id they saw.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("itinerary_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment(`e.g. "itinerary:01J8..."`),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("itinerary", Itinerary.Type).
			Ref("events").
			Field("itinerary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event. The (channel, id) catchup index is created in the
// SQL migrations — ent cannot index the implicit id column.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("created_at"),
	}
}
