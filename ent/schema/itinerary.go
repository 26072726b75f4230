package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// Itinerary holds the schema definition for the Itinerary entity. The day
// tree is stored as a JSONB document: the change engine and pipeline always
// read and write whole trees, so relational decomposition of days/nodes would
// only add join cost.
type Itinerary struct {
	ent.Schema
}

// Fields of the Itinerary.
func (Itinerary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("itinerary_id").
			Unique().
			Immutable().
			Comment("ULID"),
		field.String("owner_id"),
		field.Int("version").
			Default(1).
			Comment("Monotonic; bumped on every committed mutation"),
		field.Enum("status").
			Values("draft", "generating", "ready", "failed").
			Default("draft"),
		field.JSON("days", []models.Day{}).
			Optional(),
		field.JSON("settings", models.Settings{}).
			Optional(),
		field.JSON("trip", models.TripMeta{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Itinerary.
func (Itinerary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("revisions", Revision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("user_trips", UserTrip.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Itinerary.
func (Itinerary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("status"),
		index.Fields("owner_id", "created_at"),
	}
}
