package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// ChatMessage is one turn of an itinerary's chat transcript. Assistant turns
// that led to an apply also carry the changeset for auditability.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable().
			Comment("ULID"),
		field.String("itinerary_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content"),
		field.String("intent").
			Optional().
			Comment("Classified intent of the user turn this responds to"),
		field.JSON("change_set", models.ChangeSet{}).
			Optional(),
		field.Int("applied_version").
			Optional().
			Nillable().
			Comment("Itinerary version the apply produced, when one happened"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("itinerary", Itinerary.Type).
			Ref("chat_messages").
			Field("itinerary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("itinerary_id", "created_at"),
	}
}
