package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// Revision is one entry of an itinerary's undo history: the pre-apply
// snapshot plus the changeset that moved past it. Revision N captures the
// state the itinerary had at version N, immediately before the apply that
// produced version N+1.
type Revision struct {
	ent.Schema
}

// Fields of the Revision.
func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.String("itinerary_id").
			Immutable(),
		field.Int("number").
			Immutable().
			Comment("Equals the itinerary version the snapshot was taken at"),
		field.JSON("snapshot", []models.Day{}),
		field.JSON("change_set", models.ChangeSet{}).
			Optional(),
		field.String("reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Revision.
func (Revision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("itinerary", Itinerary.Type).
			Ref("revisions").
			Field("itinerary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Revision.
func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("itinerary_id", "number").
			Unique(),
	}
}
