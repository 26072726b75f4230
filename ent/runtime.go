// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/event"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/ent/schema"
	"github.com/wanderplan/wanderplan/ent/usertrip"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	itineraryFields := schema.Itinerary{}.Fields()
	_ = itineraryFields
	// itineraryDescVersion is the schema descriptor for version field.
	itineraryDescVersion := itineraryFields[2].Descriptor()
	// itinerary.DefaultVersion holds the default value on creation for the version field.
	itinerary.DefaultVersion = itineraryDescVersion.Default.(int)
	// itineraryDescCreatedAt is the schema descriptor for created_at field.
	itineraryDescCreatedAt := itineraryFields[7].Descriptor()
	// itinerary.DefaultCreatedAt holds the default value on creation for the created_at field.
	itinerary.DefaultCreatedAt = itineraryDescCreatedAt.Default.(func() time.Time)
	// itineraryDescUpdatedAt is the schema descriptor for updated_at field.
	itineraryDescUpdatedAt := itineraryFields[8].Descriptor()
	// itinerary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itinerary.DefaultUpdatedAt = itineraryDescUpdatedAt.Default.(func() time.Time)
	// itinerary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itinerary.UpdateDefaultUpdatedAt = itineraryDescUpdatedAt.UpdateDefault.(func() time.Time)
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescCreatedAt is the schema descriptor for created_at field.
	revisionDescCreatedAt := revisionFields[5].Descriptor()
	// revision.DefaultCreatedAt holds the default value on creation for the created_at field.
	revision.DefaultCreatedAt = revisionDescCreatedAt.Default.(func() time.Time)
	usertripFields := schema.UserTrip{}.Fields()
	_ = usertripFields
	// usertripDescCreatedAt is the schema descriptor for created_at field.
	usertripDescCreatedAt := usertripFields[2].Descriptor()
	// usertrip.DefaultCreatedAt holds the default value on creation for the created_at field.
	usertrip.DefaultCreatedAt = usertripDescCreatedAt.Default.(func() time.Time)
}
