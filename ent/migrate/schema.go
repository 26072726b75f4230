// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "change_set", Type: field.TypeJSON, Nullable: true},
		{Name: "applied_version", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_itineraries_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[7]},
				RefColumns: []*schema.Column{ItinerariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_itinerary_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[7], ChatMessagesColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_itineraries_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ItinerariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// ItinerariesColumns holds the columns for the "itineraries" table.
	ItinerariesColumns = []*schema.Column{
		{Name: "itinerary_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "generating", "ready", "failed"}, Default: "draft"},
		{Name: "days", Type: field.TypeJSON, Nullable: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "trip", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItinerariesTable holds the schema information for the "itineraries" table.
	ItinerariesTable = &schema.Table{
		Name:       "itineraries",
		Columns:    ItinerariesColumns,
		PrimaryKey: []*schema.Column{ItinerariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itinerary_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ItinerariesColumns[1]},
			},
			{
				Name:    "itinerary_status",
				Unique:  false,
				Columns: []*schema.Column{ItinerariesColumns[3]},
			},
			{
				Name:    "itinerary_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ItinerariesColumns[1], ItinerariesColumns[7]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "number", Type: field.TypeInt},
		{Name: "snapshot", Type: field.TypeJSON},
		{Name: "change_set", Type: field.TypeJSON, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "revisions_itineraries_revisions",
				Columns:    []*schema.Column{RevisionsColumns[6]},
				RefColumns: []*schema.Column{ItinerariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "revision_itinerary_id_number",
				Unique:  true,
				Columns: []*schema.Column{RevisionsColumns[6], RevisionsColumns[1]},
			},
		},
	}
	// UserTripsColumns holds the columns for the "user_trips" table.
	UserTripsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// UserTripsTable holds the schema information for the "user_trips" table.
	UserTripsTable = &schema.Table{
		Name:       "user_trips",
		Columns:    UserTripsColumns,
		PrimaryKey: []*schema.Column{UserTripsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_trips_itineraries_user_trips",
				Columns:    []*schema.Column{UserTripsColumns[3]},
				RefColumns: []*schema.Column{ItinerariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usertrip_user_id_itinerary_id",
				Unique:  true,
				Columns: []*schema.Column{UserTripsColumns[1], UserTripsColumns[3]},
			},
			{
				Name:    "usertrip_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UserTripsColumns[1], UserTripsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		EventsTable,
		ItinerariesTable,
		RevisionsTable,
		UserTripsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ItinerariesTable
	EventsTable.ForeignKeys[0].RefTable = ItinerariesTable
	RevisionsTable.ForeignKeys[0].RefTable = ItinerariesTable
	UserTripsTable.ForeignKeys[0].RefTable = ItinerariesTable
}
