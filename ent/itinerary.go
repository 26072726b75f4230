// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// Itinerary is the model entity for the Itinerary schema.
type Itinerary struct {
	config `json:"-"`
	// ID of the ent.
	// ULID
	ID string `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Monotonic; bumped on every committed mutation
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status itinerary.Status `json:"status,omitempty"`
	// Days holds the value of the "days" field.
	Days []models.Day `json:"days,omitempty"`
	// Settings holds the value of the "settings" field.
	Settings models.Settings `json:"settings,omitempty"`
	// Trip holds the value of the "trip" field.
	Trip models.TripMeta `json:"trip,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItineraryQuery when eager-loading is set.
	Edges        ItineraryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItineraryEdges holds the relations/edges for other nodes in the graph.
type ItineraryEdges struct {
	// Revisions holds the value of the revisions edge.
	Revisions []*Revision `json:"revisions,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// UserTrips holds the value of the user_trips edge.
	UserTrips []*UserTrip `json:"user_trips,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RevisionsOrErr returns the Revisions value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryEdges) RevisionsOrErr() ([]*Revision, error) {
	if e.loadedTypes[0] {
		return e.Revisions, nil
	}
	return nil, &NotLoadedError{edge: "revisions"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[1] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// UserTripsOrErr returns the UserTrips value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryEdges) UserTripsOrErr() ([]*UserTrip, error) {
	if e.loadedTypes[3] {
		return e.UserTrips, nil
	}
	return nil, &NotLoadedError{edge: "user_trips"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Itinerary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itinerary.FieldDays, itinerary.FieldSettings, itinerary.FieldTrip:
			values[i] = new([]byte)
		case itinerary.FieldVersion:
			values[i] = new(sql.NullInt64)
		case itinerary.FieldID, itinerary.FieldOwnerID, itinerary.FieldStatus:
			values[i] = new(sql.NullString)
		case itinerary.FieldCreatedAt, itinerary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Itinerary fields.
func (_m *Itinerary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itinerary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case itinerary.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case itinerary.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case itinerary.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = itinerary.Status(value.String)
			}
		case itinerary.FieldDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Days); err != nil {
					return fmt.Errorf("unmarshal field days: %w", err)
				}
			}
		case itinerary.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case itinerary.FieldTrip:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trip", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Trip); err != nil {
					return fmt.Errorf("unmarshal field trip: %w", err)
				}
			}
		case itinerary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case itinerary.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Itinerary.
// This includes values selected through modifiers, order, etc.
func (_m *Itinerary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRevisions queries the "revisions" edge of the Itinerary entity.
func (_m *Itinerary) QueryRevisions() *RevisionQuery {
	return NewItineraryClient(_m.config).QueryRevisions(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Itinerary entity.
func (_m *Itinerary) QueryChatMessages() *ChatMessageQuery {
	return NewItineraryClient(_m.config).QueryChatMessages(_m)
}

// QueryEvents queries the "events" edge of the Itinerary entity.
func (_m *Itinerary) QueryEvents() *EventQuery {
	return NewItineraryClient(_m.config).QueryEvents(_m)
}

// QueryUserTrips queries the "user_trips" edge of the Itinerary entity.
func (_m *Itinerary) QueryUserTrips() *UserTripQuery {
	return NewItineraryClient(_m.config).QueryUserTrips(_m)
}

// Update returns a builder for updating this Itinerary.
// Note that you need to call Itinerary.Unwrap() before calling this method if this Itinerary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Itinerary) Update() *ItineraryUpdateOne {
	return NewItineraryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Itinerary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Itinerary) Unwrap() *Itinerary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Itinerary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Itinerary) String() string {
	var builder strings.Builder
	builder.WriteString("Itinerary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("days=")
	builder.WriteString(fmt.Sprintf("%v", _m.Days))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("trip=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trip))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Itineraries is a parsable slice of Itinerary.
type Itineraries []*Itinerary
