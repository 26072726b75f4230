// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/event"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/predicate"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/ent/usertrip"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// ItineraryUpdate is the builder for updating Itinerary entities.
type ItineraryUpdate struct {
	config
	hooks    []Hook
	mutation *ItineraryMutation
}

// Where appends a list predicates to the ItineraryUpdate builder.
func (_u *ItineraryUpdate) Where(ps ...predicate.Itinerary) *ItineraryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ItineraryUpdate) SetOwnerID(v string) *ItineraryUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ItineraryUpdate) SetNillableOwnerID(v *string) *ItineraryUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ItineraryUpdate) SetVersion(v int) *ItineraryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ItineraryUpdate) SetNillableVersion(v *int) *ItineraryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ItineraryUpdate) AddVersion(v int) *ItineraryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItineraryUpdate) SetStatus(v itinerary.Status) *ItineraryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItineraryUpdate) SetNillableStatus(v *itinerary.Status) *ItineraryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *ItineraryUpdate) SetDays(v []models.Day) *ItineraryUpdate {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *ItineraryUpdate) AppendDays(v []models.Day) *ItineraryUpdate {
	_u.mutation.AppendDays(v)
	return _u
}

// ClearDays clears the value of the "days" field.
func (_u *ItineraryUpdate) ClearDays() *ItineraryUpdate {
	_u.mutation.ClearDays()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ItineraryUpdate) SetSettings(v models.Settings) *ItineraryUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (_u *ItineraryUpdate) SetNillableSettings(v *models.Settings) *ItineraryUpdate {
	if v != nil {
		_u.SetSettings(*v)
	}
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ItineraryUpdate) ClearSettings() *ItineraryUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetTrip sets the "trip" field.
func (_u *ItineraryUpdate) SetTrip(v models.TripMeta) *ItineraryUpdate {
	_u.mutation.SetTrip(v)
	return _u
}

// SetNillableTrip sets the "trip" field if the given value is not nil.
func (_u *ItineraryUpdate) SetNillableTrip(v *models.TripMeta) *ItineraryUpdate {
	if v != nil {
		_u.SetTrip(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItineraryUpdate) SetUpdatedAt(v time.Time) *ItineraryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *ItineraryUpdate) AddRevisionIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *ItineraryUpdate) AddRevisions(v ...*Revision) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *ItineraryUpdate) AddChatMessageIDs(ids ...string) *ItineraryUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryUpdate) AddChatMessages(v ...*ChatMessage) *ItineraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ItineraryUpdate) AddEventIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ItineraryUpdate) AddEvents(v ...*Event) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUserTripIDs adds the "user_trips" edge to the UserTrip entity by IDs.
func (_u *ItineraryUpdate) AddUserTripIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.AddUserTripIDs(ids...)
	return _u
}

// AddUserTrips adds the "user_trips" edges to the UserTrip entity.
func (_u *ItineraryUpdate) AddUserTrips(v ...*UserTrip) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserTripIDs(ids...)
}

// Mutation returns the ItineraryMutation object of the builder.
func (_u *ItineraryUpdate) Mutation() *ItineraryMutation {
	return _u.mutation
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *ItineraryUpdate) ClearRevisions() *ItineraryUpdate {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *ItineraryUpdate) RemoveRevisionIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *ItineraryUpdate) RemoveRevisions(v ...*Revision) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryUpdate) ClearChatMessages() *ItineraryUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *ItineraryUpdate) RemoveChatMessageIDs(ids ...string) *ItineraryUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *ItineraryUpdate) RemoveChatMessages(v ...*ChatMessage) *ItineraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ItineraryUpdate) ClearEvents() *ItineraryUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ItineraryUpdate) RemoveEventIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ItineraryUpdate) RemoveEvents(v ...*Event) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUserTrips clears all "user_trips" edges to the UserTrip entity.
func (_u *ItineraryUpdate) ClearUserTrips() *ItineraryUpdate {
	_u.mutation.ClearUserTrips()
	return _u
}

// RemoveUserTripIDs removes the "user_trips" edge to UserTrip entities by IDs.
func (_u *ItineraryUpdate) RemoveUserTripIDs(ids ...int) *ItineraryUpdate {
	_u.mutation.RemoveUserTripIDs(ids...)
	return _u
}

// RemoveUserTrips removes "user_trips" edges to UserTrip entities.
func (_u *ItineraryUpdate) RemoveUserTrips(v ...*UserTrip) *ItineraryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserTripIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItineraryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItineraryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItineraryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItineraryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItineraryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itinerary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItineraryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := itinerary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Itinerary.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ItineraryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itinerary.Table, itinerary.Columns, sqlgraph.NewFieldSpec(itinerary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(itinerary.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(itinerary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(itinerary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(itinerary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(itinerary.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itinerary.FieldDays, value)
		})
	}
	if _u.mutation.DaysCleared() {
		_spec.ClearField(itinerary.FieldDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(itinerary.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(itinerary.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trip(); ok {
		_spec.SetField(itinerary.FieldTrip, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itinerary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserTripsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserTripsIDs(); len(nodes) > 0 && !_u.mutation.UserTripsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserTripsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itinerary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItineraryUpdateOne is the builder for updating a single Itinerary entity.
type ItineraryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItineraryMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ItineraryUpdateOne) SetOwnerID(v string) *ItineraryUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ItineraryUpdateOne) SetNillableOwnerID(v *string) *ItineraryUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ItineraryUpdateOne) SetVersion(v int) *ItineraryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ItineraryUpdateOne) SetNillableVersion(v *int) *ItineraryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ItineraryUpdateOne) AddVersion(v int) *ItineraryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItineraryUpdateOne) SetStatus(v itinerary.Status) *ItineraryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItineraryUpdateOne) SetNillableStatus(v *itinerary.Status) *ItineraryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *ItineraryUpdateOne) SetDays(v []models.Day) *ItineraryUpdateOne {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *ItineraryUpdateOne) AppendDays(v []models.Day) *ItineraryUpdateOne {
	_u.mutation.AppendDays(v)
	return _u
}

// ClearDays clears the value of the "days" field.
func (_u *ItineraryUpdateOne) ClearDays() *ItineraryUpdateOne {
	_u.mutation.ClearDays()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ItineraryUpdateOne) SetSettings(v models.Settings) *ItineraryUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (_u *ItineraryUpdateOne) SetNillableSettings(v *models.Settings) *ItineraryUpdateOne {
	if v != nil {
		_u.SetSettings(*v)
	}
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ItineraryUpdateOne) ClearSettings() *ItineraryUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetTrip sets the "trip" field.
func (_u *ItineraryUpdateOne) SetTrip(v models.TripMeta) *ItineraryUpdateOne {
	_u.mutation.SetTrip(v)
	return _u
}

// SetNillableTrip sets the "trip" field if the given value is not nil.
func (_u *ItineraryUpdateOne) SetNillableTrip(v *models.TripMeta) *ItineraryUpdateOne {
	if v != nil {
		_u.SetTrip(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItineraryUpdateOne) SetUpdatedAt(v time.Time) *ItineraryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *ItineraryUpdateOne) AddRevisionIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *ItineraryUpdateOne) AddRevisions(v ...*Revision) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *ItineraryUpdateOne) AddChatMessageIDs(ids ...string) *ItineraryUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryUpdateOne) AddChatMessages(v ...*ChatMessage) *ItineraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ItineraryUpdateOne) AddEventIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ItineraryUpdateOne) AddEvents(v ...*Event) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUserTripIDs adds the "user_trips" edge to the UserTrip entity by IDs.
func (_u *ItineraryUpdateOne) AddUserTripIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.AddUserTripIDs(ids...)
	return _u
}

// AddUserTrips adds the "user_trips" edges to the UserTrip entity.
func (_u *ItineraryUpdateOne) AddUserTrips(v ...*UserTrip) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserTripIDs(ids...)
}

// Mutation returns the ItineraryMutation object of the builder.
func (_u *ItineraryUpdateOne) Mutation() *ItineraryMutation {
	return _u.mutation
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *ItineraryUpdateOne) ClearRevisions() *ItineraryUpdateOne {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *ItineraryUpdateOne) RemoveRevisionIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *ItineraryUpdateOne) RemoveRevisions(v ...*Revision) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryUpdateOne) ClearChatMessages() *ItineraryUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *ItineraryUpdateOne) RemoveChatMessageIDs(ids ...string) *ItineraryUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *ItineraryUpdateOne) RemoveChatMessages(v ...*ChatMessage) *ItineraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ItineraryUpdateOne) ClearEvents() *ItineraryUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ItineraryUpdateOne) RemoveEventIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ItineraryUpdateOne) RemoveEvents(v ...*Event) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUserTrips clears all "user_trips" edges to the UserTrip entity.
func (_u *ItineraryUpdateOne) ClearUserTrips() *ItineraryUpdateOne {
	_u.mutation.ClearUserTrips()
	return _u
}

// RemoveUserTripIDs removes the "user_trips" edge to UserTrip entities by IDs.
func (_u *ItineraryUpdateOne) RemoveUserTripIDs(ids ...int) *ItineraryUpdateOne {
	_u.mutation.RemoveUserTripIDs(ids...)
	return _u
}

// RemoveUserTrips removes "user_trips" edges to UserTrip entities.
func (_u *ItineraryUpdateOne) RemoveUserTrips(v ...*UserTrip) *ItineraryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserTripIDs(ids...)
}

// Where appends a list predicates to the ItineraryUpdate builder.
func (_u *ItineraryUpdateOne) Where(ps ...predicate.Itinerary) *ItineraryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItineraryUpdateOne) Select(field string, fields ...string) *ItineraryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Itinerary entity.
func (_u *ItineraryUpdateOne) Save(ctx context.Context) (*Itinerary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItineraryUpdateOne) SaveX(ctx context.Context) *Itinerary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItineraryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItineraryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItineraryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itinerary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItineraryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := itinerary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Itinerary.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ItineraryUpdateOne) sqlSave(ctx context.Context) (_node *Itinerary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itinerary.Table, itinerary.Columns, sqlgraph.NewFieldSpec(itinerary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Itinerary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itinerary.FieldID)
		for _, f := range fields {
			if !itinerary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itinerary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(itinerary.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(itinerary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(itinerary.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(itinerary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(itinerary.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itinerary.FieldDays, value)
		})
	}
	if _u.mutation.DaysCleared() {
		_spec.ClearField(itinerary.FieldDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(itinerary.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(itinerary.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trip(); ok {
		_spec.SetField(itinerary.FieldTrip, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itinerary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.RevisionsTable,
			Columns: []string{itinerary.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.ChatMessagesTable,
			Columns: []string{itinerary.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.EventsTable,
			Columns: []string{itinerary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserTripsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserTripsIDs(); len(nodes) > 0 && !_u.mutation.UserTripsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserTripsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerary.UserTripsTable,
			Columns: []string{itinerary.UserTripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertrip.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Itinerary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itinerary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
