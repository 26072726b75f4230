// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/event"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/ent/usertrip"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// ItineraryCreate is the builder for creating a Itinerary entity.
type ItineraryCreate struct {
	config
	mutation *ItineraryMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ItineraryCreate) SetOwnerID(v string) *ItineraryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ItineraryCreate) SetVersion(v int) *ItineraryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ItineraryCreate) SetNillableVersion(v *int) *ItineraryCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ItineraryCreate) SetStatus(v itinerary.Status) *ItineraryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ItineraryCreate) SetNillableStatus(v *itinerary.Status) *ItineraryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDays sets the "days" field.
func (_c *ItineraryCreate) SetDays(v []models.Day) *ItineraryCreate {
	_c.mutation.SetDays(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *ItineraryCreate) SetSettings(v models.Settings) *ItineraryCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (_c *ItineraryCreate) SetNillableSettings(v *models.Settings) *ItineraryCreate {
	if v != nil {
		_c.SetSettings(*v)
	}
	return _c
}

// SetTrip sets the "trip" field.
func (_c *ItineraryCreate) SetTrip(v models.TripMeta) *ItineraryCreate {
	_c.mutation.SetTrip(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItineraryCreate) SetCreatedAt(v time.Time) *ItineraryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItineraryCreate) SetNillableCreatedAt(v *time.Time) *ItineraryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItineraryCreate) SetUpdatedAt(v time.Time) *ItineraryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItineraryCreate) SetNillableUpdatedAt(v *time.Time) *ItineraryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItineraryCreate) SetID(v string) *ItineraryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_c *ItineraryCreate) AddRevisionIDs(ids ...int) *ItineraryCreate {
	_c.mutation.AddRevisionIDs(ids...)
	return _c
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_c *ItineraryCreate) AddRevisions(v ...*Revision) *ItineraryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRevisionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *ItineraryCreate) AddChatMessageIDs(ids ...string) *ItineraryCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *ItineraryCreate) AddChatMessages(v ...*ChatMessage) *ItineraryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ItineraryCreate) AddEventIDs(ids ...int) *ItineraryCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ItineraryCreate) AddEvents(v ...*Event) *ItineraryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddUserTripIDs adds the "user_trips" edge to the UserTrip entity by IDs.
func (_c *ItineraryCreate) AddUserTripIDs(ids ...int) *ItineraryCreate {
	_c.mutation.AddUserTripIDs(ids...)
	return _c
}

// AddUserTrips adds the "user_trips" edges to the UserTrip entity.
func (_c *ItineraryCreate) AddUserTrips(v ...*UserTrip) *ItineraryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserTripIDs(ids...)
}

// Mutation returns the ItineraryMutation object of the builder.
func (_c *ItineraryCreate) Mutation() *ItineraryMutation {
	return _c.mutation
}

// Save creates the Itinerary in the database.
func (_c *ItineraryCreate) Save(ctx context.Context) (*Itinerary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItineraryCreate) SaveX(ctx context.Context) *Itinerary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItineraryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItineraryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItineraryCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := itinerary.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := itinerary.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := itinerary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := itinerary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItineraryCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Itinerary.owner_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Itinerary.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Itinerary.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := itinerary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Itinerary.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trip(); !ok {
		return &ValidationError{Name: "trip", err: errors.New(`ent: missing required field "Itinerary.trip"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Itinerary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Itinerary.updated_at"`)}
	}
	return nil
}

func (_c *ItineraryCreate) sqlSave(ctx context.Context) (*Itinerary, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Itinerary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItineraryCreate) createSpec() (*Itinerary, *sqlgraph.CreateSpec) {
	var (
		_node = &Itinerary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itinerary.Table, sqlgraph.NewFieldSpec(itinerary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(itinerary.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(itinerary.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(itinerary.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Days(); ok {
		_spec.SetField(itinerary.FieldDays, field.TypeJSON, value)
		_node.Days = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(itinerary.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Trip(); ok {
		_spec.SetField(itinerary.FieldTrip, field.TypeJSON, value)
		_node.Trip = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(itinerary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(itinerary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RevisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserTripsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ItineraryCreateBulk is the builder for creating many Itinerary entities in bulk.
type ItineraryCreateBulk struct {
	config
	err      error
	builders []*ItineraryCreate
}

// Save creates the Itinerary entities in the database.
func (_c *ItineraryCreateBulk) Save(ctx context.Context) ([]*Itinerary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Itinerary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItineraryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ItineraryCreateBulk) SaveX(ctx context.Context) []*Itinerary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItineraryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItineraryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
