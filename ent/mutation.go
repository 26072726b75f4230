// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/event"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/predicate"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/ent/usertrip"
	"github.com/wanderplan/wanderplan/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage = "ChatMessage"
	TypeEvent       = "Event"
	TypeItinerary   = "Itinerary"
	TypeRevision    = "Revision"
	TypeUserTrip    = "UserTrip"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	role               *chatmessage.Role
	content            *string
	intent             *string
	change_set         *models.ChangeSet
	applied_version    *int
	addapplied_version *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	itinerary          *string
	cleareditinerary   bool
	done               bool
	oldValue           func(context.Context) (*ChatMessage, error)
	predicates         []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItineraryID sets the "itinerary_id" field.
func (m *ChatMessageMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *ChatMessageMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *ChatMessageMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetIntent sets the "intent" field.
func (m *ChatMessageMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *ChatMessageMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *ChatMessageMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[chatmessage.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *ChatMessageMutation) IntentCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *ChatMessageMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, chatmessage.FieldIntent)
}

// SetChangeSet sets the "change_set" field.
func (m *ChatMessageMutation) SetChangeSet(ms models.ChangeSet) {
	m.change_set = &ms
}

// ChangeSet returns the value of the "change_set" field in the mutation.
func (m *ChatMessageMutation) ChangeSet() (r models.ChangeSet, exists bool) {
	v := m.change_set
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeSet returns the old "change_set" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChangeSet(ctx context.Context) (v models.ChangeSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeSet: %w", err)
	}
	return oldValue.ChangeSet, nil
}

// ClearChangeSet clears the value of the "change_set" field.
func (m *ChatMessageMutation) ClearChangeSet() {
	m.change_set = nil
	m.clearedFields[chatmessage.FieldChangeSet] = struct{}{}
}

// ChangeSetCleared returns if the "change_set" field was cleared in this mutation.
func (m *ChatMessageMutation) ChangeSetCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldChangeSet]
	return ok
}

// ResetChangeSet resets all changes to the "change_set" field.
func (m *ChatMessageMutation) ResetChangeSet() {
	m.change_set = nil
	delete(m.clearedFields, chatmessage.FieldChangeSet)
}

// SetAppliedVersion sets the "applied_version" field.
func (m *ChatMessageMutation) SetAppliedVersion(i int) {
	m.applied_version = &i
	m.addapplied_version = nil
}

// AppliedVersion returns the value of the "applied_version" field in the mutation.
func (m *ChatMessageMutation) AppliedVersion() (r int, exists bool) {
	v := m.applied_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedVersion returns the old "applied_version" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAppliedVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedVersion: %w", err)
	}
	return oldValue.AppliedVersion, nil
}

// AddAppliedVersion adds i to the "applied_version" field.
func (m *ChatMessageMutation) AddAppliedVersion(i int) {
	if m.addapplied_version != nil {
		*m.addapplied_version += i
	} else {
		m.addapplied_version = &i
	}
}

// AddedAppliedVersion returns the value that was added to the "applied_version" field in this mutation.
func (m *ChatMessageMutation) AddedAppliedVersion() (r int, exists bool) {
	v := m.addapplied_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearAppliedVersion clears the value of the "applied_version" field.
func (m *ChatMessageMutation) ClearAppliedVersion() {
	m.applied_version = nil
	m.addapplied_version = nil
	m.clearedFields[chatmessage.FieldAppliedVersion] = struct{}{}
}

// AppliedVersionCleared returns if the "applied_version" field was cleared in this mutation.
func (m *ChatMessageMutation) AppliedVersionCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAppliedVersion]
	return ok
}

// ResetAppliedVersion resets all changes to the "applied_version" field.
func (m *ChatMessageMutation) ResetAppliedVersion() {
	m.applied_version = nil
	m.addapplied_version = nil
	delete(m.clearedFields, chatmessage.FieldAppliedVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the Itinerary entity.
func (m *ChatMessageMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[chatmessage.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the Itinerary entity was cleared.
func (m *ChatMessageMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *ChatMessageMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.itinerary != nil {
		fields = append(fields, chatmessage.FieldItineraryID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.intent != nil {
		fields = append(fields, chatmessage.FieldIntent)
	}
	if m.change_set != nil {
		fields = append(fields, chatmessage.FieldChangeSet)
	}
	if m.applied_version != nil {
		fields = append(fields, chatmessage.FieldAppliedVersion)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldItineraryID:
		return m.ItineraryID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldIntent:
		return m.Intent()
	case chatmessage.FieldChangeSet:
		return m.ChangeSet()
	case chatmessage.FieldAppliedVersion:
		return m.AppliedVersion()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldIntent:
		return m.OldIntent(ctx)
	case chatmessage.FieldChangeSet:
		return m.OldChangeSet(ctx)
	case chatmessage.FieldAppliedVersion:
		return m.OldAppliedVersion(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case chatmessage.FieldChangeSet:
		v, ok := value.(models.ChangeSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeSet(v)
		return nil
	case chatmessage.FieldAppliedVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedVersion(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addapplied_version != nil {
		fields = append(fields, chatmessage.FieldAppliedVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldAppliedVersion:
		return m.AddedAppliedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldAppliedVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppliedVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldIntent) {
		fields = append(fields, chatmessage.FieldIntent)
	}
	if m.FieldCleared(chatmessage.FieldChangeSet) {
		fields = append(fields, chatmessage.FieldChangeSet)
	}
	if m.FieldCleared(chatmessage.FieldAppliedVersion) {
		fields = append(fields, chatmessage.FieldAppliedVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldIntent:
		m.ClearIntent()
		return nil
	case chatmessage.FieldChangeSet:
		m.ClearChangeSet()
		return nil
	case chatmessage.FieldAppliedVersion:
		m.ClearAppliedVersion()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldIntent:
		m.ResetIntent()
		return nil
	case chatmessage.FieldChangeSet:
		m.ResetChangeSet()
		return nil
	case chatmessage.FieldAppliedVersion:
		m.ResetAppliedVersion()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, chatmessage.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, chatmessage.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	channel          *string
	payload          *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	itinerary        *string
	cleareditinerary bool
	done             bool
	oldValue         func(context.Context) (*Event, error)
	predicates       []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItineraryID sets the "itinerary_id" field.
func (m *EventMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *EventMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *EventMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the Itinerary entity.
func (m *EventMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[event.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the Itinerary entity was cleared.
func (m *EventMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *EventMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.itinerary != nil {
		fields = append(fields, event.FieldItineraryID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldItineraryID:
		return m.ItineraryID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, event.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, event.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ItineraryMutation represents an operation that mutates the Itinerary nodes in the graph.
type ItineraryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	owner_id             *string
	version              *int
	addversion           *int
	status               *itinerary.Status
	days                 *[]models.Day
	appenddays           []models.Day
	settings             *models.Settings
	trip                 *models.TripMeta
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	revisions            map[int]struct{}
	removedrevisions     map[int]struct{}
	clearedrevisions     bool
	chat_messages        map[string]struct{}
	removedchat_messages map[string]struct{}
	clearedchat_messages bool
	events               map[int]struct{}
	removedevents        map[int]struct{}
	clearedevents        bool
	user_trips           map[int]struct{}
	removeduser_trips    map[int]struct{}
	cleareduser_trips    bool
	done                 bool
	oldValue             func(context.Context) (*Itinerary, error)
	predicates           []predicate.Itinerary
}

var _ ent.Mutation = (*ItineraryMutation)(nil)

// itineraryOption allows management of the mutation configuration using functional options.
type itineraryOption func(*ItineraryMutation)

// newItineraryMutation creates new mutation for the Itinerary entity.
func newItineraryMutation(c config, op Op, opts ...itineraryOption) *ItineraryMutation {
	m := &ItineraryMutation{
		config:        c,
		op:            op,
		typ:           TypeItinerary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItineraryID sets the ID field of the mutation.
func withItineraryID(id string) itineraryOption {
	return func(m *ItineraryMutation) {
		var (
			err   error
			once  sync.Once
			value *Itinerary
		)
		m.oldValue = func(ctx context.Context) (*Itinerary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Itinerary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItinerary sets the old Itinerary of the mutation.
func withItinerary(node *Itinerary) itineraryOption {
	return func(m *ItineraryMutation) {
		m.oldValue = func(context.Context) (*Itinerary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItineraryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItineraryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Itinerary entities.
func (m *ItineraryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItineraryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItineraryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Itinerary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ItineraryMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ItineraryMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ItineraryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetVersion sets the "version" field.
func (m *ItineraryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ItineraryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ItineraryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ItineraryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ItineraryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *ItineraryMutation) SetStatus(i itinerary.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *ItineraryMutation) Status() (r itinerary.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldStatus(ctx context.Context) (v itinerary.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ItineraryMutation) ResetStatus() {
	m.status = nil
}

// SetDays sets the "days" field.
func (m *ItineraryMutation) SetDays(value []models.Day) {
	m.days = &value
	m.appenddays = nil
}

// Days returns the value of the "days" field in the mutation.
func (m *ItineraryMutation) Days() (r []models.Day, exists bool) {
	v := m.days
	if v == nil {
		return
	}
	return *v, true
}

// OldDays returns the old "days" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldDays(ctx context.Context) (v []models.Day, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDays: %w", err)
	}
	return oldValue.Days, nil
}

// AppendDays adds value to the "days" field.
func (m *ItineraryMutation) AppendDays(value []models.Day) {
	m.appenddays = append(m.appenddays, value...)
}

// AppendedDays returns the list of values that were appended to the "days" field in this mutation.
func (m *ItineraryMutation) AppendedDays() ([]models.Day, bool) {
	if len(m.appenddays) == 0 {
		return nil, false
	}
	return m.appenddays, true
}

// ClearDays clears the value of the "days" field.
func (m *ItineraryMutation) ClearDays() {
	m.days = nil
	m.appenddays = nil
	m.clearedFields[itinerary.FieldDays] = struct{}{}
}

// DaysCleared returns if the "days" field was cleared in this mutation.
func (m *ItineraryMutation) DaysCleared() bool {
	_, ok := m.clearedFields[itinerary.FieldDays]
	return ok
}

// ResetDays resets all changes to the "days" field.
func (m *ItineraryMutation) ResetDays() {
	m.days = nil
	m.appenddays = nil
	delete(m.clearedFields, itinerary.FieldDays)
}

// SetSettings sets the "settings" field.
func (m *ItineraryMutation) SetSettings(value models.Settings) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ItineraryMutation) Settings() (r models.Settings, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldSettings(ctx context.Context) (v models.Settings, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ItineraryMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[itinerary.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ItineraryMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[itinerary.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ItineraryMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, itinerary.FieldSettings)
}

// SetTrip sets the "trip" field.
func (m *ItineraryMutation) SetTrip(mm models.TripMeta) {
	m.trip = &mm
}

// Trip returns the value of the "trip" field in the mutation.
func (m *ItineraryMutation) Trip() (r models.TripMeta, exists bool) {
	v := m.trip
	if v == nil {
		return
	}
	return *v, true
}

// OldTrip returns the old "trip" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldTrip(ctx context.Context) (v models.TripMeta, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrip: %w", err)
	}
	return oldValue.Trip, nil
}

// ResetTrip resets all changes to the "trip" field.
func (m *ItineraryMutation) ResetTrip() {
	m.trip = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ItineraryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItineraryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItineraryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItineraryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItineraryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Itinerary entity.
// If the Itinerary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItineraryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by ids.
func (m *ItineraryMutation) AddRevisionIDs(ids ...int) {
	if m.revisions == nil {
		m.revisions = make(map[int]struct{})
	}
	for i := range ids {
		m.revisions[ids[i]] = struct{}{}
	}
}

// ClearRevisions clears the "revisions" edge to the Revision entity.
func (m *ItineraryMutation) ClearRevisions() {
	m.clearedrevisions = true
}

// RevisionsCleared reports if the "revisions" edge to the Revision entity was cleared.
func (m *ItineraryMutation) RevisionsCleared() bool {
	return m.clearedrevisions
}

// RemoveRevisionIDs removes the "revisions" edge to the Revision entity by IDs.
func (m *ItineraryMutation) RemoveRevisionIDs(ids ...int) {
	if m.removedrevisions == nil {
		m.removedrevisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.revisions, ids[i])
		m.removedrevisions[ids[i]] = struct{}{}
	}
}

// RemovedRevisions returns the removed IDs of the "revisions" edge to the Revision entity.
func (m *ItineraryMutation) RemovedRevisionsIDs() (ids []int) {
	for id := range m.removedrevisions {
		ids = append(ids, id)
	}
	return
}

// RevisionsIDs returns the "revisions" edge IDs in the mutation.
func (m *ItineraryMutation) RevisionsIDs() (ids []int) {
	for id := range m.revisions {
		ids = append(ids, id)
	}
	return
}

// ResetRevisions resets all changes to the "revisions" edge.
func (m *ItineraryMutation) ResetRevisions() {
	m.revisions = nil
	m.clearedrevisions = false
	m.removedrevisions = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *ItineraryMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *ItineraryMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *ItineraryMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *ItineraryMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *ItineraryMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *ItineraryMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *ItineraryMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ItineraryMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ItineraryMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ItineraryMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ItineraryMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ItineraryMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ItineraryMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ItineraryMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddUserTripIDs adds the "user_trips" edge to the UserTrip entity by ids.
func (m *ItineraryMutation) AddUserTripIDs(ids ...int) {
	if m.user_trips == nil {
		m.user_trips = make(map[int]struct{})
	}
	for i := range ids {
		m.user_trips[ids[i]] = struct{}{}
	}
}

// ClearUserTrips clears the "user_trips" edge to the UserTrip entity.
func (m *ItineraryMutation) ClearUserTrips() {
	m.cleareduser_trips = true
}

// UserTripsCleared reports if the "user_trips" edge to the UserTrip entity was cleared.
func (m *ItineraryMutation) UserTripsCleared() bool {
	return m.cleareduser_trips
}

// RemoveUserTripIDs removes the "user_trips" edge to the UserTrip entity by IDs.
func (m *ItineraryMutation) RemoveUserTripIDs(ids ...int) {
	if m.removeduser_trips == nil {
		m.removeduser_trips = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.user_trips, ids[i])
		m.removeduser_trips[ids[i]] = struct{}{}
	}
}

// RemovedUserTrips returns the removed IDs of the "user_trips" edge to the UserTrip entity.
func (m *ItineraryMutation) RemovedUserTripsIDs() (ids []int) {
	for id := range m.removeduser_trips {
		ids = append(ids, id)
	}
	return
}

// UserTripsIDs returns the "user_trips" edge IDs in the mutation.
func (m *ItineraryMutation) UserTripsIDs() (ids []int) {
	for id := range m.user_trips {
		ids = append(ids, id)
	}
	return
}

// ResetUserTrips resets all changes to the "user_trips" edge.
func (m *ItineraryMutation) ResetUserTrips() {
	m.user_trips = nil
	m.cleareduser_trips = false
	m.removeduser_trips = nil
}

// Where appends a list predicates to the ItineraryMutation builder.
func (m *ItineraryMutation) Where(ps ...predicate.Itinerary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItineraryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItineraryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Itinerary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItineraryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItineraryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Itinerary).
func (m *ItineraryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItineraryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, itinerary.FieldOwnerID)
	}
	if m.version != nil {
		fields = append(fields, itinerary.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, itinerary.FieldStatus)
	}
	if m.days != nil {
		fields = append(fields, itinerary.FieldDays)
	}
	if m.settings != nil {
		fields = append(fields, itinerary.FieldSettings)
	}
	if m.trip != nil {
		fields = append(fields, itinerary.FieldTrip)
	}
	if m.created_at != nil {
		fields = append(fields, itinerary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, itinerary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItineraryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itinerary.FieldOwnerID:
		return m.OwnerID()
	case itinerary.FieldVersion:
		return m.Version()
	case itinerary.FieldStatus:
		return m.Status()
	case itinerary.FieldDays:
		return m.Days()
	case itinerary.FieldSettings:
		return m.Settings()
	case itinerary.FieldTrip:
		return m.Trip()
	case itinerary.FieldCreatedAt:
		return m.CreatedAt()
	case itinerary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItineraryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itinerary.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case itinerary.FieldVersion:
		return m.OldVersion(ctx)
	case itinerary.FieldStatus:
		return m.OldStatus(ctx)
	case itinerary.FieldDays:
		return m.OldDays(ctx)
	case itinerary.FieldSettings:
		return m.OldSettings(ctx)
	case itinerary.FieldTrip:
		return m.OldTrip(ctx)
	case itinerary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case itinerary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Itinerary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItineraryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itinerary.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case itinerary.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case itinerary.FieldStatus:
		v, ok := value.(itinerary.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case itinerary.FieldDays:
		v, ok := value.([]models.Day)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDays(v)
		return nil
	case itinerary.FieldSettings:
		v, ok := value.(models.Settings)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case itinerary.FieldTrip:
		v, ok := value.(models.TripMeta)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrip(v)
		return nil
	case itinerary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case itinerary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Itinerary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItineraryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, itinerary.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItineraryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itinerary.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItineraryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itinerary.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Itinerary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItineraryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(itinerary.FieldDays) {
		fields = append(fields, itinerary.FieldDays)
	}
	if m.FieldCleared(itinerary.FieldSettings) {
		fields = append(fields, itinerary.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItineraryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItineraryMutation) ClearField(name string) error {
	switch name {
	case itinerary.FieldDays:
		m.ClearDays()
		return nil
	case itinerary.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Itinerary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItineraryMutation) ResetField(name string) error {
	switch name {
	case itinerary.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case itinerary.FieldVersion:
		m.ResetVersion()
		return nil
	case itinerary.FieldStatus:
		m.ResetStatus()
		return nil
	case itinerary.FieldDays:
		m.ResetDays()
		return nil
	case itinerary.FieldSettings:
		m.ResetSettings()
		return nil
	case itinerary.FieldTrip:
		m.ResetTrip()
		return nil
	case itinerary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case itinerary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Itinerary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItineraryMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.revisions != nil {
		edges = append(edges, itinerary.EdgeRevisions)
	}
	if m.chat_messages != nil {
		edges = append(edges, itinerary.EdgeChatMessages)
	}
	if m.events != nil {
		edges = append(edges, itinerary.EdgeEvents)
	}
	if m.user_trips != nil {
		edges = append(edges, itinerary.EdgeUserTrips)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItineraryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case itinerary.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.revisions))
		for id := range m.revisions {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeUserTrips:
		ids := make([]ent.Value, 0, len(m.user_trips))
		for id := range m.user_trips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItineraryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedrevisions != nil {
		edges = append(edges, itinerary.EdgeRevisions)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, itinerary.EdgeChatMessages)
	}
	if m.removedevents != nil {
		edges = append(edges, itinerary.EdgeEvents)
	}
	if m.removeduser_trips != nil {
		edges = append(edges, itinerary.EdgeUserTrips)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItineraryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case itinerary.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.removedrevisions))
		for id := range m.removedrevisions {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case itinerary.EdgeUserTrips:
		ids := make([]ent.Value, 0, len(m.removeduser_trips))
		for id := range m.removeduser_trips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItineraryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrevisions {
		edges = append(edges, itinerary.EdgeRevisions)
	}
	if m.clearedchat_messages {
		edges = append(edges, itinerary.EdgeChatMessages)
	}
	if m.clearedevents {
		edges = append(edges, itinerary.EdgeEvents)
	}
	if m.cleareduser_trips {
		edges = append(edges, itinerary.EdgeUserTrips)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItineraryMutation) EdgeCleared(name string) bool {
	switch name {
	case itinerary.EdgeRevisions:
		return m.clearedrevisions
	case itinerary.EdgeChatMessages:
		return m.clearedchat_messages
	case itinerary.EdgeEvents:
		return m.clearedevents
	case itinerary.EdgeUserTrips:
		return m.cleareduser_trips
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItineraryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Itinerary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItineraryMutation) ResetEdge(name string) error {
	switch name {
	case itinerary.EdgeRevisions:
		m.ResetRevisions()
		return nil
	case itinerary.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	case itinerary.EdgeEvents:
		m.ResetEvents()
		return nil
	case itinerary.EdgeUserTrips:
		m.ResetUserTrips()
		return nil
	}
	return fmt.Errorf("unknown Itinerary edge %s", name)
}

// RevisionMutation represents an operation that mutates the Revision nodes in the graph.
type RevisionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	number           *int
	addnumber        *int
	snapshot         *[]models.Day
	appendsnapshot   []models.Day
	change_set       *models.ChangeSet
	reason           *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	itinerary        *string
	cleareditinerary bool
	done             bool
	oldValue         func(context.Context) (*Revision, error)
	predicates       []predicate.Revision
}

var _ ent.Mutation = (*RevisionMutation)(nil)

// revisionOption allows management of the mutation configuration using functional options.
type revisionOption func(*RevisionMutation)

// newRevisionMutation creates new mutation for the Revision entity.
func newRevisionMutation(c config, op Op, opts ...revisionOption) *RevisionMutation {
	m := &RevisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRevision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRevisionID sets the ID field of the mutation.
func withRevisionID(id int) revisionOption {
	return func(m *RevisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Revision
		)
		m.oldValue = func(ctx context.Context) (*Revision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Revision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRevision sets the old Revision of the mutation.
func withRevision(node *Revision) revisionOption {
	return func(m *RevisionMutation) {
		m.oldValue = func(context.Context) (*Revision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RevisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RevisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RevisionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RevisionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Revision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItineraryID sets the "itinerary_id" field.
func (m *RevisionMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *RevisionMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *RevisionMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetNumber sets the "number" field.
func (m *RevisionMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *RevisionMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *RevisionMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *RevisionMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *RevisionMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetSnapshot sets the "snapshot" field.
func (m *RevisionMutation) SetSnapshot(value []models.Day) {
	m.snapshot = &value
	m.appendsnapshot = nil
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *RevisionMutation) Snapshot() (r []models.Day, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldSnapshot(ctx context.Context) (v []models.Day, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// AppendSnapshot adds value to the "snapshot" field.
func (m *RevisionMutation) AppendSnapshot(value []models.Day) {
	m.appendsnapshot = append(m.appendsnapshot, value...)
}

// AppendedSnapshot returns the list of values that were appended to the "snapshot" field in this mutation.
func (m *RevisionMutation) AppendedSnapshot() ([]models.Day, bool) {
	if len(m.appendsnapshot) == 0 {
		return nil, false
	}
	return m.appendsnapshot, true
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *RevisionMutation) ResetSnapshot() {
	m.snapshot = nil
	m.appendsnapshot = nil
}

// SetChangeSet sets the "change_set" field.
func (m *RevisionMutation) SetChangeSet(ms models.ChangeSet) {
	m.change_set = &ms
}

// ChangeSet returns the value of the "change_set" field in the mutation.
func (m *RevisionMutation) ChangeSet() (r models.ChangeSet, exists bool) {
	v := m.change_set
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeSet returns the old "change_set" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldChangeSet(ctx context.Context) (v models.ChangeSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeSet: %w", err)
	}
	return oldValue.ChangeSet, nil
}

// ClearChangeSet clears the value of the "change_set" field.
func (m *RevisionMutation) ClearChangeSet() {
	m.change_set = nil
	m.clearedFields[revision.FieldChangeSet] = struct{}{}
}

// ChangeSetCleared returns if the "change_set" field was cleared in this mutation.
func (m *RevisionMutation) ChangeSetCleared() bool {
	_, ok := m.clearedFields[revision.FieldChangeSet]
	return ok
}

// ResetChangeSet resets all changes to the "change_set" field.
func (m *RevisionMutation) ResetChangeSet() {
	m.change_set = nil
	delete(m.clearedFields, revision.FieldChangeSet)
}

// SetReason sets the "reason" field.
func (m *RevisionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RevisionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *RevisionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[revision.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *RevisionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[revision.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *RevisionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, revision.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *RevisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RevisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RevisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the Itinerary entity.
func (m *RevisionMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[revision.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the Itinerary entity was cleared.
func (m *RevisionMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *RevisionMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *RevisionMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the RevisionMutation builder.
func (m *RevisionMutation) Where(ps ...predicate.Revision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RevisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RevisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Revision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RevisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RevisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Revision).
func (m *RevisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RevisionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.itinerary != nil {
		fields = append(fields, revision.FieldItineraryID)
	}
	if m.number != nil {
		fields = append(fields, revision.FieldNumber)
	}
	if m.snapshot != nil {
		fields = append(fields, revision.FieldSnapshot)
	}
	if m.change_set != nil {
		fields = append(fields, revision.FieldChangeSet)
	}
	if m.reason != nil {
		fields = append(fields, revision.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, revision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RevisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldItineraryID:
		return m.ItineraryID()
	case revision.FieldNumber:
		return m.Number()
	case revision.FieldSnapshot:
		return m.Snapshot()
	case revision.FieldChangeSet:
		return m.ChangeSet()
	case revision.FieldReason:
		return m.Reason()
	case revision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RevisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case revision.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case revision.FieldNumber:
		return m.OldNumber(ctx)
	case revision.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case revision.FieldChangeSet:
		return m.OldChangeSet(ctx)
	case revision.FieldReason:
		return m.OldReason(ctx)
	case revision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Revision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case revision.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case revision.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case revision.FieldSnapshot:
		v, ok := value.([]models.Day)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case revision.FieldChangeSet:
		v, ok := value.(models.ChangeSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeSet(v)
		return nil
	case revision.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case revision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RevisionMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, revision.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RevisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case revision.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Revision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RevisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(revision.FieldChangeSet) {
		fields = append(fields, revision.FieldChangeSet)
	}
	if m.FieldCleared(revision.FieldReason) {
		fields = append(fields, revision.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RevisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RevisionMutation) ClearField(name string) error {
	switch name {
	case revision.FieldChangeSet:
		m.ClearChangeSet()
		return nil
	case revision.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Revision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RevisionMutation) ResetField(name string) error {
	switch name {
	case revision.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case revision.FieldNumber:
		m.ResetNumber()
		return nil
	case revision.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case revision.FieldChangeSet:
		m.ResetChangeSet()
		return nil
	case revision.FieldReason:
		m.ResetReason()
		return nil
	case revision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RevisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, revision.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RevisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case revision.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RevisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RevisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RevisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, revision.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RevisionMutation) EdgeCleared(name string) bool {
	switch name {
	case revision.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RevisionMutation) ClearEdge(name string) error {
	switch name {
	case revision.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown Revision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RevisionMutation) ResetEdge(name string) error {
	switch name {
	case revision.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown Revision edge %s", name)
}

// UserTripMutation represents an operation that mutates the UserTrip nodes in the graph.
type UserTripMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	itinerary        *string
	cleareditinerary bool
	done             bool
	oldValue         func(context.Context) (*UserTrip, error)
	predicates       []predicate.UserTrip
}

var _ ent.Mutation = (*UserTripMutation)(nil)

// usertripOption allows management of the mutation configuration using functional options.
type usertripOption func(*UserTripMutation)

// newUserTripMutation creates new mutation for the UserTrip entity.
func newUserTripMutation(c config, op Op, opts ...usertripOption) *UserTripMutation {
	m := &UserTripMutation{
		config:        c,
		op:            op,
		typ:           TypeUserTrip,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserTripID sets the ID field of the mutation.
func withUserTripID(id int) usertripOption {
	return func(m *UserTripMutation) {
		var (
			err   error
			once  sync.Once
			value *UserTrip
		)
		m.oldValue = func(ctx context.Context) (*UserTrip, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserTrip.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserTrip sets the old UserTrip of the mutation.
func withUserTrip(node *UserTrip) usertripOption {
	return func(m *UserTripMutation) {
		m.oldValue = func(context.Context) (*UserTrip, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserTripMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserTripMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserTripMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserTripMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserTrip.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserTripMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserTripMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserTrip entity.
// If the UserTrip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTripMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserTripMutation) ResetUserID() {
	m.user_id = nil
}

// SetItineraryID sets the "itinerary_id" field.
func (m *UserTripMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *UserTripMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the UserTrip entity.
// If the UserTrip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTripMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *UserTripMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserTripMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserTripMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserTrip entity.
// If the UserTrip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTripMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserTripMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the Itinerary entity.
func (m *UserTripMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[usertrip.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the Itinerary entity was cleared.
func (m *UserTripMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *UserTripMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *UserTripMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the UserTripMutation builder.
func (m *UserTripMutation) Where(ps ...predicate.UserTrip) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserTripMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserTripMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserTrip, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserTripMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserTripMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserTrip).
func (m *UserTripMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserTripMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, usertrip.FieldUserID)
	}
	if m.itinerary != nil {
		fields = append(fields, usertrip.FieldItineraryID)
	}
	if m.created_at != nil {
		fields = append(fields, usertrip.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserTripMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usertrip.FieldUserID:
		return m.UserID()
	case usertrip.FieldItineraryID:
		return m.ItineraryID()
	case usertrip.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserTripMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usertrip.FieldUserID:
		return m.OldUserID(ctx)
	case usertrip.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case usertrip.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserTrip field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTripMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usertrip.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usertrip.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case usertrip.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserTrip field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserTripMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserTripMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTripMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserTrip numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserTripMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserTripMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserTripMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserTrip nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserTripMutation) ResetField(name string) error {
	switch name {
	case usertrip.FieldUserID:
		m.ResetUserID()
		return nil
	case usertrip.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case usertrip.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserTrip field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserTripMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, usertrip.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserTripMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usertrip.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserTripMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserTripMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserTripMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, usertrip.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserTripMutation) EdgeCleared(name string) bool {
	switch name {
	case usertrip.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserTripMutation) ClearEdge(name string) error {
	switch name {
	case usertrip.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown UserTrip unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserTripMutation) ResetEdge(name string) error {
	switch name {
	case usertrip.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown UserTrip edge %s", name)
}
