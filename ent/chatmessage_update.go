// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/ent/predicate"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdate) SetRole(v chatmessage.Role) *ChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdate) SetContent(v string) *ChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatMessageUpdate) SetIntent(v string) *ChatMessageUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableIntent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *ChatMessageUpdate) ClearIntent() *ChatMessageUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetChangeSet sets the "change_set" field.
func (_u *ChatMessageUpdate) SetChangeSet(v models.ChangeSet) *ChatMessageUpdate {
	_u.mutation.SetChangeSet(v)
	return _u
}

// SetNillableChangeSet sets the "change_set" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableChangeSet(v *models.ChangeSet) *ChatMessageUpdate {
	if v != nil {
		_u.SetChangeSet(*v)
	}
	return _u
}

// ClearChangeSet clears the value of the "change_set" field.
func (_u *ChatMessageUpdate) ClearChangeSet() *ChatMessageUpdate {
	_u.mutation.ClearChangeSet()
	return _u
}

// SetAppliedVersion sets the "applied_version" field.
func (_u *ChatMessageUpdate) SetAppliedVersion(v int) *ChatMessageUpdate {
	_u.mutation.ResetAppliedVersion()
	_u.mutation.SetAppliedVersion(v)
	return _u
}

// SetNillableAppliedVersion sets the "applied_version" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableAppliedVersion(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetAppliedVersion(*v)
	}
	return _u
}

// AddAppliedVersion adds value to the "applied_version" field.
func (_u *ChatMessageUpdate) AddAppliedVersion(v int) *ChatMessageUpdate {
	_u.mutation.AddAppliedVersion(v)
	return _u
}

// ClearAppliedVersion clears the value of the "applied_version" field.
func (_u *ChatMessageUpdate) ClearAppliedVersion() *ChatMessageUpdate {
	_u.mutation.ClearAppliedVersion()
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.ItineraryCleared() && len(_u.mutation.ItineraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.itinerary"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatmessage.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(chatmessage.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.ChangeSet(); ok {
		_spec.SetField(chatmessage.FieldChangeSet, field.TypeJSON, value)
	}
	if _u.mutation.ChangeSetCleared() {
		_spec.ClearField(chatmessage.FieldChangeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliedVersion(); ok {
		_spec.SetField(chatmessage.FieldAppliedVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppliedVersion(); ok {
		_spec.AddField(chatmessage.FieldAppliedVersion, field.TypeInt, value)
	}
	if _u.mutation.AppliedVersionCleared() {
		_spec.ClearField(chatmessage.FieldAppliedVersion, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdateOne) SetRole(v chatmessage.Role) *ChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRole(v *chatmessage.Role) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdateOne) SetContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatMessageUpdateOne) SetIntent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableIntent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *ChatMessageUpdateOne) ClearIntent() *ChatMessageUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetChangeSet sets the "change_set" field.
func (_u *ChatMessageUpdateOne) SetChangeSet(v models.ChangeSet) *ChatMessageUpdateOne {
	_u.mutation.SetChangeSet(v)
	return _u
}

// SetNillableChangeSet sets the "change_set" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableChangeSet(v *models.ChangeSet) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetChangeSet(*v)
	}
	return _u
}

// ClearChangeSet clears the value of the "change_set" field.
func (_u *ChatMessageUpdateOne) ClearChangeSet() *ChatMessageUpdateOne {
	_u.mutation.ClearChangeSet()
	return _u
}

// SetAppliedVersion sets the "applied_version" field.
func (_u *ChatMessageUpdateOne) SetAppliedVersion(v int) *ChatMessageUpdateOne {
	_u.mutation.ResetAppliedVersion()
	_u.mutation.SetAppliedVersion(v)
	return _u
}

// SetNillableAppliedVersion sets the "applied_version" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableAppliedVersion(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetAppliedVersion(*v)
	}
	return _u
}

// AddAppliedVersion adds value to the "applied_version" field.
func (_u *ChatMessageUpdateOne) AddAppliedVersion(v int) *ChatMessageUpdateOne {
	_u.mutation.AddAppliedVersion(v)
	return _u
}

// ClearAppliedVersion clears the value of the "applied_version" field.
func (_u *ChatMessageUpdateOne) ClearAppliedVersion() *ChatMessageUpdateOne {
	_u.mutation.ClearAppliedVersion()
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.ItineraryCleared() && len(_u.mutation.ItineraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.itinerary"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatmessage.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(chatmessage.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.ChangeSet(); ok {
		_spec.SetField(chatmessage.FieldChangeSet, field.TypeJSON, value)
	}
	if _u.mutation.ChangeSetCleared() {
		_spec.ClearField(chatmessage.FieldChangeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliedVersion(); ok {
		_spec.SetField(chatmessage.FieldAppliedVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppliedVersion(); ok {
		_spec.AddField(chatmessage.FieldAppliedVersion, field.TypeInt, value)
	}
	if _u.mutation.AppliedVersionCleared() {
		_spec.ClearField(chatmessage.FieldAppliedVersion, field.TypeInt)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
