// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wanderplan/wanderplan/ent/predicate"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// RevisionUpdate is the builder for updating Revision entities.
type RevisionUpdate struct {
	config
	hooks    []Hook
	mutation *RevisionMutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdate) Where(ps ...predicate.Revision) *RevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *RevisionUpdate) SetSnapshot(v []models.Day) *RevisionUpdate {
	_u.mutation.SetSnapshot(v)
	return _u
}

// AppendSnapshot appends value to the "snapshot" field.
func (_u *RevisionUpdate) AppendSnapshot(v []models.Day) *RevisionUpdate {
	_u.mutation.AppendSnapshot(v)
	return _u
}

// SetChangeSet sets the "change_set" field.
func (_u *RevisionUpdate) SetChangeSet(v models.ChangeSet) *RevisionUpdate {
	_u.mutation.SetChangeSet(v)
	return _u
}

// SetNillableChangeSet sets the "change_set" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableChangeSet(v *models.ChangeSet) *RevisionUpdate {
	if v != nil {
		_u.SetChangeSet(*v)
	}
	return _u
}

// ClearChangeSet clears the value of the "change_set" field.
func (_u *RevisionUpdate) ClearChangeSet() *RevisionUpdate {
	_u.mutation.ClearChangeSet()
	return _u
}

// SetReason sets the "reason" field.
func (_u *RevisionUpdate) SetReason(v string) *RevisionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableReason(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *RevisionUpdate) ClearReason() *RevisionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdate) Mutation() *RevisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdate) check() error {
	if _u.mutation.ItineraryCleared() && len(_u.mutation.ItineraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Revision.itinerary"`)
	}
	return nil
}

func (_u *RevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(revision.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, revision.FieldSnapshot, value)
		})
	}
	if value, ok := _u.mutation.ChangeSet(); ok {
		_spec.SetField(revision.FieldChangeSet, field.TypeJSON, value)
	}
	if _u.mutation.ChangeSetCleared() {
		_spec.ClearField(revision.FieldChangeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(revision.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(revision.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevisionUpdateOne is the builder for updating a single Revision entity.
type RevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevisionMutation
}

// SetSnapshot sets the "snapshot" field.
func (_u *RevisionUpdateOne) SetSnapshot(v []models.Day) *RevisionUpdateOne {
	_u.mutation.SetSnapshot(v)
	return _u
}

// AppendSnapshot appends value to the "snapshot" field.
func (_u *RevisionUpdateOne) AppendSnapshot(v []models.Day) *RevisionUpdateOne {
	_u.mutation.AppendSnapshot(v)
	return _u
}

// SetChangeSet sets the "change_set" field.
func (_u *RevisionUpdateOne) SetChangeSet(v models.ChangeSet) *RevisionUpdateOne {
	_u.mutation.SetChangeSet(v)
	return _u
}

// SetNillableChangeSet sets the "change_set" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableChangeSet(v *models.ChangeSet) *RevisionUpdateOne {
	if v != nil {
		_u.SetChangeSet(*v)
	}
	return _u
}

// ClearChangeSet clears the value of the "change_set" field.
func (_u *RevisionUpdateOne) ClearChangeSet() *RevisionUpdateOne {
	_u.mutation.ClearChangeSet()
	return _u
}

// SetReason sets the "reason" field.
func (_u *RevisionUpdateOne) SetReason(v string) *RevisionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableReason(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *RevisionUpdateOne) ClearReason() *RevisionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdateOne) Mutation() *RevisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdateOne) Where(ps ...predicate.Revision) *RevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevisionUpdateOne) Select(field string, fields ...string) *RevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Revision entity.
func (_u *RevisionUpdateOne) Save(ctx context.Context) (*Revision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdateOne) SaveX(ctx context.Context) *Revision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdateOne) check() error {
	if _u.mutation.ItineraryCleared() && len(_u.mutation.ItineraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Revision.itinerary"`)
	}
	return nil
}

func (_u *RevisionUpdateOne) sqlSave(ctx context.Context) (_node *Revision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Revision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revision.FieldID)
		for _, f := range fields {
			if !revision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revision.FieldID {
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
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(revision.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, revision.FieldSnapshot, value)
		})
	}
	if value, ok := _u.mutation.ChangeSet(); ok {
		_spec.SetField(revision.FieldChangeSet, field.TypeJSON, value)
	}
	if _u.mutation.ChangeSetCleared() {
		_spec.ClearField(revision.FieldChangeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(revision.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(revision.FieldReason, field.TypeString)
	}
	_node = &Revision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
