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
	"github.com/studyplanhq/studyplan/ent/predicate"
	"github.com/studyplanhq/studyplan/ent/replanevent"
)

// ReplanEventUpdate is the builder for updating ReplanEvent entities.
type ReplanEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReplanEventMutation
}

// Where appends a list predicates to the ReplanEventUpdate builder.
func (_u *ReplanEventUpdate) Where(ps ...predicate.ReplanEvent) *ReplanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ReplanEventUpdate) SetTrigger(v string) *ReplanEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ReplanEventUpdate) SetNillableTrigger(v *string) *ReplanEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetTasksTouched sets the "tasks_touched" field.
func (_u *ReplanEventUpdate) SetTasksTouched(v int) *ReplanEventUpdate {
	_u.mutation.ResetTasksTouched()
	_u.mutation.SetTasksTouched(v)
	return _u
}

// SetNillableTasksTouched sets the "tasks_touched" field if the given value is not nil.
func (_u *ReplanEventUpdate) SetNillableTasksTouched(v *int) *ReplanEventUpdate {
	if v != nil {
		_u.SetTasksTouched(*v)
	}
	return _u
}

// AddTasksTouched adds value to the "tasks_touched" field.
func (_u *ReplanEventUpdate) AddTasksTouched(v int) *ReplanEventUpdate {
	_u.mutation.AddTasksTouched(v)
	return _u
}

// SetNotices sets the "notices" field.
func (_u *ReplanEventUpdate) SetNotices(v []string) *ReplanEventUpdate {
	_u.mutation.SetNotices(v)
	return _u
}

// AppendNotices appends value to the "notices" field.
func (_u *ReplanEventUpdate) AppendNotices(v []string) *ReplanEventUpdate {
	_u.mutation.AppendNotices(v)
	return _u
}

// ClearNotices clears the value of the "notices" field.
func (_u *ReplanEventUpdate) ClearNotices() *ReplanEventUpdate {
	_u.mutation.ClearNotices()
	return _u
}

// Mutation returns the ReplanEventMutation object of the builder.
func (_u *ReplanEventUpdate) Mutation() *ReplanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReplanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReplanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplanEventUpdate) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := replanevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ReplanEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ReplanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(replanevent.Table, replanevent.Columns, sqlgraph.NewFieldSpec(replanevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(replanevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.TasksTouched(); ok {
		_spec.SetField(replanevent.FieldTasksTouched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksTouched(); ok {
		_spec.AddField(replanevent.FieldTasksTouched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notices(); ok {
		_spec.SetField(replanevent.FieldNotices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, replanevent.FieldNotices, value)
		})
	}
	if _u.mutation.NoticesCleared() {
		_spec.ClearField(replanevent.FieldNotices, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{replanevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReplanEventUpdateOne is the builder for updating a single ReplanEvent entity.
type ReplanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReplanEventMutation
}

// SetTrigger sets the "trigger" field.
func (_u *ReplanEventUpdateOne) SetTrigger(v string) *ReplanEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ReplanEventUpdateOne) SetNillableTrigger(v *string) *ReplanEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetTasksTouched sets the "tasks_touched" field.
func (_u *ReplanEventUpdateOne) SetTasksTouched(v int) *ReplanEventUpdateOne {
	_u.mutation.ResetTasksTouched()
	_u.mutation.SetTasksTouched(v)
	return _u
}

// SetNillableTasksTouched sets the "tasks_touched" field if the given value is not nil.
func (_u *ReplanEventUpdateOne) SetNillableTasksTouched(v *int) *ReplanEventUpdateOne {
	if v != nil {
		_u.SetTasksTouched(*v)
	}
	return _u
}

// AddTasksTouched adds value to the "tasks_touched" field.
func (_u *ReplanEventUpdateOne) AddTasksTouched(v int) *ReplanEventUpdateOne {
	_u.mutation.AddTasksTouched(v)
	return _u
}

// SetNotices sets the "notices" field.
func (_u *ReplanEventUpdateOne) SetNotices(v []string) *ReplanEventUpdateOne {
	_u.mutation.SetNotices(v)
	return _u
}

// AppendNotices appends value to the "notices" field.
func (_u *ReplanEventUpdateOne) AppendNotices(v []string) *ReplanEventUpdateOne {
	_u.mutation.AppendNotices(v)
	return _u
}

// ClearNotices clears the value of the "notices" field.
func (_u *ReplanEventUpdateOne) ClearNotices() *ReplanEventUpdateOne {
	_u.mutation.ClearNotices()
	return _u
}

// Mutation returns the ReplanEventMutation object of the builder.
func (_u *ReplanEventUpdateOne) Mutation() *ReplanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReplanEventUpdate builder.
func (_u *ReplanEventUpdateOne) Where(ps ...predicate.ReplanEvent) *ReplanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReplanEventUpdateOne) Select(field string, fields ...string) *ReplanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReplanEvent entity.
func (_u *ReplanEventUpdateOne) Save(ctx context.Context) (*ReplanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplanEventUpdateOne) SaveX(ctx context.Context) *ReplanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReplanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplanEventUpdateOne) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := replanevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ReplanEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ReplanEventUpdateOne) sqlSave(ctx context.Context) (_node *ReplanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(replanevent.Table, replanevent.Columns, sqlgraph.NewFieldSpec(replanevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReplanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, replanevent.FieldID)
		for _, f := range fields {
			if !replanevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != replanevent.FieldID {
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
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(replanevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.TasksTouched(); ok {
		_spec.SetField(replanevent.FieldTasksTouched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksTouched(); ok {
		_spec.AddField(replanevent.FieldTasksTouched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notices(); ok {
		_spec.SetField(replanevent.FieldNotices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, replanevent.FieldNotices, value)
		})
	}
	if _u.mutation.NoticesCleared() {
		_spec.ClearField(replanevent.FieldNotices, field.TypeJSON)
	}
	_node = &ReplanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{replanevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
