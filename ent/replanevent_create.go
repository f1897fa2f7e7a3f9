// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/replanevent"
)

// ReplanEventCreate is the builder for creating a ReplanEvent entity.
type ReplanEventCreate struct {
	config
	mutation *ReplanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReplanEventCreate) SetSequence(v int64) *ReplanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReplanEventCreate) SetTimestamp(v time.Time) *ReplanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReplanEventCreate) SetNillableTimestamp(v *time.Time) *ReplanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ReplanEventCreate) SetTrigger(v string) *ReplanEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetTasksTouched sets the "tasks_touched" field.
func (_c *ReplanEventCreate) SetTasksTouched(v int) *ReplanEventCreate {
	_c.mutation.SetTasksTouched(v)
	return _c
}

// SetNillableTasksTouched sets the "tasks_touched" field if the given value is not nil.
func (_c *ReplanEventCreate) SetNillableTasksTouched(v *int) *ReplanEventCreate {
	if v != nil {
		_c.SetTasksTouched(*v)
	}
	return _c
}

// SetNotices sets the "notices" field.
func (_c *ReplanEventCreate) SetNotices(v []string) *ReplanEventCreate {
	_c.mutation.SetNotices(v)
	return _c
}

// Mutation returns the ReplanEventMutation object of the builder.
func (_c *ReplanEventCreate) Mutation() *ReplanEventMutation {
	return _c.mutation
}

// Save creates the ReplanEvent in the database.
func (_c *ReplanEventCreate) Save(ctx context.Context) (*ReplanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReplanEventCreate) SaveX(ctx context.Context) *ReplanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReplanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := replanevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TasksTouched(); !ok {
		v := replanevent.DefaultTasksTouched
		_c.mutation.SetTasksTouched(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReplanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReplanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReplanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "ReplanEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := replanevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ReplanEvent.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TasksTouched(); !ok {
		return &ValidationError{Name: "tasks_touched", err: errors.New(`ent: missing required field "ReplanEvent.tasks_touched"`)}
	}
	return nil
}

func (_c *ReplanEventCreate) sqlSave(ctx context.Context) (*ReplanEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReplanEventCreate) createSpec() (*ReplanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReplanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(replanevent.Table, sqlgraph.NewFieldSpec(replanevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(replanevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(replanevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(replanevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.TasksTouched(); ok {
		_spec.SetField(replanevent.FieldTasksTouched, field.TypeInt, value)
		_node.TasksTouched = value
	}
	if value, ok := _c.mutation.Notices(); ok {
		_spec.SetField(replanevent.FieldNotices, field.TypeJSON, value)
		_node.Notices = value
	}
	return _node, _spec
}

// ReplanEventCreateBulk is the builder for creating many ReplanEvent entities in bulk.
type ReplanEventCreateBulk struct {
	config
	err      error
	builders []*ReplanEventCreate
}

// Save creates the ReplanEvent entities in the database.
func (_c *ReplanEventCreateBulk) Save(ctx context.Context) ([]*ReplanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReplanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReplanEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ReplanEventCreateBulk) SaveX(ctx context.Context) []*ReplanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
