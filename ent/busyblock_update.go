// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/busyblock"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// BusyBlockUpdate is the builder for updating BusyBlock entities.
type BusyBlockUpdate struct {
	config
	hooks    []Hook
	mutation *BusyBlockMutation
}

// Where appends a list predicates to the BusyBlockUpdate builder.
func (_u *BusyBlockUpdate) Where(ps ...predicate.BusyBlock) *BusyBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockID sets the "block_id" field.
func (_u *BusyBlockUpdate) SetBlockID(v string) *BusyBlockUpdate {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *BusyBlockUpdate) SetNillableBlockID(v *string) *BusyBlockUpdate {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *BusyBlockUpdate) SetLabel(v string) *BusyBlockUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *BusyBlockUpdate) SetNillableLabel(v *string) *BusyBlockUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *BusyBlockUpdate) ClearLabel() *BusyBlockUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *BusyBlockUpdate) SetStartAt(v time.Time) *BusyBlockUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *BusyBlockUpdate) SetNillableStartAt(v *time.Time) *BusyBlockUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *BusyBlockUpdate) SetEndAt(v time.Time) *BusyBlockUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *BusyBlockUpdate) SetNillableEndAt(v *time.Time) *BusyBlockUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BusyBlockUpdate) SetSource(v string) *BusyBlockUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BusyBlockUpdate) SetNillableSource(v *string) *BusyBlockUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the BusyBlockMutation object of the builder.
func (_u *BusyBlockUpdate) Mutation() *BusyBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusyBlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusyBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusyBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusyBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusyBlockUpdate) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := busyblock.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BusyBlock.block_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BusyBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(busyblock.Table, busyblock.Columns, sqlgraph.NewFieldSpec(busyblock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(busyblock.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(busyblock.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(busyblock.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(busyblock.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(busyblock.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(busyblock.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busyblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusyBlockUpdateOne is the builder for updating a single BusyBlock entity.
type BusyBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusyBlockMutation
}

// SetBlockID sets the "block_id" field.
func (_u *BusyBlockUpdateOne) SetBlockID(v string) *BusyBlockUpdateOne {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *BusyBlockUpdateOne) SetNillableBlockID(v *string) *BusyBlockUpdateOne {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *BusyBlockUpdateOne) SetLabel(v string) *BusyBlockUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *BusyBlockUpdateOne) SetNillableLabel(v *string) *BusyBlockUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *BusyBlockUpdateOne) ClearLabel() *BusyBlockUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *BusyBlockUpdateOne) SetStartAt(v time.Time) *BusyBlockUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *BusyBlockUpdateOne) SetNillableStartAt(v *time.Time) *BusyBlockUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *BusyBlockUpdateOne) SetEndAt(v time.Time) *BusyBlockUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *BusyBlockUpdateOne) SetNillableEndAt(v *time.Time) *BusyBlockUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BusyBlockUpdateOne) SetSource(v string) *BusyBlockUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BusyBlockUpdateOne) SetNillableSource(v *string) *BusyBlockUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the BusyBlockMutation object of the builder.
func (_u *BusyBlockUpdateOne) Mutation() *BusyBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusyBlockUpdate builder.
func (_u *BusyBlockUpdateOne) Where(ps ...predicate.BusyBlock) *BusyBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusyBlockUpdateOne) Select(field string, fields ...string) *BusyBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusyBlock entity.
func (_u *BusyBlockUpdateOne) Save(ctx context.Context) (*BusyBlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusyBlockUpdateOne) SaveX(ctx context.Context) *BusyBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusyBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusyBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusyBlockUpdateOne) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := busyblock.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BusyBlock.block_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BusyBlockUpdateOne) sqlSave(ctx context.Context) (_node *BusyBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(busyblock.Table, busyblock.Columns, sqlgraph.NewFieldSpec(busyblock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusyBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, busyblock.FieldID)
		for _, f := range fields {
			if !busyblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != busyblock.FieldID {
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
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(busyblock.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(busyblock.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(busyblock.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(busyblock.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(busyblock.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(busyblock.FieldSource, field.TypeString, value)
	}
	_node = &BusyBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busyblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
