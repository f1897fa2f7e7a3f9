// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/busyblock"
)

// BusyBlockCreate is the builder for creating a BusyBlock entity.
type BusyBlockCreate struct {
	config
	mutation *BusyBlockMutation
	hooks    []Hook
}

// SetBlockID sets the "block_id" field.
func (_c *BusyBlockCreate) SetBlockID(v string) *BusyBlockCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *BusyBlockCreate) SetLabel(v string) *BusyBlockCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *BusyBlockCreate) SetNillableLabel(v *string) *BusyBlockCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *BusyBlockCreate) SetStartAt(v time.Time) *BusyBlockCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetEndAt sets the "end_at" field.
func (_c *BusyBlockCreate) SetEndAt(v time.Time) *BusyBlockCreate {
	_c.mutation.SetEndAt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *BusyBlockCreate) SetSource(v string) *BusyBlockCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *BusyBlockCreate) SetNillableSource(v *string) *BusyBlockCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusyBlockCreate) SetCreatedAt(v time.Time) *BusyBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusyBlockCreate) SetNillableCreatedAt(v *time.Time) *BusyBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BusyBlockMutation object of the builder.
func (_c *BusyBlockCreate) Mutation() *BusyBlockMutation {
	return _c.mutation
}

// Save creates the BusyBlock in the database.
func (_c *BusyBlockCreate) Save(ctx context.Context) (*BusyBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusyBlockCreate) SaveX(ctx context.Context) *BusyBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusyBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusyBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusyBlockCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := busyblock.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := busyblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusyBlockCreate) check() error {
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`ent: missing required field "BusyBlock.block_id"`)}
	}
	if v, ok := _c.mutation.BlockID(); ok {
		if err := busyblock.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BusyBlock.block_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartAt(); !ok {
		return &ValidationError{Name: "start_at", err: errors.New(`ent: missing required field "BusyBlock.start_at"`)}
	}
	if _, ok := _c.mutation.EndAt(); !ok {
		return &ValidationError{Name: "end_at", err: errors.New(`ent: missing required field "BusyBlock.end_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "BusyBlock.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusyBlock.created_at"`)}
	}
	return nil
}

func (_c *BusyBlockCreate) sqlSave(ctx context.Context) (*BusyBlock, error) {
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

func (_c *BusyBlockCreate) createSpec() (*BusyBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &BusyBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(busyblock.Table, sqlgraph.NewFieldSpec(busyblock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BlockID(); ok {
		_spec.SetField(busyblock.FieldBlockID, field.TypeString, value)
		_node.BlockID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(busyblock.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(busyblock.FieldStartAt, field.TypeTime, value)
		_node.StartAt = value
	}
	if value, ok := _c.mutation.EndAt(); ok {
		_spec.SetField(busyblock.FieldEndAt, field.TypeTime, value)
		_node.EndAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(busyblock.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(busyblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BusyBlockCreateBulk is the builder for creating many BusyBlock entities in bulk.
type BusyBlockCreateBulk struct {
	config
	err      error
	builders []*BusyBlockCreate
}

// Save creates the BusyBlock entities in the database.
func (_c *BusyBlockCreateBulk) Save(ctx context.Context) ([]*BusyBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusyBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusyBlockMutation)
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
func (_c *BusyBlockCreateBulk) SaveX(ctx context.Context) []*BusyBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusyBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusyBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
