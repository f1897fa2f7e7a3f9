// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *MasteryRecordCreate) SetTopicID(v string) *MasteryRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryRecordCreate) SetScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MasteryRecordCreate) SetConfidence(v float64) *MasteryRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetTrend sets the "trend" field.
func (_c *MasteryRecordCreate) SetTrend(v string) *MasteryRecordCreate {
	_c.mutation.SetTrend(v)
	return _c
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableTrend(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetTrend(*v)
	}
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *MasteryRecordCreate) SetPracticeCount(v int) *MasteryRecordCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillablePracticeCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetQuizCount sets the "quiz_count" field.
func (_c *MasteryRecordCreate) SetQuizCount(v int) *MasteryRecordCreate {
	_c.mutation.SetQuizCount(v)
	return _c
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableQuizCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetQuizCount(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *MasteryRecordCreate) SetLastPracticed(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticed(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *MasteryRecordCreate) SetNextReview(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableNextReview(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *MasteryRecordCreate) SetIntervalDays(v int) *MasteryRecordCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableIntervalDays(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEasiness sets the "easiness" field.
func (_c *MasteryRecordCreate) SetEasiness(v float64) *MasteryRecordCreate {
	_c.mutation.SetEasiness(v)
	return _c
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableEasiness(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetEasiness(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Trend(); !ok {
		v := masteryrecord.DefaultTrend
		_c.mutation.SetTrend(v)
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := masteryrecord.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		v := masteryrecord.DefaultQuizCount
		_c.mutation.SetQuizCount(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := masteryrecord.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		v := masteryrecord.DefaultEasiness
		_c.mutation.SetEasiness(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "MasteryRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := masteryrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryRecord.score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MasteryRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Trend(); !ok {
		return &ValidationError{Name: "trend", err: errors.New(`ent: missing required field "MasteryRecord.trend"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "MasteryRecord.practice_count"`)}
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		return &ValidationError{Name: "quiz_count", err: errors.New(`ent: missing required field "MasteryRecord.quiz_count"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "MasteryRecord.interval_days"`)}
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		return &ValidationError{Name: "easiness", err: errors.New(`ent: missing required field "MasteryRecord.easiness"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(masteryrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(masteryrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Trend(); ok {
		_spec.SetField(masteryrecord.FieldTrend, field.TypeString, value)
		_node.Trend = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.QuizCount(); ok {
		_spec.SetField(masteryrecord.FieldQuizCount, field.TypeInt, value)
		_node.QuizCount = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(masteryrecord.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Easiness(); ok {
		_spec.SetField(masteryrecord.FieldEasiness, field.TypeFloat64, value)
		_node.Easiness = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
