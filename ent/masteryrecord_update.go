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
	"github.com/studyplanhq/studyplan/ent/masteryrecord"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryRecordUpdate) SetTopicID(v string) *MasteryRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTopicID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdate) SetScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdate) AddScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryRecordUpdate) SetConfidence(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConfidence(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryRecordUpdate) AddConfidence(v float64) *MasteryRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTrend sets the "trend" field.
func (_u *MasteryRecordUpdate) SetTrend(v string) *MasteryRecordUpdate {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableTrend(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdate) SetPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillablePracticeCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdate) AddPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *MasteryRecordUpdate) SetQuizCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableQuizCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *MasteryRecordUpdate) AddQuizCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdate) SetLastPracticed(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *MasteryRecordUpdate) ClearLastPracticed() *MasteryRecordUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *MasteryRecordUpdate) SetNextReview(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReview(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *MasteryRecordUpdate) ClearNextReview() *MasteryRecordUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MasteryRecordUpdate) SetIntervalDays(v int) *MasteryRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableIntervalDays(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MasteryRecordUpdate) AddIntervalDays(v int) *MasteryRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *MasteryRecordUpdate) SetEasiness(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableEasiness(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *MasteryRecordUpdate) AddEasiness(v float64) *MasteryRecordUpdate {
	_u.mutation.AddEasiness(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masteryrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masteryrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masteryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(masteryrecord.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(masteryrecord.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(masteryrecord.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(masteryrecord.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(masteryrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(masteryrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(masteryrecord.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(masteryrecord.FieldEasiness, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryRecordUpdateOne) SetTopicID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTopicID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdateOne) SetScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdateOne) AddScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryRecordUpdateOne) SetConfidence(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConfidence(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryRecordUpdateOne) AddConfidence(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTrend sets the "trend" field.
func (_u *MasteryRecordUpdateOne) SetTrend(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableTrend(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdateOne) SetPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillablePracticeCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdateOne) AddPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *MasteryRecordUpdateOne) SetQuizCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableQuizCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *MasteryRecordUpdateOne) AddQuizCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticed(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticed(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *MasteryRecordUpdateOne) ClearLastPracticed() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *MasteryRecordUpdateOne) SetNextReview(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReview(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *MasteryRecordUpdateOne) ClearNextReview() *MasteryRecordUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MasteryRecordUpdateOne) SetIntervalDays(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableIntervalDays(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MasteryRecordUpdateOne) AddIntervalDays(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *MasteryRecordUpdateOne) SetEasiness(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableEasiness(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *MasteryRecordUpdateOne) AddEasiness(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddEasiness(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masteryrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masteryrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masteryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(masteryrecord.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(masteryrecord.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(masteryrecord.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(masteryrecord.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(masteryrecord.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(masteryrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(masteryrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(masteryrecord.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(masteryrecord.FieldEasiness, field.TypeFloat64, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
