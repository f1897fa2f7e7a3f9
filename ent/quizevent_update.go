// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/predicate"
	"github.com/studyplanhq/studyplan/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizEventUpdate) SetTopicID(v string) *QuizEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTopicID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v float64) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *float64) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v float64) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizEventUpdate) SetQuestionCount(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionCount(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizEventUpdate) AddQuestionCount(v int) *QuizEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetIsExam sets the "is_exam" field.
func (_u *QuizEventUpdate) SetIsExam(v bool) *QuizEventUpdate {
	_u.mutation.SetIsExam(v)
	return _u
}

// SetNillableIsExam sets the "is_exam" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableIsExam(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetIsExam(*v)
	}
	return _u
}

// SetAlpha sets the "alpha" field.
func (_u *QuizEventUpdate) SetAlpha(v float64) *QuizEventUpdate {
	_u.mutation.ResetAlpha()
	_u.mutation.SetAlpha(v)
	return _u
}

// SetNillableAlpha sets the "alpha" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAlpha(v *float64) *QuizEventUpdate {
	if v != nil {
		_u.SetAlpha(*v)
	}
	return _u
}

// AddAlpha adds value to the "alpha" field.
func (_u *QuizEventUpdate) AddAlpha(v float64) *QuizEventUpdate {
	_u.mutation.AddAlpha(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExam(); ok {
		_spec.SetField(quizevent.FieldIsExam, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Alpha(); ok {
		_spec.SetField(quizevent.FieldAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlpha(); ok {
		_spec.AddField(quizevent.FieldAlpha, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizEventUpdateOne) SetTopicID(v string) *QuizEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTopicID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v float64) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *float64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v float64) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizEventUpdateOne) SetQuestionCount(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionCount(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizEventUpdateOne) AddQuestionCount(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetIsExam sets the "is_exam" field.
func (_u *QuizEventUpdateOne) SetIsExam(v bool) *QuizEventUpdateOne {
	_u.mutation.SetIsExam(v)
	return _u
}

// SetNillableIsExam sets the "is_exam" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableIsExam(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetIsExam(*v)
	}
	return _u
}

// SetAlpha sets the "alpha" field.
func (_u *QuizEventUpdateOne) SetAlpha(v float64) *QuizEventUpdateOne {
	_u.mutation.ResetAlpha()
	_u.mutation.SetAlpha(v)
	return _u
}

// SetNillableAlpha sets the "alpha" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAlpha(v *float64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAlpha(*v)
	}
	return _u
}

// AddAlpha adds value to the "alpha" field.
func (_u *QuizEventUpdateOne) AddAlpha(v float64) *QuizEventUpdateOne {
	_u.mutation.AddAlpha(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
		_spec.SetField(quizevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExam(); ok {
		_spec.SetField(quizevent.FieldIsExam, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Alpha(); ok {
		_spec.SetField(quizevent.FieldAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlpha(); ok {
		_spec.AddField(quizevent.FieldAlpha, field.TypeFloat64, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
