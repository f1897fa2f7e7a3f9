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
	"github.com/studyplanhq/studyplan/ent/predicate"
	"github.com/studyplanhq/studyplan/ent/studytask"
)

// StudyTaskUpdate is the builder for updating StudyTask entities.
type StudyTaskUpdate struct {
	config
	hooks    []Hook
	mutation *StudyTaskMutation
}

// Where appends a list predicates to the StudyTaskUpdate builder.
func (_u *StudyTaskUpdate) Where(ps ...predicate.StudyTask) *StudyTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *StudyTaskUpdate) SetTaskID(v string) *StudyTaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTaskID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *StudyTaskUpdate) SetTopicID(v string) *StudyTaskUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTopicID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *StudyTaskUpdate) SetTopicName(v string) *StudyTaskUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTopicName(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *StudyTaskUpdate) SetCourseID(v string) *StudyTaskUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableCourseID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *StudyTaskUpdate) SetAssessmentID(v string) *StudyTaskUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableAssessmentID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (_u *StudyTaskUpdate) ClearAssessmentID() *StudyTaskUpdate {
	_u.mutation.ClearAssessmentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyTaskUpdate) SetTitle(v string) *StudyTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTitle(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *StudyTaskUpdate) SetTaskType(v string) *StudyTaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTaskType(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudyTaskUpdate) SetDifficulty(v string) *StudyTaskUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableDifficulty(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *StudyTaskUpdate) SetDurationMin(v int) *StudyTaskUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableDurationMin(v *int) *StudyTaskUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *StudyTaskUpdate) AddDurationMin(v int) *StudyTaskUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StudyTaskUpdate) SetPriority(v float64) *StudyTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillablePriority(v *float64) *StudyTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StudyTaskUpdate) AddPriority(v float64) *StudyTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *StudyTaskUpdate) SetStartAt(v time.Time) *StudyTaskUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableStartAt(v *time.Time) *StudyTaskUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *StudyTaskUpdate) ClearStartAt() *StudyTaskUpdate {
	_u.mutation.ClearStartAt()
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *StudyTaskUpdate) SetEndAt(v time.Time) *StudyTaskUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableEndAt(v *time.Time) *StudyTaskUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// ClearEndAt clears the value of the "end_at" field.
func (_u *StudyTaskUpdate) ClearEndAt() *StudyTaskUpdate {
	_u.mutation.ClearEndAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyTaskUpdate) SetStatus(v string) *StudyTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableStatus(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyTaskUpdate) SetUpdatedAt(v time.Time) *StudyTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_u *StudyTaskUpdate) Mutation() *StudyTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studytask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := studytask.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := studytask.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := studytask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studytask.Table, studytask.Columns, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(studytask.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(studytask.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(studytask.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(studytask.FieldAssessmentID, field.TypeString, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(studytask.FieldAssessmentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studytask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(studytask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studytask.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(studytask.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(studytask.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(studytask.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(studytask.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(studytask.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(studytask.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(studytask.FieldEndAt, field.TypeTime, value)
	}
	if _u.mutation.EndAtCleared() {
		_spec.ClearField(studytask.FieldEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studytask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studytask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studytask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyTaskUpdateOne is the builder for updating a single StudyTask entity.
type StudyTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyTaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *StudyTaskUpdateOne) SetTaskID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTaskID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *StudyTaskUpdateOne) SetTopicID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTopicID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *StudyTaskUpdateOne) SetTopicName(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTopicName(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *StudyTaskUpdateOne) SetCourseID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableCourseID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *StudyTaskUpdateOne) SetAssessmentID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableAssessmentID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (_u *StudyTaskUpdateOne) ClearAssessmentID() *StudyTaskUpdateOne {
	_u.mutation.ClearAssessmentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudyTaskUpdateOne) SetTitle(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTitle(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *StudyTaskUpdateOne) SetTaskType(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTaskType(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudyTaskUpdateOne) SetDifficulty(v string) *StudyTaskUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableDifficulty(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *StudyTaskUpdateOne) SetDurationMin(v int) *StudyTaskUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableDurationMin(v *int) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *StudyTaskUpdateOne) AddDurationMin(v int) *StudyTaskUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StudyTaskUpdateOne) SetPriority(v float64) *StudyTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillablePriority(v *float64) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StudyTaskUpdateOne) AddPriority(v float64) *StudyTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *StudyTaskUpdateOne) SetStartAt(v time.Time) *StudyTaskUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableStartAt(v *time.Time) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *StudyTaskUpdateOne) ClearStartAt() *StudyTaskUpdateOne {
	_u.mutation.ClearStartAt()
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *StudyTaskUpdateOne) SetEndAt(v time.Time) *StudyTaskUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableEndAt(v *time.Time) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// ClearEndAt clears the value of the "end_at" field.
func (_u *StudyTaskUpdateOne) ClearEndAt() *StudyTaskUpdateOne {
	_u.mutation.ClearEndAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyTaskUpdateOne) SetStatus(v string) *StudyTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableStatus(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyTaskUpdateOne) SetUpdatedAt(v time.Time) *StudyTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_u *StudyTaskUpdateOne) Mutation() *StudyTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyTaskUpdate builder.
func (_u *StudyTaskUpdateOne) Where(ps ...predicate.StudyTask) *StudyTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyTaskUpdateOne) Select(field string, fields ...string) *StudyTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyTask entity.
func (_u *StudyTaskUpdateOne) Save(ctx context.Context) (*StudyTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyTaskUpdateOne) SaveX(ctx context.Context) *StudyTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studytask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := studytask.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := studytask.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := studytask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyTaskUpdateOne) sqlSave(ctx context.Context) (_node *StudyTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studytask.Table, studytask.Columns, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studytask.FieldID)
		for _, f := range fields {
			if !studytask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studytask.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(studytask.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(studytask.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(studytask.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(studytask.FieldAssessmentID, field.TypeString, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(studytask.FieldAssessmentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studytask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(studytask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studytask.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(studytask.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(studytask.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(studytask.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(studytask.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(studytask.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(studytask.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(studytask.FieldEndAt, field.TypeTime, value)
	}
	if _u.mutation.EndAtCleared() {
		_spec.ClearField(studytask.FieldEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studytask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studytask.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudyTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studytask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
