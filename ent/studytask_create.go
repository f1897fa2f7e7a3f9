// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/studytask"
)

// StudyTaskCreate is the builder for creating a StudyTask entity.
type StudyTaskCreate struct {
	config
	mutation *StudyTaskMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *StudyTaskCreate) SetTaskID(v string) *StudyTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *StudyTaskCreate) SetTopicID(v string) *StudyTaskCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *StudyTaskCreate) SetTopicName(v string) *StudyTaskCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableTopicName(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetTopicName(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *StudyTaskCreate) SetCourseID(v string) *StudyTaskCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *StudyTaskCreate) SetAssessmentID(v string) *StudyTaskCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableAssessmentID(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetAssessmentID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *StudyTaskCreate) SetTitle(v string) *StudyTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *StudyTaskCreate) SetTaskType(v string) *StudyTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableTaskType(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *StudyTaskCreate) SetDifficulty(v string) *StudyTaskCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableDifficulty(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *StudyTaskCreate) SetDurationMin(v int) *StudyTaskCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *StudyTaskCreate) SetPriority(v float64) *StudyTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *StudyTaskCreate) SetStartAt(v time.Time) *StudyTaskCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableStartAt(v *time.Time) *StudyTaskCreate {
	if v != nil {
		_c.SetStartAt(*v)
	}
	return _c
}

// SetEndAt sets the "end_at" field.
func (_c *StudyTaskCreate) SetEndAt(v time.Time) *StudyTaskCreate {
	_c.mutation.SetEndAt(v)
	return _c
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableEndAt(v *time.Time) *StudyTaskCreate {
	if v != nil {
		_c.SetEndAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyTaskCreate) SetStatus(v string) *StudyTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableStatus(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyTaskCreate) SetUpdatedAt(v time.Time) *StudyTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableUpdatedAt(v *time.Time) *StudyTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_c *StudyTaskCreate) Mutation() *StudyTaskMutation {
	return _c.mutation
}

// Save creates the StudyTask in the database.
func (_c *StudyTaskCreate) Save(ctx context.Context) (*StudyTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyTaskCreate) SaveX(ctx context.Context) *StudyTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyTaskCreate) defaults() {
	if _, ok := _c.mutation.TopicName(); !ok {
		v := studytask.DefaultTopicName
		_c.mutation.SetTopicName(v)
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		v := studytask.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := studytask.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := studytask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studytask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "StudyTask.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "StudyTask.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := studytask.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "StudyTask.topic_name"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "StudyTask.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := studytask.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StudyTask.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := studytask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StudyTask.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "StudyTask.task_type"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "StudyTask.difficulty"`)}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`ent: missing required field "StudyTask.duration_min"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "StudyTask.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudyTask.status"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudyTask.updated_at"`)}
	}
	return nil
}

func (_c *StudyTaskCreate) sqlSave(ctx context.Context) (*StudyTask, error) {
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

func (_c *StudyTaskCreate) createSpec() (*StudyTask, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studytask.Table, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(studytask.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(studytask.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(studytask.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(studytask.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(studytask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(studytask.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(studytask.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(studytask.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(studytask.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(studytask.FieldStartAt, field.TypeTime, value)
		_node.StartAt = value
	}
	if value, ok := _c.mutation.EndAt(); ok {
		_spec.SetField(studytask.FieldEndAt, field.TypeTime, value)
		_node.EndAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studytask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studytask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudyTaskCreateBulk is the builder for creating many StudyTask entities in bulk.
type StudyTaskCreateBulk struct {
	config
	err      error
	builders []*StudyTaskCreate
}

// Save creates the StudyTask entities in the database.
func (_c *StudyTaskCreateBulk) Save(ctx context.Context) ([]*StudyTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyTaskMutation)
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
func (_c *StudyTaskCreateBulk) SaveX(ctx context.Context) []*StudyTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
