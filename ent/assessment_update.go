// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studyplanhq/studyplan/ent/assessment"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdate) SetAssessmentID(v string) *AssessmentUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAssessmentID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *AssessmentUpdate) SetCourseID(v string) *AssessmentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableCourseID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdate) SetTitle(v string) *AssessmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTitle(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssessmentUpdate) SetKind(v string) *AssessmentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableKind(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *AssessmentUpdate) SetWeight(v float64) *AssessmentUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableWeight(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *AssessmentUpdate) AddWeight(v float64) *AssessmentUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AssessmentUpdate) SetDueDate(v time.Time) *AssessmentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableDueDate(v *time.Time) *AssessmentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *AssessmentUpdate) SetTopicIds(v []string) *AssessmentUpdate {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *AssessmentUpdate) AppendTopicIds(v []string) *AssessmentUpdate {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := assessment.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(assessment.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assessment.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(assessment.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(assessment.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(assessment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(assessment.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldTopicIds, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdateOne) SetAssessmentID(v string) *AssessmentUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAssessmentID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *AssessmentUpdateOne) SetCourseID(v string) *AssessmentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableCourseID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdateOne) SetTitle(v string) *AssessmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTitle(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssessmentUpdateOne) SetKind(v string) *AssessmentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableKind(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *AssessmentUpdateOne) SetWeight(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableWeight(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *AssessmentUpdateOne) AddWeight(v float64) *AssessmentUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AssessmentUpdateOne) SetDueDate(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableDueDate(v *time.Time) *AssessmentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *AssessmentUpdateOne) SetTopicIds(v []string) *AssessmentUpdateOne {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *AssessmentUpdateOne) AppendTopicIds(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := assessment.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(assessment.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assessment.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(assessment.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(assessment.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(assessment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(assessment.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldTopicIds, value)
		})
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
