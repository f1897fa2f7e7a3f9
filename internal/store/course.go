package store

import (
	"context"
	"fmt"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/course"
)

type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Create(ctx context.Context, c Course) error {
	_, err := r.client.Course.Create().
		SetCourseID(c.ID).
		SetName(c.Name).
		SetCode(c.Code).
		SetArchived(c.Archived).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *courseRepo) Get(ctx context.Context, id string) (*Course, error) {
	c, err := r.client.Course.Query().
		Where(course.CourseID(id)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course: %w", err)
	}
	out := courseFromEnt(c)
	return &out, nil
}

func (r *courseRepo) List(ctx context.Context) ([]Course, error) {
	rows, err := r.client.Course.Query().
		Where(course.Archived(false)).
		Order(ent.Asc(course.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	out := make([]Course, 0, len(rows))
	for _, c := range rows {
		out = append(out, courseFromEnt(c))
	}
	return out, nil
}

func (r *courseRepo) Archive(ctx context.Context, id string) error {
	n, err := r.client.Course.Update().
		Where(course.CourseID(id)).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("archive course: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("archive course: %s not found", id)
	}
	return nil
}

func courseFromEnt(c *ent.Course) Course {
	return Course{
		ID:       c.CourseID,
		Name:     c.Name,
		Code:     c.Code,
		Archived: c.Archived,
	}
}
