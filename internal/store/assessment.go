package store

import (
	"context"
	"fmt"
	"time"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/assessment"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Create(ctx context.Context, a Assessment) error {
	_, err := r.client.Assessment.Create().
		SetAssessmentID(a.ID).
		SetCourseID(a.CourseID).
		SetTitle(a.Title).
		SetKind(a.Kind).
		SetWeight(a.Weight).
		SetDueDate(a.DueDate).
		SetTopicIds(a.TopicIDs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*Assessment, error) {
	a, err := r.client.Assessment.Query().
		Where(assessment.AssessmentID(id)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query assessment: %w", err)
	}
	out := assessmentFromEnt(a)
	return &out, nil
}

func (r *assessmentRepo) Upcoming(ctx context.Context, now time.Time) ([]Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(assessment.DueDateGTE(now)).
		Order(ent.Asc(assessment.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming assessments: %w", err)
	}
	out := make([]Assessment, 0, len(rows))
	for _, a := range rows {
		out = append(out, assessmentFromEnt(a))
	}
	return out, nil
}

func (r *assessmentRepo) SetDueDate(ctx context.Context, id string, due time.Time) error {
	n, err := r.client.Assessment.Update().
		Where(assessment.AssessmentID(id)).
		SetDueDate(due).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("move assessment due date: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("move assessment due date: %s not found", id)
	}
	return nil
}

func assessmentFromEnt(a *ent.Assessment) Assessment {
	return Assessment{
		ID:       a.AssessmentID,
		CourseID: a.CourseID,
		Title:    a.Title,
		Kind:     a.Kind,
		Weight:   a.Weight,
		DueDate:  a.DueDate,
		TopicIDs: a.TopicIds,
	}
}
