package store

import (
	"context"
	"fmt"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/topic"
)

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Create(ctx context.Context, t Topic) error {
	_, err := r.client.Topic.Create().
		SetTopicID(t.ID).
		SetCourseID(t.CourseID).
		SetName(t.Name).
		SetPosition(t.Position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepo) Get(ctx context.Context, id string) (*Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.TopicID(id)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic: %w", err)
	}
	out := topicFromEnt(t)
	return &out, nil
}

func (r *topicRepo) ListByCourse(ctx context.Context, courseID string) ([]Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.CourseID(courseID)).
		Order(ent.Asc(topic.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topicsFromEnt(rows), nil
}

func (r *topicRepo) List(ctx context.Context) ([]Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldCourseID), ent.Asc(topic.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topicsFromEnt(rows), nil
}

func topicsFromEnt(rows []*ent.Topic) []Topic {
	out := make([]Topic, 0, len(rows))
	for _, t := range rows {
		out = append(out, topicFromEnt(t))
	}
	return out
}

func topicFromEnt(t *ent.Topic) Topic {
	return Topic{
		ID:       t.TopicID,
		CourseID: t.CourseID,
		Name:     t.Name,
		Position: t.Position,
	}
}
