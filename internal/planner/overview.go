package planner

import (
	"context"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/store"
)

// TopicMastery pairs a topic with its mastery state. State is nil for
// topics never tested.
type TopicMastery struct {
	Topic store.Topic
	State *mastery.State
}

// MasteryOverview returns every topic with its current state, in course
// then position order.
func (s *Service) MasteryOverview(ctx context.Context) ([]TopicMastery, error) {
	topics, err := s.repos.Topics.List(ctx)
	if err != nil {
		return nil, err
	}
	states, err := s.repos.Mastery.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TopicMastery, 0, len(topics))
	for _, t := range topics {
		tm := TopicMastery{Topic: t}
		if st, ok := states[t.ID]; ok {
			tm.State = &st
		}
		out = append(out, tm)
	}
	return out, nil
}

// UpcomingTasks returns the stored tasks with slots in [from, to).
func (s *Service) UpcomingTasks(ctx context.Context, from, to time.Time) ([]schedule.Task, error) {
	return s.repos.Tasks.Between(ctx, from, to)
}
