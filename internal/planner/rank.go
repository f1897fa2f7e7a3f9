package planner

import (
	"context"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/store"
)

// DefaultWeight stands in for topics with no upcoming assessment, so
// maintenance practice still competes for slots instead of scoring
// zero.
const DefaultWeight = 10.0

// RankTopics assembles candidates from storage and returns the ranked
// study items for the horizon.
func (s *Service) RankTopics(ctx context.Context, horizonDays int) ([]priority.StudyItem, error) {
	now := s.now()
	candidates, err := s.candidates(ctx, now)
	if err != nil {
		return nil, err
	}
	return priority.Rank(candidates, horizonDays, s.prefs.Curve(), now)
}

// candidates pairs every topic with its mastery state and the soonest
// upcoming assessment covering it.
func (s *Service) candidates(ctx context.Context, now time.Time) ([]priority.Candidate, error) {
	topics, err := s.repos.Topics.List(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repos.Assessments.Upcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	states, err := s.repos.Mastery.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]priority.Candidate, 0, len(topics))
	for _, t := range topics {
		c := priority.Candidate{
			TopicID:   t.ID,
			TopicName: t.Name,
			CourseID:  t.CourseID,
			Weight:    DefaultWeight,
			Mastery:   freshOrStored(states, t.ID),
		}
		// Upcoming is sorted soonest first, so the first hit is the
		// next deadline for this topic.
		for _, a := range upcoming {
			if covers(a, t.ID) {
				c.AssessmentID = a.ID
				c.Weight = a.Weight
				c.DueDate = a.DueDate
				break
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// freshOrStored returns the stored state for a topic, or the untested
// default: zero mastery at maximum uncertainty, which ranks the topic
// as urgent and neglected.
func freshOrStored(states map[string]mastery.State, topicID string) mastery.State {
	if st, ok := states[topicID]; ok {
		return st
	}
	return mastery.State{
		TopicID:    topicID,
		Confidence: 20,
		Trend:      mastery.TrendNew,
	}
}

func covers(a store.Assessment, topicID string) bool {
	for _, id := range a.TopicIDs {
		if id == topicID {
			return true
		}
	}
	return false
}
