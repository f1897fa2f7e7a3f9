package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/replan"
	"github.com/studyplanhq/studyplan/internal/schedule"
)

// Review task synthesis for upcoming assessments. Reviews outrank
// ordinary practice and grow as the date closes in.
const (
	ReviewDurationMin  = 60
	ReviewBasePriority = 10.0
	ReviewDecayDays    = 7.0
)

// Plan is a generated schedule plus its daily breakdown.
type Plan struct {
	Tasks       []schedule.Task     `json:"tasks"`
	Unscheduled []schedule.Task     `json:"unscheduled,omitempty"`
	Days        []schedule.DayStats `json:"days"`
	TotalHours  float64             `json:"total_hours"`
	Notices     []string            `json:"notices,omitempty"`
}

// GenerateSchedule builds and persists a schedule covering [from, to):
// ranked practice for every topic, review blocks for assessments due in
// the window, greedy placement and a balancing pass. Completed and
// in-progress tasks keep their slots; everything else is regenerated.
func (s *Service) GenerateSchedule(ctx context.Context, from, to time.Time) (*Plan, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("generate schedule: empty range %v..%v: %w", from, to, priority.ErrInvalidHorizon)
	}
	horizonDays := int(to.Sub(from).Hours() / 24)
	if horizonDays < 1 {
		horizonDays = 1
	}

	fresh, err := s.freshTasks(ctx, from, horizonDays)
	if err != nil {
		return nil, err
	}
	existing, err := s.repos.Tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	env, err := s.env(ctx, from, horizonDays)
	if err != nil {
		return nil, err
	}

	out, err := replan.Nightly(existing, fresh, env, horizonDays)
	if err != nil {
		return nil, err
	}
	if err := s.applyOutcome(ctx, "generate", out); err != nil {
		return nil, err
	}

	plan := planFromOutcome(out)
	s.log.Info("schedule generated",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("tasks", len(plan.Tasks)),
		zap.Int("unscheduled", len(plan.Unscheduled)),
		zap.Float64("total_hours", plan.TotalHours),
	)
	return plan, nil
}

// freshTasks builds the pending task batch for one generation: practice
// per ranked topic plus one review block per assessment due within the
// horizon.
func (s *Service) freshTasks(ctx context.Context, now time.Time, horizonDays int) ([]schedule.Task, error) {
	items, err := s.RankTopics(ctx, horizonDays)
	if err != nil {
		return nil, err
	}

	tasks := make([]schedule.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, schedule.NewTask(item, schedule.TaskPractice))
	}

	upcoming, err := s.repos.Assessments.Upcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	until := now.AddDate(0, 0, horizonDays)
	for _, a := range upcoming {
		if a.DueDate.After(until) {
			continue
		}
		days := int(a.DueDate.Sub(now).Hours() / 24)
		if days < 0 {
			continue
		}
		topicID := ""
		if len(a.TopicIDs) > 0 {
			topicID = a.TopicIDs[0]
		}
		item := priority.StudyItem{
			TopicID:      topicID,
			TopicName:    a.Title,
			CourseID:     a.CourseID,
			AssessmentID: a.ID,
			Weight:       a.Weight,
			DurationMin:  ReviewDurationMin,
			Difficulty:   priority.DifficultyMedium,
			Priority:     ReviewBasePriority - float64(days)/ReviewDecayDays,
			DaysUntilDue: days,
		}
		tasks = append(tasks, schedule.NewTask(item, schedule.TaskReview))
	}
	return tasks, nil
}

// planFromOutcome splits a replan outcome into the scheduled plan and
// its leftovers, with the daily breakdown.
func planFromOutcome(out replan.Outcome) *Plan {
	var scheduled, unscheduled []schedule.Task
	for _, t := range out.Tasks {
		if t.Status == schedule.StatusPending {
			unscheduled = append(unscheduled, t)
			continue
		}
		scheduled = append(scheduled, t)
	}
	return &Plan{
		Tasks:       scheduled,
		Unscheduled: unscheduled,
		Days:        schedule.Breakdown(scheduled),
		TotalHours:  schedule.TotalHours(scheduled),
		Notices:     out.Notices,
	}
}
