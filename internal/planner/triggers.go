package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/replan"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/store"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// HandleTrigger applies one schedule-invalidating event against the
// stored task set and persists the outcome. A calendar trigger also
// records the new busy block so future planning avoids it.
func (s *Service) HandleTrigger(ctx context.Context, req replan.Request) (replan.Outcome, error) {
	tasks, err := s.repos.Tasks.All(ctx)
	if err != nil {
		return replan.Outcome{}, err
	}
	env, err := s.env(ctx, s.now(), replan.ExtendedLookaheadDays)
	if err != nil {
		return replan.Outcome{}, err
	}

	out, err := replan.Handle(req, tasks, env)
	if err != nil {
		return replan.Outcome{}, err
	}

	if req.Kind == replan.TriggerCalendarChange && req.Calendar != nil {
		err := s.repos.Busy.Add(ctx, store.BusyBlock{
			ID:       uuid.NewString(),
			Label:    "calendar event",
			Interval: req.Calendar.Interval,
			Source:   "calendar",
		})
		if err != nil {
			return replan.Outcome{}, err
		}
	}

	if err := s.applyOutcome(ctx, string(req.Kind), out); err != nil {
		return replan.Outcome{}, err
	}
	s.log.Info("trigger handled",
		zap.String("trigger", string(req.Kind)),
		zap.Int("tasks", len(out.Tasks)),
		zap.Strings("notices", out.Notices),
	)
	return out, nil
}

// NightlyReplan regenerates the full horizon from the day's rankings,
// freezing completed and in-progress tasks in place.
func (s *Service) NightlyReplan(ctx context.Context) (replan.Outcome, error) {
	now := s.now()
	horizon := s.prefs.HorizonDays

	fresh, err := s.freshTasks(ctx, now, horizon)
	if err != nil {
		return replan.Outcome{}, err
	}
	tasks, err := s.repos.Tasks.All(ctx)
	if err != nil {
		return replan.Outcome{}, err
	}
	env, err := s.env(ctx, now, horizon)
	if err != nil {
		return replan.Outcome{}, err
	}

	out, err := replan.Nightly(tasks, fresh, env, horizon)
	if err != nil {
		return replan.Outcome{}, err
	}
	if err := s.applyOutcome(ctx, "nightly", out); err != nil {
		return replan.Outcome{}, err
	}
	s.log.Info("nightly replan complete",
		zap.Int("tasks", len(out.Tasks)),
		zap.Strings("notices", out.Notices),
	)
	return out, nil
}

// AddCalendarEvent reacts to a new unavailable interval, displacing any
// scheduled work it overlaps.
func (s *Service) AddCalendarEvent(ctx context.Context, interval timeslot.BusyInterval) (replan.Outcome, error) {
	return s.HandleTrigger(ctx, replan.Request{
		Kind:     replan.TriggerCalendarChange,
		Calendar: &replan.CalendarEvent{Interval: interval},
	})
}

// ReportMissed marks a task as not done: its priority is boosted and it
// is rescheduled today or tomorrow.
func (s *Service) ReportMissed(ctx context.Context, taskID string) (replan.Outcome, error) {
	return s.HandleTrigger(ctx, replan.Request{
		Kind:   replan.TriggerTaskMissed,
		Missed: &replan.MissedTask{TaskID: taskID},
	})
}

// ReportPerformance reacts to a weak quiz score on a topic by inserting
// remedial drills over the coming days.
func (s *Service) ReportPerformance(ctx context.Context, topicID string, score float64) (replan.Outcome, error) {
	now := s.now()
	candidates, err := s.candidates(ctx, now)
	if err != nil {
		return replan.Outcome{}, err
	}
	var topic *priority.Candidate
	for i := range candidates {
		if candidates[i].TopicID == topicID {
			topic = &candidates[i]
			break
		}
	}
	if topic == nil {
		return replan.Outcome{}, fmt.Errorf("report performance: unknown topic %s: %w", topicID, ErrNotFound)
	}
	items, err := priority.Rank([]priority.Candidate{*topic}, s.prefs.HorizonDays, s.prefs.Curve(), now)
	if err != nil {
		return replan.Outcome{}, err
	}
	return s.HandleTrigger(ctx, replan.Request{
		Kind:        replan.TriggerPoorPerformance,
		Performance: &replan.QuizPerformance{Topic: items[0], Score: score},
	})
}

// ShiftDeadline moves an assessment's due date and replans the work
// covering it under the new urgency.
func (s *Service) ShiftDeadline(ctx context.Context, assessmentID string, due time.Time) (replan.Outcome, error) {
	a, err := s.repos.Assessments.Get(ctx, assessmentID)
	if err != nil {
		return replan.Outcome{}, err
	}
	if a == nil {
		return replan.Outcome{}, fmt.Errorf("shift deadline: unknown assessment %s: %w", assessmentID, ErrNotFound)
	}
	if err := s.repos.Assessments.SetDueDate(ctx, assessmentID, due); err != nil {
		return replan.Outcome{}, err
	}

	candidates, err := s.candidates(ctx, s.now())
	if err != nil {
		return replan.Outcome{}, err
	}
	var updated []priority.Candidate
	for _, c := range candidates {
		if c.AssessmentID == assessmentID {
			updated = append(updated, c)
		}
	}
	return s.HandleTrigger(ctx, replan.Request{
		Kind: replan.TriggerDeadlineChange,
		Deadline: &replan.DeadlineShift{
			AssessmentID: assessmentID,
			Updated:      updated,
			Curve:        s.prefs.Curve(),
		},
	})
}

// env snapshots the planning environment: availability windows from the
// preferences and busy blocks from the store, covering now plus the
// lookahead.
func (s *Service) env(ctx context.Context, now time.Time, lookaheadDays int) (replan.Env, error) {
	windows, err := s.prefs.Windows()
	if err != nil {
		return replan.Env{}, err
	}
	constraints, err := s.prefs.Constraints()
	if err != nil {
		return replan.Env{}, err
	}

	blocks, err := s.repos.Busy.Between(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, lookaheadDays+1))
	if err != nil {
		return replan.Env{}, err
	}
	busy := make([]timeslot.BusyInterval, 0, len(blocks))
	for _, b := range blocks {
		busy = append(busy, b.Interval)
	}

	return replan.Env{
		Windows:     windows,
		Busy:        busy,
		Constraints: constraints,
		Weights:     schedule.DefaultWeights(),
		Now:         now,
	}, nil
}

// applyOutcome persists a replan outcome and appends the audit event.
func (s *Service) applyOutcome(ctx context.Context, trigger string, out replan.Outcome) error {
	if err := s.repos.Tasks.ReplaceActive(ctx, out.Tasks); err != nil {
		return err
	}
	return s.repos.Events.AppendReplan(ctx, store.ReplanRecord{
		Trigger:      trigger,
		TasksTouched: len(out.Tasks),
		Notices:      out.Notices,
	})
}
