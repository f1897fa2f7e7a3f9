package replan

import (
	"errors"
	"fmt"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// ErrUnknownTrigger is returned for a request with an unrecognized or
// incomplete trigger payload.
var ErrUnknownTrigger = errors.New("replan: unknown or incomplete trigger")

// Request is a tagged trigger payload. Exactly the field matching Kind
// must be set.
type Request struct {
	Kind Trigger `json:"kind"`

	Calendar    *CalendarEvent   `json:"calendar,omitempty"`
	Missed      *MissedTask      `json:"missed,omitempty"`
	Performance *QuizPerformance `json:"performance,omitempty"`
	Deadline    *DeadlineShift   `json:"deadline,omitempty"`
}

// CalendarEvent is a newly added busy interval.
type CalendarEvent struct {
	Interval timeslot.BusyInterval `json:"interval"`
}

// MissedTask identifies a task the student did not do.
type MissedTask struct {
	TaskID string `json:"task_id"`
}

// QuizPerformance reports a weak quiz result for a topic.
type QuizPerformance struct {
	Topic priority.StudyItem `json:"topic"`
	Score float64            `json:"score"`
}

// DeadlineShift reports a moved assessment due date. Updated carries
// re-fetched candidates for the assessment's topics with the new date.
type DeadlineShift struct {
	AssessmentID string               `json:"assessment_id"`
	Updated      []priority.Candidate `json:"-"`
	Curve        priority.Curve       `json:"curve"`
}

// Handle dispatches a trigger request against the current task set.
func Handle(req Request, tasks []schedule.Task, env Env) (Outcome, error) {
	switch req.Kind {
	case TriggerCalendarChange:
		if req.Calendar == nil {
			return Outcome{}, fmt.Errorf("%s: %w", req.Kind, ErrUnknownTrigger)
		}
		return CalendarChange(tasks, req.Calendar.Interval, env)
	case TriggerTaskMissed:
		if req.Missed == nil {
			return Outcome{}, fmt.Errorf("%s: %w", req.Kind, ErrUnknownTrigger)
		}
		return TaskMissed(tasks, req.Missed.TaskID, env)
	case TriggerPoorPerformance:
		if req.Performance == nil {
			return Outcome{}, fmt.Errorf("%s: %w", req.Kind, ErrUnknownTrigger)
		}
		return PoorPerformance(tasks, req.Performance.Topic, req.Performance.Score, env)
	case TriggerDeadlineChange:
		if req.Deadline == nil {
			return Outcome{}, fmt.Errorf("%s: %w", req.Kind, ErrUnknownTrigger)
		}
		return DeadlineChange(tasks, req.Deadline.AssessmentID, req.Deadline.Updated, req.Deadline.Curve, env)
	default:
		return Outcome{}, fmt.Errorf("%q: %w", req.Kind, ErrUnknownTrigger)
	}
}
