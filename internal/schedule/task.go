package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyplanhq/studyplan/internal/priority"
)

// ErrTerminalTask is returned when a caller attempts to transition a
// task that is already completed or skipped.
var ErrTerminalTask = errors.New("schedule: task is in a terminal status")

// ErrBadTransition is returned for transitions the task lifecycle does
// not allow.
var ErrBadTransition = errors.New("schedule: illegal status transition")

// Status is the lifecycle state of a scheduled task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Terminal reports whether the status can never change again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// TaskType classifies what kind of work a task represents.
type TaskType string

const (
	TaskPractice TaskType = "practice" // topic drill generated from rankings
	TaskReview   TaskType = "review"   // preparation for an upcoming assessment
	TaskDrill    TaskType = "drill"    // remedial block created after a poor quiz
)

// Task is a time-boxed study task. Start/End are zero while the task is
// pending. Priority is the item's priority at the time of scheduling.
type Task struct {
	ID           string              `json:"id"`
	TopicID      string              `json:"topic_id"`
	TopicName    string              `json:"topic_name"`
	CourseID     string              `json:"course_id"`
	AssessmentID string              `json:"assessment_id,omitempty"`
	Title        string              `json:"title"`
	Type         TaskType            `json:"type"`
	Difficulty   priority.Difficulty `json:"difficulty"`
	DurationMin  int                 `json:"duration_min"`
	Priority     float64             `json:"priority"`
	Start        time.Time           `json:"start,omitzero"`
	End          time.Time           `json:"end,omitzero"`
	Status       Status              `json:"status"`
}

// NewTask builds a pending task from a ranked study item.
func NewTask(item priority.StudyItem, typ TaskType) Task {
	title := "Practice: " + item.TopicName
	if typ == TaskReview {
		title = "Review: " + item.TopicName
	}
	return Task{
		ID:           uuid.NewString(),
		TopicID:      item.TopicID,
		TopicName:    item.TopicName,
		CourseID:     item.CourseID,
		AssessmentID: item.AssessmentID,
		Title:        title,
		Type:         typ,
		Difficulty:   item.Difficulty,
		DurationMin:  item.DurationMin,
		Priority:     item.Priority,
		Status:       StatusPending,
	}
}

// allowed lists the legal forward transitions per status.
var allowed = map[Status][]Status{
	StatusPending:    {StatusScheduled},
	StatusScheduled:  {StatusInProgress, StatusSkipped, StatusPending},
	StatusInProgress: {StatusCompleted, StatusSkipped, StatusPending},
}

// Transition moves the task to a new status, enforcing the lifecycle
//
//	pending -> scheduled -> in_progress -> completed
//
// with skipped reachable from scheduled/in_progress and pending
// reachable again on invalidation. Completed and skipped are terminal.
func (t *Task) Transition(to Status) error {
	if t.Status.Terminal() {
		return fmt.Errorf("task %s is %s: %w", t.ID, t.Status, ErrTerminalTask)
	}
	for _, s := range allowed[t.Status] {
		if s == to {
			t.Status = to
			if to == StatusPending {
				t.Start = time.Time{}
				t.End = time.Time{}
			}
			return nil
		}
	}
	return fmt.Errorf("task %s: %s -> %s: %w", t.ID, t.Status, to, ErrBadTransition)
}

// Invalidate reverts a scheduled or in-progress task to pending,
// clearing its slot. Pending tasks pass through unchanged; terminal
// tasks are an error.
func (t *Task) Invalidate() error {
	if t.Status == StatusPending {
		return nil
	}
	return t.Transition(StatusPending)
}

// Day returns the midnight of the task's scheduled day.
func (t Task) Day() time.Time {
	return time.Date(t.Start.Year(), t.Start.Month(), t.Start.Day(), 0, 0, 0, 0, t.Start.Location())
}

// Overlaps reports whether the task's slot intersects [start, end).
func (t Task) Overlaps(start, end time.Time) bool {
	if t.Start.IsZero() {
		return false
	}
	return t.Start.Before(end) && t.End.After(start)
}
