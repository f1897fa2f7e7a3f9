package store

import (
	"context"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Course is a unit of enrollment.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Archived bool   `json:"archived"`
}

// Topic is the unit of mastery tracking within a course.
type Topic struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Assessment is a dated, weighted evaluation covering topics.
type Assessment struct {
	ID       string    `json:"id"`
	CourseID string    `json:"course_id"`
	Title    string    `json:"title"`
	Kind     string    `json:"kind"`
	Weight   float64   `json:"weight"`
	DueDate  time.Time `json:"due_date"`
	TopicIDs []string  `json:"topic_ids"`
}

// BusyBlock is a labeled unavailable interval.
type BusyBlock struct {
	ID       string                `json:"id"`
	Label    string                `json:"label,omitempty"`
	Interval timeslot.BusyInterval `json:"interval"`
	Source   string                `json:"source"`
}

// QuizResult is one graded event in the quiz log.
type QuizResult struct {
	TopicID       string    `json:"topic_id"`
	Score         float64   `json:"score"`
	QuestionCount int       `json:"question_count"`
	IsExam        bool      `json:"is_exam"`
	Alpha         float64   `json:"alpha"`
	Timestamp     time.Time `json:"timestamp"`
}

// ReplanRecord is one audit entry for a replanning run.
type ReplanRecord struct {
	Trigger      string   `json:"trigger"`
	TasksTouched int      `json:"tasks_touched"`
	Notices      []string `json:"notices,omitempty"`
}

// CourseRepo manages courses.
type CourseRepo interface {
	Create(ctx context.Context, c Course) error
	Get(ctx context.Context, id string) (*Course, error)

	// List returns all non-archived courses.
	List(ctx context.Context) ([]Course, error)

	// Archive hides a course from planning without deleting its data.
	Archive(ctx context.Context, id string) error
}

// TopicRepo manages topics.
type TopicRepo interface {
	Create(ctx context.Context, t Topic) error
	Get(ctx context.Context, id string) (*Topic, error)
	ListByCourse(ctx context.Context, courseID string) ([]Topic, error)
	List(ctx context.Context) ([]Topic, error)
}

// AssessmentRepo manages assessments.
type AssessmentRepo interface {
	Create(ctx context.Context, a Assessment) error
	Get(ctx context.Context, id string) (*Assessment, error)

	// Upcoming returns assessments due at or after now, soonest first.
	Upcoming(ctx context.Context, now time.Time) ([]Assessment, error)

	// SetDueDate moves an assessment's due date.
	SetDueDate(ctx context.Context, id string, due time.Time) error
}

// MasteryRepo manages per-topic mastery state.
type MasteryRepo interface {
	// Get returns the state for a topic, or nil if none exists yet.
	Get(ctx context.Context, topicID string) (*mastery.State, error)

	// Put inserts or overwrites the state for st.TopicID.
	Put(ctx context.Context, st mastery.State) error

	// All returns every tracked state keyed by topic ID.
	All(ctx context.Context) (map[string]mastery.State, error)
}

// TaskRepo manages study tasks.
type TaskRepo interface {
	// Upsert inserts or overwrites one task by ID.
	Upsert(ctx context.Context, t schedule.Task) error

	Get(ctx context.Context, id string) (*schedule.Task, error)
	All(ctx context.Context) ([]schedule.Task, error)

	// Between returns tasks whose slot starts in [from, to).
	Between(ctx context.Context, from, to time.Time) ([]schedule.Task, error)

	// ReplaceActive atomically swaps the pending and scheduled rows for
	// the given set, leaving terminal and in-progress rows untouched.
	ReplaceActive(ctx context.Context, tasks []schedule.Task) error

	// SetStatus drives the task lifecycle from the CLI.
	SetStatus(ctx context.Context, id string, status schedule.Status) error
}

// BusyRepo manages unavailable intervals.
type BusyRepo interface {
	Add(ctx context.Context, b BusyBlock) error
	Remove(ctx context.Context, id string) error

	// Between returns intervals overlapping [from, to).
	Between(ctx context.Context, from, to time.Time) ([]BusyBlock, error)
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendQuiz records one graded result.
	AppendQuiz(ctx context.Context, q QuizResult) error

	// AppendReplan records one replanning run.
	AppendReplan(ctx context.Context, r ReplanRecord) error

	// RecentQuizzes returns the last n results for a topic, newest first.
	RecentQuizzes(ctx context.Context, topicID string, n int) ([]QuizResult, error)
}
