package mastery

import "time"

// Trend describes the direction of a topic's mastery over recent quizzes.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
	TrendNew       Trend = "new"
)

// State holds the mastery estimate for a single (user, topic) pair.
// It is a value: Update returns a new State and never mutates its input.
type State struct {
	TopicID       string    `json:"topic_id"`
	Score         float64   `json:"score"`      // 0-100
	Confidence    float64   `json:"confidence"` // interval width, 5-20
	Trend         Trend     `json:"trend"`
	PracticeCount int       `json:"practice_count"`
	QuizCount     int       `json:"quiz_count"`
	LastPracticed time.Time `json:"last_practiced"`
	NextReview    time.Time `json:"next_review"`
	IntervalDays  int       `json:"interval_days"`
	Easiness      float64   `json:"easiness"`
}

// DaysSincePracticed returns whole days since the last practice.
// Returns DefaultNeglectDays if the topic has never been practiced.
func (s State) DaysSincePracticed(now time.Time) int {
	if s.LastPracticed.IsZero() {
		return DefaultNeglectDays
	}
	d := int(now.Sub(s.LastPracticed).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// IsDue reports whether the topic is at or past its next review date.
func (s State) IsDue(now time.Time) bool {
	return !now.Before(s.NextReview)
}
