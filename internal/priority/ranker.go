package priority

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
)

// Validation errors for the priority package.
var (
	ErrInvalidWeight  = errors.New("priority: assessment weight out of range [0,100]")
	ErrInvalidHorizon = errors.New("priority: horizon days must be positive")
)

// FarFutureDays stands in for a deadline when a topic has no upcoming
// assessment. Such topics rank as low urgency, not as errors.
const FarFutureDays = 365

// ItemsPerDay bounds the ranked list to roughly two study sessions per
// horizon day.
const ItemsPerDay = 2

// Candidate pairs a topic's mastery state with the metadata of the next
// assessment covering it. The caller assembles candidates from storage.
type Candidate struct {
	TopicID      string
	TopicName    string
	CourseID     string
	AssessmentID string
	Weight       float64   // assessment weight percent, 0-100
	DueDate      time.Time // zero value: no upcoming assessment
	Mastery      mastery.State
}

// StudyItem is a ranked candidate ready for scheduling. Items are
// transient: recomputed every planning cycle, never authoritative state.
type StudyItem struct {
	TopicID      string     `json:"topic_id"`
	TopicName    string     `json:"topic_name"`
	CourseID     string     `json:"course_id"`
	AssessmentID string     `json:"assessment_id,omitempty"`
	Weight       float64    `json:"weight"`
	DurationMin  int        `json:"duration_min"`
	Difficulty   Difficulty `json:"difficulty"`
	Priority     float64    `json:"priority"`
	DaysUntilDue int        `json:"days_until_due"`
}

// Score computes the priority of studying a topic now. Each factor is
// in (0,1] except recency, which grows with neglect:
//
//	weight:    assessment weight fraction
//	gap:       how far mastery is from 100
//	urgency:   inverse days until the deadline
//	certainty: discounts shaky estimates (wide confidence interval)
//	recency:   rewards topics not practiced lately
func Score(weight, masteryScore, confidence float64, daysUntilDue, daysSincePractice int) (float64, error) {
	if weight < 0 || weight > 100 {
		return 0, fmt.Errorf("weight %.1f: %w", weight, ErrInvalidWeight)
	}

	w := weight / 100.0
	gap := 1.0 - masteryScore/100.0
	if daysUntilDue < 1 {
		daysUntilDue = 1
	}
	urgency := 1.0 / float64(daysUntilDue)
	certainty := 1.0 / (1.0 + confidence/100.0)
	if daysSincePractice < 0 {
		daysSincePractice = 0
	}
	recency := 1.0 + float64(daysSincePractice)

	return w * gap * urgency * certainty * recency, nil
}

// ScoreCandidate turns one candidate into a scored, unranked study
// item. A zero due date counts as a deadline a year out.
func ScoreCandidate(c Candidate, curve Curve, now time.Time) (StudyItem, error) {
	daysUntil := FarFutureDays
	if !c.DueDate.IsZero() {
		daysUntil = int(c.DueDate.Sub(now).Hours() / 24)
	}

	p, err := Score(c.Weight, c.Mastery.Score, c.Mastery.Confidence, daysUntil, c.Mastery.DaysSincePracticed(now))
	if err != nil {
		return StudyItem{}, fmt.Errorf("topic %s: %w", c.TopicID, err)
	}

	return StudyItem{
		TopicID:      c.TopicID,
		TopicName:    c.TopicName,
		CourseID:     c.CourseID,
		AssessmentID: c.AssessmentID,
		Weight:       c.Weight,
		DurationMin:  DurationForMastery(c.Mastery.Score),
		Difficulty:   SelectDifficultyAdaptive(c.Mastery.Score, c.Mastery.Trend, daysUntil, curve),
		Priority:     p,
		DaysUntilDue: daysUntil,
	}, nil
}

// Rank scores and orders candidates, highest priority first, and caps
// the result at horizonDays*ItemsPerDay. Ties break on topic ID so the
// ordering is deterministic.
func Rank(candidates []Candidate, horizonDays int, curve Curve, now time.Time) ([]StudyItem, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("horizon %d: %w", horizonDays, ErrInvalidHorizon)
	}

	items := make([]StudyItem, 0, len(candidates))
	for _, c := range candidates {
		it, err := ScoreCandidate(c, curve, now)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		return items[i].TopicID < items[j].TopicID
	})

	if max := horizonDays * ItemsPerDay; len(items) > max {
		items = items[:max]
	}
	return items, nil
}
