package mastery

import (
	"fmt"
	"math"
	"time"
)

// Smoothing factors for the EWMA update. The caller picks one based on
// the context of the attempt; the estimator only applies it.
const (
	AlphaDiagnostic   = 1.0 // first diagnostic replaces the prior entirely
	AlphaExam         = 0.5
	AlphaQuiz         = 0.3
	AlphaSmallAttempt = 0.1 // few questions, limit single-result volatility
)

const (
	// TrendThreshold is the minimum score delta that counts as a trend.
	TrendThreshold = 5.0

	// ReviewScoreFloor is the mastery score below which the next review
	// is forced to tomorrow instead of the spaced repetition interval.
	ReviewScoreFloor = 70.0

	// DefaultNeglectDays is assumed for topics never practiced.
	DefaultNeglectDays = 30

	minConfidence = 5.0
	maxConfidence = 20.0
)

// ConfidenceInterval returns the uncertainty band for a mastery estimate
// after attemptCount quiz attempts: max(5, 20/sqrt(n)), capped at 20.
func ConfidenceInterval(attemptCount int) (float64, error) {
	if attemptCount <= 0 {
		return 0, fmt.Errorf("attempt count %d: %w", attemptCount, ErrInvalidAttempts)
	}
	ci := maxConfidence / math.Sqrt(float64(attemptCount))
	if ci < minConfidence {
		return minConfidence, nil
	}
	return ci, nil
}

// DetectTrend compares old and new scores against the trend threshold.
func DetectTrend(oldScore, newScore float64) Trend {
	delta := newScore - oldScore
	switch {
	case delta > TrendThreshold:
		return TrendImproving
	case delta < -TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Initialize creates a fresh State from a diagnostic quiz. The next
// review is always tomorrow; a single diagnostic earns no long interval.
func Initialize(topicID string, diagnosticScore float64, questionCount int, now time.Time) (State, error) {
	if diagnosticScore < 0 || diagnosticScore > 100 {
		return State{}, fmt.Errorf("diagnostic score %.1f: %w", diagnosticScore, ErrInvalidScore)
	}
	ci, err := ConfidenceInterval(questionCount)
	if err != nil {
		return State{}, err
	}
	return State{
		TopicID:       topicID,
		Score:         diagnosticScore,
		Confidence:    ci,
		Trend:         TrendNew,
		PracticeCount: 1,
		LastPracticed: now,
		NextReview:    now.AddDate(0, 0, 1),
		IntervalDays:  1,
		Easiness:      InitialEasiness,
	}, nil
}

// Update folds a quiz result into the state using exponential smoothing:
//
//	new = alpha*quizScore + (1-alpha)*old
//
// Confidence narrows by 10% per update (floored at 5). The spaced
// repetition schedule advances when the new score clears ReviewScoreFloor,
// otherwise the next review is forced to tomorrow.
func Update(s State, quizScore float64, attemptCount int, alpha float64, now time.Time) (State, error) {
	if quizScore < 0 || quizScore > 100 {
		return State{}, fmt.Errorf("quiz score %.1f: %w", quizScore, ErrInvalidScore)
	}
	if attemptCount <= 0 {
		return State{}, fmt.Errorf("attempt count %d: %w", attemptCount, ErrInvalidAttempts)
	}
	if alpha < 0 || alpha > 1 {
		return State{}, fmt.Errorf("alpha %.2f: %w", alpha, ErrInvalidAlpha)
	}

	oldScore := s.Score
	s.Score = alpha*quizScore + (1-alpha)*oldScore

	s.Confidence = s.Confidence * 0.9
	if s.Confidence < minConfidence {
		s.Confidence = minConfidence
	}
	if s.Confidence > maxConfidence {
		s.Confidence = maxConfidence
	}

	if s.Trend == "" || s.PracticeCount == 0 {
		s.Trend = TrendNew
	} else {
		s.Trend = DetectTrend(oldScore, s.Score)
	}

	if s.Easiness == 0 {
		s.Easiness = InitialEasiness
	}
	if s.Score >= ReviewScoreFloor {
		quality := Quality(quizScore)
		interval, ef := NextInterval(s.Easiness, s.IntervalDays, quality)
		s.IntervalDays = interval
		s.Easiness = ef
		s.NextReview = now.AddDate(0, 0, interval)
	} else {
		s.IntervalDays = 1
		s.NextReview = now.AddDate(0, 0, 1)
	}

	s.PracticeCount++
	s.QuizCount++
	s.LastPracticed = now

	return s, nil
}
