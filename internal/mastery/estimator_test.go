package mastery

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func baseState(score float64) State {
	return State{
		TopicID:       "topic-1",
		Score:         score,
		Confidence:    10,
		Trend:         TrendStable,
		PracticeCount: 3,
		LastPracticed: testNow.AddDate(0, 0, -2),
		IntervalDays:  1,
		Easiness:      InitialEasiness,
	}
}

func TestUpdateEWMA(t *testing.T) {
	tests := []struct {
		name  string
		old   float64
		quiz  float64
		alpha float64
		want  float64
	}{
		{"quiz alpha", 50, 80, 0.3, 59.0},
		{"exam alpha", 100, 50, 0.5, 75.0},
		{"full replacement", 20, 90, 1.0, 90.0},
		{"no learning", 40, 100, 0.0, 40.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Update(baseState(tt.old), tt.quiz, 10, tt.alpha, testNow)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if math.Abs(got.Score-tt.want) > 1e-9 {
				t.Errorf("score = %v, want %v", got.Score, tt.want)
			}
		})
	}
}

func TestUpdateScoreStaysInRange(t *testing.T) {
	for _, old := range []float64{0, 25, 50, 75, 100} {
		for _, quiz := range []float64{0, 33, 66, 100} {
			for _, alpha := range []float64{0, 0.1, 0.3, 0.5, 1} {
				got, err := Update(baseState(old), quiz, 5, alpha, testNow)
				if err != nil {
					t.Fatalf("Update(%v, %v, %v): %v", old, quiz, alpha, err)
				}
				if got.Score < 0 || got.Score > 100 {
					t.Errorf("Update(%v, %v, %v) score = %v, out of range", old, quiz, alpha, got.Score)
				}
			}
		}
	}
}

func TestUpdateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		attempts int
		alpha    float64
		wantErr  error
	}{
		{"score below zero", -1, 5, 0.3, ErrInvalidScore},
		{"score above hundred", 101, 5, 0.3, ErrInvalidScore},
		{"zero attempts", 50, 0, 0.3, ErrInvalidAttempts},
		{"negative attempts", 50, -3, 0.3, ErrInvalidAttempts},
		{"alpha too large", 50, 5, 1.5, ErrInvalidAlpha},
		{"alpha negative", 50, 5, -0.1, ErrInvalidAlpha},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Update(baseState(50), tt.score, tt.attempts, tt.alpha, testNow)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfidenceInterval(t *testing.T) {
	tests := []struct {
		attempts int
		want     float64
	}{
		{1, 20.0},
		{4, 10.0},
		{16, 5.0},
		{100, 5.0}, // floor holds
	}
	for _, tt := range tests {
		got, err := ConfidenceInterval(tt.attempts)
		if err != nil {
			t.Fatalf("ConfidenceInterval(%d): %v", tt.attempts, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ConfidenceInterval(%d) = %v, want %v", tt.attempts, got, tt.want)
		}
	}
}

func TestConfidenceIntervalMonotone(t *testing.T) {
	prev := math.Inf(1)
	for n := 1; n <= 200; n++ {
		ci, err := ConfidenceInterval(n)
		if err != nil {
			t.Fatalf("ConfidenceInterval(%d): %v", n, err)
		}
		if ci > prev {
			t.Fatalf("CI(%d) = %v > CI(%d) = %v; must be non-increasing", n, ci, n-1, prev)
		}
		prev = ci
	}
}

func TestConfidenceIntervalRejectsNonPositive(t *testing.T) {
	if _, err := ConfidenceInterval(0); !errors.Is(err, ErrInvalidAttempts) {
		t.Errorf("err = %v, want ErrInvalidAttempts", err)
	}
}

func TestDetectTrend(t *testing.T) {
	tests := []struct {
		old, new float64
		want     Trend
	}{
		{50, 60, TrendImproving},
		{50, 40, TrendDeclining},
		{50, 54, TrendStable},
		{50, 46, TrendStable},
		{50, 55, TrendStable}, // exactly at threshold is not a trend
		{50, 45, TrendStable},
	}
	for _, tt := range tests {
		if got := DetectTrend(tt.old, tt.new); got != tt.want {
			t.Errorf("DetectTrend(%v, %v) = %v, want %v", tt.old, tt.new, got, tt.want)
		}
	}
}

func TestInitialize(t *testing.T) {
	s, err := Initialize("topic-1", 62, 10, testNow)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if s.Score != 62 {
		t.Errorf("score = %v, want 62", s.Score)
	}
	if s.Trend != TrendNew {
		t.Errorf("trend = %v, want new", s.Trend)
	}
	wantCI := 20.0 / math.Sqrt(10)
	if math.Abs(s.Confidence-wantCI) > 1e-9 {
		t.Errorf("confidence = %v, want %v", s.Confidence, wantCI)
	}
	if !s.NextReview.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want tomorrow", s.NextReview)
	}
	if s.Easiness != InitialEasiness {
		t.Errorf("easiness = %v, want %v", s.Easiness, InitialEasiness)
	}
}

func TestUpdateEndToEnd(t *testing.T) {
	s := baseState(65)
	got, err := Update(s, 80, 10, AlphaQuiz, testNow)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(got.Score-69.5) > 1e-9 {
		t.Errorf("score = %v, want 69.5", got.Score)
	}
	if math.Abs(got.Confidence-9.0) > 1e-9 {
		t.Errorf("confidence = %v, want 9.0 (10%% reduction)", got.Confidence)
	}
	// Delta 4.5 is under the 5-point threshold.
	if got.Trend != TrendStable {
		t.Errorf("trend = %v, want stable", got.Trend)
	}
	// 69.5 < 70: review forced to tomorrow.
	if !got.NextReview.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want tomorrow", got.NextReview)
	}
	if got.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", got.IntervalDays)
	}
}

func TestUpdateAboveFloorUsesSpacedRepetition(t *testing.T) {
	s := baseState(80)
	s.IntervalDays = 1
	got, err := Update(s, 90, 10, AlphaQuiz, testNow)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	// 0.3*90 + 0.7*80 = 83 >= 70, interval 1 advances to 6.
	if got.IntervalDays != SecondInterval {
		t.Errorf("interval = %d, want %d", got.IntervalDays, SecondInterval)
	}
	if !got.NextReview.Equal(testNow.AddDate(0, 0, SecondInterval)) {
		t.Errorf("next review = %v, want +6 days", got.NextReview)
	}
}

func TestConfidenceFloorOnRepeatedUpdates(t *testing.T) {
	s := baseState(80)
	for i := 0; i < 20; i++ {
		var err error
		s, err = Update(s, 80, 10, AlphaQuiz, testNow.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
	}
	if s.Confidence < 5.0 {
		t.Errorf("confidence = %v, fell below floor", s.Confidence)
	}
}

func TestDaysSincePracticed(t *testing.T) {
	s := baseState(50)
	if got := s.DaysSincePracticed(testNow); got != 2 {
		t.Errorf("DaysSincePracticed = %d, want 2", got)
	}
	s.LastPracticed = time.Time{}
	if got := s.DaysSincePracticed(testNow); got != DefaultNeglectDays {
		t.Errorf("never practiced = %d, want %d", got, DefaultNeglectDays)
	}
}
