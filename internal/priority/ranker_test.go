package priority

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func candidate(topicID string, score float64, due time.Time) Candidate {
	return Candidate{
		TopicID:   topicID,
		TopicName: "Topic " + topicID,
		CourseID:  "course-1",
		Weight:    30,
		DueDate:   due,
		Mastery: mastery.State{
			TopicID:       topicID,
			Score:         score,
			Confidence:    10,
			Trend:         mastery.TrendStable,
			LastPracticed: testNow.AddDate(0, 0, -3),
		},
	}
}

func TestScore(t *testing.T) {
	// weight 0.3, gap 0.5, urgency 1/5, certainty 1/1.1, recency 4.
	got, err := Score(30, 50, 10, 5, 3)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := 0.3 * 0.5 * (1.0 / 5.0) * (1.0 / 1.1) * 4.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScoreNeglectRaisesPriority(t *testing.T) {
	recent, err := Score(50, 50, 10, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	neglected, err := Score(50, 50, 10, 7, 20)
	if err != nil {
		t.Fatal(err)
	}
	if neglected <= recent {
		t.Errorf("neglected topic priority %v should exceed recently practiced %v", neglected, recent)
	}
}

func TestScoreDeadlineRaisesPriority(t *testing.T) {
	far, err := Score(50, 50, 10, 30, 5)
	if err != nil {
		t.Fatal(err)
	}
	near, err := Score(50, 50, 10, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if near <= far {
		t.Errorf("near deadline priority %v should exceed far deadline %v", near, far)
	}
}

func TestScoreRejectsBadWeight(t *testing.T) {
	if _, err := Score(120, 50, 10, 5, 3); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("err = %v, want ErrInvalidWeight", err)
	}
	if _, err := Score(-1, 50, 10, 5, 3); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("err = %v, want ErrInvalidWeight", err)
	}
}

func TestRankOrdering(t *testing.T) {
	cands := []Candidate{
		candidate("c-strong", 90, testNow.AddDate(0, 0, 20)), // low gap, far deadline
		candidate("a-weak", 30, testNow.AddDate(0, 0, 4)),    // big gap, near deadline
		candidate("b-mid", 60, testNow.AddDate(0, 0, 10)),
	}
	items, err := Rank(cands, 7, CurveBalanced, testNow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].TopicID != "a-weak" {
		t.Errorf("top item = %s, want a-weak", items[0].TopicID)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Priority > items[i-1].Priority {
			t.Errorf("items not in descending priority at %d", i)
		}
	}
}

func TestRankDeterministicTiebreak(t *testing.T) {
	// Identical candidates except topic ID: order must be by ID.
	cands := []Candidate{
		candidate("zz", 50, testNow.AddDate(0, 0, 5)),
		candidate("aa", 50, testNow.AddDate(0, 0, 5)),
		candidate("mm", 50, testNow.AddDate(0, 0, 5)),
	}
	items, err := Rank(cands, 7, CurveBalanced, testNow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	want := []string{"aa", "mm", "zz"}
	for i, w := range want {
		if items[i].TopicID != w {
			t.Errorf("items[%d] = %s, want %s", i, items[i].TopicID, w)
		}
	}
}

func TestRankCapsAtHorizon(t *testing.T) {
	var cands []Candidate
	for i := 0; i < 20; i++ {
		cands = append(cands, candidate(string(rune('a'+i)), 50, testNow.AddDate(0, 0, 5)))
	}
	items, err := Rank(cands, 3, CurveBalanced, testNow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(items) != 3*ItemsPerDay {
		t.Errorf("got %d items, want %d", len(items), 3*ItemsPerDay)
	}
}

func TestRankNoAssessmentIsLowUrgency(t *testing.T) {
	noDue := candidate("orphan", 30, time.Time{})
	withDue := candidate("due", 30, testNow.AddDate(0, 0, 5))
	items, err := Rank([]Candidate{noDue, withDue}, 7, CurveBalanced, testNow)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if items[0].TopicID != "due" {
		t.Errorf("topic with a deadline should outrank the orphan")
	}
	if items[1].DaysUntilDue != FarFutureDays {
		t.Errorf("orphan days until due = %d, want %d", items[1].DaysUntilDue, FarFutureDays)
	}
}

func TestRankRejectsBadHorizon(t *testing.T) {
	if _, err := Rank(nil, 0, CurveBalanced, testNow); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("err = %v, want ErrInvalidHorizon", err)
	}
}

func TestSelectDifficultyBands(t *testing.T) {
	tests := []struct {
		mastery float64
		want    Difficulty
	}{
		{0, DifficultyEasy},
		{35, DifficultyEasy},
		{40, DifficultyMedium},
		{59, DifficultyMedium},
		{60, DifficultyHard},
		{75, DifficultyHard},
		{80, DifficultyExamLevel},
		{100, DifficultyExamLevel},
	}
	for _, tt := range tests {
		if got := SelectDifficulty(tt.mastery); got != tt.want {
			t.Errorf("SelectDifficulty(%v) = %v, want %v", tt.mastery, got, tt.want)
		}
	}
}

func TestSelectDifficultyExhaustive(t *testing.T) {
	for m := 0.0; m <= 100; m += 0.5 {
		got := SelectDifficulty(m)
		switch got {
		case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExamLevel:
		default:
			t.Fatalf("SelectDifficulty(%v) = %q, not a known band", m, got)
		}
	}
}

func TestSelectDifficultyAdaptive(t *testing.T) {
	tests := []struct {
		name    string
		mastery float64
		trend   mastery.Trend
		days    int
		curve   Curve
		want    Difficulty
	}{
		{"declining steps down", 70, mastery.TrendDeclining, 30, CurveBalanced, DifficultyMedium},
		{"improving balanced holds", 70, mastery.TrendImproving, 30, CurveBalanced, DifficultyHard},
		{"improving aggressive steps up", 70, mastery.TrendImproving, 30, CurveAggressive, DifficultyExamLevel},
		{"exam close strong topic", 65, mastery.TrendStable, 5, CurveBalanced, DifficultyExamLevel},
		{"exam imminent weak topic", 45, mastery.TrendStable, 2, CurveBalanced, DifficultyMedium},
		{"closing gap beats trend", 45, mastery.TrendDeclining, 2, CurveBalanced, DifficultyMedium},
		{"easy cannot step down", 20, mastery.TrendDeclining, 30, CurveBalanced, DifficultyEasy},
		{"exam level cannot step up", 90, mastery.TrendImproving, 30, CurveAggressive, DifficultyExamLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectDifficultyAdaptive(tt.mastery, tt.trend, tt.days, tt.curve)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDurationForMastery(t *testing.T) {
	tests := []struct {
		mastery float64
		want    int
	}{
		{20, 30},
		{55, 45},
		{85, 60},
	}
	for _, tt := range tests {
		if got := DurationForMastery(tt.mastery); got != tt.want {
			t.Errorf("DurationForMastery(%v) = %d, want %d", tt.mastery, got, tt.want)
		}
	}
}
