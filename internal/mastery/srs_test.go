package mastery

import (
	"math"
	"testing"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{20, 1},
		{50, 3}, // 2.5 rounds up
		{60, 3},
		{80, 4},
		{100, 5},
	}
	for _, tt := range tests {
		if got := Quality(tt.score); got != tt.want {
			t.Errorf("Quality(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestNextIntervalProgression(t *testing.T) {
	// First success: 1 day.
	interval, ef := NextInterval(InitialEasiness, 0, 5)
	if interval != 1 {
		t.Fatalf("first interval = %d, want 1", interval)
	}
	// Second success: 6 days.
	interval, ef = NextInterval(ef, interval, 5)
	if interval != 6 {
		t.Fatalf("second interval = %d, want 6", interval)
	}
	// Third success multiplies by easiness.
	interval2, ef2 := NextInterval(ef, interval, 5)
	want := int(math.Round(float64(interval) * ef2))
	if interval2 != want {
		t.Errorf("third interval = %d, want %d", interval2, want)
	}
	if interval2 <= interval {
		t.Errorf("interval did not expand: %d -> %d", interval, interval2)
	}
}

func TestNextIntervalFailureResets(t *testing.T) {
	interval, _ := NextInterval(2.5, 30, 2)
	if interval != 1 {
		t.Errorf("interval after failure = %d, want 1", interval)
	}
}

func TestEasinessFloor(t *testing.T) {
	ef := InitialEasiness
	for i := 0; i < 50; i++ {
		_, ef = NextInterval(ef, 10, 0)
	}
	if ef < MinEasiness {
		t.Errorf("easiness = %v, fell below floor %v", ef, MinEasiness)
	}
	if math.Abs(ef-MinEasiness) > 1e-9 {
		t.Errorf("easiness = %v, want pinned at %v after repeated failures", ef, MinEasiness)
	}
}

func TestEasinessNudge(t *testing.T) {
	// Perfect recall nudges easiness up by exactly 0.1.
	_, ef := NextInterval(2.5, 6, 5)
	if math.Abs(ef-2.6) > 1e-9 {
		t.Errorf("easiness after q=5 = %v, want 2.6", ef)
	}
	// Quality 4: 2.5 + (0.1 - 1*(0.08 + 1*0.02)) = 2.5.
	_, ef = NextInterval(2.5, 6, 4)
	if math.Abs(ef-2.5) > 1e-9 {
		t.Errorf("easiness after q=4 = %v, want 2.5", ef)
	}
	// Quality 3: 2.5 + (0.1 - 2*(0.08 + 2*0.02)) = 2.36.
	_, ef = NextInterval(2.5, 6, 3)
	if math.Abs(ef-2.36) > 1e-9 {
		t.Errorf("easiness after q=3 = %v, want 2.36", ef)
	}
}
