package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
)

func pendingTask(topicID string) Task {
	return NewTask(priority.StudyItem{
		TopicID:     topicID,
		TopicName:   "Topic " + topicID,
		CourseID:    "course-1",
		DurationMin: 45,
		Difficulty:  priority.DifficultyMedium,
		Priority:    0.5,
	}, TaskPractice)
}

func TestTaskLifecycle(t *testing.T) {
	task := pendingTask("t1")
	steps := []Status{StatusScheduled, StatusInProgress, StatusCompleted}
	for _, s := range steps {
		if err := task.Transition(s); err != nil {
			t.Fatalf("transition to %s: %v", s, err)
		}
	}
	if task.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", task.Status)
	}
}

func TestTaskTerminalStatesReject(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusSkipped} {
		task := pendingTask("t1")
		task.Status = terminal
		err := task.Transition(StatusPending)
		if !errors.Is(err, ErrTerminalTask) {
			t.Errorf("from %s: err = %v, want ErrTerminalTask", terminal, err)
		}
	}
}

func TestTaskIllegalTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusInProgress},
		{StatusPending, StatusSkipped},
		{StatusScheduled, StatusCompleted},
	}
	for _, tt := range tests {
		task := pendingTask("t1")
		task.Status = tt.from
		if err := task.Transition(tt.to); !errors.Is(err, ErrBadTransition) {
			t.Errorf("%s -> %s: err = %v, want ErrBadTransition", tt.from, tt.to, err)
		}
	}
}

func TestInvalidateClearsSlot(t *testing.T) {
	task := pendingTask("t1")
	task.Status = StatusScheduled
	task.Start = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	task.End = task.Start.Add(45 * time.Minute)

	if err := task.Invalidate(); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if task.Status != StatusPending {
		t.Errorf("status = %s, want pending", task.Status)
	}
	if !task.Start.IsZero() || !task.End.IsZero() {
		t.Errorf("slot not cleared: %v-%v", task.Start, task.End)
	}
}

func TestInvalidatePendingIsNoop(t *testing.T) {
	task := pendingTask("t1")
	if err := task.Invalidate(); err != nil {
		t.Fatalf("Invalidate pending: %v", err)
	}
	if task.Status != StatusPending {
		t.Errorf("status = %s, want pending", task.Status)
	}
}

func TestTaskOverlaps(t *testing.T) {
	task := pendingTask("t1")
	task.Start = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	task.End = task.Start.Add(45 * time.Minute)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", task.Start.Add(10 * time.Minute), task.Start.Add(20 * time.Minute), true},
		{"straddles start", task.Start.Add(-10 * time.Minute), task.Start.Add(10 * time.Minute), true},
		{"touches end", task.End, task.End.Add(30 * time.Minute), false},
		{"before", task.Start.Add(-time.Hour), task.Start.Add(-30 * time.Minute), false},
	}
	for _, tt := range tests {
		if got := task.Overlaps(tt.start, tt.end); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}

	var unplaced Task
	if unplaced.Overlaps(task.Start, task.End) {
		t.Error("unplaced task should never overlap")
	}
}

func TestNewTaskTitles(t *testing.T) {
	item := priority.StudyItem{TopicID: "t", TopicName: "Integrals", DurationMin: 30}
	if got := NewTask(item, TaskPractice).Title; got != "Practice: Integrals" {
		t.Errorf("practice title = %q", got)
	}
	if got := NewTask(item, TaskReview).Title; got != "Review: Integrals" {
		t.Errorf("review title = %q", got)
	}
}
