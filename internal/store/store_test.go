package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Courses()

	c := Course{ID: uuid.NewString(), Name: "Linear Algebra", Code: "MATH201"}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Linear Algebra" || got.Code != "MATH201" {
		t.Fatalf("get = %+v", got)
	}

	if err := repo.Archive(ctx, c.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	courses, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range courses {
		if got.ID == c.ID {
			t.Error("archived course still listed")
		}
	}

	if err := repo.Archive(ctx, "missing"); err == nil {
		t.Error("expected error archiving unknown course")
	}
}

func TestTopicsOrderedByPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Topics()

	courseID := uuid.NewString()
	for i, name := range []string{"Vectors", "Matrices", "Eigenvalues"} {
		err := repo.Create(ctx, Topic{
			ID:       uuid.NewString(),
			CourseID: courseID,
			Name:     name,
			Position: 2 - i, // insert in reverse order
		})
		if err != nil {
			t.Fatalf("create topic: %v", err)
		}
	}

	topics, err := repo.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("len = %d, want 3", len(topics))
	}
	if topics[0].Name != "Eigenvalues" || topics[2].Name != "Vectors" {
		t.Errorf("not ordered by position: %v, %v", topics[0].Name, topics[2].Name)
	}
}

func TestAssessmentUpcomingAndDueDateShift(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Assessments()
	now := time.Now().UTC()

	past := Assessment{
		ID: uuid.NewString(), CourseID: "c1", Title: "Quiz 1", Kind: "quiz",
		Weight: 10, DueDate: now.AddDate(0, 0, -3), TopicIDs: []string{"t1"},
	}
	soon := Assessment{
		ID: uuid.NewString(), CourseID: "c1", Title: "Midterm", Kind: "exam",
		Weight: 30, DueDate: now.AddDate(0, 0, 5), TopicIDs: []string{"t1", "t2"},
	}
	far := Assessment{
		ID: uuid.NewString(), CourseID: "c1", Title: "Final", Kind: "exam",
		Weight: 40, DueDate: now.AddDate(0, 0, 40), TopicIDs: []string{"t1", "t2", "t3"},
	}
	for _, a := range []Assessment{past, far, soon} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create %s: %v", a.Title, err)
		}
	}

	up, err := repo.Upcoming(ctx, now)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(up) != 2 {
		t.Fatalf("upcoming len = %d, want 2", len(up))
	}
	if up[0].Title != "Midterm" || up[1].Title != "Final" {
		t.Errorf("not ordered by due date: %v, %v", up[0].Title, up[1].Title)
	}
	if len(up[1].TopicIDs) != 3 {
		t.Errorf("topic ids did not round-trip: %v", up[1].TopicIDs)
	}

	newDue := now.AddDate(0, 0, 2)
	if err := repo.SetDueDate(ctx, far.ID, newDue); err != nil {
		t.Fatalf("set due date: %v", err)
	}
	got, err := repo.Get(ctx, far.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.DueDate.Equal(newDue) {
		t.Errorf("due date = %v, want %v", got.DueDate, newDue)
	}
}

func TestMasteryPutIsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Mastery()

	got, err := repo.Get(ctx, "topic-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil state before first put")
	}

	now := time.Now().UTC().Truncate(time.Second)
	st := mastery.State{
		TopicID:       "topic-1",
		Score:         62.5,
		Confidence:    10,
		Trend:         mastery.TrendImproving,
		PracticeCount: 3,
		QuizCount:     2,
		LastPracticed: now,
		NextReview:    now.AddDate(0, 0, 6),
		IntervalDays:  6,
		Easiness:      2.6,
	}
	if err := repo.Put(ctx, st); err != nil {
		t.Fatalf("put: %v", err)
	}

	st.Score = 70
	st.QuizCount = 3
	if err := repo.Put(ctx, st); err != nil {
		t.Fatalf("put (overwrite): %v", err)
	}

	got, err = repo.Get(ctx, "topic-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 70 || got.QuizCount != 3 || got.IntervalDays != 6 {
		t.Errorf("state did not overwrite: %+v", got)
	}
	if got.Trend != mastery.TrendImproving {
		t.Errorf("trend = %s, want improving", got.Trend)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("all len = %d, want 1 (upsert, not insert)", len(all))
	}
}

func testTask(topicID string, start time.Time, status schedule.Status) schedule.Task {
	t := schedule.Task{
		ID:          uuid.NewString(),
		TopicID:     topicID,
		TopicName:   "Topic " + topicID,
		CourseID:    "c1",
		Title:       "Practice: Topic " + topicID,
		Type:        schedule.TaskPractice,
		Difficulty:  priority.DifficultyMedium,
		DurationMin: 45,
		Priority:    0.5,
		Status:      status,
	}
	if !start.IsZero() {
		t.Start = start
		t.End = start.Add(45 * time.Minute)
	}
	return t
}

func TestTaskRoundTripAndBetween(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Tasks()
	base := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	inside := testTask("a", base, schedule.StatusScheduled)
	outside := testTask("b", base.AddDate(0, 0, 10), schedule.StatusScheduled)
	for _, task := range []schedule.Task{inside, outside} {
		if err := repo.Upsert(ctx, task); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	got, err := repo.Between(ctx, base.AddDate(0, 0, -1), base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(got) != 1 || got[0].ID != inside.ID {
		t.Fatalf("between = %v", got)
	}
	if got[0].TopicName != "Topic a" || got[0].Difficulty != priority.DifficultyMedium {
		t.Errorf("task did not round-trip: %+v", got[0])
	}
	if !got[0].Start.Equal(inside.Start) || !got[0].End.Equal(inside.End) {
		t.Errorf("slot did not round-trip: %v-%v", got[0].Start, got[0].End)
	}
}

func TestReplaceActiveKeepsFrozenRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Tasks()
	base := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	done := testTask("a", base, schedule.StatusCompleted)
	stale := testTask("b", base.Add(2*time.Hour), schedule.StatusScheduled)
	for _, task := range []schedule.Task{done, stale} {
		if err := repo.Upsert(ctx, task); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	fresh := testTask("c", base.Add(4*time.Hour), schedule.StatusScheduled)
	if err := repo.ReplaceActive(ctx, []schedule.Task{fresh}); err != nil {
		t.Fatalf("replace active: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	ids := make(map[string]schedule.Status, len(all))
	for _, task := range all {
		ids[task.ID] = task.Status
	}
	if ids[done.ID] != schedule.StatusCompleted {
		t.Error("completed row lost by replace")
	}
	if _, ok := ids[stale.ID]; ok {
		t.Error("stale scheduled row survived replace")
	}
	if ids[fresh.ID] != schedule.StatusScheduled {
		t.Error("fresh row missing after replace")
	}
}

func TestSetStatusEnforcesLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Tasks()
	base := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	task := testTask("a", base, schedule.StatusScheduled)
	if err := repo.Upsert(ctx, task); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.SetStatus(ctx, task.ID, schedule.StatusInProgress); err != nil {
		t.Fatalf("scheduled -> in_progress: %v", err)
	}
	if err := repo.SetStatus(ctx, task.ID, schedule.StatusCompleted); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}
	if err := repo.SetStatus(ctx, task.ID, schedule.StatusPending); err == nil {
		t.Error("expected error reopening a completed task")
	}
}

func TestBusyBetweenMatchesOverlap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Busy()
	base := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	blocks := []BusyBlock{
		{ID: uuid.NewString(), Label: "Lecture", Source: "calendar",
			Interval: timeslot.BusyInterval{Start: base.Add(9 * time.Hour), End: base.Add(11 * time.Hour)}},
		{ID: uuid.NewString(), Label: "Straddles window start", Source: "manual",
			Interval: timeslot.BusyInterval{Start: base.Add(-1 * time.Hour), End: base.Add(1 * time.Hour)}},
		{ID: uuid.NewString(), Label: "Next week", Source: "manual",
			Interval: timeslot.BusyInterval{Start: base.AddDate(0, 0, 9), End: base.AddDate(0, 0, 9).Add(time.Hour)}},
	}
	for _, b := range blocks {
		if err := repo.Add(ctx, b); err != nil {
			t.Fatalf("add %s: %v", b.Label, err)
		}
	}

	got, err := repo.Between(ctx, base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("between len = %d, want 2 (straddling block included)", len(got))
	}
	if got[0].Label != "Straddles window start" {
		t.Errorf("not ordered by start: %v", got[0].Label)
	}

	if err := repo.Add(ctx, BusyBlock{ID: uuid.NewString(),
		Interval: timeslot.BusyInterval{Start: base.Add(time.Hour), End: base}}); err == nil {
		t.Error("expected error for inverted interval")
	}
}

func TestQuizEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	scores := []float64{40, 55, 70}
	for _, sc := range scores {
		err := repo.AppendQuiz(ctx, QuizResult{
			TopicID: "topic-1", Score: sc, QuestionCount: 10, Alpha: 0.3,
		})
		if err != nil {
			t.Fatalf("append quiz: %v", err)
		}
	}
	if err := repo.AppendQuiz(ctx, QuizResult{TopicID: "other", Score: 90, Alpha: 0.3}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	got, err := repo.RecentQuizzes(ctx, "topic-1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent len = %d, want 2", len(got))
	}
	if got[0].Score != 70 || got[1].Score != 55 {
		t.Errorf("not newest first: %v, %v", got[0].Score, got[1].Score)
	}

	if err := repo.AppendReplan(ctx, ReplanRecord{
		Trigger:      "nightly",
		TasksTouched: 4,
		Notices:      []string{"could not reschedule task x"},
	}); err != nil {
		t.Fatalf("append replan: %v", err)
	}
}
