package replan

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func testEnv() Env {
	var windows []timeslot.Window
	for d := time.Sunday; d <= time.Saturday; d++ {
		windows = append(windows, timeslot.Window{Day: d, StartMin: 9 * 60, EndMin: 21 * 60})
	}
	c := schedule.DefaultConstraints()
	c.EarliestMin = 0
	c.LatestMin = 0
	return Env{
		Windows:     windows,
		Constraints: c,
		Weights:     schedule.DefaultWeights(),
		Now:         monday.Add(8 * time.Hour),
	}
}

func scheduledTask(id, topicID, assessmentID string, day, hour, durationMin int, prio float64) schedule.Task {
	start := monday.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
	return schedule.Task{
		ID:           id,
		TopicID:      topicID,
		TopicName:    "Topic " + topicID,
		CourseID:     "c1",
		AssessmentID: assessmentID,
		Title:        "Practice: Topic " + topicID,
		Type:         schedule.TaskPractice,
		Difficulty:   priority.DifficultyMedium,
		DurationMin:  durationMin,
		Priority:     prio,
		Start:        start,
		End:          start.Add(time.Duration(durationMin) * time.Minute),
		Status:       schedule.StatusScheduled,
	}
}

func TestCalendarChangeDisplacesOverlapping(t *testing.T) {
	env := testEnv()
	tasks := []schedule.Task{
		scheduledTask("t1", "a", "", 0, 10, 45, 0.8),
		scheduledTask("t2", "b", "", 0, 14, 45, 0.5),
	}
	added := timeslot.BusyInterval{
		Start: monday.Add(10 * time.Hour),
		End:   monday.Add(11 * time.Hour),
	}

	out, err := CalendarChange(tasks, added, env)
	if err != nil {
		t.Fatalf("CalendarChange: %v", err)
	}
	if len(out.Notices) != 0 {
		t.Fatalf("notices = %v, expected clean reschedule", out.Notices)
	}
	var t1 schedule.Task
	for _, task := range out.Tasks {
		if task.ID == "t1" {
			t1 = task
		}
		if task.ID == "t2" && !task.Start.Equal(tasks[1].Start) {
			t.Errorf("non-overlapping task t2 moved to %v", task.Start)
		}
	}
	if t1.Status != schedule.StatusScheduled {
		t.Fatalf("t1 status = %s, want rescheduled", t1.Status)
	}
	if t1.Overlaps(added.Start, added.End) {
		t.Errorf("t1 still overlaps the new event: %v-%v", t1.Start, t1.End)
	}
}

func TestCalendarChangeNoOverlapIsNoop(t *testing.T) {
	env := testEnv()
	tasks := []schedule.Task{scheduledTask("t1", "a", "", 0, 10, 45, 0.8)}
	added := timeslot.BusyInterval{
		Start: monday.Add(15 * time.Hour),
		End:   monday.Add(16 * time.Hour),
	}
	out, err := CalendarChange(tasks, added, env)
	if err != nil {
		t.Fatalf("CalendarChange: %v", err)
	}
	if !out.Tasks[0].Start.Equal(tasks[0].Start) {
		t.Errorf("task moved without overlapping the event")
	}
}

func TestCalendarChangeNeverTouchesCompleted(t *testing.T) {
	env := testEnv()
	done := scheduledTask("done", "a", "", 0, 10, 45, 0.8)
	done.Status = schedule.StatusCompleted
	added := timeslot.BusyInterval{
		Start: monday.Add(10 * time.Hour),
		End:   monday.Add(11 * time.Hour),
	}
	out, err := CalendarChange([]schedule.Task{done}, added, env)
	if err != nil {
		t.Fatalf("CalendarChange: %v", err)
	}
	if out.Tasks[0].Status != schedule.StatusCompleted || !out.Tasks[0].Start.Equal(done.Start) {
		t.Errorf("completed task was touched: %+v", out.Tasks[0])
	}
}

func TestCalendarChangeUnplaceableSurfacesNotice(t *testing.T) {
	env := testEnv()
	// Only Monday has a window; the new event swallows the whole day.
	env.Windows = []timeslot.Window{{Day: monday.Weekday(), StartMin: 9 * 60, EndMin: 12 * 60}}
	tasks := []schedule.Task{scheduledTask("t1", "a", "", 0, 10, 45, 0.8)}
	added := timeslot.BusyInterval{
		Start: monday.Add(9 * time.Hour),
		End:   monday.Add(12 * time.Hour),
	}

	out, err := CalendarChange(tasks, added, env)
	if err != nil {
		t.Fatalf("CalendarChange: %v", err)
	}
	if len(out.Notices) != 1 {
		t.Fatalf("notices = %v, want one could-not-reschedule", out.Notices)
	}
	if out.Tasks[0].Status != schedule.StatusPending {
		t.Errorf("unplaceable task status = %s, want pending", out.Tasks[0].Status)
	}
}

func TestTaskMissedBoostsAndReschedulesSameDay(t *testing.T) {
	env := testEnv()
	env.Now = monday.Add(12 * time.Hour)
	tasks := []schedule.Task{scheduledTask("t1", "a", "", 0, 10, 45, 1.0)}

	out, err := TaskMissed(tasks, "t1", env)
	if err != nil {
		t.Fatalf("TaskMissed: %v", err)
	}
	got := out.Tasks[0]
	if got.Priority != MissedBoost {
		t.Errorf("priority = %v, want %v", got.Priority, MissedBoost)
	}
	if got.Status != schedule.StatusScheduled {
		t.Fatalf("status = %s, want rescheduled", got.Status)
	}
	if got.Start.Before(env.Now) {
		t.Errorf("rescheduled into the past: %v", got.Start)
	}
	if got.Day() != monday {
		t.Errorf("rescheduled on %v, want same day", got.Day())
	}
}

func TestTaskMissedFallsBackToNextDay(t *testing.T) {
	env := testEnv()
	env.Now = monday.Add(12 * time.Hour)
	// The rest of today is busy.
	env.Busy = []timeslot.BusyInterval{{
		Start: monday.Add(12 * time.Hour),
		End:   monday.Add(21 * time.Hour),
	}}
	tasks := []schedule.Task{scheduledTask("t1", "a", "", 0, 10, 45, 1.0)}

	out, err := TaskMissed(tasks, "t1", env)
	if err != nil {
		t.Fatalf("TaskMissed: %v", err)
	}
	got := out.Tasks[0]
	if got.Status != schedule.StatusScheduled {
		t.Fatalf("status = %s, want rescheduled", got.Status)
	}
	if got.Day() != monday.AddDate(0, 0, 1) {
		t.Errorf("rescheduled on %v, want next day", got.Day())
	}
}

func TestTaskMissedCompletedIsConflict(t *testing.T) {
	env := testEnv()
	done := scheduledTask("t1", "a", "", 0, 10, 45, 1.0)
	done.Status = schedule.StatusCompleted
	_, err := TaskMissed([]schedule.Task{done}, "t1", env)
	if !errors.Is(err, schedule.ErrTerminalTask) {
		t.Errorf("err = %v, want ErrTerminalTask", err)
	}
}

func TestTaskMissedUnknownID(t *testing.T) {
	if _, err := TaskMissed(nil, "nope", testEnv()); err == nil {
		t.Error("want error for unknown task ID")
	}
}

func TestPoorPerformanceSynthesizesDrills(t *testing.T) {
	env := testEnv()
	topic := priority.StudyItem{
		TopicID:   "weak",
		TopicName: "Weak Topic",
		CourseID:  "c1",
		Priority:  0.4,
	}

	out, err := PoorPerformance(nil, topic, 30, env)
	if err != nil {
		t.Fatalf("PoorPerformance: %v", err)
	}
	// floor((60-30)/15) + 1 = 3 drills.
	if len(out.Tasks) != 3 {
		t.Fatalf("drills = %d, want 3", len(out.Tasks))
	}
	days := make(map[string]int)
	for _, d := range out.Tasks {
		if d.Type != schedule.TaskDrill {
			t.Errorf("type = %s, want drill", d.Type)
		}
		if d.DurationMin != DrillDurationMin {
			t.Errorf("duration = %d, want %d", d.DurationMin, DrillDurationMin)
		}
		if d.Difficulty != priority.DifficultyMedium {
			t.Errorf("difficulty = %s, want medium", d.Difficulty)
		}
		if d.Status != schedule.StatusScheduled {
			t.Errorf("status = %s, want scheduled", d.Status)
		}
		days[d.Day().Format("2006-01-02")]++
	}
	// Distributed practice: one drill per day.
	for day, n := range days {
		if n != 1 {
			t.Errorf("day %s has %d drills, want 1", day, n)
		}
	}
}

func TestPoorPerformanceAboveThresholdIsNoop(t *testing.T) {
	out, err := PoorPerformance(nil, priority.StudyItem{TopicID: "ok"}, 75, testEnv())
	if err != nil {
		t.Fatalf("PoorPerformance: %v", err)
	}
	if len(out.Tasks) != 0 {
		t.Errorf("drills created for a passing score")
	}
}

func TestDeadlineChangeReschedulesAffected(t *testing.T) {
	env := testEnv()
	tasks := []schedule.Task{
		scheduledTask("t1", "x", "exam-1", 5, 10, 45, 0.1),
		scheduledTask("t2", "y", "", 2, 10, 45, 0.5),
	}
	updated := []priority.Candidate{{
		TopicID:      "x",
		TopicName:    "Topic x",
		CourseID:     "c1",
		AssessmentID: "exam-1",
		Weight:       50,
		DueDate:      env.Now.AddDate(0, 0, 2),
		Mastery: mastery.State{
			TopicID:       "x",
			Score:         40,
			Confidence:    10,
			Trend:         mastery.TrendStable,
			LastPracticed: env.Now.AddDate(0, 0, -3),
		},
	}}

	out, err := DeadlineChange(tasks, "exam-1", updated, priority.CurveBalanced, env)
	if err != nil {
		t.Fatalf("DeadlineChange: %v", err)
	}
	var t1, t2 schedule.Task
	for _, task := range out.Tasks {
		switch task.ID {
		case "t1":
			t1 = task
		case "t2":
			t2 = task
		}
	}
	if t1.Priority <= 0.1 {
		t.Errorf("t1 priority = %v, want raised by the closer deadline", t1.Priority)
	}
	if t1.Status != schedule.StatusScheduled {
		t.Errorf("t1 status = %s, want rescheduled", t1.Status)
	}
	if !t2.Start.Equal(tasks[1].Start) {
		t.Errorf("unaffected scheduled task t2 moved")
	}
}

func TestDeadlineChangeUpdatesEveryAffectedTopic(t *testing.T) {
	// More affected topics than a ranked selection would keep: the
	// lowest-scoring one must still receive its recomputed priority.
	env := testEnv()
	var updated []priority.Candidate
	for i := 0; i < ExtendedLookaheadDays*priority.ItemsPerDay+1; i++ {
		id := fmt.Sprintf("t%02d", i)
		updated = append(updated, priority.Candidate{
			TopicID:      id,
			TopicName:    "Topic " + id,
			CourseID:     "c1",
			AssessmentID: "exam-1",
			Weight:       50 - float64(i),
			DueDate:      env.Now.AddDate(0, 0, 2),
			Mastery: mastery.State{
				TopicID:       id,
				Score:         40,
				Confidence:    10,
				Trend:         mastery.TrendStable,
				LastPracticed: env.Now.AddDate(0, 0, -3),
			},
		})
	}
	last := updated[len(updated)-1]

	pending := scheduledTask("p-last", last.TopicID, "exam-1", 0, 0, 45, 0.001)
	pending.Start, pending.End = time.Time{}, time.Time{}
	pending.Status = schedule.StatusPending

	out, err := DeadlineChange([]schedule.Task{pending}, "exam-1", updated, priority.CurveBalanced, env)
	if err != nil {
		t.Fatalf("DeadlineChange: %v", err)
	}

	want, err := priority.ScoreCandidate(last, priority.CurveBalanced, env.Now)
	if err != nil {
		t.Fatalf("ScoreCandidate: %v", err)
	}
	found := false
	for _, task := range out.Tasks {
		if task.TopicID != last.TopicID {
			continue
		}
		found = true
		if task.Priority != want.Priority {
			t.Errorf("priority = %v, want %v", task.Priority, want.Priority)
		}
	}
	if !found {
		t.Fatalf("task for topic %s missing from outcome", last.TopicID)
	}
}

func TestNightlyFreezesCompletedTasks(t *testing.T) {
	env := testEnv()
	done := scheduledTask("done", "a", "", 0, 10, 60, 0.9)
	done.Status = schedule.StatusCompleted
	inProgress := scheduledTask("wip", "b", "", 0, 14, 45, 0.7)
	inProgress.Status = schedule.StatusInProgress
	stale := scheduledTask("stale", "c", "", 1, 10, 45, 0.5)

	fresh := []schedule.Task{
		schedule.NewTask(priority.StudyItem{
			TopicID: "d", TopicName: "Topic d", CourseID: "c2",
			DurationMin: 45, Difficulty: priority.DifficultyMedium, Priority: 0.6,
		}, schedule.TaskPractice),
	}

	out, err := Nightly([]schedule.Task{done, inProgress, stale}, fresh, env, 7)
	if err != nil {
		t.Fatalf("Nightly: %v", err)
	}

	byID := make(map[string]schedule.Task)
	for _, task := range out.Tasks {
		byID[task.ID] = task
	}
	gotDone, ok := byID["done"]
	if !ok || gotDone.Status != schedule.StatusCompleted || !gotDone.Start.Equal(done.Start) {
		t.Errorf("completed task not preserved with its slot: %+v", gotDone)
	}
	gotWip, ok := byID["wip"]
	if !ok || gotWip.Status != schedule.StatusInProgress || !gotWip.Start.Equal(inProgress.Start) {
		t.Errorf("in-progress task not frozen: %+v", gotWip)
	}
	if _, ok := byID["stale"]; ok {
		t.Errorf("superseded task survived the regeneration")
	}
	placedFresh := false
	for _, task := range out.Tasks {
		if task.TopicID == "d" && task.Status == schedule.StatusScheduled {
			placedFresh = true
			if task.Overlaps(done.Start, done.End) || task.Overlaps(inProgress.Start, inProgress.End) {
				t.Errorf("fresh task double-books a frozen slot")
			}
		}
	}
	if !placedFresh {
		t.Errorf("fresh task was not scheduled")
	}
}

func TestHandleDispatch(t *testing.T) {
	env := testEnv()
	tasks := []schedule.Task{scheduledTask("t1", "a", "", 0, 10, 45, 1.0)}

	out, err := Handle(Request{
		Kind:   TriggerTaskMissed,
		Missed: &MissedTask{TaskID: "t1"},
	}, tasks, env)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if out.Tasks[0].Priority != MissedBoost {
		t.Errorf("dispatch did not reach TaskMissed")
	}

	if _, err := Handle(Request{Kind: "bogus"}, tasks, env); !errors.Is(err, ErrUnknownTrigger) {
		t.Errorf("err = %v, want ErrUnknownTrigger", err)
	}
	if _, err := Handle(Request{Kind: TriggerCalendarChange}, tasks, env); !errors.Is(err, ErrUnknownTrigger) {
		t.Errorf("missing payload: err = %v, want ErrUnknownTrigger", err)
	}
}

func TestRescheduleKeepsDailyCapInvariant(t *testing.T) {
	env := testEnv()
	var tasks []schedule.Task
	// Three scheduled tasks on Tuesday already near the 4h cap.
	tasks = append(tasks,
		scheduledTask("a", "a", "", 1, 9, 90, 0.9),
		scheduledTask("b", "b", "", 1, 11, 90, 0.8),
		scheduledTask("t1", "x", "", 0, 10, 60, 0.7),
	)
	// Monday becomes fully busy: t1 must land somewhere legal.
	added := timeslot.BusyInterval{Start: monday.Add(9 * time.Hour), End: monday.Add(21 * time.Hour)}

	out, err := CalendarChange(tasks, added, env)
	if err != nil {
		t.Fatalf("CalendarChange: %v", err)
	}
	perDay := make(map[string]int)
	for _, task := range out.Tasks {
		if task.Status == schedule.StatusScheduled {
			perDay[task.Day().Format("2006-01-02")] += task.DurationMin
		}
	}
	for day, mins := range perDay {
		if mins > env.Constraints.DailyCapMin() {
			t.Errorf("day %s booked %dmin, cap %dmin", day, mins, env.Constraints.DailyCapMin())
		}
	}
}
