package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

var weekStart = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // a Monday

func slotAt(day int, hour, durationMin int) timeslot.FreeSlot {
	start := weekStart.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
	return timeslot.FreeSlot{
		Start:       start,
		End:         start.Add(time.Duration(durationMin) * time.Minute),
		DurationMin: durationMin,
	}
}

func item(topicID, courseID string, prio float64, durationMin int, diff priority.Difficulty) priority.StudyItem {
	return priority.StudyItem{
		TopicID:     topicID,
		TopicName:   "Topic " + topicID,
		CourseID:    courseID,
		DurationMin: durationMin,
		Difficulty:  diff,
		Priority:    prio,
	}
}

func testConstraints() Constraints {
	c := DefaultConstraints()
	c.EarliestMin = 0
	c.LatestMin = 0
	return c
}

func TestAssignPlacesItemsAtSlotStarts(t *testing.T) {
	items := []priority.StudyItem{
		item("a", "c1", 0.9, 45, priority.DifficultyMedium),
		item("b", "c1", 0.4, 45, priority.DifficultyMedium),
	}
	slots := []timeslot.FreeSlot{slotAt(0, 18, 240)}

	res, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 2 || res.UnscheduledCount() != 0 {
		t.Fatalf("tasks = %d, unscheduled = %d", len(res.Tasks), res.UnscheduledCount())
	}
	// Higher priority lands first; second starts after duration + break.
	if res.Tasks[0].TopicID != "a" {
		t.Errorf("first task = %s, want a", res.Tasks[0].TopicID)
	}
	if !res.Tasks[0].Start.Equal(slots[0].Start) {
		t.Errorf("first start = %v, want slot start", res.Tasks[0].Start)
	}
	wantSecond := slots[0].Start.Add(55 * time.Minute) // 45 + 10 break
	if !res.Tasks[1].Start.Equal(wantSecond) {
		t.Errorf("second start = %v, want %v", res.Tasks[1].Start, wantSecond)
	}
	for _, task := range res.Tasks {
		if task.Status != StatusScheduled {
			t.Errorf("task %s status = %s, want scheduled", task.TopicID, task.Status)
		}
	}
}

func TestAssignDeterministic(t *testing.T) {
	items := []priority.StudyItem{
		item("c", "c1", 0.5, 45, priority.DifficultyMedium),
		item("a", "c2", 0.5, 45, priority.DifficultyMedium),
		item("b", "c3", 0.5, 30, priority.DifficultyEasy),
	}
	slots := []timeslot.FreeSlot{slotAt(0, 18, 120), slotAt(1, 18, 120)}

	first, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	second, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign again: %v", err)
	}

	if len(first.Tasks) != len(second.Tasks) {
		t.Fatalf("task counts differ: %d vs %d", len(first.Tasks), len(second.Tasks))
	}
	starts1 := make(map[string]time.Time)
	for _, task := range first.Tasks {
		starts1[task.TopicID] = task.Start
	}
	for _, task := range second.Tasks {
		if !starts1[task.TopicID].Equal(task.Start) {
			t.Errorf("topic %s placed at %v then %v", task.TopicID, starts1[task.TopicID], task.Start)
		}
	}
}

func TestAssignRespectsDailyCap(t *testing.T) {
	c := testConstraints()
	c.MaxHoursPerDay = 1.0

	items := []priority.StudyItem{
		item("a", "c1", 0.9, 45, priority.DifficultyMedium),
		item("b", "c1", 0.8, 45, priority.DifficultyMedium),
	}
	slots := []timeslot.FreeSlot{slotAt(0, 9, 240)}

	res, err := Assign(items, slots, c, DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 1 || res.UnscheduledCount() != 1 {
		t.Fatalf("tasks = %d, unscheduled = %d; cap of 60min fits one 45min task", len(res.Tasks), res.UnscheduledCount())
	}
	if res.Unscheduled[0].TopicID != "b" {
		t.Errorf("unscheduled = %s, want the lower-priority b", res.Unscheduled[0].TopicID)
	}
}

func TestAssignOversizedItemReported(t *testing.T) {
	c := testConstraints()
	c.MaxBlockMin = 180

	items := []priority.StudyItem{item("big", "c1", 0.9, 120, priority.DifficultyHard)}
	slots := []timeslot.FreeSlot{slotAt(0, 9, 60), slotAt(1, 9, 90)}

	res, err := Assign(items, slots, c, DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 0 || res.UnscheduledCount() != 1 {
		t.Fatalf("oversized item must be reported unscheduled, got tasks=%d unscheduled=%d",
			len(res.Tasks), res.UnscheduledCount())
	}
}

func TestAssignMaxBlocksPerDay(t *testing.T) {
	c := testConstraints()
	c.MaxBlocksPerDay = 2
	c.MaxHoursPerDay = 8

	var items []priority.StudyItem
	for i := 0; i < 4; i++ {
		items = append(items, item(fmt.Sprintf("t%d", i), "c1", 0.5, 30, priority.DifficultyEasy))
	}
	slots := []timeslot.FreeSlot{slotAt(0, 9, 480)}

	res, err := Assign(items, slots, c, DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 2 {
		t.Errorf("tasks = %d, want 2 (block limit)", len(res.Tasks))
	}
}

func TestAssignHardItemsPreferFocusHours(t *testing.T) {
	items := []priority.StudyItem{item("hard", "c1", 0.5, 45, priority.DifficultyExamLevel)}
	slots := []timeslot.FreeSlot{slotAt(0, 19, 120), slotAt(0, 10, 120)}

	res, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(res.Tasks))
	}
	if got := res.Tasks[0].Start.Hour(); got != 10 {
		t.Errorf("exam-level task placed at %d:00, want the 10:00 focus slot", got)
	}
}

func TestAssignEasyItemsLeanEvening(t *testing.T) {
	items := []priority.StudyItem{item("easy", "c1", 0.5, 45, priority.DifficultyEasy)}
	slots := []timeslot.FreeSlot{slotAt(0, 10, 120), slotAt(0, 19, 120)}

	res, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := res.Tasks[0].Start.Hour(); got != 19 {
		t.Errorf("easy task placed at %d:00, want the 19:00 slot", got)
	}
}

func TestAssignOversizedSlotKeepsUtilizationBonus(t *testing.T) {
	// The 180-minute slot leaves room for further preferred blocks, so
	// it is not penalized against the snug 45-minute slot.
	items := []priority.StudyItem{item("a", "c1", 0.5, 30, priority.DifficultyEasy)}
	slots := []timeslot.FreeSlot{slotAt(0, 16, 45), slotAt(0, 18, 180)}

	res, err := Assign(items, slots, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(res.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(res.Tasks))
	}
	if got := res.Tasks[0].Start.Hour(); got != 18 {
		t.Errorf("task placed at %d:00, want the 18:00 slot with reusable leftover", got)
	}
}

func TestAssignCourseVariety(t *testing.T) {
	existing := []Task{{
		ID: "prev", TopicID: "done", CourseID: "c1",
		DurationMin: 45, Status: StatusScheduled,
		Start: weekStart.Add(17 * time.Hour),
		End:   weekStart.Add(17*time.Hour + 45*time.Minute),
	}}
	tasks := []Task{
		NewTask(item("same", "c1", 0.5, 45, priority.DifficultyMedium), TaskPractice),
		NewTask(item("other", "c2", 0.5, 45, priority.DifficultyMedium), TaskPractice),
	}
	slots := []timeslot.FreeSlot{slotAt(0, 19, 60)}

	res, err := PlaceTasks(tasks, slots, existing, testConstraints(), DefaultWeights())
	if err != nil {
		t.Fatalf("PlaceTasks: %v", err)
	}
	if len(res.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1 (slot fits one)", len(res.Tasks))
	}
	if res.Tasks[0].CourseID != "c2" {
		t.Errorf("placed course = %s, want c2 (variety over c1 after a c1 block)", res.Tasks[0].CourseID)
	}
}

func TestPlaceTasksCountsExistingTowardCap(t *testing.T) {
	c := testConstraints()
	c.MaxHoursPerDay = 1.0

	existing := []Task{{
		ID: "frozen", TopicID: "done", CourseID: "c1",
		DurationMin: 45, Status: StatusScheduled,
		Start: weekStart.Add(9 * time.Hour),
		End:   weekStart.Add(9*time.Hour + 45*time.Minute),
	}}
	tasks := []Task{NewTask(item("new", "c1", 0.5, 45, priority.DifficultyMedium), TaskPractice)}
	slots := []timeslot.FreeSlot{slotAt(0, 18, 120)}

	res, err := PlaceTasks(tasks, slots, existing, c, DefaultWeights())
	if err != nil {
		t.Fatalf("PlaceTasks: %v", err)
	}
	if len(res.Tasks) != 0 || len(res.Unscheduled) != 1 {
		t.Errorf("existing 45min + new 45min exceeds 60min cap; got %d placed", len(res.Tasks))
	}
}

func TestAssignInvariantDailyCap(t *testing.T) {
	c := testConstraints()
	var items []priority.StudyItem
	for i := 0; i < 30; i++ {
		items = append(items, item(fmt.Sprintf("t%02d", i), fmt.Sprintf("c%d", i%3), float64(30-i)/30.0, 30+15*(i%3), priority.DifficultyMedium))
	}
	var slots []timeslot.FreeSlot
	for d := 0; d < 7; d++ {
		slots = append(slots, slotAt(d, 9, 180), slotAt(d, 18, 180))
	}

	res, err := Assign(items, slots, c, DefaultWeights())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	perDay := make(map[string]int)
	for _, task := range res.Tasks {
		perDay[task.Day().Format("2006-01-02")] += task.DurationMin
	}
	for day, mins := range perDay {
		if mins > c.DailyCapMin() {
			t.Errorf("day %s booked %dmin, cap %dmin", day, mins, c.DailyCapMin())
		}
	}
	if len(res.Tasks)+res.UnscheduledCount() != len(items) {
		t.Errorf("tasks %d + unscheduled %d != items %d", len(res.Tasks), res.UnscheduledCount(), len(items))
	}
}

func TestAssignRejectsNonPositiveDuration(t *testing.T) {
	items := []priority.StudyItem{item("bad", "c1", 0.5, 0, priority.DifficultyEasy)}
	if _, err := Assign(items, nil, testConstraints(), DefaultWeights()); err == nil {
		t.Error("want error for zero duration")
	}
}
