package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/timeslot"
)

func allDayWindows() []timeslot.Window {
	var ws []timeslot.Window
	for d := time.Sunday; d <= time.Saturday; d++ {
		ws = append(ws, timeslot.Window{Day: d, StartMin: 9 * 60, EndMin: 21 * 60})
	}
	return ws
}

func scheduledAt(id string, day, hour, durationMin int, prio float64) Task {
	start := weekStart.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
	return Task{
		ID:          id,
		TopicID:     id,
		CourseID:    "c1",
		DurationMin: durationMin,
		Priority:    prio,
		Start:       start,
		End:         start.Add(time.Duration(durationMin) * time.Minute),
		Status:      StatusScheduled,
	}
}

func dayMinutes(tasks []Task) map[string]int {
	perDay := make(map[string]int)
	for _, t := range tasks {
		if t.Status == StatusScheduled {
			perDay[t.Start.Format("2006-01-02")] += t.DurationMin
		}
	}
	return perDay
}

func TestBalanceNoopWhenBalanced(t *testing.T) {
	// Every day near 50% of the 4h cap: nothing overloaded, nothing under.
	var tasks []Task
	for d := 0; d < 7; d++ {
		tasks = append(tasks, scheduledAt(fmt.Sprintf("t%d", d), d, 10, 120, 0.5))
	}
	out, err := Balance(tasks, weekStart, allDayWindows(), nil, testConstraints())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	for i := range tasks {
		if !out[i].Start.Equal(tasks[i].Start) {
			t.Errorf("task %s moved on a balanced week", tasks[i].ID)
		}
	}
}

func TestBalanceMovesLowestPriorityFirst(t *testing.T) {
	// Day 0 fully booked at the 240min cap; day 1 empty.
	tasks := []Task{
		scheduledAt("high", 0, 9, 60, 0.9),
		scheduledAt("mid1", 0, 11, 60, 0.6),
		scheduledAt("mid2", 0, 13, 60, 0.5),
		scheduledAt("low", 0, 15, 60, 0.1),
	}
	out, err := Balance(tasks, weekStart, allDayWindows(), nil, testConstraints())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	perDay := dayMinutes(out)
	day0 := weekStart.Format("2006-01-02")
	day1 := weekStart.AddDate(0, 0, 1).Format("2006-01-02")
	if perDay[day0] != 180 || perDay[day1] != 60 {
		t.Fatalf("day0 = %d, day1 = %d; want one 60min move", perDay[day0], perDay[day1])
	}
	for _, task := range out {
		if task.ID == "low" && task.Start.Format("2006-01-02") != day1 {
			t.Errorf("lowest-priority task stayed on %s", task.Start.Format("2006-01-02"))
		}
		if task.ID == "high" && task.Start.Format("2006-01-02") != day0 {
			t.Errorf("highest-priority task moved")
		}
	}
}

func TestBalanceRestoresCap(t *testing.T) {
	// An over-cap day (as can exist transiently mid-replan) must come
	// back under the cap when a feasible redistribution exists.
	tasks := []Task{
		scheduledAt("a", 0, 9, 80, 0.9),
		scheduledAt("b", 0, 11, 80, 0.7),
		scheduledAt("c", 0, 13, 80, 0.5),
		scheduledAt("d", 0, 15, 50, 0.2),
	}
	c := testConstraints()
	out, err := Balance(tasks, weekStart, allDayWindows(), nil, c)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	for day, mins := range dayMinutes(out) {
		if mins > c.DailyCapMin() {
			t.Errorf("day %s at %dmin, cap %dmin", day, mins, c.DailyCapMin())
		}
	}
}

func TestBalanceTargetRespectsBusyTime(t *testing.T) {
	// Day 1 is fully busy: tasks cannot move there even though it is empty.
	tasks := []Task{
		scheduledAt("a", 0, 9, 60, 0.9),
		scheduledAt("b", 0, 11, 60, 0.6),
		scheduledAt("c", 0, 13, 60, 0.4),
		scheduledAt("d", 0, 15, 60, 0.2),
	}
	day1 := weekStart.AddDate(0, 0, 1)
	busy := []timeslot.BusyInterval{{Start: day1.Add(8 * time.Hour), End: day1.Add(22 * time.Hour)}}

	// Only days 0 and 1 have windows this week.
	windows := []timeslot.Window{
		{Day: weekStart.Weekday(), StartMin: 9 * 60, EndMin: 21 * 60},
		{Day: day1.Weekday(), StartMin: 9 * 60, EndMin: 21 * 60},
	}
	out, err := Balance(tasks, weekStart, windows, busy, testConstraints())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	for _, task := range out {
		if task.Start.Format("2006-01-02") == day1.Format("2006-01-02") {
			t.Errorf("task %s moved onto a fully busy day", task.ID)
		}
	}
}

func TestBalanceTargetRespectsFrozenTasks(t *testing.T) {
	// Day 0 overloaded; day 1 underutilized but holding an in-progress
	// block at 18:00. Moved tasks must land around it, never on it.
	wip := scheduledAt("wip", 1, 18, 60, 0.5)
	wip.Status = StatusInProgress
	tasks := []Task{
		wip,
		scheduledAt("a", 0, 9, 60, 0.9),
		scheduledAt("b", 0, 11, 60, 0.7),
		scheduledAt("c", 0, 13, 60, 0.5),
		scheduledAt("d", 0, 15, 60, 0.3),
		scheduledAt("e", 0, 17, 60, 0.1),
	}
	c := testConstraints()
	out, err := Balance(tasks, weekStart, allDayWindows(), nil, c)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	if !out[0].Start.Equal(wip.Start) || out[0].Status != StatusInProgress {
		t.Fatalf("in-progress task was touched: %+v", out[0])
	}
	perDay := make(map[string]int)
	for _, task := range out {
		if task.Start.IsZero() {
			continue
		}
		perDay[task.Start.Format("2006-01-02")] += task.DurationMin
		if task.ID != "wip" && task.Overlaps(wip.Start, wip.End) {
			t.Errorf("task %s at %v overlaps the in-progress block", task.ID, task.Start)
		}
	}
	for day, mins := range perDay {
		if mins > c.DailyCapMin() {
			t.Errorf("day %s at %dmin counting frozen work, cap %dmin", day, mins, c.DailyCapMin())
		}
	}
}

func TestBalanceTargetRespectsBlockLimit(t *testing.T) {
	// Day 1 is under the minute threshold but already at the block
	// limit, so it cannot take more work.
	c := testConstraints()
	c.MaxBlocksPerDay = 2

	wip1 := scheduledAt("wip1", 1, 9, 25, 0.5)
	wip1.Status = StatusInProgress
	wip2 := scheduledAt("wip2", 1, 10, 25, 0.5)
	wip2.Status = StatusInProgress
	tasks := []Task{
		wip1, wip2,
		scheduledAt("a", 0, 9, 80, 0.9),
		scheduledAt("b", 0, 11, 80, 0.6),
		scheduledAt("c", 0, 13, 80, 0.3),
		scheduledAt("d", 0, 15, 80, 0.1),
	}
	day1 := weekStart.AddDate(0, 0, 1)
	windows := []timeslot.Window{
		{Day: weekStart.Weekday(), StartMin: 9 * 60, EndMin: 21 * 60},
		{Day: day1.Weekday(), StartMin: 9 * 60, EndMin: 21 * 60},
	}
	out, err := Balance(tasks, weekStart, windows, nil, c)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	for _, task := range out {
		if task.Status == StatusScheduled && task.Start.Format("2006-01-02") == day1.Format("2006-01-02") {
			t.Errorf("task %s moved onto a day already at %d blocks", task.ID, c.MaxBlocksPerDay)
		}
	}
}

func TestBalanceIgnoresTerminalTasks(t *testing.T) {
	done := scheduledAt("done", 0, 9, 60, 0.9)
	done.Status = StatusCompleted
	tasks := []Task{
		done,
		scheduledAt("a", 0, 11, 60, 0.6),
	}
	out, err := Balance(tasks, weekStart, allDayWindows(), nil, testConstraints())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !out[0].Start.Equal(done.Start) || out[0].Status != StatusCompleted {
		t.Errorf("completed task was touched: %+v", out[0])
	}
}

func TestBreakdown(t *testing.T) {
	tasks := []Task{
		scheduledAt("a", 0, 9, 60, 0.9),
		scheduledAt("b", 0, 11, 30, 0.5),
		scheduledAt("c", 2, 9, 90, 0.4),
	}
	got := Breakdown(tasks)
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	if got[0].Hours != 1.5 || got[0].Blocks != 2 {
		t.Errorf("day 0 = %+v, want 1.5h in 2 blocks", got[0])
	}
	if got[1].Hours != 1.5 || got[1].Blocks != 1 {
		t.Errorf("day 2 = %+v, want 1.5h in 1 block", got[1])
	}
	if TotalHours(tasks) != 3.0 {
		t.Errorf("TotalHours = %v, want 3.0", TotalHours(tasks))
	}
}
