// Package replan reacts to schedule-invalidating events. Every entry
// point takes the current task set as a value and returns a new one;
// the caller owns persistence and must not run two replans for the
// same user concurrently (both read then rewrite the same task set).
// Completed tasks are never touched on any path.
package replan

import (
	"fmt"
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Trigger identifies the event that invalidated part of the schedule.
type Trigger string

const (
	TriggerCalendarChange  Trigger = "calendar_change"
	TriggerTaskMissed      Trigger = "task_missed"
	TriggerPoorPerformance Trigger = "poor_performance"
	TriggerDeadlineChange  Trigger = "deadline_change"
)

const (
	// DefaultLookaheadDays bounds targeted rescheduling after a
	// calendar change.
	DefaultLookaheadDays = 7

	// ExtendedLookaheadDays is used for deadline changes, which can
	// shift work much further out.
	ExtendedLookaheadDays = 14

	// MissedBoost is the multiplicative priority bump a missed task
	// earns before rescheduling.
	MissedBoost = 1.2

	// MasteryThreshold is the quiz score under which remedial drills
	// are generated.
	MasteryThreshold = 60.0

	// DrillDurationMin is the length of a remedial drill block.
	DrillDurationMin = 30

	// DrillSpreadDays is how many following days drills are spread
	// over, one per day, to force distributed practice over cramming.
	DrillSpreadDays = 5
)

// Env is the planning environment snapshot for one replan call.
type Env struct {
	Windows     []timeslot.Window
	Busy        []timeslot.BusyInterval
	Constraints schedule.Constraints
	Weights     schedule.Weights
	Now         time.Time
}

// Outcome carries the updated task set plus human-readable notices for
// the caller to surface. One unplaceable task never aborts the batch;
// it stays pending and earns a notice instead.
type Outcome struct {
	Tasks   []schedule.Task `json:"tasks"`
	Notices []string        `json:"notices,omitempty"`
}

// CalendarChange reverts tasks whose slot overlaps the new busy
// interval and reschedules just those over the default lookahead.
func CalendarChange(tasks []schedule.Task, added timeslot.BusyInterval, env Env) (Outcome, error) {
	if err := added.Validate(); err != nil {
		return Outcome{}, err
	}

	out := cloneTasks(tasks)
	var displaced []int
	for i := range out {
		t := &out[i]
		if (t.Status == schedule.StatusScheduled || t.Status == schedule.StatusInProgress) && t.Overlaps(added.Start, added.End) {
			if err := t.Invalidate(); err != nil {
				return Outcome{}, err
			}
			displaced = append(displaced, i)
		}
	}
	if len(displaced) == 0 {
		return Outcome{Tasks: out}, nil
	}

	env.Busy = append(append([]timeslot.BusyInterval(nil), env.Busy...), added)
	return reschedule(out, displaced, env, DefaultLookaheadDays)
}

// TaskMissed reverts the task, boosts its priority, and looks for a new
// slot on the same day first, then the next day.
func TaskMissed(tasks []schedule.Task, taskID string, env Env) (Outcome, error) {
	out := cloneTasks(tasks)
	idx := -1
	for i := range out {
		if out[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Outcome{}, fmt.Errorf("replan: task %s not found", taskID)
	}
	if err := out[idx].Invalidate(); err != nil {
		return Outcome{}, err
	}
	out[idx].Priority *= MissedBoost

	for days := 0; days <= 1; days++ {
		o, err := reschedule(out, []int{idx}, env, days)
		if err != nil {
			return Outcome{}, err
		}
		if len(o.Notices) == 0 {
			return o, nil
		}
	}
	return Outcome{
		Tasks:   out,
		Notices: []string{couldNotReschedule(out[idx])},
	}, nil
}

// PoorPerformance synthesizes short remedial drills for a topic after a
// weak quiz and spreads them over the following days, one per day.
func PoorPerformance(tasks []schedule.Task, topic priority.StudyItem, quizScore float64, env Env) (Outcome, error) {
	if quizScore < 0 || quizScore > 100 {
		return Outcome{}, fmt.Errorf("replan: quiz score %.1f out of range", quizScore)
	}

	out := cloneTasks(tasks)
	if quizScore >= MasteryThreshold {
		return Outcome{Tasks: out}, nil
	}

	sessions := int((MasteryThreshold-quizScore)/15) + 1
	drillPriority := topic.Priority * MissedBoost
	if p := maxPriority(out); p*MissedBoost > drillPriority {
		drillPriority = p * MissedBoost
	}

	var notices []string
	day := 1
	for i := 0; i < sessions; i++ {
		drill := topic
		drill.DurationMin = DrillDurationMin
		drill.Difficulty = priority.DifficultyMedium
		drill.Priority = drillPriority
		task := schedule.NewTask(drill, schedule.TaskDrill)

		placed := false
		for ; day <= DrillSpreadDays; day++ {
			o, err := placeOnDay(out, task, env, day)
			if err != nil {
				return Outcome{}, err
			}
			if o != nil {
				out = o
				placed = true
				day++ // next drill lands no earlier than the next day
				break
			}
		}
		if !placed {
			task.Status = schedule.StatusPending
			out = append(out, task)
			notices = append(notices, couldNotReschedule(task))
		}
	}

	return Outcome{Tasks: out, Notices: notices}, nil
}

// DeadlineChange recomputes priorities for every pending/scheduled task
// covering the shifted assessment, reverts the scheduled ones, and
// re-runs assignment and balancing for the affected set plus everything
// already pending, over the extended lookahead.
func DeadlineChange(tasks []schedule.Task, assessmentID string, updated []priority.Candidate, curve priority.Curve, env Env) (Outcome, error) {
	// Score candidates directly: ranking would cap the list and leave
	// tasks beyond the cut with stale priorities.
	newPriority := make(map[string]float64, len(updated))
	for _, c := range updated {
		it, err := priority.ScoreCandidate(c, curve, env.Now)
		if err != nil {
			return Outcome{}, err
		}
		newPriority[it.TopicID] = it.Priority
	}

	out := cloneTasks(tasks)
	var pool []int
	for i := range out {
		t := &out[i]
		switch t.Status {
		case schedule.StatusScheduled:
			if t.AssessmentID != assessmentID {
				continue
			}
			if p, ok := newPriority[t.TopicID]; ok {
				t.Priority = p
			}
			if err := t.Invalidate(); err != nil {
				return Outcome{}, err
			}
			pool = append(pool, i)
		case schedule.StatusPending:
			if p, ok := newPriority[t.TopicID]; ok && t.AssessmentID == assessmentID {
				t.Priority = p
			}
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return Outcome{Tasks: out}, nil
	}

	o, err := reschedule(out, pool, env, ExtendedLookaheadDays)
	if err != nil {
		return Outcome{}, err
	}
	balanced, err := schedule.Balance(o.Tasks, startOfDay(env.Now), env.Windows, env.Busy, env.Constraints)
	if err != nil {
		return Outcome{}, err
	}
	o.Tasks = balanced
	return o, nil
}

// Nightly rebuilds the full horizon from a freshly generated batch of
// pending tasks (practice and review alike; the caller composes them
// from the day's rankings). Tasks in completed or in_progress are
// frozen with their slots; every other existing task is superseded by
// the regeneration.
func Nightly(tasks []schedule.Task, fresh []schedule.Task, env Env, horizonDays int) (Outcome, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultLookaheadDays
	}

	var frozen []schedule.Task
	for _, t := range tasks {
		if t.Status == schedule.StatusCompleted || t.Status == schedule.StatusInProgress {
			frozen = append(frozen, t)
		}
	}

	slots, err := availableSlots(frozen, env, 0, horizonDays)
	if err != nil {
		return Outcome{}, err
	}
	res, err := schedule.PlaceTasks(fresh, slots, frozen, env.Constraints, env.Weights)
	if err != nil {
		return Outcome{}, err
	}

	merged := append(append([]schedule.Task(nil), frozen...), res.Tasks...)
	balanced, err := schedule.Balance(merged, startOfDay(env.Now), env.Windows, env.Busy, env.Constraints)
	if err != nil {
		return Outcome{}, err
	}

	var notices []string
	for _, t := range res.Unscheduled {
		notices = append(notices, couldNotReschedule(t))
		balanced = append(balanced, t)
	}
	return Outcome{Tasks: balanced, Notices: notices}, nil
}

// reschedule finds slots between env.Now and env.Now+lookahead days and
// re-places the pool tasks into them. Pool tasks that find no slot stay
// pending and are reported in the notices.
func reschedule(tasks []schedule.Task, pool []int, env Env, lookaheadDays int) (Outcome, error) {
	var untouched []schedule.Task
	inPool := make(map[string]bool, len(pool))
	for _, i := range pool {
		inPool[tasks[i].ID] = true
	}
	for _, t := range tasks {
		if !inPool[t.ID] {
			untouched = append(untouched, t)
		}
	}

	slots, err := availableSlots(untouched, env, 0, lookaheadDays)
	if err != nil {
		return Outcome{}, err
	}

	poolTasks := make([]schedule.Task, 0, len(pool))
	for _, i := range pool {
		poolTasks = append(poolTasks, tasks[i])
	}
	res, err := schedule.PlaceTasks(poolTasks, slots, untouched, env.Constraints, env.Weights)
	if err != nil {
		return Outcome{}, err
	}

	placedByID := make(map[string]schedule.Task, len(res.Tasks))
	for _, t := range res.Tasks {
		placedByID[t.ID] = t
	}
	out := cloneTasks(tasks)
	var notices []string
	for i := range out {
		if !inPool[out[i].ID] {
			continue
		}
		if placed, ok := placedByID[out[i].ID]; ok {
			out[i] = placed
		} else {
			notices = append(notices, couldNotReschedule(out[i]))
		}
	}
	return Outcome{Tasks: out, Notices: notices}, nil
}

// placeOnDay tries to fit one task on a single day, dayOffset days from
// now. Returns nil (no error) when the day has no room.
func placeOnDay(tasks []schedule.Task, task schedule.Task, env Env, dayOffset int) ([]schedule.Task, error) {
	slots, err := availableSlots(tasks, env, dayOffset, dayOffset)
	if err != nil {
		return nil, err
	}
	res, err := schedule.PlaceTasks([]schedule.Task{task}, slots, booked(tasks), env.Constraints, env.Weights)
	if err != nil {
		return nil, err
	}
	if len(res.Tasks) == 0 {
		return nil, nil
	}
	return append(cloneTasks(tasks), res.Tasks[0]), nil
}

// availableSlots derives free slots for [now+fromDay, now+toDay],
// treating every booked task as busy time so nothing double-books.
// Slots already behind env.Now are trimmed or dropped.
func availableSlots(tasks []schedule.Task, env Env, fromDay, toDay int) ([]timeslot.FreeSlot, error) {
	busy := append([]timeslot.BusyInterval(nil), env.Busy...)
	for _, t := range booked(tasks) {
		busy = append(busy, timeslot.BusyInterval{Start: t.Start, End: t.End})
	}

	start := startOfDay(env.Now).AddDate(0, 0, fromDay)
	end := startOfDay(env.Now).AddDate(0, 0, toDay)
	slots, err := timeslot.FreeSlotsRange(start, end, env.Windows, busy, env.Constraints.SlotOptions())
	if err != nil {
		return nil, err
	}

	trimmed := slots[:0]
	for _, s := range slots {
		if !s.End.After(env.Now) {
			continue
		}
		if s.Start.Before(env.Now) {
			s.Start = env.Now
			s.DurationMin = int(s.End.Sub(s.Start).Minutes())
			if s.DurationMin < env.Constraints.MinBlockMin {
				continue
			}
		}
		trimmed = append(trimmed, s)
	}
	return trimmed, nil
}

func booked(tasks []schedule.Task) []schedule.Task {
	var b []schedule.Task
	for _, t := range tasks {
		if t.Start.IsZero() || t.Status == schedule.StatusSkipped || t.Status == schedule.StatusPending {
			continue
		}
		b = append(b, t)
	}
	return b
}

func maxPriority(tasks []schedule.Task) float64 {
	m := 0.0
	for _, t := range tasks {
		if !t.Status.Terminal() && t.Priority > m {
			m = t.Priority
		}
	}
	return m
}

func cloneTasks(tasks []schedule.Task) []schedule.Task {
	out := make([]schedule.Task, len(tasks))
	copy(out, tasks)
	return out
}

func couldNotReschedule(t schedule.Task) string {
	return fmt.Sprintf("could not reschedule task %s (%s)", t.ID, t.Title)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
