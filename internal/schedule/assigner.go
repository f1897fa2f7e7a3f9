package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Result is the outcome of an assignment run. Unscheduled tasks are a
// normal outcome, reported as data rather than raised as an error: a
// degraded-but-valid plan beats an exception.
type Result struct {
	Tasks       []Task `json:"tasks"`
	Unscheduled []Task `json:"unscheduled"`
}

// UnscheduledCount returns the number of tasks that found no slot.
func (r Result) UnscheduledCount() int {
	return len(r.Unscheduled)
}

// Assign turns ranked study items into scheduled tasks. It is a thin
// wrapper over PlaceTasks that first materializes pending tasks.
func Assign(items []priority.StudyItem, slots []timeslot.FreeSlot, c Constraints, w Weights) (Result, error) {
	tasks := make([]Task, 0, len(items))
	for _, it := range items {
		if it.DurationMin <= 0 {
			return Result{}, fmt.Errorf("item %s duration %d: %w", it.TopicID, it.DurationMin, ErrInvalidDuration)
		}
		tasks = append(tasks, NewTask(it, TaskPractice))
	}
	return PlaceTasks(tasks, slots, nil, c, w)
}

// PlaceTasks assigns pending tasks to free slots with an iterative
// global greedy search: every round scores every feasible (task, slot)
// pair across all days, places the single best pair at the start of its
// slot, shrinks the slot, and repeats until nothing feasible remains.
// existing tasks count toward daily caps and the course-variety term
// but are never moved.
//
// Worst case this is O(tasks^2 x slots); horizons are days, not months,
// so the simplicity is worth more than an index.
func PlaceTasks(tasks []Task, slots []timeslot.FreeSlot, existing []Task, c Constraints, w Weights) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	pool := make([]Task, len(tasks))
	copy(pool, tasks)
	slotPool := make([]timeslot.FreeSlot, len(slots))
	copy(slotPool, slots)

	dayUsed := make(map[string]int)
	dayBlocks := make(map[string]int)
	placedAll := make([]Task, 0, len(existing))
	for _, t := range existing {
		if t.Start.IsZero() || t.Status == StatusSkipped {
			continue
		}
		k := dayKey(t.Start)
		dayUsed[k] += t.DurationMin
		dayBlocks[k]++
		placedAll = append(placedAll, t)
	}

	var placed []Task
	for len(pool) > 0 {
		bestTask, bestSlot, ok := bestPair(pool, slotPool, placedAll, dayUsed, dayBlocks, c, w)
		if !ok {
			break
		}

		t := pool[bestTask]
		slot := slotPool[bestSlot]
		t.Start = slot.Start
		t.End = slot.Start.Add(time.Duration(t.DurationMin) * time.Minute)
		if t.Status == StatusPending {
			if err := t.Transition(StatusScheduled); err != nil {
				return Result{}, err
			}
		}

		k := dayKey(t.Start)
		dayUsed[k] += t.DurationMin
		dayBlocks[k]++
		placed = append(placed, t)
		placedAll = append(placedAll, t)

		pool = append(pool[:bestTask], pool[bestTask+1:]...)
		slotPool = shrinkSlot(slotPool, bestSlot, t.DurationMin+c.BreakMin, c.MinBlockMin)
	}

	sort.Slice(placed, func(i, j int) bool { return placed[i].Start.Before(placed[j].Start) })
	return Result{Tasks: placed, Unscheduled: pool}, nil
}

// bestPair finds the globally highest-scoring feasible (task, slot)
// pair. Ties break on earlier slot start, then topic ID, so repeated
// runs over identical inputs produce identical assignments.
func bestPair(pool []Task, slots []timeslot.FreeSlot, placed []Task, dayUsed, dayBlocks map[string]int, c Constraints, w Weights) (int, int, bool) {
	bestScore := 0.0
	bestTask, bestSlot := -1, -1
	found := false

	for ti, t := range pool {
		for si, slot := range slots {
			if !feasible(t, slot, dayUsed, dayBlocks, c) {
				continue
			}
			item := priority.StudyItem{
				TopicID:     t.TopicID,
				CourseID:    t.CourseID,
				Difficulty:  t.Difficulty,
				DurationMin: t.DurationMin,
				Priority:    t.Priority,
			}
			k := dayKey(slot.Start)
			score := placementScore(item, slot, dayUsed[k], precedingCourse(placed, slot.Start), c, w)

			if !found || better(score, slot, t, bestScore, slots[bestSlot], pool[bestTask]) {
				bestScore, bestTask, bestSlot = score, ti, si
				found = true
			}
		}
	}
	return bestTask, bestSlot, found
}

func better(score float64, slot timeslot.FreeSlot, t Task, bestScore float64, bestSlot timeslot.FreeSlot, bestTask Task) bool {
	if score != bestScore {
		return score > bestScore
	}
	if !slot.Start.Equal(bestSlot.Start) {
		return slot.Start.Before(bestSlot.Start)
	}
	return t.TopicID < bestTask.TopicID
}

func feasible(t Task, slot timeslot.FreeSlot, dayUsed, dayBlocks map[string]int, c Constraints) bool {
	if t.DurationMin+c.BreakMin > slot.DurationMin {
		return false
	}
	if t.DurationMin > c.MaxBlockMin {
		return false
	}
	k := dayKey(slot.Start)
	if dayUsed[k]+t.DurationMin > c.DailyCapMin() {
		return false
	}
	if dayBlocks[k] >= c.MaxBlocksPerDay {
		return false
	}
	return true
}

// precedingCourse returns the course of the block immediately before
// start on the same day, or "" if start opens the day.
func precedingCourse(placed []Task, start time.Time) string {
	var best *Task
	for i := range placed {
		t := &placed[i]
		if dayKey(t.Start) != dayKey(start) || !t.Start.Before(start) {
			continue
		}
		if best == nil || t.Start.After(best.Start) {
			best = t
		}
	}
	if best == nil {
		return ""
	}
	return best.CourseID
}

// shrinkSlot consumes usedMin from the front of slot i, dropping the
// slot entirely when the remainder falls below the minimum block.
func shrinkSlot(slots []timeslot.FreeSlot, i, usedMin, minBlockMin int) []timeslot.FreeSlot {
	s := slots[i]
	remaining := s.DurationMin - usedMin
	if remaining < minBlockMin {
		return append(slots[:i], slots[i+1:]...)
	}
	s.Start = s.Start.Add(time.Duration(usedMin) * time.Minute)
	s.DurationMin = remaining
	slots[i] = s
	return slots
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
