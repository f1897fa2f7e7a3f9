package schedule

import (
	"sort"
	"time"

	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Balancer thresholds as fractions of the daily cap.
const (
	overloadedFrac    = 0.9 // day is overloaded above this
	underutilizedFrac = 0.3 // day is underutilized below this
	relievedFrac      = 0.8 // stop moving once the source day is at or under this
)

// Balance redistributes scheduled tasks within the 7-day window starting
// at weekStart, moving work off overloaded days (> 90% of the daily cap)
// onto underutilized ones (< 30%). Lowest-priority tasks move first and
// a source day stops shedding once it reaches 80% of cap. When no day is
// overloaded or none is underutilized the input is returned unchanged.
//
// The pass is best-effort: it guarantees no day exceeds the cap when it
// returns, not any particular final distribution.
func Balance(tasks []Task, weekStart time.Time, windows []timeslot.Window, busy []timeslot.BusyInterval, c Constraints) ([]Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := make([]Task, len(tasks))
	copy(out, tasks)

	// Frozen in_progress/completed tasks count toward a day's load even
	// though only scheduled tasks may move.
	weekEnd := weekStart.AddDate(0, 0, 7)
	perDay := make(map[string]int)
	dayBlocks := make(map[string]int)
	for _, t := range out {
		if slotted(t) && t.Overlaps(weekStart, weekEnd) {
			perDay[dayKey(t.Start)] += t.DurationMin
			dayBlocks[dayKey(t.Start)]++
		}
	}

	capMin := c.DailyCapMin()
	var overloaded, under []string
	for day := weekStart; day.Before(weekEnd); day = day.AddDate(0, 0, 1) {
		k := dayKey(day)
		mins := perDay[k]
		if float64(mins) > overloadedFrac*float64(capMin) {
			overloaded = append(overloaded, k)
		} else if float64(mins) < underutilizedFrac*float64(capMin) {
			under = append(under, k)
		}
	}
	if len(overloaded) == 0 || len(under) == 0 {
		return out, nil
	}
	sort.Strings(overloaded)
	sort.Strings(under)

	for _, src := range overloaded {
		// Lowest priority first: cheapest tasks to displace.
		idxs := tasksOnDay(out, src)
		sort.Slice(idxs, func(a, b int) bool {
			ta, tb := out[idxs[a]], out[idxs[b]]
			if ta.Priority != tb.Priority {
				return ta.Priority < tb.Priority
			}
			return ta.TopicID < tb.TopicID
		})

		for _, i := range idxs {
			if float64(perDay[src]) <= relievedFrac*float64(capMin) {
				break
			}
			t := out[i]
			moved, start, err := findMoveSlot(t, under, out, perDay, dayBlocks, windows, busy, c)
			if err != nil {
				return nil, err
			}
			if !moved {
				continue
			}
			perDay[dayKey(t.Start)] -= t.DurationMin
			dayBlocks[dayKey(t.Start)]--
			out[i].Start = start
			out[i].End = start.Add(time.Duration(t.DurationMin) * time.Minute)
			perDay[dayKey(start)] += t.DurationMin
			dayBlocks[dayKey(start)]++
		}
	}

	return out, nil
}

// findMoveSlot looks for the first free slot on an underutilized day
// that can take the task without breaching that day's cap or block
// limit. Every slotted task on the target day counts as busy time when
// slots are derived, frozen ones included.
func findMoveSlot(t Task, under []string, all []Task, perDay, dayBlocks map[string]int, windows []timeslot.Window, busy []timeslot.BusyInterval, c Constraints) (bool, time.Time, error) {
	capMin := c.DailyCapMin()
	for _, dst := range under {
		if dst == dayKey(t.Start) {
			continue
		}
		if perDay[dst]+t.DurationMin > capMin {
			continue
		}
		if dayBlocks[dst] >= c.MaxBlocksPerDay {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", dst, t.Start.Location())
		if err != nil {
			return false, time.Time{}, err
		}

		dayBusy := append([]timeslot.BusyInterval(nil), busy...)
		for _, other := range all {
			if other.ID != t.ID && slotted(other) && dayKey(other.Start) == dst {
				dayBusy = append(dayBusy, timeslot.BusyInterval{Start: other.Start, End: other.End})
			}
		}

		slots, err := timeslot.FreeSlots(day, windows, dayBusy, c.SlotOptions())
		if err != nil {
			return false, time.Time{}, err
		}
		for _, s := range slots {
			if t.DurationMin+c.BreakMin <= s.DurationMin {
				return true, s.Start, nil
			}
		}
	}
	return false, time.Time{}, nil
}

// slotted reports whether t occupies calendar time in any status that
// still holds its slot.
func slotted(t Task) bool {
	return !t.Start.IsZero() && t.Status != StatusPending && t.Status != StatusSkipped
}

func tasksOnDay(tasks []Task, key string) []int {
	var idxs []int
	for i, t := range tasks {
		if t.Status == StatusScheduled && dayKey(t.Start) == key {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
