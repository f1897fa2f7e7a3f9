package schedule

import "sort"

// DayStats summarizes one day of a schedule.
type DayStats struct {
	Date   string  `json:"date"` // 2006-01-02
	Hours  float64 `json:"hours"`
	Blocks int     `json:"blocks"`
}

// Breakdown aggregates scheduled tasks into per-day hours and block
// counts, ordered by date.
func Breakdown(tasks []Task) []DayStats {
	byDay := make(map[string]*DayStats)
	for _, t := range tasks {
		if t.Start.IsZero() {
			continue
		}
		k := dayKey(t.Start)
		ds, ok := byDay[k]
		if !ok {
			ds = &DayStats{Date: k}
			byDay[k] = ds
		}
		ds.Hours += float64(t.DurationMin) / 60.0
		ds.Blocks++
	}

	out := make([]DayStats, 0, len(byDay))
	for _, ds := range byDay {
		out = append(out, *ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TotalHours sums the scheduled duration across tasks.
func TotalHours(tasks []Task) float64 {
	total := 0
	for _, t := range tasks {
		if !t.Start.IsZero() {
			total += t.DurationMin
		}
	}
	return float64(total) / 60.0
}
