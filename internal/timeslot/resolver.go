package timeslot

import (
	"sort"
	"time"
)

// FreeSlots derives the free slots for one calendar day. day fixes the
// date and location; only windows matching its weekday apply. Busy
// intervals may overlap each other and may extend past the day. The
// sweep is a single left-to-right pass per window: the cursor starts at
// the window start, each busy interval closes the gap before it (less
// the pre-event buffer), and the cursor only ever advances, so
// overlapping or contained busy intervals are absorbed naturally.
//
// Slots are returned ordered by start time. Zero windows for the day
// yields zero slots, not an error.
func FreeSlots(day time.Time, windows []Window, busy []BusyInterval, opts Options) ([]FreeSlot, error) {
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}
	for _, b := range busy {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	gap := time.Duration(opts.GapBeforeBusyMin) * time.Minute

	var slots []FreeSlot
	for _, w := range windows {
		if w.Day != day.Weekday() {
			continue
		}
		startMin, endMin := w.StartMin, w.EndMin
		if opts.EarliestMin > 0 && startMin < opts.EarliestMin {
			startMin = opts.EarliestMin
		}
		if opts.LatestMin > 0 && endMin > opts.LatestMin {
			endMin = opts.LatestMin
		}
		if endMin <= startMin {
			continue
		}
		winStart := midnight.Add(time.Duration(startMin) * time.Minute)
		winEnd := midnight.Add(time.Duration(endMin) * time.Minute)

		cursor := winStart
		for _, b := range sorted {
			if !b.End.After(cursor) {
				continue // entirely behind the cursor
			}
			if !b.Start.Before(winEnd) {
				break // at or past the window end; the rest are too
			}
			gapEnd := b.Start.Add(-gap)
			if gapEnd.After(winEnd) {
				gapEnd = winEnd
			}
			slots = appendSlot(slots, cursor, gapEnd, opts.MinBlockMin)
			if b.End.After(cursor) {
				cursor = b.End
			}
		}
		if cursor.Before(winEnd) {
			slots = appendSlot(slots, cursor, winEnd, opts.MinBlockMin)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots, nil
}

// FreeSlotsRange resolves slots for every day in [start, end] inclusive
// and returns them as one flat list ordered by start time.
func FreeSlotsRange(start, end time.Time, windows []Window, busy []BusyInterval, opts Options) ([]FreeSlot, error) {
	var all []FreeSlot
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		slots, err := FreeSlots(day, windows, busy, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, slots...)
	}
	return all, nil
}

func appendSlot(slots []FreeSlot, start, end time.Time, minBlockMin int) []FreeSlot {
	d := int(end.Sub(start).Minutes())
	if d < minBlockMin || d <= 0 {
		return slots
	}
	return append(slots, FreeSlot{Start: start, End: end, DurationMin: d})
}
