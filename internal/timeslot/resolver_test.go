package timeslot

import (
	"errors"
	"testing"
	"time"
)

// Tuesday, March 10 2026.
var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func eveningWindow() Window {
	return Window{Day: testDay.Weekday(), StartMin: 18 * 60, EndMin: 22 * 60}
}

func TestFreeSlotsSplitsAroundBusyInterval(t *testing.T) {
	busy := []BusyInterval{{Start: at(19, 0), End: at(19, 30)}}
	opts := Options{MinBlockMin: 25, GapBeforeBusyMin: 15}

	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, opts)
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(slots), slots)
	}
	// First slot ends 15 minutes before the busy event.
	if !slots[0].Start.Equal(at(18, 0)) || !slots[0].End.Equal(at(18, 45)) {
		t.Errorf("slot 0 = %v-%v, want 18:00-18:45", slots[0].Start, slots[0].End)
	}
	if slots[0].DurationMin != 45 {
		t.Errorf("slot 0 duration = %d, want 45", slots[0].DurationMin)
	}
	if !slots[1].Start.Equal(at(19, 30)) || !slots[1].End.Equal(at(22, 0)) {
		t.Errorf("slot 1 = %v-%v, want 19:30-22:00", slots[1].Start, slots[1].End)
	}
	if slots[1].DurationMin != 150 {
		t.Errorf("slot 1 duration = %d, want 150", slots[1].DurationMin)
	}
}

func TestFreeSlotsNoBusy(t *testing.T) {
	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, nil, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].DurationMin != 240 {
		t.Fatalf("got %+v, want one 240-minute slot", slots)
	}
}

func TestFreeSlotsNoWindowsForDay(t *testing.T) {
	w := Window{Day: (testDay.Weekday() + 1) % 7, StartMin: 18 * 60, EndMin: 22 * 60}
	slots, err := FreeSlots(testDay, []Window{w}, nil, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(slots))
	}
}

func TestFreeSlotsOverlappingBusyAbsorbed(t *testing.T) {
	busy := []BusyInterval{
		{Start: at(19, 0), End: at(20, 0)},
		{Start: at(19, 30), End: at(20, 30)}, // overlaps the first
		{Start: at(19, 45), End: at(20, 15)}, // fully inside
	}
	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(slots), slots)
	}
	if !slots[0].End.Equal(at(19, 0)) {
		t.Errorf("slot 0 end = %v, want 19:00", slots[0].End)
	}
	if !slots[1].Start.Equal(at(20, 30)) {
		t.Errorf("slot 1 start = %v, want 20:30 (after the furthest busy end)", slots[1].Start)
	}
}

func TestFreeSlotsBusyStraddlesWindowStart(t *testing.T) {
	busy := []BusyInterval{{Start: at(17, 0), End: at(18, 30)}}
	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 1 || !slots[0].Start.Equal(at(18, 30)) {
		t.Fatalf("got %+v, want single slot from 18:30", slots)
	}
}

func TestFreeSlotsBusyAfterWindowIgnored(t *testing.T) {
	busy := []BusyInterval{{Start: at(22, 30), End: at(23, 0)}}
	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].DurationMin != 240 {
		t.Fatalf("got %+v, want full window untouched", slots)
	}
}

func TestFreeSlotsSmallGapDropped(t *testing.T) {
	// Gap before busy is 20 minutes minus the buffer: below min block.
	busy := []BusyInterval{{Start: at(18, 20), End: at(19, 0)}}
	slots, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, Options{MinBlockMin: 25, GapBeforeBusyMin: 15})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 1 || !slots[0].Start.Equal(at(19, 0)) {
		t.Fatalf("got %+v, want only the post-busy slot", slots)
	}
}

func TestFreeSlotsMultipleWindowsConcatenated(t *testing.T) {
	windows := []Window{
		{Day: testDay.Weekday(), StartMin: 8 * 60, EndMin: 10 * 60},
		eveningWindow(),
	}
	slots, err := FreeSlots(testDay, windows, nil, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if !slots[0].Start.Before(slots[1].Start) {
		t.Errorf("slots not ordered by start time")
	}
}

func TestFreeSlotsRejectsBadWindow(t *testing.T) {
	w := Window{Day: testDay.Weekday(), StartMin: 20 * 60, EndMin: 18 * 60}
	_, err := FreeSlots(testDay, []Window{w}, nil, Options{})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestFreeSlotsRejectsBadInterval(t *testing.T) {
	busy := []BusyInterval{{Start: at(19, 0), End: at(19, 0)}}
	_, err := FreeSlots(testDay, []Window{eveningWindow()}, busy, Options{})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("err = %v, want ErrInvalidInterval", err)
	}
}

func TestFreeSlotsClampedToAllowedHours(t *testing.T) {
	w := Window{Day: testDay.Weekday(), StartMin: 6 * 60, EndMin: 23 * 60}
	opts := Options{MinBlockMin: 25, EarliestMin: 8 * 60, LatestMin: 22 * 60}
	slots, err := FreeSlots(testDay, []Window{w}, nil, opts)
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if !slots[0].Start.Equal(at(8, 0)) || !slots[0].End.Equal(at(22, 0)) {
		t.Errorf("slot = %v-%v, want clamped to 08:00-22:00", slots[0].Start, slots[0].End)
	}
}

func TestFreeSlotsRangeCoversEveryDay(t *testing.T) {
	windows := []Window{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		windows = append(windows, Window{Day: d, StartMin: 18 * 60, EndMin: 20 * 60})
	}
	start := testDay
	end := testDay.AddDate(0, 0, 6)
	slots, err := FreeSlotsRange(start, end, windows, nil, Options{MinBlockMin: 25})
	if err != nil {
		t.Fatalf("FreeSlotsRange: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("got %d slots, want 7 (one per day)", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Errorf("slots not ordered at %d", i)
		}
	}
}
