package timeslot

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors for the timeslot package.
var (
	ErrInvalidWindow   = errors.New("timeslot: window end not after start")
	ErrInvalidInterval = errors.New("timeslot: busy interval end not after start")
)

// Window is a recurring weekly availability window, expressed as
// minutes from midnight in the user's local day. Immutable configuration.
type Window struct {
	Day      time.Weekday `json:"day"`
	StartMin int          `json:"start_min"`
	EndMin   int          `json:"end_min"`
}

// Validate checks the window is well-formed.
func (w Window) Validate() error {
	if w.StartMin < 0 || w.EndMin > 24*60 || w.EndMin <= w.StartMin {
		return fmt.Errorf("window %d:%02d-%d:%02d: %w",
			w.StartMin/60, w.StartMin%60, w.EndMin/60, w.EndMin%60, ErrInvalidWindow)
	}
	return nil
}

// BusyInterval is an absolute busy period from the user's calendar.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks the interval is well-formed.
func (b BusyInterval) Validate() error {
	if !b.End.After(b.Start) {
		return fmt.Errorf("interval %s-%s: %w",
			b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339), ErrInvalidInterval)
	}
	return nil
}

// FreeSlot is a derived contiguous block of schedulable time. Slots are
// recomputed on every call and never persisted.
type FreeSlot struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DurationMin int       `json:"duration_min"`
}

// Options are the slot-derivation knobs drawn from the scheduling
// constraints. EarliestMin/LatestMin clamp every window to the user's
// allowed study hours; zero values leave the window unclamped.
type Options struct {
	MinBlockMin      int // shortest slot worth emitting
	GapBeforeBusyMin int // buffer kept clear ahead of a busy event
	EarliestMin      int // minutes from midnight; 0 = no clamp
	LatestMin        int // minutes from midnight; 0 = no clamp
}
