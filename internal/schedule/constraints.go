package schedule

import (
	"errors"
	"fmt"

	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Validation errors for the schedule package.
var (
	ErrInvalidConstraints = errors.New("schedule: invalid constraints")
	ErrInvalidDuration    = errors.New("schedule: task duration must be positive")
)

// Constraints bound a single planning run. Immutable once supplied.
type Constraints struct {
	MaxHoursPerDay    float64 `json:"max_hours_per_day"`
	MinBlockMin       int     `json:"min_block_min"`
	MaxBlockMin       int     `json:"max_block_min"`
	PreferredBlockMin int     `json:"preferred_block_min"`
	BreakMin          int     `json:"break_min"`
	GapBeforeBusyMin  int     `json:"gap_before_busy_min"`
	EarliestMin       int     `json:"earliest_min"` // minutes from midnight
	LatestMin         int     `json:"latest_min"`
	MaxBlocksPerDay   int     `json:"max_blocks_per_day"`
}

// DefaultConstraints mirrors the stock user preferences: four hours a
// day between 08:00 and 22:00, 50-minute preferred blocks with
// 10-minute breaks.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxHoursPerDay:    4.0,
		MinBlockMin:       25,
		MaxBlockMin:       90,
		PreferredBlockMin: 50,
		BreakMin:          10,
		GapBeforeBusyMin:  15,
		EarliestMin:       8 * 60,
		LatestMin:         22 * 60,
		MaxBlocksPerDay:   6,
	}
}

// Validate checks the constraints are internally consistent.
func (c Constraints) Validate() error {
	switch {
	case c.MaxHoursPerDay <= 0:
		return fmt.Errorf("max hours per day %.1f: %w", c.MaxHoursPerDay, ErrInvalidConstraints)
	case c.MinBlockMin <= 0 || c.MaxBlockMin < c.MinBlockMin:
		return fmt.Errorf("block length %d-%d: %w", c.MinBlockMin, c.MaxBlockMin, ErrInvalidConstraints)
	case c.BreakMin < 0 || c.GapBeforeBusyMin < 0:
		return fmt.Errorf("break %d / gap %d: %w", c.BreakMin, c.GapBeforeBusyMin, ErrInvalidConstraints)
	case c.EarliestMin < 0 || c.LatestMin > 24*60 || (c.LatestMin > 0 && c.LatestMin <= c.EarliestMin):
		return fmt.Errorf("allowed hours %d-%d: %w", c.EarliestMin, c.LatestMin, ErrInvalidConstraints)
	case c.MaxBlocksPerDay <= 0:
		return fmt.Errorf("max blocks per day %d: %w", c.MaxBlocksPerDay, ErrInvalidConstraints)
	}
	return nil
}

// DailyCapMin is the scheduling cap in minutes per day.
func (c Constraints) DailyCapMin() int {
	return int(c.MaxHoursPerDay * 60)
}

// SlotOptions derives the slot-resolution knobs from the constraints.
func (c Constraints) SlotOptions() timeslot.Options {
	return timeslot.Options{
		MinBlockMin:      c.MinBlockMin,
		GapBeforeBusyMin: c.GapBeforeBusyMin,
		EarliestMin:      c.EarliestMin,
		LatestMin:        c.LatestMin,
	}
}
