// Package config loads and validates user preferences: weekly
// availability, daily limits, and the difficulty curve. Preferences
// live in a single JSON file validated against an embedded schema.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// TimeRange is one availability span within a day, in "HH:MM" clock
// strings.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Preferences is the user-tunable planning configuration.
type Preferences struct {
	DailyStudyHours   float64                `json:"daily_study_hours"`
	PreferredBlockMin int                    `json:"preferred_block_min"`
	BreakMin          int                    `json:"break_min"`
	EarliestTime      string                 `json:"earliest_time"`
	LatestTime        string                 `json:"latest_time"`
	HorizonDays       int                    `json:"horizon_days"`
	DifficultyCurve   string                 `json:"difficulty_curve"`
	Availability      map[string][]TimeRange `json:"availability"`
}

// Default returns the stock preferences: four hours a day in 50-minute
// blocks between 08:00 and 22:00, every evening free from 18:00, a
// seven-day horizon and a balanced curve.
func Default() Preferences {
	avail := make(map[string][]TimeRange, len(weekdayNames))
	for name := range weekdayNames {
		avail[name] = []TimeRange{{Start: "18:00", End: "22:00"}}
	}
	return Preferences{
		DailyStudyHours:   4.0,
		PreferredBlockMin: 50,
		BreakMin:          10,
		EarliestTime:      "08:00",
		LatestTime:        "22:00",
		HorizonDays:       7,
		DifficultyCurve:   string(priority.CurveBalanced),
		Availability:      avail,
	}
}

// Constraints converts the preferences into scheduling constraints,
// keeping the stock values for knobs the file does not expose.
func (p Preferences) Constraints() (schedule.Constraints, error) {
	earliest, err := parseClock(p.EarliestTime)
	if err != nil {
		return schedule.Constraints{}, fmt.Errorf("earliest_time: %w", err)
	}
	latest, err := parseClock(p.LatestTime)
	if err != nil {
		return schedule.Constraints{}, fmt.Errorf("latest_time: %w", err)
	}

	c := schedule.DefaultConstraints()
	c.MaxHoursPerDay = p.DailyStudyHours
	c.PreferredBlockMin = p.PreferredBlockMin
	c.BreakMin = p.BreakMin
	c.EarliestMin = earliest
	c.LatestMin = latest
	if err := c.Validate(); err != nil {
		return schedule.Constraints{}, err
	}
	return c, nil
}

// Windows converts the weekly availability into resolver windows,
// sorted by day then start time.
func (p Preferences) Windows() ([]timeslot.Window, error) {
	var out []timeslot.Window
	for name, ranges := range p.Availability {
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("availability: unknown day %q", name)
		}
		for _, r := range ranges {
			start, err := parseClock(r.Start)
			if err != nil {
				return nil, fmt.Errorf("availability %s: %w", name, err)
			}
			end, err := parseClock(r.End)
			if err != nil {
				return nil, fmt.Errorf("availability %s: %w", name, err)
			}
			w := timeslot.Window{Day: day, StartMin: start, EndMin: end}
			if err := w.Validate(); err != nil {
				return nil, fmt.Errorf("availability %s: %w", name, err)
			}
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].StartMin < out[j].StartMin
	})
	return out, nil
}

// Curve returns the difficulty curve preference.
func (p Preferences) Curve() priority.Curve {
	return priority.Curve(p.DifficultyCurve)
}

// Load reads, validates and decodes the preferences file at path.
// Fields absent from the file keep their defaults.
func Load(path string) (Preferences, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	return Parse(raw)
}

// LoadOrDefault is Load, falling back to the stock preferences when no
// file exists at path.
func LoadOrDefault(path string) (Preferences, error) {
	p, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// DefaultPath resolves the preferences file path in priority order:
// 1. STUDYPLAN_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/studyplan/preferences.json
// 3. ~/.config/studyplan/preferences.json
func DefaultPath() (string, error) {
	if p := os.Getenv("STUDYPLAN_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyplan", "preferences.json"), nil
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
