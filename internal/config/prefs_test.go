package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	p, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.DailyStudyHours)
	assert.Equal(t, 7, p.HorizonDays)
	assert.Len(t, p.Availability, 7)
}

func TestParsePartialOverride(t *testing.T) {
	p, err := Parse([]byte(`{"daily_study_hours": 2.5, "difficulty_curve": "aggressive"}`))
	require.NoError(t, err)
	assert.Equal(t, 2.5, p.DailyStudyHours)
	assert.Equal(t, "aggressive", string(p.Curve()))
	assert.Equal(t, 50, p.PreferredBlockMin, "untouched fields keep defaults")
}

func TestParseAvailabilityReplacesDefaults(t *testing.T) {
	raw := []byte(`{
		"availability": {
			"monday": [{"start": "18:00", "end": "22:00"}],
			"saturday": [
				{"start": "09:00", "end": "12:00"},
				{"start": "14:00", "end": "17:00"}
			]
		}
	}`)
	p, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, p.Availability, 2, "no merge with the default table")

	windows, err := p.Windows()
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, time.Monday, windows[0].Day)
	assert.Equal(t, 18*60, windows[0].StartMin)
	assert.Equal(t, time.Saturday, windows[1].Day)
	assert.Equal(t, 9*60, windows[1].StartMin)
	assert.Equal(t, 14*60, windows[2].StartMin)
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{`},
		{"bad clock", `{"earliest_time": "25:00"}`},
		{"single-digit hour", `{"latest_time": "9:00"}`},
		{"bad curve", `{"difficulty_curve": "brutal"}`},
		{"unknown day", `{"availability": {"someday": []}}`},
		{"unknown field", `{"daily_hours": 3}`},
		{"hours out of range", `{"daily_study_hours": 20}`},
		{"zero horizon", `{"horizon_days": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestWindowsRejectsInvertedRange(t *testing.T) {
	p := Default()
	p.Availability = map[string][]TimeRange{
		"monday": {{Start: "20:00", End: "18:00"}},
	}
	_, err := p.Windows()
	assert.Error(t, err)
}

func TestConstraintsConversion(t *testing.T) {
	p := Default()
	p.DailyStudyHours = 3
	p.EarliestTime = "09:30"
	p.LatestTime = "21:00"

	c, err := p.Constraints()
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.MaxHoursPerDay)
	assert.Equal(t, 9*60+30, c.EarliestMin)
	assert.Equal(t, 21*60, c.LatestMin)
	assert.Equal(t, 25, c.MinBlockMin, "unexposed knobs keep defaults")
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.DailyStudyHours, "missing file yields defaults")

	path := filepath.Join(dir, "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"horizon_days": 14}`), 0o644))
	p, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 14, p.HorizonDays)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err, "a present but invalid file is an error, not a fallback")
}
