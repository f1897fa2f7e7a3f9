package schedule

import (
	"time"

	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// Weights holds the tunable terms of the placement score. The priority
// scale dominates the other terms so that ranking order stays the
// primary signal; the rest break ties and nudge placement quality.
type Weights struct {
	PriorityScale   float64 // multiplier on the item's priority score
	TimeOfDayFit    float64 // bonus for a slot matching the difficulty's best hours
	TimeOfDayMild   float64 // weaker bonus for flexible items in their preferred hours
	LightDayBonus   float64 // bonus when the target day is under half its cap
	HeavyDayMalus   float64 // penalty when the target day is near its cap
	CourseVariety   float64 // bonus for switching courses from the preceding block
	SlotUtilization float64 // scale of the duration-fit bonus
}

// DefaultWeights returns the standard placement weights.
func DefaultWeights() Weights {
	return Weights{
		PriorityScale:   1000,
		TimeOfDayFit:    30,
		TimeOfDayMild:   10,
		LightDayBonus:   25,
		HeavyDayMalus:   40,
		CourseVariety:   15,
		SlotUtilization: 20,
	}
}

// Focus hours: demanding work lands best between mid-morning and early
// afternoon; lighter work has a mild lean toward afternoon and evening.
const (
	focusStartHour = 9
	focusEndHour   = 14
	mildStartHour  = 15
	mildEndHour    = 21
)

// placementScore rates putting item at the start of slot. dayUsedMin is
// the minutes already booked on the slot's day and prevCourse is the
// course of the block immediately preceding the slot on that day ("" if
// none).
func placementScore(item priority.StudyItem, slot timeslot.FreeSlot, dayUsedMin int, prevCourse string, c Constraints, w Weights) float64 {
	score := item.Priority * w.PriorityScale

	score += timeOfDayTerm(item.Difficulty, slot.Start, w)

	capMin := c.DailyCapMin()
	projected := dayUsedMin + item.DurationMin
	switch {
	case dayUsedMin*2 < capMin:
		score += w.LightDayBonus
	case projected*10 >= capMin*9: // within 10% of the cap
		score -= w.HeavyDayMalus
	}

	if prevCourse != "" && prevCourse != item.CourseID {
		score += w.CourseVariety
	}

	// Tight fit wastes less slot. A leftover long enough for another
	// preferred block plus its break is not waste, so oversized slots
	// keep the full utilization bonus.
	denom := slot.DurationMin
	if slot.DurationMin-item.DurationMin >= c.PreferredBlockMin+c.BreakMin {
		denom = item.DurationMin
	}
	score += w.SlotUtilization * float64(item.DurationMin) / float64(denom)

	return score
}

func timeOfDayTerm(d priority.Difficulty, start time.Time, w Weights) float64 {
	h := start.Hour()
	if d == priority.DifficultyHard || d == priority.DifficultyExamLevel {
		if h >= focusStartHour && h < focusEndHour {
			return w.TimeOfDayFit
		}
		return 0
	}
	if h >= mildStartHour && h < mildEndHour {
		return w.TimeOfDayMild
	}
	return 0
}
