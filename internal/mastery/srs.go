package mastery

import "math"

// SM-2 spaced repetition constants.
const (
	InitialEasiness = 2.5
	MinEasiness     = 1.3

	// FirstInterval and SecondInterval are the fixed early intervals
	// before the easiness multiplier takes over.
	FirstInterval  = 1
	SecondInterval = 6
)

// Quality maps a 0-100 percentage score onto the 0-5 SM-2 recall scale.
func Quality(score float64) int {
	q := int(math.Round(score / 100.0 * 5.0))
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}

// NextInterval computes the next review interval in days and the updated
// easiness factor. A quality below 3 resets the interval to one day;
// otherwise the interval expands 1 -> 6 -> round(interval * easiness).
func NextInterval(easiness float64, currentInterval, quality int) (int, float64) {
	ef := easiness + (0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02))
	if ef < MinEasiness {
		ef = MinEasiness
	}

	if quality < 3 {
		return FirstInterval, ef
	}

	switch {
	case currentInterval <= 0:
		return FirstInterval, ef
	case currentInterval == FirstInterval:
		return SecondInterval, ef
	default:
		return int(math.Round(float64(currentInterval) * ef)), ef
	}
}
