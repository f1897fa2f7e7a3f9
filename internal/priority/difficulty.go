package priority

import "github.com/studyplanhq/studyplan/internal/mastery"

// Difficulty is a recommended practice difficulty level.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyExamLevel Difficulty = "exam_level"
)

// Curve is the user's difficulty progression preference.
type Curve string

const (
	CurveGentle     Curve = "gentle"
	CurveBalanced   Curve = "balanced"
	CurveAggressive Curve = "aggressive"
)

var difficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExamLevel}

func difficultyIndex(d Difficulty) int {
	for i, v := range difficultyOrder {
		if v == d {
			return i
		}
	}
	return 1 // unknown settles on medium
}

// SelectDifficulty maps a mastery score to its base difficulty band.
func SelectDifficulty(masteryScore float64) Difficulty {
	switch {
	case masteryScore < 40:
		return DifficultyEasy
	case masteryScore < 60:
		return DifficultyMedium
	case masteryScore < 80:
		return DifficultyHard
	default:
		return DifficultyExamLevel
	}
}

// SelectDifficultyAdaptive adjusts the base band for trend and exam
// proximity. A declining trend steps one band down to rebuild
// confidence; an improving trend steps up only under an aggressive
// curve. Deadline overrides win over the trend adjustment: close to an
// exam a strong topic drills at exam level while a weak one closes the
// gap at medium.
func SelectDifficultyAdaptive(masteryScore float64, trend mastery.Trend, daysUntilExam int, curve Curve) Difficulty {
	base := SelectDifficulty(masteryScore)

	if trend == mastery.TrendDeclining {
		idx := difficultyIndex(base)
		if idx > 0 {
			base = difficultyOrder[idx-1]
		}
	} else if trend == mastery.TrendImproving && curve == CurveAggressive {
		idx := difficultyIndex(base)
		if idx < len(difficultyOrder)-1 {
			base = difficultyOrder[idx+1]
		}
	}

	if daysUntilExam <= 3 && masteryScore < 60 {
		return DifficultyMedium
	}
	if daysUntilExam <= 7 && masteryScore >= 60 {
		return DifficultyExamLevel
	}

	return base
}

// DurationForMastery returns the practice block length in minutes for a
// topic at the given mastery: weaker topics get shorter, easier blocks.
func DurationForMastery(masteryScore float64) int {
	switch {
	case masteryScore < 40:
		return 30
	case masteryScore < 70:
		return 45
	default:
		return 60
	}
}
