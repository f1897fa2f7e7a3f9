package planner

import (
	"errors"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/replan"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

// ErrNotFound marks lookups of entities that do not exist.
var ErrNotFound = errors.New("planner: not found")

// IsValidation reports whether err stems from input the caller can fix:
// out-of-range scores, malformed windows, bad constraints.
func IsValidation(err error) bool {
	for _, target := range []error{
		mastery.ErrInvalidScore,
		mastery.ErrInvalidAttempts,
		mastery.ErrInvalidAlpha,
		priority.ErrInvalidWeight,
		priority.ErrInvalidHorizon,
		timeslot.ErrInvalidWindow,
		timeslot.ErrInvalidInterval,
		schedule.ErrInvalidConstraints,
		schedule.ErrInvalidDuration,
		replan.ErrUnknownTrigger,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a clash with current state, such as
// driving a terminal task through another transition.
func IsConflict(err error) bool {
	return errors.Is(err, schedule.ErrTerminalTask) ||
		errors.Is(err, schedule.ErrBadTransition)
}
