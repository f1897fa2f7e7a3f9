package planner

import (
	"errors"
	"fmt"
	"testing"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/replan"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bad score", fmt.Errorf("record quiz: %w", mastery.ErrInvalidScore), true},
		{"bad attempts", mastery.ErrInvalidAttempts, true},
		{"bad weight", fmt.Errorf("topic x: %w", priority.ErrInvalidWeight), true},
		{"bad horizon", priority.ErrInvalidHorizon, true},
		{"bad window", timeslot.ErrInvalidWindow, true},
		{"bad interval", fmt.Errorf("availability: %w", timeslot.ErrInvalidInterval), true},
		{"bad constraints", schedule.ErrInvalidConstraints, true},
		{"unknown trigger", fmt.Errorf("handle: %w", replan.ErrUnknownTrigger), true},
		{"not found", ErrNotFound, false},
		{"terminal task", schedule.ErrTerminalTask, false},
		{"plain error", errors.New("disk on fire"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"terminal task", fmt.Errorf("mark missed: %w", schedule.ErrTerminalTask), true},
		{"bad transition", schedule.ErrBadTransition, true},
		{"validation", mastery.ErrInvalidScore, false},
		{"not found", fmt.Errorf("topic: %w", ErrNotFound), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConflict(tt.err); got != tt.want {
				t.Errorf("IsConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
