package mastery

import "errors"

// Validation errors for the mastery package.
// Use errors.Is to check: errors.Is(err, mastery.ErrInvalidScore)
var (
	ErrInvalidScore    = errors.New("mastery: quiz score out of range [0,100]")
	ErrInvalidAttempts = errors.New("mastery: attempt count must be positive")
	ErrInvalidAlpha    = errors.New("mastery: alpha out of range [0,1]")
)
