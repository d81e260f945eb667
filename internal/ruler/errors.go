package ruler

import "errors"

// Domain errors for picker configuration.
var (
	// ErrBounds indicates a minimum greater than the maximum.
	ErrBounds = errors.New("ruler: minimum exceeds maximum")

	// ErrTick indicates a negative or non-finite tick size.
	ErrTick = errors.New("ruler: tick must be finite and non-negative")

	// ErrMarkCount indicates fewer than one mark interval.
	ErrMarkCount = errors.New("ruler: mark count must be at least 1")

	// ErrSize indicates a non-positive widget or mark dimension.
	ErrSize = errors.New("ruler: size must be positive")

	// ErrNotTrackable is returned when gestures are replayed against a zero tick.
	ErrNotTrackable = errors.New("ruler: tick is zero, interaction disabled")

	// ErrDuration indicates an animation too short to split into steps.
	ErrDuration = errors.New("ruler: animation duration too short")
)
