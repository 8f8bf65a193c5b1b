package engine

import "errors"

// Caller-misuse errors. None of these are retryable: a correct caller never
// reaches the state that produces them.
var (
	ErrNoScents          = errors.New("training session requires at least one scent")
	ErrInvalidTransition = errors.New("action is not valid in the current phase")
	ErrNotTimedPhase     = errors.New("timer controls are only available during breathe, smell, and rest")
	ErrNotRating         = errors.New("a rating can only be submitted during the rate phase")
	ErrRatingOutOfRange  = errors.New("rating must be between 0 and 10")
)
