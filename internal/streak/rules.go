// Package streak computes consecutive-day streaks, streak history, and
// milestone progress from a log of activity days. All functions are pure:
// the reference day ("today") is passed in explicitly, nothing reads the
// system clock, and results are re-derived from the full input on every
// call.
package streak

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned when a Rules value is outside its domain.
var ErrInvalidRules = errors.New("invalid streak rules")

// Rules configures what counts as an unbroken streak for one activity type.
type Rules struct {
	// GraceDays is how many fully missed days are still tolerated as the
	// same streak. 0 means strict consecutive days.
	GraceDays int
	// WeekendGrace additionally forgives gaps whose skipped days are all
	// Saturdays/Sundays (log Friday, log Monday, streak holds).
	WeekendGrace bool
	// CountFuture includes days after the reference day in calculations.
	// Off by default; useful for simulation and tests only.
	CountFuture bool
}

// Validate checks the rules before any log traversal.
func (r Rules) Validate() error {
	if r.GraceDays < 0 {
		return fmt.Errorf("%w: grace days must be >= 0, got %d", ErrInvalidRules, r.GraceDays)
	}
	return nil
}
