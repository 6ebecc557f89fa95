package streak

import "github.com/embertrack/ember/internal/dates"

// Adjacent reports whether two logged days count as an unbroken streak
// link under the given rules. It is the single source of truth for "the
// streak continues" — the calculator and segmenter never re-implement gap
// logic. Order of a and b does not matter.
//
// A pair is adjacent when any of the following holds:
//  1. the days are exactly one apart;
//  2. GraceDays > 0 and the gap is within the grace window;
//  3. WeekendGrace is on and every day strictly between the two is a
//     Saturday or Sunday (the gap must consist entirely of weekend days,
//     merely spanning a weekend is not enough).
//
// The same day twice is not adjacent: the activity log never holds two
// records for one day, so the case carries no meaning here.
func Adjacent(a, b dates.Day, rules Rules) bool {
	gap := dates.Diff(a, b)
	switch {
	case gap == 1:
		return true
	case gap == 0:
		return false
	case rules.GraceDays > 0 && gap <= rules.GraceDays+1:
		return true
	case rules.WeekendGrace && gap <= 3:
		return weekendOnlyBetween(a, b)
	}
	return false
}

// weekendOnlyBetween reports whether every day strictly between a and b is
// a weekend day.
func weekendOnlyBetween(a, b dates.Day) bool {
	lo, hi := a, b
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	for d := lo.AddDays(1); d.Before(hi); d = d.AddDays(1) {
		if !d.Weekend() {
			return false
		}
	}
	return true
}
