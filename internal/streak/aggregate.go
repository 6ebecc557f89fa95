package streak

import (
	"sort"

	"github.com/embertrack/ember/internal/dates"
)

// Result is a derived, read-only snapshot of one activity type's streak
// state. It is rebuilt from the full log on every call and never mutated.
type Result struct {
	Current     int
	Longest     int
	LastDay     *dates.Day // most recent logged day, nil when the log is empty
	ActiveToday bool
	History     []Period // ascending chronological order
}

// Milestones returns the milestone view of the current streak.
func (r Result) Milestones() (reached int, ok bool, progress Progress) {
	reached, ok = MilestoneFor(r.Current)
	return reached, ok, ProgressFor(r.Current)
}

// Evaluate combines the calculator, segmenter, and milestone tracker into
// one snapshot for an activity type. days are the distinct logged days of
// that type; today is the caller-supplied reference day. Rules are
// validated before any traversal.
func Evaluate(days []dates.Day, rules Rules, today dates.Day) (Result, error) {
	if err := rules.Validate(); err != nil {
		return Result{}, err
	}

	days = eligible(days, rules, today)
	if len(days) == 0 {
		return Result{}, nil
	}

	last := maxDay(days)
	return Result{
		Current:     Current(days, rules, today),
		Longest:     Longest(days, rules),
		LastDay:     &last,
		ActiveToday: last.Equal(today),
		History:     Periods(days, rules),
	}, nil
}

// AtRisk reports whether the streak will break unless activity is logged
// before the grace window runs out. An empty log or a day already logged
// today is never at risk. Logging yesterday puts the streak on its last
// strict day, so that is always at risk. Beyond that, only the final
// usable grace day counts: once the gap exceeds GraceDays the streak is
// already lost (Current reports 0), not at risk.
func AtRisk(days []dates.Day, rules Rules, today dates.Day) (bool, error) {
	if err := rules.Validate(); err != nil {
		return false, err
	}

	days = eligible(days, rules, today)
	if len(days) == 0 {
		return false, nil
	}

	last := maxDay(days)
	gap := dates.Diff(last, today)
	switch {
	case gap == 0:
		return false, nil
	case gap == 1:
		return true, nil
	default:
		return gap == rules.GraceDays, nil
	}
}

// eligible drops future-dated days unless the rules opt in to them.
func eligible(days []dates.Day, rules Rules, today dates.Day) []dates.Day {
	if rules.CountFuture {
		return days
	}
	out := make([]dates.Day, 0, len(days))
	for _, d := range days {
		if !d.After(today) {
			out = append(out, d)
		}
	}
	return out
}

func maxDay(days []dates.Day) dates.Day {
	sorted := sortedCopy(days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted[len(sorted)-1]
}
