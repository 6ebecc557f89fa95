package streak

import (
	"sort"

	"github.com/embertrack/ember/internal/dates"
)

// Current calculates the length of the streak ending at (or still
// reachable from) today. Days must be distinct logged days; order does not
// matter, the function sorts a copy.
//
// The streak counts from the most recent day backwards while each pair is
// adjacent. If the most recent day is neither today nor within a
// still-forgivable gap of today, the streak can no longer be extended and
// the result is 0. Note this conflates "not yet logged today" with "lost"
// when the grace window is exhausted — callers that need to distinguish
// the two should also look at Result.LastDay and AtRisk.
func Current(days []dates.Day, rules Rules, today dates.Day) int {
	if len(days) == 0 {
		return 0
	}

	desc := sortedCopy(days)
	sort.Slice(desc, func(i, j int) bool { return desc[j].Before(desc[i]) })

	mostRecent := desc[0]
	if !mostRecent.Equal(today) && !Adjacent(mostRecent, today, rules) {
		return 0
	}

	count := 1
	for i := 1; i < len(desc); i++ {
		if !Adjacent(desc[i], desc[i-1], rules) {
			break
		}
		count++
	}
	return count
}

// Longest calculates the longest streak anywhere in the log. A non-empty
// log always has a longest streak of at least 1.
func Longest(days []dates.Day, rules Rules) int {
	if len(days) == 0 {
		return 0
	}

	asc := sortedCopy(days)
	sort.Slice(asc, func(i, j int) bool { return asc[i].Before(asc[j]) })

	longest, run := 1, 1
	for i := 1; i < len(asc); i++ {
		if Adjacent(asc[i-1], asc[i], rules) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// sortedCopy clones the input so callers never see their slice reordered.
func sortedCopy(days []dates.Day) []dates.Day {
	out := make([]dates.Day, len(days))
	copy(out, days)
	return out
}
