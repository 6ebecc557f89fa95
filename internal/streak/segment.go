package streak

import (
	"sort"

	"github.com/embertrack/ember/internal/dates"
)

// Period is one maximal run of mutually adjacent logged days.
type Period struct {
	Start  dates.Day
	End    dates.Day
	Length int // distinct logged days in the run, not the calendar span
}

// Periods partitions the log into streak periods, oldest first. Periods
// never overlap and a grace-forgiven gap stays inside one period without
// adding to its length.
func Periods(days []dates.Day, rules Rules) []Period {
	if len(days) == 0 {
		return nil
	}

	asc := sortedCopy(days)
	sort.Slice(asc, func(i, j int) bool { return asc[i].Before(asc[j]) })

	var periods []Period
	start, length := asc[0], 1
	for i := 1; i < len(asc); i++ {
		if Adjacent(asc[i-1], asc[i], rules) {
			length++
			continue
		}
		periods = append(periods, Period{Start: start, End: asc[i-1], Length: length})
		start, length = asc[i], 1
	}
	periods = append(periods, Period{Start: start, End: asc[len(asc)-1], Length: length})
	return periods
}
