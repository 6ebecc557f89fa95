package streak

// Ladder is the fixed sequence of streak lengths considered noteworthy.
// It is static content, not derived data — the same ladder applies to
// every activity type.
var Ladder = []int{3, 5, 7, 10, 14, 21, 30, 50, 60, 75, 100, 150, 200, 250, 365, 500, 1000}

// beyondLadderStep extends targets past the last rung: once you're over
// 1000 days, the next goal is always 100 days out.
const beyondLadderStep = 100

// Progress describes where a streak length sits relative to the ladder.
type Progress struct {
	Next      int // smallest rung strictly greater than the streak
	Percent   int // 0–100 progress from the previous rung to Next
	Remaining int // days until Next
}

// MilestoneFor reports whether length sits exactly on a ladder rung.
func MilestoneFor(length int) (int, bool) {
	for _, m := range Ladder {
		if m == length {
			return m, true
		}
	}
	return 0, false
}

// NextMilestone returns the smallest rung strictly greater than length,
// or length+100 once the ladder is exhausted.
func NextMilestone(length int) int {
	for _, m := range Ladder {
		if m > length {
			return m
		}
	}
	return length + beyondLadderStep
}

// ProgressFor computes milestone progress for a streak length. Percent is
// measured from the highest rung at or below length (0 when below the
// first rung) and clamped to [0, 100].
func ProgressFor(length int) Progress {
	next := NextMilestone(length)

	prev := 0
	for _, m := range Ladder {
		if m <= length {
			prev = m
		}
	}

	pct := 0
	if span := next - prev; span > 0 {
		pct = (100*(length-prev) + span/2) / span // round to nearest
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return Progress{Next: next, Percent: pct, Remaining: next - length}
}
