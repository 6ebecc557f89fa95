package streak

import (
	"testing"
)

func TestPeriodsEmpty(t *testing.T) {
	if got := Periods(nil, Rules{}); got != nil {
		t.Errorf("Periods(nil) = %v, want nil", got)
	}
}

func TestPeriodsSingleRun(t *testing.T) {
	days := mustDays(t, "2026-02-23", "2026-02-24", "2026-02-25")
	periods := Periods(days, Rules{})
	if len(periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(periods))
	}
	p := periods[0]
	if p.Start.String() != "2026-02-23" || p.End.String() != "2026-02-25" || p.Length != 3 {
		t.Errorf("period = %s..%s (%d), want 2026-02-23..2026-02-25 (3)",
			p.Start, p.End, p.Length)
	}
}

func TestPeriodsSplitsOnBreak(t *testing.T) {
	days := mustDays(t,
		"2026-02-10", "2026-02-11",
		"2026-02-20", "2026-02-21", "2026-02-22",
	)
	periods := Periods(days, Rules{})
	if len(periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(periods))
	}
	if periods[0].Length != 2 || periods[1].Length != 3 {
		t.Errorf("period lengths = %d,%d, want 2,3", periods[0].Length, periods[1].Length)
	}
	// Ascending order, no overlap.
	if !periods[0].End.Before(periods[1].Start) {
		t.Error("periods should be chronological and disjoint")
	}
}

func TestPeriodsGraceKeepsOnePeriod(t *testing.T) {
	// A forgiven gap stays inside the period; length counts logged days only.
	days := mustDays(t, "2026-02-20", "2026-02-22", "2026-02-24")
	periods := Periods(days, Rules{GraceDays: 1})
	if len(periods) != 1 {
		t.Fatalf("expected 1 period under grace, got %d", len(periods))
	}
	if periods[0].Length != 3 {
		t.Errorf("length = %d, want 3 (span is 5 days but only 3 logged)", periods[0].Length)
	}

	// Without grace the same days split into three periods.
	strict := Periods(days, Rules{})
	if len(strict) != 3 {
		t.Errorf("expected 3 periods without grace, got %d", len(strict))
	}
}

func TestPeriodsLengthsMatchLongest(t *testing.T) {
	days := mustDays(t,
		"2026-01-05", "2026-01-06", "2026-01-07",
		"2026-02-01",
		"2026-02-20", "2026-02-21",
	)
	rules := Rules{}
	maxLen := 0
	for _, p := range Periods(days, rules) {
		if p.Length > maxLen {
			maxLen = p.Length
		}
	}
	if lng := Longest(days, rules); maxLen != lng {
		t.Errorf("max period length %d != Longest %d", maxLen, lng)
	}
}
