package streak

import (
	"testing"

	"github.com/embertrack/ember/internal/dates"
)

func mustDay(t *testing.T, s string) dates.Day {
	t.Helper()
	d, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestAdjacentConsecutiveDays(t *testing.T) {
	a := mustDay(t, "2026-02-25")
	b := mustDay(t, "2026-02-26")
	if !Adjacent(a, b, Rules{}) {
		t.Error("consecutive days should be adjacent with no grace")
	}
}

func TestAdjacentSameDayNever(t *testing.T) {
	d := mustDay(t, "2026-02-26")
	if Adjacent(d, d, Rules{GraceDays: 5, WeekendGrace: true}) {
		t.Error("the same day twice is never adjacent")
	}
}

func TestAdjacentGapWithoutGrace(t *testing.T) {
	a := mustDay(t, "2026-02-23")
	b := mustDay(t, "2026-02-26")
	if Adjacent(a, b, Rules{}) {
		t.Error("a 2-day gap should break the streak with no grace")
	}
}

func TestAdjacentGraceWindow(t *testing.T) {
	a := mustDay(t, "2026-02-23")
	b := mustDay(t, "2026-02-26") // two missed days between

	if !Adjacent(a, b, Rules{GraceDays: 2}) {
		t.Error("gap of 3 should hold with 2 grace days")
	}
	if Adjacent(a, b, Rules{GraceDays: 1}) {
		t.Error("gap of 3 should break with only 1 grace day")
	}
}

func TestAdjacentWeekendGrace(t *testing.T) {
	fri := mustDay(t, "2026-08-28")
	mon := mustDay(t, "2026-08-31")
	rules := Rules{WeekendGrace: true}

	if !Adjacent(fri, mon, rules) {
		t.Error("Friday→Monday should hold when the skipped days are all weekend")
	}
	if Adjacent(fri, mon, Rules{}) {
		t.Error("Friday→Monday should break without weekend grace")
	}
}

func TestAdjacentWeekendGraceRequiresWeekendOnlyGap(t *testing.T) {
	// Thursday→Sunday spans the weekend but also skips Friday.
	thu := mustDay(t, "2026-08-27")
	sun := mustDay(t, "2026-08-30")
	if Adjacent(thu, sun, Rules{WeekendGrace: true}) {
		t.Error("a gap containing a weekday should not be forgiven by weekend grace")
	}

	// Saturday→Monday skips only Sunday.
	sat := mustDay(t, "2026-08-29")
	mon := mustDay(t, "2026-08-31")
	if !Adjacent(sat, mon, Rules{WeekendGrace: true}) {
		t.Error("Saturday→Monday skips only Sunday and should hold")
	}
}

func TestAdjacentSymmetry(t *testing.T) {
	rules := []Rules{
		{},
		{GraceDays: 2},
		{WeekendGrace: true},
		{GraceDays: 1, WeekendGrace: true},
	}
	pairs := [][2]string{
		{"2026-02-25", "2026-02-26"},
		{"2026-02-20", "2026-02-26"},
		{"2026-08-28", "2026-08-31"},
		{"2026-02-26", "2026-02-26"},
	}
	for _, r := range rules {
		for _, p := range pairs {
			a, b := mustDay(t, p[0]), mustDay(t, p[1])
			if Adjacent(a, b, r) != Adjacent(b, a, r) {
				t.Errorf("Adjacent(%s, %s, %+v) is not symmetric", p[0], p[1], r)
			}
		}
	}
}

func TestRulesValidate(t *testing.T) {
	if err := (Rules{GraceDays: 0}).Validate(); err != nil {
		t.Errorf("zero grace should be valid, got %v", err)
	}
	if err := (Rules{GraceDays: -1}).Validate(); err == nil {
		t.Error("negative grace days should fail validation")
	}
}
