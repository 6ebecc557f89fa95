package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	d, err := Parse("2026-08-31")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.String() != "2026-08-31" {
		t.Errorf("round-trip = %q, want 2026-08-31", d.String())
	}
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2026/08/31", "08-31-2026", "2026-8-31"} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestParseOutOfRange(t *testing.T) {
	// time.Parse rejects these outright, but the round-trip check guards
	// against any normalization slipping through.
	for _, s := range []string{"2026-02-30", "2026-13-01", "2026-00-10"} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestOfUsesReferenceZone(t *testing.T) {
	// 2026-03-10 02:00 UTC is still 2026-03-09 in New York.
	instant := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	if got := Of(instant, ny).String(); got != "2026-03-09" {
		t.Errorf("Of in New York = %s, want 2026-03-09", got)
	}
	if got := Of(instant, nil).String(); got != "2026-03-10" {
		t.Errorf("Of in UTC = %s, want 2026-03-10", got)
	}
}

func TestDiff(t *testing.T) {
	a := New(2026, time.February, 24)
	b := New(2026, time.February, 26)
	if Diff(a, b) != 2 {
		t.Errorf("Diff = %d, want 2", Diff(a, b))
	}
	if Diff(b, a) != 2 {
		t.Errorf("Diff should be order-independent, got %d", Diff(b, a))
	}
	if Diff(a, a) != 0 {
		t.Errorf("Diff same day = %d, want 0", Diff(a, a))
	}
}

func TestDiffAcrossDSTBoundary(t *testing.T) {
	// Days are midnight UTC, so a DST transition in the reference zone must
	// not shift the count.
	a := New(2026, time.March, 7)
	b := New(2026, time.March, 9) // US spring-forward happens on the 8th
	if Diff(a, b) != 2 {
		t.Errorf("Diff across DST = %d, want 2", Diff(a, b))
	}
}

func TestWeekend(t *testing.T) {
	sat := New(2026, time.August, 29)
	sun := New(2026, time.August, 30)
	mon := New(2026, time.August, 31)
	if !sat.Weekend() || !sun.Weekend() {
		t.Error("Saturday/Sunday should be weekend days")
	}
	if mon.Weekend() {
		t.Error("Monday should not be a weekend day")
	}
}

func TestAddDaysAndOrdering(t *testing.T) {
	d := New(2026, time.February, 28)
	next := d.AddDays(1)
	if next.String() != "2026-03-01" {
		t.Errorf("AddDays over month boundary = %s, want 2026-03-01", next.String())
	}
	if !d.Before(next) || !next.After(d) {
		t.Error("ordering helpers disagree with AddDays")
	}
	if !d.Equal(next.AddDays(-1)) {
		t.Error("AddDays(-1) should invert AddDays(1)")
	}
}
