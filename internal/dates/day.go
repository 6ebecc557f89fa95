// Package dates provides the canonical calendar-day representation used by
// the streak engine. A Day is a year-month-day with no time component,
// normalized to midnight UTC internally so that day arithmetic is exact
// regardless of the wall-clock zone activities were logged in.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Format is the canonical string form of a Day.
const Format = "2006-01-02"

// ErrInvalidDate is returned when a day value cannot be canonicalized.
var ErrInvalidDate = errors.New("invalid date")

// Day is a single calendar day. The zero value is the zero time's day;
// use IsZero to detect it.
type Day struct {
	t time.Time // always midnight UTC
}

// New builds a Day from calendar components.
func New(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse canonicalizes a "YYYY-MM-DD" string into a Day.
// Out-of-range components (e.g. 2026-02-30) fail: time.Parse would silently
// normalize them, so the round-trip is checked explicitly.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d := Day{t: t.UTC()}
	if d.String() != s {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// Of returns the calendar day of an instant, interpreted in loc.
// loc is the application's reference timezone; nil means UTC.
func Of(t time.Time, loc *time.Location) Day {
	if loc != nil {
		t = t.In(loc)
	} else {
		t = t.UTC()
	}
	return New(t.Year(), t.Month(), t.Day())
}

// String returns the canonical "YYYY-MM-DD" form.
func (d Day) String() string {
	return d.t.Format(Format)
}

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the day n calendar days after d (before, if n < 0).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d falls before other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls after other.
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// Weekend reports whether d falls on a Saturday or Sunday.
func (d Day) Weekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Diff returns the number of whole calendar days between a and b,
// order-independent and never negative.
func Diff(a, b Day) int {
	n := int(b.t.Sub(a.t).Hours() / 24)
	if n < 0 {
		n = -n
	}
	return n
}
