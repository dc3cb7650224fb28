package domain

import (
	"fmt"
	"time"
)

// DateKey identifies a single calendar day. It is comparable and is used as a
// map key by every storage component.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDateKey builds a DateKey from its components
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{Year: year, Month: month, Day: day}
}

// DateKeyFromTime truncates a time.Time to its calendar day
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDateKey parses a "YYYY-MM-DD" string
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateKeyFromTime(t), nil
}

// Time returns midnight of the day in the given location
func (d DateKey) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats the date as "YYYY-MM-DD"
func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero returns true for the zero value
func (d DateKey) IsZero() bool {
	return d == DateKey{}
}

// AddDays returns the date shifted forward by n calendar days
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyFromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is chronologically before other
func (d DateKey) Before(other DateKey) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is chronologically after other
func (d DateKey) After(other DateKey) bool {
	return other.Before(d)
}

// Weekday returns the day of week
func (d DateKey) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// IsWeekend returns true for Saturday and Sunday
func (d DateKey) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InWindow reports whether d falls inside the rolling window
// [today, today+StatusWindowDays-1]
func (d DateKey) InWindow(today DateKey) bool {
	return !d.Before(today) && !d.After(today.AddDays(StatusWindowDays-1))
}
