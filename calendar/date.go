/*
date.go - Civil date value type

PURPOSE:
  A Date is an immutable calendar day in local civil time. All payday and
  weekday arithmetic in this system operates on whole days, so Date carries
  day granularity only: the time-of-day component is always midnight.

DESIGN PRINCIPLES:
  1. Immutability: every operation returns a new Date; nothing is mutated
     in place, so a walking cursor can never alias the value it is being
     compared against.
  2. Local time: the system deliberately uses the host clock's location
     (no timezone handling beyond that).
  3. ISO keys: Date.ISO() is the canonical map key for holiday sets.

SEE ALSO:
  - holidays.go: Calendar interface and HolidaySet keyed by ISO date
  - payday package: the walking algorithms built on Date
*/
package calendar

import (
	"math"
	"time"
)

// Date is a calendar day in local civil time, normalized to midnight.
type Date struct {
	t time.Time
}

// NewDate constructs a Date for the given year/month/day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day on the host clock.
func Today() Date {
	return DateOf(time.Now())
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return DateOf(d.t.AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return DateOf(d.t.AddDate(0, n, 0)) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Time returns the date as a time.Time at local midnight.
func (d Date) Time() time.Time { return d.t }

// ISO returns the date formatted as YYYY-MM-DD, the canonical set key.
func (d Date) ISO() string { return d.t.Format("2006-01-02") }

func (d Date) String() string { return d.ISO() }

// DaysBetween returns to minus from in whole days. Negative when to is
// before from. Rounded, not truncated: local midnights sit 23 or 25
// hours apart across a DST transition.
func DaysBetween(from, to Date) int {
	return int(math.Round(to.t.Sub(from.t).Hours() / 24))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
