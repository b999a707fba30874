/*
holidays.go - Holiday calendars

PURPOSE:
  Answers one question for the payday resolver: which dates in a given year
  are holidays? The Calendar contract is a pure function of year - no I/O,
  no hidden caching across years, and an unknown year yields an empty set
  rather than an error.

IMPLEMENTATIONS:
  NationalCalendar:
    Norwegian public holidays, computed per year. Fixed dates plus the
    Easter-derived movable feasts (computus below).

  ClosureCalendar (closures.go):
    Extra company closure days loaded from a YAML file.

  Composite:
    Union of several calendars, for layering closures over national days.

  NoopCalendar:
    Always empty. Used in tests and when holiday handling is disabled.
*/
package calendar

import (
	"time"
)

// HolidaySet is a set of calendar dates keyed by ISO date string.
type HolidaySet map[string]Date

// Contains reports whether the set holds the given date.
func (s HolidaySet) Contains(d Date) bool {
	_, ok := s[d.ISO()]
	return ok
}

// Add inserts a date; duplicates collapse onto the same key.
func (s HolidaySet) Add(d Date) {
	s[d.ISO()] = d
}

// Calendar provides the holiday dates observed in a year.
type Calendar interface {
	// HolidaysFor returns the set of holidays in the given year.
	// Pure function of year; returns an empty set for years with no data.
	HolidaysFor(year int) HolidaySet
}

// NoopCalendar is an empty calendar for when holidays are disabled.
type NoopCalendar struct{}

func (NoopCalendar) HolidaysFor(year int) HolidaySet { return HolidaySet{} }

// Composite unions the holiday sets of several calendars.
type Composite []Calendar

func (c Composite) HolidaysFor(year int) HolidaySet {
	merged := HolidaySet{}
	for _, cal := range c {
		for _, d := range cal.HolidaysFor(year) {
			merged.Add(d)
		}
	}
	return merged
}

// NationalCalendar computes Norwegian public holidays for any year.
type NationalCalendar struct{}

func (NationalCalendar) HolidaysFor(year int) HolidaySet {
	easter := easterSunday(year)

	set := HolidaySet{}
	for _, d := range []Date{
		NewDate(year, time.January, 1),   // Første nyttårsdag
		easter.AddDays(-3),               // Skjærtorsdag
		easter.AddDays(-2),               // Langfredag
		easter,                           // Første påskedag
		easter.AddDays(1),                // Andre påskedag
		NewDate(year, time.May, 1),       // Arbeidernes dag
		NewDate(year, time.May, 17),      // Grunnlovsdagen
		easter.AddDays(39),               // Kristi himmelfartsdag
		easter.AddDays(49),               // Første pinsedag
		easter.AddDays(50),               // Andre pinsedag
		NewDate(year, time.December, 25), // Første juledag
		NewDate(year, time.December, 26), // Andre juledag
	} {
		set.Add(d)
	}
	return set
}

// easterSunday computes Easter Sunday for a Gregorian year using the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func easterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day)
}
