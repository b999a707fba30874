package payday

import (
	"testing"
	"time"

	"github.com/warp/lunch-engine/calendar"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.NewDate(year, month, day)
}

func TestWeekdaysBetween_ToBeforeFrom(t *testing.T) {
	// GIVEN: to strictly before from
	// THEN: zero, a defined boundary rather than an error

	from := date(2026, time.March, 20)
	to := date(2026, time.March, 16)

	if got := WeekdaysBetween(from, to); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestWeekdaysBetween_SameDay(t *testing.T) {
	mon := date(2026, time.March, 16)
	sat := date(2026, time.March, 21)
	sun := date(2026, time.March, 22)

	if got := WeekdaysBetween(mon, mon); got != 1 {
		t.Errorf("same weekday should count 1, got %d", got)
	}
	if got := WeekdaysBetween(sat, sat); got != 0 {
		t.Errorf("same Saturday should count 0, got %d", got)
	}
	if got := WeekdaysBetween(sun, sun); got != 0 {
		t.Errorf("same Sunday should count 0, got %d", got)
	}
}

func TestWeekdaysBetween_FullWeekIsFive(t *testing.T) {
	// Property: any 7-day inclusive span contains exactly 5 weekdays,
	// wherever it starts.
	start := date(2026, time.March, 16)
	for offset := 0; offset < 14; offset++ {
		from := start.AddDays(offset)
		to := from.AddDays(6)
		if got := WeekdaysBetween(from, to); got != 5 {
			t.Errorf("span %s..%s: expected 5 weekdays, got %d", from, to, got)
		}
	}
}

func TestWeekdaysBetween_PartialSpans(t *testing.T) {
	cases := []struct {
		from, to calendar.Date
		want     int
	}{
		// Mon..Fri
		{date(2026, time.March, 16), date(2026, time.March, 20), 5},
		// Fri..Mon spans the weekend
		{date(2026, time.March, 20), date(2026, time.March, 23), 2},
		// Sat..Sun only
		{date(2026, time.March, 21), date(2026, time.March, 22), 0},
		// Tue Apr 20 2027 .. Fri May 14 2027 (payday scenario span)
		{date(2027, time.April, 20), date(2027, time.May, 14), 19},
	}
	for _, c := range cases {
		if got := WeekdaysBetween(c.from, c.to); got != c.want {
			t.Errorf("WeekdaysBetween(%s, %s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestWeekdaysBetween_HolidaysStillCount(t *testing.T) {
	// Holidays do not reduce the meal count; only Saturday and Sunday do.
	// Dec 25 2026 falls on a Friday.
	from := date(2026, time.December, 21) // Monday
	to := date(2026, time.December, 25)   // Christmas Day, Friday

	if got := WeekdaysBetween(from, to); got != 5 {
		t.Errorf("expected 5 weekdays including the holiday Friday, got %d", got)
	}
}
