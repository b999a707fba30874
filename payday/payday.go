/*
payday.go - Next-payday resolution

PURPOSE:
  Resolves the next date salary actually lands, starting from a configured
  day of month. The convention is the common prepaid-salary one: when the
  configured day falls on a weekend or holiday, payment moves to the
  preceding business day, never the following one.

ALGORITHM:
  1. Build a candidate on the configured day of the current month, at
     midnight. A configured day past the end of the month clamps to the
     month's last day (day 31 reads as "last banking day").
  2. If that moment is already behind the clock, the payment for this
     month has happened; advance the candidate one calendar month.
  3. Walk the candidate backward one day at a time while it sits on a
     Saturday, Sunday, or holiday. The holiday lookup follows the cursor's
     own year, so a walk across New Year consults the right year's set.

  The walk is capped: a calendar claiming over a year of consecutive
  non-business days is corrupt, and the resolver fails instead of walking
  forever.

SEE ALSO:
  - weekdays.go: counting workdays up to the resolved payday
  - calendar package: Date and Calendar
*/
package payday

import (
	"errors"
	"fmt"
	"time"

	"github.com/warp/lunch-engine/calendar"
)

// ErrCalendarExhausted is returned when the backward walk finds no
// business day within a full year of the candidate.
var ErrCalendarExhausted = errors.New("no business day within a year of the candidate payday")

// maxBackwardSteps bounds the holiday walk; longer than any real run of
// consecutive weekends and holidays.
const maxBackwardSteps = 366

// NextPayday resolves the next adjusted payday after (or on) now.
func NextPayday(now time.Time, dayOfMonth int, cal calendar.Calendar) (calendar.Date, error) {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return calendar.Date{}, fmt.Errorf("payment day of month %d outside 1-31", dayOfMonth)
	}

	candidate := candidateFor(now.Year(), now.Month(), dayOfMonth)

	// Compared as a moment: at 09:00 on the configured day the midnight
	// candidate is already past, and the next payment is a month out.
	if candidate.Time().Before(now) {
		year, month := candidate.Year(), candidate.Month()
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
		candidate = candidateFor(year, month, dayOfMonth)
	}

	for steps := 0; candidate.IsWeekend() || cal.HolidaysFor(candidate.Year()).Contains(candidate); steps++ {
		if steps >= maxBackwardSteps {
			return calendar.Date{}, ErrCalendarExhausted
		}
		candidate = candidate.AddDays(-1)
	}
	return candidate, nil
}

// candidateFor builds the unadjusted payday for a month, clamping the
// configured day to the month's length.
func candidateFor(year int, month time.Month, dayOfMonth int) calendar.Date {
	if last := calendar.DaysInMonth(year, month); dayOfMonth > last {
		dayOfMonth = last
	}
	return calendar.NewDate(year, month, dayOfMonth)
}
