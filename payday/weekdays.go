/*
weekdays.go - Workday counting

PURPOSE:
  Counts how many meals the remaining stretch until payday requires: one
  per weekday (Monday-Friday) in the inclusive range from today through
  the payday. Holidays do not reduce the count - a holiday Monday is
  still a weekday here; only Saturday and Sunday are excluded.
*/
package payday

import (
	"github.com/warp/lunch-engine/calendar"
)

// WeekdaysBetween counts the weekdays in the inclusive range [from, to].
// The walk starts a cursor at to and steps it backward one day per
// iteration; the cursor is both the value tested for weekend-ness and
// the value stepped, so the two can never diverge. A to before from
// yields zero iterations and a zero count, a defined boundary rather
// than an error.
func WeekdaysBetween(from, to calendar.Date) int {
	count := 0
	cursor := to
	for remaining := calendar.DaysBetween(from, to); remaining >= 0; remaining-- {
		if !cursor.IsWeekend() {
			count++
		}
		cursor = cursor.AddDays(-1)
	}
	return count
}
