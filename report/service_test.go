package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/lunch-engine/balance"
	"github.com/warp/lunch-engine/calendar"
)

// fakeSource returns a canned record or error and counts calls.
type fakeSource struct {
	rec   balance.Record
	err   error
	calls int
}

func (f *fakeSource) FetchBalance(ctx context.Context) (balance.Record, error) {
	f.calls++
	return f.rec, f.err
}

func TestService_Generate(t *testing.T) {
	// GIVEN: Tuesday April 20 2027, payment day 15; May 15 2027 is a
	//        Saturday, so payday resolves to Friday May 14 - 19 weekdays
	//        away inclusive of both ends
	// WHEN: The card holds 130 and meals cost 25
	// THEN: 5 affordable meals, 14 more needed, 350 to top up

	source := &fakeSource{rec: balance.Record{
		Amount:       decimal.NewFromInt(130),
		CurrencyUnit: "NOK",
		LastToppedUp: time.Date(2027, time.April, 18, 9, 0, 0, 0, time.Local),
	}}
	svc := NewService(source, calendar.NationalCalendar{}, 15, decimal.NewFromInt(25))

	now := time.Date(2027, time.April, 20, 12, 0, 0, 0, time.Local)
	rep, err := svc.Generate(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 19, rep.WeekdaysUntilPay)
	assert.Equal(t, int64(5), rep.BalanceInMeals)
	assert.Equal(t, int64(14), rep.MealsNeeded)
	assert.True(t, rep.TopupNeeded.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 1, source.calls, "exactly one fetch per report")
}

func TestService_FetchFailureAbortsReport(t *testing.T) {
	source := &fakeSource{err: errors.New("portal down")}
	svc := NewService(source, calendar.NoopCalendar{}, 15, decimal.NewFromInt(25))

	rep, err := svc.Generate(context.Background(), time.Date(2026, time.March, 16, 8, 0, 0, 0, time.Local))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, Report{}, rep, "failed generation must not leak a partial report")
}

func TestService_ExtractionFailureClassified(t *testing.T) {
	source := &fakeSource{err: &balance.ExtractionError{Field: "balance", Input: "???"}}
	svc := NewService(source, calendar.NoopCalendar{}, 15, decimal.NewFromInt(25))

	_, err := svc.Generate(context.Background(), time.Date(2026, time.March, 16, 8, 0, 0, 0, time.Local))

	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, balance.ErrExtraction)
}

func TestService_CorruptCalendarSurfaces(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, everyDayHoliday{}, 15, decimal.NewFromInt(25))

	_, err := svc.Generate(context.Background(), time.Date(2026, time.March, 16, 8, 0, 0, 0, time.Local))

	require.Error(t, err)
	assert.Zero(t, source.calls, "no fetch when payday resolution fails")
}

type everyDayHoliday struct{}

func (everyDayHoliday) HolidaysFor(year int) calendar.HolidaySet {
	set := calendar.HolidaySet{}
	for d := calendar.NewDate(year, time.January, 1); d.Year() == year; d = d.AddDays(1) {
		set.Add(d)
	}
	return set
}
