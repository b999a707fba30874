/*
service.go - Report orchestration

PURPOSE:
  Wires the pipeline: resolve payday -> count weekdays -> fetch balance
  -> compute. Any failure aborts the whole report; the service never
  hands back a partially filled Report.

BOUNDARIES:
  The balance fetch is the only I/O and hides behind BalanceSource. The
  service runs it at most once per Generate call, caches nothing, and
  retries nothing - a retry policy, if one ever exists, belongs to the
  source.
*/
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/lunch-engine/balance"
	"github.com/warp/lunch-engine/calendar"
	"github.com/warp/lunch-engine/payday"
)

// ErrFetch wraps every failure of the external balance fetch so callers
// can classify it with errors.Is.
var ErrFetch = errors.New("balance fetch failed")

// BalanceSource fetches the current account balance from the portal.
type BalanceSource interface {
	FetchBalance(ctx context.Context) (balance.Record, error)
}

// Service generates top-up reports.
type Service struct {
	Source       BalanceSource
	Calendar     calendar.Calendar
	DayOfMonth   int
	PricePerMeal decimal.Decimal
}

// NewService builds a report service. Configuration is validated at
// startup; the service treats it as immutable.
func NewService(source BalanceSource, cal calendar.Calendar, dayOfMonth int, pricePerMeal decimal.Decimal) *Service {
	return &Service{
		Source:       source,
		Calendar:     cal,
		DayOfMonth:   dayOfMonth,
		PricePerMeal: pricePerMeal,
	}
}

// Generate produces a fresh report for the given moment.
func (s *Service) Generate(ctx context.Context, now time.Time) (Report, error) {
	nextPay, err := payday.NextPayday(now, s.DayOfMonth, s.Calendar)
	if err != nil {
		return Report{}, fmt.Errorf("resolve payday: %w", err)
	}

	weekdays := payday.WeekdaysBetween(calendar.DateOf(now), nextPay)

	rec, err := s.Source.FetchBalance(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return Compute(rec, s.PricePerMeal, weekdays)
}
