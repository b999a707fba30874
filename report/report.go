/*
report.go - Top-up derivation

PURPOSE:
  The arithmetic heart of the system. Given a validated balance, the meal
  price, and the number of weekdays left until payday, derives:

    balanceInMeals = floor(balance / price)
    mealsNeeded    = weekdaysRemaining - balanceInMeals
    topupNeeded    = mealsNeeded * price

  mealsNeeded and topupNeeded may be negative: that is a surplus, a valid
  "no top-up needed" signal the caller interprets, not something to clamp.

PURITY:
  Compute has no side effects and no hidden inputs. Identical arguments
  always yield an identical Report.
*/
package report

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/lunch-engine/balance"
)

// ErrNonPositivePrice is returned when the meal price is zero or
// negative. Startup validation makes this unreachable in practice; the
// guard stays because dividing by it would be worse.
var ErrNonPositivePrice = errors.New("price per meal must be positive")

// Report is the computed top-up summary, built fresh per request.
type Report struct {
	CurrentBalance   decimal.Decimal
	BalanceInMeals   int64
	WeekdaysUntilPay int
	PricePerMeal     decimal.Decimal
	MealsNeeded      int64
	TopupNeeded      decimal.Decimal
	LastToppedUp     time.Time
	CurrencyUnit     string
}

// Compute derives the top-up report from a balance record.
func Compute(rec balance.Record, pricePerMeal decimal.Decimal, weekdaysRemaining int) (Report, error) {
	if !pricePerMeal.IsPositive() {
		return Report{}, ErrNonPositivePrice
	}

	balanceInMeals := rec.Amount.Div(pricePerMeal).Floor().IntPart()
	mealsNeeded := int64(weekdaysRemaining) - balanceInMeals
	topupNeeded := decimal.NewFromInt(mealsNeeded).Mul(pricePerMeal)

	return Report{
		CurrentBalance:   rec.Amount,
		BalanceInMeals:   balanceInMeals,
		WeekdaysUntilPay: weekdaysRemaining,
		PricePerMeal:     pricePerMeal,
		MealsNeeded:      mealsNeeded,
		TopupNeeded:      topupNeeded,
		LastToppedUp:     rec.LastToppedUp,
		CurrencyUnit:     rec.CurrencyUnit,
	}, nil
}
