package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/lunch-engine/balance"
)

func record(amount string) balance.Record {
	return balance.Record{
		Amount:       decimal.RequireFromString(amount),
		CurrencyUnit: "NOK",
		LastToppedUp: time.Date(2026, time.August, 24, 11, 32, 0, 0, time.Local),
	}
}

func TestCompute_Surplus(t *testing.T) {
	// GIVEN: 130 on the card, meals cost 25, 3 weekdays left
	// THEN: 5 affordable meals, surplus of 2, negative top-up of -50

	rep, err := Compute(record("130"), decimal.NewFromInt(25), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(5), rep.BalanceInMeals)
	assert.Equal(t, int64(-2), rep.MealsNeeded)
	assert.True(t, rep.TopupNeeded.Equal(decimal.NewFromInt(-50)), "surplus is not clamped to zero, got %s", rep.TopupNeeded)
}

func TestCompute_EmptyCard(t *testing.T) {
	// GIVEN: Empty card, meals cost 20, 4 weekdays left
	// THEN: 4 meals and 80 needed

	rep, err := Compute(record("0"), decimal.NewFromInt(20), 4)
	require.NoError(t, err)

	assert.Equal(t, int64(0), rep.BalanceInMeals)
	assert.Equal(t, int64(4), rep.MealsNeeded)
	assert.True(t, rep.TopupNeeded.Equal(decimal.NewFromInt(80)))
}

func TestCompute_FlooredMeals(t *testing.T) {
	// 49.90 at 25 per meal is 1 whole meal, not 1.996.
	rep, err := Compute(record("49.90"), decimal.NewFromInt(25), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(1), rep.BalanceInMeals)
	assert.Equal(t, int64(4), rep.MealsNeeded)
	assert.True(t, rep.TopupNeeded.Equal(decimal.NewFromInt(100)))
}

func TestCompute_NonPositivePrice(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := Compute(record("100"), price, 3)
		assert.ErrorIs(t, err, ErrNonPositivePrice, "price %s", price)
	}
}

func TestCompute_Pure(t *testing.T) {
	// Identical inputs always yield identical outputs.
	a, err := Compute(record("130"), decimal.NewFromInt(25), 3)
	require.NoError(t, err)
	b, err := Compute(record("130"), decimal.NewFromInt(25), 3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCompute_CarriesRecordFields(t *testing.T) {
	rec := record("130")
	rep, err := Compute(rec, decimal.NewFromInt(25), 3)
	require.NoError(t, err)

	assert.Equal(t, "NOK", rep.CurrencyUnit)
	assert.Equal(t, rec.LastToppedUp, rep.LastToppedUp)
	assert.True(t, rep.CurrentBalance.Equal(rec.Amount))
	assert.True(t, rep.PricePerMeal.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 3, rep.WeekdaysUntilPay)
}
