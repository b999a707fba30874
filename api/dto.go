/*
dto.go - JSON shapes for the HTTP API

PURPOSE:
  Decouples the wire contract from the internal report type. Amounts are
  serialized as JSON numbers; the last-top-up instant is an ISO-8601
  string in UTC.
*/
package api

import (
	"time"

	"github.com/warp/lunch-engine/report"
)

// ReportDTO is the success body for GET /.
type ReportDTO struct {
	CurrentBalance        float64 `json:"currentBalance"`
	CurrentBalanceInMeals int64   `json:"currentBalanceInNumberOfMeals"`
	BalanceCurrencyUnit   string  `json:"balanceCurrencyUnit"`
	WeekdaysUntilPayment  int     `json:"weekdaysUntilNextPayment"`
	PricePerMeal          float64 `json:"pricePerMeal"`
	MealsNeeded           int64   `json:"mealsNeeded"`
	TopupNeeded           float64 `json:"topupNeeded"`
	LastToppedUpUTC       string  `json:"lastToppedUpUTC"`
}

// ErrorDTO is the failure body for every endpoint.
type ErrorDTO struct {
	Error string `json:"error"`
}

func toReportDTO(r report.Report) ReportDTO {
	currentBalance, _ := r.CurrentBalance.Float64()
	pricePerMeal, _ := r.PricePerMeal.Float64()
	topupNeeded, _ := r.TopupNeeded.Float64()

	return ReportDTO{
		CurrentBalance:        currentBalance,
		CurrentBalanceInMeals: r.BalanceInMeals,
		BalanceCurrencyUnit:   r.CurrencyUnit,
		WeekdaysUntilPayment:  r.WeekdaysUntilPay,
		PricePerMeal:          pricePerMeal,
		MealsNeeded:           r.MealsNeeded,
		TopupNeeded:           topupNeeded,
		LastToppedUpUTC:       r.LastToppedUp.UTC().Format(time.RFC3339),
	}
}
