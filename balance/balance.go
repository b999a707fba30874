/*
balance.go - Account balance record and text extraction

PURPOSE:
  The account portal renders the balance as text, not as an API. This
  package turns those raw text fields into a validated Record:

    balance text:  "Saldo: 130,50 NOK"   (case-insensitive prefix,
                                          comma or dot decimals)
    date text:     "24.08.2026 11:32"    (DD.MM.YYYY HH:MM, local time)

  Extraction either matches fully or fails with a typed ExtractionError
  naming the offending field - never a default value, never a read from
  a capture group that did not match.

PRECISION:
  Amounts are decimal.Decimal. Money never goes through float64.
*/
package balance

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrExtraction is the sentinel wrapped by every ExtractionError.
var ErrExtraction = errors.New("balance extraction failed")

// ExtractionError reports which raw field failed to parse.
type ExtractionError struct {
	Field string // "balance" or "last_topped_up"
	Input string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: unrecognized input %q", e.Field, e.Input)
}

func (e *ExtractionError) Unwrap() error { return ErrExtraction }

// Record is a validated account balance.
type Record struct {
	Amount       decimal.Decimal
	CurrencyUnit string // [A-Z]{1,5}
	LastToppedUp time.Time
}

var (
	balancePattern  = regexp.MustCompile(`(?i)saldo:\s*(\d+(?:[.,]\d+)?)\s*([A-Za-z]{1,5})\b`)
	lastTopUpLayout = "02.01.2006 15:04"
)

// Extract parses the portal's raw balance and top-up date texts into a
// Record. Both fields must match; a mismatch on either fails the whole
// extraction.
func Extract(balanceText, dateText string) (Record, error) {
	m := balancePattern.FindStringSubmatch(balanceText)
	if m == nil {
		return Record{}, &ExtractionError{Field: "balance", Input: balanceText}
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "."))
	if err != nil || amount.IsNegative() {
		return Record{}, &ExtractionError{Field: "balance", Input: balanceText}
	}

	toppedUp, err := time.ParseInLocation(lastTopUpLayout, strings.TrimSpace(dateText), time.Local)
	if err != nil {
		return Record{}, &ExtractionError{Field: "last_topped_up", Input: dateText}
	}

	return Record{
		Amount:       amount,
		CurrencyUnit: strings.ToUpper(m[2]),
		LastToppedUp: toppedUp,
	}, nil
}
