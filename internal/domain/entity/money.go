package entity

import (
	"fmt"
	"math"

	errs "github.com/marketpay/marketpay/internal/domain/error"
)

// Monetary amounts cross two boundaries with different units: the API speaks
// major-currency decimals (dollars) while the payment provider speaks integer
// minor units (cents). Every conversion goes through this file so rounding
// behaves the same everywhere.

// maxAmountCents caps amounts well below int64 overflow; DECIMAL(10,2) in the
// ledger schema allows at most 8 integer digits anyway.
const maxAmountCents = int64(99_999_999_99)

// ToCents converts a major-unit amount to minor units, rounding to the
// nearest cent. The amount must be strictly positive.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: not a finite number", errs.ErrInvalidAmount)
	}
	if amount <= 0 {
		return 0, errs.ErrNegativeAmount
	}

	cents := int64(math.Round(amount * 100))
	if cents <= 0 {
		return 0, errs.ErrNegativeAmount
	}
	if cents > maxAmountCents {
		return 0, fmt.Errorf("%w: amount too large", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// CentsToAmount converts minor units back to a major-unit amount for display.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

// CentsToString converts minor units to a decimal string with exactly two
// decimal places, e.g. 1015 becomes "10.15" and 5 becomes "0.05".
func CentsToString(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	fraction := cents % 100

	if negative {
		return fmt.Sprintf("-%d.%02d", whole, fraction)
	}
	return fmt.Sprintf("%d.%02d", whole, fraction)
}
