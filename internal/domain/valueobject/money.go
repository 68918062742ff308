package valueobject

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MiliunitsPerUnit is the fixed-point scale used to store currency amounts.
const MiliunitsPerUnit = 1000

// MaxAbsMiliunits bounds a single amount to one trillion currency units, so that
// sums over large ledgers stay well inside int64.
const MaxAbsMiliunits int64 = 1_000_000_000_000_000

// ErrAmountOutOfRange is returned when an amount exceeds MaxAbsMiliunits.
var ErrAmountOutOfRange = errors.New("amount out of range")

var (
	miliunitsScale = decimal.NewFromInt(MiliunitsPerUnit)
	maxMiliunits   = decimal.NewFromInt(MaxAbsMiliunits)
)

// MiliunitsFromDecimal converts a currency amount to miliunits, rounding half away from zero.
func MiliunitsFromDecimal(amount decimal.Decimal) (int64, error) {
	scaled := amount.Mul(miliunitsScale).Round(0)
	if scaled.Abs().GreaterThan(maxMiliunits) {
		return 0, ErrAmountOutOfRange
	}
	return scaled.IntPart(), nil
}

// ValidMiliunits reports whether amount is within MaxAbsMiliunits.
func ValidMiliunits(amount int64) bool {
	return amount >= -MaxAbsMiliunits && amount <= MaxAbsMiliunits
}

// MiliunitsToDecimal converts miliunits back to a currency amount.
func MiliunitsToDecimal(miliunits int64) decimal.Decimal {
	return decimal.New(miliunits, -3)
}
