package usecase

import "github.com/shopspring/decimal"

// ToMinorUnits converts a monetary amount to integer cents, rounding half-up
// at two decimal places (10.005 -> 1001, 19.999 -> 2000).
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
}
