package vipps

import "github.com/shopspring/decimal"

// Amounts on the wire are integers in minor units (øre for NOK)

// MinorUnits converts a major-unit amount to minor units, rounding half away from zero
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts minor units back to a major-unit amount
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
