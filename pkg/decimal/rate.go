package decimal

import (
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
	monthlyScale  = hundred.Mul(monthsPerYear)
)

// Fraction converts a percentage (12 means 12%) to a fraction (0.12).
func Fraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// MonthlyRate converts an annual percentage to a simple monthly fraction,
// i.e. pct/100/12. Every calculator goes through here; no call site divides
// by 100 or 12 on its own.
func MonthlyRate(annualPct decimal.Decimal) decimal.Decimal {
	return annualPct.Div(monthlyScale)
}

// Months returns the number of monthly periods in whole years.
func Months(years int) int {
	return years * 12
}

// ElapsedYears returns month/12 as a decimal.
func ElapsedYears(month int) decimal.Decimal {
	return decimal.NewFromInt(int64(month)).Div(monthsPerYear)
}
