package decimal

import (
	"github.com/shopspring/decimal"
)

var (
	lakh  = decimal.NewFromInt(100_000)
	crore = decimal.NewFromInt(10_000_000)
)

// Money represents a monetary amount in the single base currency unit
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to two decimal places
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Lakhs expresses the amount in units of 100,000
func (m Money) Lakhs() decimal.Decimal {
	return m.Decimal.Div(lakh)
}

// Crores expresses the amount in units of 10,000,000
func (m Money) Crores() decimal.Decimal {
	return m.Decimal.Div(crore)
}

// Ratio returns m/other, or zero when other is zero.
func (m Money) Ratio(other Money) decimal.Decimal {
	if other.IsZero() {
		return decimal.Zero
	}
	return m.Decimal.Div(other.Decimal)
}
