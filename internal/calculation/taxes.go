package calculation

import (
	"github.com/shopspring/decimal"
	dec "github.com/wealthpro/wealth-analytics/pkg/decimal"
)

// LTCGTax returns the gain above the exemption and the tax owed on it at
// ratePct percent. Losses and gains under the exemption are untaxed.
func LTCGTax(gain, ratePct, exemption decimal.Decimal) (taxable, tax decimal.Decimal) {
	taxable = decimal.Max(decimal.Zero, gain.Sub(exemption))
	tax = taxable.Mul(dec.Fraction(ratePct))
	return taxable, tax
}
