package calculation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// Input domain shared by all calculators. Rates are percentages.
const (
	MaxYears         = 100
	MinRatePct       = -99
	MaxRatePct       = 100
	MaxVolatilityPct = 100

	// MaxAmount caps contributions, costs, savings and exemptions.
	MaxAmount = 1_000_000_000_000_000
	// MaxPlaces caps the fractional digits of any input.
	MaxPlaces = 18
)

// Integer digits allowed before the exact range check runs.
const (
	amountDigits = 16
	rateDigits   = 3
)

var (
	one           = decimal.NewFromInt(1)
	minRate       = decimal.NewFromInt(MinRatePct)
	maxRate       = decimal.NewFromInt(MaxRatePct)
	maxVolatility = decimal.NewFromInt(MaxVolatilityPct)
	maxAmount     = decimal.NewFromInt(MaxAmount)
)

// DecimalFromFloat converts an externally supplied float, rejecting NaN and
// infinities.
func DecimalFromFloat(field string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, domain.InvalidParameter(field, f, "must be a finite number")
	}
	return decimal.NewFromFloat(f), nil
}

// requireScale rejects v when its exponent or integer digit count is out of
// range. It reads the coefficient and exponent and never rescales v.
func requireScale(field string, v decimal.Decimal, maxDigits int) error {
	coef := strings.TrimPrefix(v.Coefficient().String(), "-")
	exp := int(v.Exponent())
	if exp < -MaxPlaces {
		return domain.InvalidParameter(field, scientific(v, exp), "must have at most 18 decimal places")
	}
	if coef != "0" && len(coef)+exp > maxDigits {
		return domain.InvalidParameter(field, scientific(v, exp), "is out of range")
	}
	return nil
}

func scientific(v decimal.Decimal, exp int) string {
	return v.Coefficient().String() + "e" + strconv.Itoa(exp)
}

// requireAmount accepts money inputs in (0, MaxAmount].
func requireAmount(field string, v decimal.Decimal) error {
	if err := requireScale(field, v, amountDigits); err != nil {
		return err
	}
	if !v.IsPositive() {
		return domain.InvalidParameter(field, v, "must be greater than zero")
	}
	if v.GreaterThan(maxAmount) {
		return domain.InvalidParameter(field, v, "must not exceed 1e15")
	}
	return nil
}

// requireExemption accepts [0, MaxAmount].
func requireExemption(field string, v decimal.Decimal) error {
	if err := requireScale(field, v, amountDigits); err != nil {
		return err
	}
	if v.IsNegative() {
		return domain.InvalidParameter(field, v, "must not be negative")
	}
	if v.GreaterThan(maxAmount) {
		return domain.InvalidParameter(field, v, "must not exceed 1e15")
	}
	return nil
}

func requireRate(field string, pct decimal.Decimal) error {
	if err := requireScale(field, pct, rateDigits); err != nil {
		return err
	}
	if pct.LessThan(minRate) || pct.GreaterThan(maxRate) {
		return domain.InvalidParameter(field, pct, "must be between -99 and 100 percent")
	}
	return nil
}

func requireNonNegativeRate(field string, pct decimal.Decimal) error {
	if err := requireScale(field, pct, rateDigits); err != nil {
		return err
	}
	if pct.IsNegative() || pct.GreaterThan(maxRate) {
		return domain.InvalidParameter(field, pct, "must be between 0 and 100 percent")
	}
	return nil
}

func requireVolatility(field string, pct decimal.Decimal) error {
	if err := requireScale(field, pct, rateDigits); err != nil {
		return err
	}
	if pct.IsNegative() || pct.GreaterThan(maxVolatility) {
		return domain.InvalidParameter(field, pct, "must be between 0 and 100 percent")
	}
	return nil
}

func requireYears(field string, years int) error {
	if years < 1 || years > MaxYears {
		return domain.InvalidParameter(field, years, "must be between 1 and 100 years")
	}
	return nil
}

// requireRepresentable fails with ErrNumericOverflow when v cannot be
// carried as a float64 by consumers.
func requireRepresentable(quantity string, v decimal.Decimal) error {
	f, _ := v.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return domain.Overflow(quantity)
	}
	return nil
}

// ValidateAssumptions checks resolved inflation and tax assumptions.
func ValidateAssumptions(a domain.Assumptions) error {
	if err := requireNonNegativeRate("inflation_rate", a.InflationRate); err != nil {
		return err
	}
	if err := requireNonNegativeRate("ltcg_tax_rate", a.TaxRate); err != nil {
		return err
	}
	return requireExemption("ltcg_exemption", a.TaxExemption)
}
