package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
	dec "github.com/wealthpro/wealth-analytics/pkg/decimal"
)

// Working precision for per-month balances. Rounding each step keeps decimal
// arithmetic bounded over long horizons without affecting cents.
const (
	valuePlaces    = 10
	deflatorPlaces = 18
)

// ProjectSIP compounds a fixed monthly contribution for in.Years years.
// Interest accrues on the prior balance before each contribution lands.
func ProjectSIP(in domain.SIPInput) (*domain.SIPResult, error) {
	assumptions := in.Assumptions.WithDefaults()
	if err := validateSIP(in, assumptions); err != nil {
		return nil, err
	}

	months := dec.Months(in.Years)
	growth := one.Add(dec.MonthlyRate(in.AnnualReturn))
	inflationStep := one
	if in.AdjustForInflation {
		inflationStep = one.Add(dec.MonthlyRate(assumptions.InflationRate))
	}

	contribution := in.MonthlyContribution
	invested := decimal.Zero
	value := decimal.Zero
	deflator := one
	points := make([]domain.ProjectionPoint, 0, months)

	for month := 1; month <= months; month++ {
		invested = invested.Add(contribution)
		value = value.Mul(growth).Add(contribution).Round(valuePlaces)
		deflator = deflator.Mul(inflationStep).Round(deflatorPlaces)

		points = append(points, domain.ProjectionPoint{
			Month:          month,
			Year:           dec.ElapsedYears(month),
			Invested:       invested,
			PortfolioValue: value,
			RealValue:      value.Div(deflator),
		})
	}

	if err := requireRepresentable("portfolio value", value); err != nil {
		return nil, err
	}

	result := &domain.SIPResult{
		Points:            points,
		FinalInvested:     invested,
		FinalValue:        value,
		RealFinalValue:    points[len(points)-1].RealValue,
		TotalGain:         value.Sub(invested),
		TaxableGain:       decimal.Zero,
		TaxAmount:         decimal.Zero,
		PostTaxValue:      value,
		WealthMultiplier:  dec.NewMoneyFromDecimal(value).Ratio(dec.NewMoneyFromDecimal(invested)),
		InflationAdjusted: in.AdjustForInflation,
		TaxApplied:        in.ApplyTax,
	}
	if in.AdjustForInflation {
		result.InflationRate = assumptions.InflationRate
	}
	if in.ApplyTax {
		result.TaxRate = assumptions.TaxRate
		result.TaxExemption = assumptions.TaxExemption
		result.TaxableGain, result.TaxAmount = LTCGTax(result.TotalGain, assumptions.TaxRate, assumptions.TaxExemption)
		result.PostTaxValue = value.Sub(result.TaxAmount)
	}
	return result, nil
}

func validateSIP(in domain.SIPInput, a domain.Assumptions) error {
	if err := requireAmount("monthly_contribution", in.MonthlyContribution); err != nil {
		return err
	}
	if err := requireRate("annual_return", in.AnnualReturn); err != nil {
		return err
	}
	if err := requireYears("years", in.Years); err != nil {
		return err
	}
	if in.AdjustForInflation {
		if err := requireNonNegativeRate("inflation_rate", a.InflationRate); err != nil {
			return err
		}
	}
	if in.ApplyTax {
		if err := requireNonNegativeRate("ltcg_tax_rate", a.TaxRate); err != nil {
			return err
		}
		if err := requireExemption("ltcg_exemption", a.TaxExemption); err != nil {
			return err
		}
	}
	return nil
}
