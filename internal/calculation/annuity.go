package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// FutureValueAnnuityDue returns
//
//	contribution * ((1+rate)^periods - 1) / rate * (1+rate)
//
// i.e. every contribution compounds for one extra period. A zero rate
// yields contribution*periods and zero periods yield zero.
func FutureValueAnnuityDue(contribution, periodicRate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods < 0 {
		return decimal.Zero, domain.InvalidParameter("periods", periods, "must not be negative")
	}
	if periodicRate.LessThanOrEqual(one.Neg()) {
		return decimal.Zero, domain.InvalidParameter("periodic_rate", periodicRate, "must be greater than -1")
	}
	if periods == 0 {
		return decimal.Zero, nil
	}
	n := decimal.NewFromInt(int64(periods))
	if periodicRate.IsZero() {
		return contribution.Mul(n), nil
	}

	growth := one.Add(periodicRate)
	factor := growth.Pow(n).Sub(one).Div(periodicRate)
	fv := contribution.Mul(factor).Mul(growth)
	if err := requireRepresentable("annuity future value", fv); err != nil {
		return decimal.Zero, err
	}
	return fv, nil
}
