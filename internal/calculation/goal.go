package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
	dec "github.com/wealthpro/wealth-analytics/pkg/decimal"
)

// ComputeGoalGap compares the inflated price of a purchase with what the
// monthly savings grow to by the purchase date.
func ComputeGoalGap(in domain.GoalInput) (*domain.GoalResult, error) {
	if err := validateGoal(in); err != nil {
		return nil, err
	}

	inflation := one.Add(dec.Fraction(in.ItemInflation))
	futureCost := in.CurrentCost.Mul(inflation.Pow(decimal.NewFromInt(int64(in.YearsToPurchase))))
	if err := requireRepresentable("future cost", futureCost); err != nil {
		return nil, err
	}

	futureSavings, err := FutureValueAnnuityDue(in.MonthlySavings, dec.MonthlyRate(in.ExpectedReturn), dec.Months(in.YearsToPurchase))
	if err != nil {
		return nil, err
	}

	gap := futureSavings.Sub(futureCost)
	return &domain.GoalResult{
		Item:          in.Item,
		FutureCost:    futureCost,
		FutureSavings: futureSavings,
		Gap:           gap,
		Shortfall:     decimal.Max(decimal.Zero, gap.Neg()),
		Affordable:    !gap.IsNegative(),
	}, nil
}

func validateGoal(in domain.GoalInput) error {
	if err := requireAmount("current_cost", in.CurrentCost); err != nil {
		return err
	}
	if err := requireYears("years_to_purchase", in.YearsToPurchase); err != nil {
		return err
	}
	if err := requireRate("item_inflation", in.ItemInflation); err != nil {
		return err
	}
	if err := requireAmount("monthly_savings", in.MonthlySavings); err != nil {
		return err
	}
	return requireRate("expected_return", in.ExpectedReturn)
}
