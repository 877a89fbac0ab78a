package calculation

import (
	"github.com/wealthpro/wealth-analytics/internal/domain"
	dec "github.com/wealthpro/wealth-analytics/pkg/decimal"
)

// ComputeDelayCost compares the corpus from contributing for the whole
// duration against starting DelayYears later with the same end date.
func ComputeDelayCost(in domain.DelayInput) (*domain.DelayComparison, error) {
	if err := validateDelay(in); err != nil {
		return nil, err
	}

	rate := dec.MonthlyRate(in.AnnualReturn)
	now, err := FutureValueAnnuityDue(in.MonthlyContribution, rate, dec.Months(in.DurationYears))
	if err != nil {
		return nil, err
	}
	delayed, err := FutureValueAnnuityDue(in.MonthlyContribution, rate, dec.Months(in.DurationYears-in.DelayYears))
	if err != nil {
		return nil, err
	}

	return &domain.DelayComparison{
		CorpusNow:     now,
		CorpusDelayed: delayed,
		Loss:          now.Sub(delayed),
		DurationYears: in.DurationYears,
		DelayYears:    in.DelayYears,
	}, nil
}

func validateDelay(in domain.DelayInput) error {
	if err := requireAmount("monthly_contribution", in.MonthlyContribution); err != nil {
		return err
	}
	if err := requireRate("annual_return", in.AnnualReturn); err != nil {
		return err
	}
	if err := requireYears("duration_years", in.DurationYears); err != nil {
		return err
	}
	if in.DelayYears < 0 {
		return domain.InvalidParameter("delay_years", in.DelayYears, "must not be negative")
	}
	if in.DelayYears >= in.DurationYears {
		return domain.InvalidParameter("delay_years", in.DelayYears, "must be less than duration_years")
	}
	return nil
}
