package output

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sipPoints(contribution decimal.Decimal, months int) []domain.ProjectionPoint {
	points := make([]domain.ProjectionPoint, 0, months)
	for m := 1; m <= months; m++ {
		invested := contribution.Mul(decimal.NewFromInt(int64(m)))
		points = append(points, domain.ProjectionPoint{
			Month:          m,
			Year:           decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(12)),
			Invested:       invested,
			PortfolioValue: invested.Mul(d("1.01")),
			RealValue:      invested,
		})
	}
	return points
}

func buildTestReport() *domain.PlanReport {
	return &domain.PlanReport{
		GeneratedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:        42,
		Assumptions: domain.DefaultAssumptions(),
		SIP: []domain.SIPScenario{
			{
				Name:  "Zeta SIP",
				Input: domain.SIPInput{MonthlyContribution: d("1000"), AnnualReturn: d("8"), Years: 1},
				Result: &domain.SIPResult{
					Points:           sipPoints(d("1000"), 12),
					FinalInvested:    d("12000"),
					FinalValue:       d("12120"),
					RealFinalValue:   d("12000"),
					TotalGain:        d("120"),
					PostTaxValue:     d("12120"),
					WealthMultiplier: d("1.01"),
				},
			},
			{
				Name:  "Alpha SIP",
				Input: domain.SIPInput{MonthlyContribution: d("25000"), AnnualReturn: d("12"), Years: 1, ApplyTax: true},
				Result: &domain.SIPResult{
					Points:           sipPoints(d("25000"), 12),
					FinalInvested:    d("300000"),
					FinalValue:       d("600000"),
					RealFinalValue:   d("300000"),
					TotalGain:        d("300000"),
					TaxableGain:      d("175000"),
					TaxAmount:        d("21875"),
					PostTaxValue:     d("578125"),
					WealthMultiplier: d("2"),
					TaxApplied:       true,
					TaxRate:          d("12.5"),
					TaxExemption:     d("125000"),
				},
			},
		},
		MonteCarlo: []domain.MonteCarloScenario{
			{
				Name:  "Market",
				Input: domain.MonteCarloInput{Years: 1, MonthlyContribution: d("100"), AverageReturn: d("12"), Volatility: d("15")},
				Result: &domain.MonteCarloResult{
					Paths: []domain.SimulationPath{
						{Index: 0, Values: []decimal.Decimal{d("0"), d("100"), d("210")}, Terminal: d("210")},
						{Index: 1, Values: []decimal.Decimal{d("0"), d("90"), d("190")}, Terminal: d("190")},
					},
					Summary:                domain.TerminalSummary{Min: d("190"), Median: d("200"), Max: d("210")},
					Percentiles:            domain.PercentileRanges{P10: d("192"), P25: d("195"), P50: d("200"), P75: d("205"), P90: d("208")},
					ApproximateAveragePath: []decimal.Decimal{d("0"), d("101"), d("204.01")},
					NumSimulations:         2,
					Months:                 2,
					Seed:                   42,
				},
			},
		},
		Delay: []domain.DelayScenario{
			{
				Name:   "Late",
				Input:  domain.DelayInput{DurationYears: 20, DelayYears: 5},
				Result: &domain.DelayComparison{CorpusNow: d("2000000"), CorpusDelayed: d("1000000"), Loss: d("1000000"), DurationYears: 20, DelayYears: 5},
			},
		},
		Goals: []domain.GoalScenario{
			{
				Name:   "Car",
				Result: &domain.GoalResult{Item: "Tesla Model 3", FutureCost: d("5000000"), FutureSavings: d("4000000"), Gap: d("-1000000"), Shortfall: d("1000000")},
			},
			{
				Name:   "Phone",
				Result: &domain.GoalResult{Item: "Phone", FutureCost: d("100000"), FutureSavings: d("150000"), Gap: d("50000"), Shortfall: d("0"), Affordable: true},
			},
		},
	}
}
