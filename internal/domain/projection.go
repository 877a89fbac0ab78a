package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionPoint is one month of a SIP projection
type ProjectionPoint struct {
	Month          int             `json:"month"`
	Year           decimal.Decimal `json:"year"`
	Invested       decimal.Decimal `json:"invested"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	RealValue      decimal.Decimal `json:"real_value"`
}

// SIPResult holds the month-by-month projection and the post-loop tax summary
type SIPResult struct {
	Points []ProjectionPoint `json:"points"`

	FinalInvested    decimal.Decimal `json:"final_invested"`
	FinalValue       decimal.Decimal `json:"final_value"`
	RealFinalValue   decimal.Decimal `json:"real_final_value"`
	TotalGain        decimal.Decimal `json:"total_gain"`
	TaxableGain      decimal.Decimal `json:"taxable_gain"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	PostTaxValue     decimal.Decimal `json:"post_tax_value"`
	WealthMultiplier decimal.Decimal `json:"wealth_multiplier"`

	// Assumptions actually applied to this run
	InflationAdjusted bool            `json:"inflation_adjusted"`
	TaxApplied        bool            `json:"tax_applied"`
	InflationRate     decimal.Decimal `json:"inflation_rate"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	TaxExemption      decimal.Decimal `json:"tax_exemption"`
}

// SimulationPath is one Monte Carlo path; Values[0] is always zero.
type SimulationPath struct {
	Index    int               `json:"index"`
	Values   []decimal.Decimal `json:"values"`
	Terminal decimal.Decimal   `json:"terminal"`
}

// TerminalSummary holds worst, median and best terminal values
type TerminalSummary struct {
	Min    decimal.Decimal `json:"min"`
	Median decimal.Decimal `json:"median"`
	Max    decimal.Decimal `json:"max"`
}

// PercentileRanges represents percentile ranges for terminal values
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloResult represents the results of a Monte Carlo run
type MonteCarloResult struct {
	Paths       []SimulationPath `json:"paths"`
	Summary     TerminalSummary  `json:"summary"`
	Percentiles PercentileRanges `json:"percentiles"`

	// ApproximateAveragePath is contribution*month*(1+mean)^month. It is a
	// visual guide only and is not the mean of Paths.
	ApproximateAveragePath []decimal.Decimal `json:"approximate_average_path"`

	NumSimulations int   `json:"num_simulations"`
	Months         int   `json:"months"`
	Seed           int64 `json:"seed"`
}

// DelayComparison compares starting now against starting after a delay
type DelayComparison struct {
	CorpusNow     decimal.Decimal `json:"corpus_now"`
	CorpusDelayed decimal.Decimal `json:"corpus_delayed"`
	Loss          decimal.Decimal `json:"loss"`
	DurationYears int             `json:"duration_years"`
	DelayYears    int             `json:"delay_years"`
}

// GoalResult compares the inflated cost of a purchase with projected savings
type GoalResult struct {
	Item          string          `json:"item,omitempty"`
	FutureCost    decimal.Decimal `json:"future_cost"`
	FutureSavings decimal.Decimal `json:"future_savings"`
	Gap           decimal.Decimal `json:"gap"`
	Shortfall     decimal.Decimal `json:"shortfall"`
	Affordable    bool            `json:"affordable"`
}
