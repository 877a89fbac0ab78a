package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default reality-check assumptions applied when a SIP enables the
// inflation or tax adjustment.
var (
	DefaultInflationRate = decimal.NewFromInt(6)
	DefaultTaxRate       = decimal.RequireFromString("12.5")
	DefaultTaxExemption  = decimal.NewFromInt(125_000)
)

// Assumptions holds the resolved inflation and long-term capital gains
// parameters. Rates are percentages.
type Assumptions struct {
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	TaxRate       decimal.Decimal `yaml:"ltcg_tax_rate" json:"ltcg_tax_rate"`
	TaxExemption  decimal.Decimal `yaml:"ltcg_exemption" json:"ltcg_exemption"`
}

// DefaultAssumptions returns 6% inflation and 12.5% tax on gains above 125,000.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		InflationRate: DefaultInflationRate,
		TaxRate:       DefaultTaxRate,
		TaxExemption:  DefaultTaxExemption,
	}
}

// Inputs returns a as explicit inputs, every field set.
func (a Assumptions) Inputs() AssumptionInputs {
	return AssumptionInputs{
		InflationRate: decimal.NewNullDecimal(a.InflationRate),
		TaxRate:       decimal.NewNullDecimal(a.TaxRate),
		TaxExemption:  decimal.NewNullDecimal(a.TaxExemption),
	}
}

// AssumptionInputs holds user-supplied assumptions. Absent fields take the
// defaults; an explicit zero is kept.
type AssumptionInputs struct {
	InflationRate decimal.NullDecimal `yaml:"inflation_rate,omitempty" json:"inflation_rate"`
	TaxRate       decimal.NullDecimal `yaml:"ltcg_tax_rate,omitempty" json:"ltcg_tax_rate"`
	TaxExemption  decimal.NullDecimal `yaml:"ltcg_exemption,omitempty" json:"ltcg_exemption"`
}

// WithDefaults resolves absent fields from DefaultAssumptions.
func (in AssumptionInputs) WithDefaults() Assumptions {
	a := DefaultAssumptions()
	if in.InflationRate.Valid {
		a.InflationRate = in.InflationRate.Decimal
	}
	if in.TaxRate.Valid {
		a.TaxRate = in.TaxRate.Decimal
	}
	if in.TaxExemption.Valid {
		a.TaxExemption = in.TaxExemption.Decimal
	}
	return a
}

// SIPInput parameterizes a SIP projection
type SIPInput struct {
	Name                string           `yaml:"name" json:"name,omitempty"`
	MonthlyContribution decimal.Decimal  `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturn        decimal.Decimal  `yaml:"annual_return" json:"annual_return"`
	Years               int              `yaml:"years" json:"years"`
	AdjustForInflation  bool             `yaml:"adjust_for_inflation" json:"adjust_for_inflation"`
	ApplyTax            bool             `yaml:"apply_tax" json:"apply_tax"`
	Assumptions         AssumptionInputs `yaml:"-" json:"assumptions,omitempty"`
}

// MonteCarloInput parameterizes a Monte Carlo run
type MonteCarloInput struct {
	Name                string          `yaml:"name" json:"name,omitempty"`
	Years               int             `yaml:"years" json:"years"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AverageReturn       decimal.Decimal `yaml:"average_return" json:"average_return"`
	Volatility          decimal.Decimal `yaml:"volatility" json:"volatility"`
	Seed                int64           `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// DelayInput parameterizes a cost-of-delay comparison
type DelayInput struct {
	Name                string          `yaml:"name" json:"name,omitempty"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	DurationYears       int             `yaml:"duration_years" json:"duration_years"`
	DelayYears          int             `yaml:"delay_years" json:"delay_years"`
}

// GoalInput parameterizes a purchase goal
type GoalInput struct {
	Name            string          `yaml:"name" json:"name,omitempty"`
	Item            string          `yaml:"item" json:"item,omitempty"`
	CurrentCost     decimal.Decimal `yaml:"current_cost" json:"current_cost"`
	YearsToPurchase int             `yaml:"years_to_purchase" json:"years_to_purchase"`
	ItemInflation   decimal.Decimal `yaml:"item_inflation" json:"item_inflation"`
	MonthlySavings  decimal.Decimal `yaml:"monthly_savings" json:"monthly_savings"`
	ExpectedReturn  decimal.Decimal `yaml:"expected_return" json:"expected_return"`
}

// Configuration is a plan file: shared assumptions plus named scenarios.
type Configuration struct {
	Seed        int64             `yaml:"seed,omitempty" json:"seed,omitempty"`
	Assumptions AssumptionInputs  `yaml:"assumptions" json:"assumptions"`
	SIP         []SIPInput        `yaml:"sip,omitempty" json:"sip,omitempty"`
	MonteCarlo  []MonteCarloInput `yaml:"monte_carlo,omitempty" json:"monte_carlo,omitempty"`
	Delay       []DelayInput      `yaml:"delay,omitempty" json:"delay,omitempty"`
	Goals       []GoalInput       `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// ScenarioCount returns the number of scenarios across all calculators.
func (c *Configuration) ScenarioCount() int {
	return len(c.SIP) + len(c.MonteCarlo) + len(c.Delay) + len(c.Goals)
}

// SIPScenario pairs a SIP result with its scenario name
type SIPScenario struct {
	Name   string     `json:"name"`
	Input  SIPInput   `json:"input"`
	Result *SIPResult `json:"result"`
}

// MonteCarloScenario pairs a Monte Carlo result with its scenario name
type MonteCarloScenario struct {
	Name   string            `json:"name"`
	Input  MonteCarloInput   `json:"input"`
	Result *MonteCarloResult `json:"result"`
}

// DelayScenario pairs a delay comparison with its scenario name
type DelayScenario struct {
	Name   string           `json:"name"`
	Input  DelayInput       `json:"input"`
	Result *DelayComparison `json:"result"`
}

// GoalScenario pairs a goal result with its scenario name
type GoalScenario struct {
	Name   string      `json:"name"`
	Input  GoalInput   `json:"input"`
	Result *GoalResult `json:"result"`
}

// PlanReport collects the results of every scenario in a Configuration
type PlanReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Seed        int64                `json:"seed"`
	Assumptions Assumptions          `json:"assumptions"`
	SIP         []SIPScenario        `json:"sip,omitempty"`
	MonteCarlo  []MonteCarloScenario `json:"monte_carlo,omitempty"`
	Delay       []DelayScenario      `json:"delay,omitempty"`
	Goals       []GoalScenario       `json:"goals,omitempty"`
}
