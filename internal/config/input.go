package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded plan
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.ScenarioCount() == 0 {
		return fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidParameter)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	seen := make(map[string]string)
	check := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s scenario name is required", domain.ErrInvalidParameter, kind)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate scenario name %q (%s and %s)", domain.ErrInvalidParameter, name, prev, kind)
		}
		seen[name] = kind
		return nil
	}
	for _, s := range config.SIP {
		if err := check("sip", s.Name); err != nil {
			return err
		}
	}
	for _, s := range config.MonteCarlo {
		if err := check("monte_carlo", s.Name); err != nil {
			return err
		}
	}
	for _, s := range config.Delay {
		if err := check("delay", s.Name); err != nil {
			return err
		}
	}
	for _, s := range config.Goals {
		if err := check("goal", s.Name); err != nil {
			return err
		}
	}

	return calculation.ValidatePlan(config)
}

// validateAssumptions validates plan-wide assumptions. Absent fields take
// the defaults; an explicit zero is valid.
func (ip *InputParser) validateAssumptions(in *domain.AssumptionInputs) error {
	return calculation.ValidateAssumptions(in.WithDefaults())
}

// SaveConfiguration writes a plan as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleConfiguration returns a plan exercising every calculator
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Seed:        20240701,
		Assumptions: domain.DefaultAssumptions().Inputs(),
		SIP: []domain.SIPInput{
			{
				Name:                "Equity SIP",
				MonthlyContribution: decimal.NewFromInt(25000),
				AnnualReturn:        decimal.NewFromInt(12),
				Years:               15,
				AdjustForInflation:  true,
				ApplyTax:            true,
			},
		},
		MonteCarlo: []domain.MonteCarloInput{
			{
				Name:                "Market Scenarios",
				Years:               15,
				MonthlyContribution: decimal.NewFromInt(25000),
				AverageReturn:       decimal.NewFromInt(12),
				Volatility:          decimal.NewFromInt(15),
			},
		},
		Delay: []domain.DelayInput{
			{
				Name:                "Start Five Years Late",
				MonthlyContribution: decimal.NewFromInt(25000),
				AnnualReturn:        decimal.NewFromInt(12),
				DurationYears:       20,
				DelayYears:          5,
			},
		},
		Goals: []domain.GoalInput{
			{
				Name:            "Car",
				Item:            "Tesla Model 3",
				CurrentCost:     decimal.NewFromInt(4000000),
				YearsToPurchase: 5,
				ItemInflation:   decimal.NewFromInt(5),
				MonthlySavings:  decimal.NewFromInt(50000),
				ExpectedReturn:  decimal.NewFromInt(10),
			},
		},
	}
}
