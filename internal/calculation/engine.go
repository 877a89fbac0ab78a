package calculation

import (
	"context"
	"fmt"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// CalculationEngine evaluates every scenario in a plan
type CalculationEngine struct {
	Workers int // Monte Carlo fan-out limit; zero means GOMAXPROCS
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunPlan runs all scenarios and collects their results. The first failing
// scenario aborts the plan; its error keeps the calculation error class.
func (ce *CalculationEngine) RunPlan(ctx context.Context, config *domain.Configuration) (*domain.PlanReport, error) {
	if err := ValidatePlan(config); err != nil {
		return nil, err
	}
	assumptions := config.Assumptions.WithDefaults()
	report := &domain.PlanReport{
		GeneratedAt: nowFunc(),
		Seed:        config.Seed,
		Assumptions: assumptions,
	}
	ce.Logger.Infof("running plan with %d scenarios", config.ScenarioCount())

	for _, in := range config.SIP {
		in.Assumptions = assumptions.Inputs()
		res, err := ProjectSIP(in)
		if err != nil {
			return nil, scenarioError(in.Name, err)
		}
		ce.Logger.Debugf("sip %q: final value %s", in.Name, res.FinalValue.StringFixed(2))
		report.SIP = append(report.SIP, domain.SIPScenario{Name: in.Name, Input: in, Result: res})
	}

	for k, in := range config.MonteCarlo {
		res, err := ce.RunMonteCarlo(ctx, in, planSeed(config.Seed, k, in.Seed))
		if err != nil {
			return nil, scenarioError(in.Name, err)
		}
		ce.Logger.Debugf("monte carlo %q: median %s (seed %d)", in.Name, res.Summary.Median.StringFixed(2), res.Seed)
		report.MonteCarlo = append(report.MonteCarlo, domain.MonteCarloScenario{Name: in.Name, Input: in, Result: res})
	}

	for _, in := range config.Delay {
		res, err := ComputeDelayCost(in)
		if err != nil {
			return nil, scenarioError(in.Name, err)
		}
		ce.Logger.Debugf("delay %q: loss %s", in.Name, res.Loss.StringFixed(2))
		report.Delay = append(report.Delay, domain.DelayScenario{Name: in.Name, Input: in, Result: res})
	}

	for _, in := range config.Goals {
		res, err := ComputeGoalGap(in)
		if err != nil {
			return nil, scenarioError(in.Name, err)
		}
		ce.Logger.Debugf("goal %q: gap %s", in.Name, res.Gap.StringFixed(2))
		report.Goals = append(report.Goals, domain.GoalScenario{Name: in.Name, Input: in, Result: res})
	}

	return report, nil
}

// ValidatePlan checks every scenario's inputs so that a bad scenario fails
// the plan before any simulation runs.
func ValidatePlan(config *domain.Configuration) error {
	assumptions := config.Assumptions.WithDefaults()
	for _, in := range config.SIP {
		if err := validateSIP(in, assumptions); err != nil {
			return scenarioError(in.Name, err)
		}
	}
	for _, in := range config.MonteCarlo {
		if err := validateMonteCarlo(in); err != nil {
			return scenarioError(in.Name, err)
		}
	}
	for _, in := range config.Delay {
		if err := validateDelay(in); err != nil {
			return scenarioError(in.Name, err)
		}
	}
	for _, in := range config.Goals {
		if err := validateGoal(in); err != nil {
			return scenarioError(in.Name, err)
		}
	}
	return nil
}

// RunMonteCarlo runs a single Monte Carlo input with the engine's worker
// limit and logger.
func (ce *CalculationEngine) RunMonteCarlo(ctx context.Context, in domain.MonteCarloInput, seed int64) (*domain.MonteCarloResult, error) {
	sim := NewMonteCarloSimulator(seed)
	if ce.Workers > 0 {
		sim.Workers = ce.Workers
	}
	sim.Logger = ce.Logger
	return sim.Run(ctx, in)
}

// planSeed picks the seed for the k-th Monte Carlo scenario: an explicit
// scenario seed wins, otherwise plan seed + k, otherwise zero (random).
func planSeed(plan int64, k int, scenario int64) int64 {
	if scenario != 0 {
		return scenario
	}
	if plan != 0 {
		return plan + int64(k)
	}
	return 0
}

func scenarioError(name string, err error) error {
	return fmt.Errorf("scenario %q: %w", name, err)
}
