package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/domain"
	"github.com/wealthpro/wealth-analytics/internal/output"
)

// app holds the global flags and the settings they override.
type app struct {
	format   string
	currency string
	seed     int64
	verbose  bool
	settings config.Settings
	logger   calculation.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: calculation.NopLogger{}}

	rootCmd := &cobra.Command{
		Use:          "wealthcalc",
		Short:        "Personal wealth projection calculator",
		Long:         "Project SIP growth, simulate market scenarios, price the cost of waiting and check goal affordability.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadSettings(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: "+joinNames())
	rootCmd.PersistentFlags().StringVar(&a.currency, "currency", "", "Currency symbol for console output")
	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Monte Carlo seed (0 picks a random seed)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(
		newSIPCmd(a),
		newMonteCarloCmd(a),
		newDelayCmd(a),
		newGoalCmd(a),
		newRunCmd(a),
		newInitCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func joinNames() string {
	return strings.Join(output.AvailableFormatterNames(), "|")
}

// loadSettings reads config.toml and fills every flag the user did not set.
func (a *app) loadSettings(cmd *cobra.Command) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = s

	flags := cmd.Flags()
	if !flags.Changed("format") {
		a.format = s.Output.Format
	}
	if !flags.Changed("currency") {
		a.currency = s.Output.CurrencySymbol
	}
	if !flags.Changed("seed") {
		a.seed = s.Simulation.Seed
	}
	if a.verbose {
		a.logger = calculation.NewStdLogger(cmd.ErrOrStderr(), true)
	}
	return nil
}

func (a *app) engine() *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	ce.Workers = a.settings.Simulation.Workers
	ce.SetLogger(a.logger)
	return ce
}

func (a *app) formatter() (output.Formatter, error) {
	f, err := output.Lookup(a.format)
	if err != nil {
		return nil, err
	}
	return output.WithCurrency(f, a.currency), nil
}

// runAndPrint evaluates plan and writes it to w in the selected format.
func (a *app) runAndPrint(ctx context.Context, w io.Writer, plan *domain.Configuration) (*domain.PlanReport, error) {
	f, err := a.formatter()
	if err != nil {
		return nil, err
	}
	report, err := a.engine().RunPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	data, err := f.Format(report)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	return report, nil
}

// floatFlag binds a float64 flag to the decimal field it fills.
type floatFlag struct {
	name  string
	value float64
	dst   *decimal.Decimal
}

// convertFlags converts float flags to decimals, rejecting NaN and infinities.
func convertFlags(flags ...floatFlag) error {
	for _, f := range flags {
		d, err := calculation.DecimalFromFloat(f.name, f.value)
		if err != nil {
			return err
		}
		*f.dst = d
	}
	return nil
}
