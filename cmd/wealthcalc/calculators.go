package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wealthpro/wealth-analytics/internal/domain"
	"github.com/wealthpro/wealth-analytics/internal/output"
)

func newSIPCmd(a *app) *cobra.Command {
	var (
		name                           string
		monthly, annualReturn          float64
		years                          int
		inflation, tax                 bool
		inflationRate, taxRate, exempt float64
	)
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project a monthly SIP with optional inflation and LTCG tax",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.SIPInput{
				Name:               name,
				Years:              years,
				AdjustForInflation: inflation,
				ApplyTax:           tax,
			}
			var assumptions domain.Assumptions
			if err := convertFlags(
				floatFlag{"monthly", monthly, &in.MonthlyContribution},
				floatFlag{"return", annualReturn, &in.AnnualReturn},
				floatFlag{"inflation-rate", inflationRate, &assumptions.InflationRate},
				floatFlag{"tax-rate", taxRate, &assumptions.TaxRate},
				floatFlag{"exemption", exempt, &assumptions.TaxExemption},
			); err != nil {
				return err
			}
			plan := &domain.Configuration{Assumptions: assumptions.Inputs(), SIP: []domain.SIPInput{in}}
			_, err := a.runAndPrint(cmd.Context(), cmd.OutOrStdout(), plan)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "SIP", "Scenario name")
	cmd.Flags().Float64Var(&monthly, "monthly", 25000, "Monthly contribution")
	cmd.Flags().Float64Var(&annualReturn, "return", 12, "Expected annual return (%)")
	cmd.Flags().IntVar(&years, "years", 15, "Investment horizon in years")
	cmd.Flags().BoolVar(&inflation, "inflation", false, "Report inflation-adjusted real values")
	cmd.Flags().BoolVar(&tax, "tax", false, "Apply LTCG tax to the gain")
	cmd.Flags().Float64Var(&inflationRate, "inflation-rate", 6, "Annual inflation (%)")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 12.5, "LTCG tax rate (%)")
	cmd.Flags().Float64Var(&exempt, "exemption", 125000, "Gain exempt from LTCG tax")
	return cmd
}

func newMonteCarloCmd(a *app) *cobra.Command {
	var (
		name                      string
		years                     int
		monthly, mean, volatility float64
		outDir                    string
	)
	cmd := &cobra.Command{
		Use:     "montecarlo",
		Aliases: []string{"mc"},
		Short:   "Simulate 50 market paths with normally distributed monthly returns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.MonteCarloInput{Name: name, Years: years, Seed: a.seed}
			if err := convertFlags(
				floatFlag{"monthly", monthly, &in.MonthlyContribution},
				floatFlag{"return", mean, &in.AverageReturn},
				floatFlag{"volatility", volatility, &in.Volatility},
			); err != nil {
				return err
			}
			plan := &domain.Configuration{MonteCarlo: []domain.MonteCarloInput{in}}
			report, err := a.runAndPrint(cmd.Context(), cmd.OutOrStdout(), plan)
			if err != nil {
				return err
			}
			if outDir == "" {
				return nil
			}
			sc := report.MonteCarlo[0]
			csvReport := &output.MonteCarloCSVReport{Input: sc.Input, Result: sc.Result}
			files, err := csvReport.GenerateAllCSVReports(outDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.ErrOrStderr(), "  wrote %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "Monte Carlo", "Scenario name")
	cmd.Flags().IntVar(&years, "years", 15, "Simulation horizon in years")
	cmd.Flags().Float64Var(&monthly, "monthly", 25000, "Monthly contribution")
	cmd.Flags().Float64Var(&mean, "return", 12, "Average annual return (%)")
	cmd.Flags().Float64Var(&volatility, "volatility", 15, "Annual volatility (%)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Also write summary, detail, percentile and path CSVs to this directory")
	return cmd
}

func newDelayCmd(a *app) *cobra.Command {
	var (
		name                  string
		monthly, annualReturn float64
		duration, delay       int
	)
	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Compare starting now with starting after a delay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.DelayInput{Name: name, DurationYears: duration, DelayYears: delay}
			if err := convertFlags(
				floatFlag{"monthly", monthly, &in.MonthlyContribution},
				floatFlag{"return", annualReturn, &in.AnnualReturn},
			); err != nil {
				return err
			}
			plan := &domain.Configuration{Delay: []domain.DelayInput{in}}
			_, err := a.runAndPrint(cmd.Context(), cmd.OutOrStdout(), plan)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "Delay", "Scenario name")
	cmd.Flags().Float64Var(&monthly, "monthly", 25000, "Monthly contribution")
	cmd.Flags().Float64Var(&annualReturn, "return", 12, "Expected annual return (%)")
	cmd.Flags().IntVar(&duration, "duration", 20, "Total investment duration in years")
	cmd.Flags().IntVar(&delay, "delay", 5, "Years the start is delayed by")
	return cmd
}

func newGoalCmd(a *app) *cobra.Command {
	var (
		name, item                        string
		cost, itemInflation, savings, ret float64
		years                             int
	)
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Check whether monthly savings cover a future purchase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.GoalInput{Name: name, Item: item, YearsToPurchase: years}
			if err := convertFlags(
				floatFlag{"cost", cost, &in.CurrentCost},
				floatFlag{"item-inflation", itemInflation, &in.ItemInflation},
				floatFlag{"savings", savings, &in.MonthlySavings},
				floatFlag{"return", ret, &in.ExpectedReturn},
			); err != nil {
				return err
			}
			plan := &domain.Configuration{Goals: []domain.GoalInput{in}}
			_, err := a.runAndPrint(cmd.Context(), cmd.OutOrStdout(), plan)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "Goal", "Scenario name")
	cmd.Flags().StringVar(&item, "item", "", "Item being saved for")
	cmd.Flags().Float64Var(&cost, "cost", 4000000, "Current cost of the item")
	cmd.Flags().IntVar(&years, "years", 5, "Years until purchase")
	cmd.Flags().Float64Var(&itemInflation, "item-inflation", 5, "Annual price inflation of the item (%)")
	cmd.Flags().Float64Var(&savings, "savings", 50000, "Monthly savings allocated to the goal")
	cmd.Flags().Float64Var(&ret, "return", 10, "Expected annual return on savings (%)")
	return cmd
}
