package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		planFile string
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every scenario in a YAML plan file",
		Example: "  wealthcalc run --plan plan.yaml\n" +
			"  wealthcalc run --plan plan.yaml --format all --out reports/",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := config.NewInputParser().LoadFromFile(planFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				plan.Seed = a.seed
			} else if plan.Seed == 0 {
				plan.Seed = a.settings.Simulation.Seed
			}
			a.logger.Infof("loaded %d scenarios from %s", plan.ScenarioCount(), planFile)

			if outDir == "" && output.NormalizeFormatName(a.format) == "all" {
				outDir = a.settings.Output.Directory
				if outDir == "" {
					return fmt.Errorf("--format all requires --out or output.directory in %s", config.SettingsPath())
				}
			}
			if outDir == "" {
				_, err := a.runAndPrint(cmd.Context(), cmd.OutOrStdout(), plan)
				return err
			}

			report, err := a.engine().RunPlan(cmd.Context(), plan)
			if err != nil {
				return err
			}
			files, err := output.GenerateReport(report, a.format, outDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&planFile, "plan", "p", "", "Plan file (YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write reports to this directory instead of stdout")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func newInitCmd(_ *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, path); err != nil {
				return fmt.Errorf("writing example plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Example plan written to %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  Run `wealthcalc run --plan %s` to evaluate it.\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
