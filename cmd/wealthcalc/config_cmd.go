package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wealthpro/wealth-analytics/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			s := a.settings

			fmt.Fprintf(w, "  Config file: %s\n", config.SettingsPath())
			if config.SettingsExist() {
				fmt.Fprintln(w, "  Status: loaded")
			} else {
				fmt.Fprintln(w, "  Status: using defaults (no config file)")
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Output]")
			fmt.Fprintf(w, "    Format:    %s\n", s.Output.Format)
			fmt.Fprintf(w, "    Currency:  %s\n", s.Output.CurrencySymbol)
			if s.Output.Directory != "" {
				fmt.Fprintf(w, "    Directory: %s\n", s.Output.Directory)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Simulation]")
			if s.Simulation.Seed != 0 {
				fmt.Fprintf(w, "    Seed:    %d\n", s.Simulation.Seed)
			} else {
				fmt.Fprintln(w, "    Seed:    random")
			}
			if s.Simulation.Workers > 0 {
				fmt.Fprintf(w, "    Workers: %d\n", s.Simulation.Workers)
			} else {
				fmt.Fprintln(w, "    Workers: GOMAXPROCS")
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  [Server]")
			fmt.Fprintf(w, "    Address: %s\n", s.Server.Addr)
			fmt.Fprintln(w)

			fmt.Fprintln(w, "  Run `wealthcalc config init` to write these settings to disk.")
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.SettingsPath()
			if err := config.SaveSettings(a.settings, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Settings written to %s\n", path)
			return nil
		},
	})
	return cmd
}
