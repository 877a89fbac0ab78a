package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		Long: "Serve POST /v1/sip, /v1/montecarlo, /v1/delay, /v1/goal and /v1/plan.\n" +
			"WEALTHCALC_* environment variables configure timeouts and limits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig(a.settings)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cfg.MonteCarloWorkers == 0 {
				cfg.MonteCarloWorkers = a.settings.Simulation.Workers
			}
			logger := calculation.NewStdLogger(cmd.ErrOrStderr(), cfg.Debug || a.verbose)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides WEALTHCALC_ADDR and config)")
	return cmd
}
