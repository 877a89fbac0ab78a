package server

import (
	"context"
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
)

// printfLogger adapts a calculation.Logger to fasthttp.Logger.
type printfLogger struct{ l calculation.Logger }

func (p printfLogger) Printf(format string, args ...any) { p.l.Infof(format, args...) }

func fasthttpLogger(l calculation.Logger) fasthttp.Logger {
	if pl, ok := l.(fasthttp.Logger); ok {
		return pl
	}
	return printfLogger{l: l}
}

// New builds a fasthttp server for cfg.
func New(cfg config.ServerConfig, logger calculation.Logger) *fasthttp.Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	engine := calculation.NewCalculationEngine()
	engine.Workers = cfg.MonteCarloWorkers
	engine.SetLogger(logger)

	return &fasthttp.Server{
		Handler:            NewHandler(engine, logger).HandleRequest,
		Name:               "wealthcalc",
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		Concurrency:        cfg.Concurrency,
		Logger:             fasthttpLogger(logger),
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, cfg config.ServerConfig, logger calculation.Logger) error {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	srv := New(cfg, logger)

	errc := make(chan error, 1)
	go func() {
		logger.Infof("wealthcalc service listening on %s", cfg.Addr)
		errc <- srv.ListenAndServe(cfg.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Infof("shutting down")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errc
	}
}
