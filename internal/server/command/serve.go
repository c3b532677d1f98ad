package command

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/iudanet/formsync/internal/server"
	"github.com/iudanet/formsync/internal/server/jwt"
	"github.com/iudanet/formsync/internal/server/middleware"
	"github.com/iudanet/formsync/internal/server/storage/sqlite"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the table store over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Bool("metrics", true, "expose Prometheus metrics on /metrics")

	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := a.server()
	if err != nil {
		return err
	}
	logger, closer, err := a.logger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() {
			_ = closer.Close()
		}()
	}

	st, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	opts := server.Options{
		Store:       st,
		DB:          st,
		Tokens:      jwt.NewService(cfg.JWTSecret, cfg.TokenTTL),
		Logger:      logger,
		Version:     a.version,
		DisabledOps: trimAll(cfg.DisabledOps),
	}
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts.Registry = reg
	}
	if cfg.RateLimit.Requests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
		defer limiter.Stop()
		opts.Limiter = limiter
	}

	logger.Info("Starting tablestore",
		"version", a.version,
		"addr", cfg.Addr,
		"db", cfg.DBPath,
		"metrics", cfg.Metrics,
		"rate_limit", cfg.RateLimit.Requests,
		"disabled_ops", opts.DisabledOps,
	)

	return server.New(cfg.Addr, server.NewRouter(opts), cfg.ShutdownTimeout, logger).Run(ctx)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
