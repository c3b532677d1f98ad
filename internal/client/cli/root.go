package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iudanet/formsync/internal/client/auth"
	"github.com/iudanet/formsync/internal/client/connector"
	"github.com/iudanet/formsync/internal/client/forms"
	"github.com/iudanet/formsync/internal/client/iocli"
	"github.com/iudanet/formsync/internal/client/storage/boltdb"
	"github.com/iudanet/formsync/internal/client/tablestore"
	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/config"
)

// rootOptions глобальные флаги
type rootOptions struct {
	configPath string
	json       bool
}

// app собирает зависимости команд один раз за запуск
type app struct {
	io       iocli.IO
	cli      *Cli
	cfg      *config.Client
	registry *prometheus.Registry
	db       *boltdb.Storage
	opts     rootOptions
}

// NewRootCommand creates the formsync command tree writing to io.
func NewRootCommand(io iocli.IO, version string) *cobra.Command {
	return newRootCommand(&app{io: io}, version)
}

func newRootCommand(a *app, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formsync",
		Short:         "formsync - keep form responses in a table store",
		Long:          "Preview and apply field changes of forms against their response stores and record submissions.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("endpoint", "", "table store endpoint (default http://localhost:8080/v1/exec)")
	flags.String("db", "", "local database path (default formsync.db)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	flags.BoolVar(&a.opts.json, "json", false, "print results as JSON")

	cmd.AddCommand(
		newPreviewCommand(a),
		newApplyCommand(a),
		newWatchCommand(a),
		newSubmitCommand(a),
		newFormsCommand(a),
		newMetricsCommand(a),
		newStoreCommand(a),
		newTokenCommand(a),
	)

	return cmd
}

// setup читает конфигурацию и собирает сервисы. Если Cli уже задан, только применяет --json.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cli != nil {
		a.cli.json = a.opts.json
		return nil
	}

	v := config.New(config.ClientEnvPrefix)
	config.SetClientDefaults(v)
	if err := config.Bind(v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(v, a.opts.configPath); err != nil {
		return err
	}
	cfg, err := config.LoadClient(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	db, err := boltdb.New(cmd.Context(), cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db

	authSvc := auth.NewService(db, logger)

	a.registry = prometheus.NewRegistry()
	conn, err := connector.New(cfg.Connector(),
		connector.WithTokenSource(authSvc),
		connector.WithMetrics(connector.NewPromSink(connector.NewMemoryMetrics(), a.registry)),
		connector.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	formsSvc := forms.NewService(tablestore.New(conn), db, db, conn, columns.Default(), logger)
	a.cli = New(a.io, formsSvc, authSvc, logger, a.opts.json)

	logger.Debug("formsync started", "endpoint", cfg.Endpoint, "db", cfg.DBPath)
	return nil
}

// close освобождает ресурсы, открытые в setup
func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// endpoint адрес хранилища из конфигурации
func (a *app) endpoint() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.Endpoint
}

func (a *app) gatherer() prometheus.Gatherer {
	if a.registry == nil {
		return nil
	}
	return a.registry
}

// Execute runs formsync with os.Args and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	stdio := iocli.NewStdio()
	a := &app{io: stdio}
	root := newRootCommand(a, version)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil {
		slog.Error("failed to close database", "error", cerr)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrAborted):
		fmt.Fprintln(os.Stderr, "Aborted")
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
