// Package command содержит дерево команд tablestore: serve, token и migrate.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/formsync/internal/config"
)

// app общее состояние команд одного запуска
type app struct {
	v          *viper.Viper
	stderr     io.Writer
	configPath string
	version    string
}

// NewRootCommand creates the tablestore command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version, stderr: os.Stderr}

	cmd := &cobra.Command{
		Use:           "tablestore",
		Short:         "tablestore - HTTP table store for formsync",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("db", "", "SQLite database path (default tablestore.db)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default info)")
	flags.String("log-file", "", "write logs to this file with rotation instead of stderr")
	flags.String("jwt-secret", "", "secret used to sign access tokens")

	cmd.AddCommand(
		newServeCommand(a),
		newTokenCommand(a),
		newMigrateCommand(a),
	)

	return cmd
}

// load связывает флаги, переменные TABLESTORE_* и файл конфигурации
func (a *app) load(cmd *cobra.Command) error {
	v := config.New(config.ServerEnvPrefix)
	config.SetServerDefaults(v)
	if err := config.Bind(v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(v, a.configPath); err != nil {
		return err
	}
	a.v = v
	return nil
}

// server возвращает проверенные настройки сервера
func (a *app) server() (*config.Server, error) {
	return config.LoadServer(a.v)
}

// logger пишет JSON в stderr или в файл с ротацией через lumberjack
func (a *app) logger(cfg *config.Server) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    = a.stderr
		closer io.Closer
	)
	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			Compress:   true,
		}
		out, closer = rotating, rotating
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closer, nil
}

// Execute runs tablestore with os.Args and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
