package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/formsync/internal/server/storage/sqlite"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStorage(cmd, func(st *sqlite.Storage) error {
					return st.Up(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStorage(cmd, func(st *sqlite.Storage) error {
					return st.Down(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStorage(cmd, func(st *sqlite.Storage) error {
					return nil
				})
			},
		},
	)

	return cmd
}

// withStorage открывает базу без применения миграций, выполняет fn и печатает версию схемы.
// Секрет подписи для миграций не нужен, поэтому полная проверка настроек не делается.
func (a *app) withStorage(cmd *cobra.Command, fn func(st *sqlite.Storage) error) error {
	ctx := cmd.Context()
	dbPath := a.v.GetString("db")
	if dbPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}

	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()

	if err := fn(st); err != nil {
		return err
	}

	version, err := st.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", version)
	return nil
}
