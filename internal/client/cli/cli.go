// Package cli implements the formsync commands on top of the forms and
// auth services.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/formsync/internal/client/auth"
	"github.com/iudanet/formsync/internal/client/forms"
	"github.com/iudanet/formsync/internal/client/iocli"
)

// ErrAborted пользователь не подтвердил перезапись данных
var ErrAborted = errors.New("aborted by user")

// Cli исполняет команды formsync
type Cli struct {
	io     iocli.IO
	forms  forms.Service
	auth   auth.Service
	logger *slog.Logger
	json   bool
}

// New создает Cli. Если asJSON, результаты печатаются как JSON документы.
func New(io iocli.IO, formsSvc forms.Service, authSvc auth.Service, logger *slog.Logger, asJSON bool) *Cli {
	return &Cli{
		io:     io,
		forms:  formsSvc,
		auth:   authSvc,
		logger: logger,
		json:   asJSON,
	}
}

// printJSON пишет v с отступами и переводом строки
func (c *Cli) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := c.io.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
