package migrate

import (
	"fmt"

	"github.com/iudanet/formsync/internal/migration"
	"github.com/iudanet/formsync/internal/models"
)

// Шаги выполнения, попадают в ошибки и в SyncResult.Step
const (
	StepDescribe = "describe"
	StepRead     = "read"
	StepJournal  = "journal"
	StepClear    = "clear"
	StepHeader   = "header"
	StepInsert   = "insert"
	StepCreate   = "create"
	StepDone     = "done"
)

// SyncResult итог применения миграции
type SyncResult struct {
	Err          error                  `json:"-"`
	NewReference *models.StoreReference `json:"new_reference,omitempty"`
	Step         string                 `json:"step"`
	Warnings     []string               `json:"warnings,omitempty"`
	RowsMigrated int                    `json:"rows_migrated"`
	Kind         migration.Kind         `json:"kind"`
	Applied      bool                   `json:"applied"`
	Resumed      bool                   `json:"resumed,omitempty"`
}

func (r *SyncResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// StepError сообщает, на каком шаге и для какого хранилища миграция остановилась
type StepError struct {
	Err   error
	Store string
	Step  string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("migration of store %s failed at step %s: %v", e.Store, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
