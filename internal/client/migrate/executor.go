// Package migrate applies a computed migration plan to a table store.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/formsync/internal/client/storage"
	"github.com/iudanet/formsync/internal/client/tablestore"
	"github.com/iudanet/formsync/internal/migration"
	"github.com/iudanet/formsync/internal/models"
)

// appendBatchSize максимальное число строк в одном вызове appendRows
const appendBatchSize = 500

// ApplyOptions параметры применения
type ApplyOptions struct {
	// StoreName имя нового хранилища, если целевое не найдено; по умолчанию id цели
	StoreName string
	// Confirmed явное согласие на перезапись строк (обязательно для FULL)
	Confirmed bool
}

// Executor выполняет план миграции. Шаги одного вызова строго последовательны.
type Executor struct {
	backend tablestore.Backend
	journal storage.JournalStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewExecutor создает исполнитель миграций
func NewExecutor(backend tablestore.Backend, journal storage.JournalStorage, logger *slog.Logger) *Executor {
	return &Executor{
		backend: backend,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Execute applies plan to target.
//
// FULL without opts.Confirmed fails with models.ErrConfirmationRequired
// before any I/O. The same error stops a header-only plan when the backend
// cannot rewrite the header in place, before any row is touched. A pending journal for target whose layout matches the
// plan is resumed first, whatever the decided kind. On failure the result
// is returned together with the error and names the failed step.
func (e *Executor) Execute(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions) (*SyncResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil migration plan")
	}
	if target.IsZero() {
		return nil, fmt.Errorf("migration target: %w", models.ErrInvalidReference)
	}

	kind := plan.Decision.Kind
	if kind == migration.KindFull && !opts.Confirmed {
		return nil, fmt.Errorf("full migration of %s rewrites %d rows: %w",
			target, plan.Decision.ExistingRowCount, models.ErrConfirmationRequired)
	}

	res := &SyncResult{Kind: kind}

	entry, err := e.pendingJournal(ctx, target, plan)
	if err != nil {
		return e.failed(res, target, StepJournal, err)
	}
	if entry != nil {
		e.logger.Warn("resuming interrupted migration",
			"store", target.String(),
			"step", entry.Step,
			"rows", len(entry.Rows),
		)
		res.Kind = migration.KindFull
		res.Resumed = true
		res.warn("resumed interrupted migration of %s from step %s", target, entry.Step)
		return e.writeFull(ctx, plan, target, opts, entry.Rows, res)
	}

	switch kind {
	case migration.KindNone:
		res.Step = StepDone
		return res, nil
	case migration.KindHeaderOnly:
		return e.headerOnly(ctx, plan, target, opts, res)
	case migration.KindFull:
		return e.full(ctx, plan, target, opts, nil, res)
	default:
		return nil, fmt.Errorf("unknown migration kind %s", kind)
	}
}

// SyncHeader brings the header of target in line with plan when no row
// migration was decided, e.g. for a store without rows. A header that
// already matches is left alone. A structural plan is refused with
// ErrSchemaConflict if rows appeared in the store since the plan was built.
func (e *Executor) SyncHeader(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions) (*SyncResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil migration plan")
	}
	if target.IsZero() {
		return nil, fmt.Errorf("header target: %w", models.ErrInvalidReference)
	}

	res := &SyncResult{Kind: plan.Decision.Kind}

	info, err := e.backend.Describe(ctx, target, true)
	if errors.Is(err, models.ErrNotFound) {
		return e.recreate(ctx, plan, target, opts, nil, res)
	}
	if err != nil {
		return e.failed(res, target, StepDescribe, err)
	}

	if slices.Equal(trimHeader(info.Header), plan.Header) {
		res.Step = StepDone
		return res, nil
	}
	if plan.Diff.HasStructuralChange() && info.RowCount > 0 {
		return e.failed(res, target, StepDescribe, fmt.Errorf(
			"%w: store has %d rows now, the plan was built for an empty store", models.ErrSchemaConflict, info.RowCount))
	}

	return e.writeHeader(ctx, plan, target, opts, info.Header, res)
}

// pendingJournal возвращает журнал прерванной миграции, совместимый с планом
func (e *Executor) pendingJournal(ctx context.Context, target models.StoreReference, plan *migration.Plan) (*storage.JournalEntry, error) {
	entry, err := e.journal.GetJournal(ctx, target.ID)
	if errors.Is(err, storage.ErrJournalNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !slices.Equal(entry.Layout, plan.Previous.Keys()) {
		return nil, fmt.Errorf("%w: pending migration journal of %s was written for fields %v, plan starts from %v",
			models.ErrSchemaConflict, target, entry.Layout, plan.Previous.Keys())
	}
	return entry, nil
}

func (e *Executor) headerOnly(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions, res *SyncResult) (*SyncResult, error) {
	info, err := e.backend.Describe(ctx, target, true)
	if errors.Is(err, models.ErrNotFound) {
		return e.recreate(ctx, plan, target, opts, nil, res)
	}
	if err != nil {
		return e.failed(res, target, StepDescribe, err)
	}

	return e.writeHeader(ctx, plan, target, opts, info.Header, res)
}

func (e *Executor) writeHeader(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions, current []string, res *SyncResult) (*SyncResult, error) {
	if err := checkHeader(plan, current); err != nil {
		return e.failed(res, target, StepDescribe, err)
	}

	err := e.backend.WriteHeader(ctx, target, plan.Header)
	switch {
	case err == nil:
		e.logger.Info("header updated", "store", target.String(), "columns", len(plan.Header))
		res.Applied = true
		res.Step = StepDone
		return res, nil
	case errors.Is(err, models.ErrUnsupported):
		res.Kind = migration.KindFull
		if !opts.Confirmed {
			res.warn("backend does not support header-only update of %s; rows must be rewritten", target)
			return e.failed(res, target, StepHeader, fmt.Errorf("header-only update unsupported, full migration of %s rewrites %d rows: %w",
				target, plan.Decision.ExistingRowCount, models.ErrConfirmationRequired))
		}
		e.logger.Warn("header-only update unsupported, falling back to full migration", "store", target.String())
		res.warn("backend does not support header-only update of %s; rows were rewritten", target)
		return e.full(ctx, plan, target, opts, current, res)
	case errors.Is(err, models.ErrNotFound):
		return e.recreate(ctx, plan, target, opts, nil, res)
	default:
		return e.failed(res, target, StepHeader, err)
	}
}

// full читает строки, сохраняет их в журнал и переписывает хранилище.
// header уже проверенный заголовок, nil если Describe еще не вызывался.
func (e *Executor) full(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions, header []string, res *SyncResult) (*SyncResult, error) {
	if header == nil {
		info, err := e.backend.Describe(ctx, target, true)
		if errors.Is(err, models.ErrNotFound) {
			return e.recreate(ctx, plan, target, opts, nil, res)
		}
		if err != nil {
			return e.failed(res, target, StepDescribe, err)
		}
		if err := checkHeader(plan, info.Header); err != nil {
			return e.failed(res, target, StepDescribe, err)
		}
		header = info.Header
	}

	rows, err := e.backend.ReadRows(ctx, target)
	if errors.Is(err, models.ErrNotFound) {
		return e.recreate(ctx, plan, target, opts, nil, res)
	}
	if err != nil {
		return e.failed(res, target, StepRead, err)
	}

	entry := &storage.JournalEntry{
		StoreID:     target.ID,
		Fingerprint: plan.Fingerprint,
		Step:        StepClear,
		Layout:      plan.Previous.Keys(),
		Header:      header,
		Rows:        rows,
		CreatedAt:   e.now(),
	}
	if err := e.journal.SaveJournal(ctx, entry); err != nil {
		return e.failed(res, target, StepJournal, err)
	}

	e.logger.Info("full migration started", "store", target.String(), "rows", len(rows))

	return e.writeFull(ctx, plan, target, opts, rows, res)
}

// writeFull выполняет разрушающую часть: очистка, заголовок, вставка.
// Строки к этому моменту уже в журнале.
func (e *Executor) writeFull(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions, rows [][]string, res *SyncResult) (*SyncResult, error) {
	if err := e.backend.ClearRows(ctx, target); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return e.recreate(ctx, plan, target, opts, rows, res)
		}
		return e.failed(res, target, StepClear, err)
	}

	if err := e.backend.WriteHeader(ctx, target, plan.Header); err != nil {
		return e.failed(res, target, StepHeader, err)
	}

	migrated, err := e.appendRows(ctx, target, plan.RemapRows(rows))
	res.RowsMigrated = migrated
	if err != nil {
		return e.failed(res, target, StepInsert, err)
	}

	e.dropJournal(ctx, target, res)

	e.logger.Info("full migration finished", "store", target.String(), "rows", migrated)
	res.Applied = true
	res.Step = StepDone
	return res, nil
}

// recreate создает новое хранилище с новым заголовком и переносит имеющиеся строки
func (e *Executor) recreate(ctx context.Context, plan *migration.Plan, target models.StoreReference, opts ApplyOptions, rows [][]string, res *SyncResult) (*SyncResult, error) {
	name := strings.TrimSpace(opts.StoreName)
	if name == "" {
		name = target.ID
	}

	e.logger.Warn("target store not found, creating a new one", "store", target.String(), "name", name)

	info, err := e.backend.CreateStore(ctx, name, target.Tab, plan.Header)
	if err != nil {
		return e.failed(res, target, StepCreate, err)
	}

	ref := models.StoreReference{ID: info.ID, Tab: info.Tab}
	if ref.Tab == "" {
		ref.Tab = target.Tab
	}
	res.NewReference = &ref
	res.warn("store %s was not found; created %s", target, ref)

	if len(rows) > 0 {
		migrated, err := e.appendRows(ctx, ref, plan.RemapRows(rows))
		res.RowsMigrated = migrated
		if err != nil {
			return e.failed(res, ref, StepInsert, err)
		}
	}

	e.dropJournal(ctx, target, res)

	res.Applied = true
	res.Step = StepDone
	return res, nil
}

// appendRows пишет пачками в пустое хранилище. Смещение каждой пачки
// позволяет бэкенду опознать повтор после потерянного ответа.
func (e *Executor) appendRows(ctx context.Context, target models.StoreReference, rows [][]string) (int, error) {
	done := 0
	for chunk := range slices.Chunk(rows, appendBatchSize) {
		if err := e.backend.AppendRows(ctx, target, done, chunk); err != nil {
			return done, err
		}
		done += len(chunk)
	}
	return done, nil
}

// dropJournal удаляет журнал; ошибка не отменяет уже выполненную миграцию
func (e *Executor) dropJournal(ctx context.Context, target models.StoreReference, res *SyncResult) {
	if err := e.journal.DeleteJournal(ctx, target.ID); err != nil {
		e.logger.Error("failed to delete migration journal", "store", target.String(), "error", err)
		res.warn("migration journal of %s was not deleted: %v", target, err)
	}
}

func (e *Executor) failed(res *SyncResult, target models.StoreReference, step string, err error) (*SyncResult, error) {
	stepErr := &StepError{Store: target.String(), Step: step, Err: err}
	e.logger.Error("migration failed", "store", target.String(), "step", step, "error", err)
	res.Step = step
	res.Err = stepErr
	return res, stepErr
}

// checkHeader проверяет системный префикс и ширину заголовка по предыдущей схеме
func checkHeader(plan *migration.Plan, header []string) error {
	if !plan.Mapper.PrefixMatches(header) {
		return fmt.Errorf("%w: header %q does not start with the system columns", models.ErrSchemaConflict, header)
	}

	width := len(trimHeader(header))
	if expected := plan.Mapper.Width(plan.Previous); width != expected {
		return fmt.Errorf("%w: header has %d columns, previous field list needs %d", models.ErrSchemaConflict, width, expected)
	}
	return nil
}

// trimHeader отбрасывает пустые ячейки в конце заголовка
func trimHeader(header []string) []string {
	width := len(header)
	for width > 0 && strings.TrimSpace(header[width-1]) == "" {
		width--
	}
	return header[:width]
}
