// Package forms is the collaborator facade: preview and commit of field
// migrations, store linking and response submission.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/formsync/internal/client/connector"
	"github.com/iudanet/formsync/internal/client/migrate"
	"github.com/iudanet/formsync/internal/client/storage"
	"github.com/iudanet/formsync/internal/client/tablestore"
	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/migration"
	"github.com/iudanet/formsync/internal/models"
	"github.com/iudanet/formsync/internal/validation"
	"github.com/iudanet/formsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции над формами
type Service interface {
	// Link привязывает форму к существующему хранилищу
	Link(ctx context.Context, formID string, ref models.StoreReference) error

	// CreateStore создает хранилище с заголовком текущей схемы и привязывает к нему форму
	CreateStore(ctx context.Context, formID, name, tab string) (*api.StoreInfo, error)

	// Preview вычисляет план миграции без записи
	Preview(ctx context.Context, formID string, next models.FieldList) (*migration.Plan, error)

	// Commit применяет план и сохраняет новую схему формы
	Commit(ctx context.Context, formID string, plan *migration.Plan, opts migrate.ApplyOptions) (*migrate.SyncResult, error)

	// Submit записывает один ответ на форму
	Submit(ctx context.Context, formID string, values map[string]string, meta SubmissionMeta) (*api.AppendResult, error)

	// Forms возвращает все примененные формы
	Forms(ctx context.Context) ([]storage.FormSnapshot, error)

	// Metrics возвращает счетчики коннектора
	Metrics() connector.ConnectorMetrics
}

// MetricsSource отдает снимок метрик коннектора
type MetricsSource interface {
	Metrics() connector.ConnectorMetrics
}

type service struct {
	backend  tablestore.Backend
	forms    storage.FormStorage
	journal  storage.JournalStorage
	metrics  MetricsSource
	executor *migrate.Executor
	logger   *slog.Logger
	now      func() time.Time
	locks    sync.Map
	mapper   columns.Mapper
}

// NewService creates the forms service
func NewService(
	backend tablestore.Backend,
	forms storage.FormStorage,
	journal storage.JournalStorage,
	metrics MetricsSource,
	mapper columns.Mapper,
	logger *slog.Logger,
) Service {
	return &service{
		backend:  backend,
		forms:    forms,
		journal:  journal,
		metrics:  metrics,
		mapper:   mapper,
		executor: migrate.NewExecutor(backend, journal, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// lock сериализует операции над одной формой; разные формы не блокируют друг друга
func (s *service) lock(formID string) func() {
	v, _ := s.locks.LoadOrStore(formID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *service) Link(ctx context.Context, formID string, ref models.StoreReference) error {
	if err := validation.ValidateFormID(formID); err != nil {
		return err
	}
	if err := s.forms.SaveStoreRef(ctx, formID, ref); err != nil {
		return fmt.Errorf("failed to link form %s: %w", formID, err)
	}

	s.logger.Info("Form linked", "form_id", formID, "store", ref.String())
	return nil
}

func (s *service) CreateStore(ctx context.Context, formID, name, tab string) (*api.StoreInfo, error) {
	if err := validation.ValidateFormID(formID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStoreName(name); err != nil {
		return nil, err
	}

	unlock := s.lock(formID)
	defer unlock()

	snapshot, err := s.snapshot(ctx, formID)
	if err != nil {
		return nil, err
	}

	info, err := s.backend.CreateStore(ctx, name, tab, s.mapper.Header(snapshot.Fields))
	if err != nil {
		return nil, err
	}

	ref := models.StoreReference{ID: info.ID, Tab: info.Tab}
	if err := s.forms.SaveStoreRef(ctx, formID, ref); err != nil {
		return nil, fmt.Errorf("store %s created but not linked to form %s: %w", ref, formID, err)
	}

	s.logger.Info("Store created", "form_id", formID, "store", ref.String(), "name", name)
	return info, nil
}

func (s *service) Preview(ctx context.Context, formID string, next models.FieldList) (*migration.Plan, error) {
	ref, err := s.storeRef(ctx, formID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, formID)
	if err != nil {
		return nil, err
	}

	rowCount := 0
	info, err := s.backend.Describe(ctx, ref, true)
	switch {
	case err == nil:
		rowCount = info.RowCount
	case errors.Is(err, models.ErrNotFound):
		s.logger.Warn("Linked store not found, it will be created on commit", "form_id", formID, "store", ref.String())
	default:
		return nil, fmt.Errorf("preview form %s: %w", formID, err)
	}

	// Строки прерванной миграции живут только в журнале
	entry, err := s.journal.GetJournal(ctx, ref.ID)
	switch {
	case err == nil:
		rowCount = max(rowCount, len(entry.Rows))
	case !errors.Is(err, storage.ErrJournalNotFound):
		return nil, fmt.Errorf("preview form %s: %w", formID, err)
	}

	plan, err := migration.Compute(snapshot.Fields, next, rowCount, s.mapper)
	if err != nil {
		return nil, fmt.Errorf("preview form %s: %w", formID, err)
	}

	s.logger.Debug("Migration previewed",
		"form_id", formID,
		"kind", plan.Decision.Kind.String(),
		"rows", rowCount,
		"added", len(plan.Diff.Added),
		"removed", len(plan.Diff.Removed),
		"moved", len(plan.Diff.Moved),
		"changed", len(plan.Diff.Changed))

	return plan, nil
}

// Commit runs the executor for plan and, on success, makes plan.Next the
// saved field list. A replacement store is linked even when a later step
// failed, so the next attempt targets it.
func (s *service) Commit(ctx context.Context, formID string, plan *migration.Plan, opts migrate.ApplyOptions) (*migrate.SyncResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil migration plan")
	}

	unlock := s.lock(formID)
	defer unlock()

	ref, err := s.storeRef(ctx, formID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := snapshot.Fields.Validate(); err != nil {
		return nil, fmt.Errorf("saved fields of form %s: %w", formID, err)
	}
	if !migration.Diff(snapshot.Fields, plan.Previous).IsEmpty() {
		return nil, fmt.Errorf("commit form %s: %w", formID, ErrStalePlan)
	}

	if strings.TrimSpace(opts.StoreName) == "" {
		opts.StoreName = snapshot.Name
	}

	res, err := s.executor.Execute(ctx, plan, ref, opts)
	if err == nil && res.Kind == migration.KindNone && !res.Resumed {
		res, err = s.executor.SyncHeader(ctx, plan, ref, opts)
	}

	if res != nil && res.NewReference != nil {
		if saveErr := s.forms.SaveStoreRef(ctx, formID, *res.NewReference); saveErr != nil {
			s.logger.Error("Failed to save replacement store", "form_id", formID, "store", res.NewReference.String(), "error", saveErr)
			return res, errors.Join(err, fmt.Errorf("failed to link form %s to %s: %w", formID, res.NewReference, saveErr))
		}
	}
	if err != nil {
		return res, err
	}

	next := &storage.FormSnapshot{
		FormID:  formID,
		Name:    strings.TrimSpace(opts.StoreName),
		Fields:  plan.Next,
		SavedAt: s.now(),
	}
	if err := s.forms.SaveSnapshot(ctx, next); err != nil {
		return res, fmt.Errorf("migration applied but form %s was not saved: %w", formID, err)
	}

	s.logger.Info("Form committed",
		"form_id", formID,
		"kind", res.Kind.String(),
		"applied", res.Applied,
		"rows", res.RowsMigrated,
		"warnings", len(res.Warnings))

	return res, nil
}

// Submit appends one response in the column layout of the saved fields.
// It waits for a running Commit of the same form.
func (s *service) Submit(ctx context.Context, formID string, values map[string]string, meta SubmissionMeta) (*api.AppendResult, error) {
	unlock := s.lock(formID)
	defer unlock()

	ref, err := s.storeRef(ctx, formID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.forms.GetSnapshot(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("form %s was never applied: %w", formID, err)
	}

	cells, err := Cells(snapshot.Fields, values)
	if err != nil {
		return nil, fmt.Errorf("submit to form %s: %w", formID, err)
	}

	submittedAt := meta.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = s.now()
	}

	row := api.ResponseRow{
		SubmittedAt: submittedAt.UTC(),
		FormID:      formID,
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		Cells:       cells,
	}

	return s.backend.AppendResponse(ctx, ref, row)
}

func (s *service) Forms(ctx context.Context) ([]storage.FormSnapshot, error) {
	return s.forms.ListSnapshots(ctx)
}

func (s *service) Metrics() connector.ConnectorMetrics {
	return s.metrics.Metrics()
}

func (s *service) storeRef(ctx context.Context, formID string) (models.StoreReference, error) {
	ref, err := s.forms.GetStoreRef(ctx, formID)
	if err != nil {
		return models.StoreReference{}, fmt.Errorf("form %s has no store: %w", formID, err)
	}
	return ref, nil
}

// snapshot возвращает сохраненную схему или пустую, если форма еще не применялась
func (s *service) snapshot(ctx context.Context, formID string) (*storage.FormSnapshot, error) {
	snapshot, err := s.forms.GetSnapshot(ctx, formID)
	if errors.Is(err, storage.ErrFormNotFound) {
		return &storage.FormSnapshot{FormID: formID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load form %s: %w", formID, err)
	}
	return snapshot, nil
}
