package storage

import (
	"context"
	"time"

	"github.com/iudanet/formsync/internal/models"
)

//go:generate moq -out forms_mock.go . FormStorage

// FormStorage хранит последний примененный снимок полей формы и ссылку
// на хранилище ответов.
type FormStorage interface {
	// SaveSnapshot replaces the last applied field list of the form
	SaveSnapshot(ctx context.Context, snapshot *FormSnapshot) error

	// GetSnapshot returns ErrFormNotFound if the form was never applied
	GetSnapshot(ctx context.Context, formID string) (*FormSnapshot, error)

	// ListSnapshots returns all saved forms ordered by form id
	ListSnapshots(ctx context.Context) ([]FormSnapshot, error)

	// SaveStoreRef links the form to its response store
	SaveStoreRef(ctx context.Context, formID string, ref models.StoreReference) error

	// GetStoreRef returns ErrStoreRefNotFound if the form is not linked
	GetStoreRef(ctx context.Context, formID string) (models.StoreReference, error)
}

// FormSnapshot снимок полей формы на момент последней успешной синхронизации
type FormSnapshot struct {
	SavedAt time.Time        `json:"saved_at"`
	FormID  string           `json:"form_id"`
	Name    string           `json:"name"`
	Fields  models.FieldList `json:"fields"`
}
