package storage

import (
	"context"
	"time"
)

//go:generate moq -out store_mock.go . StoreStorage

// StoreStorage defines persistence of tabular stores: one header row and
// ordered data rows per store.
type StoreStorage interface {
	// CreateStore saves a new store with its header
	// Returns ErrStoreExists if the id is taken
	CreateStore(ctx context.Context, store *Store) error

	// GetStore returns the store with its current row count
	// Returns ErrStoreNotFound if store doesn't exist
	GetStore(ctx context.Context, id string) (*Store, error)

	// ListStores returns all stores ordered by creation time
	ListStores(ctx context.Context) ([]Store, error)

	// SetHeader replaces the header row, data rows stay untouched
	SetHeader(ctx context.Context, id string, header []string) error

	// GetRows returns data rows in insertion order
	GetRows(ctx context.Context, id string) ([][]string, error)

	// ClearRows deletes all data rows, the header stays
	ClearRows(ctx context.Context, id string) error

	// AppendRows appends rows after the last one and returns the new row count.
	// With offset >= 0 the store must hold exactly offset rows; a store that
	// already ends with this batch at offset is left alone and written is false.
	// Any other row count returns ErrRowOffset. AnyOffset skips the check.
	AppendRows(ctx context.Context, id string, offset int, rows [][]string) (count int, written bool, err error)
}

// AnyOffset дописывает строки без проверки числа строк
const AnyOffset = -1

// Store одна таблица с заголовком
type Store struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Tab       string
	Header    []string
	RowCount  int
}
