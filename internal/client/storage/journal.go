package storage

import (
	"context"
	"time"
)

//go:generate moq -out journal_mock.go . JournalStorage

// JournalStorage хранит строки, снятые перед разрушающей записью полной миграции.
// Запись живет, пока миграция не завершена.
type JournalStorage interface {
	SaveJournal(ctx context.Context, entry *JournalEntry) error

	// GetJournal returns ErrJournalNotFound when no migration of the store is pending
	GetJournal(ctx context.Context, storeID string) (*JournalEntry, error)

	DeleteJournal(ctx context.Context, storeID string) error
}

// JournalEntry копия данных хранилища до очистки.
// Layout содержит ключи полей в порядке колонок сохраненных строк.
type JournalEntry struct {
	CreatedAt   time.Time  `json:"created_at"`
	StoreID     string     `json:"store_id"`
	Fingerprint string     `json:"fingerprint"`
	Step        string     `json:"step"`
	Layout      []string   `json:"layout"`
	Header      []string   `json:"header"`
	Rows        [][]string `json:"rows"`
}
