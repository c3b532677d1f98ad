package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/formsync/internal/client/storage"
)

// SaveJournal сохраняет копию строк до разрушающей записи
func (s *Storage) SaveJournal(ctx context.Context, entry *storage.JournalEntry) error {
	if entry.StoreID == "" {
		return fmt.Errorf("journal entry without store id")
	}

	return s.putJSON(bucketJournal, []byte(entry.StoreID), "journal entry", entry)
}

// GetJournal возвращает незавершенную миграцию хранилища
func (s *Storage) GetJournal(ctx context.Context, storeID string) (*storage.JournalEntry, error) {
	return getJSON[storage.JournalEntry](s, bucketJournal, []byte(storeID), "journal entry", storage.ErrJournalNotFound)
}

// DeleteJournal удаляет запись; отсутствие записи не ошибка
func (s *Storage) DeleteJournal(ctx context.Context, storeID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketJournal)
		if err != nil {
			return err
		}

		if err := b.Delete([]byte(storeID)); err != nil {
			return fmt.Errorf("failed to delete journal entry: %w", err)
		}
		return nil
	})
}
