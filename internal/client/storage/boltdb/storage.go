package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/formsync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth    = []byte("auth")
	bucketForms   = []byte("forms")
	bucketStores  = []byte("stores")
	bucketJournal = []byte("journal")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketForms, bucketStores, bucketJournal} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// bucket возвращает bucket или ошибку, если его удалили
func bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("%s bucket not found", name)
	}
	return b, nil
}

// putJSON сохраняет v в JSON под ключом key
func (s *Storage) putJSON(name, key []byte, what string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, name)
		if err != nil {
			return err
		}
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", what, err)
		}
		return nil
	})
}

// getJSON читает значение ключа key; если ключа нет, возвращает notFound
func getJSON[T any](s *Storage, name, key []byte, what string, notFound error) (*T, error) {
	var out *T

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, name)
		if err != nil {
			return err
		}

		data := b.Get(key)
		if data == nil {
			return notFound
		}

		out = new(T)
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", what, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var (
	_ storage.AuthStorage    = (*Storage)(nil)
	_ storage.FormStorage    = (*Storage)(nil)
	_ storage.JournalStorage = (*Storage)(nil)
)
