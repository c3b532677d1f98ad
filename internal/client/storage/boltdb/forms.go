package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/formsync/internal/client/storage"
	"github.com/iudanet/formsync/internal/models"
)

// SaveSnapshot replaces the last applied field list of the form
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *storage.FormSnapshot) error {
	if snapshot.FormID == "" {
		return fmt.Errorf("form id is required")
	}
	if err := snapshot.Fields.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot of form %s: %w", snapshot.FormID, err)
	}

	return s.putJSON(bucketForms, []byte(snapshot.FormID), "snapshot of form "+snapshot.FormID, snapshot)
}

// GetSnapshot returns the last applied field list of the form
func (s *Storage) GetSnapshot(ctx context.Context, formID string) (*storage.FormSnapshot, error) {
	return getJSON[storage.FormSnapshot](s, bucketForms, []byte(formID), "snapshot of form "+formID, storage.ErrFormNotFound)
}

// ListSnapshots returns all saved forms. bbolt iterates keys in byte order.
func (s *Storage) ListSnapshots(ctx context.Context) ([]storage.FormSnapshot, error) {
	var out []storage.FormSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketForms)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var snapshot storage.FormSnapshot
			if err := json.Unmarshal(v, &snapshot); err != nil {
				return fmt.Errorf("failed to unmarshal snapshot of form %s: %w", k, err)
			}
			out = append(out, snapshot)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SaveStoreRef links the form to its response store
func (s *Storage) SaveStoreRef(ctx context.Context, formID string, ref models.StoreReference) error {
	if ref.IsZero() {
		return fmt.Errorf("empty store reference for form %s: %w", formID, models.ErrInvalidReference)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketStores)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(formID), []byte(ref.String())); err != nil {
			return fmt.Errorf("failed to save store reference: %w", err)
		}
		return nil
	})
}

// GetStoreRef returns the store the form writes responses to
func (s *Storage) GetStoreRef(ctx context.Context, formID string) (models.StoreReference, error) {
	var raw string

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketStores)
		if err != nil {
			return err
		}

		data := b.Get([]byte(formID))
		if data == nil {
			return storage.ErrStoreRefNotFound
		}
		raw = string(data)
		return nil
	})
	if err != nil {
		return models.StoreReference{}, err
	}

	return models.ParseStoreReference(raw)
}
