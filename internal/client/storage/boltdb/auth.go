package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/formsync/internal/client/storage"
)

// В bucket auth хранится один токен под этим ключом
var authKey = []byte("current")

// SaveAuth replaces the stored credential
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil || auth.AccessToken == "" {
		return fmt.Errorf("empty access token")
	}
	return s.putJSON(bucketAuth, authKey, "auth data", auth)
}

// GetAuth returns the stored credential or storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	return getJSON[storage.AuthData](s, bucketAuth, authKey, "auth data", storage.ErrAuthNotFound)
}

// DeleteAuth удаляет токен; если токена нет, возвращает ErrAuthNotFound
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAuth)
		if err != nil {
			return err
		}
		if b.Get(authKey) == nil {
			return storage.ErrAuthNotFound
		}
		return b.Delete(authKey)
	})
}

// IsAuthenticated checks if a non-expired token exists
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return !auth.Expired(time.Now()), nil
}
