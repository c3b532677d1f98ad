package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	auth := &storage.AuthData{
		Subject:     "editor",
		AccessToken: "token-value",
		Endpoint:    "http://localhost:8080/exec",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}

	// До сохранения GetAuth выдает ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)

	// Обновляем auth с истекшим токеном
	auth.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.NoError(t, store.SaveAuth(ctx, auth))

	authOk, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)

	// Бессрочный токен
	auth.ExpiresAt = 0
	require.NoError(t, store.SaveAuth(ctx, auth))
	authOk, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)

	require.NoError(t, store.DeleteAuth(ctx))

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление возвращает ошибку
	assert.ErrorIs(t, store.DeleteAuth(ctx), storage.ErrAuthNotFound)
}

func TestStorage_IsAuthenticated_NoAuth(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)
}

func TestStorage_Auth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	dropBucket(t, store, bucketAuth)

	err := store.SaveAuth(ctx, &storage.AuthData{Subject: "test", AccessToken: "t"})
	assert.ErrorContains(t, err, "auth bucket not found")

	_, err = store.GetAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")

	err = store.DeleteAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")

	_, err = store.IsAuthenticated(ctx)
	assert.Error(t, err)
}

func TestStorage_SaveAuth_EmptyToken(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.Error(t, store.SaveAuth(context.Background(), &storage.AuthData{Subject: "test"}))
	require.Error(t, store.SaveAuth(context.Background(), nil))
}
