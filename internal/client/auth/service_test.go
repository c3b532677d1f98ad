package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/client/storage"
)

// errStorageClosed stands in for an arbitrary storage failure
var errStorageClosed = errors.New("storage closed")

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func mint(t *testing.T, subject string, expires time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: subject}
	if !expires.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expires)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

// memAuth AuthStorageMock с состоянием в памяти
func memAuth() *storage.AuthStorageMock {
	var saved *storage.AuthData
	return &storage.AuthStorageMock{
		SaveAuthFunc: func(_ context.Context, auth *storage.AuthData) error {
			c := *auth
			saved = &c
			return nil
		},
		GetAuthFunc: func(context.Context) (*storage.AuthData, error) {
			if saved == nil {
				return nil, storage.ErrAuthNotFound
			}
			c := *saved
			return &c, nil
		},
		DeleteAuthFunc: func(context.Context) error {
			saved = nil
			return nil
		},
	}
}

func newService(st storage.AuthStorage) *service {
	s := NewService(st, slog.New(slog.DiscardHandler)).(*service)
	s.now = func() time.Time { return now }
	return s
}

func TestSetToken(t *testing.T) {
	st := memAuth()
	svc := newService(st)
	ctx := context.Background()

	token := mint(t, "ops.team", now.Add(time.Hour))
	data, err := svc.SetToken(ctx, " "+token+"\n", "http://localhost:8080/v1/exec")
	require.NoError(t, err)

	assert.Equal(t, "ops.team", data.Subject)
	assert.Equal(t, now.Add(time.Hour).Unix(), data.ExpiresAt)
	assert.Empty(t, data.AccessToken)

	require.Len(t, st.SaveAuthCalls(), 1)
	assert.Equal(t, token, st.SaveAuthCalls()[0].Auth.AccessToken)
	assert.Equal(t, "http://localhost:8080/v1/exec", st.SaveAuthCalls()[0].Auth.Endpoint)

	got, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops.team", status.Subject)
	assert.Empty(t, status.AccessToken)
}

func TestSetToken_Invalid(t *testing.T) {
	svc := newService(memAuth())
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: "  "},
		{name: "not a jwt", token: "abc.def"},
		{name: "bad subject", token: mint(t, "a b", time.Time{})},
		{name: "no subject", token: mint(t, "", time.Time{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetToken(ctx, tt.token, "")
			require.Error(t, err)
		})
	}

	_, err := svc.SetToken(ctx, mint(t, "ops.team", now.Add(-time.Minute)), "")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestToken_NeverExpires(t *testing.T) {
	svc := newService(memAuth())
	ctx := context.Background()

	_, err := svc.SetToken(ctx, mint(t, "ops.team", time.Time{}), "")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.AddDate(10, 0, 0) }
	_, err = svc.Token(ctx)
	require.NoError(t, err)
}

func TestToken_Expired(t *testing.T) {
	svc := newService(memAuth())
	ctx := context.Background()

	_, err := svc.SetToken(ctx, mint(t, "ops.team", now.Add(time.Minute)), "")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = svc.Token(ctx)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestToken_NotLoggedIn(t *testing.T) {
	svc := newService(memAuth())

	_, err := svc.Token(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = svc.Status(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestToken_StorageError(t *testing.T) {
	st := memAuth()
	st.GetAuthFunc = func(context.Context) (*storage.AuthData, error) {
		return nil, errStorageClosed
	}
	svc := newService(st)

	_, err := svc.Token(context.Background())
	require.ErrorIs(t, err, errStorageClosed)
}

func TestLogout(t *testing.T) {
	st := memAuth()
	svc := newService(st)
	ctx := context.Background()

	_, err := svc.SetToken(ctx, mint(t, "ops.team", time.Time{}), "")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Token(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	st.DeleteAuthFunc = func(context.Context) error { return errors.New("locked") }
	require.Error(t, svc.Logout(ctx))
}
