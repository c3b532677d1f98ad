package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/formsync/internal/client/connector"
	"github.com/iudanet/formsync/internal/client/storage"
	"github.com/iudanet/formsync/internal/validation"
)

var (
	// ErrNotLoggedIn indicates that no token was saved
	ErrNotLoggedIn = errors.New("no access token, run 'formsync token set'")

	// ErrTokenExpired indicates that the saved token is past its expiry
	ErrTokenExpired = errors.New("access token expired")
)

type service struct {
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
}

var (
	_ Service               = (*service)(nil)
	_ connector.TokenSource = (*service)(nil)
)

// NewService создает сервис токена поверх хранилища
func NewService(st storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		storage: st,
		logger:  logger,
		now:     time.Now,
	}
}

// SetToken reads the subject and expiry from the token claims without
// verifying the signature: only the table store holds the signing key.
func (s *service) SetToken(ctx context.Context, token, endpoint string) (*storage.AuthData, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	if err := validation.ValidateSubject(claims.Subject); err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	data := &storage.AuthData{
		Subject:     claims.Subject,
		AccessToken: token,
		Endpoint:    strings.TrimSpace(endpoint),
	}
	if claims.ExpiresAt != nil {
		data.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if data.Expired(s.now()) {
		return nil, ErrTokenExpired
	}

	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.logger.Info("Access token saved", "subject", data.Subject, "expires_at", data.ExpiresAt)
	return redacted(data), nil
}

func (s *service) Token(ctx context.Context) (string, error) {
	data, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if data.Expired(s.now()) {
		return "", fmt.Errorf("%w at %s", ErrTokenExpired, time.Unix(data.ExpiresAt, 0).UTC().Format(time.RFC3339))
	}
	return data.AccessToken, nil
}

func (s *service) Status(ctx context.Context) (*storage.AuthData, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return redacted(data), nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	s.logger.Info("Access token deleted")
	return nil
}

func (s *service) load(ctx context.Context) (*storage.AuthData, error) {
	data, err := s.storage.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	return data, nil
}

// redacted копия без самого токена
func redacted(data *storage.AuthData) *storage.AuthData {
	out := *data
	out.AccessToken = ""
	return &out
}
