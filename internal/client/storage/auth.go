package storage

import (
	"context"
	"time"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the table store credential.
// The token is opaque to the client: it is minted by the backend operator
// and only forwarded as a bearer token.
type AuthStorage interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired token exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents authentication information in storage
type AuthData struct {
	Subject     string `json:"subject"`
	AccessToken string `json:"access_token"`
	Endpoint    string `json:"endpoint,omitempty"`
	// ExpiresAt unix-время истечения; 0 для бессрочного токена
	ExpiresAt int64 `json:"expires_at"`
}

// Expired reports whether the token has an expiry in the past.
func (a *AuthData) Expired(now time.Time) bool {
	return a.ExpiresAt != 0 && now.Unix() >= a.ExpiresAt
}
