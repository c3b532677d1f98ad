// Package jwt выпускает и проверяет токены доступа к tablestore (HS256).
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/formsync/internal/validation"
)

// Issuer значение iss в выпущенных токенах
const Issuer = "tablestore"

var (
	// ErrInvalidToken подпись, формат или издатель не подходят
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired срок действия токена истек
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents JWT claims
type Claims = jwtlib.RegisteredClaims

// Service provides token minting and validation
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service. ttl 0 mints tokens without expiry.
// secret should be a cryptographically secure random string
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Mint выпускает токен для subject. Нулевой expiresAt означает бессрочный токен.
func (s *Service) Mint(subject string) (string, time.Time, error) {
	if err := validation.ValidateSubject(subject); err != nil {
		return "", time.Time{}, err
	}

	now := s.now()
	claims := Claims{
		Subject:  subject,
		Issuer:   Issuer,
		ID:       uuid.NewString(),
		IssuedAt: jwtlib.NewNumericDate(now),
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
		claims.ExpiresAt = jwtlib.NewNumericDate(expiresAt)
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate проверяет подпись, издателя и срок действия
func (s *Service) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwtlib.ParseWithClaims(token, claims,
		func(*jwtlib.Token) (any, error) { return s.secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(Issuer),
		jwtlib.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidToken)
	}
	return claims, nil
}
