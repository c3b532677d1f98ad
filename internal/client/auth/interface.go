package auth

import (
	"context"

	"github.com/iudanet/formsync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service управляет токеном доступа к табличному хранилищу.
// Токен выпускает оператор хранилища (tablestore token), клиент только
// сохраняет его и подставляет в запросы.
type Service interface {
	// SetToken проверяет формат токена, читает subject и срок действия и сохраняет его
	SetToken(ctx context.Context, token, endpoint string) (*storage.AuthData, error)

	// Token возвращает действующий токен (реализует connector.TokenSource)
	Token(ctx context.Context) (string, error)

	// Status возвращает сохраненные данные без токена
	Status(ctx context.Context) (*storage.AuthData, error)

	// Logout удаляет сохраненный токен
	Logout(ctx context.Context) error
}
