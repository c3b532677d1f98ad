package connector

import "context"

//go:generate moq -out token_mock.go . TokenSource

// TokenSource выдает токен доступа к хранилищу. Пустой токен означает запрос без авторизации.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken неизменный токен из конфигурации
type StaticToken string

// Token returns the token itself.
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}
