package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// SubjectKey ключ для subject токена в контексте (устанавливает AuthMiddleware)
const SubjectKey contextKey = "subject"

// WithSubject сохраняет subject в контексте
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// GetSubject извлекает subject из контекста запроса
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}
