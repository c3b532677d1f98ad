package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/formsync/internal/server/handlers"
	"github.com/iudanet/formsync/pkg/api"
)

// RecoveryMiddleware превращает panic в ответ 500 INTERNAL и пишет стек в лог.
// http.ErrAbortHandler пробрасывается дальше: им обработчик обрывает соединение.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "Panic recovered",
					slog.Any("error", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("op", r.URL.Query().Get(api.ParamOp)),
					slog.String("stack", string(debug.Stack())),
				)

				// Детали паники клиенту не отдаем
				handlers.SendError(w, logger, http.StatusInternalServerError, api.CodeInternal, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
