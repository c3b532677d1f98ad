package middleware

import (
	"net/http"
)

// CanonicalRedirect отвечает 307 с from на to, сохраняя query string.
// 307 сохраняет метод и тело, поэтому POST повторяется по новому адресу.
func CanonicalRedirect(from, to string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != from {
				next.ServeHTTP(w, r)
				return
			}

			target := to
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}
