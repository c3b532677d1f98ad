package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/formsync/internal/server/handlers"
	"github.com/iudanet/formsync/pkg/api"
)

// RateLimiter ограничивает число запросов с одного ключа за окно (fixed window)
type RateLimiter struct {
	buckets map[string]*window
	logger  *slog.Logger
	done    chan struct{}
	now     func() time.Time
	limit   int
	period  time.Duration
	mu      sync.RWMutex
	stop    sync.Once
}

// window счетчик запросов ключа в текущем окне
type window struct {
	start time.Time
	count int
}

// NewRateLimiter создает limiter на limit запросов за period с одного ключа
// и запускает фоновую очистку неактивных ключей
func NewRateLimiter(limit int, period time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*window),
		limit:   limit,
		period:  period,
		logger:  logger,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.period * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.done:
			return
		}
	}
}

// cleanupOldBuckets забывает ключи, окно которых закончилось больше окна назад
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, w := range rl.buckets {
		if now.Sub(w.start) > rl.period*2 {
			delete(rl.buckets, key)
			removed++
		}
	}
	if removed > 0 {
		rl.logger.Debug("Rate limiter cleanup", "removed", removed, "active", len(rl.buckets))
	}
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.done) })
}

// Allow учитывает запрос ключа. При отказе возвращает время до начала следующего окна.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.buckets[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		rl.buckets[key] = w
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, rl.period - now.Sub(w.start)
}

// RateLimitMiddleware отвечает 429 с Retry-After (секунды, округление вверх),
// когда адрес клиента исчерпал лимит
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)

			allowed, wait := limiter.Allow(key)
			if !allowed {
				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}

				logger.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
					"op", r.URL.Query().Get(api.ParamOp),
					"retry_after", seconds,
				)

				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				handlers.SendError(w, logger, http.StatusTooManyRequests, api.CodeTransient, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		for idx := 0; idx < len(xff); idx++ {
			if xff[idx] == ',' {
				return xff[:idx]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
