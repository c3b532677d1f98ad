package connector

import (
	"net/url"
	"sync"
	"time"
)

// DefaultEndpointTTL сколько помнить адрес, на который перенаправило хранилище
const DefaultEndpointTTL = 10 * time.Minute

// endpointMemory хранит выученный базовый адрес хранилища.
// Статический адрес из конфигурации остается запасным.
type endpointMemory struct {
	now     func() time.Time
	static  string
	learned string
	expires time.Time
	ttl     time.Duration
	mu      sync.Mutex
}

func newEndpointMemory(static string, ttl time.Duration, now func() time.Time) *endpointMemory {
	if ttl <= 0 {
		ttl = DefaultEndpointTTL
	}
	return &endpointMemory{static: static, ttl: ttl, now: now}
}

// current возвращает адрес для следующего запроса и признак того, что он выучен
func (e *endpointMemory) current() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.learned != "" && e.now().Before(e.expires) {
		return e.learned, true
	}
	e.learned = ""
	return e.static, false
}

// learn запоминает итоговый адрес ответа без query и fragment.
// Совпадение со статическим адресом сбрасывает выученный.
func (e *endpointMemory) learn(final *url.URL) {
	if final == nil {
		return
	}
	base := stripCallParams(final)

	e.mu.Lock()
	defer e.mu.Unlock()

	if base == stripCallParamsString(e.static) {
		e.learned = ""
		return
	}
	e.learned = base
	e.expires = e.now().Add(e.ttl)
}

// forget сбрасывает выученный адрес после отказа
func (e *endpointMemory) forget() {
	e.mu.Lock()
	e.learned = ""
	e.mu.Unlock()
}

// Learned returns the remembered base, "" when none is active.
func (e *endpointMemory) Learned() string {
	base, learned := e.current()
	if !learned {
		return ""
	}
	return base
}

func stripCallParams(u *url.URL) string {
	c := *u
	c.RawQuery = ""
	c.ForceQuery = false
	c.Fragment = ""
	c.RawFragment = ""
	c.User = nil
	return c.String()
}

func stripCallParamsString(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return stripCallParams(u)
}
