package connector

import (
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iudanet/formsync/pkg/api"
)

// CacheStore хранилище кешированных ответов с истечением по времени
type CacheStore interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, data json.RawMessage, ttl time.Duration)
	Delete(key string)
	DeletePrefix(prefix string) int
	Flush()
	Len() int
}

// MemoryCache реализует CacheStore поверх go-cache
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a cache that sweeps expired entries every cleanup interval.
func NewMemoryCache(cleanup time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(gocache.NoExpiration, cleanup)}
}

// Get returns the entry if it has not expired.
func (m *MemoryCache) Get(key string) (json.RawMessage, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.(json.RawMessage)
	return data, ok
}

// Set stores data for ttl. A non-positive ttl is ignored.
func (m *MemoryCache) Set(key string, data json.RawMessage, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.c.Set(key, data, ttl)
}

// Delete удаляет запись
func (m *MemoryCache) Delete(key string) {
	m.c.Delete(key)
}

// DeletePrefix удаляет все записи с ключом, начинающимся с prefix, и возвращает их число
func (m *MemoryCache) DeletePrefix(prefix string) int {
	n := 0
	for key := range m.c.Items() {
		if strings.HasPrefix(key, prefix) {
			m.c.Delete(key)
			n++
		}
	}
	return n
}

// Flush очищает кеш
func (m *MemoryCache) Flush() {
	m.c.Flush()
}

// Len returns the number of unexpired entries.
func (m *MemoryCache) Len() int {
	return len(m.c.Items())
}

var (
	defaultCache     *MemoryCache
	defaultCacheOnce sync.Once
)

// DefaultCache returns the process-wide cache shared by connectors that
// were not given their own CacheStore.
func DefaultCache() *MemoryCache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewMemoryCache(time.Minute)
	})
	return defaultCache
}

// cacheKey строит ключ "store:<id>|<op>?<params>"; параметры сортируются url.Values.Encode
func cacheKey(operation string, params map[string]string) string {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return storePrefix(params[api.ParamID]) + operation + "?" + values.Encode()
}

// storePrefix префикс ключей кеша, относящихся к одному хранилищу.
// Пустой id собирает операции без хранилища (listStores).
func storePrefix(id string) string {
	return "store:" + id + "|"
}

// generations считает сбросы кеша по хранилищам. Чтение запоминает счетчик
// до запроса и кладет ответ в кеш, только если хранилище с тех пор не менялось.
// Сброс по непустому id увеличивает и счетчик списков ("").
type generations struct {
	byID map[string]uint64
	mu   sync.Mutex
}

func (g *generations) current(id string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.byID[id]
}

// bump увеличивает счетчик id и выполняет drop под той же блокировкой
func (g *generations) bump(id string, drop func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.byID == nil {
		g.byID = make(map[string]uint64)
	}
	g.byID[id]++
	if id != "" {
		g.byID[""]++
	}
	drop()
}

// setIfCurrent выполняет set, если счетчик id все еще равен gen
func (g *generations) setIfCurrent(id string, gen uint64, set func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.byID[id] != gen {
		return false
	}
	set()
	return true
}
