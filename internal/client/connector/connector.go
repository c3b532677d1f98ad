// Package connector is the resilient client of the table store: TTL cache,
// in-flight deduplication, retry with backoff, endpoint learning and an
// absolute per-attempt timeout.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/formsync/pkg/api"
)

const (
	// DefaultRequestTimeout ограничение одной сетевой попытки
	DefaultRequestTimeout = 30 * time.Second
	maxRedirects          = 10
	maxResponseSize       = 32 << 20
)

// Config параметры коннектора
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	EndpointTTL    time.Duration `mapstructure:"endpoint_ttl"`
	Retry          RetryConfig   `mapstructure:"retry"`
}

// Option настраивает Connector
type Option func(*Connector)

// WithHTTPClient подменяет HTTP клиент (тесты, свой транспорт)
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connector) { c.httpClient = client }
}

// WithCache задает хранилище кеша вместо DefaultCache
func WithCache(cache CacheStore) Option {
	return func(c *Connector) { c.cache = cache }
}

// WithMetrics задает приемник метрик вместо DefaultMetrics
func WithMetrics(sink MetricsSink) Option {
	return func(c *Connector) { c.metrics = sink }
}

// WithTokenSource задает источник bearer токена
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Connector) { c.tokens = tokens }
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Connector) { c.logger = logger }
}

// Connector выполняет операции хранилища. Безопасен для конкурентного использования.
type Connector struct {
	httpClient *http.Client
	cache      CacheStore
	metrics    MetricsSink
	tokens     TokenSource
	logger     *slog.Logger
	endpoint   *endpointMemory
	gens       generations
	group      singleflight.Group
	cfg        Config
}

// New creates a connector for cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Connector, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: expected http(s)://host/path", cfg.BaseURL)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.EndpointTTL <= 0 {
		cfg.EndpointTTL = DefaultEndpointTTL
	}
	cfg.Retry = cfg.Retry.withDefaults()

	c := &Connector{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: cfg.RequestTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		}
	}
	if c.cache == nil {
		c.cache = DefaultCache()
	}
	if c.metrics == nil {
		c.metrics = DefaultMetrics()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.endpoint = newEndpointMemory(cfg.BaseURL, cfg.EndpointTTL, time.Now)

	return c, nil
}

// Result ответ операции
type Result struct {
	Data json.RawMessage
	// Endpoint адрес, который ответил (пусто для ответа из кеша)
	Endpoint string
	Cached   bool
	// Shared результат получен из запроса, разделенного с другими вызовами
	Shared bool
}

// Decode unmarshals Data into v. An empty payload leaves v untouched.
func (r *Result) Decode(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// FetchOption параметры одного вызова Fetch
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	body   any
	ttl    time.Duration
	ttlSet bool
	force  bool
}

// WithTTL переопределяет время жизни кеша для операции; 0 отключает кеш
func WithTTL(ttl time.Duration) FetchOption {
	return func(o *fetchOptions) {
		o.ttl = ttl
		o.ttlSet = true
	}
}

// WithForce пропускает кеш и обновляет его свежим ответом
func WithForce() FetchOption {
	return func(o *fetchOptions) { o.force = true }
}

// WithBody задает тело операции (сериализуется в JSON)
func WithBody(body any) FetchOption {
	return func(o *fetchOptions) { o.body = body }
}

// Fetch performs operation with params.
//
// Reads are served from the cache while fresh, and concurrent reads with
// the same key share one network request. A caller whose ctx ends while
// waiting gets ctx.Err(); the shared request keeps running for the others.
// Mutations always go to the network and invalidate cached reads of the
// same store.
func (c *Connector) Fetch(ctx context.Context, operation string, params map[string]string, opts ...FetchOption) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := fetchOptions{ttl: DefaultTTL(operation)}
	for _, opt := range opts {
		opt(&o)
	}

	var body json.RawMessage
	if o.body != nil {
		data, err := json.Marshal(o.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s body: %w", operation, err)
		}
		body = data
	}

	if IsMutation(operation) {
		res, err := c.do(ctx, operation, params, body)
		// Сбрасываем кеш даже при ошибке: запись могла частично пройти
		c.InvalidateStore(params[api.ParamID])
		if err != nil {
			return nil, c.fail(operation, err)
		}
		return res, nil
	}

	key := cacheKey(operation, params)

	if o.ttl > 0 && !o.force {
		if data, ok := c.cache.Get(key); ok {
			c.metrics.RecordCacheHit(operation)
			c.logger.Debug("cache hit", "operation", operation, "key", key)
			return &Result{Data: data, Cached: true}, nil
		}
	}

	id := params[api.ParamID]
	ch := c.group.DoChan(key, func() (any, error) {
		// предыдущий общий запрос мог заполнить кеш после проверки выше
		if o.ttl > 0 && !o.force {
			if data, ok := c.cache.Get(key); ok {
				c.metrics.RecordCacheHit(operation)
				return &Result{Data: data, Cached: true}, nil
			}
		}

		gen := c.gens.current(id)
		// Общий запрос не зависит от отмены конкретного вызывающего
		res, err := c.do(context.WithoutCancel(ctx), operation, params, body)
		if err != nil {
			return nil, err
		}
		if o.ttl > 0 && !c.gens.setIfCurrent(id, gen, func() { c.cache.Set(key, res.Data, o.ttl) }) {
			c.logger.Debug("store changed during read, response not cached", "operation", operation, "key", key)
		}
		return res, nil
	})

	select {
	case <-ctx.Done():
		c.logger.Debug("caller detached from in-flight request", "operation", operation, "error", ctx.Err())
		return nil, ctx.Err()
	case r := <-ch:
		if r.Shared {
			c.metrics.RecordDeduplicated(operation)
		}
		if r.Err != nil {
			return nil, c.fail(operation, r.Err)
		}
		res := *r.Val.(*Result)
		res.Shared = r.Shared
		return &res, nil
	}
}

// Metrics returns the current counters of the connector's metrics sink.
func (c *Connector) Metrics() ConnectorMetrics {
	return c.metrics.Snapshot()
}

// LearnedEndpoint returns the remembered canonical base, "" when none.
func (c *Connector) LearnedEndpoint() string {
	return c.endpoint.Learned()
}

// InvalidateStore drops cached reads of store id and the store listings.
// Reads of that store already in flight do not cache their responses.
func (c *Connector) InvalidateStore(id string) {
	var n int
	c.gens.bump(id, func() {
		n = c.cache.DeletePrefix(storePrefix(id))
		if id != "" {
			n += c.cache.DeletePrefix(storePrefix(""))
		}
	})
	if n > 0 {
		c.logger.Debug("cache invalidated", "store", id, "entries", n)
	}
}

func (c *Connector) fail(operation string, err error) error {
	if be, ok := asBackendError(err); ok {
		c.metrics.RecordFailure(operation, be.Kind)
		c.logger.Warn("backend operation failed",
			"operation", operation,
			"kind", be.Kind.String(),
			"status", be.StatusCode,
			"error", err,
		)
	}
	return err
}

// do выполняет операцию с повторами временных ошибок
func (c *Connector) do(ctx context.Context, operation string, params map[string]string, body json.RawMessage) (*Result, error) {
	bo, retryAfter := c.cfg.Retry.newBackOff(ctx)

	var (
		res     *Result
		attempt int
	)

	op := func() error {
		attempt++
		r, err := c.roundTrip(ctx, operation, params, body)
		if err == nil {
			res = r
			return nil
		}
		be, ok := asBackendError(err)
		if !ok || !be.Retryable() {
			return backoff.Permanent(err)
		}
		retryAfter.Override(be.RetryAfter)
		return err
	}

	notify := func(err error, delay time.Duration) {
		kind := KindTransient
		if be, ok := asBackendError(err); ok {
			kind = be.Kind
		}
		c.metrics.RecordRetry(operation, kind)
		c.logger.Info("retrying backend request",
			"operation", operation,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return nil, err
	}
	return res, nil
}

// roundTrip одна попытка: сначала выученный адрес, при его отказе статический
func (c *Connector) roundTrip(ctx context.Context, operation string, params map[string]string, body json.RawMessage) (*Result, error) {
	base, learned := c.endpoint.current()

	res, err := c.send(ctx, base, operation, params, body)
	if err == nil || !learned || ctx.Err() != nil || !fallbackWorthy(err) {
		return res, err
	}

	c.logger.Info("learned endpoint failed, falling back to configured base",
		"operation", operation,
		"learned", base,
		"error", err,
	)
	c.endpoint.forget()

	return c.send(ctx, c.cfg.BaseURL, operation, params, body)
}

// fallbackWorthy: сеть, 404 или 5xx указывают на устаревший адрес
func fallbackWorthy(err error) bool {
	be, ok := asBackendError(err)
	if !ok {
		return false
	}
	return (be.StatusCode == 0 && be.Kind == KindTransient) ||
		be.StatusCode == http.StatusNotFound ||
		be.StatusCode >= 500
}

func (c *Connector) send(ctx context.Context, base, operation string, params map[string]string, body json.RawMessage) (*Result, error) {
	target, err := buildURL(base, operation, params)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(api.Request{Operation: operation, Params: params, Body: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, &BackendError{
				Kind:      KindPermissionDenied,
				Operation: operation,
				Message:   "credential unavailable",
				Err:       err,
			}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordRequest(operation, time.Since(start))

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := "network error"
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() != nil {
			msg = fmt.Sprintf("request timed out after %s", c.cfg.RequestTimeout)
		}
		return nil, &BackendError{Kind: KindTransient, Operation: operation, Message: msg, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &BackendError{
			Kind:       KindTransient,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body",
			Err:        err,
		}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		env, _ := decodeEnvelope(raw)
		return nil, newStatusError(operation, resp.StatusCode, resp.Header, env, raw)
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, &BackendError{
			Kind:       KindMalformed,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    "response is not a JSON envelope",
			Err:        err,
		}
	}
	if !env.OK {
		return nil, newEnvelopeError(operation, env.Error)
	}

	final := resp.Request.URL
	c.endpoint.learn(final)

	return &Result{Data: env.Data, Endpoint: stripCallParams(final)}, nil
}

func buildURL(base, operation string, params map[string]string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", base, err)
	}
	q := u.Query()
	q.Set(api.ParamOp, operation)
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
