package connector

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// latencyWindow число последних запросов, по которым считается средняя задержка
const latencyWindow = 100

// ConnectorMetrics снимок счетчиков коннектора для дашбордов
type ConnectorMetrics struct {
	TotalRequests  int64         `json:"total_requests"`
	CacheHits      int64         `json:"cache_hits"`
	Deduplicated   int64         `json:"deduplicated"`
	Retries        int64         `json:"retries"`
	Failures       int64         `json:"failures"`
	AverageLatency time.Duration `json:"average_latency"`
}

// MetricsSink принимает события коннектора
type MetricsSink interface {
	// RecordRequest вызывается после каждой сетевой попытки
	RecordRequest(operation string, latency time.Duration)
	RecordCacheHit(operation string)
	RecordDeduplicated(operation string)
	RecordRetry(operation string, kind Kind)
	// RecordFailure вызывается, когда Fetch возвращает ошибку
	RecordFailure(operation string, kind Kind)
	Snapshot() ConnectorMetrics
}

// MemoryMetrics in-memory MetricsSink: atomic counters plus the mean
// latency of the last 100 requests.
type MemoryMetrics struct {
	total    atomic.Int64
	hits     atomic.Int64
	dedup    atomic.Int64
	retries  atomic.Int64
	failures atomic.Int64

	mu      sync.Mutex
	samples [latencyWindow]time.Duration
	pos     int
	filled  int
	sum     time.Duration
}

// NewMemoryMetrics создает пустой набор счетчиков
func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{}
}

func (m *MemoryMetrics) RecordRequest(_ string, latency time.Duration) {
	m.total.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filled == latencyWindow {
		m.sum -= m.samples[m.pos]
	} else {
		m.filled++
	}
	m.samples[m.pos] = latency
	m.sum += latency
	m.pos = (m.pos + 1) % latencyWindow
}

func (m *MemoryMetrics) RecordCacheHit(string)      { m.hits.Add(1) }
func (m *MemoryMetrics) RecordDeduplicated(string)  { m.dedup.Add(1) }
func (m *MemoryMetrics) RecordRetry(string, Kind)   { m.retries.Add(1) }
func (m *MemoryMetrics) RecordFailure(string, Kind) { m.failures.Add(1) }

// Snapshot returns a consistent-enough copy of the counters.
func (m *MemoryMetrics) Snapshot() ConnectorMetrics {
	out := ConnectorMetrics{
		TotalRequests: m.total.Load(),
		CacheHits:     m.hits.Load(),
		Deduplicated:  m.dedup.Load(),
		Retries:       m.retries.Load(),
		Failures:      m.failures.Load(),
	}

	m.mu.Lock()
	if m.filled > 0 {
		out.AverageLatency = m.sum / time.Duration(m.filled)
	}
	m.mu.Unlock()

	return out
}

var (
	defaultMetrics     *MemoryMetrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the process-wide sink used by connectors without their own.
func DefaultMetrics() *MemoryMetrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMemoryMetrics()
	})
	return defaultMetrics
}

// PromSink mirrors every event into Prometheus collectors and delegates
// Snapshot to the wrapped sink.
type PromSink struct {
	next     MetricsSink
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	hits     *prometheus.CounterVec
	dedup    *prometheus.CounterVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewPromSink registers the connector collectors in reg and wraps next.
func NewPromSink(next MetricsSink, reg prometheus.Registerer) *PromSink {
	factory := promauto.With(reg)
	return &PromSink{
		next: next,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "requests_total",
				Help:      "Network attempts issued to the table store",
			},
			[]string{"operation"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "request_duration_seconds",
				Help:      "Latency of a single network attempt",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "cache_hits_total",
				Help:      "Fetches served from the response cache",
			},
			[]string{"operation"},
		),
		dedup: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "deduplicated_total",
				Help:      "Fetches that joined an in-flight request",
			},
			[]string{"operation"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "retries_total",
				Help:      "Retried attempts by error kind",
			},
			[]string{"operation", "kind"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formsync",
				Subsystem: "connector",
				Name:      "failures_total",
				Help:      "Fetches that returned an error, by error kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (p *PromSink) RecordRequest(op string, latency time.Duration) {
	p.requests.WithLabelValues(op).Inc()
	p.latency.WithLabelValues(op).Observe(latency.Seconds())
	p.next.RecordRequest(op, latency)
}

func (p *PromSink) RecordCacheHit(op string) {
	p.hits.WithLabelValues(op).Inc()
	p.next.RecordCacheHit(op)
}

func (p *PromSink) RecordDeduplicated(op string) {
	p.dedup.WithLabelValues(op).Inc()
	p.next.RecordDeduplicated(op)
}

func (p *PromSink) RecordRetry(op string, kind Kind) {
	p.retries.WithLabelValues(op, kind.String()).Inc()
	p.next.RecordRetry(op, kind)
}

func (p *PromSink) RecordFailure(op string, kind Kind) {
	p.failures.WithLabelValues(op, kind.String()).Inc()
	p.next.RecordFailure(op, kind)
}

func (p *PromSink) Snapshot() ConnectorMetrics {
	return p.next.Snapshot()
}
