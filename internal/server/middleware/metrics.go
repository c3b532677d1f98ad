package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iudanet/formsync/pkg/api"
)

// MetricsMiddleware считает запросы и их длительность по операции и статусу
func MetricsMiddleware(reg prometheus.Registerer) func(http.Handler) http.Handler {
	factory := promauto.With(reg)
	requests := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablestore",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served, by operation and status code",
		},
		[]string{"op", "status"},
	)
	duration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tablestore",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency by operation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			op := opLabel(r)
			requests.WithLabelValues(op, strconv.Itoa(wrapped.statusCode)).Inc()
			duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		})
	}
}

// opLabel ограничивает значения метки известными операциями
func opLabel(r *http.Request) string {
	op := r.URL.Query().Get(api.ParamOp)
	switch {
	case op == "":
		return "none"
	case api.KnownOperation(op):
		return op
	default:
		return "other"
	}
}
