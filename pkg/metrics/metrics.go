// Package metrics owns the Prometheus registry for the service and the
// collectors recorded by HTTP middleware and the database pool.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps a dedicated prometheus.Registry so tests and multiple
// servers in one process never collide on the default registerer.
type Registry struct {
	namespace string
	reg       *prometheus.Registry
}

// New creates a Registry with Go runtime and process collectors registered.
func New(namespace string) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{namespace: namespace, reg: reg}
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// RegisterDB exports connection pool statistics for db.
func (r *Registry) RegisterDB(db *sql.DB, name string) error {
	return r.reg.Register(collectors.NewDBStatsCollector(db, name))
}

// HTTP holds request counters and latency histograms.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTP registers the HTTP collectors on r.
func (r *Registry) NewHTTP() *HTTP {
	factory := promauto.With(r.reg)
	return &HTTP{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: r.namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: r.namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (h *HTTP) Observe(method, route, status string, d time.Duration) {
	h.requests.WithLabelValues(method, route, status).Inc()
	h.duration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
