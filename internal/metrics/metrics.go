// ABOUTME: Prometheus metrics for the fitness HTTP API.
// ABOUTME: Uses a private registry; a disabled instance records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fitness"

// Metrics holds the API collectors.
type Metrics struct {
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a metrics collector. When enabled is false the returned
// instance is a no-op and Handler responds 404.
func New(enabled bool) *Metrics {
	if !enabled {
		return &Metrics{}
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of rejected inputs by operation",
			},
			[]string{"operation"},
		),
	}

	registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.validationFailures,
		collectors.NewGoCollector(),
	)

	return m
}

// Enabled reports whether the collector records anything.
func (m *Metrics) Enabled() bool {
	return m != nil && m.registry != nil
}

// RecordRequest records a completed HTTP request.
func (m *Metrics) RecordRequest(method, route, status string, duration time.Duration) {
	if !m.Enabled() {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordValidationFailure counts an input rejected by the named operation.
func (m *Metrics) RecordValidationFailure(operation string) {
	if !m.Enabled() {
		return
	}
	m.validationFailures.WithLabelValues(operation).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if !m.Enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
