package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error kinds reported on mealplan_generation_errors_total
const (
	KindUpstreamStatus = "upstream_status"
	KindTransport      = "transport"
)

// Metrics owns the service collectors and the registry they live on.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	GenerationRequests *prometheus.CounterVec
	GenerationErrors   *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealplan_http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mealplan_http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		GenerationRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealplan_generation_requests_total",
				Help: "Number of calls made to the generation service by model.",
			},
			[]string{"model"},
		),
		GenerationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealplan_generation_errors_total",
				Help: "Failed generation calls by kind.",
			},
			[]string{"kind"}, // kind: upstream_status|transport
		),
		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mealplan_generation_duration_seconds",
				Help:    "Latency of calls to the generation service.",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s..64s
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.GenerationRequests,
		m.GenerationErrors,
		m.GenerationDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request and its latency
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// IncGenerationRequest counts an outbound generation call for model
func (m *Metrics) IncGenerationRequest(model string) {
	if m == nil {
		return
	}
	m.GenerationRequests.WithLabelValues(model).Inc()
}

// IncGenerationError counts a failed generation call by kind
func (m *Metrics) IncGenerationError(kind string) {
	if m == nil {
		return
	}
	m.GenerationErrors.WithLabelValues(kind).Inc()
}

// ObserveGenerationDuration records how long a generation call took
func (m *Metrics) ObserveGenerationDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.GenerationDuration.Observe(d.Seconds())
}
