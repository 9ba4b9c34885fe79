// Package metrics exposes Prometheus instruments for deck generation and the
// HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// Metrics groups every instrument registered by the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	GenerationAttempts *prometheus.CounterVec
	AttemptFailures    *prometheus.CounterVec
	Generations        *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	GenerationsActive  prometheus.Gauge
	HTTPRequests       *prometheus.CounterVec
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		GenerationAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irtus_generation_attempts_total",
				Help: "Total number of generation requests sent to the provider",
			},
			[]string{"provider"},
		),

		AttemptFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irtus_generation_attempt_failures_total",
				Help: "Total number of failed generation attempts by failure kind",
			},
			[]string{"provider", "kind"},
		),

		Generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irtus_generations_total",
				Help: "Total number of deck generations by final outcome",
			},
			[]string{"provider", "outcome"},
		),

		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "irtus_generation_duration_seconds",
				Help:    "Duration of a full generation sequence including backoff",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
			},
			[]string{"provider"},
		),

		GenerationsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "irtus_generations_active",
				Help: "Number of generation sequences in flight",
			},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irtus_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
	}
}

// Registry returns the registry backing the instruments.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAttempt counts one request sent to the provider.
func (m *Metrics) ObserveAttempt(provider string) {
	if m == nil {
		return
	}
	m.GenerationAttempts.WithLabelValues(provider).Inc()
}

// ObserveAttemptFailure counts one failed attempt of the given kind.
func (m *Metrics) ObserveAttemptFailure(provider, kind string) {
	if m == nil {
		return
	}
	m.AttemptFailures.WithLabelValues(provider, kind).Inc()
}

// StartGeneration marks a sequence in flight and returns the function that
// records its outcome and duration.
func (m *Metrics) StartGeneration(provider string) func(outcome string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.GenerationsActive.Inc()
	return func(outcome string) {
		m.GenerationsActive.Dec()
		m.Generations.WithLabelValues(provider, outcome).Inc()
		m.GenerationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}
}

// ObserveRejected counts a submission refused before any provider call.
func (m *Metrics) ObserveRejected(provider string) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(provider, OutcomeRejected).Inc()
}

// ObserveHTTP counts one served request.
func (m *Metrics) ObserveHTTP(route string, code int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
