// Package metrics exposes Prometheus collectors for the krishi host. The
// Metrics type doubles as the resolver's Observer.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"krishimitra/internal/perception"
	"krishimitra/internal/types"
)

const namespace = "krishi"

// Metrics holds every collector the host reports.
type Metrics struct {
	decisions      *prometheus.CounterVec
	modelFailures  *prometheus.CounterVec
	turnDuration   prometheus.Histogram
	turnFailures   prometheus.Counter
	catalogSchemes prometheus.Gauge
	catalogReloads *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

var _ perception.Observer = (*Metrics)(nil)

// MustNewMetrics constructs the collectors and registers them with reg.
// Registration errors panic, mirroring promauto. A nil reg uses the
// default registerer.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "decisions_total",
				Help:      "Decisions produced by the resolver.",
			},
			[]string{"language", "kind", "source"},
		),
		modelFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "model_failures_total",
				Help:      "Model extraction attempts that failed and degraded to no intent.",
			},
			[]string{"reason"},
		),
		turnDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "turn_duration_seconds",
				Help:      "Time to handle one chat turn end to end.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		turnFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "decision_apply_failures_total",
				Help:      "Decisions that could not be written to the store.",
			},
		),
		catalogSchemes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "schemes",
				Help:      "Schemes currently loaded in the catalog.",
			},
		),
		catalogReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "reloads_total",
				Help:      "Catalog reload attempts by outcome.",
			},
			[]string{"status"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		m.decisions,
		m.modelFailures,
		m.turnDuration,
		m.turnFailures,
		m.catalogSchemes,
		m.catalogReloads,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveDecision implements perception.Observer.
func (m *Metrics) ObserveDecision(lang types.Language, d types.Decision) {
	source := string(d.Source)
	if source == "" {
		source = "none"
	}
	m.decisions.WithLabelValues(string(lang), string(d.Kind), source).Inc()
}

// ObserveModelFailure implements perception.Observer.
func (m *Metrics) ObserveModelFailure(err error) {
	m.modelFailures.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, perception.ErrParseFailure):
		return "parse"
	case errors.Is(err, perception.ErrGatewayUnavailable):
		return "unavailable"
	}
	return "other"
}

// ObserveTurn records one handled chat turn.
func (m *Metrics) ObserveTurn(elapsed time.Duration, failures int) {
	m.turnDuration.Observe(elapsed.Seconds())
	if failures > 0 {
		m.turnFailures.Add(float64(failures))
	}
}

// ObserveCatalogReload records a catalog reload attempt. The scheme gauge
// always reflects what is loaded, which is the old dataset after a failure.
func (m *Metrics) ObserveCatalogReload(schemes int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.catalogReloads.WithLabelValues(status).Inc()
	m.catalogSchemes.Set(float64(schemes))
}

// SetCatalogSize sets the scheme gauge without counting a reload.
func (m *Metrics) SetCatalogSize(schemes int) {
	m.catalogSchemes.Set(float64(schemes))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
