// Package metrics exposes Prometheus collectors for menu rendering.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeNoTarget   = "no_target"
	OutcomeFetchError = "fetch_error"
	OutcomeError      = "error"
)

// Metrics holds the board collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Renders       *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	ItemsParsed   prometheus.Gauge
}

// New creates and registers the collectors, plus Go runtime metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "menuboard",
				Name:      "renders_total",
				Help:      "Screen renders by outcome",
			},
			[]string{"outcome"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "menuboard",
				Name:      "fetch_duration_seconds",
				Help:      "Time spent fetching the source sheet",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ItemsParsed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "menuboard",
				Name:      "items_parsed",
				Help:      "Items parsed from the most recent fetch",
			},
		),
	}

	m.registry.MustRegister(
		m.Renders,
		m.FetchDuration,
		m.ItemsParsed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveRender counts one render with the given outcome.
func (m *Metrics) ObserveRender(outcome string) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(outcome).Inc()
}

// ObserveFetch records a fetch that started at start.
func (m *Metrics) ObserveFetch(start time.Time) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(time.Since(start).Seconds())
}

// SetItems records how many items the last fetch produced.
func (m *Metrics) SetItems(n int) {
	if m == nil {
		return
	}
	m.ItemsParsed.Set(float64(n))
}
