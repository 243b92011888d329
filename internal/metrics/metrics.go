// Package metrics provides Prometheus metrics for the tag endpoint
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// Build outcomes
const (
	OutcomeOK            = "ok"
	OutcomeBadDocument   = "bad_document"
	OutcomeUnprocessable = "unprocessable"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)

// Metrics holds the Prometheus collectors. Each instance owns its registry so
// several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	BuildsTotal      *prometheus.CounterVec
	BuildDuration    prometheus.Histogram
	TagsTotal        *prometheus.CounterVec
	ResourcesIndexed prometheus.Histogram
	RequestsInFlight prometheus.Gauge
}

// New creates and registers all metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.BuildsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seotags_builds_total",
			Help: "Total number of tag builds by outcome",
		},
		[]string{"outcome"},
	)

	m.BuildDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seotags_build_duration_seconds",
			Help:    "Duration of tag builds including document decoding",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
	)

	m.TagsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seotags_tags_total",
			Help: "Total number of tags emitted by rule",
		},
		[]string{"rule"},
	)

	m.ResourcesIndexed = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seotags_document_resources",
			Help:    "Number of resources per decoded document",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	m.RequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "seotags_requests_in_flight",
			Help: "Number of tag requests currently being processed",
		},
	)

	return m
}

// RecordBuild records the outcome and duration of a build
func (m *Metrics) RecordBuild(outcome string, duration time.Duration) {
	m.BuildsTotal.WithLabelValues(outcome).Inc()
	m.BuildDuration.Observe(duration.Seconds())
}

// RecordRules counts the tags contributed by each rule
func (m *Metrics) RecordRules(results []seo.RuleResult) {
	for _, r := range results {
		if n := len(r.Result.Tags()); n > 0 {
			m.TagsTotal.WithLabelValues(r.Rule).Add(float64(n))
		}
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
