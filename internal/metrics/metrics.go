// Package metrics exposes Prometheus collectors for the dashboard API.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vehicle_dashboard"

type Metrics struct {
	Registry       *prometheus.Registry
	filterRequests *prometheus.CounterVec
	filterDuration prometheus.Histogram
	resultRows     prometheus.Histogram
	chartBuilds    *prometheus.CounterVec
	datasetRows    prometheus.Gauge
}

// New registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		filterRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_requests_total",
			Help:      "Filter evaluations by endpoint.",
		}, []string{"endpoint"}),
		filterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_duration_seconds",
			Help:      "Time spent scanning the dataset.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		resultRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_result_rows",
			Help:      "Rows matched per filter evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 6),
		}),
		chartBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_requests_total",
			Help:      "Chart payloads served, by chart and cache outcome.",
		}, []string{"chart", "cache"}),
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Listings in the loaded dataset.",
		}),
	}
	m.Registry.MustRegister(
		m.filterRequests, m.filterDuration, m.resultRows, m.chartBuilds, m.datasetRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveFilter records one filter evaluation.
func (m *Metrics) ObserveFilter(endpoint string, took time.Duration, rows int) {
	if m == nil {
		return
	}
	m.filterRequests.WithLabelValues(endpoint).Inc()
	m.filterDuration.Observe(took.Seconds())
	m.resultRows.Observe(float64(rows))
}

// ObserveChart records a chart payload; cache is "hit", "miss" or "off".
func (m *Metrics) ObserveChart(chart, cache string) {
	if m == nil {
		return
	}
	m.chartBuilds.WithLabelValues(chart, cache).Inc()
}

// SetDatasetRows publishes the dataset size.
func (m *Metrics) SetDatasetRows(n int) {
	if m == nil {
		return
	}
	m.datasetRows.Set(float64(n))
}
