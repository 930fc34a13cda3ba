// Package telemetry exposes Prometheus metrics for SignalK requests and
// widget poll cycles.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements signalk.Observer and dashboard.CycleObserver
type Metrics struct {
	FetchSeconds     *prometheus.HistogramVec
	FetchErrorsTotal *prometheus.CounterVec
	CyclesTotal      *prometheus.CounterVec
	LastSuccess      *prometheus.GaugeVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		FetchSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signalk_fetch_seconds",
				Help:    "Duration of SignalK API GET requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		FetchErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalk_fetch_errors_total",
				Help: "Failed SignalK API GET requests",
			},
			[]string{"path"},
		),
		CyclesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signalk_widget_cycles_total",
				Help: "Completed widget poll cycles by outcome",
			},
			[]string{"widget", "outcome"},
		),
		LastSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signalk_widget_last_success_timestamp_seconds",
				Help: "Unix time of the last successful poll cycle",
			},
			[]string{"widget"},
		),
	}

	registry.MustRegister(
		metrics.FetchSeconds,
		metrics.FetchErrorsTotal,
		metrics.CyclesTotal,
		metrics.LastSuccess,
	)

	return metrics
}

func (m *Metrics) ObserveFetch(path string, elapsed time.Duration, err error) {
	m.FetchSeconds.WithLabelValues(path).Observe(elapsed.Seconds())
	if err != nil {
		m.FetchErrorsTotal.WithLabelValues(path).Inc()
	}
}

func (m *Metrics) ObserveCycle(widgetID string, err error) {
	if err != nil {
		m.CyclesTotal.WithLabelValues(widgetID, "failed").Inc()
		return
	}
	m.CyclesTotal.WithLabelValues(widgetID, "updated").Inc()
	m.LastSuccess.WithLabelValues(widgetID).SetToCurrentTime()
}
