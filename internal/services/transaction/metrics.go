package transaction

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordOperationResult(string, string)          {}
func (n *NoopMetricsCollector) RecordTransactionVolume(string, float64)       {}

// PrometheusMetrics exports ledger operation metrics.
type PrometheusMetrics struct {
	duration *prometheus.HistogramVec
	results  *prometheus.CounterVec
	volume   *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "chargeflow",
				Subsystem: "ledger",
				Name:      "operation_duration_seconds",
				Help:      "Duration of ledger operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		results: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chargeflow",
				Subsystem: "ledger",
				Name:      "operations_total",
				Help:      "Ledger operations partitioned by result (success, error or domain error code).",
			},
			[]string{"operation", "result"},
		),
		volume: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chargeflow",
				Subsystem: "ledger",
				Name:      "volume_total",
				Help:      "Total amount moved by successful ledger operations.",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordOperationDuration(operation string, d time.Duration) {
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordOperationResult(operation, result string) {
	m.results.WithLabelValues(operation, result).Inc()
}

func (m *PrometheusMetrics) RecordTransactionVolume(operation string, amount float64) {
	if amount > 0 {
		m.volume.WithLabelValues(operation).Add(amount)
	}
}
