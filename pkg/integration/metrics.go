package integration

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks gateway call outcomes.
//
// Metrics:
//   - crms_gateway_calls_total: Call count by integration and outcome
//   - crms_gateway_call_duration_seconds: Call duration histogram
//   - crms_gateway_up: Last health probe result per integration
type Metrics struct {
	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	up           *prometheus.GaugeVec
}

// NewMetrics creates and registers gateway metrics with the provided
// registry. If registry is nil, a private registry is used.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "crms",
				Subsystem: "gateway",
				Name:      "calls_total",
				Help:      "Total number of outbound integration calls",
			},
			[]string{"integration", "outcome"},
		),

		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "crms",
				Subsystem: "gateway",
				Name:      "call_duration_seconds",
				Help:      "Duration of outbound integration calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"integration"},
		),

		up: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "crms",
				Subsystem: "gateway",
				Name:      "up",
				Help:      "Result of the last health probe per integration (1 up, 0 down)",
			},
			[]string{"integration"},
		),
	}

	registry.MustRegister(m.callsTotal, m.callDuration, m.up)

	return m
}

// RecordCall records a completed call.
func (m *Metrics) RecordCall(slot, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.callsTotal.WithLabelValues(slot, outcome).Inc()
	if outcome != "disabled" {
		m.callDuration.WithLabelValues(slot).Observe(duration.Seconds())
	}
}

// RecordHealth records a health probe result.
func (m *Metrics) RecordHealth(slot string, healthy bool) {
	if m == nil {
		return
	}
	value := 0.0
	if healthy {
		value = 1.0
	}
	m.up.WithLabelValues(slot).Set(value)
}
