// Package metrics exposes harness outcomes as prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emucheck"

// Metrics holds the harness collectors. A nil *Metrics records nothing.
type Metrics struct {
	CasesTotal      *prometheus.CounterVec
	MismatchesTotal *prometheus.CounterVec
	MaxULP          prometheus.Histogram
	Cycles          prometheus.Histogram
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CasesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_total",
			Help:      "Total number of executed test cases by outcome",
		}, []string{"status", "mode"}),

		MismatchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Total number of output mismatches by kind",
		}, []string{"kind"}),

		MaxULP: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "case_max_ulp",
			Help:      "Largest ULP distance observed per float case",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 64, 256, 8192},
		}),

		Cycles: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "case_cycles",
			Help:      "Emulated cycles consumed per case",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
}

// RecordCase counts one finished case
func (m *Metrics) RecordCase(status, mode string) {
	if m == nil {
		return
	}
	m.CasesTotal.WithLabelValues(status, mode).Inc()
}

// RecordMismatch counts one verification failure
func (m *Metrics) RecordMismatch(kind string) {
	if m == nil {
		return
	}
	m.MismatchesTotal.WithLabelValues(kind).Inc()
}

// RecordULP observes the largest ULP distance of a float case
func (m *Metrics) RecordULP(ulp uint64) {
	if m == nil {
		return
	}
	m.MaxULP.Observe(float64(ulp))
}

// RecordCycles observes the cycles an execution consumed
func (m *Metrics) RecordCycles(cycles uint32) {
	if m == nil {
		return
	}
	m.Cycles.Observe(float64(cycles))
}
