// Package tresormetrics instruments a tresor.Store with
// github.com/prometheus/client_golang counters and gauges. A Store with no
// Metrics attached records nothing — wiring this package is always
// optional.
package tresormetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and gauges a Store reports into.
type Metrics struct {
	seals        prometheus.Counter
	opens        prometheus.Counter
	authFailures prometheus.Counter
	entryCount   prometheus.Gauge
}

// New creates Metrics and registers them against reg. Pass
// prometheus.NewRegistry() (or prometheus.DefaultRegisterer) for reg; pass
// nil to get a Metrics that records into unregistered, in-process
// collectors only (useful in tests that don't want a shared registry).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		seals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tresor",
			Name:      "seals_total",
			Help:      "Number of times a Store has been sealed to a writer.",
		}),
		opens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tresor",
			Name:      "opens_total",
			Help:      "Number of blobs successfully opened.",
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tresor",
			Name:      "auth_failures_total",
			Help:      "Number of AEAD authentication failures on open (wrong password or tampering).",
		}),
		entryCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tresor",
			Name:      "entries",
			Help:      "Number of Entries in the most recently sealed or opened Store.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.seals, m.opens, m.authFailures, m.entryCount)
	}
	return m
}

// ObserveSeal records a successful Seal of a Store holding entryCount
// Entries.
func (m *Metrics) ObserveSeal(entryCount int) {
	m.seals.Inc()
	m.entryCount.Set(float64(entryCount))
}

// ObserveOpen records a successful Open yielding a Store holding
// entryCount Entries.
func (m *Metrics) ObserveOpen(entryCount int) {
	m.opens.Inc()
	m.entryCount.Set(float64(entryCount))
}

// ObserveAuthFail records an AEAD authentication failure on Open.
func (m *Metrics) ObserveAuthFail() {
	m.authFailures.Inc()
}
