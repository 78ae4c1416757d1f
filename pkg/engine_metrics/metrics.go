// Package engine_metrics exposes cascade performance counters.
//
// The scheduler itself stays silent; hosts record one observation per
// completed cascade. Updates are cheap enough for the physics path.
package engine_metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's prometheus collectors. Register them by
// passing a Registerer to New.
type Metrics struct {
	EventsExecuted    prometheus.Counter
	CascadesCompleted prometheus.Counter
	CascadeDuration   prometheus.Histogram
	CascadeSize       prometheus.Histogram
	ChunksLoaded      prometheus.Gauge
	DirtyChunks       prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "causalvoxel",
			Name:      "events_executed_total",
			Help:      "Causal events applied to the world.",
		}),
		CascadesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "causalvoxel",
			Name:      "cascades_completed_total",
			Help:      "Cascades run to quiescence (or their step bound).",
		}),
		CascadeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "causalvoxel",
			Name:      "cascade_duration_seconds",
			Help:      "Wall-clock time per cascade.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
		CascadeSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "causalvoxel",
			Name:      "cascade_events",
			Help:      "Events executed per cascade.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		ChunksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "causalvoxel",
			Name:      "chunks_loaded",
			Help:      "Chunks currently resident in the world.",
		}),
		DirtyChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "causalvoxel",
			Name:      "dirty_chunks",
			Help:      "Chunks modified since the last persistence drain.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.EventsExecuted,
			m.CascadesCompleted,
			m.CascadeDuration,
			m.CascadeSize,
			m.ChunksLoaded,
			m.DirtyChunks,
		)
	}
	return m
}

// RecordCascade is called after each run to quiescence.
func (m *Metrics) RecordCascade(events int, duration time.Duration) {
	m.EventsExecuted.Add(float64(events))
	m.CascadesCompleted.Inc()
	m.CascadeDuration.Observe(duration.Seconds())
	m.CascadeSize.Observe(float64(events))
}
