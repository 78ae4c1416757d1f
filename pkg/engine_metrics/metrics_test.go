package engine_metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordCascade(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordCascade(42, 3*time.Millisecond)
	m.RecordCascade(8, 100*time.Microsecond)

	require.Equal(t, float64(50), testutil.ToFloat64(m.EventsExecuted))
	require.Equal(t, float64(2), testutil.ToFloat64(m.CascadesCompleted))

	// The duration histogram collects as a single metric.
	count := testutil.CollectAndCount(m.CascadeDuration)
	require.Equal(t, 1, count)
}

func TestMetrics_Gauges(t *testing.T) {
	m := New(nil)
	m.ChunksLoaded.Set(16)
	m.DirtyChunks.Set(3)
	require.Equal(t, float64(16), testutil.ToFloat64(m.ChunksLoaded))
	require.Equal(t, float64(3), testutil.ToFloat64(m.DirtyChunks))
}

func TestMetrics_RegistersCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	families, err := registry.Gather()
	require.NoError(t, err)
	// All six collectors are unlabelled, so their families are gathered
	// before anything is recorded.
	require.NotEmpty(t, families)

	// Double registration of the same names panics; a fresh Metrics on a
	// fresh registry must not.
	require.NotPanics(t, func() {
		New(prometheus.NewRegistry())
	})
}
