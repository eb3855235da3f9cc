package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDirectoryMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDirectoryMetrics(reg)

	m.ObserveUpstream("/api/medicos", "success", 0.2)
	m.ObserveUpstream("/api/medicos", "success", 0.1)
	m.ObserveCache("memory", true)
	m.ObserveProviderMismatch(3)
	m.ObserveProviderMismatch(0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.upstreamTotal.WithLabelValues("/api/medicos", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheTotal.WithLabelValues("memory", "hit")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.droppedEntries))
}

func TestDirectoryMetricsNilSafe(t *testing.T) {
	var m *DirectoryMetrics
	m.ObserveUpstream("/api/medicos", "error", 0.1)
	m.ObserveCache("redis", false)
	m.ObserveProviderMismatch(1)
}
