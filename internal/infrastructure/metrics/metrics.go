package metrics

import "github.com/prometheus/client_golang/prometheus"

// DirectoryMetrics exposes counters/histograms for upstream catalog traffic.
type DirectoryMetrics struct {
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	cacheTotal      *prometheus.CounterVec
	droppedEntries  prometheus.Counter
}

func NewDirectoryMetrics(reg prometheus.Registerer) *DirectoryMetrics {
	m := &DirectoryMetrics{
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "directory",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total upstream catalog requests",
		}, []string{"endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "directory",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream catalog requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "directory",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Response cache lookups by tier and result",
		}, []string{"tier", "result"}),
		droppedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "directory",
			Subsystem: "schedule",
			Name:      "provider_mismatch_total",
			Help:      "Appointments dropped because their provider code did not match the request",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.upstreamTotal, m.upstreamLatency, m.cacheTotal, m.droppedEntries)
	return m
}

func (m *DirectoryMetrics) ObserveUpstream(endpoint, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *DirectoryMetrics) ObserveCache(tier string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheTotal.WithLabelValues(tier, result).Inc()
}

func (m *DirectoryMetrics) ObserveProviderMismatch(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.droppedEntries.Add(float64(n))
}
