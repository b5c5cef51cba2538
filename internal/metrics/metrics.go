package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FXMetrics counts quote/rate cache activity.
type FXMetrics struct {
	CacheHitsTotal        *prometheus.CounterVec
	RegenerationsTotal    *prometheus.CounterVec
	CacheWriteErrorsTotal *prometheus.CounterVec
	ConversionsTotal      *prometheus.CounterVec
}

// NewFXMetrics registers and returns the fx metric set. The "kind" label is
// either "quote" or "rates".
func NewFXMetrics() *FXMetrics {
	return &FXMetrics{
		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_cache_hits_total",
				Help: "Fresh values served straight from the cache",
			},
			[]string{"kind"},
		),
		RegenerationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_regenerations_total",
				Help: "Values regenerated because the cache was empty, stale or unreadable",
			},
			[]string{"kind", "reason"},
		),
		CacheWriteErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_cache_write_errors_total",
				Help: "Fire-and-forget cache write-backs that failed",
			},
			[]string{"kind"},
		),
		ConversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_conversions_total",
				Help: "Currency conversions served",
			},
			[]string{"from", "to"},
		),
	}
}

// RecordCacheHit notes a fresh cached value being served.
func (m *FXMetrics) RecordCacheHit(kind string) {
	m.CacheHitsTotal.WithLabelValues(kind).Inc()
}

// RecordRegeneration notes a value being regenerated. Reason is one of
// "missing", "stale" or "decode_error".
func (m *FXMetrics) RecordRegeneration(kind, reason string) {
	m.RegenerationsTotal.WithLabelValues(kind, reason).Inc()
}

// RecordCacheWriteError notes a failed write-back.
func (m *FXMetrics) RecordCacheWriteError(kind string) {
	m.CacheWriteErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordConversion notes a conversion between two currencies.
func (m *FXMetrics) RecordConversion(from, to string) {
	m.ConversionsTotal.WithLabelValues(from, to).Inc()
}
