// Package metrics exposes Prometheus instruments for the analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AnalysisMetrics tracks analysis throughput, latency and AI degradation.
type AnalysisMetrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	AIFallbacksTotal *prometheus.CounterVec
}

// NewAnalysisMetrics registers the instruments on the default registerer
// under the given service namespace.
func NewAnalysisMetrics(service string) *AnalysisMetrics {
	factory := promauto.With(prometheus.DefaultRegisterer)

	return &AnalysisMetrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "analyses_total",
			Help:      "Total content analyses by outcome.",
		}, []string{"status"}),

		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: service,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end duration of a content analysis.",
			Buckets:   prometheus.DefBuckets,
		}),

		AIFallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "ai_fallbacks_total",
			Help:      "AI-backed analyzers that degraded to their fallback result.",
		}, []string{"analyzer"}),
	}
}
