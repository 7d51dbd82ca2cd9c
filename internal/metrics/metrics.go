package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationDuration tracks the latency of provider calls
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "adcraft_generation_duration_seconds",
			Help: "Duration of ad copy generation requests in seconds",
			Buckets: []float64{
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				20.0, // 20s
				40.0, // 40s
				60.0, // 1m
			},
		},
		[]string{"outcome"}, // success or error kind
	)

	// GeneratedVariations counts ad copies returned to users
	GeneratedVariations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_generated_variations_total",
			Help: "Number of ad copy variations returned by the provider",
		},
		[]string{"platform"},
	)

	// ActiveSessions is the number of live form sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adcraft_active_sessions",
			Help: "Number of form sessions held in memory",
		},
	)

	// AuditRowsPurged counts generation audit rows removed by retention
	AuditRowsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adcraft_audit_rows_purged_total",
			Help: "Number of generation audit rows deleted by the retention job",
		},
	)
)

// RecordGeneration records one provider exchange
func RecordGeneration(outcome, platform string, variations int, duration float64) {
	GenerationDuration.WithLabelValues(outcome).Observe(duration)
	if variations > 0 {
		GeneratedVariations.WithLabelValues(platform).Add(float64(variations))
	}
}
