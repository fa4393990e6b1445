package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring pipeline health
var (
	TransfersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfers_processed_total",
			Help: "Total number of transfer submissions processed",
		},
	)

	TransfersDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transfers_degraded_total",
			Help: "Total number of submissions where extraction yielded no text",
		},
	)

	ArtifactFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "artifact_build_failures_total",
			Help: "Total number of artifact build failures",
		},
	)

	DispatchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_dispatch_failures_total",
			Help: "Total number of failed notification send attempts",
		},
	)

	ProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transfer_processing_duration_seconds",
			Help:    "Duration of end-to-end transfer processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all pipeline metrics with the given registerer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		TransfersTotal,
		TransfersDegradedTotal,
		ArtifactFailuresTotal,
		DispatchFailuresTotal,
		ProcessingDuration,
	)
}
