package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SyncOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plansync",
			Subsystem: "sync",
			Name:      "outcomes_total",
			Help:      "Product notifications by outcome (skipped, created, failed, malformed)",
		},
		[]string{"outcome"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "plansync",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Payment processor call latency in seconds",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"operation", "status"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plansync",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Plan events handed to the message broker",
		},
		[]string{"type", "status"},
	)
)

func init() {
	Registry.MustRegister(SyncOutcomes, GatewayRequestDuration, EventsPublished)
}
