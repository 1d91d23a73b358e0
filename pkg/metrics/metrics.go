package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulesTotal counts calendar generations.
	// Labels: outcome (ok/invalid/not_found/error)
	SchedulesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growsphere_schedules_generated_total",
			Help: "Total number of farming calendars generated by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growsphere_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growsphere_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SimulatedTaskDuration observes the simulated providers.
	// Labels: provider (research/image_search/assistant/market/sensor)
	SimulatedTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growsphere_simulated_task_duration_seconds",
			Help:    "Duration of simulated provider calls in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 3, 5, 10},
		},
		[]string{"provider"},
	)

	HistoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "growsphere_history_entries",
			Help: "Number of calendar history entries currently stored",
		},
	)
)

func RecordSchedule(outcome string) {
	SchedulesTotal.WithLabelValues(outcome).Inc()
}

func RecordRequest(method, route, status string, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveSince records the time elapsed since start for provider.
func ObserveSince(provider string, start time.Time) {
	SimulatedTaskDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

func SetHistorySize(n int) {
	HistoryEntries.Set(float64(n))
}
