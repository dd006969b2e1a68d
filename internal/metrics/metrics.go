// Package metrics contains prometheus collectors of the agent.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tippni"

var (
	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of requests to Tippni API in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of requests served by agent API.",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of requests served by agent API in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	optimisticTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimistic_actions_total",
			Help:      "Optimistic actions by kind and result (committed, rolled_back, rejected).",
		},
		[]string{"kind", "result"},
	)

	deletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_deletions_total",
			Help:      "Finished delete flows by result.",
		},
		[]string{"result"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications emitted by level.",
		},
		[]string{"level"},
	)
)

// Optimistic action results.
const (
	Committed  = "committed"
	RolledBack = "rolled_back"
	Rejected   = "rejected"
)

// ObserveUpstream records duration of a request to Tippni API. Status 0 means transport failure.
func ObserveUpstream(method, endpoint string, status int, d time.Duration) {
	upstreamRequestDuration.WithLabelValues(method, endpoint, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveHTTP records a request served by agent API.
func ObserveHTTP(method, endpoint string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// IncOptimistic ...
func IncOptimistic(kind, result string) {
	optimisticTotal.WithLabelValues(kind, result).Inc()
}

// IncDeletion ...
func IncDeletion(result string) {
	deletionsTotal.WithLabelValues(result).Inc()
}

// IncNotification ...
func IncNotification(level string) {
	notificationsTotal.WithLabelValues(level).Inc()
}
