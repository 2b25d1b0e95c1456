// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommatch_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendations
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommatch_recommendation_duration_seconds",
			Help:    "Time spent building a ranked recommendation list",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"kind"},
	)

	RecommendationCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roommatch_recommendation_candidates",
			Help:    "Size of the candidate pool scored per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"kind"},
	)

	// State machines
	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_state_transitions_total",
			Help: "Connection request and application transitions by target status",
		},
		[]string{"entity", "status"},
	)

	// Notifications
	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roommatch_notifications_published_total",
			Help: "Notification publish attempts by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	NotificationBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roommatch_notification_breaker_state",
			Help: "Notification publisher circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roommatch_websocket_clients",
			Help: "Currently connected WebSocket clients",
		},
	)

	WebSocketDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roommatch_websocket_dropped_total",
			Help: "Notifications dropped because a client send buffer was full",
		},
	)
)

// Publish outcomes.
const (
	OutcomeSent        = "sent"
	OutcomeFailed      = "failed"
	OutcomeBreakerOpen = "breaker_open"
	OutcomeEncodeError = "encode_error"
	OutcomeDisabled    = "disabled"
)

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordRecommendation(kind string, candidates int, duration time.Duration) {
	RecommendationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	RecommendationCandidates.WithLabelValues(kind).Observe(float64(candidates))
}

func RecordTransition(entity, status string) {
	StateTransitions.WithLabelValues(entity, status).Inc()
}

func RecordNotification(notificationType, outcome string) {
	NotificationsPublished.WithLabelValues(notificationType, outcome).Inc()
}

// SetBreakerState records a gobreaker state (closed=0, half-open=1, open=2).
func SetBreakerState(state int) {
	NotificationBreakerState.Set(float64(state))
}
