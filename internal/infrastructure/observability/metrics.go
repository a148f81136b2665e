package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	statusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Order status transitions persisted",
		},
		[]string{"from", "to"},
	)

	reconcileFieldsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_reconcile_fields_total",
			Help: "Outcome of each field dispatched by the change reconciler",
		},
		[]string{"field", "outcome"},
	)

	bulkResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_bulk_results_total",
			Help: "Per-order outcome of bulk status changes",
		},
		[]string{"outcome"},
	)

	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_notifications_total",
			Help: "Status-change notifications by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(statusTransitionsTotal)
	prometheus.MustRegister(reconcileFieldsTotal)
	prometheus.MustRegister(bulkResultsTotal)
	prometheus.MustRegister(notificationsTotal)
}

func RecordTransition(from, to string) {
	statusTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordReconcileField(field, outcome string) {
	reconcileFieldsTotal.WithLabelValues(field, outcome).Inc()
}

func RecordBulkResult(outcome string) {
	bulkResultsTotal.WithLabelValues(outcome).Inc()
}

func RecordNotification(outcome string) {
	notificationsTotal.WithLabelValues(outcome).Inc()
}
