package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barbercrm_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "barbercrm_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	RecordsSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barbercrm_records_submitted_total",
		Help: "Form records stored, by kind",
	}, []string{"kind"})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barbercrm_validation_failures_total",
		Help: "Rejected form batches, by kind and field error",
	}, []string{"kind", "reason"})

	DashboardDegradedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barbercrm_dashboard_degraded_total",
		Help: "Dashboards served with zero counts because counting failed",
	})

	DashboardCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barbercrm_dashboard_cache_total",
		Help: "Dashboard cache lookups by result",
	}, []string{"result"})

	LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "barbercrm_live_connections",
		Help: "Open dashboard websocket connections",
	})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
