// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

var (
	ArticlesSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_submitted_total",
			Help: "Total number of articles stored via /submit",
		},
	)

	// ArticleSubmitFailuresTotal is labelled with "validation" or a
	// models.DBErrorKind.
	ArticleSubmitFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_submit_failures_total",
			Help: "Total number of rejected or failed article submissions",
		},
		[]string{"reason"},
	)
)

func RecordSubmitSuccess() {
	ArticlesSubmittedTotal.Inc()
}

func RecordSubmitFailure(reason string) {
	ArticleSubmitFailuresTotal.WithLabelValues(reason).Inc()
}
