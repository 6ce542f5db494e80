// Package metrics provides Prometheus metrics for ResearchFlow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"researchflow/models"
)

type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ArticlesByStatus    *prometheus.GaugeVec
	ArticlesCreated     prometheus.Counter
}

// New registers every metric on a fresh registry so tests can build routers side by side.
func New() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "researchflow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "researchflow_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.ArticlesByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "researchflow_articles",
			Help: "Articles held in memory by current status",
		},
		[]string{"status"},
	)
	m.ArticlesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "researchflow_articles_created_total",
			Help: "Articles created from the new-article form",
		},
	)

	m.Registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ArticlesByStatus,
		m.ArticlesCreated,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) RecordRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetArticleCounts overwrites the per-status gauge.
func (m *Metrics) SetArticleCounts(counts map[models.ArticleStatus]int) {
	for _, s := range models.AllStatuses() {
		m.ArticlesByStatus.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}
