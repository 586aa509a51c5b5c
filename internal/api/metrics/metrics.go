// Package metrics defines and registers all custom Prometheus metrics for
// the movieflix API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movieflix"

// CatalogRequestsTotal counts upstream catalog requests.
// Labels:
//   - endpoint: "search" or "discover"
//   - result: "success" or "error"
var CatalogRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_requests_total",
		Help:      "Total number of upstream catalog requests, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// CatalogRequestDuration measures upstream catalog request latency.
// Label:
//   - endpoint: "search" or "discover"
var CatalogRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_request_duration_seconds",
		Help:      "Duration of upstream catalog requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// AuthAttemptsTotal counts auth operations.
// Labels:
//   - operation: "signup", "login", or "logout"
//   - result: "success" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of auth operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// SearchHitsQueueDepth tracks hits waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var SearchHitsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "search_hits_queue_depth",
		Help:      "Current number of search hits pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// SearchHitsRecordedTotal counts search hits successfully recorded.
var SearchHitsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_hits_recorded_total",
		Help:      "Total number of search hits recorded by the search counter.",
	},
)
