// Package metrics defines all custom Prometheus metrics for the job board
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from echoprometheus and live elsewhere.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// JobsPublishedTotal counts successful publish transitions.
var JobsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_published_total",
		Help:      "Total number of jobs published.",
	},
)

// ApplicationsCreatedTotal counts accepted job applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications created.",
	},
)

// SubscriptionsTotal counts subscription mutations.
// Label:
//   - action: "created", "reactivated", or "unsubscribed"
var SubscriptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscriptions_total",
		Help:      "Total number of subscription mutations, by action.",
	},
	[]string{"action"},
)

// SubscribeRateLimitedTotal counts subscribe requests rejected by the
// per-email rate limit.
var SubscribeRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscribe_rate_limited_total",
		Help:      "Total number of subscribe requests rejected by the rate limit.",
	},
)
