// Package metrics defines and registers all custom Prometheus metrics for the
// item reviews API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is imported; the echoprometheus handler on /metrics serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reviews"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", "invalid" or "error"
var AuthRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ItemCacheTotal counts item cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var ItemCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_cache_total",
		Help:      "Total number of item cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)

// ReviewMutationsTotal counts successful review writes.
// Label:
//   - op: "create", "update" or "delete"
var ReviewMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_mutations_total",
		Help:      "Total number of successful review writes, by operation.",
	},
	[]string{"op"},
)

// CommentMutationsTotal counts successful comment writes.
// Label:
//   - op: "create", "update" or "delete"
var CommentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comment_mutations_total",
		Help:      "Total number of successful comment writes, by operation.",
	},
	[]string{"op"},
)

// OwnershipDeniedTotal counts writes rejected because the caller does not own
// the resource.
// Label:
//   - resource: "review" or "comment"
var OwnershipDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_denied_total",
		Help:      "Total number of writes rejected by the ownership check.",
	},
	[]string{"resource"},
)
