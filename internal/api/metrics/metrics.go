// Package metrics defines and registers all custom Prometheus metrics for
// the quickpost API. It is the single source of truth for metric names,
// labels, and help strings. Collectors are registered with the default
// registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickpost"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRefreshTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "rejected"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh token exchanges, labelled by result.",
	},
	[]string{"result"},
)

// TokenReplayInvalidationsTotal counts fail-closed invalidations: a signed
// refresh token was presented after it had been rotated or logged out, and
// the whole token set for that user was cleared.
var TokenReplayInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_replay_invalidations_total",
		Help:      "Total number of replay-triggered full session invalidations.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
