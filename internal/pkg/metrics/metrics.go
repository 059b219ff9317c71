// Package metrics defines and registers all custom Prometheus metrics for the
// job-board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto; /metrics exposes them next to the HTTP metrics produced by
// the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the access filter.
// Label:
//   - reason: "missing", "malformed", "bad_signature", "expired"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected as unauthenticated, by reason.",
	},
	[]string{"reason"},
)

// AuthorizationDeniedTotal counts authenticated requests refused by the route policy.
// Label:
//   - role: the caller's role
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests refused with 403, by caller role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Skill registry metrics ────────────────────────────────────────────────────

// SkillResolutionsTotal counts per-name outcomes of the skill registry.
// Label:
//   - outcome: "cache_hit", "found", "created", "conflict" (lost a create race, re-read)
var SkillResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skill_resolutions_total",
		Help:      "Total number of skill name resolutions, by outcome.",
	},
	[]string{"outcome"},
)
