// Package metrics defines the custom Prometheus metrics for the apartments
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "apartments"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected during validation.
// Label:
//   - reason: "expired" or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// AuthzDenialsTotal counts requests denied by the access policy.
// Labels:
//   - role: the caller's primary role ("agent", "client", "public")
//   - action: the CRUD action that was denied
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests denied by the access policy.",
	},
	[]string{"role", "action"},
)

// ApartmentsCreatedTotal counts newly created listings.
var ApartmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "apartments_created_total",
		Help:      "Total number of apartment listings created.",
	},
)
