// Package metrics defines and registers all custom Prometheus metrics for
// the records service. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization refusals.
// Label:
//   - gate: which check rejected the request ("role", "ownership", "field")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of forbidden outcomes, by rejecting gate.",
	},
	[]string{"gate"},
)

// MutationsTotal counts successful entity mutations.
// Labels:
//   - entity: "client", "contract", "event", "staff_user"
//   - action: "create", "update", "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "action"},
)

// ContractsSignedTotal counts contracts marked signed, a key business signal.
var ContractsSignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_signed_total",
		Help:      "Total number of contracts marked as signed.",
	},
)
