// Package metrics defines and registers all custom Prometheus metrics for the
// PawSitting API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry via promauto at package load;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pawsitting"

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - tier: the requested service tier (e.g. "premium", "farm_ranch")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service tier.",
	},
	[]string{"tier"},
)

// BookingTransitionsTotal counts applied lifecycle transitions.
// Label:
//   - to: status after the transition
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking status transitions applied, by target status.",
	},
	[]string{"to"},
)

// WebhookEventsTotal counts payment webhook deliveries by outcome.
// Labels:
//   - type: provider event type (e.g. "checkout.session.completed")
//   - result: "processed", "test", or "rejected"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of payment webhook deliveries, by type and result.",
	},
	[]string{"type", "result"},
)

// CheckoutSessionsTotal counts hosted checkout sessions created.
// Label:
//   - product: the catalog product key
var CheckoutSessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Total number of checkout sessions created, by product key.",
	},
	[]string{"product"},
)

// ChatRequestsTotal counts assistant conversations.
// Label:
//   - result: "ok" or "invalid"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of assistant chat requests, by result.",
	},
	[]string{"result"},
)

// ReportCardsCreatedTotal counts visit report cards.
// Label:
//   - mood: the recorded pet mood
var ReportCardsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cards_created_total",
		Help:      "Total number of visit report cards created, by mood.",
	},
	[]string{"mood"},
)
