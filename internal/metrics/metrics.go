// Package metrics defines the Prometheus metrics of the booking site.
// Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// GuardDecisionsTotal counts page guard evaluations.
// Labels:
//   - page: page name (e.g. "booking")
//   - outcome: "allow", "redirect_login" or "denied"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of page guard decisions.",
	},
	[]string{"page", "outcome"},
)

// RoleLookupFailuresTotal counts sessions whose role could not be resolved.
var RoleLookupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_lookup_failures_total",
		Help:      "Total number of failed profile role lookups.",
	},
)

// AuthEventsTotal counts published auth-state events by type.
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of auth-state events.",
	},
	[]string{"type"},
)

// FormSubmissionsTotal counts form submissions.
// Labels:
//   - form: "booking", "profile", "service"
//   - result: "ok", "invalid", "duplicate", "error"
var FormSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_submissions_total",
		Help:      "Total number of form submissions by form and result.",
	},
	[]string{"form", "result"},
)

// SessionStreamsActive tracks open auth-state websocket streams.
var SessionStreamsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_streams_active",
		Help:      "Number of open session websocket streams.",
	},
)
