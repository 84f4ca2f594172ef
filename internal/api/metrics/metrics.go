// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsCreatedTotal counts successfully created accounts.
// Labels:
//   - role: the role of the created record
//   - path: "admin" or "signup"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role and creation path.",
	},
	[]string{"role", "path"},
)

// ── Password reset metrics ────────────────────────────────────────────────────

// PasswordResetRequestsTotal counts forgot-password requests. The label never
// distinguishes known from unknown emails — that split must not exist even in
// metrics an operator could read back to a caller.
var PasswordResetRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests received.",
	},
)

// PasswordResetsCompletedTotal counts redeemed reset tokens.
// Label:
//   - result: "success" or "invalid_token"
var PasswordResetsCompletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_completed_total",
		Help:      "Total number of password reset redemptions, by result.",
	},
	[]string{"result"},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsInFlight tracks the number of HTTP requests currently being served.
var RequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "requests_in_flight",
		Help:      "Current number of HTTP requests being served.",
	},
)
