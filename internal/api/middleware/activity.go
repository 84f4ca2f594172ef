package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/metrics"
	"github.com/winjhenshop/storefront-api/pkg/activity"
)

// TrackActivity marks the shared tracker busy while a request is in flight
// and mirrors the count into the in-flight gauge. The tracker's single-flag
// semantics apply: one request finishing clears the busy state even when
// others are still running.
//
// Operational endpoints are excluded: they observe the tracker (or the
// process) and must not feed back into it, otherwise /status would mark
// itself busy and could never report idle.
func TrackActivity(tracker *activity.Tracker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if operationalPath(c.Request().URL.Path) {
				return next(c)
			}

			tracker.Begin()
			metrics.RequestsInFlight.Inc()
			defer func() {
				metrics.RequestsInFlight.Dec()
				tracker.End()
			}()
			return next(c)
		}
	}
}

func operationalPath(path string) bool {
	switch path {
	case "/status", "/health", "/health/ready", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/swagger")
}
