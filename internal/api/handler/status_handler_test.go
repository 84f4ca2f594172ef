package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/pkg/activity"
)

// The status route runs behind the activity middleware like every other
// route; reading the flag must not trip it, so an idle server reports idle.
func TestStatusHandler_IdleServerReportsIdle(t *testing.T) {
	e := echo.New()
	tracker := activity.NewTracker()
	e.Use(middleware.TrackActivity(tracker))
	e.GET("/status", NewStatusHandler(tracker).Get)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		State string `json:"state"`
		Busy  bool   `json:"busy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Busy {
		t.Fatalf("idle server must report busy=false")
	}
	if resp.State != string(activity.Idle) {
		t.Fatalf("expected state %q, got %q", activity.Idle, resp.State)
	}
}

func TestStatusHandler_ReflectsTrackedWork(t *testing.T) {
	e := echo.New()
	tracker := activity.NewTracker()
	handler := NewStatusHandler(tracker)

	tracker.Begin()
	defer tracker.End()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		State string `json:"state"`
		Busy  bool   `json:"busy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Busy || resp.State != string(activity.Busy) {
		t.Fatalf("expected busy state, got %+v", resp)
	}
}
