package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winjhenshop/storefront-api/pkg/activity"
)

// StatusHandler reports the shared activity tracker state, the server-side
// counterpart of the client's loading indicator.
type StatusHandler struct {
	tracker *activity.Tracker
}

func NewStatusHandler(tracker *activity.Tracker) *StatusHandler {
	return &StatusHandler{tracker: tracker}
}

type statusResponse struct {
	State activity.State `json:"state"`
	Busy  bool           `json:"busy"`
}

// Get handles GET /status.
//
// @Summary      Activity state
// @Tags         status
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /status [get]
func (h *StatusHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		State: h.tracker.State(),
		Busy:  h.tracker.IsBusy(),
	})
}
