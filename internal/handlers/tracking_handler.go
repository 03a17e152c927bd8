package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
)

type TrackingHandler struct {
	logger *tracking.Logger
}

func NewTrackingHandler(logger *tracking.Logger) *TrackingHandler {
	return &TrackingHandler{logger: logger}
}

// Logs returns the full ledger for a tracking id, oldest first. An
// unknown id yields an empty list, not a 404.
func (h *TrackingHandler) Logs(c *gin.Context) {
	entries, err := h.logger.ListByTrackingID(c.Param("trackingId"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_logs", "Failed to list tracking logs.")
		return
	}

	c.JSON(http.StatusOK, entries)
}
