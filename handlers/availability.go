package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles GET /api/salons/:id/availability. The duration
// comes either from ?duration or from ?serviceId (and optionally ?guestId).
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	var q models.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	q.SalonID = c.Param("id")

	var (
		resp *models.AvailabilityResponse
		err  error
	)
	switch {
	case q.ServiceID != "":
		userID, _ := currentUserID(c)
		resp, err = h.Service.GetAvailabilityForService(c.Request.Context(), q.SalonID, q.ServiceID, q.Date, userID, q.GuestID)
	case q.DurationMinutes > 0:
		resp, err = h.Service.GetAvailability(c.Request.Context(), q.SalonID, q.Date, q.DurationMinutes)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "either duration or serviceId is required")
		return
	}
	if err != nil {
		respondError(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalendarHandler handles GET /api/salons/:id/calendar.
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	resp, err := h.Service.GetCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, resp)
}
