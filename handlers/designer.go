package handlers

import (
	"net/http"

	"salonbook/models"
	bookingSvc "salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// SalonAppointmentsHandler handles GET /api/designer/appointments?filter&date.
func (h *BookingHandler) SalonAppointmentsHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	filter := bookingSvc.ParseListFilter(c.Query("filter"))
	apts, err := h.Service.ListSalonAppointments(c.Request.Context(), ownerID, filter, c.Query("date"))
	if err != nil {
		respondError(c, err, "Failed to list salon appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"filter": filter, "appointments": apts})
}

// UpdateStatusHandler handles PATCH /api/designer/appointments/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	apt, err := h.Service.UpdateStatus(c.Request.Context(), ownerID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update appointment status")
		return
	}
	c.JSON(http.StatusOK, apt)
}
