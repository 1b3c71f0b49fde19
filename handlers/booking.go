package handlers

import (
	"net/http"

	"salonbook/models"
	bookingSvc "salonbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service bookingSvc.BookingService
}

func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookHandler handles POST /api/appointments.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid booking request", zap.Error(err))
		badRequest(c, err)
		return
	}

	apt, err := h.Service.Book(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Booking failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment confirmed",
		"appointment": apt,
	})
}

func (h *BookingHandler) UpcomingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	apts, err := h.Service.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": apts})
}

func (h *BookingHandler) PastHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	apts, err := h.Service.ListPast(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": apts})
}

// CancelHandler handles POST /api/appointments/:id/cancel. The body is optional.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req models.CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	apt, err := h.Service.Cancel(c.Request.Context(), userID, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err, "Failed to cancel appointment")
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *BookingHandler) DeleteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
