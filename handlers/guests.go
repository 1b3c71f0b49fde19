package handlers

import (
	"net/http"

	"salonbook/models"

	"github.com/gin-gonic/gin"
)

func (h *UserHandler) ListGuestsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	guests, err := h.UserService.ListGuests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list guests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

func (h *UserHandler) AddGuestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req models.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	guest, err := h.UserService.AddGuest(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to add guest")
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// DeleteGuestHandler removes a guest and cancels the guest's future appointments.
func (h *UserHandler) DeleteGuestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	if err := h.UserService.DeleteGuest(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete guest")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted"})
}
