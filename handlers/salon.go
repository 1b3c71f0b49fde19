package handlers

import (
	"net/http"

	"salonbook/models"
	salonSvc "salonbook/services/salon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SalonHandler struct {
	Service salonSvc.SalonService
}

func NewSalonHandler(svc salonSvc.SalonService) *SalonHandler {
	return &SalonHandler{Service: svc}
}

// SetupSalonHandler handles POST /api/salons.
func (h *SalonHandler) SetupSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	ownerID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.SetupSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid salon setup request", zap.Error(err))
		badRequest(c, err)
		return
	}

	salon, err := h.Service.SetupSalon(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to set up salon")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Salon created; account upgraded to designer",
		"salon":   salon,
	})
}

// UpdateSalonHandler handles PUT /api/salons/:id.
func (h *SalonHandler) UpdateSalonHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	salon, err := h.Service.UpdateSalon(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update salon")
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) GetSalonHandler(c *gin.Context) {
	salon, err := h.Service.GetSalon(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load salon")
		return
	}
	c.JSON(http.StatusOK, salon)
}

// MySalonsHandler lists the salons owned by the caller.
func (h *SalonHandler) MySalonsHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	salons, err := h.Service.ListOwnedSalons(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to list salons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// NearbySalonsHandler handles GET /api/salons/nearby?lat&lng&radiusKm&type.
func (h *SalonHandler) NearbySalonsHandler(c *gin.Context) {
	var criteria models.SalonSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		badRequest(c, err)
		return
	}
	salons, err := h.Service.SearchNearby(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to search salons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}
