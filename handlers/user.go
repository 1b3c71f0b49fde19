package handlers

import (
	"net/http"

	"salonbook/models"
	userSvc "salonbook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService userSvc.UserService
}

func NewUserHandler(us userSvc.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid registration request", zap.Error(err))
		badRequest(c, err)
		return
	}

	resp, err := h.UserService.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.UserService.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the token the request was made with.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	if err := h.UserService.SignOut(c.Request.Context(), userID, c.GetString("tokenHash")); err != nil {
		respondError(c, err, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.UserService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}
