package handlers

import (
	"errors"
	"net/http"

	bookingSvc "salonbook/services/booking"
	salonSvc "salonbook/services/salon"
	userSvc "salonbook/services/user"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	var userInvalid userSvc.ValidationError
	var salonInvalid salonSvc.ValidationError

	switch {
	case errors.As(err, &userInvalid), errors.As(err, &salonInvalid),
		errors.Is(err, bookingSvc.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, userSvc.ErrInvalidCredentials), errors.Is(err, userSvc.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, bookingSvc.ErrForbidden), errors.Is(err, salonSvc.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, userSvc.ErrUserNotFound), errors.Is(err, userSvc.ErrGuestNotFound),
		errors.Is(err, salonSvc.ErrSalonNotFound),
		errors.Is(err, bookingSvc.ErrSalonNotFound), errors.Is(err, bookingSvc.ErrServiceNotFound),
		errors.Is(err, bookingSvc.ErrGuestNotFound), errors.Is(err, bookingSvc.ErrAppointmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, userSvc.ErrEmailTaken), errors.Is(err, bookingSvc.ErrSlotUnavailable),
		errors.Is(err, bookingSvc.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are logged
// and their details withheld from the client.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}

func unauthorized(c *gin.Context) {
	utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
}
