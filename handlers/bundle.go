package handlers

import (
	"salonbook/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth middleware.Authenticator

	// User endpoints
	RegisterUserHandler  gin.HandlerFunc
	LoginUserHandler     gin.HandlerFunc
	LogoutUserHandler    gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	ListGuestsHandler    gin.HandlerFunc
	AddGuestHandler      gin.HandlerFunc
	DeleteGuestHandler   gin.HandlerFunc

	// Salon endpoints
	SetupSalonHandler   gin.HandlerFunc
	UpdateSalonHandler  gin.HandlerFunc
	GetSalonHandler     gin.HandlerFunc
	MySalonsHandler     gin.HandlerFunc
	NearbySalonsHandler gin.HandlerFunc

	// Availability endpoints
	AvailabilityHandler gin.HandlerFunc
	CalendarHandler     gin.HandlerFunc

	// Appointment endpoints
	BookHandler              gin.HandlerFunc
	UpcomingHandler          gin.HandlerFunc
	PastHandler              gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc

	// Designer endpoints
	SalonAppointmentsHandler gin.HandlerFunc
	UpdateStatusHandler      gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(auth middleware.Authenticator, uh *UserHandler, sh *SalonHandler, bh *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		Auth: auth,

		RegisterUserHandler:  uh.RegisterHandler,
		LoginUserHandler:     uh.LoginHandler,
		LogoutUserHandler:    uh.LogoutHandler,
		GetProfileHandler:    uh.GetProfileHandler,
		UpdateProfileHandler: uh.UpdateProfileHandler,
		ListGuestsHandler:    uh.ListGuestsHandler,
		AddGuestHandler:      uh.AddGuestHandler,
		DeleteGuestHandler:   uh.DeleteGuestHandler,

		SetupSalonHandler:   sh.SetupSalonHandler,
		UpdateSalonHandler:  sh.UpdateSalonHandler,
		GetSalonHandler:     sh.GetSalonHandler,
		MySalonsHandler:     sh.MySalonsHandler,
		NearbySalonsHandler: sh.NearbySalonsHandler,

		AvailabilityHandler: bh.AvailabilityHandler,
		CalendarHandler:     bh.CalendarHandler,

		BookHandler:              bh.BookHandler,
		UpcomingHandler:          bh.UpcomingHandler,
		PastHandler:              bh.PastHandler,
		CancelAppointmentHandler: bh.CancelHandler,
		DeleteAppointmentHandler: bh.DeleteHandler,

		SalonAppointmentsHandler: bh.SalonAppointmentsHandler,
		UpdateStatusHandler:      bh.UpdateStatusHandler,
	}
}
