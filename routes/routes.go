package routes

import (
	"net/http"
	"time"

	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account, profile and guest endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.POST("/logout", hb.LogoutUserHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.GET("/guests", hb.ListGuestsHandler)
		api.POST("/guests", hb.AddGuestHandler)
		api.DELETE("/guests/:id", hb.DeleteGuestHandler)
	}
}

// RegisterSalonRoutes registers salon discovery, availability and management endpoints.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		// Public endpoints; a valid token lets availability use the caller's gender.
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(hb.Auth))
		public.GET("/nearby", hb.NearbySalonsHandler)
		public.GET("/:id", hb.GetSalonHandler)
		public.GET("/:id/calendar", hb.CalendarHandler)
		public.GET("/:id/availability", hb.AvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Auth))
		protected.GET("/mine", hb.MySalonsHandler)
		protected.POST("", hb.SetupSalonHandler)
		protected.PUT("/:id", hb.UpdateSalonHandler)
	}
}

// RegisterAppointmentRoutes registers the customer booking lifecycle.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.POST("", hb.BookHandler)
		api.GET("/upcoming", hb.UpcomingHandler)
		api.GET("/past", hb.PastHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterDesignerRoutes registers salon-owner endpoints.
func RegisterDesignerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/designer")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth), middleware.RequireRole(string(models.RoleDesigner)))
		api.GET("/appointments", hb.SalonAppointmentsHandler)
		api.PATCH("/appointments/:id/status", hb.UpdateStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "message": "Hi, I'm SalonBook", "dependencies": status})
	})
}

// RegisterRoutes installs CORS and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDesignerRoutes(r, hb)
	RegisterHealthRoute(r)
}
