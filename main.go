package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	"salonbook/database/repository"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/availability"
	"salonbook/services/booking"
	"salonbook/services/salon"
	"salonbook/services/user"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	loc := config.SalonLocation()

	// repositories (each ensures its indexes on construction).
	userRepo := repository.NewMongoUserRepository()
	guestRepo := repository.NewMongoGuestRepo()
	salonRepo := repository.NewMongoSalonRepo()
	appointmentRepo := repository.NewMongoAppointmentRepo()

	// services.
	cache := booking.NewRedisAvailabilityCache(utils.GetCacheClient(), config.AppConfig.AvailabilityCacheTTL)
	userService := &user.DefaultUserService{
		Repo:         userRepo,
		Guests:       guestRepo,
		Appointments: appointmentRepo,
		Availability: cache,
		Sessions:     utils.GetAuthCacheClient(),
		TokenTTL:     config.TokenTTL(),
		Location:     loc,
	}

	salonService, err := salon.NewDefaultSalonService(salonRepo, userRepo, config.AppConfig.SearchRadiusKm)
	if err != nil {
		logger.Fatal("main: failed to build salon service", zap.Error(err))
	}
	salonService.Roles = userService
	salonService.Availability = cache

	bookingService, err := booking.NewDefaultBookingService(salonRepo, appointmentRepo, userRepo, guestRepo, cache)
	if err != nil {
		logger.Fatal("main: failed to build booking service", zap.Error(err))
	}
	bookingService.Location = loc
	bookingService.Strategy = availability.ParseStrategy(config.AppConfig.AvailabilityStrategy)
	bookingService.Granularity = config.AppConfig.SlotGranularityMinutes
	bookingService.HorizonDays = config.AppConfig.BookingHorizonDays

	// handlers.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		handlers.NewUserHandler(userService),
		handlers.NewSalonHandler(salonService),
		handlers.NewBookingHandler(bookingService),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	// Background work: completion sweep and dependency health.
	worker := cron.NewWorker(cron.RedisOpt(), bookingService, config.AppConfig.CompletionSweepCron, loc)
	if err := worker.Start(); err != nil {
		logger.Error("main: completion worker not started", zap.Error(err))
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx,
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopMonitor()
	worker.Shutdown()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
