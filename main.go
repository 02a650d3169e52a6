// File: careconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect/config"
	"careconnect/handlers"
	"careconnect/middleware"
	"careconnect/routes"
	"careconnect/services/booking"
	"careconnect/services/calendar"
	"careconnect/services/idempotency"
	"careconnect/services/payment"
	"careconnect/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	rootCtx, stopMonitors := context.WithCancel(context.Background())
	defer stopMonitors()

	// Collaborators are built once and shared by every request.
	calendarSvc, err := calendar.NewGoogleCalendar(rootCtx, calendar.Settings{
		CalendarID: cfg.CalendarID,
		TimeZone:   cfg.CalendarTimeZone,
		Timeout:    cfg.CallTimeout,
	}, logger.Named("calendar"), calendar.CredentialOptions(cfg.GoogleCreds)...)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.CallTimeout, logger.Named("razorpay"))

	var store idempotency.Store = idempotency.Noop{}
	utils.InitIdempotencyCache()
	if client := utils.GetIdempotencyCacheClient(); client != nil {
		store = idempotency.NewRedisStore(client)
		utils.StartHealthMonitor(rootCtx, client, 60*time.Second)
		defer client.Close()
	}

	bookingService := &booking.DefaultBookingService{
		Calendar:    calendarSvc,
		Payments:    gateway,
		Idempotency: store,
		Settings: booking.Settings{
			KeyID:          cfg.RazorpayKeyID,
			KeySecret:      cfg.RazorpayKeySecret,
			DefaultAmount:  cfg.DefaultAmount,
			Currency:       cfg.Currency,
			SlotWindow:     cfg.SlotWindow(),
			IdempotencyTTL: cfg.IdempotencyTTL,
			PendingTTL:     cfg.IdempotencyPendingTTL,
		},
		Logger: logger.Named("booking"),
	}
	bookingHandler := handlers.NewBookingHandler(bookingService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		RootHandler:   handlers.RootHandler,
		HealthHandler: handlers.HealthHandler,
		GetSlots:      bookingHandler.GetSlots,
		Book:          bookingHandler.Book,
		CreateOrder:   bookingHandler.CreateOrder,
		VerifyPayment: bookingHandler.VerifyPayment,
	}
	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server running", zap.String("addr", srv.Addr))
	logger.Sugar().Infof("Health check available at http://localhost:%s/health", port)
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
	stopMonitors()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
