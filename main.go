package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homemate/config"
	"homemate/handlers"
	"homemate/middleware"
	"homemate/routes"
	"homemate/services/auth"
	"homemate/services/forms"
	"homemate/services/notify"
	"homemate/services/remote"
	"homemate/services/session"
	"homemate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitFormsCache()
	utils.InitAuthCache()

	ctx := context.Background()
	gateway, err := auth.NewFirebaseGateway(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth gateway: %v", err)
	}

	gate := session.NewGate()
	gate.Bind(gateway)
	gateway.Start(ctx)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	notifier := notify.NewDefaultNotifier()
	invoker := remote.NewDefaultInvoker(config.AppConfig.BackendBaseURL, notifier)

	formService := &forms.DefaultFormService{
		Store:    forms.NewRedisSessionStore(utils.GetFormsCacheClient()),
		Auth:     gateway,
		Invoker:  invoker,
		Notifier: notifier,
	}

	formHandler := handlers.NewFormHandler(formService)
	authHandler := handlers.NewAuthHandler(gateway, notifier)
	serviceHandler := handlers.NewServiceHandler(invoker)
	bookingHandler := handlers.NewBookingHandler(invoker)
	notificationHandler := handlers.NewNotificationHandler(notifier)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Form endpoints.
		StartFormHandler:    formHandler.StartFormHandler,
		SetFormFieldHandler: formHandler.SetFormFieldHandler,
		SubmitFormHandler:   formHandler.SubmitFormHandler,

		// Auth endpoints.
		GoogleSignInHandler:  authHandler.GoogleSignInHandler,
		LogoutHandler:        authHandler.LogoutHandler,
		GetProfileHandler:    authHandler.GetProfileHandler,
		UpdateProfileHandler: authHandler.UpdateProfileHandler,

		// Service catalog endpoints.
		ListServicesHandler:   serviceHandler.ListServicesHandler,
		GetServiceHandler:     serviceHandler.GetServiceHandler,
		SearchServicesHandler: serviceHandler.SearchServicesHandler,
		FilterServicesHandler: serviceHandler.FilterServicesHandler,
		MyServicesHandler:     serviceHandler.MyServicesHandler,
		DeleteServiceHandler:  serviceHandler.DeleteServiceHandler,

		// Booking endpoints.
		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,
		MyBookingsHandler:     bookingHandler.MyBookingsHandler,
		DeleteBookingHandler:  bookingHandler.DeleteBookingHandler,

		// Notification endpoint.
		FlushNotificationsHandler: notificationHandler.FlushNotificationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, gate)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
