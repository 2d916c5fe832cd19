// File: tallerlink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tallerlink/config"
	"tallerlink/cron"
	"tallerlink/database"
	adminRepoPkg "tallerlink/database/repository/admin"
	clientRepoPkg "tallerlink/database/repository/client"
	partnerRepoPkg "tallerlink/database/repository/partner"
	ticketRepoPkg "tallerlink/database/repository/ticket"
	"tallerlink/handlers"
	"tallerlink/middleware"
	"tallerlink/routes"
	"tallerlink/services/admin"
	"tallerlink/services/booking"
	"tallerlink/services/notification"
	"tallerlink/services/partner"
	"tallerlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	partnerRepo := partnerRepoPkg.NewPostgresPartnerRepo()
	ticketRepo := ticketRepoPkg.NewPostgresTicketRepo()
	clientRepo := clientRepoPkg.NewPostgresClientRepo()
	adminRepo := adminRepoPkg.NewPostgresAdminRepo()

	// services.
	notificationService := &notification.LogNotificationService{}

	availabilityService := &booking.DefaultAvailabilityService{
		TicketRepo: ticketRepo,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingSessionService{
		PartnerRepo:     partnerRepo,
		TicketRepo:      ticketRepo,
		Availability:    availabilityService,
		NotificationSvc: notificationService,
		Sessions:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		ReminderClient:  reminderClient,
	}

	partnerService := &partner.DefaultPartnerService{
		Repo: partnerRepo,
	}

	adminService := &admin.DefaultAdminService{
		Repo:      adminRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Partner:      handlers.NewPartnerHandler(partnerService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Ticket:       handlers.NewTicketHandler(ticketRepo),
		Car:          handlers.NewCarHandler(clientRepo),
		Admin:        handlers.NewAdminHandler(adminService),
		AdminSvc:     adminService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	cron.InitTicketJanitor(ticketRepo)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetSessionCacheClient(),
	}, database.PgPool)

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
