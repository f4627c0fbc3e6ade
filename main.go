// File: akshara/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"akshara/config"
	"akshara/cron"
	"akshara/database"
	contentRepoPkg "akshara/database/repository/content"
	staffRepoPkg "akshara/database/repository/staff"
	"akshara/handlers"
	"akshara/middleware"
	"akshara/routes"
	"akshara/services/booking"
	"akshara/services/content"
	"akshara/services/donation"
	"akshara/services/volunteer"
	"akshara/services/webhook"
	"akshara/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()

	// Upsert the built-in site content so a fresh database serves data.
	if err := staffRepo.Seed(database.SeedFounders); err != nil {
		logger.Sugar().Fatalf("main: failed to seed founders: %v", err)
	}
	if err := contentRepo.Seed(database.SeedPrograms, database.SeedEvents, database.SeedBlogPosts); err != nil {
		logger.Sugar().Fatalf("main: failed to seed content: %v", err)
	}

	// services.
	contentService := &content.DefaultContentService{
		StaffRepo:   staffRepo,
		ContentRepo: contentRepo,
	}

	bookingDispatcher := webhook.NewHTTPDispatcher(config.AppConfig.BookingWebhookURL, logger)
	volunteerDispatcher := webhook.NewHTTPDispatcher(config.AppConfig.VolunteerWebhookURL, logger)

	reminderScheduler := cron.NewReminderScheduler()
	cron.InitReminderWorker(bookingDispatcher)

	bookingService := &booking.DefaultBookingSessionService{
		Cache:      utils.GetSessionCacheClient(),
		Dispatcher: bookingDispatcher,
		Reminders:  reminderScheduler,
	}

	volunteerService := &volunteer.DefaultVolunteerService{
		Dispatcher: volunteerDispatcher,
	}

	donationService := &donation.DefaultDonationService{
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, contentService, logger),
		Content:   handlers.NewContentHandler(contentService, logger),
		Volunteer: handlers.NewVolunteerHandler(volunteerService, logger),
		Donation:  handlers.NewDonationHandler(donationService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
