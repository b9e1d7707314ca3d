// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/database"
	recordsRepo "roomly/database/repository/records"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/availability"
	"roomly/services/booking"
	"roomly/services/calendar"
	"roomly/services/dialog"
	"roomly/utils"

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
	bookingRecords := recordsRepo.NewMongoRecordRepo()

	// services.
	calendarClient := calendar.NewClient(
		config.AppConfig.CalendarBaseURL,
		config.AppConfig.CalendarToken,
	)

	directory := &booking.DefaultCandidateDirectory{
		Calendar:  calendarClient,
		RoomNames: config.BookableRooms(),
	}

	resolver := availability.NewResolver(
		&booking.CalendarProber{Calendar: calendarClient},
		time.Duration(config.AppConfig.AvailabilityTimeMs)*time.Millisecond,
	)

	committer := &booking.DefaultCommitter{
		Calendar: calendarClient,
		Records:  bookingRecords,
	}

	sessionStore := dialog.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	dialogController := dialog.NewController(
		sessionStore,
		directory,
		resolver,
		committer,
		config.AppConfig.MaxMeetingMinutes,
	)

	voiceHandler := handlers.NewVoiceHandler(dialogController, config.AppConfig.SkillAppID, logger)
	bookingRecordsHandler := handlers.NewBookingRecordsHandler(bookingRecords)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleInvocation:       voiceHandler.HandleInvocation,
		GetUserBookingsHandler: bookingRecordsHandler.GetUserBookingsHandler,
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
