package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/config"
	"github.com/clubstem/registration-service/internal/events"
	"github.com/clubstem/registration-service/internal/handlers"
	"github.com/clubstem/registration-service/internal/kvstore"
	redisrepo "github.com/clubstem/registration-service/internal/repositories/redis"
	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
	"github.com/clubstem/registration-service/internal/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Event publisher: Kafka when brokers are configured, in-process otherwise.
	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to create Kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewGoChannelPublisher(slogLogger)
	}

	// The store connection is lazy: nothing is dialed until the first request
	// needs it, and a failed operation forces a reconnect on the next one.
	store, err := kvstore.NewManager(cfg.RedisURL, slogLogger, publisher)
	if err != nil {
		log.Fatalf("Failed to configure store: %v", err)
	}

	repo := redisrepo.NewRepository(store)
	serviceManager := services.NewServiceManager(repo, slogLogger, validator.New(), publisher)
	handlerManager := handlers.NewHandlerManager(serviceManager, logger, repo)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Failed to close event publisher: %v", err)
	}

	if err := repo.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}

	logger.Info("Server exited")
}
