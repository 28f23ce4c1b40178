package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"comment-service/configs"
	"comment-service/middleware"
	"comment-service/routes"
	"comment-service/services"
	"comment-service/stores"
)

func main() {
	// Initialize logger first
	configs.InitLogger()
	logger := configs.LogWithContext("comment-service", "startup")

	logger.Info("Starting comment-service initialization")

	router := mux.NewRouter()

	// Add middleware
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)

	logger.Info("Middleware configured")

	// Initialize database connections with logging
	logger.Info("Connecting to databases...")

	if err := initializeDatabases(logger); err != nil {
		logger.Fatal("Failed to initialize databases", "error", err)
		return
	}

	svc, err := buildCommentService(logger)
	if err != nil {
		logger.Fatal("Failed to build comment service", "error", err)
		return
	}

	// Register routes with logging
	logger.Info("Registering API routes...")
	routes.CommentRoutes(router, svc, []byte(configs.EnvJWTSecret()))
	logger.Info("Comment routes registered")

	// Health check endpoints
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ready")
	}).Methods("GET")

	// Get port configuration
	port := os.Getenv("PORT")
	if port == "" {
		port = "3007"
	}

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("comment-service started", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	} else {
		logger.Info("Server shutdown complete")
	}
}

func initializeDatabases(logger *logrus.Entry) error {
	// Connect to MongoDB
	start := time.Now()
	err := connectMongoDB()
	if err != nil {
		logger.Error("MongoDB connection failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("mongodb connection failed: %w", err)
	}
	logger.Info("MongoDB connected successfully", "duration", time.Since(start))

	// Connect to PostgreSQL
	start = time.Now()
	err = configs.ConnectPSQLDatabase()
	if err != nil {
		logger.Error("PostgreSQL connection failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("postgresql connection failed: %w", err)
	}
	logger.Info("PostgreSQL connected successfully", "duration", time.Since(start))

	// Connect to Redis
	start = time.Now()
	err = configs.ConnectREDISDB()
	if err != nil {
		logger.Error("Redis connection failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("redis connection failed: %w", err)
	}
	logger.Info("Redis connected successfully", "duration", time.Since(start))

	return nil
}

func connectMongoDB() error {
	// Try to connect with retry logic
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		err := configs.ConnectDB()
		if err == nil {
			return nil
		}
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * time.Second)
		} else {
			return err
		}
	}
	return fmt.Errorf("failed to connect after %d retries", maxRetries)
}

func buildCommentService(logger *logrus.Entry) (*services.CommentService, error) {
	postStore := stores.NewMongoPostStore(configs.GetCollection(configs.DB, "posts"))
	userStore := stores.NewMongoUserStore(configs.GetCollection(configs.DB, "users"))

	moderation, err := stores.NewGormModerationStore(configs.PGDB)
	if err != nil {
		return nil, fmt.Errorf("moderation store setup failed: %w", err)
	}

	notifier := services.NewRedisNotifier(configs.GetRedisClient(), configs.NOTIFICATIONCHANNEL())

	svc := services.NewCommentService(postStore, userStore).
		WithNotifier(notifier).
		WithModeration(moderation).
		WithDefaultAvatar(configs.DEFAULTAVATAR())

	logger.Info("Comment service wired", "stores", "mongo+postgres", "notifier", "redis")
	return svc, nil
}
