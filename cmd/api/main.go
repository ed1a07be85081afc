package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/config"
	"github.com/henryjobel/evi-learnig-server-site/internal/database"
	"github.com/henryjobel/evi-learnig-server-site/internal/routes"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from MongoDB", "error", err)
		}
	}()

	// Initialize router
	router := routes.SetupRouter(client, cfg, logger)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Infow("evoLearn server running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to start server", "error", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("server shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
