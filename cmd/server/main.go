package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/rmoreira/quizcraft/api"
	migrations "github.com/rmoreira/quizcraft/db"
	"github.com/rmoreira/quizcraft/internal/config"
	"github.com/rmoreira/quizcraft/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// a missing .env file is fine, environment variables still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	logger.Info("starting quizcraft server", slog.String("version", version), slog.String("build_time", buildTime))

	ctx := context.Background()

	// Open database connection and apply pending migrations
	db, err := db.New(ctx, cfg.DatabasePath, cfg.StorageTimeout)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := dbMigrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	handler := api.SetupRoutes(version, buildTime, db, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := db.Close(); err != nil {
		logger.Error("error closing DB", slog.Any("err", err))
	}

	logger.Info("server exited")
}

func dbMigrate(ctx context.Context, d *db.DB) error {
	return db.Migrate(ctx, d, migrations.Migrations)
}
