package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "robimar-backend/internal/api/http"
	"robimar-backend/internal/config"
	"robimar-backend/internal/logger"
	"robimar-backend/internal/repository/postgres"
	"robimar-backend/internal/security"
	"robimar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Robimar Inventory Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	clientSvc := service.NewClientService(store.ClientRepository)
	materialSvc := service.NewMaterialService(store.MaterialRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.MaterialRepository, store.ClientRepository)
	authSvc := service.NewAuthService(store.AdminRepository, tokenManager)

	bootstrapAdmin(authSvc, store)

	// Initialize HTTP API
	api := httpapi.NewAPI(clientSvc, materialSvc, rentalSvc, authSvc, tokenManager)
	router := httpapi.NewRouter(api)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// bootstrapAdmin creates the initial admin account from the environment on
// first start. Later starts leave the existing account untouched.
func bootstrapAdmin(authSvc service.AuthService, store *postgres.Store) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}
	if _, err := store.AdminRepository.GetByUsername(context.Background(), username); err == nil {
		return
	}
	if _, err := authSvc.CreateAdmin(context.Background(), username, password); err != nil {
		logger.Error("Failed to bootstrap admin account", "error", err)
		return
	}
	logger.Info("Bootstrapped admin account", "username", username)
}
