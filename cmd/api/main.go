package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/foodbazar/retail-api/internal/application/service"
	"github.com/foodbazar/retail-api/internal/config"
	"github.com/foodbazar/retail-api/internal/infrastructure/storage"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/internal/presentation/http/handler"
	"github.com/foodbazar/retail-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.App.Name).Logger()
	if cfg.App.Debug {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the storage backend
	backend, err := storage.NewBoltBackend(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open storage")
	}
	defer backend.Close()

	// Initialize the store (loads persisted collections or seeds them)
	dataStore, err := store.New(backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}

	// Initialize services
	customerService := service.NewCustomerService(dataStore)
	productService := service.NewProductService(dataStore, cfg.Store.LowStockThreshold)
	transactionService := service.NewTransactionService(dataStore)
	dashboardService := service.NewDashboardService(dataStore, cfg.Store.LowStockThreshold)

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:    handler.NewCustomerHandler(customerService),
		Product:     handler.NewProductHandler(productService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Admin:       handler.NewAdminHandler(dataStore),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg, Log: log})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
