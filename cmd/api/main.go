package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/invopt/inventory_api/internal/config"
	"github.com/invopt/inventory_api/internal/database"
	"github.com/invopt/inventory_api/internal/facts"
	"github.com/invopt/inventory_api/internal/handler"
	"github.com/invopt/inventory_api/internal/middleware"
	"github.com/invopt/inventory_api/internal/store"
)

// main is the application entrypoint for the inventory analytics API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("database", cfg.Mongo.Database).Msg("starting inventory api")

	// 3. Connect to MongoDB
	client, err := database.Connect(&cfg.Mongo)
	if err != nil {
		log.Error().Err(err).Msg("mongodb connection failed")
		fmt.Fprintf(os.Stderr, "mongodb connection failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// 4. Initialize record store and query layer
	recordStore := store.NewMongoStore(client, cfg.Mongo.Database)
	joiner := facts.NewJoiner(recordStore)
	calculator := facts.NewCalculator(recordStore)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(recordStore, cfg.Mongo.Database),
		Facts:   handler.NewFactsHandler(joiner),
		Catalog: handler.NewCatalogHandler(recordStore),
		Metrics: handler.NewMetricsHandler(calculator),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Facts   *handler.FactsHandler
	Catalog *handler.CatalogHandler
	Metrics *handler.MetricsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/", handlers.Health.GetRoot)
	router.GET("/health", handlers.Health.GetHealth)

	// Tableau export
	router.GET("/tableau/fact_daily.csv", handlers.Facts.GetDailyFactsCSV)

	// Dashboard API
	api := router.Group("/api")
	{
		api.GET("/products", handlers.Catalog.GetProducts)
		api.GET("/categories", handlers.Catalog.GetCategories)
		api.GET("/metrics/kpis", handlers.Metrics.GetKPIs)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
