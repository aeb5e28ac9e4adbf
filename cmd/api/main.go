package main

// @title Tourism Site Registry API
// @version 1.0.0
// @description Layanan pendataan objek wisata kabupaten: pencatatan data (nama, desa, kecamatan, jenis, kapasitas, risiko bencana, koordinat), statistik dasbor, dan marker peta.
// @description
// @description Data-entry and dashboard API for regency tourism sites:
// @description - register and delete site records
// @description - dashboard aggregates per district and site type
// @description - map markers with district-centroid fallback and viewport fitting

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourism-registry/docs"
	"github.com/tourism-registry/internal/config"
	httpDelivery "github.com/tourism-registry/internal/delivery/http"
	"github.com/tourism-registry/internal/delivery/http/handler"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/mapview"
	"github.com/tourism-registry/internal/pkg/logger"
	"github.com/tourism-registry/internal/repository/cache"
	"github.com/tourism-registry/internal/repository/postgres"
	redisStream "github.com/tourism-registry/internal/repository/redis"
	"github.com/tourism-registry/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Site Registry")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks and schema
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	siteRepo := postgres.NewSiteRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	var streamRepo repository.StreamRepository
	if cfg.Events.Enabled {
		streamRepo = redisStream.NewStreamRepository(
			redisClient.Client(),
			cfg.Events.StreamKey,
			log,
		)
	} else {
		log.Info("Site event publishing disabled")
	}

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	siteUC := usecase.NewSiteUseCase(siteRepo, cacheRepo, streamRepo, log)

	statsUC := usecase.NewStatsUseCase(
		siteRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	mapUC := usecase.NewMapUseCase(
		siteRepo,
		cacheRepo,
		mapview.TileLayer{
			URLTemplate: cfg.Map.TileURLTemplate,
			Attribution: cfg.Map.TileAttribution,
			MaxZoom:     cfg.Map.TileMaxZoom,
		},
		log,
		cfg.Cache.MarkersCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers and server
	siteHandler := handler.NewSiteHandler(siteUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	mapHandler := handler.NewMapHandler(mapUC, log)

	server := httpDelivery.NewServer(cfg, log, siteHandler, statsHandler, mapHandler)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	mapUC.Teardown()

	log.Info("Server stopped successfully")
}
