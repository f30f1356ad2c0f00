package main

// @title Commute Map API
// @version 1.0.0
// @description Picks an office, scatters candidate houses around it and shows the yearly cost of driving from a house to the office.

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

	"go.uber.org/zap"

	_ "github.com/commute-map/docs/swagger"
	"github.com/commute-map/internal/config"
	httpDelivery "github.com/commute-map/internal/delivery/http"
	"github.com/commute-map/internal/delivery/http/handler"
	"github.com/commute-map/internal/domain/repository"
	"github.com/commute-map/internal/infrastructure/google"
	"github.com/commute-map/internal/infrastructure/mapbox"
	"github.com/commute-map/internal/pkg/logger"
	"github.com/commute-map/internal/repository/cache"
	"github.com/commute-map/internal/repository/memory"
	"github.com/commute-map/internal/repository/postgres"
	"github.com/commute-map/internal/usecase"
	"github.com/commute-map/internal/usecase/dto"
	"github.com/commute-map/internal/worker"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Commute Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("maps_provider", cfg.Maps.Provider),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	if !cfg.HasMapsCredential() {
		log.Warn("MAPS_API_KEY is not set: the map stays on the loading screen and routes cannot be resolved")
	}

	workers := worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)

	// 3. Cache backend
	var (
		cacheStore  cache.Store
		cacheHealth func(ctx context.Context) error
		closers     []func() error
	)

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		closers = append(closers, redisClient.Close)
		cacheStore = cache.NewRedisStore(redisClient)
		cacheHealth = redisClient.Health
		log.Info("Redis connected")

	case config.CacheBackendPostgres:
		db, err := postgres.New(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		closers = append(closers, db.Close)

		store := postgres.NewCacheStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = store.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to migrate cache table", zap.Error(err))
		}

		cacheStore = store
		cacheHealth = db.Health
		workers.Register(worker.NewCachePurger(store, cfg.Worker.CachePurgeInterval, log))
		log.Info("PostgreSQL cache ready")
	}

	// 4. Maps provider
	var provider repository.MapsProvider
	switch cfg.Maps.Provider {
	case config.ProviderMapbox:
		provider = mapbox.NewMapboxClient(&cfg.Maps, log)
	default:
		provider = google.NewGoogleClient(&cfg.Maps, log)
	}

	if cacheStore != nil {
		provider = usecase.NewCachedProvider(
			provider,
			cache.NewCacheRepository(cacheStore, log),
			usecase.CacheTTLs{
				Directions:   cfg.Cache.DirectionsTTL,
				Geocode:      cfg.Cache.GeocodeTTL,
				Autocomplete: cfg.Cache.AutocompleteTTL,
			},
			log,
		)
	}

	// 5. Use cases
	sessions := memory.NewSessionRepository()
	presenter := usecase.NewDistancePresenter("en")

	mapUC := usecase.NewMapUseCase(sessions, provider, provider, presenter, log, usecase.MapOptions{
		RouteTimeout: cfg.Maps.RouteTimeout,
	})

	workers.Register(worker.NewSessionJanitor(sessions, cfg.Session.IdleTTL, cfg.Session.SweepInterval, log))

	log.Info("Use cases initialized")

	// 6. HTTP handlers
	pageHandler, err := handler.NewPageHandler(&cfg.Maps)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	mapHandler := handler.NewMapHandler(mapUC, &cfg.Maps, log)
	commuteHandler := handler.NewCommuteHandler(presenter)

	health := func(ctx context.Context) dto.HealthResponse {
		resp := dto.HealthResponse{
			Status:   "healthy",
			Provider: cfg.Maps.Provider,
			Cache:    cfg.Cache.Backend,
			Sessions: sessions.Count(),
		}
		if cacheHealth != nil {
			if err := cacheHealth(ctx); err != nil {
				resp.Status = "degraded"
				log.Warn("Cache health check failed", zap.Error(err))
			}
		}
		return resp
	}

	// 7. HTTP server
	server := httpDelivery.NewServer(cfg, log, pageHandler, mapHandler, commuteHandler, health)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	mapUC.Close()

	if err := workers.Stop(ctx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Error("Failed to close connection", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
