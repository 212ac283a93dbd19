package main

// @title Zhytomyr Tourism Statistics API
// @version 1.0.0
// @description Статистика туристических объектов Житомирской области.
// @description
// @description Основные возможности:
// @description - Распределение объектов по семи тематическим кластерам
// @description - Плотность объектов на км² по районам области
// @description - Определение района по координатам точки
// @description - Пересчет статистики по событию загрузки данных

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

	_ "github.com/zhytomyr-tourism/docs/swagger"
	"github.com/zhytomyr-tourism/internal/config"
	httpDelivery "github.com/zhytomyr-tourism/internal/delivery/http"
	"github.com/zhytomyr-tourism/internal/delivery/http/handler"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"github.com/zhytomyr-tourism/internal/geo"
	"github.com/zhytomyr-tourism/internal/pkg/logger"
	"github.com/zhytomyr-tourism/internal/repository/cache"
	"github.com/zhytomyr-tourism/internal/repository/file"
	"github.com/zhytomyr-tourism/internal/repository/postgres"
	redisRepo "github.com/zhytomyr-tourism/internal/repository/redis"
	"github.com/zhytomyr-tourism/internal/usecase"
	"github.com/zhytomyr-tourism/internal/worker"
	"github.com/zhytomyr-tourism/internal/worker/refresh"
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

	log.Info("Starting Zhytomyr Tourism Statistics")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("worker_enabled", cfg.Worker.Enabled),
	)

	// 3. District reference data: ошибка конфигурации районов фатальна
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	districts, err := file.NewDistrictRepository(cfg.Data.DistrictsPath, log).List(ctx)
	if err != nil {
		log.Fatal("Failed to load districts", zap.Error(err))
	}
	resolver, err := geo.NewResolver(districts)
	if err != nil {
		log.Fatal("Invalid district configuration", zap.Error(err))
	}
	log.Info("Districts loaded", zap.Int("count", len(resolver.Districts())))

	healthChecks := make(map[string]handler.HealthCheck)

	// 4. Connect to PostgreSQL (attractions source and/or visits)
	var db *postgres.DB
	if cfg.NeedsDatabase() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		healthChecks["postgres"] = db.Health
	}

	// 5. Connect to Redis
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		healthChecks["redis"] = redisClient.Health
	}

	// 6. Initialize Repositories
	var attractionRepo repository.AttractionRepository
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		attractionRepo = postgres.NewAttractionRepository(db)
	default:
		attractionRepo = file.NewAttractionRepository(cfg.Data.AttractionsPath, log)
	}

	var statsOpts []usecase.StatsOption
	if cfg.Data.VisitsEnabled {
		statsOpts = append(statsOpts, usecase.WithVisits(postgres.NewVisitsRepository(db, log)))
	}

	var streamRepo repository.StreamRepository
	if redisClient != nil {
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
		statsOpts = append(statsOpts,
			usecase.WithCache(cache.NewCacheRepository(redisClient), cfg.Cache.StatsCacheTTL),
			usecase.WithStream(streamRepo),
		)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	statsUC := usecase.NewStatsUseCase(attractionRepo, resolver, log, statsOpts...)
	if err := statsUC.WarmUp(ctx); err != nil {
		// Сервис поднимается без снимка: статистика отдает 503 до первого успешного пересчета
		log.Error("Initial statistics build failed", zap.Error(err))
	}

	districtUC := usecase.NewDistrictUseCase(resolver, log)
	attractionUC := usecase.NewAttractionUseCase(statsUC, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Stats:      handler.NewStatsHandler(statsUC, log),
		District:   handler.NewDistrictHandler(districtUC, log),
		Attraction: handler.NewAttractionHandler(attractionUC, log),
		Health:     handler.NewHealthHandler(statsUC, healthChecks),
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	// 10. Start workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	var manager *worker.WorkerManager
	if cfg.Worker.Enabled {
		manager = worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
		manager.Register(refresh.NewStatisticsRefreshWorker(
			streamRepo,
			statsUC,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.MaxBatchSize,
			log,
		))

		if err := manager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if manager != nil {
		if err := manager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}
	stopWorkers()

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
