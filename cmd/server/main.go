// @title         resume-screening API
// @version       1.0
// @description   Сервис асинхронного извлечения структурированных данных из резюме (LLM) и детерминированного скрининга кандидатов по критериям вакансии.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "github.com/artem13815/resume-screening/docs"

	"github.com/artem13815/resume-screening/api/http"
	"github.com/artem13815/resume-screening/api/http/handlers"
	"github.com/artem13815/resume-screening/pkg/config"
	"github.com/artem13815/resume-screening/pkg/extraction"
	"github.com/artem13815/resume-screening/pkg/health"
	"github.com/artem13815/resume-screening/pkg/health/checkers"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/llm"
	"github.com/artem13815/resume-screening/pkg/llm/openrouter"
	"github.com/artem13815/resume-screening/pkg/logger"
	pgrepo "github.com/artem13815/resume-screening/pkg/repository/postgres"
	"github.com/artem13815/resume-screening/pkg/repository/redisrepo"
	"github.com/artem13815/resume-screening/pkg/screening"
	"github.com/artem13815/resume-screening/pkg/storage/postgres"
	redisstorage "github.com/artem13815/resume-screening/pkg/storage/redis"
	"github.com/artem13815/resume-screening/pkg/tailor"
	"github.com/artem13815/resume-screening/pkg/upload"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	// Job store backend: memory (default), postgres or redis.
	var store job.Store
	var checks []health.Checker
	switch cfg.StoreBackend {
	case "memory", "":
		store = job.NewMemoryStore()
	case "postgres":
		if cfg.DatabaseURL == "" {
			zl.Fatal("DATABASE_URL is required for the postgres backend")
		}
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.PgMaxConns)
		if err != nil {
			zl.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()
		repo, err := pgrepo.NewJobRepository(pool)
		if err != nil {
			zl.Fatal("init job repo", zap.Error(err))
		}
		store = repo
		checks = append(checks, checkers.NewPostgresChecker(pool))
	case "redis":
		rdb, err := redisstorage.Connect(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			zl.Fatal("redis connect", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		store = redisrepo.NewJobRepository(rdb, cfg.JobTTL)
		checks = append(checks, checkers.NewRedisChecker(rdb))
	default:
		zl.Fatal("unknown STORE_BACKEND", zap.String("backend", cfg.StoreBackend))
	}

	// OpenRouter client; absent key means extraction is rejected per job.
	var model llm.ChatModel
	if cfg.OpenRouterAPIKey != "" {
		model = openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.OpenRouterModel,
			cfg.OpenRouterTitle,
			cfg.OpenRouterReferer,
		)
	}
	checks = append(checks, checkers.NewLLMChecker(model))

	extractor := extraction.NewLLMExtractor(model)
	gateway := extraction.NewGateway(store, extractor, zl, extraction.GatewayOptions{
		Workers:   cfg.ExtractWorkers,
		QueueSize: cfg.QueueSize,
		Timeout:   cfg.ExtractTimeout,
		RetryMax:  cfg.RetryMax,
	})

	var detector upload.TypeDetector
	if cfg.SniffContent {
		detector = upload.NewSniffer()
	}
	validator := upload.NewValidator(cfg.MaxUploadBytes, detector)

	readiness := health.NewService(checks...)
	orch := screening.NewOrchestrator(store)
	tailorSvc := tailor.NewService(model, zl)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes) * (1 + maxBulkOverhead),
	})
	http.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewResumesHandler(store, validator, gateway, zl),
		handlers.NewScreeningHandler(orch, zl),
		handlers.NewTailorHandler(store, tailorSvc),
	)

	go func() {
		zl.Info("http server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zl.Warn("http shutdown", zap.Error(err))
	}
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := gateway.Shutdown(drainCtx); err != nil {
		zl.Warn("extraction drain", zap.Error(err))
	}
}

// maxBulkOverhead keeps the fiber body limit permissive enough for bulk
// uploads of several maximum-size files.
const maxBulkOverhead = 4
