package main

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"postforge/internal/adapter/api"
	"postforge/internal/adapter/client"
	"postforge/internal/adapter/store"
	"postforge/internal/config"
	"postforge/internal/domain/repository"
	"postforge/internal/logging"
	"postforge/internal/usecase"
)

func main() {
	logger := logging.NewLoggerWithService("postforge")
	config.LoadEnv(logger)
	ctx := context.Background()

	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		logger.Fatalf("Invalid configuration: %s", strings.Join(errs, "; "))
	}

	genaiClient, err := client.NewGenAIClient(ctx, cfg.APIKey)
	if err != nil {
		logger.WithError(err).Fatal("Failed to init genai client")
	}

	// Pick the first candidate model that answers the startup probe.
	gemini, err := client.ProbeModels(ctx, genaiClient, cfg.CandidateModels, logger)
	if err != nil {
		logger.WithError(err).Fatal("Model initialization failed")
	}

	ledger := usecase.NewUsageLedger()

	// Provider stack: retry innermost, then accounting, then the optional
	// exact-match cache so cache hits never reach the ledger or the model.
	var provider repository.CompletionProvider = usecase.NewMeteredProvider(
		usecase.NewResilientProvider(gemini), ledger, gemini.ModelName())

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache := store.NewRedisCache(rdb)
		provider = usecase.NewCachedProvider(provider, cache, cfg.CacheTTL, logger)
		logger.WithField("addr", cfg.RedisAddr).Info("Completion cache enabled")
	}

	researcher := usecase.NewTrendResearcher(provider)
	filter := usecase.NewQualityFilter(provider)
	hashtags := usecase.NewHashtagGenerator(provider, logger)

	orchestrator := usecase.NewOrchestrator(cfg, provider, gemini.ModelName(), researcher, filter, hashtags, logger)

	app := fiber.New(fiber.Config{
		AppName: "Postforge",
	})

	handler := api.NewPostHandler(orchestrator, ledger)
	api.SetupRouter(app, handler)

	logger.WithField("port", cfg.Port).WithField("model", gemini.ModelName()).Info("Postforge running")
	logger.Fatal(app.Listen(":" + cfg.Port))
}
