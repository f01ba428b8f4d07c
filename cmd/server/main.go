package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/gestora/anticipos/internal/adapter/http"
	"github.com/gestora/anticipos/internal/adapter/http/handler"
	postgresRepo "github.com/gestora/anticipos/internal/adapter/repository/postgres"
	redisRepo "github.com/gestora/anticipos/internal/adapter/repository/redis"
	"github.com/gestora/anticipos/internal/infrastructure/auth"
	"github.com/gestora/anticipos/internal/infrastructure/config"
	"github.com/gestora/anticipos/internal/infrastructure/logger"
	"github.com/gestora/anticipos/internal/infrastructure/metrics"
	"github.com/gestora/anticipos/internal/infrastructure/postgres"
	"github.com/gestora/anticipos/internal/infrastructure/redis"
	"github.com/gestora/anticipos/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	partnerRepo := postgresRepo.NewPartnerRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	summaryCache := redisRepo.NewSummaryCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)
	recorder := metrics.New()

	// Use cases
	partnerUC := usecase.NewPartnerUseCase(partnerRepo, idGen)
	entryUC := usecase.NewEntryUseCase(txManager, partnerRepo, entryRepo, summaryCache, idGen, retrier, recorder, log)
	ledgerUC := usecase.NewLedgerUseCase(partnerRepo, entryRepo, summaryCache, recorder, log)

	// Handlers
	partnerHandler := handler.NewPartnerHandler(partnerUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	routerCfg := httpAdapter.RouterConfig{
		PartnerHandler:   partnerHandler,
		EntryHandler:     entryHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           log,
		RateLimit:        cfg.RateLimit,
		RateBurst:        cfg.RateBurst,
	}

	if cfg.AuthEnabled {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		routerCfg.JWTManager = jwtManager
		routerCfg.AuthHandler = handler.NewAuthHandler(jwtManager, cfg.AuthUsername, cfg.AuthPassword)
	}

	router := httpAdapter.NewRouter(routerCfg)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
