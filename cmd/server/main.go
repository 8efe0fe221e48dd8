package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/iho/treasury/internal/adapter/http"
	"github.com/iho/treasury/internal/adapter/http/handler"
	postgresRepo "github.com/iho/treasury/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/treasury/internal/adapter/repository/redis"
	"github.com/iho/treasury/internal/infrastructure/config"
	"github.com/iho/treasury/internal/infrastructure/logger"
	"github.com/iho/treasury/internal/infrastructure/metrics"
	"github.com/iho/treasury/internal/infrastructure/postgres"
	"github.com/iho/treasury/internal/infrastructure/redis"
	"github.com/iho/treasury/internal/scheduler"
	"github.com/iho/treasury/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	cssRepo := postgresRepo.NewCSSRepository(pool)
	advanceRepo := postgresRepo.NewAdvanceRepository(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	entryRepo := postgresRepo.NewInterestEntryRepository(pool)
	requestRepo := postgresRepo.NewFundRequestRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	runLocker := redisRepo.NewRunLocker(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	accrualUC := usecase.NewAccrualUseCase(txManager, advanceRepo, loanRepo, entryRepo, idGen, usecase.SystemClock{}, log).
		WithRunLock(runLocker).
		WithRetrier(postgresRepo.NewRetrier()).
		WithObserver(m)
	marginUC := usecase.NewMarginUseCase(cssRepo, advanceRepo, loanRepo, entryRepo, usecase.SystemClock{})
	liquidityUC := usecase.NewLiquidityUseCase(requestRepo, balanceRepo, usecase.SystemClock{}, log)
	ledgerUC := usecase.NewLedgerUseCase(advanceRepo, entryRepo)

	// Initialize handlers
	accrualHandler := handler.NewAccrualHandler(accrualUC)
	reportHandler := handler.NewReportHandler(marginUC, liquidityUC)
	advanceHandler := handler.NewAdvanceHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccrualHandler: accrualHandler,
		ReportHandler:  reportHandler,
		AdvanceHandler: advanceHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
	})

	// Start accrual scheduler
	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		sched = scheduler.New(accrualUC, cfg.SchedulerInterval, log)
		sched.Start()
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
