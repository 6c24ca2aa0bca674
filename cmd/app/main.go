package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/osse101/catchpool/docs"
	"github.com/osse101/catchpool/internal/bootstrap"
	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/database"
	"github.com/osse101/catchpool/internal/scheduler"
	"github.com/osse101/catchpool/internal/server"
	"github.com/osse101/catchpool/internal/worker"
)

// @title           Catchpool API
// @version         1.0
// @description     Fishing catch pools with conditional availability, weighted odds and hot-reloadable content.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// config.Load has applied .env, so the check sees the same variables
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	for _, w := range warnings {
		slog.Warn("Environment warning", "detail", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Catchpool exited with error", "error", err)
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbPool *pgxpool.Pool
	if cfg.UsesPostgres() {
		pool, err := database.NewPool(ctx, cfg.DBPoolOptions())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		dbPool = pool

		version, err := database.Migrate(ctx, dbPool)
		if err != nil {
			dbPool.Close()
			return err
		}
		slog.Info("Database ready", "schema_version", version)
	}

	stack, err := bootstrap.BuildContent(ctx, cfg, dbPool)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return err
	}

	// Serve even without a snapshot; /readyz reports 503 until a reload succeeds.
	if snap, err := stack.Service.Reload(ctx); err != nil {
		slog.Error("Initial content reload failed", "error", err)
	} else {
		slog.Info("Content loaded", "version", snap.Version, "entries", snap.Counts(), "traits", len(snap.Traits))
	}

	workerPool := worker.NewPool(bootstrap.ReloadWorkers, bootstrap.ReloadQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(bootstrap.ReloadJobName, cfg.ReloadInterval,
		worker.NewReloadJob(stack.Service, stack.Aliases, worker.DefaultReloadTimeout))
	sched.Start()

	opts := server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Expander:       stack.Expander,
		Aliases:        stack.Aliases,
	}
	// Leave the interface nil in file mode so /readyz skips the ping.
	if dbPool != nil {
		opts.DBPool = dbPool
	}
	srv := server.NewServer(stack.Service, opts)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()

	components := bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workerPool,
	}
	if dbPool != nil {
		components.DBPool = dbPool
	}
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return runErr
}
