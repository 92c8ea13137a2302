package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/adapters/blobstore"
	"github.com/SscSPs/cheque_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/cheque_management_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/cheque_management_app/internal/adapters/lock"
	"github.com/SscSPs/cheque_management_app/internal/adapters/notify"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/cheque_management_app/internal/core/services"
	"github.com/SscSPs/cheque_management_app/internal/handlers"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/SscSPs/cheque_management_app/internal/platform/config"
	"github.com/SscSPs/cheque_management_app/internal/scheduler"
	"github.com/SscSPs/cheque_management_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Cheque Management API
// @version 1.0
// @description Cheque books, outgoing and received cheques, and their approval workflow.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	collab, closeCollab, err := setupCollaborators(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCollab()

	serviceContainer := services.NewServiceContainer(cfg, repos, collab)

	sweeper, err := scheduler.New(cfg.SweepSchedule, cfg.SweepLocation, serviceContainer.DueDate, logger)
	if err != nil {
		return err
	}
	if cfg.SweepOnStartup {
		if _, err := sweeper.RunNow(ctx); err != nil {
			// a partial sweep is retried on the next tick
			logger.Error("Startup sweep finished with errors", slog.String("error", err.Error()))
		}
	}
	sweeper.Start()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DatabaseDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := sweeper.Stop(shutdownCtx); err != nil {
		logger.Warn("Sweep still running at shutdown", slog.String("error", err.Error()))
	}
	return srv.Shutdown(shutdownCtx)
}

// setupRepositories opens the configured store and returns its repositories with a closer.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		logger.Warn("Using in-memory store")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsSource, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// setupCollaborators builds the allocation lock, image store and notifier. Redis and AMQP
// are optional; without them the lock stays in-process and notifications are only logged.
func setupCollaborators(ctx context.Context, cfg *config.Config, logger *slog.Logger) (services.Collaborators, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("Error closing collaborator", slog.String("error", err.Error()))
			}
		}
	}

	var collab services.Collaborators

	if cfg.RedisURL != "" {
		locker, closeRedis, err := lock.NewRedisLockerFromURL(ctx, cfg.RedisURL, cfg.AllocationLockTTL)
		if err != nil {
			return collab, nil, err
		}
		closers = append(closers, closeRedis)
		collab.Locker = locker
		logger.Info("Allocation lock backed by redis")
	} else {
		collab.Locker = lock.NewKeyedMutex()
	}

	images, err := blobstore.Open(ctx, cfg.BlobBucketURL)
	if err != nil {
		closeAll()
		return collab, nil, err
	}
	closers = append(closers, images.Close)
	collab.Images = images

	var notifier ports.Notifier = notify.LogNotifier{}
	if cfg.AMQPURL != "" {
		amqpNotifier, err := notify.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			closeAll()
			return collab, nil, err
		}
		closers = append(closers, amqpNotifier.Close)
		notifier = amqpNotifier
		logger.Info("Notifications published to AMQP", slog.String("exchange", cfg.AMQPExchange))
	}
	collab.Notifier = notifier

	return collab, closeAll, nil
}
