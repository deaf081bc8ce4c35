package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userdesk/internal/cache"
	"userdesk/internal/captcha"
	"userdesk/internal/config"
	"userdesk/internal/database"
	"userdesk/internal/logging"
	"userdesk/internal/metrics"
	"userdesk/internal/middleware"
	"userdesk/internal/router"
	"userdesk/internal/service"
	"userdesk/internal/session"
	"userdesk/internal/store"
	"userdesk/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const startupBackoff = 500 * time.Millisecond

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	waitReady       = database.WaitReady
	newLogger       = logging.New
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), *configFile)
			if err != nil {
				return oops.Code("CONFIG_INVALID").Wrap(err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func newEcho(logger *zap.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = middleware.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics(m))
	return e
}

func serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateServe(); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	logger, closeLog, err := newLogger(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 7,
		MaxAgeDays: 30,
		Compress:   true,
	})
	if err != nil {
		return oops.Code("LOGGER_INIT_FAILED").Wrap(err)
	}
	defer func() { _ = closeLog() }()
	defer func() { _ = logger.Sync() }()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").Wrap(err)
	}
	defer db.Close()
	if err := waitReady(ctx, db.Ping, cfg.StartupAttempts, startupBackoff); err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "ping database").Wrap(err)
	}

	rdb := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}()
	pingRedis := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	if err := waitReady(ctx, pingRedis, cfg.StartupAttempts, startupBackoff); err != nil {
		return oops.Code("REDIS_CONNECT_FAILED").With("addr", cfg.RedisAddr).Wrap(err)
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}

	codec, err := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	pool := newWorkerPool(cfg.WorkerCount, cfg.WorkerQueue, logger)
	defer pool.Stop()

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	users := store.NewUserStore(db)
	m := metrics.New()

	e := newEcho(logger, m)
	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Users:    service.NewUserService(users, sessions, pool, logger),
		Auth:     service.NewAuthenticator(users),
		Sessions: session.NewManager(sessions, codec, cfg.SessionTTL, cfg.CookieSecure, logger),
		Captcha:  captcha.NewDigitGenerator(captcha.DefaultLength),
		Metrics:  m,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.HTTPAddr) }()
	logger.Info("http server started", zap.String("addr", cfg.HTTPAddr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return oops.Code("HTTP_SERVER_FAILED").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return oops.Code("HTTP_SHUTDOWN_FAILED").Wrap(err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return oops.Code("HTTP_SERVER_FAILED").Wrap(err)
	}
	return nil
}
