package main

import (
	"Food-Share-Backend/cmd/config"
	migration "Food-Share-Backend/cmd/database/migrate"
	"Food-Share-Backend/internal/logging"
	"Food-Share-Backend/internal/utils"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run must return rather than exit so its deferred sentry flush runs.
func run() error {
	utils.LoadConfig()
	logging.Setup(utils.GetConfig("LOG_LEVEL"))

	if utils.GetConfig("JWT_SECRET") == "" {
		slog.Error("JWT_SECRET is required")
		return errors.New("missing JWT_SECRET")
	}

	if dsn := utils.GetConfig("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      utils.GetConfig("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()

	db, err := config.ConnectDB()
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return err
	}
	if err := migration.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		return err
	}

	rdb, err := config.ConnectRedis(ctx)
	if err != nil {
		slog.Warn("redis unavailable, listing cache disabled", "error", err)
	}

	app, accessLog, err := config.NewApp(ctx, db, rdb)
	if err != nil {
		slog.Error("app setup failed", "error", err)
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		port := utils.GetConfig("APP_PORT")
		slog.Info("server starting", "port", port)
		serveErr <- app.Listen(":" + port)
	}()

	var listenErr error
	select {
	case <-quit:
		slog.Info("shutting down server...")
	case listenErr = <-serveErr:
		if listenErr != nil {
			slog.Error("server failed to start", "error", listenErr)
			sentry.CaptureException(listenErr)
		}
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}
	_ = accessLog.Close()

	slog.Info("server stopped")
	return listenErr
}
