package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/pipeline-api/internal/platform/config"
	applog "github.com/janisto/pipeline-api/internal/platform/logging"
	"github.com/janisto/pipeline-api/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 1
	}
	applog.SetLevel(cfg.LogLevel)
	applog.LogInfo(ctx, "starting service",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.Addr()),
		zap.Stringer("logLevel", applog.Level()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, server.NewRouter(cfg))
	if err := server.Run(ctx, srv, server.ShutdownTimeout); err != nil {
		applog.LogError(ctx, "server failed", err, zap.String("addr", srv.Addr))
		return 1
	}
	return 0
}
