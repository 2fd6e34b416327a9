package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/osse101/cs2-crosshair/internal/bootstrap"
	"github.com/osse101/cs2-crosshair/internal/config"
	"github.com/osse101/cs2-crosshair/internal/crosshair"
	"github.com/osse101/cs2-crosshair/internal/imagecache"
	"github.com/osse101/cs2-crosshair/internal/profile"
	"github.com/osse101/cs2-crosshair/internal/scheduler"
	"github.com/osse101/cs2-crosshair/internal/server"
	"github.com/osse101/cs2-crosshair/internal/worker"
)

// Sized for the handful of background jobs this service runs
const (
	jobQueueSize      = 16
	resolverCacheSize = 1024
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	images, err := imagecache.New(cfg.CacheDir, cfg.CacheMemoryEntries, cfg.CacheDuration)
	if err != nil {
		return fmt.Errorf("failed to open image cache: %w", err)
	}

	resolver := profile.NewResolver(
		profile.NewSteamClient(cfg.SteamAPIURL, cfg.SteamAPIKey, cfg.ProfileTimeout),
		profile.NewLeetifyClient(cfg.LeetifyAPIURL, cfg.LeetifyAPIKey, cfg.ProfileTimeout),
		resolverCacheSize,
		cfg.CacheDuration,
	)
	service := crosshair.NewService(resolver, images, cfg.CanvasSize, cfg.MaxCodeLength)

	pool := worker.NewPool(cfg.SweepWorkers, jobQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.ScheduleNow(cfg.CacheSweepInterval, imagecache.NewSweepJob(images))

	srv := server.NewServer(cfg, service, images)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var startErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case startErr = <-serverErr:
		slog.Error("Server failed", "error", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
	})
	return multierr.Combine(startErr, shutdownErr)
}
