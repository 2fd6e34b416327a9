package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"
)

// Stopper is a component with a context-bounded shutdown, like the HTTP
// server.
type Stopper interface {
	Stop(ctx context.Context) error
}

// BackgroundStopper is a component whose Stop waits for its goroutines,
// like the scheduler and worker pool.
type BackgroundStopper interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler BackgroundStopper
	Pool      BackgroundStopper
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler (no new sweep jobs)
// 3. Worker pool (cancel and wait for running jobs)
//
// A failing step does not stop the sequence. All errors are returned combined.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	var err error

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if serr := components.Server.Stop(ctx); serr != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", serr)
			err = multierr.Append(err, serr)
		}
	}

	slog.Info(LogMsgStoppingBackground)
	if components.Scheduler != nil {
		err = multierr.Append(err, stopWithin(ctx, components.Scheduler))
	}
	if components.Pool != nil {
		err = multierr.Append(err, stopWithin(ctx, components.Pool))
	}

	slog.Info(LogMsgServerStopped)
	return err
}

// stopWithin bounds a blocking Stop by ctx. On timeout the Stop call keeps
// running in the background.
func stopWithin(ctx context.Context, s BackgroundStopper) error {
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
