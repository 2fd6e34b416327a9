// Package crosshair is the application service behind the HTTP handlers.
package crosshair

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/cs2-crosshair/internal/concurrency"
	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/metrics"
	"github.com/osse101/cs2-crosshair/internal/render"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

type service struct {
	resolver   CodeResolver
	images     ImageStore
	locks      *concurrency.LockManager
	canvasSize int
	maxIDLen   int
}

// NewService creates the crosshair service. canvasSize is the PNG edge length
// and maxIdentifierLength bounds raw identifiers.
func NewService(resolver CodeResolver, images ImageStore, canvasSize, maxIdentifierLength int) Service {
	return &service{
		resolver:   resolver,
		images:     images,
		locks:      concurrency.NewLockManager(),
		canvasSize: canvasSize,
		maxIDLen:   maxIdentifierLength,
	}
}

func (s *service) CanvasSize() int {
	return s.canvasSize
}

// Resolve classifies raw, resolves it to a share code and decodes it. The
// returned code is re-encoded from the settings, so equivalent inputs map to
// one cache key.
func (s *service) Resolve(ctx context.Context, raw string) (Resolution, error) {
	id, err := domain.ParseIdentifier(raw, s.maxIDLen, sharecode.IsShareCode)
	if err != nil {
		return Resolution{}, err
	}

	code, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		return Resolution{}, err
	}

	settings, err := s.decode(ctx, code)
	if err != nil {
		return Resolution{}, err
	}

	canonical, err := sharecode.Encode(settings)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to re-encode %s: %w", code, err)
	}

	return Resolution{Identifier: id, Code: canonical, Settings: settings}, nil
}

// Image returns the PNG for code, rendering and caching it on a miss.
// Concurrent misses for the same code render once.
func (s *service) Image(ctx context.Context, code string) ([]byte, error) {
	if !sharecode.IsShareCode(code) {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedCode, code)
	}

	if data, ok := s.images.Get(ctx, code); ok {
		return data, nil
	}

	unlock := s.locks.Lock(code)
	defer unlock()

	// Another request may have rendered it while we waited.
	if data, ok := s.images.Get(ctx, code); ok {
		return data, nil
	}

	settings, err := s.decode(ctx, code)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := render.Render(settings, s.canvasSize)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RendersTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to render %s: %w", code, err)
	}
	metrics.RendersTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if err := s.images.Put(ctx, code, data); err != nil {
		// Serving the render still works without the cache.
		logger.FromContext(ctx).Warn("Failed to cache image", "code", code, "error", err)
	}
	return data, nil
}

func (s *service) decode(ctx context.Context, code string) (domain.CrosshairSettings, error) {
	settings, err := sharecode.Decode(code)
	if err != nil {
		metrics.DecodeFailures.WithLabelValues(metrics.DecodeReason(err)).Inc()
		logger.FromContext(ctx).Debug("Rejected share code", "code", code, "error", err)
		return domain.CrosshairSettings{}, err
	}
	return settings, nil
}
