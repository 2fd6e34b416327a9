// Package imagecache stores rendered crosshair PNGs in memory and on disk.
//
// Renders are deterministic, so entries never need invalidation; the TTL only
// bounds how long disk space and memory are held.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/multierr"

	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/metrics"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

const (
	fileExt     = ".png"
	tempPattern = ".tmp-*"
	healthFile  = ".health-*"
	dirPerm     = 0o755
)

// Cache is a two-tier image cache keyed by canonical share code.
type Cache struct {
	dir string
	ttl time.Duration
	mem *expirable.LRU[string, []byte]
	now func() time.Time
}

// New creates the cache directory if needed.
func New(dir string, memEntries int, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Cache{
		dir: dir,
		ttl: ttl,
		mem: expirable.NewLRU[string, []byte](memEntries, nil, ttl),
		now: time.Now,
	}, nil
}

// Dir returns the directory backing the disk tier.
func (c *Cache) Dir() string {
	return c.dir
}

// Get returns the cached PNG for code. Disk entries older than the TTL count
// as misses. A disk hit is promoted to memory.
func (c *Cache) Get(ctx context.Context, code string) ([]byte, bool) {
	if data, ok := c.mem.Get(code); ok {
		metrics.CacheLookups.WithLabelValues(metrics.TierMemory, metrics.ResultHit).Inc()
		return data, true
	}
	metrics.CacheLookups.WithLabelValues(metrics.TierMemory, metrics.ResultMiss).Inc()

	path, err := c.path(code)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(path)
	if err != nil || c.expired(info.ModTime()) {
		metrics.CacheLookups.WithLabelValues(metrics.TierDisk, metrics.ResultMiss).Inc()
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to read cached image", "code", code, "error", err)
		metrics.CacheLookups.WithLabelValues(metrics.TierDisk, metrics.ResultMiss).Inc()
		return nil, false
	}

	metrics.CacheLookups.WithLabelValues(metrics.TierDisk, metrics.ResultHit).Inc()
	c.mem.Add(code, data)
	return data, true
}

// Put stores data for code in both tiers. The disk write goes through a temp
// file and a rename so readers never see a partial PNG.
func (c *Cache) Put(ctx context.Context, code string, data []byte) error {
	path, err := c.path(code)
	if err != nil {
		return err
	}
	c.mem.Add(code, data)

	tmp, err := os.CreateTemp(c.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move image into place: %w", err)
	}

	logger.FromContext(ctx).Debug("Cached image", "code", code, "bytes", len(data))
	return nil
}

// Sweep deletes expired images and stale temp files from disk and returns
// how many files it removed.
func (c *Cache) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache dir: %w", err)
	}

	removed := 0
	var errs error
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if e.IsDir() || !c.sweepable(e.Name()) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = multierr.Append(errs, err)
			}
			continue
		}
		if !c.expired(info.ModTime()) {
			continue
		}

		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = multierr.Append(errs, err)
			continue
		}
		removed++
	}

	metrics.CacheSwept.Add(float64(removed))
	return removed, errs
}

// CheckHealth verifies the cache directory accepts writes.
func (c *Cache) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.CreateTemp(c.dir, healthFile)
	if err != nil {
		return fmt.Errorf("cache dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func (c *Cache) path(code string) (string, error) {
	// The code doubles as a file name, so only the exact code shape is allowed.
	if !sharecode.IsShareCode(code) {
		return "", fmt.Errorf("%w: %q", domain.ErrMalformedCode, code)
	}
	return filepath.Join(c.dir, code+fileExt), nil
}

func (c *Cache) expired(modTime time.Time) bool {
	return c.now().Sub(modTime) > c.ttl
}

func (c *Cache) sweepable(name string) bool {
	if strings.HasPrefix(name, ".tmp-") || strings.HasPrefix(name, ".health-") {
		return true
	}
	return strings.HasSuffix(name, fileExt) && sharecode.IsShareCode(strings.TrimSuffix(name, fileExt))
}
