package imagecache

import (
	"context"

	"github.com/osse101/cs2-crosshair/internal/logger"
)

// SweepJobName identifies the sweep in worker logs.
const SweepJobName = "image_cache_sweep"

// SweepJob runs Cache.Sweep on the worker pool.
type SweepJob struct {
	cache *Cache
}

// NewSweepJob wraps c for scheduling.
func NewSweepJob(c *Cache) *SweepJob {
	return &SweepJob{cache: c}
}

// Name implements worker.Job.
func (j *SweepJob) Name() string {
	return SweepJobName
}

// Process implements worker.Job.
func (j *SweepJob) Process(ctx context.Context) error {
	removed, err := j.cache.Sweep(ctx)
	if removed > 0 {
		logger.FromContext(ctx).Info("Swept expired images", "removed", removed, "dir", j.cache.Dir())
	}
	return err
}
