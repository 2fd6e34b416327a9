// Package profile turns player identifiers into crosshair share codes by
// asking Steam and the stats API.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/metrics"
)

// VanityResolver maps a Steam vanity name to a SteamID64.
type VanityResolver interface {
	ResolveVanity(ctx context.Context, vanity string) (string, error)
}

// CrosshairSource returns the share code stored on a player profile.
type CrosshairSource interface {
	CrosshairCode(ctx context.Context, query Query) (string, error)
}

// Resolver chains the lookups an identifier needs and caches the result.
type Resolver struct {
	steam VanityResolver
	stats CrosshairSource
	cache *expirable.LRU[string, string]
}

// NewResolver creates a Resolver caching up to size results for ttl.
func NewResolver(steam VanityResolver, stats CrosshairSource, size int, ttl time.Duration) *Resolver {
	return &Resolver{
		steam: steam,
		stats: stats,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Resolve returns the share code for id. Share codes resolve to themselves
// without a lookup. Failed lookups are not cached.
func (r *Resolver) Resolve(ctx context.Context, id domain.Identifier) (string, error) {
	if id.Kind == domain.KindShareCode {
		return id.Value, nil
	}

	key := cacheKey(id)
	if code, ok := r.cache.Get(key); ok {
		metrics.ProfileLookups.WithLabelValues(metrics.SourceCache, metrics.OutcomeSuccess).Inc()
		return code, nil
	}

	code, err := r.lookup(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Info("Profile lookup failed", "identifier", id.String(), "error", err)
		return "", err
	}

	r.cache.Add(key, code)
	return code, nil
}

func (r *Resolver) lookup(ctx context.Context, id domain.Identifier) (string, error) {
	switch id.Kind {
	case domain.KindSteamID:
		return r.crosshair(ctx, Query{SteamID: id.Value})
	case domain.KindSteamVanity:
		steamID, err := r.vanity(ctx, id.Value)
		if err != nil {
			return "", err
		}
		return r.crosshair(ctx, Query{SteamID: steamID})
	case domain.KindHandle:
		return r.crosshair(ctx, Query{Handle: id.Value})
	default:
		return "", fmt.Errorf("%w: unsupported kind %s", domain.ErrInvalidIdentifier, id.Kind)
	}
}

func (r *Resolver) vanity(ctx context.Context, name string) (string, error) {
	start := time.Now()
	steamID, err := r.steam.ResolveVanity(ctx, name)
	metrics.ProfileLatency.WithLabelValues(metrics.SourceSteam).Observe(time.Since(start).Seconds())
	metrics.ProfileLookups.WithLabelValues(metrics.SourceSteam, metrics.ProfileOutcome(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("failed to resolve vanity %q: %w", name, err)
	}
	return steamID, nil
}

func (r *Resolver) crosshair(ctx context.Context, q Query) (string, error) {
	start := time.Now()
	code, err := r.stats.CrosshairCode(ctx, q)
	metrics.ProfileLatency.WithLabelValues(metrics.SourceLeetify).Observe(time.Since(start).Seconds())
	metrics.ProfileLookups.WithLabelValues(metrics.SourceLeetify, metrics.ProfileOutcome(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("failed to fetch crosshair: %w", err)
	}
	return code, nil
}

// cacheKey folds case so "id/S1mple" and "id/s1mple" share an entry.
// SteamIDs are digits, so folding leaves them unchanged.
func cacheKey(id domain.Identifier) string {
	return id.Kind.String() + ":" + cases.Fold().String(id.Value)
}
