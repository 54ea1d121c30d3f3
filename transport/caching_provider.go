package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/adrianrdguez/GoFast/cache"
	"github.com/adrianrdguez/GoFast/metrics"
	"github.com/adrianrdguez/GoFast/models"
)

// CachingProvider short-circuits repeated lookups for the same trip.
// Concurrent misses for one key share a single upstream call.
type CachingProvider struct {
	provider Provider
	cache    cache.GenericCacheInterface
	cacheTTL time.Duration
	group    singleflight.Group
	metrics  *metrics.CacheMetrics
}

// NewCachingProvider creates a caching proxy around a travel-time provider
func NewCachingProvider(provider Provider, c cache.GenericCacheInterface, cacheTTL time.Duration) *CachingProvider {
	return &CachingProvider{
		provider: provider,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  metrics.NewCacheMetrics("eta"),
	}
}

// ProviderName returns a descriptive name for the cached provider
func (p *CachingProvider) ProviderName() string {
	return fmt.Sprintf("Cached(%s)", p.provider.ProviderName())
}

// ETA implements caching for travel-time lookups
func (p *CachingProvider) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	cacheKey := p.generateCacheKey(origin, dest, mode)

	if data, found := p.cache.Get(ctx, cacheKey); found {
		var cached ETA
		if err := json.Unmarshal(data, &cached); err == nil {
			p.metrics.RecordHit()
			slog.Debug("eta cache hit", "airport", dest.Code, "mode", mode)
			return &cached, nil
		}
		p.cache.Delete(ctx, cacheKey)
	}

	p.metrics.RecordMiss()
	slog.Debug("eta cache miss", "airport", dest.Code, "mode", mode)

	result, err, _ := p.group.Do(cacheKey, func() (interface{}, error) {
		eta, err := p.provider.ETA(ctx, origin, dest, mode)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(eta); err == nil {
			p.cache.Set(ctx, cacheKey, data, p.cacheTTL)
		}

		return eta, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*ETA), nil
}

// generateCacheKey rounds the origin to ~100m so nearby lookups share an
// entry while staying mode- and airport-specific.
func (p *CachingProvider) generateCacheKey(origin models.Coordinate, dest models.Airport, mode models.TransportMode) string {
	return fmt.Sprintf("eta:%s:%s:%.3f,%.3f", mode, dest.Code, origin.Latitude, origin.Longitude)
}
