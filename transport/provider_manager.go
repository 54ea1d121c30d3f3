package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/adrianrdguez/GoFast/cache"
	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/metrics"
	"github.com/adrianrdguez/GoFast/models"
)

// ProviderManager assembles the travel-time stack: OSRM routing, logging,
// estimator fallback and the caching proxy on top.
type ProviderManager struct {
	provider      Provider
	cache         cache.GenericCacheInterface
	logger        FileLogger
	configuration *ProviderConfiguration
}

type ProviderConfiguration struct {
	OSRMBaseURL   string
	CacheTTL      time.Duration
	LogFilePath   string
	EnableCache   bool
	EnableLogging bool
	Cache         cache.GenericCacheInterface
}

func NewProviderManager(config *ProviderConfiguration) (*ProviderManager, error) {
	manager := &ProviderManager{
		configuration: config,
	}

	if err := manager.initializeComponents(); err != nil {
		return nil, fmt.Errorf("initialize provider manager: %w", err)
	}

	manager.buildProvider()

	return manager, nil
}

func (pm *ProviderManager) initializeComponents() error {
	if pm.configuration.EnableCache {
		pm.cache = pm.configuration.Cache
		if pm.cache == nil {
			pm.cache = cache.NewMemoryCache()
		}
	}

	if pm.configuration.EnableLogging {
		logger, err := NewFileLogger(pm.configuration.LogFilePath)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		pm.logger = logger
	}

	return nil
}

func (pm *ProviderManager) buildProvider() {
	var routed Provider = NewOSRMProvider(&config.TransportConfig{
		OSRMBaseURL: pm.configuration.OSRMBaseURL,
	})
	var estimator Provider = NewDistanceEstimator()

	if pm.configuration.EnableLogging {
		routed = NewLoggingProvider(routed, pm.logger, "OSRM")
		estimator = NewLoggingProvider(estimator, pm.logger, "DistanceEstimator")
	}

	var provider Provider = NewEstimatingProvider(routed, estimator)

	if pm.configuration.EnableCache {
		provider = NewCachingProvider(provider, pm.cache, pm.configuration.CacheTTL)
	}

	pm.provider = provider
}

// ETA resolves a travel duration through the assembled provider stack
func (pm *ProviderManager) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	startTime := time.Now()

	eta, err := pm.provider.ETA(ctx, origin, dest, mode)

	metrics.RecordETARequest(pm.provider.ProviderName(), string(mode), err == nil)
	metrics.ObserveETALatency(pm.provider.ProviderName(), string(mode), time.Since(startTime).Seconds())

	return eta, err
}

func (pm *ProviderManager) GetProviderInfo() map[string]interface{} {
	info := make(map[string]interface{})

	info["cache_enabled"] = pm.configuration.EnableCache
	info["logging_enabled"] = pm.configuration.EnableLogging
	info["cache_ttl"] = pm.configuration.CacheTTL.String()

	if pm.provider != nil {
		info["provider_name"] = pm.provider.ProviderName()
	}

	return info
}

func DefaultProviderConfiguration() *ProviderConfiguration {
	return &ProviderConfiguration{
		OSRMBaseURL:   "https://router.project-osrm.org",
		CacheTTL:      5 * time.Minute,
		LogFilePath:   "logs/transport_providers.log",
		EnableCache:   true,
		EnableLogging: true,
	}
}

type ProviderManagerBuilder struct {
	config *ProviderConfiguration
}

func NewProviderManagerBuilder() *ProviderManagerBuilder {
	return &ProviderManagerBuilder{
		config: DefaultProviderConfiguration(),
	}
}

func (b *ProviderManagerBuilder) WithOSRMBaseURL(baseURL string) *ProviderManagerBuilder {
	b.config.OSRMBaseURL = baseURL
	return b
}

func (b *ProviderManagerBuilder) WithCacheTTL(ttl time.Duration) *ProviderManagerBuilder {
	b.config.CacheTTL = ttl
	return b
}

func (b *ProviderManagerBuilder) WithLogFilePath(path string) *ProviderManagerBuilder {
	b.config.LogFilePath = path
	return b
}

func (b *ProviderManagerBuilder) WithCacheEnabled(enabled bool) *ProviderManagerBuilder {
	b.config.EnableCache = enabled
	return b
}

func (b *ProviderManagerBuilder) WithLoggingEnabled(enabled bool) *ProviderManagerBuilder {
	b.config.EnableLogging = enabled
	return b
}

func (b *ProviderManagerBuilder) WithCache(c cache.GenericCacheInterface) *ProviderManagerBuilder {
	b.config.Cache = c
	return b
}

func (b *ProviderManagerBuilder) Build() (*ProviderManager, error) {
	return NewProviderManager(b.config)
}
