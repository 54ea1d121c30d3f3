package transport

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

// LoggingProvider records every lookup against the wrapped provider
type LoggingProvider struct {
	wrappedProvider Provider
	logger          FileLogger
	providerName    string
}

// NewLoggingProvider creates a logging decorator around a provider
func NewLoggingProvider(provider Provider, logger FileLogger, providerName string) *LoggingProvider {
	return &LoggingProvider{
		wrappedProvider: provider,
		logger:          logger,
		providerName:    providerName,
	}
}

// ProviderName returns the name of the wrapped provider
func (d *LoggingProvider) ProviderName() string {
	return d.providerName
}

// ETA delegates to the wrapped provider, logging request and outcome
func (d *LoggingProvider) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	d.logger.LogRequest(d.providerName, dest.Code, mode)
	startTime := time.Now()

	eta, err := d.wrappedProvider.ETA(ctx, origin, dest, mode)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.LogError(d.providerName, dest.Code, mode, err, duration)
		return nil, err
	}

	d.logger.LogResponse(d.providerName, dest.Code, mode, eta, duration)
	return eta, nil
}
