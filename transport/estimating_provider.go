package transport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adrianrdguez/GoFast/models"
)

// EstimatingProvider tries the primary provider first and falls back to
// the distance estimator, so a leave-time calculation always gets a
// duration while the origin is valid.
type EstimatingProvider struct {
	primary   Provider
	estimator Provider
}

// NewEstimatingProvider creates a provider with estimator fallback
func NewEstimatingProvider(primary, estimator Provider) *EstimatingProvider {
	return &EstimatingProvider{
		primary:   primary,
		estimator: estimator,
	}
}

// ProviderName returns a descriptive name for the fallback pair
func (p *EstimatingProvider) ProviderName() string {
	return fmt.Sprintf("%s+%s", p.primary.ProviderName(), p.estimator.ProviderName())
}

// ETA returns the primary result when available, the estimate otherwise
func (p *EstimatingProvider) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	eta, err := p.primary.ETA(ctx, origin, dest, mode)
	if err == nil {
		return eta, nil
	}

	// Cancellation must reach the caller unwrapped
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	slog.Info("provider failed, falling back to estimate",
		"provider", p.primary.ProviderName(), "airport", dest.Code, "mode", mode, "error", err)

	return p.estimator.ETA(ctx, origin, dest, mode)
}
