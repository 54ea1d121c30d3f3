// Package transport computes door-to-airport travel times. An OSRM-backed
// provider supplies routed durations and a distance-based estimator keeps
// the calculation alive when routing is unavailable.
package transport

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

// ETA is the outcome of a travel-time lookup
type ETA struct {
	Duration  time.Duration `json:"duration"`
	Estimated bool          `json:"estimated"`
}

// Provider defines the interface for travel-time providers
type Provider interface {
	ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error)
	ProviderName() string
}

// FileLogger defines the interface for file logging operations
type FileLogger interface {
	LogRequest(providerName string, dest string, mode models.TransportMode)
	LogResponse(providerName string, dest string, mode models.TransportMode, eta *ETA, duration time.Duration)
	LogError(providerName string, dest string, mode models.TransportMode, err error, duration time.Duration)
}
